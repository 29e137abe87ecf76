/*
Copyright © 2026 the Fluxcell authors.
This file is part of Fluxcell.

Fluxcell is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Fluxcell is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Fluxcell.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package figures renders publication figures combining the theoretical
// electrolyzer model with the experimental analysis. It performs no
// computation of its own beyond unit conversions.
package figures

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/fluxcell/fluxcell"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Figure dimensions. Each two-panel figure is figWidth × figHeight.
const (
	figWidth  = 9 * vg.Inch
	figHeight = 3.75 * vg.Inch
)

// Plot colors.
var (
	black = color.NRGBA{0, 0, 0, 255}
	red   = color.NRGBA{204, 0, 0, 255}
	green = color.NRGBA{0, 153, 0, 255}
	gray  = color.NRGBA{127, 127, 127, 255}
	blue  = color.NRGBA{0, 0, 204, 255}
)

// Generator renders figures from a theoretical cell model and an
// experimental analysis.
type Generator struct {
	Cell     *fluxcell.Cell
	Analysis *fluxcell.Analysis
}

// New returns a figure generator for the given model and analysis.
func New(cell *fluxcell.Cell, analysis *fluxcell.Analysis) *Generator {
	return &Generator{Cell: cell, Analysis: analysis}
}

// All renders the full figure set into dir, creating it if necessary.
func (g *Generator) All(dir string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("figures: creating output directory: %v", err)
	}
	figs := []struct {
		name   string
		render func(path string) error
	}{
		{"fig1_schematic.pdf", g.Schematic},
		{"fig2_iv_curves.pdf", g.IVCurves},
		{"fig3_hydrogen_production.pdf", g.HydrogenProduction},
		{"fig4_efficiency.pdf", g.Efficiency},
	}
	for _, fig := range figs {
		if err := fig.render(filepath.Join(dir, fig.name)); err != nil {
			return err
		}
	}
	return nil
}

// IVCurves renders the current-voltage characteristics: measurements
// and the theoretical model on linear axes, and the same data on
// semi-logarithmic axes with the Tafel fit overlaid.
func (g *Generator) IVCurves(path string) error {
	iv, err := g.Analysis.IVData()
	if err != nil {
		return err
	}
	sim, err := g.Cell.SimulateIV(fluxcell.DefaultVoltageMin,
		fluxcell.DefaultVoltageMax, fluxcell.DefaultSweepPoints)
	if err != nil {
		return err
	}
	fit, err := g.Analysis.FitTafel(fluxcell.DefaultTafelMin, fluxcell.DefaultTafelMax)
	if err != nil {
		return err
	}

	linear, err := newPlot("Cell Voltage (V)", "Current Density (A/m²)")
	if err != nil {
		return err
	}
	expPts, err := scatterStyle(xys(iv.Voltage, iv.CurrentDensity), black)
	if err != nil {
		return err
	}
	modelLine, err := lineStyle(xys(sim.Voltage, sim.CurrentDensity), red, nil)
	if err != nil {
		return err
	}
	// Current uncertainty converted to density units.
	cellArea := g.Cell.Params().Area()
	cdErr := make([]float64, len(iv.Uncertainty))
	for i, u := range iv.Uncertainty {
		cdErr[i] = u / cellArea
	}
	expBars, err := errorBars(iv.Voltage, iv.CurrentDensity, cdErr, black)
	if err != nil {
		return err
	}
	linear.Add(expPts, expBars, modelLine)
	linear.Legend.Add("Experimental", expPts)
	linear.Legend.Add("Theoretical model", modelLine)

	semilog, err := newPlot("Cell Voltage (V)", "Current Density (A/m²)")
	if err != nil {
		return err
	}
	semilog.Y.Scale = plot.LogScale{}
	semilog.Y.Tick.Marker = plot.LogTicks{}
	// The log scale cannot show non-positive currents.
	expV, expI := positive(iv.Voltage, iv.CurrentDensity)
	simV, simI := positive(sim.Voltage, sim.CurrentDensity)
	expPtsLog, err := scatterStyle(xys(expV, expI), black)
	if err != nil {
		return err
	}
	modelLineLog, err := lineStyle(xys(simV, simI), red, nil)
	if err != nil {
		return err
	}
	fitV := floats.Span(make([]float64, 100), fit.VMin, fit.VMax)
	fitI := make([]float64, len(fitV))
	for i, v := range fitV {
		fitI[i] = fluxcell.TafelCurrent(v, fit.A, fit.B)
	}
	fitLine, err := lineStyle(xys(fitV, fitI), green, []vg.Length{vg.Points(4), vg.Points(2)})
	if err != nil {
		return err
	}
	semilog.Add(expPtsLog, modelLineLog, fitLine)
	semilog.Legend.Add("Experimental", expPtsLog)
	semilog.Legend.Add("Theoretical model", modelLineLog)
	semilog.Legend.Add(fmt.Sprintf("Tafel fit (%.0f mV/dec, R²=%.3f)",
		fit.B*1000, fit.RSquared), fitLine)

	return writePanels(path, linear, semilog)
}

// HydrogenProduction renders the measured hydrogen production rate
// against the Faraday's-law rate at 100% efficiency, and the Faradaic
// efficiency of each measurement.
func (g *Generator) HydrogenProduction(path string) error {
	h2, err := g.Analysis.H2Data()
	if err != nil {
		return err
	}

	rates, err := newPlot("Current Density (A/m²)", "H₂ Production Rate (mmol/s)")
	if err != nil {
		return err
	}
	measured, err := scatterStyle(xys(h2.CurrentDensity, h2.Production), black)
	if err != nil {
		return err
	}
	// Faraday's law at 100% efficiency, converted to mmol/s.
	area := g.Cell.Params().Area()
	theo := make([]float64, len(h2.CurrentDensity))
	for i, cd := range h2.CurrentDensity {
		theo[i] = g.Cell.HydrogenProduction(cd*area) * 1000
	}
	theoLine, err := lineStyle(xys(h2.CurrentDensity, theo), red,
		[]vg.Length{vg.Points(4), vg.Points(2)})
	if err != nil {
		return err
	}
	rates.Add(measured, theoLine)
	rates.Legend.Add("Experimental", measured)
	rates.Legend.Add("Theoretical (100% efficiency)", theoLine)

	eff, err := newPlot("Current Density (A/m²)", "Faradaic Efficiency")
	if err != nil {
		return err
	}
	effPts, err := scatterStyle(xys(h2.CurrentDensity, h2.FaradaicEfficiency), black)
	if err != nil {
		return err
	}
	cdMin := stats.StatsMin(h2.CurrentDensity)
	cdMax := stats.StatsMax(h2.CurrentDensity)
	perfect, err := lineStyle(plotter.XYs{{cdMin, 1}, {cdMax, 1}}, red,
		[]vg.Length{vg.Points(4), vg.Points(2)})
	if err != nil {
		return err
	}
	effBars, err := errorBars(h2.CurrentDensity, h2.FaradaicEfficiency,
		h2.UncertaintyEfficiency, black)
	if err != nil {
		return err
	}
	eff.Add(effPts, effBars, perfect)
	eff.Legend.Add("Experimental", effPts)
	eff.Legend.Add("Perfect efficiency", perfect)

	return writePanels(path, rates, eff)
}

// Efficiency renders the voltage efficiency of the measurements and an
// energy-efficiency comparison against a conventional electrolyzer.
func (g *Generator) Efficiency(path string) error {
	iv, err := g.Analysis.IVData()
	if err != nil {
		return err
	}

	voltEff := make([]float64, len(iv.Voltage))
	for i, v := range iv.Voltage {
		voltEff[i] = g.Cell.EnergyEfficiency(v)
	}
	left, err := newPlot("Current Density (A/m²)", "Voltage Efficiency")
	if err != nil {
		return err
	}
	vePts, err := scatterStyle(xys(iv.CurrentDensity, voltEff), black)
	if err != nil {
		return err
	}
	left.Add(vePts)
	left.Legend.Add("Voltage efficiency", vePts)

	right, err := newPlot("Current Density (A/m²)", "Energy Efficiency (%)")
	if err != nil {
		return err
	}
	pct := make([]float64, len(voltEff))
	for i, e := range voltEff {
		pct[i] = e * 100
	}
	memb, err := scatterStyle(xys(iv.CurrentDensity, pct), black)
	if err != nil {
		return err
	}
	// Literature values for a conventional membrane electrolyzer.
	litCD := []float64{50, 100, 150, 200, 250, 300}
	litEff := []float64{75, 73, 70, 68, 65, 62}
	lit, err := lineStyle(xys(litCD, litEff), gray, []vg.Length{vg.Points(4), vg.Points(2)})
	if err != nil {
		return err
	}
	right.Add(memb, lit)
	right.Legend.Add("Membraneless electrolyzer", memb)
	right.Legend.Add("Conventional electrolyzer", lit)

	return writePanels(path, left, right)
}

// newPlot returns a plot with the package's axis and legend styling.
func newPlot(xlabel, ylabel string) (*plot.Plot, error) {
	labelFont, err := vg.MakeFont(plot.DefaultFont, vg.Points(8))
	if err != nil {
		return nil, err
	}
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	ts := draw.TextStyle{Color: color.Black, Font: labelFont}
	p.X.Label.TextStyle = ts
	p.X.Tick.Label = ts
	p.Y.Label.TextStyle = ts
	p.Y.Tick.Label = ts
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Legend = plot.Legend{
		TextStyle:      ts,
		Top:            true,
		Left:           true,
		ThumbnailWidth: .15 * vg.Inch,
		Padding:        0.75 * vg.Millimeter,
	}
	return p, nil
}

func scatterStyle(pts plotter.XYs, c color.NRGBA) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.Color = c
	s.Radius = 1.5
	s.Shape = draw.CircleGlyph{}
	return s, nil
}

func lineStyle(pts plotter.XYs, c color.NRGBA, dashes []vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.Color = c
	l.Width = 0.5 * vg.Millimeter
	l.Dashes = dashes
	return l, nil
}

// errPoints pairs plotted points with their y uncertainties.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

func errorBars(x, y, yerr []float64, c color.NRGBA) (*plotter.YErrorBars, error) {
	pts := errPoints{XYs: xys(x, y), YErrors: make(plotter.YErrors, len(x))}
	for i, e := range yerr {
		pts.YErrors[i].Low = e
		pts.YErrors[i].High = e
	}
	b, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return nil, err
	}
	b.LineStyle.Color = c
	return b, nil
}

func xys(x, y []float64) plotter.XYs {
	out := make(plotter.XYs, len(x))
	for i, yy := range y {
		out[i].X = x[i]
		out[i].Y = yy
	}
	return out
}

// positive filters the series to the points where y > 0, for use on
// logarithmic axes.
func positive(x, y []float64) ([]float64, []float64) {
	var xo, yo []float64
	for i, yy := range y {
		if yy > 0 {
			xo = append(xo, x[i])
			yo = append(yo, yy)
		}
	}
	return xo, yo
}

// writePanels renders the plots side by side into a PDF file at path.
func writePanels(path string, panels ...*plot.Plot) error {
	c := vgpdf.New(figWidth, figHeight)
	dc := draw.New(c)
	w := figWidth / vg.Length(len(panels))
	for i, p := range panels {
		pc := draw.Crop(dc, vg.Length(i)*w, vg.Length(i+1)*w-figWidth, 0, 0)
		p.Draw(pc)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("figures: creating %s: %v", path, err)
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("figures: writing %s: %v", path, err)
	}
	return f.Close()
}
