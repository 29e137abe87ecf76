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

package figures

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Schematic dimensions.
const (
	schemWidth  = 7 * vg.Inch
	schemHeight = 5 * vg.Inch
)

// Schematic renders a diagram of the membraneless electrolyzer: the
// electrolyte channel, the two electrodes with their reactions, flow
// arrows, and evolved gas bubbles.
func (g *Generator) Schematic(path string) error {
	c := vgpdf.New(schemWidth, schemHeight)
	dc := draw.New(c)

	labelFont, err := vg.MakeFont(plot.DefaultFont, vg.Points(11))
	if err != nil {
		return err
	}
	smallFont, err := vg.MakeFont(plot.DefaultFont, vg.Points(9))
	if err != nil {
		return err
	}
	titleFont, err := vg.MakeFont(plot.DefaultFont, vg.Points(14))
	if err != nil {
		return err
	}
	center := func(font vg.Font, clr color.Color) draw.TextStyle {
		return draw.TextStyle{Color: clr, Font: font, XAlign: -0.5, YAlign: -0.5}
	}

	var (
		lightBlue = color.NRGBA{173, 216, 230, 180}
		darkRed   = color.NRGBA{139, 0, 0, 255}
		darkBlue  = color.NRGBA{0, 0, 139, 255}
		lightGray = color.NRGBA{200, 200, 200, 255}
		orange    = color.NRGBA{255, 165, 0, 200}
	)

	// Layout in fractions of the canvas.
	w, h := schemWidth, schemHeight
	var (
		channelL, channelR = 0.20 * w, 0.80 * w
		channelB, channelT = 0.30 * h, 0.65 * h
		electrodeW         = 0.06 * w
		electrodeB         = 0.25 * h
		electrodeT         = 0.70 * h
	)

	// Electrolyte channel between the electrodes.
	fillRect(dc, lightBlue, channelL, channelB, channelR, channelT)

	// Anode on the left, cathode on the right.
	fillRect(dc, red, channelL-electrodeW, electrodeB, channelL, electrodeT)
	fillRect(dc, blue, channelR, electrodeB, channelR+electrodeW, electrodeT)

	// Electrolyte flow arrows through the channel.
	mid := (channelB + channelT) / 2
	arrow(dc, black, 0.28*w, mid, 0.38*w, mid)
	arrow(dc, black, 0.62*w, mid, 0.72*w, mid)

	// Gas bubbles: oxygen near the anode, hydrogen near the cathode.
	o2 := draw.GlyphStyle{Color: orange, Radius: 2.5, Shape: draw.CircleGlyph{}}
	h2g := draw.GlyphStyle{Color: lightGray, Radius: 3, Shape: draw.CircleGlyph{}}
	for i := 0; i < 5; i++ {
		y := channelB + vg.Length(i+1)*(channelT-channelB)/6
		dc.DrawGlyph(o2, vg.Point{X: channelL + 0.03*w, Y: y})
		dc.DrawGlyph(h2g, vg.Point{X: channelR - 0.03*w, Y: y})
	}

	// Electrode labels and half reactions.
	dc.FillText(center(labelFont, darkRed),
		vg.Point{X: channelL - electrodeW/2, Y: 0.18 * h}, "Anode (O₂)")
	dc.FillText(center(labelFont, darkBlue),
		vg.Point{X: channelR + electrodeW/2, Y: 0.18 * h}, "Cathode (H₂)")
	dc.FillText(center(smallFont, darkRed),
		vg.Point{X: 0.25 * w, Y: 0.76 * h}, "2H₂O → O₂ + 4H⁺ + 4e⁻")
	dc.FillText(center(smallFont, darkBlue),
		vg.Point{X: 0.75 * w, Y: 0.76 * h}, "4H⁺ + 4e⁻ → 2H₂")
	dc.FillText(center(labelFont, color.Black),
		vg.Point{X: 0.5 * w, Y: 0.70 * h}, "Electrolyte Flow")

	// External circuit with the applied voltage.
	arrow(dc, green, channelR+electrodeW/2, 0.85*h, channelL-electrodeW/2, 0.85*h)
	dc.FillText(center(smallFont, green), vg.Point{X: 0.5 * w, Y: 0.88 * h}, "Current Flow")
	dc.FillText(center(labelFont, color.Black), vg.Point{X: 0.5 * w, Y: 0.10 * h}, "V")

	dc.FillText(center(titleFont, color.Black),
		vg.Point{X: 0.5 * w, Y: 0.95 * h}, "Membraneless Electrolyzer Schematic")

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

// fillRect fills the axis-aligned rectangle (x0, y0)-(x1, y1).
func fillRect(c draw.Canvas, clr color.Color, x0, y0, x1, y1 vg.Length) {
	c.FillPolygon(clr, []vg.Point{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0},
	})
}

// arrow strokes a line from (x0, y0) to (x1, y1) with a simple head.
func arrow(c draw.Canvas, clr color.Color, x0, y0, x1, y1 vg.Length) {
	ls := draw.LineStyle{Color: clr, Width: 0.5 * vg.Millimeter}
	c.StrokeLines(ls, []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y1}})
	head := vg.Points(4)
	if x1 < x0 {
		head = -head
	}
	c.StrokeLines(ls, []vg.Point{{X: x1 - head, Y: y1 + head/2}, {X: x1, Y: y1}, {X: x1 - head, Y: y1 - head/2}})
}
