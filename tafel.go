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

package fluxcell

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// Default voltage window [V] for the Tafel fit.
const (
	DefaultTafelMin = 1.2
	DefaultTafelMax = 1.8
)

// tafelMaxIterations caps the least-squares optimizer.
const tafelMaxIterations = 5000

// Fitting errors.
var (
	// ErrTooFewPoints is returned when fewer than two measurements fall
	// in the selected fitting window.
	ErrTooFewPoints = errors.New("fluxcell: fewer than 2 data points in fitting range")

	// ErrNotConverged is returned when the fit optimizer fails to
	// converge within its iteration budget.
	ErrNotConverged = errors.New("fluxcell: tafel fit did not converge")
)

// TafelFit holds the result of fitting the Tafel relation
// i = exp((η − a)/b) to a window of the measured IV curve.
type TafelFit struct {
	A          float64       // Tafel constant [V]
	B          float64       // Tafel slope [V/decade]
	RSquared   float64       // goodness of fit; 1 is a perfect fit
	Covariance [2][2]float64 // covariance of (a, b)
	VMin, VMax float64       // fitting window [V]
}

// TafelCurrent returns the Tafel-model current density [A/m²] at
// overpotential eta [V] for parameters a and b.
func TafelCurrent(eta, a, b float64) float64 {
	return math.Exp((eta - a) / b)
}

// FitTafel fits the Tafel relation to the measured IV points whose
// voltage lies within [vmin, vmax] (inclusive), by nonlinear least
// squares from the initial guess a=1, b=0.1. It returns ErrTooFewPoints
// if the window holds fewer than two measurements and ErrNotConverged
// if the optimizer exhausts its iteration budget.
func (a *Analysis) FitTafel(vmin, vmax float64) (*TafelFit, error) {
	t, err := a.IVData()
	if err != nil {
		return nil, err
	}
	var v, i []float64
	for k, vk := range t.Voltage {
		if vk >= vmin && vk <= vmax {
			v = append(v, vk)
			i = append(i, t.CurrentDensity[k])
		}
	}
	if len(v) < 2 {
		return nil, ErrTooFewPoints
	}

	sse := func(x []float64) float64 {
		var s float64
		for k := range v {
			r := i[k] - TafelCurrent(v[k], x[0], x[1])
			s += r * r
		}
		return s
	}
	problem := optimize.Problem{Func: sse}
	settings := optimize.DefaultSettings()
	settings.MajorIterations = tafelMaxIterations

	result, err := optimize.Local(problem, []float64{1.0, 0.1}, settings,
		&optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("fluxcell: tafel fit: %v", err)
	}
	if result.Status == optimize.IterationLimit {
		return nil, ErrNotConverged
	}

	fit := &TafelFit{
		A:    result.X[0],
		B:    result.X[1],
		VMin: vmin,
		VMax: vmax,
	}
	fit.RSquared = rSquared(v, i, fit)
	fit.Covariance = tafelCovariance(v, i, fit)
	return fit, nil
}

// rSquared returns 1 − SSres/SStot for the fit over the points (v, i).
func rSquared(v, i []float64, fit *TafelFit) float64 {
	var mean float64
	for _, ik := range i {
		mean += ik
	}
	mean /= float64(len(i))
	var ssRes, ssTot float64
	for k := range i {
		r := i[k] - TafelCurrent(v[k], fit.A, fit.B)
		ssRes += r * r
		d := i[k] - mean
		ssTot += d * d
	}
	return 1 - ssRes/ssTot
}

// tafelCovariance estimates the covariance of the fitted (a, b) by the
// Gauss-Newton approximation s²(JᵀJ)⁻¹, with the Jacobian of the model
// taken by central finite differences at the optimum. If JᵀJ is
// singular the covariance entries are NaN.
func tafelCovariance(v, i []float64, fit *TafelFit) [2][2]float64 {
	m := len(v)
	j := mat.NewDense(m, 2, nil)
	const h = 1.e-8
	for k := range v {
		j.Set(k, 0, (TafelCurrent(v[k], fit.A+h, fit.B)-
			TafelCurrent(v[k], fit.A-h, fit.B))/(2*h))
		j.Set(k, 1, (TafelCurrent(v[k], fit.A, fit.B+h)-
			TafelCurrent(v[k], fit.A, fit.B-h))/(2*h))
	}
	var jtj mat.Dense
	jtj.Mul(j.T(), j)

	var cov [2][2]float64
	var inv mat.Dense
	if err := inv.Inverse(&jtj); err != nil {
		nan := math.NaN()
		return [2][2]float64{{nan, nan}, {nan, nan}}
	}

	// Residual variance; with m == 2 the fit is exact and s² is zero.
	var ssRes float64
	for k := range i {
		r := i[k] - TafelCurrent(v[k], fit.A, fit.B)
		ssRes += r * r
	}
	s2 := 0.
	if m > 2 {
		s2 = ssRes / float64(m-2)
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			cov[r][c] = s2 * inv.At(r, c)
		}
	}
	return cov
}
