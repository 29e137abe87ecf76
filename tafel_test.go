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
	"math"
	"testing"
)

// tafelAnalysis returns an Analysis whose IV table follows the Tafel
// relation exactly for the given (a, b), over [1.2, 1.8] V, optionally
// perturbed by deterministic multiplicative noise of relative
// amplitude noise.
func tafelAnalysis(a, b, noise float64) *Analysis {
	var iv IVTable
	for k := 0; k <= 12; k++ {
		v := 1.2 + 0.05*float64(k)
		i := TafelCurrent(v, a, b) * (1 + noise*math.Sin(3*float64(k)))
		iv.Voltage = append(iv.Voltage, v)
		iv.CurrentDensity = append(iv.CurrentDensity, i)
		iv.Current = append(iv.Current, i*0.001)
		iv.Uncertainty = append(iv.Uncertainty, 0.001)
	}
	an := NewAnalysis("testdata")
	an.Loader = &countingLoader{iv: &iv}
	return an
}

func TestFitTafelExact(t *testing.T) {
	const (
		wantA = 1.05
		wantB = 0.09
	)
	an := tafelAnalysis(wantA, wantB, 0)
	fit, err := an.FitTafel(DefaultTafelMin, DefaultTafelMax)
	if err != nil {
		t.Fatal(err)
	}
	if fit.RSquared < 0.999 {
		t.Errorf("R² = %g for noiseless Tafel data; want ≈1", fit.RSquared)
	}
	if absDifferent(fit.A, wantA, 1.e-2) || absDifferent(fit.B, wantB, 1.e-2) {
		t.Errorf("fit = (%g, %g); want (%g, %g)", fit.A, fit.B, wantA, wantB)
	}
	if fit.VMin != DefaultTafelMin || fit.VMax != DefaultTafelMax {
		t.Errorf("fit window = [%g, %g]; want [%g, %g]",
			fit.VMin, fit.VMax, DefaultTafelMin, DefaultTafelMax)
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if math.IsNaN(fit.Covariance[r][c]) {
				t.Errorf("covariance[%d][%d] is NaN", r, c)
			}
		}
	}
}

// Fit quality degrades as injected noise grows.
func TestFitTafelNoise(t *testing.T) {
	var prev = 1.0
	for _, noise := range []float64{0.02, 0.1, 0.3} {
		an := tafelAnalysis(1.05, 0.09, noise)
		fit, err := an.FitTafel(DefaultTafelMin, DefaultTafelMax)
		if err != nil {
			t.Fatalf("noise %g: %v", noise, err)
		}
		if fit.RSquared > 1 {
			t.Errorf("noise %g: R² = %g > 1", noise, fit.RSquared)
		}
		if fit.RSquared >= prev {
			t.Errorf("noise %g: R² = %g did not degrade from %g", noise, fit.RSquared, prev)
		}
		prev = fit.RSquared
	}
}

func TestFitTafelTooFewPoints(t *testing.T) {
	an := tafelAnalysis(1.05, 0.09, 0)
	if _, err := an.FitTafel(2.4, 2.5); err != ErrTooFewPoints {
		t.Errorf("fit over empty window: got %v; want ErrTooFewPoints", err)
	}
	// A window holding exactly one sample is also too narrow.
	if _, err := an.FitTafel(1.19, 1.21); err != ErrTooFewPoints {
		t.Errorf("fit over 1-point window: got %v; want ErrTooFewPoints", err)
	}
}

func TestFitTafelMeasuredData(t *testing.T) {
	an := NewAnalysis("testdata")
	fit, err := an.FitTafel(DefaultTafelMin, DefaultTafelMax)
	if err != nil {
		t.Fatal(err)
	}
	if fit.B <= 0 {
		t.Errorf("Tafel slope = %g; want positive", fit.B)
	}
	if fit.RSquared > 1 || fit.RSquared < 0.9 {
		t.Errorf("R² = %g; want in (0.9, 1]", fit.RSquared)
	}
}
