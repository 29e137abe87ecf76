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
	"strings"
	"testing"
)

func TestMetricsSynthetic(t *testing.T) {
	a, _ := syntheticAnalysis()
	m, err := a.Metrics()
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name      string
		got, want float64
	}{
		{"current density at 1.5 V", m.CurrentDensityAt1_5V, 50},
		{"current density at 2.0 V", m.CurrentDensityAt2_0V, 100},
		{"max current density", m.MaxCurrentDensity, 100},
		{"voltage at 100 A/m²", m.VoltageAt100Am2, 2.0},
		{"voltage at 200 A/m²", m.VoltageAt200Am2, 2.0}, // clamped
		{"mean Faradaic efficiency", m.MeanFaradaicEfficiency, 1.00},
		{"min Faradaic efficiency", m.MinFaradaicEfficiency, 0.99},
		{"max H₂ production", m.MaxH2Production, 0.0052},
	}
	for _, tc := range cases {
		if absDifferent(tc.got, tc.want, testTolerance) {
			t.Errorf("%s = %g; want %g", tc.name, tc.got, tc.want)
		}
	}
}

func TestMetricsMeasuredData(t *testing.T) {
	a := NewAnalysis("testdata")
	m, err := a.Metrics()
	if err != nil {
		t.Fatal(err)
	}
	if absDifferent(m.CurrentDensityAt1_5V, 24.7, testTolerance) {
		t.Errorf("current density at 1.5 V = %g; want 24.7", m.CurrentDensityAt1_5V)
	}
	if absDifferent(m.MaxCurrentDensity, 564.3, testTolerance) {
		t.Errorf("max current density = %g; want 564.3", m.MaxCurrentDensity)
	}
	if m.VoltageAt100Am2 <= 1.6 || m.VoltageAt100Am2 >= 1.7 {
		t.Errorf("voltage at 100 A/m² = %g; want in (1.6, 1.7)", m.VoltageAt100Am2)
	}
}

func TestSummaryReport(t *testing.T) {
	a := NewAnalysis("testdata")
	report, err := a.SummaryReport()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"EXPERIMENTAL ANALYSIS SUMMARY",
		"Current-Voltage Performance:",
		"Hydrogen Production:",
		"Tafel Analysis:",
		"Data Quality:",
		"Number of IV data points: 16",
		"Number of H₂ data points: 8",
		"Voltage range: 1.0 - 2.5 V",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report is missing %q", want)
		}
	}

	// The rendering is deterministic.
	again, err := a.SummaryReport()
	if err != nil {
		t.Fatal(err)
	}
	if report != again {
		t.Error("report rendering is not deterministic")
	}
}
