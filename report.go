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
	"bytes"
	"fmt"

	"github.com/GaryBoone/GoStats/stats"
)

// SummaryReport returns a plain-text summary of the experimental
// analysis: performance metrics, the Tafel fit over the default window,
// and descriptive statistics of the loaded tables. The rendering is
// deterministic for a given data set.
func (a *Analysis) SummaryReport() (string, error) {
	m, err := a.Metrics()
	if err != nil {
		return "", err
	}
	fit, err := a.FitTafel(DefaultTafelMin, DefaultTafelMax)
	if err != nil {
		return "", err
	}
	iv, err := a.IVData()
	if err != nil {
		return "", err
	}
	h2, err := a.H2Data()
	if err != nil {
		return "", err
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "EXPERIMENTAL ANALYSIS SUMMARY\n")
	fmt.Fprintf(&b, "============================\n\n")

	fmt.Fprintf(&b, "Current-Voltage Performance:\n")
	fmt.Fprintf(&b, "---------------------------\n")
	fmt.Fprintf(&b, "- Current density at 1.5 V: %.1f A/m²\n", m.CurrentDensityAt1_5V)
	fmt.Fprintf(&b, "- Current density at 2.0 V: %.1f A/m²\n", m.CurrentDensityAt2_0V)
	fmt.Fprintf(&b, "- Maximum current density: %.1f A/m²\n", m.MaxCurrentDensity)
	fmt.Fprintf(&b, "- Voltage at 100 A/m²: %.2f V\n", m.VoltageAt100Am2)
	fmt.Fprintf(&b, "- Voltage at 200 A/m²: %.2f V\n\n", m.VoltageAt200Am2)

	fmt.Fprintf(&b, "Hydrogen Production:\n")
	fmt.Fprintf(&b, "-------------------\n")
	fmt.Fprintf(&b, "- Maximum H₂ rate: %.3f mmol/s\n", m.MaxH2Production)
	fmt.Fprintf(&b, "- Average Faradaic efficiency: %.3f\n", m.MeanFaradaicEfficiency)
	fmt.Fprintf(&b, "- Minimum Faradaic efficiency: %.3f\n\n", m.MinFaradaicEfficiency)

	fmt.Fprintf(&b, "Tafel Analysis:\n")
	fmt.Fprintf(&b, "--------------\n")
	fmt.Fprintf(&b, "- Tafel slope: %.1f mV/decade\n", fit.B*1000)
	fmt.Fprintf(&b, "- Tafel constant: %.3f V\n", fit.A)
	fmt.Fprintf(&b, "- Fit quality (R²): %.3f\n\n", fit.RSquared)

	fmt.Fprintf(&b, "Data Quality:\n")
	fmt.Fprintf(&b, "------------\n")
	fmt.Fprintf(&b, "- Number of IV data points: %d\n", iv.Len())
	fmt.Fprintf(&b, "- Number of H₂ data points: %d\n", h2.Len())
	fmt.Fprintf(&b, "- Voltage range: %.1f - %.1f V\n",
		stats.StatsMin(iv.Voltage), stats.StatsMax(iv.Voltage))

	return b.String(), nil
}
