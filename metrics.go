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

import "github.com/GaryBoone/GoStats/stats"

// Metrics is a fixed set of performance indicators derived from the
// experimental data. Faradaic efficiencies outside [0, 1] are reported
// as measured, not rejected.
type Metrics struct {
	CurrentDensityAt1_5V   float64 // [A/m²], interpolated
	CurrentDensityAt2_0V   float64 // [A/m²], interpolated
	MaxCurrentDensity      float64 // [A/m²]
	VoltageAt100Am2        float64 // [V], interpolated
	VoltageAt200Am2        float64 // [V], interpolated
	MeanFaradaicEfficiency float64
	MinFaradaicEfficiency  float64
	MaxH2Production        float64 // [mmol/s]
}

// Metrics computes the performance metrics from the experimental
// tables, loading them first if necessary.
func (a *Analysis) Metrics() (*Metrics, error) {
	iv, err := a.IVData()
	if err != nil {
		return nil, err
	}
	h2, err := a.H2Data()
	if err != nil {
		return nil, err
	}
	m := &Metrics{
		CurrentDensityAt1_5V:   interp(1.5, iv.Voltage, iv.CurrentDensity),
		CurrentDensityAt2_0V:   interp(2.0, iv.Voltage, iv.CurrentDensity),
		MaxCurrentDensity:      stats.StatsMax(iv.CurrentDensity),
		VoltageAt100Am2:        interp(100, iv.CurrentDensity, iv.Voltage),
		VoltageAt200Am2:        interp(200, iv.CurrentDensity, iv.Voltage),
		MeanFaradaicEfficiency: stats.StatsMean(h2.FaradaicEfficiency),
		MinFaradaicEfficiency:  stats.StatsMin(h2.FaradaicEfficiency),
		MaxH2Production:        stats.StatsMax(h2.Production),
	}
	return m, nil
}
