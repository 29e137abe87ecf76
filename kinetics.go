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

import "math"

// Concentrations maps chemical species names (e.g. "H+") to molar
// concentrations [mol/m³] at the electrode surfaces.
type Concentrations map[string]float64

// ButlerVolmer returns the net current density [A/m²] at an electrode
// with overpotential eta [V], exchange current density i0 [A/m²],
// charge-transfer coefficient alpha, and n electrons transferred, at the
// cell's temperature and surface roughness.
//
// The exponential terms overflow to ±Inf for large |eta|; callers must
// keep the applied voltage within a physically reasonable range.
func (c *Cell) ButlerVolmer(eta, i0, alpha float64, n int) float64 {
	fRT := float64(n) * FaradayConstant / (GasConstant * c.params.Temperature)
	anodic := math.Exp(alpha * fRT * eta)
	cathodic := math.Exp(-(1 - alpha) * fRT * eta)
	return i0 * c.params.Roughness * (anodic - cathodic)
}

// Overpotentials returns the anode and cathode overpotentials [V] for an
// applied cell voltage [V] and the given surface concentrations. The
// electrode equilibrium potentials are the standard oxygen and hydrogen
// potentials; if conc contains an "H+" entry the cathode potential is
// corrected by a Nernst term referenced to 1 mol/L (1000 mol/m³).
func (c *Cell) Overpotentials(voltage float64, conc Concentrations) (etaA, etaC float64) {
	anodeNernst := StandardOxygenPotential
	cathodeNernst := StandardHydrogenPotential
	if cH, ok := conc["H+"]; ok {
		rtF := GasConstant * c.params.Temperature / FaradayConstant
		cathodeNernst -= rtF * math.Log(cH/1000)
	}
	etaA = voltage - anodeNernst
	etaC = cathodeNernst // cathode referenced to 0 V
	return etaA, etaC
}
