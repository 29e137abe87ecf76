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

	"gonum.org/v1/gonum/floats"
)

// Default voltage sweep range [V] and resolution.
const (
	DefaultVoltageMin  = 1.0
	DefaultVoltageMax  = 2.5
	DefaultSweepPoints = 50
)

// sweepHConc is the hydrogen-ion concentration assumed during the
// voltage sweep: pH 7, converted to mol/m³.
const sweepHConc = 1.e-7 * 1000

// Electron counts of the electrode reactions.
const (
	anodeElectrons   = 4 // oxygen evolution: 2H₂O → O₂ + 4H⁺ + 4e⁻
	cathodeElectrons = 2 // hydrogen evolution: 2H⁺ + 2e⁻ → H₂
)

// ErrNoResults is returned when simulation results are requested before
// a simulation has been run.
var ErrNoResults = errors.New("fluxcell: no simulation results; run SimulateIV first")

// Cell is a theoretical model of a membraneless electrolyzer. It owns
// one parameter set and the results of its most recent voltage sweep.
// A Cell is not safe for concurrent use.
type Cell struct {
	params  Params
	results *IVResult
}

// NewCell returns an electrolyzer model with the given parameters.
func NewCell(p Params) *Cell {
	return &Cell{params: p}
}

// Params returns the cell's parameter set.
func (c *Cell) Params() Params { return c.params }

// IVResult holds a simulated current-voltage characteristic. The fields
// are parallel slices indexed by the voltage sweep.
type IVResult struct {
	Voltage        []float64 // applied cell voltage [V]
	Current        []float64 // total cell current [A]
	CurrentDensity []float64 // current density [A/m²]
	Power          []float64 // electrical power [W]
	Efficiency     []float64 // voltage efficiency [-]
}

// Len returns the number of points in the sweep.
func (r *IVResult) Len() int { return len(r.Voltage) }

// MaxCurrentDensity returns the largest current density in the sweep [A/m²].
func (r *IVResult) MaxCurrentDensity() float64 { return floats.Max(r.CurrentDensity) }

// MaxCurrent returns the largest cell current in the sweep [A]. The
// rate-limiting continuity rule makes the current non-monotonic in
// voltage near the oxygen equilibrium potential, so the maximum is not
// necessarily at the end of the sweep.
func (r *IVResult) MaxCurrent() float64 { return floats.Max(r.Current) }

// MinEfficiency returns the smallest voltage efficiency in the sweep.
func (r *IVResult) MinEfficiency() float64 { return floats.Min(r.Efficiency) }

// SimulateIV sweeps the applied cell voltage from vmin to vmax [V] over
// n evenly spaced points and returns the resulting current-voltage
// characteristic, which is also retained by the cell for later queries.
//
// The sweep assumes a uniform hydrogen-ion concentration equivalent to
// pH 7. At each voltage the cell current density is the minimum of the
// absolute anode (n=4) and cathode (n=2) Butler-Volmer current
// densities: the rate-limiting electrode governs the cell current. This
// deliberately simplified continuity rule ignores charge-balance
// stoichiometry.
func (c *Cell) SimulateIV(vmin, vmax float64, n int) (*IVResult, error) {
	if vmax <= vmin {
		return nil, fmt.Errorf("fluxcell: invalid voltage range [%g, %g]", vmin, vmax)
	}
	if n < 2 {
		return nil, fmt.Errorf("fluxcell: voltage sweep needs at least 2 points; got %d", n)
	}

	conc := Concentrations{"H+": sweepHConc}
	area := c.params.Area()

	r := &IVResult{
		Voltage:        floats.Span(make([]float64, n), vmin, vmax),
		Current:        make([]float64, n),
		CurrentDensity: make([]float64, n),
		Power:          make([]float64, n),
		Efficiency:     make([]float64, n),
	}
	for i, v := range r.Voltage {
		etaA, etaC := c.Overpotentials(v, conc)
		iA := c.ButlerVolmer(etaA, c.params.AnodeI0, c.params.AlphaA, anodeElectrons)
		iC := c.ButlerVolmer(etaC, c.params.CathodeI0, c.params.AlphaC, cathodeElectrons)
		iCell := math.Min(math.Abs(iA), math.Abs(iC))

		r.CurrentDensity[i] = iCell
		r.Current[i] = iCell * area
		r.Power[i] = v * r.Current[i]
		r.Efficiency[i] = c.EnergyEfficiency(v)
	}
	c.results = r
	return r, nil
}

// Results returns the most recent simulation results, or ErrNoResults
// if SimulateIV has not been run.
func (c *Cell) Results() (*IVResult, error) {
	if c.results == nil {
		return nil, ErrNoResults
	}
	return c.results, nil
}

// HydrogenProduction returns the hydrogen production rate [mol/s] for a
// cell current [A], by Faraday's law for a 2-electron reduction.
func (c *Cell) HydrogenProduction(current float64) float64 {
	return current / (2 * FaradayConstant)
}

// EnergyEfficiency returns the energy efficiency of the cell at an
// applied voltage [V]. The current terms of the theoretical and actual
// power cancel, leaving the ratio of the theoretical cell voltage to
// the applied voltage.
func (c *Cell) EnergyEfficiency(voltage float64) float64 {
	return TheoreticalCellVoltage / voltage
}
