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

// Package fluxcell models the performance of a membraneless electrolyzer
// for hydrogen production and analyzes measurements from electrolyzer
// experiments.
package fluxcell

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// Version gives the version number of this version of Fluxcell.
const Version = "0.1.0"

// Physical constants.
const (
	// FaradayConstant is the charge of one mole of electrons [C/mol].
	FaradayConstant = 96485.3329

	// GasConstant is the universal gas constant [J/mol/K].
	GasConstant = 8.3144598

	// AvogadroNumber is the number of entities in one mole [1/mol].
	AvogadroNumber = 6.02214076e23

	// StandardTemperature [K] and StandardPressure [Pa].
	StandardTemperature = 298.15
	StandardPressure    = 101325.
)

// Electrochemical constants [V vs SHE].
const (
	StandardHydrogenPotential = 0.0
	StandardOxygenPotential   = 1.229

	// TheoreticalCellVoltage is the minimum thermodynamic voltage for
	// water splitting at standard conditions.
	TheoreticalCellVoltage = 1.229
)

// Water properties at 25°C.
const (
	WaterDensity         = 997.0  // [kg/m³]
	WaterViscosity25C    = 8.9e-4 // [Pa·s]
	WaterMolecularWeight = 18.015 // [g/mol]
)

// Material properties of the electrodes and electrolyte.
const (
	ElectrodeConductivity   = 1.e6   // [S/m], carbon electrodes
	ElectrolyteConductivity = 10.9   // [S/m], 1 M NaCl
	HydrogenSolubility      = 7.8e-6 // [mol/m³/Pa]
	OxygenSolubility        = 1.3e-5 // [mol/m³/Pa]

	ElectrolyteConcentration = 1000. // [mol/m³] (1 M)
	ElectrolytePH            = 7.0
)

// Numerical parameters for the solvers.
const (
	RelativeTolerance = 1.e-6
	AbsoluteTolerance = 1.e-9
	MaxIterations     = 100
)

// diffusionCoefficients holds ionic and molecular diffusion coefficients
// in water at 25°C [m²/s].
var diffusionCoefficients = map[string]float64{
	"H+":  9.31e-9,
	"OH-": 5.27e-9,
	"H2":  4.5e-9,
	"O2":  2.0e-9,
	"H2O": 2.3e-9,
}

// defaultDiffusion is used for species missing from the table [m²/s].
const defaultDiffusion = 1.e-9

// WaterDynamicViscosity returns the dynamic viscosity of water [Pa·s] at
// temperature T [K], using the Vogel equation
// μ = A·exp(B/(T − C)) with T in kelvin.
func WaterDynamicViscosity(T float64) float64 {
	const (
		a = 0.02939 // [cP]
		b = 507.88  // [K]
		c = 149.3   // [K]
	)
	return a * math.Exp(b/(T-c)) * 1.e-3 // cP to Pa·s
}

// DiffusionCoefficient returns the diffusion coefficient [m²/s] of the
// given species at temperature T [K]. The 25°C table value is scaled by
// the Stokes-Einstein temperature and viscosity ratio.
func DiffusionCoefficient(species string, T float64) float64 {
	base, ok := diffusionCoefficients[species]
	if !ok {
		base = defaultDiffusion
	}
	return base * (T / StandardTemperature) *
		(WaterViscosity25C / WaterDynamicViscosity(T))
}

// Params holds the geometric, kinetic, and operating parameters of one
// electrolyzer cell. A Cell owns exactly one Params for its lifetime;
// construct a new Cell to change parameters.
type Params struct {
	Length        float64 // electrode length [m]
	Width         float64 // electrode width [m]
	Separation    float64 // electrode separation [m]
	Temperature   float64 // operating temperature [K]
	Pressure      float64 // operating pressure [Pa]
	InletVelocity float64 // electrolyte inlet velocity [m/s]
	AnodeI0       float64 // anode exchange current density [A/m²]
	CathodeI0     float64 // cathode exchange current density [A/m²]
	AlphaA        float64 // anode charge-transfer coefficient
	AlphaC        float64 // cathode charge-transfer coefficient
	Roughness     float64 // electrode surface roughness factor
}

// DefaultParams returns the default cell parameters.
func DefaultParams() Params {
	return Params{
		Length:        0.05,
		Width:         0.02,
		Separation:    0.005,
		Temperature:   StandardTemperature,
		Pressure:      StandardPressure,
		InletVelocity: 0.01,
		AnodeI0:       1.e-3,
		CathodeI0:     1.e-2,
		AlphaA:        0.5,
		AlphaC:        0.5,
		Roughness:     100,
	}
}

// Area returns the active electrode area [m²].
func (p Params) Area() float64 { return p.Length * p.Width }

// paramsFile mirrors Params in a TOML parameter file. Pointer fields
// distinguish omitted keys, which keep their default values.
type paramsFile struct {
	Length        *float64 `toml:"length"`
	Width         *float64 `toml:"width"`
	Separation    *float64 `toml:"separation"`
	Temperature   *float64 `toml:"temperature"`
	Pressure      *float64 `toml:"pressure"`
	InletVelocity *float64 `toml:"inlet_velocity"`
	AnodeI0       *float64 `toml:"anode_i0"`
	CathodeI0     *float64 `toml:"cathode_i0"`
	AlphaA        *float64 `toml:"alpha_a"`
	AlphaC        *float64 `toml:"alpha_c"`
	Roughness     *float64 `toml:"roughness"`
}

// ParamsFromFile reads cell parameters from the TOML file at path.
// Keys omitted from the file keep their default values.
func ParamsFromFile(path string) (Params, error) {
	p := DefaultParams()
	f, err := os.Open(path)
	if err != nil {
		return p, fmt.Errorf("fluxcell: opening parameter file: %v", err)
	}
	defer f.Close()
	var pf paramsFile
	if _, err := toml.DecodeReader(f, &pf); err != nil {
		return p, fmt.Errorf("fluxcell: decoding parameter file %s: %v", path, err)
	}
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.Length, pf.Length)
	set(&p.Width, pf.Width)
	set(&p.Separation, pf.Separation)
	set(&p.Temperature, pf.Temperature)
	set(&p.Pressure, pf.Pressure)
	set(&p.InletVelocity, pf.InletVelocity)
	set(&p.AnodeI0, pf.AnodeI0)
	set(&p.CathodeI0, pf.CathodeI0)
	set(&p.AlphaA, pf.AlphaA)
	set(&p.AlphaC, pf.AlphaC)
	set(&p.Roughness, pf.Roughness)
	return p, nil
}
