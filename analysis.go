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

import "path/filepath"

// Default file names of the experimental data tables.
const (
	DefaultIVFile = "current_voltage_measurements.csv"
	DefaultH2File = "hydrogen_production_rates.csv"
)

// Analysis loads and analyzes experimental electrolyzer data. The two
// data tables are loaded on first use and cached; Reload discards the
// cache so the next access reloads from the source. An Analysis is not
// safe for concurrent use.
type Analysis struct {
	// DataDir is the directory holding the experimental data files.
	DataDir string

	// IVFile and H2File are the data file names within DataDir.
	// NewAnalysis sets them to the defaults.
	IVFile, H2File string

	// Loader reads the data tables. NewAnalysis sets it to a FileLoader.
	Loader TableLoader

	iv *IVTable
	h2 *H2Table
}

// NewAnalysis returns an Analysis reading the default data files from
// dataDir.
func NewAnalysis(dataDir string) *Analysis {
	return &Analysis{
		DataDir: dataDir,
		IVFile:  DefaultIVFile,
		H2File:  DefaultH2File,
		Loader:  FileLoader{},
	}
}

// IVData returns the current-voltage measurement table, loading it on
// first use. Repeated calls return the same cached table.
func (a *Analysis) IVData() (*IVTable, error) {
	if a.iv == nil {
		t, err := a.Loader.IVTable(filepath.Join(a.DataDir, a.IVFile))
		if err != nil {
			return nil, err
		}
		a.iv = t
	}
	return a.iv, nil
}

// H2Data returns the hydrogen production measurement table, loading it
// on first use. Repeated calls return the same cached table.
func (a *Analysis) H2Data() (*H2Table, error) {
	if a.h2 == nil {
		t, err := a.Loader.H2Table(filepath.Join(a.DataDir, a.H2File))
		if err != nil {
			return nil, err
		}
		a.h2 = t
	}
	return a.h2, nil
}

// Reload discards the cached tables so that the next data access loads
// them again from the source.
func (a *Analysis) Reload() {
	a.iv = nil
	a.h2 = nil
}

// InterpCurrentDensity returns the current density [A/m²] at the given
// voltage [V], linearly interpolated from the measured IV curve.
func (a *Analysis) InterpCurrentDensity(voltage float64) (float64, error) {
	t, err := a.IVData()
	if err != nil {
		return 0, err
	}
	return interp(voltage, t.Voltage, t.CurrentDensity), nil
}

// InterpVoltage returns the voltage [V] at the given current density
// [A/m²], linearly interpolated from the measured IV curve.
func (a *Analysis) InterpVoltage(currentDensity float64) (float64, error) {
	t, err := a.IVData()
	if err != nil {
		return 0, err
	}
	return interp(currentDensity, t.CurrentDensity, t.Voltage), nil
}

// interp linearly interpolates y at x from the sample points (xs, ys),
// where xs must be non-empty and monotonically increasing. Queries
// outside the sample domain clamp to the boundary values rather than
// extrapolating.
func interp(x float64, xs, ys []float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	for i := 1; i < len(xs); i++ {
		if x <= xs[i] {
			frac := (x - xs[i-1]) / (xs[i] - xs[i-1])
			return ys[i-1] + frac*(ys[i]-ys[i-1])
		}
	}
	return ys[len(ys)-1] // clamp above the sample domain
}
