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
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Column names of the experimental data files. They must match the
// on-disk headers exactly.
const (
	colVoltage               = "voltage_V"
	colCurrentDensity        = "current_density_A_m2"
	colCurrent               = "current_A"
	colUncertainty           = "uncertainty_A"
	colH2Production          = "h2_production_mmol_s"
	colFaradaicEfficiency    = "faradaic_efficiency"
	colUncertaintyEfficiency = "uncertainty_efficiency"
)

// IVTable holds measured current-voltage data, one entry per row of the
// source file. It is read-only after loading.
type IVTable struct {
	Voltage        []float64 // [V]
	CurrentDensity []float64 // [A/m²]
	Current        []float64 // [A]
	Uncertainty    []float64 // current uncertainty [A]
}

// Len returns the number of measurements in the table.
func (t *IVTable) Len() int { return len(t.Voltage) }

// H2Table holds measured hydrogen production data, one entry per row of
// the source file. It is read-only after loading.
type H2Table struct {
	CurrentDensity        []float64 // [A/m²]
	Production            []float64 // hydrogen production rate [mmol/s]
	FaradaicEfficiency    []float64 // [-]
	UncertaintyEfficiency []float64 // [-]
}

// Len returns the number of measurements in the table.
func (t *H2Table) Len() int { return len(t.CurrentDensity) }

// TableLoader reads experimental data tables. The default implementation
// is FileLoader; tests substitute counting doubles to verify the
// load-once contract.
type TableLoader interface {
	IVTable(path string) (*IVTable, error)
	H2Table(path string) (*H2Table, error)
}

// FileLoader loads data tables from delimited text files. Fields are
// comma-separated with a header row naming the columns; lines beginning
// with '#' are ignored.
type FileLoader struct{}

// IVTable loads a current-voltage measurement table from path.
func (FileLoader) IVTable(path string) (*IVTable, error) {
	cols, err := readColumns(path, []string{
		colVoltage, colCurrentDensity, colCurrent, colUncertainty})
	if err != nil {
		return nil, err
	}
	return &IVTable{
		Voltage:        cols[0],
		CurrentDensity: cols[1],
		Current:        cols[2],
		Uncertainty:    cols[3],
	}, nil
}

// H2Table loads a hydrogen production measurement table from path.
func (FileLoader) H2Table(path string) (*H2Table, error) {
	cols, err := readColumns(path, []string{
		colCurrentDensity, colH2Production, colFaradaicEfficiency,
		colUncertaintyEfficiency})
	if err != nil {
		return nil, err
	}
	return &H2Table{
		CurrentDensity:        cols[0],
		Production:            cols[1],
		FaradaicEfficiency:    cols[2],
		UncertaintyEfficiency: cols[3],
	}, nil
}

// readColumns reads the named columns from the delimited file at path,
// returning them in the requested order. The file may hold additional
// columns, which are ignored.
func readColumns(path string, names []string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fluxcell: opening data file: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("fluxcell: reading header of %s: %v", path, err)
	}
	index := make([]int, len(names))
	for i, name := range names {
		index[i] = -1
		for j, h := range header {
			if strings.TrimSpace(h) == name {
				index[i] = j
				break
			}
		}
		if index[i] == -1 {
			return nil, fmt.Errorf("fluxcell: %s is missing column %q", path, name)
		}
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("fluxcell: reading %s: %v", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("fluxcell: %s holds no data rows", path)
	}
	cols := make([][]float64, len(names))
	for i := range cols {
		cols[i] = make([]float64, len(records))
	}
	for row, rec := range records {
		for i, j := range index {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[j]), 64)
			if err != nil {
				return nil, fmt.Errorf("fluxcell: %s row %d column %q: %v",
					path, row+1, names[i], err)
			}
			cols[i][row] = v
		}
	}
	return cols, nil
}
