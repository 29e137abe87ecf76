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
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/kr/pretty"
)

func TestLoadIVTable(t *testing.T) {
	table, err := FileLoader{}.IVTable(filepath.Join("testdata", DefaultIVFile))
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 16 {
		t.Fatalf("loaded %d rows; want 16", table.Len())
	}
	if absDifferent(table.Voltage[0], 1.0, testTolerance) {
		t.Errorf("first voltage = %g; want 1.0", table.Voltage[0])
	}
	if absDifferent(table.CurrentDensity[15], 564.3, testTolerance) {
		t.Errorf("last current density = %g; want 564.3", table.CurrentDensity[15])
	}
}

func TestLoadH2Table(t *testing.T) {
	table, err := FileLoader{}.H2Table(filepath.Join("testdata", DefaultH2File))
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 8 {
		t.Fatalf("loaded %d rows; want 8", table.Len())
	}
	if absDifferent(table.FaradaicEfficiency[0], 1.001, testTolerance) {
		t.Errorf("first Faradaic efficiency = %g; want 1.001", table.FaradaicEfficiency[0])
	}
}

// Comment lines and extra columns are tolerated; column order does not
// matter because columns are matched by name.
func TestLoadReorderedColumns(t *testing.T) {
	dir, err := ioutil.TempDir("", "fluxcell")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "iv.csv")
	data := "# comment line\n" +
		"current_A,voltage_V,extra,uncertainty_A,current_density_A_m2\n" +
		"# another comment\n" +
		"0.25,1.5,9,0.001,25\n" +
		"0.50,1.6,9,0.001,50\n"
	if err := ioutil.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	table, err := FileLoader{}.IVTable(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &IVTable{
		Voltage:        []float64{1.5, 1.6},
		CurrentDensity: []float64{25, 50},
		Current:        []float64{0.25, 0.50},
		Uncertainty:    []float64{0.001, 0.001},
	}
	if diff := pretty.Diff(table, want); len(diff) > 0 {
		t.Errorf("loaded table differs from expected: %v", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := (FileLoader{}).IVTable("testdata/missing.csv"); err == nil {
		t.Error("expected error for missing file")
	}

	dir, err := ioutil.TempDir("", "fluxcell")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	// Missing column.
	path := filepath.Join(dir, "bad.csv")
	if err := ioutil.WriteFile(path,
		[]byte("voltage_V,current_A\n1.5,0.25\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := (FileLoader{}).IVTable(path); err == nil {
		t.Error("expected error for missing column")
	}

	// Malformed number.
	path = filepath.Join(dir, "malformed.csv")
	if err := ioutil.WriteFile(path,
		[]byte("voltage_V,current_density_A_m2,current_A,uncertainty_A\n1.5,abc,0.25,0.001\n"),
		0644); err != nil {
		t.Fatal(err)
	}
	if _, err := (FileLoader{}).IVTable(path); err == nil {
		t.Error("expected error for malformed value")
	}

	// A header without data rows is rejected at load time so that
	// interpolation and statistics never see empty columns.
	path = filepath.Join(dir, "empty.csv")
	if err := ioutil.WriteFile(path,
		[]byte("# comment\nvoltage_V,current_density_A_m2,current_A,uncertainty_A\n"),
		0644); err != nil {
		t.Fatal(err)
	}
	if _, err := (FileLoader{}).IVTable(path); err == nil {
		t.Error("expected error for header-only file")
	}
	path = filepath.Join(dir, "emptyh2.csv")
	if err := ioutil.WriteFile(path,
		[]byte("current_density_A_m2,h2_production_mmol_s,faradaic_efficiency,uncertainty_efficiency\n"),
		0644); err != nil {
		t.Fatal(err)
	}
	if _, err := (FileLoader{}).H2Table(path); err == nil {
		t.Error("expected error for header-only file")
	}
}
