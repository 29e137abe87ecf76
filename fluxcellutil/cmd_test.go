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

package fluxcellutil

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/fluxcell/fluxcell"
	"github.com/kr/pretty"
)

func TestCellParamsDefaults(t *testing.T) {
	p, err := cellParams(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := fluxcell.DefaultParams()
	if diff := pretty.Diff(want, p); len(diff) > 0 {
		t.Error(diff)
	}
}

func TestCellParamsFlags(t *testing.T) {
	Cfg.Set("temperature", 333.15)
	Cfg.Set("roughness", 250.0)
	defer func() {
		Cfg.Set("temperature", fluxcell.DefaultParams().Temperature)
		Cfg.Set("roughness", fluxcell.DefaultParams().Roughness)
	}()
	p, err := cellParams(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if p.Temperature != 333.15 {
		t.Errorf("temperature: %g != 333.15", p.Temperature)
	}
	if p.Roughness != 250 {
		t.Errorf("roughness: %g != 250", p.Roughness)
	}
}

func TestCellParamsFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "fluxcellutil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "params.toml")
	if err := ioutil.WriteFile(path, []byte("temperature = 353.15\n"), 0644); err != nil {
		t.Fatal(err)
	}
	Cfg.Set("params", path)
	Cfg.Set("temperature", 275.0) // The file should win over this.
	defer func() {
		Cfg.Set("params", "")
		Cfg.Set("temperature", fluxcell.DefaultParams().Temperature)
	}()
	p, err := cellParams(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if p.Temperature != 353.15 {
		t.Errorf("temperature: %g != 353.15", p.Temperature)
	}
	// Unset fields keep their defaults.
	if p.Length != fluxcell.DefaultParams().Length {
		t.Errorf("length: %g != %g", p.Length, fluxcell.DefaultParams().Length)
	}
}

func TestSaveIVCurve(t *testing.T) {
	cell := fluxcell.NewCell(fluxcell.DefaultParams())
	r, err := cell.SimulateIV(1.0, 2.5, 10)
	if err != nil {
		t.Fatal(err)
	}
	dir, err := ioutil.TempDir("", "fluxcellutil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "iv.csv")
	if err := SaveIVCurve(r, path); err != nil {
		t.Fatal(err)
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := 0
	for _, c := range b {
		if c == '\n' {
			lines++
		}
	}
	if want := r.Len() + 1; lines != want { // header plus one row per point
		t.Errorf("%d lines != %d", lines, want)
	}
}

func TestVersionCmd(t *testing.T) {
	Root.SetArgs([]string{"version"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
}

func TestRunCmd(t *testing.T) {
	dir, err := ioutil.TempDir("", "fluxcellutil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	out := filepath.Join(dir, "iv.csv")
	Root.SetArgs([]string{"run", "--output", out})
	defer Cfg.Set("output", "")
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Error(err)
	}
}

func TestSetConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "fluxcellutil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "config.toml")
	if err := ioutil.WriteFile(path, []byte("vmin = 1.1\nvmax = 2.2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	Cfg.Set("config", path)
	defer Cfg.Set("config", "")
	if err := setConfig(); err != nil {
		t.Fatal(err)
	}
	if v := Cfg.GetFloat64("vmin"); v != 1.1 {
		t.Errorf("vmin: %g != 1.1", v)
	}
	if v := Cfg.GetFloat64("vmax"); v != 2.2 {
		t.Errorf("vmax: %g != 2.2", v)
	}
}
