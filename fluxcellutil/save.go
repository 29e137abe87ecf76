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
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/fluxcell/fluxcell"
)

// SaveIVCurve writes a simulated current-voltage curve to path in CSV
// format, one row per sweep point.
func SaveIVCurve(r *fluxcell.IVResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fluxcell: creating output file: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"voltage_V", "current_A", "current_density_A_m2",
		"power_W", "efficiency"}); err != nil {
		return fmt.Errorf("fluxcell: writing output file %s: %v", path, err)
	}
	for i := 0; i < r.Len(); i++ {
		row := []string{
			strconv.FormatFloat(r.Voltage[i], 'g', -1, 64),
			strconv.FormatFloat(r.Current[i], 'g', -1, 64),
			strconv.FormatFloat(r.CurrentDensity[i], 'g', -1, 64),
			strconv.FormatFloat(r.Power[i], 'g', -1, 64),
			strconv.FormatFloat(r.Efficiency[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("fluxcell: writing output file %s: %v", path, err)
		}
	}
	w.Flush()
	return w.Error()
}
