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
	"os"

	"github.com/fluxcell/fluxcell"
	"github.com/lnashier/viper"
	"github.com/spf13/cast"
)

// cellParams assembles the cell parameters from the configuration. A
// parameter file given by the params option takes precedence over the
// individual parameter options.
func cellParams(cfg *viper.Viper) (fluxcell.Params, error) {
	if path := os.ExpandEnv(cfg.GetString("params")); path != "" {
		return fluxcell.ParamsFromFile(path)
	}
	p := fluxcell.DefaultParams()
	p.Length = cast.ToFloat64(cfg.Get("length"))
	p.Width = cast.ToFloat64(cfg.Get("width"))
	p.Separation = cast.ToFloat64(cfg.Get("separation"))
	p.Temperature = cast.ToFloat64(cfg.Get("temperature"))
	p.Pressure = cast.ToFloat64(cfg.Get("pressure"))
	p.InletVelocity = cast.ToFloat64(cfg.Get("inlet_velocity"))
	p.AnodeI0 = cast.ToFloat64(cfg.Get("anode_i0"))
	p.CathodeI0 = cast.ToFloat64(cfg.Get("cathode_i0"))
	p.AlphaA = cast.ToFloat64(cfg.Get("alpha_a"))
	p.AlphaC = cast.ToFloat64(cfg.Get("alpha_c"))
	p.Roughness = cast.ToFloat64(cfg.Get("roughness"))
	return p, nil
}
