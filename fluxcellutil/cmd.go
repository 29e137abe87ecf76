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

// Package fluxcellutil holds the configuration surface and commands of
// the fluxcell command-line interface.
package fluxcellutil

import (
	"fmt"
	"os"

	"github.com/fluxcell/fluxcell"
	"github.com/fluxcell/fluxcell/figures"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
}

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	defaults := fluxcell.DefaultParams()

	// Options are the configuration options available to Fluxcell.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "params",
			usage: `
              params specifies a TOML cell parameter file. When given, it
              takes precedence over the individual parameter options below.`,
			shorthand:  "p",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), figuresCmd.Flags()},
		},
		{
			name: "length",
			usage: `
              length is the electrode length [m].`,
			defaultVal: defaults.Length,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), figuresCmd.Flags()},
		},
		{
			name: "width",
			usage: `
              width is the electrode width [m].`,
			defaultVal: defaults.Width,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), figuresCmd.Flags()},
		},
		{
			name: "separation",
			usage: `
              separation is the distance between the electrodes [m].`,
			defaultVal: defaults.Separation,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), figuresCmd.Flags()},
		},
		{
			name: "temperature",
			usage: `
              temperature is the operating temperature [K].`,
			defaultVal: defaults.Temperature,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), figuresCmd.Flags()},
		},
		{
			name: "pressure",
			usage: `
              pressure is the operating pressure [Pa].`,
			defaultVal: defaults.Pressure,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), figuresCmd.Flags()},
		},
		{
			name: "inlet_velocity",
			usage: `
              inlet_velocity is the electrolyte inlet velocity [m/s].`,
			defaultVal: defaults.InletVelocity,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), figuresCmd.Flags()},
		},
		{
			name: "anode_i0",
			usage: `
              anode_i0 is the anode exchange current density [A/m²].`,
			defaultVal: defaults.AnodeI0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), figuresCmd.Flags()},
		},
		{
			name: "cathode_i0",
			usage: `
              cathode_i0 is the cathode exchange current density [A/m²].`,
			defaultVal: defaults.CathodeI0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), figuresCmd.Flags()},
		},
		{
			name: "alpha_a",
			usage: `
              alpha_a is the anode charge-transfer coefficient.`,
			defaultVal: defaults.AlphaA,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), figuresCmd.Flags()},
		},
		{
			name: "alpha_c",
			usage: `
              alpha_c is the cathode charge-transfer coefficient.`,
			defaultVal: defaults.AlphaC,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), figuresCmd.Flags()},
		},
		{
			name: "roughness",
			usage: `
              roughness is the electrode surface roughness factor.`,
			defaultVal: defaults.Roughness,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), figuresCmd.Flags()},
		},
		{
			name: "vmin",
			usage: `
              vmin is the lower bound of the voltage sweep [V].`,
			defaultVal: fluxcell.DefaultVoltageMin,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags()},
		},
		{
			name: "vmax",
			usage: `
              vmax is the upper bound of the voltage sweep [V]. Keep the
              sweep within a physically reasonable range: extreme
              overpotentials overflow the kinetic equation.`,
			defaultVal: fluxcell.DefaultVoltageMax,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags()},
		},
		{
			name: "points",
			usage: `
              points is the number of voltage sweep points.`,
			defaultVal: fluxcell.DefaultSweepPoints,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags()},
		},
		{
			name: "output",
			usage: `
              output is a file to save the simulated current-voltage curve
              to, in delimited text format. If empty, the curve is not saved.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags()},
		},
		{
			name: "data_dir",
			usage: `
              data_dir is the directory holding the experimental data files.`,
			shorthand:  "d",
			defaultVal: "data/experimental",
			flagsets:   []*pflag.FlagSet{analyzeCmd.Flags(), figuresCmd.Flags()},
		},
		{
			name: "tafel_vmin",
			usage: `
              tafel_vmin is the lower bound of the Tafel fitting window [V].`,
			defaultVal: fluxcell.DefaultTafelMin,
			flagsets:   []*pflag.FlagSet{analyzeCmd.Flags()},
		},
		{
			name: "tafel_vmax",
			usage: `
              tafel_vmax is the upper bound of the Tafel fitting window [V].`,
			defaultVal: fluxcell.DefaultTafelMax,
			flagsets:   []*pflag.FlagSet{analyzeCmd.Flags()},
		},
		{
			name: "figures_dir",
			usage: `
              figures_dir is the directory the rendered figures are written to.`,
			defaultVal: "figures_out",
			flagsets:   []*pflag.FlagSet{figuresCmd.Flags()},
		},
		{
			name: "show",
			usage: `
              show opens the figure output directory after rendering.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{figuresCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("FLUXCELL")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, v, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, v, option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, v, option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, v, option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, v, option.usage)
				} else {
					set.IntP(option.name, option.shorthand, v, option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, v, option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, v, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(analyzeCmd)
	Root.AddCommand(figuresCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("fluxcell: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "fluxcell",
	Short: "A membraneless electrolyzer performance model.",
	Long: `Fluxcell models the current-voltage behavior and hydrogen production of a
membraneless water electrolyzer and analyzes experimental measurements.
Use the subcommands specified below to access the model functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'FLUXCELL_var' where 'var'
is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Fluxcell.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Fluxcell v%s\n", fluxcell.Version)
	},
	DisableAutoGenTag: true,
}

// runCmd simulates the current-voltage characteristic of the cell.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate the cell's current-voltage curve.",
	Long: `run sweeps the applied voltage over the configured range and reports the
simulated performance of the cell.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cellParams(Cfg)
		if err != nil {
			return err
		}
		cell := fluxcell.NewCell(p)
		r, err := cell.SimulateIV(Cfg.GetFloat64("vmin"), Cfg.GetFloat64("vmax"),
			Cfg.GetInt("points"))
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"points": r.Len(),
			"vmin":   r.Voltage[0],
			"vmax":   r.Voltage[r.Len()-1],
		}).Info("simulation finished")
		logger.Infof("maximum current density: %.2f A/m²", r.MaxCurrentDensity())
		logger.Infof("minimum voltage efficiency: %.3f", r.MinEfficiency())
		logger.Infof("hydrogen production at maximum current: %.4g mol/s",
			cell.HydrogenProduction(r.MaxCurrent()))

		if out := os.ExpandEnv(Cfg.GetString("output")); out != "" {
			if err := SaveIVCurve(r, out); err != nil {
				return err
			}
			logger.Infof("saved current-voltage curve to %s", out)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// analyzeCmd summarizes the experimental measurements.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze experimental measurement data.",
	Long: `analyze loads the measured current-voltage and hydrogen production tables,
fits the Tafel relation over the configured voltage window, and prints a
summary report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := fluxcell.NewAnalysis(os.ExpandEnv(Cfg.GetString("data_dir")))
		fit, err := a.FitTafel(Cfg.GetFloat64("tafel_vmin"), Cfg.GetFloat64("tafel_vmax"))
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"a":  fit.A,
			"b":  fit.B,
			"r2": fit.RSquared,
		}).Info("tafel fit")

		report, err := a.SummaryReport()
		if err != nil {
			return err
		}
		cmd.Println(report)
		return nil
	},
	DisableAutoGenTag: true,
}

// figuresCmd renders the publication figures.
var figuresCmd = &cobra.Command{
	Use:   "figures",
	Short: "Render the publication figures.",
	Long: `figures renders the figure set combining the theoretical model with the
experimental analysis into the configured output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cellParams(Cfg)
		if err != nil {
			return err
		}
		dir := os.ExpandEnv(Cfg.GetString("figures_dir"))
		g := figures.New(
			fluxcell.NewCell(p),
			fluxcell.NewAnalysis(os.ExpandEnv(Cfg.GetString("data_dir"))),
		)
		if err := g.All(dir); err != nil {
			return err
		}
		logger.Infof("rendered figures to %s", dir)
		if Cfg.GetBool("show") {
			return open.Run(dir)
		}
		return nil
	},
	DisableAutoGenTag: true,
}
