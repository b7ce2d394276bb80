package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/1n0r1/euler-fluid-sim/pkg/fluid"
	"github.com/1n0r1/euler-fluid-sim/pkg/preset"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "fluidsim",
		Short: "Incompressible 2-D flow solver",
		Long: "fluidsim advances a finite-difference incompressible flow solver on a\n" +
			"staggered grid and renders the resulting velocity, pressure, and\n" +
			"stream-function fields.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.AddCommand(
		newRunCmd(),
		newRenderCmd(),
		newVideoCmd(),
		newPresetsCmd(),
		newBenchCmd(),
	)
	return cmd
}

// simOptions are the flags every solver-driving subcommand shares.
type simOptions struct {
	preset   string
	scenario string
	set      []string
}

func (o *simOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.preset, "preset", "cylinder", "preset to run")
	cmd.Flags().StringVar(&o.scenario, "scenario", "", "TOML scenario file, overrides --preset")
	cmd.Flags().StringArrayVar(&o.set, "set", nil, "preset override, key=value (repeatable)")
}

func (o *simOptions) build() (*fluid.Simulation, string, error) {
	if o.scenario != "" {
		sc, err := preset.LoadScenario(o.scenario)
		if err != nil {
			return nil, "", err
		}
		sim, err := sc.Build()
		if err != nil {
			return nil, "", err
		}
		name := sc.Name
		if name == "" {
			name = filepath.Base(o.scenario)
		}
		return sim, name, nil
	}

	info, ok := preset.Lookup(o.preset)
	if !ok {
		return nil, "", fmt.Errorf("unknown preset %q (have %s)",
			o.preset, strings.Join(preset.Names(), ", "))
	}
	overrides, err := preset.ParseOverrides(o.set)
	if err != nil {
		return nil, "", err
	}
	sim, err := info.New(overrides)
	if err != nil {
		return nil, "", err
	}
	return sim, o.preset, nil
}

func startLog(sim *fluid.Simulation, name string) *logrus.Entry {
	nx, ny := sim.Grid().Size()
	return logrus.WithFields(logrus.Fields{
		"scenario": name,
		"grid":     fmt.Sprintf("%dx%d", nx, ny),
		"dt":       sim.DeltaTime(),
	})
}
