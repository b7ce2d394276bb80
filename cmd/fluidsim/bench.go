package main

import (
	"fmt"
	"time"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type benchOptions struct {
	sim    simOptions
	steps  int
	warmup int
}

func newBenchCmd() *cobra.Command {
	opts := &benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure per-step wall time",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(opts)
		},
	}
	opts.sim.bind(cmd)
	cmd.Flags().IntVar(&opts.steps, "steps", 100, "timed steps")
	cmd.Flags().IntVar(&opts.warmup, "warmup", 10, "untimed steps before measuring")
	return cmd
}

func runBench(opts *benchOptions) error {
	if opts.steps < 2 {
		return fmt.Errorf("bench: need at least two timed steps")
	}
	sim, name, err := opts.sim.build()
	if err != nil {
		return err
	}
	startLog(sim, name).Info("starting bench")

	for i := 0; i < opts.warmup; i++ {
		sim.Step()
	}

	var st, sw stats.Stats
	for i := 0; i < opts.steps; i++ {
		start := time.Now()
		sim.Step()
		st.Update(float64(time.Since(start).Nanoseconds()) / 1e6)
		sw.Update(float64(sim.PoissonSweeps()))
	}

	logrus.WithFields(logrus.Fields{
		"steps":         opts.steps,
		"mean_ms":       fmt.Sprintf("%.3f", st.Mean()),
		"stddev_ms":     fmt.Sprintf("%.3f", st.SampleStandardDeviation()),
		"min_ms":        fmt.Sprintf("%.3f", st.Min()),
		"max_ms":        fmt.Sprintf("%.3f", st.Max()),
		"mean_sweeps":   fmt.Sprintf("%.1f", sw.Mean()),
		"max_sweeps":    int(sw.Max()),
		"non_converged": sim.NonConvergedSteps(),
	}).Info("bench finished")
	return nil
}
