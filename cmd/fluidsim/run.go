package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/1n0r1/euler-fluid-sim/internal/render"
)

type runOptions struct {
	sim         simOptions
	steps       int
	report      int
	snapshot    int
	snapshotDir string
	field       string
	palette     string
	pixelScale  int
	sweepChart  string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance a simulation and report solver statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(opts)
		},
	}
	opts.sim.bind(cmd)
	cmd.Flags().IntVar(&opts.steps, "steps", 200, "number of timesteps")
	cmd.Flags().IntVar(&opts.report, "report", 50, "log progress every n steps, 0 to disable")
	cmd.Flags().IntVar(&opts.snapshot, "snapshot", 0, "write a field PNG every n steps, 0 to disable")
	cmd.Flags().StringVar(&opts.snapshotDir, "snapshot-dir", "snapshots", "directory for snapshot PNGs")
	cmd.Flags().StringVar(&opts.field, "field", "speed", "field for snapshots (speed, pressure, psi)")
	cmd.Flags().StringVar(&opts.palette, "palette", "viridis", "color palette for snapshots")
	cmd.Flags().IntVar(&opts.pixelScale, "pixel-scale", 4, "pixels per cell in snapshots")
	cmd.Flags().StringVar(&opts.sweepChart, "sweep-chart", "", "write a PNG chart of pressure sweeps per step")
	return cmd
}

func runSimulation(opts *runOptions) error {
	if opts.steps < 1 {
		return fmt.Errorf("run: need at least one step")
	}
	var frame render.FrameOptions
	if opts.snapshot > 0 {
		field, err := render.ParseField(opts.field)
		if err != nil {
			return err
		}
		pal, err := render.NewPalette(opts.palette)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(opts.snapshotDir, 0o755); err != nil {
			return fmt.Errorf("run: %w", err)
		}
		frame = render.FrameOptions{Field: field, Palette: pal, Scale: opts.pixelScale}
	}
	sim, name, err := opts.sim.build()
	if err != nil {
		return err
	}
	startLog(sim, name).Info("starting run")

	start := time.Now()
	sweeps := make([]int, 0, opts.steps)
	for i := 1; i <= opts.steps; i++ {
		sim.Step()
		sweeps = append(sweeps, sim.PoissonSweeps())
		if opts.report > 0 && i%opts.report == 0 {
			speed := sim.Grid().SpeedRange()
			logrus.WithFields(logrus.Fields{
				"step":   i,
				"t":      fmt.Sprintf("%.4f", sim.Time()),
				"sweeps": sim.PoissonSweeps(),
				"vmax":   fmt.Sprintf("%.4f", speed.Max),
			}).Info("progress")
		}
		if opts.snapshot > 0 && i%opts.snapshot == 0 {
			path := filepath.Join(opts.snapshotDir, fmt.Sprintf("step_%05d.png", i))
			if err := render.SavePNG(path, render.RenderImage(sim.Grid(), frame)); err != nil {
				return err
			}
			logrus.WithField("path", path).Debug("wrote snapshot")
		}
	}
	elapsed := time.Since(start)

	logrus.WithFields(logrus.Fields{
		"steps":         opts.steps,
		"elapsed":       elapsed.Round(time.Millisecond),
		"per_step":      (elapsed / time.Duration(opts.steps)).Round(time.Microsecond),
		"non_converged": sim.NonConvergedSteps(),
	}).Info("run finished")

	if opts.sweepChart != "" {
		if err := render.SweepChartPNG(opts.sweepChart, sweeps); err != nil {
			return err
		}
		logrus.WithField("path", opts.sweepChart).Info("wrote sweep chart")
	}
	return nil
}
