package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/1n0r1/euler-fluid-sim/internal/render"
)

type renderOptions struct {
	sim        simOptions
	steps      int
	out        string
	field      string
	palette    string
	pixelScale int
	arrows     bool
	heatmap    string
	profile    string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Advance a simulation and write still images",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderStills(opts)
		},
	}
	opts.sim.bind(cmd)
	cmd.Flags().IntVar(&opts.steps, "steps", 200, "timesteps before capturing")
	cmd.Flags().StringVar(&opts.out, "out", "frame.png", "output PNG for the raw field raster")
	cmd.Flags().StringVar(&opts.field, "field", "speed", "field to render (speed, pressure, psi)")
	cmd.Flags().StringVar(&opts.palette, "palette", "viridis", "color palette")
	cmd.Flags().IntVar(&opts.pixelScale, "pixel-scale", 4, "pixels per cell")
	cmd.Flags().BoolVar(&opts.arrows, "arrows", false, "overlay velocity arrows")
	cmd.Flags().StringVar(&opts.heatmap, "heatmap", "", "also write a heat map PNG with axes")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "also write a centerline u-profile PNG")
	return cmd
}

func renderStills(opts *renderOptions) error {
	if opts.steps < 0 {
		return fmt.Errorf("render: steps must not be negative")
	}
	field, err := render.ParseField(opts.field)
	if err != nil {
		return err
	}
	pal, err := render.NewPalette(opts.palette)
	if err != nil {
		return err
	}
	sim, name, err := opts.sim.build()
	if err != nil {
		return err
	}
	startLog(sim, name).Info("starting render")

	for i := 0; i < opts.steps; i++ {
		sim.Step()
	}

	img := render.RenderImage(sim.Grid(), render.FrameOptions{
		Field:   field,
		Palette: pal,
		Scale:   opts.pixelScale,
		Arrows:  opts.arrows,
	})
	if err := render.SavePNG(opts.out, img); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"path":  opts.out,
		"field": field,
		"t":     fmt.Sprintf("%.4f", sim.Time()),
	}).Info("wrote frame")

	if opts.heatmap != "" {
		if err := render.HeatmapPNG(opts.heatmap, sim.Grid(), field); err != nil {
			return err
		}
		logrus.WithField("path", opts.heatmap).Info("wrote heat map")
	}
	if opts.profile != "" {
		if err := render.CenterlineProfilePNG(opts.profile, sim.Grid()); err != nil {
			return err
		}
		logrus.WithField("path", opts.profile).Info("wrote profile")
	}
	return nil
}
