package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"os"

	"github.com/1n0r1/euler-fluid-sim/pkg/fluid"
)

// AnimationOptions control the capture loop shared by the GIF and AVI
// writers: how many frames to record and how far the simulation advances
// between captures.
type AnimationOptions struct {
	Frame         FrameOptions
	Frames        int
	StepsPerFrame int
}

func (opt AnimationOptions) check() error {
	if opt.Frames < 1 || opt.StepsPerFrame < 1 {
		return fmt.Errorf("render: need at least one frame and one step per frame")
	}
	return nil
}

// WriteGIF advances the simulation and records an animated GIF. delay is per
// frame, in hundredths of a second.
func WriteGIF(path string, sim *fluid.Simulation, opt AnimationOptions, delay int) error {
	if err := opt.check(); err != nil {
		return err
	}
	pal := make(color.Palette, 0, 256)
	pal = append(pal, opt.Frame.Palette.Wall())
	for _, c := range opt.Frame.Palette.Colors(255) {
		pal = append(pal, c)
	}

	anim := &gif.GIF{}
	for i := 0; i < opt.Frames; i++ {
		img := RenderImage(sim.Grid(), opt.Frame)
		frame := image.NewPaletted(img.Bounds(), pal)
		draw.FloydSteinberg.Draw(frame, img.Bounds(), img, image.Point{})
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
		for s := 0; s < opt.StepsPerFrame; s++ {
			sim.Step()
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gif.EncodeAll(f, anim)
}
