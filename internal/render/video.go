package render

import (
	"bytes"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"github.com/1n0r1/euler-fluid-sim/pkg/fluid"
)

// WriteAVI advances the simulation and records a motion-JPEG AVI, one frame
// per capture.
func WriteAVI(path string, sim *fluid.Simulation, opt AnimationOptions, fps int) error {
	if err := opt.check(); err != nil {
		return err
	}
	if fps < 1 {
		fps = 25
	}

	nx, ny := sim.Grid().Size()
	scale := opt.Frame.Scale
	if scale < 1 {
		scale = 1
	}
	aw, err := mjpeg.New(path, int32(nx*scale), int32(ny*scale), int32(fps))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for i := 0; i < opt.Frames; i++ {
		img := RenderImage(sim.Grid(), opt.Frame)
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
			aw.Close()
			return err
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			aw.Close()
			return err
		}
		for s := 0; s < opt.StepsPerFrame; s++ {
			sim.Step()
		}
	}
	return aw.Close()
}
