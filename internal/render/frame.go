package render

import (
	"image"
	"image/png"
	"math"
	"os"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/1n0r1/euler-fluid-sim/pkg/fluid"
)

// FrameOptions control how a grid is rasterized.
type FrameOptions struct {
	Field   Field
	Palette Palette
	Scale   int  // integer pixel size per cell, minimum 1
	Arrows  bool // overlay velocity arrows
}

// RenderImage rasterizes one field of the grid. The image row order is
// flipped so grid y points up on screen.
func RenderImage(g *fluid.Grid, opt FrameOptions) *image.RGBA {
	sc := Extract(g, opt.Field)
	base := image.NewRGBA(image.Rect(0, 0, sc.W, sc.H))
	FillRGBA(base.Pix, sc, opt.Palette)

	scale := opt.Scale
	if scale < 1 {
		scale = 1
	}
	out := base
	if scale > 1 {
		out = image.NewRGBA(image.Rect(0, 0, sc.W*scale, sc.H*scale))
		xdraw.NearestNeighbor.Scale(out, out.Bounds(), base, base.Bounds(), xdraw.Src, nil)
	}
	if opt.Arrows {
		drawArrows(out, g, scale)
	}
	return out
}

// SavePNG writes the image to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

// FillRGBA writes the scalar into buf as RGBA pixels, top image row first,
// walls in the wall color. buf must hold 4*W*H bytes.
func FillRGBA(buf []byte, sc Scalar, p Palette) {
	i := 0
	for iy := sc.H - 1; iy >= 0; iy-- {
		for ix := 0; ix < sc.W; ix++ {
			idx := ix*sc.H + iy
			col := p.wall
			if sc.Mask[idx] {
				col = p.At(sc.Norm(sc.Values[idx]))
			}
			base := i * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
			i++
		}
	}
}

// drawArrows overlays centered-velocity arrows on a coarse sample lattice.
func drawArrows(img *image.RGBA, g *fluid.Grid, scale int) {
	nx, ny := g.Size()
	spacing := nx / 24
	if spacing < 2 {
		spacing = 2
	}

	type sample struct {
		px, py float64
		u, v   float64
	}
	var samples []sample
	maxSpeed := 0.0
	for x := spacing / 2; x < nx; x += spacing {
		for y := spacing / 2; y < ny; y += spacing {
			u, v := g.CenteredVelocity(x, y)
			speed := math.Hypot(u, v)
			if speed < 1e-12 {
				continue
			}
			if speed > maxSpeed {
				maxSpeed = speed
			}
			samples = append(samples, sample{
				px: (float64(x) + 0.5) * float64(scale),
				py: (float64(ny-1-y) + 0.5) * float64(scale),
				u:  u,
				v:  v,
			})
		}
	}
	if len(samples) == 0 {
		return
	}

	const headAngle = math.Pi / 6
	span := float64(spacing * scale)
	dc := gg.NewContextForRGBA(img)
	dc.SetLineCapRound()
	dc.SetRGBA(1, 1, 1, 0.75)
	dc.SetLineWidth(math.Max(1, float64(scale)*0.3))
	for _, s := range samples {
		speed := math.Hypot(s.u, s.v)
		dirX := s.u / speed
		dirY := -s.v / speed // image y grows downward
		length := span * (0.25 + 0.55*speed/maxSpeed)
		tipX := s.px + dirX*length/2
		tipY := s.py + dirY*length/2
		dc.DrawLine(s.px-dirX*length/2, s.py-dirY*length/2, tipX, tipY)

		angle := math.Atan2(dirY, dirX)
		head := math.Min(length*0.35, span*0.3)
		dc.DrawLine(tipX, tipY, tipX-math.Cos(angle+headAngle)*head, tipY-math.Sin(angle+headAngle)*head)
		dc.DrawLine(tipX, tipY, tipX-math.Cos(angle-headAngle)*head, tipY-math.Sin(angle-headAngle)*head)
		dc.Stroke()
	}
}
