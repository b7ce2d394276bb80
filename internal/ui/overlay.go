//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1n0r1/euler-fluid-sim/pkg/fluid"
)

// Overlay draws velocity arrows on top of the field view.
type Overlay struct {
	scale int
	show  bool
	pixel *ebiten.Image

	samples   []arrowSample
	cacheW    int
	cacheH    int
	pixelSpan float64
}

type arrowSample struct {
	x, y   int
	sx, sy float64
}

// NewOverlay constructs an overlay for views drawn at the given scale.
func NewOverlay(scale int) *Overlay {
	if scale < 1 {
		scale = 1
	}
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		o.show = !o.show
	}
}

// Draw renders centered-velocity arrows on a coarse sample lattice.
func (o *Overlay) Draw(screen *ebiten.Image, g *fluid.Grid) {
	if !o.show {
		return
	}
	nx, ny := g.Size()
	if !o.ensureSamples(nx, ny) {
		return
	}

	maxSpeed := 0.0
	for _, s := range o.samples {
		u, v := g.CenteredVelocity(s.x, s.y)
		if speed := math.Hypot(u, v); speed > maxSpeed {
			maxSpeed = speed
		}
	}
	if maxSpeed <= 0 {
		return
	}

	const headAngle = math.Pi / 6
	minLength := o.pixelSpan * 0.3
	maxLength := o.pixelSpan * 0.75
	thickness := math.Max(1, float64(o.scale)*0.3)

	for _, s := range o.samples {
		u, v := g.CenteredVelocity(s.x, s.y)
		speed := math.Hypot(u, v)
		if speed < maxSpeed*0.02 {
			continue
		}

		dirX := u / speed
		dirY := -v / speed // screen y grows downward
		normalized := speed / maxSpeed
		length := minLength + (maxLength-minLength)*math.Sqrt(normalized)
		tipX := s.sx + dirX*length/2
		tipY := s.sy + dirY*length/2

		col := arrowColor(normalized)
		o.drawLine(screen, s.sx-dirX*length/2, s.sy-dirY*length/2, tipX, tipY, thickness, col)

		angle := math.Atan2(dirY, dirX)
		head := math.Min(length*0.35, o.pixelSpan*0.3)
		o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle+headAngle)*head, tipY-math.Sin(angle+headAngle)*head, thickness*0.85, col)
		o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle-headAngle)*head, tipY-math.Sin(angle-headAngle)*head, thickness*0.85, col)
	}
}

func (o *Overlay) ensureSamples(nx, ny int) bool {
	if o.cacheW == nx && o.cacheH == ny && len(o.samples) > 0 {
		return true
	}

	const (
		targetSamples = 360.0
		minSpacing    = 2
		maxSpacing    = 20
	)
	area := float64(nx * ny)
	spacing := int(math.Sqrt(area / targetSamples))
	if spacing < minSpacing {
		spacing = minSpacing
	}
	if spacing > maxSpacing {
		spacing = maxSpacing
	}

	o.samples = o.samples[:0]
	for y := spacing / 2; y < ny; y += spacing {
		for x := spacing / 2; x < nx; x += spacing {
			o.samples = append(o.samples, arrowSample{
				x:  x,
				y:  y,
				sx: (float64(x) + 0.5) * float64(o.scale),
				sy: (float64(ny-1-y) + 0.5) * float64(o.scale),
			})
		}
	}
	o.cacheW = nx
	o.cacheH = ny
	o.pixelSpan = float64(spacing * o.scale)
	return len(o.samples) > 0
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func arrowColor(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r := uint8(math.Round(80 + 70*t))
	g := uint8(math.Round(170 + 70*t))
	b := uint8(math.Round(230 + 20*t))
	a := uint8(math.Round(150 + 90*t))
	return color.RGBA{R: r, G: g, B: b, A: a}
}
