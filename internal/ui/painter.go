//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1n0r1/euler-fluid-sim/internal/render"
	"github.com/1n0r1/euler-fluid-sim/pkg/fluid"
)

// FieldPainter uploads one rendered field per frame into a reused image.
type FieldPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFieldPainter allocates a painter for a grid of size w*h.
func NewFieldPainter(w, h int) *FieldPainter {
	fp := &FieldPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Blit renders the chosen field into the painter image and draws it scaled.
func (fp *FieldPainter) Blit(dst *ebiten.Image, g *fluid.Grid, f render.Field, p render.Palette, scale int) {
	nx, ny := g.Size()
	if nx != fp.w || ny != fp.h {
		return
	}
	sc := render.Extract(g, f)
	render.FillRGBA(fp.buf, sc, p)
	fp.img.ReplacePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FieldPainter) Size() (int, int) { return fp.w, fp.h }
