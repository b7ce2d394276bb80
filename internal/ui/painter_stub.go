//go:build !ebiten

package ui

import (
	"github.com/1n0r1/euler-fluid-sim/internal/render"
	"github.com/1n0r1/euler-fluid-sim/pkg/fluid"
)

// FieldPainter is a no-op placeholder for headless builds.
type FieldPainter struct{}

// NewFieldPainter returns nil in the headless build.
func NewFieldPainter(int, int) *FieldPainter { return nil }

// Blit is a no-op in the headless build.
func (fp *FieldPainter) Blit(any, *fluid.Grid, render.Field, render.Palette, int) {}

// Size returns zeros in the headless build.
func (fp *FieldPainter) Size() (int, int) { return 0, 0 }
