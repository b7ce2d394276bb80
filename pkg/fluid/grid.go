// Package fluid advances an incompressible viscous flow over a rectangular
// staggered grid, one explicit timestep at a time, with a finite-difference
// projection method.
package fluid

import (
	"fmt"
	"math"
)

// Range is a running [min, max] pair tracked per field for display scaling.
type Range struct {
	Min, Max float64
}

// Grid owns the cells of a rectangular staggered mesh. Cells live in a flat
// arena ordered x-major (x outer, y inner), the same order every sweep visits
// them in.
type Grid struct {
	nx, ny int
	dx, dy float64
	cells  []Cell

	pressureRange Range
	speedRange    Range
	psiRange      Range
}

// NewGrid allocates an nx by ny grid of void cells with the given physical
// cell dimensions.
func NewGrid(nx, ny int, dx, dy float64) *Grid {
	if nx <= 0 || ny <= 0 {
		panic("fluid: grid dimensions must be positive")
	}
	if dx <= 0 || dy <= 0 {
		panic("fluid: cell dimensions must be positive")
	}
	return &Grid{nx: nx, ny: ny, dx: dx, dy: dy, cells: make([]Cell, nx*ny)}
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (nx, ny int) { return g.nx, g.ny }

// Spacing returns the physical cell dimensions.
func (g *Grid) Spacing() (dx, dy float64) { return g.dx, g.dy }

// At returns the cell at (x, y). The coordinates must be in range; stencil
// code relies on the grid layout guaranteeing that, so an out-of-range access
// is a construction bug, not a condition to recover from. The check is
// explicit because the flat arena would otherwise let a negative y alias a
// cell in the previous column.
func (g *Grid) At(x, y int) *Cell {
	if x < 0 || x >= g.nx || y < 0 || y >= g.ny {
		panic(fmt.Sprintf("fluid: cell (%d,%d) outside %dx%d grid", x, y, g.nx, g.ny))
	}
	return &g.cells[x*g.ny+y]
}

// Lookup returns the cell at (x, y), or false when the coordinates fall
// outside the grid. Decrementing past zero yields no cell, never a wrap to
// the far edge.
func (g *Grid) Lookup(x, y int) (*Cell, bool) {
	if x < 0 || x >= g.nx || y < 0 || y >= g.ny {
		return nil, false
	}
	return &g.cells[x*g.ny+y], true
}

// CenteredVelocity collocates the staggered velocity at the center of a fluid
// cell by averaging each face with its opposite. Non-fluid cells report zero.
func (g *Grid) CenteredVelocity(x, y int) (u, v float64) {
	c := g.At(x, y)
	if c.Kind != CellFluid {
		return 0, 0
	}
	u = (c.U + g.At(x-1, y).U) / 2
	v = (c.V + g.At(x, y-1).V) / 2
	return u, v
}

// PressureRange returns the fluid-cell pressure extrema from the last step.
func (g *Grid) PressureRange() Range { return g.pressureRange }

// SpeedRange returns the fluid-cell speed extrema from the last step.
func (g *Grid) SpeedRange() Range { return g.speedRange }

// PsiRange returns the fluid-cell stream function extrema from the last step.
func (g *Grid) PsiRange() Range { return g.psiRange }

// updateRanges refreshes the pressure and speed extrema over the fluid cells.
// A grid without fluid cells keeps its previous ranges.
func (g *Grid) updateRanges() {
	initialized := false
	for x := 0; x < g.nx; x++ {
		for y := 0; y < g.ny; y++ {
			c := g.At(x, y)
			if c.Kind != CellFluid {
				continue
			}
			speed := math.Sqrt(c.U*c.U + c.V*c.V)
			if !initialized || c.P < g.pressureRange.Min {
				g.pressureRange.Min = c.P
			}
			if !initialized || c.P > g.pressureRange.Max {
				g.pressureRange.Max = c.P
			}
			if !initialized || speed < g.speedRange.Min {
				g.speedRange.Min = speed
			}
			if !initialized || speed > g.speedRange.Max {
				g.speedRange.Max = speed
			}
			initialized = true
		}
	}
}

// updatePsi integrates the stream function up each column from psi = 0 at the
// bottom row. A cell accumulates u*dy when it or its right neighbor is fluid,
// so the walls bounding a fluid region carry values the contour of the region
// can close against; every other cell copies the value below it.
func (g *Grid) updatePsi() {
	initialized := false
	for x := 0; x < g.nx; x++ {
		g.At(x, 0).Psi = 0
		for y := 1; y < g.ny; y++ {
			c := g.At(x, y)
			c.Psi = g.At(x, y-1).Psi
			right, ok := g.Lookup(x+1, y)
			if c.Kind == CellFluid || (ok && right.Kind == CellFluid) {
				c.Psi += c.U * g.dy
			}
			if c.Kind != CellFluid {
				continue
			}
			if !initialized || c.Psi < g.psiRange.Min {
				g.psiRange.Min = c.Psi
			}
			if !initialized || c.Psi > g.psiRange.Max {
				g.psiRange.Max = c.Psi
			}
			initialized = true
		}
	}
}
