package fluid

import (
	"math"
	"testing"
)

func TestLookupRejectsOutOfRange(t *testing.T) {
	g := NewGrid(4, 3, 0.1, 0.1)

	cases := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {-1, -1}, {4, 3}}
	for _, c := range cases {
		if _, ok := g.Lookup(c[0], c[1]); ok {
			t.Fatalf("Lookup(%d,%d) found a cell outside a 4x3 grid", c[0], c[1])
		}
	}
	if _, ok := g.Lookup(3, 2); !ok {
		t.Fatalf("Lookup(3,2) missed the last cell of a 4x3 grid")
	}
}

func TestAtPanicsInsteadOfWrapping(t *testing.T) {
	g := NewGrid(4, 3, 0.1, 0.1)
	g.At(0, 2).P = 9 // the cell a flat index would alias for (1,-1)

	defer func() {
		if recover() == nil {
			t.Fatalf("At(1,-1) returned instead of panicking")
		}
	}()
	_ = g.At(1, -1)
}

func TestCenteredVelocity(t *testing.T) {
	g := newCavityGrid(4, 4, 0)
	g.At(0, 1).U = 1
	g.At(1, 1).U = 3
	g.At(1, 0).V = -2
	g.At(1, 1).V = 6

	u, v := g.CenteredVelocity(1, 1)
	if u != 2 || v != 2 {
		t.Fatalf("centered velocity = (%v,%v), expected (2,2)", u, v)
	}

	u, v = g.CenteredVelocity(0, 0)
	if u != 0 || v != 0 {
		t.Fatalf("centered velocity on a wall = (%v,%v), expected zeros", u, v)
	}
}

func TestRangesCoverOnlyFluidCells(t *testing.T) {
	g := newCavityGrid(4, 4, 0)
	g.At(0, 0).P = -99 // wall values must never enter the ranges
	g.At(0, 0).U = 99
	g.At(1, 1).P = 2
	g.At(2, 2).P = -1
	g.At(1, 2).U = 3
	g.At(1, 2).V = 4

	g.updateRanges()

	if got := g.PressureRange(); got.Min != -1 || got.Max != 2 {
		t.Fatalf("pressure range = %+v, expected [-1,2]", got)
	}
	if got := g.SpeedRange(); got.Min != 0 || got.Max != 5 {
		t.Fatalf("speed range = %+v, expected [0,5]", got)
	}
}

func TestPsiIntegratesUpColumns(t *testing.T) {
	g := newCavityGrid(3, 5, 0)
	g.At(1, 1).U = 1
	g.At(1, 2).U = 2
	g.At(1, 3).U = 3

	g.updatePsi()

	// dy = 0.1, psi starts at 0 on the bottom row. The wall at y=4 copies the
	// value below it.
	wants := []struct {
		y    int
		want float64
	}{
		{0, 0},
		{1, 0.1},
		{2, 0.1 + 0.2},
		{3, 0.1 + 0.2 + 0.3},
		{4, 0.1 + 0.2 + 0.3},
	}
	for _, w := range wants {
		if got := g.At(1, w.y).Psi; math.Abs(got-w.want) > 1e-12 {
			t.Fatalf("psi at (1,%d) = %v, expected %v", w.y, got, w.want)
		}
	}

	// The wall column left of the fluid integrates with its own u so
	// contours can close against it.
	if got := g.At(0, 1).Psi; got != 0 {
		t.Fatalf("psi left of the fluid = %v, expected 0 for a resting wall", got)
	}

	r := g.PsiRange()
	if math.Abs(r.Min-0.1) > 1e-12 || math.Abs(r.Max-0.6) > 1e-12 {
		t.Fatalf("psi range = %+v, expected [0.1,0.6]", r)
	}
}
