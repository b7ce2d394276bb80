package fluid

import (
	"math"
	"testing"
)

// newStencilGrid gives a 3x3 no-slip ring with unit spacing so stencil values
// can be checked by hand.
func newStencilGrid() *Grid {
	g := NewGrid(3, 3, 1, 1)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			g.At(x, y).Kind = CellNoSlip
		}
	}
	g.At(1, 1).Kind = CellFluid
	return g
}

func TestSecondDerivativeCentral(t *testing.T) {
	g := newStencilGrid()
	// u quadratic in x: the discrete second derivative is exactly 2.
	g.At(0, 1).U = 0
	g.At(1, 1).U = 1
	g.At(2, 1).U = 4

	if got := g.d2udx2(1, 1); got != 2 {
		t.Fatalf("d2udx2 on a quadratic = %v, expected 2", got)
	}

	g.At(1, 0).V = 1
	g.At(1, 1).V = 1
	g.At(1, 2).V = 1
	if got := g.d2vdy2(1, 1); got != 0 {
		t.Fatalf("d2vdy2 on a constant = %v, expected 0", got)
	}
}

func TestDonorCellBlending(t *testing.T) {
	g := newStencilGrid()
	g.At(0, 1).U = 1
	g.At(1, 1).U = 2
	g.At(2, 1).U = 3

	// Central part: ((2+3)^2 - (1+2)^2)/4 = 4. Upwind part:
	// 0.9*(|5|*(2-3) - |3|*(1-2))/4 = -0.45.
	want := 4.0 - 0.45
	if got := g.du2dx(1, 1); math.Abs(got-want) > 1e-12 {
		t.Fatalf("du2dx = %v, expected %v", got, want)
	}
}

func TestStencilPanicsOffFluid(t *testing.T) {
	g := newStencilGrid()

	defer func() {
		if recover() == nil {
			t.Fatalf("derivative on a wall cell returned instead of panicking")
		}
	}()
	_ = g.d2udx2(0, 1)
}
