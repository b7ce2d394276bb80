package fluid

import "math"

// gamma blends the central-difference advection terms with their upwind
// counterparts. 0 is pure central differencing, 1 pure donor-cell.
const gamma = 0.9

// The derivative stencils below are only defined on fluid cells whose
// referenced neighbors exist; the grid layout guarantees both, so a miss is a
// fatal contract violation.

func (g *Grid) d2udx2(x, y int) float64 {
	c := g.At(x, y)
	if c.Kind != CellFluid {
		panic("fluid: derivative on non fluid cell")
	}
	return (g.At(x+1, y).U - 2*c.U + g.At(x-1, y).U) / (g.dx * g.dx)
}

func (g *Grid) d2udy2(x, y int) float64 {
	c := g.At(x, y)
	if c.Kind != CellFluid {
		panic("fluid: derivative on non fluid cell")
	}
	return (g.At(x, y+1).U - 2*c.U + g.At(x, y-1).U) / (g.dy * g.dy)
}

func (g *Grid) d2vdx2(x, y int) float64 {
	c := g.At(x, y)
	if c.Kind != CellFluid {
		panic("fluid: derivative on non fluid cell")
	}
	return (g.At(x+1, y).V - 2*c.V + g.At(x-1, y).V) / (g.dx * g.dx)
}

func (g *Grid) d2vdy2(x, y int) float64 {
	c := g.At(x, y)
	if c.Kind != CellFluid {
		panic("fluid: derivative on non fluid cell")
	}
	return (g.At(x, y+1).V - 2*c.V + g.At(x, y-1).V) / (g.dy * g.dy)
}

func (g *Grid) du2dx(x, y int) float64 {
	c := g.At(x, y)
	if c.Kind != CellFluid {
		panic("fluid: derivative on non fluid cell")
	}
	u := c.U
	ue := g.At(x+1, y).U
	uw := g.At(x-1, y).U
	return ((u+ue)*(u+ue)-(uw+u)*(uw+u))/4/g.dx +
		gamma*(math.Abs(u+ue)*(u-ue)-math.Abs(uw+u)*(uw-u))/4/g.dx
}

func (g *Grid) dv2dy(x, y int) float64 {
	c := g.At(x, y)
	if c.Kind != CellFluid {
		panic("fluid: derivative on non fluid cell")
	}
	v := c.V
	vn := g.At(x, y+1).V
	vs := g.At(x, y-1).V
	return ((v+vn)*(v+vn)-(vs+v)*(vs+v))/4/g.dy +
		gamma*(math.Abs(v+vn)*(v-vn)-math.Abs(vs+v)*(vs-v))/4/g.dy
}

func (g *Grid) duvdx(x, y int) float64 {
	c := g.At(x, y)
	if c.Kind != CellFluid {
		panic("fluid: derivative on non fluid cell")
	}
	u, v := c.U, c.V
	ve := g.At(x+1, y).V
	vw := g.At(x-1, y).V
	uw := g.At(x-1, y).U
	un := g.At(x, y+1).U
	unw := g.At(x-1, y+1).U
	return ((u+un)*(v+ve)-(uw+unw)*(vw+v))/4/g.dx +
		gamma*(math.Abs(u+un)*(v-ve)-math.Abs(uw+unw)*(vw-v))/4/g.dx
}

func (g *Grid) duvdy(x, y int) float64 {
	c := g.At(x, y)
	if c.Kind != CellFluid {
		panic("fluid: derivative on non fluid cell")
	}
	u, v := c.U, c.V
	un := g.At(x, y+1).U
	us := g.At(x, y-1).U
	vs := g.At(x, y-1).V
	ve := g.At(x+1, y).V
	vse := g.At(x+1, y-1).V
	return ((v+ve)*(u+un)-(vs+vse)*(us+u))/4/g.dy +
		gamma*(math.Abs(v+ve)*(u-un)-math.Abs(vs+vse)*(us-u))/4/g.dy
}
