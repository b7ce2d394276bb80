package fluid

// resolveBoundaryVelocities rewrites the velocities on every wall cell and on
// the fluid faces it shares, according to the wall kind. Directions are
// handled in the fixed order left, right, bottom, top; when a wall cell
// touches fluid on several sides the later direction wins.
func (g *Grid) resolveBoundaryVelocities() {
	for x := 0; x < g.nx; x++ {
		for y := 0; y < g.ny; y++ {
			c := g.At(x, y)
			if !c.Kind.IsBoundary() {
				continue
			}

			left, leftOK := g.Lookup(x-1, y)
			right, rightOK := g.Lookup(x+1, y)
			bottom, bottomOK := g.Lookup(x, y-1)
			top, topOK := g.Lookup(x, y+1)
			leftFluid := leftOK && left.Kind == CellFluid
			rightFluid := rightOK && right.Kind == CellFluid
			bottomFluid := bottomOK && bottom.Kind == CellFluid
			topFluid := topOK && top.Kind == CellFluid

			switch c.Kind {
			case CellNoSlip:
				// Zero velocity normal to the shared face; the tangential
				// ghost value reflects the fluid so the face midpoint hits
				// the prescribed wall velocity.
				if leftFluid {
					left.U = 0
					c.V = 2*c.WallV - left.V
				}
				if rightFluid {
					c.U = 0
					c.V = 2*c.WallV - right.V
				}
				if bottomFluid {
					bottom.V = 0
					c.U = 2*c.WallU - bottom.U
				}
				if topFluid {
					c.U = 2*c.WallU - top.U
					c.V = 0
				}
			case CellFreeSlip:
				// Zero normal velocity, tangential copied from the fluid.
				if leftFluid {
					left.U = 0
					c.V = left.V
				}
				if rightFluid {
					c.U = 0
					c.V = right.V
				}
				if bottomFluid {
					bottom.V = 0
					c.U = bottom.U
				}
				if topFluid {
					c.U = top.U
					c.V = 0
				}
			case CellOutflow:
				// Copy the fluid velocity onto the wall; the fluid face
				// normal to the outlet extrapolates from two cells inward.
				if leftFluid {
					left.U = g.At(x-2, y).U
					c.V = left.V
				}
				if rightFluid {
					c.U = right.U
					c.V = right.V
				}
				if bottomFluid {
					c.U = bottom.U
					bottom.V = g.At(x, y-2).V
				}
				if topFluid {
					c.U = top.U
					c.V = top.V
				}
			case CellInflow:
				// The prescribed inflow velocity lives on the wall cell;
				// only the shared face on the far side of the fluid cell
				// picks it up.
				if leftFluid {
					left.U = c.U
				}
				if bottomFluid {
					bottom.V = c.V
				}
			}
		}
	}
}

// resolveBoundaryPressures sets every wall cell's pressure to the mean of its
// adjacent fluid pressures, or exactly zero when it has none. The Poisson
// solver re-runs this pass before every relaxation sweep.
func (g *Grid) resolveBoundaryPressures() {
	for x := 0; x < g.nx; x++ {
		for y := 0; y < g.ny; y++ {
			c := g.At(x, y)
			if !c.Kind.IsBoundary() {
				continue
			}
			c.P = 0
			count := 0
			for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
				if adj, ok := g.Lookup(n[0], n[1]); ok && adj.Kind == CellFluid {
					c.P += adj.P
					count++
				}
			}
			if count != 0 {
				c.P /= float64(count)
			}
		}
	}
}

// syncBoundaryPredictors copies the resolved velocities into the predictor
// values on every face a wall cell shares with fluid, for all wall kinds. The
// momentum predictor skips those faces, so this is where they get their f and
// g for the step.
func (g *Grid) syncBoundaryPredictors() {
	for x := 0; x < g.nx; x++ {
		for y := 0; y < g.ny; y++ {
			c := g.At(x, y)
			if !c.Kind.IsBoundary() {
				continue
			}
			if left, ok := g.Lookup(x-1, y); ok && left.Kind == CellFluid {
				left.F = left.U
			}
			if right, ok := g.Lookup(x+1, y); ok && right.Kind == CellFluid {
				c.F = c.U
			}
			if bottom, ok := g.Lookup(x, y-1); ok && bottom.Kind == CellFluid {
				bottom.G = bottom.V
			}
			if top, ok := g.Lookup(x, y+1); ok && top.Kind == CellFluid {
				c.G = c.V
			}
		}
	}
}
