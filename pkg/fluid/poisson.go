package fluid

import "math"

const (
	omega          = 1.7 // SOR relaxation factor, 0 <= omega <= 2
	maxSweeps      = 100
	poissonEpsilon = 0.001
)

// solvePressure relaxes the pressure field with in-place SOR in raster order
// until the residual meets the absolute or the relative bound, or the sweep
// budget runs out. Running out is not an error: the last iterate stands and
// the non-convergence counter goes up.
func (s *Simulation) solvePressure() {
	g := s.grid
	norm, fluidCells := s.referenceNorm()
	dx2 := g.dx * g.dx
	dy2 := g.dy * g.dy

	for sweep := 0; sweep < maxSweeps; sweep++ {
		// The residual is measured on the field the previous sweep left
		// behind, so a converged field costs no further sweeps.
		r := s.residual(fluidCells)
		if r < poissonEpsilon || r < poissonEpsilon*norm {
			s.lastSweeps = sweep
			return
		}

		g.resolveBoundaryPressures()

		for x := 0; x < g.nx; x++ {
			for y := 0; y < g.ny; y++ {
				c := g.At(x, y)
				if c.Kind != CellFluid {
					continue
				}
				c.P = (1-omega)*c.P + omega*
					((g.At(x+1, y).P+g.At(x-1, y).P)/dx2+
						(g.At(x, y+1).P+g.At(x, y-1).P)/dy2-
						c.RHS)/
					(2/dx2+2/dy2)
			}
		}
	}

	s.lastSweeps = maxSweeps
	s.nonConvergedSteps++
}

// residual computes the root-mean-square deviation of the discrete pressure
// Laplacian from the right-hand side over the fluid cells.
func (s *Simulation) residual(fluidCells int) float64 {
	g := s.grid
	dx2 := g.dx * g.dx
	dy2 := g.dy * g.dy
	var sum float64
	for x := 0; x < g.nx; x++ {
		for y := 0; y < g.ny; y++ {
			c := g.At(x, y)
			if c.Kind != CellFluid {
				continue
			}
			r := (g.At(x+1, y).P-2*c.P+g.At(x-1, y).P)/dx2 +
				(g.At(x, y+1).P-2*c.P+g.At(x, y-1).P)/dy2 -
				c.RHS
			sum += r * r
		}
	}
	return math.Sqrt(sum / float64(fluidCells))
}

// referenceNorm returns the RMS pressure over the fluid cells as it stood
// when the first solve ran, plus the fluid cell count. Both are computed once
// and cached so the relative convergence bound keeps a single reference scale
// for the whole run.
func (s *Simulation) referenceNorm() (float64, int) {
	if s.normCached {
		return s.initialPressureNorm, s.fluidCellCount
	}
	g := s.grid
	var sum float64
	count := 0
	for x := 0; x < g.nx; x++ {
		for y := 0; y < g.ny; y++ {
			c := g.At(x, y)
			if c.Kind != CellFluid {
				continue
			}
			sum += c.P * c.P
			count++
		}
	}
	s.initialPressureNorm = math.Sqrt(sum / float64(count))
	s.fluidCellCount = count
	s.normCached = true
	return s.initialPressureNorm, s.fluidCellCount
}
