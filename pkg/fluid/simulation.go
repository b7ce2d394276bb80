package fluid

// Config carries the physical and numerical parameters of a run.
type Config struct {
	DeltaTime float64 // seconds
	Reynolds  float64
	AccelX    float64 // body acceleration, meters/second^2
	AccelY    float64
}

// Simulation advances one grid through time. It is constructed once from a
// laid-out grid and mutated only through Step; nothing here is safe for
// concurrent use.
type Simulation struct {
	grid *Grid

	deltaTime float64 // seconds
	reynolds  float64
	accelX    float64
	accelY    float64
	time      float64 // seconds

	// Reference scale for the relative convergence bound, captured on the
	// first Poisson solve and fixed for the simulation's lifetime.
	initialPressureNorm float64
	fluidCellCount      int
	normCached          bool

	lastSweeps        int
	nonConvergedSteps int
}

// New wraps a laid-out grid in a simulation. The grid's cell kinds must not
// change afterwards.
func New(grid *Grid, cfg Config) *Simulation {
	return &Simulation{
		grid:      grid,
		deltaTime: cfg.DeltaTime,
		reynolds:  cfg.Reynolds,
		accelX:    cfg.AccelX,
		accelY:    cfg.AccelY,
	}
}

// Grid returns the simulation's grid. Callers other than Step must treat it
// as read-only.
func (s *Simulation) Grid() *Grid { return s.grid }

// Time returns the elapsed simulated time in seconds.
func (s *Simulation) Time() float64 { return s.time }

// DeltaTime returns the fixed timestep in seconds.
func (s *Simulation) DeltaTime() float64 { return s.deltaTime }

// PoissonSweeps returns the relaxation sweeps the last Step spent in the
// pressure solver.
func (s *Simulation) PoissonSweeps() int { return s.lastSweeps }

// NonConvergedSteps counts the steps whose pressure solve exhausted its sweep
// budget without meeting the residual bound.
func (s *Simulation) NonConvergedSteps() int { return s.nonConvergedSteps }

// Step advances the simulation by one timestep: resolve the walls, predict
// provisional velocities, solve the pressure Poisson equation and project the
// velocities back onto a divergence-free field. The stream function and the
// display ranges are refreshed at the end; they never feed back into the
// physics.
func (s *Simulation) Step() {
	g := s.grid

	g.resolveBoundaryVelocities()
	g.resolveBoundaryPressures()
	g.syncBoundaryPredictors()

	s.updatePredictor()
	s.updateRHS()
	s.solvePressure()
	s.correctVelocity()

	g.updatePsi()
	g.updateRanges()

	s.time += s.deltaTime
}

// updatePredictor writes the provisional velocities f and g on every fluid
// face whose forward neighbor is fluid too; faces against walls keep the
// values the resolver synced.
func (s *Simulation) updatePredictor() {
	g := s.grid
	for x := 0; x < g.nx; x++ {
		for y := 0; y < g.ny; y++ {
			c := g.At(x, y)
			if c.Kind != CellFluid {
				continue
			}
			if right, ok := g.Lookup(x+1, y); ok && right.Kind == CellFluid {
				c.F = c.U + s.deltaTime*((g.d2udx2(x, y)+g.d2udy2(x, y))/s.reynolds-
					g.du2dx(x, y)-g.duvdy(x, y)+s.accelX)
			}
			if top, ok := g.Lookup(x, y+1); ok && top.Kind == CellFluid {
				c.G = c.V + s.deltaTime*((g.d2vdx2(x, y)+g.d2vdy2(x, y))/s.reynolds-
					g.duvdx(x, y)-g.dv2dy(x, y)+s.accelY)
			}
		}
	}
}

// updateRHS assembles the Poisson right-hand side: the discrete divergence of
// the predictor field over dt.
func (s *Simulation) updateRHS() {
	g := s.grid
	for x := 0; x < g.nx; x++ {
		for y := 0; y < g.ny; y++ {
			c := g.At(x, y)
			if c.Kind != CellFluid {
				continue
			}
			c.RHS = ((c.F-g.At(x-1, y).F)/g.dx + (c.G-g.At(x, y-1).G)/g.dy) / s.deltaTime
		}
	}
}

// correctVelocity projects the predictor velocities onto the new pressure
// gradient. Faces whose forward neighbor is a wall stay as the resolver left
// them; faces against void cells are corrected like interior ones.
func (s *Simulation) correctVelocity() {
	g := s.grid
	for x := 0; x < g.nx; x++ {
		for y := 0; y < g.ny; y++ {
			c := g.At(x, y)
			if c.Kind != CellFluid {
				continue
			}
			if right, ok := g.Lookup(x+1, y); ok && !right.Kind.IsBoundary() {
				c.U = c.F - s.deltaTime*(right.P-c.P)/g.dx
			}
			if top, ok := g.Lookup(x, y+1); ok && !top.Kind.IsBoundary() {
				c.V = c.G - s.deltaTime*(top.P-c.P)/g.dy
			}
		}
	}
}
