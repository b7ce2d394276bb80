package preset

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/1n0r1/euler-fluid-sim/pkg/fluid"
)

// Scenario is a grid layout decoded from a TOML file. Unlike the built-in
// presets it lets the caller pick the wall kind per side and place any number
// of obstacles.
type Scenario struct {
	Name      string          `toml:"name"`
	Grid      GridSpec        `toml:"grid"`
	Physics   PhysicsSpec     `toml:"physics"`
	Walls     map[string]Wall `toml:"walls"`
	Obstacles []Obstacle      `toml:"obstacles"`
	Initial   Initial         `toml:"initial"`
}

type GridSpec struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Dx     float64 `toml:"dx"`
	Dy     float64 `toml:"dy"`
}

type PhysicsSpec struct {
	DeltaTime float64 `toml:"delta_time"`
	Reynolds  float64 `toml:"reynolds"`
	AccelX    float64 `toml:"accel_x"`
	AccelY    float64 `toml:"accel_y"`
}

// Wall names one edge of the domain. U and V carry the wall velocity for
// no-slip walls and the prescribed face velocity for inflow walls.
type Wall struct {
	Kind string  `toml:"kind"`
	U    float64 `toml:"u"`
	V    float64 `toml:"v"`
}

// Obstacle is a solid region stamped onto the interior, either a circle
// given in cell coordinates or an inclusive box.
type Obstacle struct {
	Shape string  `toml:"shape"`
	Cx    float64 `toml:"cx"`
	Cy    float64 `toml:"cy"`
	R     float64 `toml:"r"`
	X0    int     `toml:"x0"`
	Y0    int     `toml:"y0"`
	X1    int     `toml:"x1"`
	Y1    int     `toml:"y1"`
}

// Initial is the velocity every interior fluid cell starts with.
type Initial struct {
	U float64 `toml:"u"`
	V float64 `toml:"v"`
}

var wallSides = []string{"left", "right", "bottom", "top"}

// LoadScenario decodes a scenario file, rejecting keys it does not know.
func LoadScenario(path string) (Scenario, error) {
	var sc Scenario
	md, err := toml.DecodeFile(path, &sc)
	if err != nil {
		return Scenario{}, fmt.Errorf("preset: reading %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Scenario{}, fmt.Errorf("preset: %s: unknown key %q", path, undecoded[0].String())
	}
	return sc, nil
}

// Build turns the decoded scenario into a runnable simulation.
func (sc Scenario) Build() (*fluid.Simulation, error) {
	cfg := Config{
		Width:     sc.Grid.Width,
		Height:    sc.Grid.Height,
		Dx:        sc.Grid.Dx,
		Dy:        sc.Grid.Dy,
		DeltaTime: sc.Physics.DeltaTime,
		Reynolds:  sc.Physics.Reynolds,
		AccelX:    sc.Physics.AccelX,
		AccelY:    sc.Physics.AccelY,
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	for side := range sc.Walls {
		switch side {
		case "left", "right", "bottom", "top":
		default:
			return nil, fmt.Errorf("preset: unknown wall side %q", side)
		}
	}
	for _, side := range wallSides {
		if _, ok := sc.Walls[side]; !ok {
			return nil, fmt.Errorf("preset: scenario %q: missing wall %q", sc.Name, side)
		}
	}

	g := fluid.NewGrid(cfg.Width, cfg.Height, cfg.Dx, cfg.Dy)
	for x := 0; x < cfg.Width; x++ {
		for y := 0; y < cfg.Height; y++ {
			c := g.At(x, y)
			c.Kind = fluid.CellFluid
			c.U = sc.Initial.U
			c.V = sc.Initial.V
		}
	}
	// side columns first, then rows, so top and bottom own the corners
	for _, side := range wallSides {
		if err := sc.stampWall(g, side); err != nil {
			return nil, err
		}
	}
	for _, ob := range sc.Obstacles {
		if err := ob.carve(g); err != nil {
			return nil, err
		}
	}
	return fluid.New(g, cfg.fluidConfig()), nil
}

func (sc Scenario) stampWall(g *fluid.Grid, side string) error {
	w := sc.Walls[side]
	kind, err := wallKind(w.Kind)
	if err != nil {
		return err
	}
	nx, ny := g.Size()
	stamp := func(x, y int) {
		c := g.At(x, y)
		c.Kind = kind
		switch kind {
		case fluid.CellNoSlip:
			c.U, c.V = 0, 0
			c.WallU, c.WallV = w.U, w.V
		case fluid.CellInflow:
			c.U, c.V = w.U, w.V
		default:
			c.U, c.V = 0, 0
		}
	}
	switch side {
	case "left":
		for y := 0; y < ny; y++ {
			stamp(0, y)
		}
	case "right":
		for y := 0; y < ny; y++ {
			stamp(nx-1, y)
		}
	case "bottom":
		for x := 0; x < nx; x++ {
			stamp(x, 0)
		}
	case "top":
		for x := 0; x < nx; x++ {
			stamp(x, ny-1)
		}
	}
	return nil
}

func (ob Obstacle) carve(g *fluid.Grid) error {
	switch ob.Shape {
	case "circle":
		r2 := ob.R * ob.R
		carveSolid(g, func(x, y int) bool {
			dx := float64(x) - ob.Cx
			dy := float64(y) - ob.Cy
			return dx*dx+dy*dy <= r2
		})
	case "box":
		carveSolid(g, func(x, y int) bool {
			return x >= ob.X0 && x <= ob.X1 && y >= ob.Y0 && y <= ob.Y1
		})
	default:
		return fmt.Errorf("preset: unknown obstacle shape %q", ob.Shape)
	}
	return nil
}

func wallKind(s string) (fluid.CellKind, error) {
	switch s {
	case "noslip":
		return fluid.CellNoSlip, nil
	case "freeslip":
		return fluid.CellFreeSlip, nil
	case "inflow":
		return fluid.CellInflow, nil
	case "outflow":
		return fluid.CellOutflow, nil
	}
	return fluid.CellVoid, fmt.Errorf("preset: unknown wall kind %q", s)
}
