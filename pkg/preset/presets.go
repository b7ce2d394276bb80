package preset

import (
	"github.com/1n0r1/euler-fluid-sim/pkg/fluid"
)

func defaultCavityConfig() Config {
	return Config{
		Width:     64,
		Height:    64,
		Dx:        0.1,
		Dy:        0.1,
		DeltaTime: 0.01,
		Reynolds:  100,
		LidSpeed:  1,
	}
}

func defaultCylinderConfig() Config {
	return Config{
		Width:       150,
		Height:      50,
		Dx:          0.1,
		Dy:          0.1,
		DeltaTime:   0.005,
		Reynolds:    100,
		InflowSpeed: 1,
		Radius:      6,
	}
}

func defaultChannelConfig() Config {
	cfg := defaultCylinderConfig()
	cfg.Radius = 0
	return cfg
}

func defaultStepConfig() Config {
	cfg := defaultChannelConfig()
	cfg.StepHeight = 20
	return cfg
}

// NewCavity builds the lid-driven cavity: a closed no-slip box whose top wall
// slides at the configured lid speed.
func NewCavity(cfg Config) (*fluid.Simulation, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	g := fluid.NewGrid(cfg.Width, cfg.Height, cfg.Dx, cfg.Dy)
	for x := 0; x < cfg.Width; x++ {
		for y := 0; y < cfg.Height; y++ {
			c := g.At(x, y)
			switch {
			case y == cfg.Height-1:
				c.Kind = fluid.CellNoSlip
				c.WallU = cfg.LidSpeed
			case x == 0 || y == 0 || x == cfg.Width-1:
				c.Kind = fluid.CellNoSlip
			default:
				c.Kind = fluid.CellFluid
			}
		}
	}
	return fluid.New(g, cfg.fluidConfig()), nil
}

// NewChannel builds a straight flow-through channel: inflow on the left,
// outflow on the right, free-slip walls above and below.
func NewChannel(cfg Config) (*fluid.Simulation, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return fluid.New(flowChannelGrid(cfg), cfg.fluidConfig()), nil
}

// NewCylinderCrossFlow builds the channel with a circular obstacle in the
// first third of the domain.
func NewCylinderCrossFlow(cfg Config) (*fluid.Simulation, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	g := flowChannelGrid(cfg)
	cx := float64(cfg.Width) / 5
	cy := float64(cfg.Height) / 2
	r2 := cfg.Radius * cfg.Radius
	carveSolid(g, func(x, y int) bool {
		dx := float64(x) - cx
		dy := float64(y) - cy
		return dx*dx+dy*dy <= r2
	})
	return fluid.New(g, cfg.fluidConfig()), nil
}

// NewBackwardStep builds the channel with a solid step filling the lower left
// corner, a quarter of the domain long.
func NewBackwardStep(cfg Config) (*fluid.Simulation, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	g := flowChannelGrid(cfg)
	length := cfg.Width / 4
	carveSolid(g, func(x, y int) bool {
		return x <= length && y <= cfg.StepHeight
	})
	return fluid.New(g, cfg.fluidConfig()), nil
}

// Default builds the cylinder cross-flow preset with its stock parameters.
func Default() *fluid.Simulation {
	s, err := NewCylinderCrossFlow(defaultCylinderConfig())
	if err != nil {
		panic(err)
	}
	return s
}

func (c Config) fluidConfig() fluid.Config {
	return fluid.Config{
		DeltaTime: c.DeltaTime,
		Reynolds:  c.Reynolds,
		AccelX:    c.AccelX,
		AccelY:    c.AccelY,
	}
}

// flowChannelGrid lays out the ring every flow-through preset shares: inflow
// up the left edge, outflow down the right, free-slip walls above and below,
// and interior fluid already moving at the inflow speed.
func flowChannelGrid(cfg Config) *fluid.Grid {
	g := fluid.NewGrid(cfg.Width, cfg.Height, cfg.Dx, cfg.Dy)
	for x := 0; x < cfg.Width; x++ {
		for y := 0; y < cfg.Height; y++ {
			c := g.At(x, y)
			switch {
			case y == 0 || y == cfg.Height-1:
				c.Kind = fluid.CellFreeSlip
			case x == 0:
				c.Kind = fluid.CellInflow
				c.U = cfg.InflowSpeed
			case x == cfg.Width-1:
				c.Kind = fluid.CellOutflow
			default:
				c.Kind = fluid.CellFluid
				c.U = cfg.InflowSpeed
			}
		}
	}
	return g
}

// carveSolid stamps an obstacle onto the grid: masked cells turn void, then
// the ones touching fluid become the no-slip shell.
func carveSolid(g *fluid.Grid, inside func(x, y int) bool) {
	nx, ny := g.Size()
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			if !inside(x, y) {
				continue
			}
			c := g.At(x, y)
			c.Kind = fluid.CellVoid
			c.U, c.V = 0, 0
			c.F, c.G = 0, 0
		}
	}
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			if !inside(x, y) {
				continue
			}
			c := g.At(x, y)
			for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
				if adj, ok := g.Lookup(n[0], n[1]); ok && adj.Kind == fluid.CellFluid {
					c.Kind = fluid.CellNoSlip
					break
				}
			}
		}
	}
}

func init() {
	Register("cavity", Info{
		Description: "lid-driven cavity: closed no-slip box, moving top wall",
		New: func(m map[string]string) (*fluid.Simulation, error) {
			cfg, err := defaultCavityConfig().fromMap(m)
			if err != nil {
				return nil, err
			}
			return NewCavity(cfg)
		},
	})
	Register("channel", Info{
		Description: "straight channel: inflow left, outflow right, free-slip walls",
		New: func(m map[string]string) (*fluid.Simulation, error) {
			cfg, err := defaultChannelConfig().fromMap(m)
			if err != nil {
				return nil, err
			}
			return NewChannel(cfg)
		},
	})
	Register("cylinder", Info{
		Description: "cylinder in cross-flow inside the straight channel",
		New: func(m map[string]string) (*fluid.Simulation, error) {
			cfg, err := defaultCylinderConfig().fromMap(m)
			if err != nil {
				return nil, err
			}
			return NewCylinderCrossFlow(cfg)
		},
	})
	Register("step", Info{
		Description: "backward-facing step: channel with a blocked lower left corner",
		New: func(m map[string]string) (*fluid.Simulation, error) {
			cfg, err := defaultStepConfig().fromMap(m)
			if err != nil {
				return nil, err
			}
			return NewBackwardStep(cfg)
		},
	})
}
