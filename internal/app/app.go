//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1n0r1/euler-fluid-sim/internal/render"
	"github.com/1n0r1/euler-fluid-sim/internal/ui"
	"github.com/1n0r1/euler-fluid-sim/pkg/fluid"
)

const hudWidth = 220

// Game adapts a fluid simulation to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	name    string
	sim     *fluid.Simulation
	painter *ui.FieldPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	field    render.Field
	palette  render.Palette
	scale    int
	steps    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided configuration.
func New(cfg *Config) (*Game, error) {
	sim, name, err := BuildSimulation(cfg)
	if err != nil {
		return nil, err
	}
	field, err := render.ParseField(cfg.Field)
	if err != nil {
		return nil, err
	}
	pal, err := render.NewPalette(cfg.Palette)
	if err != nil {
		return nil, err
	}
	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}
	steps := cfg.Steps
	if steps < 1 {
		steps = 1
	}
	nx, ny := sim.Grid().Size()
	return &Game{
		cfg:     cfg,
		name:    name,
		sim:     sim,
		painter: ui.NewFieldPainter(nx, ny),
		overlay: ui.NewOverlay(scale),
		hud:     ui.NewHUD(hudWidth),
		field:   field,
		palette: pal,
		scale:   scale,
		steps:   steps,
	}, nil
}

// Name returns the preset or scenario name for the window title.
func (g *Game) Name() string { return g.name }

// Reset rebuilds the simulation in its initial state.
func (g *Game) Reset() error {
	sim, _, err := BuildSimulation(g.cfg)
	if err != nil {
		return err
	}
	g.sim = sim
	g.tickOnce = false
	return nil
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.field = nextField(g.field)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.steps++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && g.steps > 1 {
		g.steps--
	}

	g.overlay.Update()

	if (!g.paused) || g.tickOnce {
		for i := 0; i < g.steps; i++ {
			g.sim.Step()
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Grid(), g.field, g.palette, g.scale)
	g.overlay.Draw(screen, g.sim.Grid())

	nx, ny := g.sim.Grid().Size()
	g.hud.Draw(screen, nx*g.scale, ny*g.scale, ui.Status{
		Name:          g.name,
		Field:         g.field.String(),
		Paused:        g.paused,
		Time:          g.sim.Time(),
		Sweeps:        g.sim.PoissonSweeps(),
		NonConverged:  g.sim.NonConvergedSteps(),
		StepsPerFrame: g.steps,
		Speed:         g.sim.Grid().SpeedRange(),
		Pressure:      g.sim.Grid().PressureRange(),
	})
}

// Layout returns the logical screen size including the side panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	nx, ny := g.sim.Grid().Size()
	return nx*g.scale + hudWidth, ny * g.scale
}

func nextField(f render.Field) render.Field {
	switch f {
	case render.FieldSpeed:
		return render.FieldPressure
	case render.FieldPressure:
		return render.FieldPsi
	default:
		return render.FieldSpeed
	}
}
