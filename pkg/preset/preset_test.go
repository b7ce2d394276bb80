package preset

import (
	"testing"

	"github.com/1n0r1/euler-fluid-sim/pkg/fluid"
)

func TestCavityLayout(t *testing.T) {
	cfg := defaultCavityConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.LidSpeed = 2.5
	sim, err := NewCavity(cfg)
	if err != nil {
		t.Fatalf("NewCavity: %v", err)
	}
	g := sim.Grid()
	fluidCells := 0
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			c := g.At(x, y)
			ring := x == 0 || y == 0 || x == 7 || y == 7
			if ring && c.Kind != fluid.CellNoSlip {
				t.Fatalf("cell (%d,%d): kind %v, want no-slip ring", x, y, c.Kind)
			}
			if !ring {
				if c.Kind != fluid.CellFluid {
					t.Fatalf("cell (%d,%d): kind %v, want fluid", x, y, c.Kind)
				}
				fluidCells++
			}
			if y == 7 && c.WallU != 2.5 {
				t.Fatalf("lid cell (%d,%d): WallU = %v, want 2.5", x, y, c.WallU)
			}
		}
	}
	if fluidCells != 36 {
		t.Fatalf("fluid cells = %d, want 36", fluidCells)
	}
}

func TestChannelLayout(t *testing.T) {
	cfg := defaultChannelConfig()
	cfg.Width, cfg.Height = 10, 6
	cfg.InflowSpeed = 1.5
	sim, err := NewChannel(cfg)
	if err != nil {
		t.Fatalf("NewChannel: %v", err)
	}
	g := sim.Grid()
	for x := 0; x < 10; x++ {
		if g.At(x, 0).Kind != fluid.CellFreeSlip || g.At(x, 5).Kind != fluid.CellFreeSlip {
			t.Fatalf("column %d: top/bottom walls are not free-slip", x)
		}
	}
	for y := 1; y < 5; y++ {
		in := g.At(0, y)
		if in.Kind != fluid.CellInflow {
			t.Fatalf("inlet (0,%d): kind %v", y, in.Kind)
		}
		if in.U != 1.5 {
			t.Fatalf("inlet (0,%d): U = %v, want 1.5", y, in.U)
		}
		if out := g.At(9, y); out.Kind != fluid.CellOutflow {
			t.Fatalf("outlet (9,%d): kind %v", y, out.Kind)
		}
	}
	if c := g.At(4, 3); c.Kind != fluid.CellFluid || c.U != 1.5 {
		t.Fatalf("interior (4,3): kind %v U %v, want moving fluid", c.Kind, c.U)
	}
}

func TestCylinderCarvesVoidCoreAndNoSlipShell(t *testing.T) {
	cfg := defaultCylinderConfig()
	cfg.Width, cfg.Height = 30, 20
	cfg.Radius = 4
	sim, err := NewCylinderCrossFlow(cfg)
	if err != nil {
		t.Fatalf("NewCylinderCrossFlow: %v", err)
	}
	g := sim.Grid()
	// disk centered at (6,10)
	if got := g.At(6, 10).Kind; got != fluid.CellVoid {
		t.Fatalf("disk core (6,10): kind %v, want void", got)
	}
	if got := g.At(9, 10).Kind; got != fluid.CellVoid {
		t.Fatalf("buried cell (9,10): kind %v, want void", got)
	}
	shell := g.At(10, 10)
	if shell.Kind != fluid.CellNoSlip {
		t.Fatalf("shell (10,10): kind %v, want no-slip", shell.Kind)
	}
	if shell.U != 0 {
		t.Fatalf("shell (10,10): U = %v, want 0 after carving", shell.U)
	}
	if c := g.At(12, 10); c.Kind != fluid.CellFluid || c.U != cfg.InflowSpeed {
		t.Fatalf("wake cell (12,10): kind %v U %v, want moving fluid", c.Kind, c.U)
	}
}

func TestBackwardStepBlocksLowerLeftCorner(t *testing.T) {
	cfg := defaultStepConfig()
	cfg.Width, cfg.Height = 20, 12
	cfg.StepHeight = 4
	sim, err := NewBackwardStep(cfg)
	if err != nil {
		t.Fatalf("NewBackwardStep: %v", err)
	}
	g := sim.Grid()
	if got := g.At(2, 2).Kind; got != fluid.CellVoid {
		t.Fatalf("step interior (2,2): kind %v, want void", got)
	}
	if got := g.At(5, 4).Kind; got != fluid.CellNoSlip {
		t.Fatalf("step corner (5,4): kind %v, want no-slip", got)
	}
	if got := g.At(3, 4).Kind; got != fluid.CellNoSlip {
		t.Fatalf("step top (3,4): kind %v, want no-slip", got)
	}
	if got := g.At(0, 8).Kind; got != fluid.CellInflow {
		t.Fatalf("inlet above step (0,8): kind %v, want inflow", got)
	}
	if got := g.At(6, 1).Kind; got != fluid.CellFluid {
		t.Fatalf("cell past step (6,1): kind %v, want fluid", got)
	}
}

func TestPresetRegistryAppliesOverrides(t *testing.T) {
	info, ok := Lookup("cavity")
	if !ok {
		t.Fatal("cavity preset not registered")
	}
	sim, err := info.New(map[string]string{"w": "8", "h": "9", "lid": "3"})
	if err != nil {
		t.Fatalf("building cavity: %v", err)
	}
	nx, ny := sim.Grid().Size()
	if nx != 8 || ny != 9 {
		t.Fatalf("grid = %dx%d, want 8x9", nx, ny)
	}
	if got := sim.Grid().At(4, 8).WallU; got != 3 {
		t.Fatalf("lid speed = %v, want 3", got)
	}
}

func TestPresetRegistryRejectsUnknownParameter(t *testing.T) {
	info, ok := Lookup("cavity")
	if !ok {
		t.Fatal("cavity preset not registered")
	}
	if _, err := info.New(map[string]string{"vorticity": "1"}); err == nil {
		t.Fatal("expected an error for an unknown parameter")
	}
}

func TestNamesListsEveryPresetSorted(t *testing.T) {
	want := []string{"cavity", "channel", "cylinder", "step"}
	names := Names()
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}

func TestConfigRejectsDegenerateParameters(t *testing.T) {
	cfg := defaultCavityConfig()
	cfg.Width = 2
	if _, err := NewCavity(cfg); err == nil {
		t.Fatal("expected an error for a 2-wide grid")
	}
	cfg = defaultCavityConfig()
	cfg.DeltaTime = 0
	if _, err := NewCavity(cfg); err == nil {
		t.Fatal("expected an error for a zero timestep")
	}
}

func TestParseOverrides(t *testing.T) {
	m, err := ParseOverrides([]string{"w=32", "re = 250"})
	if err != nil {
		t.Fatalf("ParseOverrides: %v", err)
	}
	if m["w"] != "32" || m["re"] != "250" {
		t.Fatalf("overrides = %v", m)
	}
	if _, err := ParseOverrides([]string{"width"}); err == nil {
		t.Fatal("expected an error for a malformed override")
	}
}

func TestPresetsStepCleanly(t *testing.T) {
	overrides := map[string]map[string]string{
		"cavity":   {"w": "16", "h": "16"},
		"channel":  {"w": "20", "h": "12"},
		"cylinder": {"w": "40", "h": "20", "radius": "3"},
		"step":     {"w": "24", "h": "16", "step": "5"},
	}
	for name, m := range overrides {
		info, ok := Lookup(name)
		if !ok {
			t.Fatalf("preset %q not registered", name)
		}
		sim, err := info.New(m)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		sim.Step()
		if sim.Time() <= 0 {
			t.Fatalf("%s: time did not advance", name)
		}
		if r := sim.Grid().SpeedRange(); r.Max <= 0 {
			t.Fatalf("%s: speed range %v after one step", name, r)
		}
	}
}
