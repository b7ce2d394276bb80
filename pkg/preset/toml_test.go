package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/1n0r1/euler-fluid-sim/pkg/fluid"
)

const scenarioTOML = `
name = "plug flow"

[grid]
width = 20
height = 10
dx = 0.1
dy = 0.1

[physics]
delta_time = 0.005
reynolds = 150.0

[walls]
left = { kind = "inflow", u = 1.0 }
right = { kind = "outflow" }
bottom = { kind = "freeslip" }
top = { kind = "noslip", u = 0.5 }

[[obstacles]]
shape = "box"
x0 = 4
y0 = 1
x1 = 6
y1 = 3

[initial]
u = 1.0
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing scenario: %v", err)
	}
	return path
}

func TestLoadScenarioBuildsGrid(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioTOML))
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if sc.Name != "plug flow" {
		t.Fatalf("name = %q, want %q", sc.Name, "plug flow")
	}
	sim, err := sc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g := sim.Grid()
	if c := g.At(0, 5); c.Kind != fluid.CellInflow || c.U != 1 {
		t.Fatalf("left wall (0,5): kind %v U %v, want inflow at 1", c.Kind, c.U)
	}
	if c := g.At(19, 5); c.Kind != fluid.CellOutflow {
		t.Fatalf("right wall (19,5): kind %v, want outflow", c.Kind)
	}
	if c := g.At(10, 9); c.Kind != fluid.CellNoSlip || c.WallU != 0.5 {
		t.Fatalf("top wall (10,9): kind %v WallU %v, want moving no-slip", c.Kind, c.WallU)
	}
	if c := g.At(0, 9); c.Kind != fluid.CellNoSlip {
		t.Fatalf("corner (0,9): kind %v, want the top wall to own it", c.Kind)
	}
	if c := g.At(5, 2); c.Kind != fluid.CellVoid {
		t.Fatalf("box core (5,2): kind %v, want void", c.Kind)
	}
	if c := g.At(4, 2); c.Kind != fluid.CellNoSlip {
		t.Fatalf("box face (4,2): kind %v, want no-slip shell", c.Kind)
	}
	if c := g.At(10, 5); c.Kind != fluid.CellFluid || c.U != 1 {
		t.Fatalf("interior (10,5): kind %v U %v, want moving fluid", c.Kind, c.U)
	}
}

func TestLoadScenarioRejectsUnknownKey(t *testing.T) {
	path := writeScenario(t, "vorticity = 1\n"+scenarioTOML)
	if _, err := LoadScenario(path); err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func baseScenario() Scenario {
	return Scenario{
		Grid:    GridSpec{Width: 8, Height: 8, Dx: 0.1, Dy: 0.1},
		Physics: PhysicsSpec{DeltaTime: 0.01, Reynolds: 100},
		Walls: map[string]Wall{
			"left":   {Kind: "noslip"},
			"right":  {Kind: "noslip"},
			"bottom": {Kind: "noslip"},
			"top":    {Kind: "noslip"},
		},
	}
}

func TestBuildRejectsUnknownWallKind(t *testing.T) {
	sc := baseScenario()
	sc.Walls["left"] = Wall{Kind: "slippery"}
	if _, err := sc.Build(); err == nil {
		t.Fatal("expected an error for an unknown wall kind")
	}
}

func TestBuildRequiresEveryWall(t *testing.T) {
	sc := baseScenario()
	delete(sc.Walls, "top")
	if _, err := sc.Build(); err == nil {
		t.Fatal("expected an error for a missing wall")
	}
}

func TestBuildRejectsUnknownObstacleShape(t *testing.T) {
	sc := baseScenario()
	sc.Obstacles = []Obstacle{{Shape: "triangle"}}
	if _, err := sc.Build(); err == nil {
		t.Fatal("expected an error for an unknown obstacle shape")
	}
}
