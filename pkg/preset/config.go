package preset

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// ParseOverrides turns key=value arguments into an override map.
func ParseOverrides(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	m := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("preset: malformed override %q, want key=value", arg)
		}
		m[key] = strings.TrimSpace(value)
	}
	return m, nil
}

// Config holds the tunable parameters the built-in presets share. Every
// preset starts from its own defaults; overrides arrive as flag-style
// key/value pairs.
type Config struct {
	Width  int
	Height int

	Dx, Dy    float64
	DeltaTime float64
	Reynolds  float64

	AccelX float64
	AccelY float64

	InflowSpeed float64 // face velocity prescribed on inflow walls
	LidSpeed    float64 // wall velocity of the cavity lid
	Radius      float64 // cylinder radius, in cells
	StepHeight  int     // backward-facing step height, in cells
}

// fromMap applies overrides onto the config. Unknown keys and unparsable
// values are errors; out-of-range results are caught by validate.
func (c Config) fromMap(m map[string]string) (Config, error) {
	for key, value := range m {
		var err error
		switch key {
		case "w":
			c.Width, err = cast.ToIntE(value)
		case "h":
			c.Height, err = cast.ToIntE(value)
		case "dx":
			c.Dx, err = cast.ToFloat64E(value)
		case "dy":
			c.Dy, err = cast.ToFloat64E(value)
		case "dt":
			c.DeltaTime, err = cast.ToFloat64E(value)
		case "re":
			c.Reynolds, err = cast.ToFloat64E(value)
		case "ax":
			c.AccelX, err = cast.ToFloat64E(value)
		case "ay":
			c.AccelY, err = cast.ToFloat64E(value)
		case "inflow":
			c.InflowSpeed, err = cast.ToFloat64E(value)
		case "lid":
			c.LidSpeed, err = cast.ToFloat64E(value)
		case "radius":
			c.Radius, err = cast.ToFloat64E(value)
		case "step":
			c.StepHeight, err = cast.ToIntE(value)
		default:
			return c, fmt.Errorf("preset: unknown parameter %q", key)
		}
		if err != nil {
			return c, fmt.Errorf("preset: parameter %q: %w", key, err)
		}
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("preset: grid %dx%d too small, need at least 3x3", c.Width, c.Height)
	}
	if c.Dx <= 0 || c.Dy <= 0 {
		return fmt.Errorf("preset: cell dimensions must be positive, got %gx%g", c.Dx, c.Dy)
	}
	if c.DeltaTime <= 0 {
		return fmt.Errorf("preset: timestep must be positive, got %g", c.DeltaTime)
	}
	if c.Reynolds <= 0 {
		return fmt.Errorf("preset: reynolds number must be positive, got %g", c.Reynolds)
	}
	return nil
}
