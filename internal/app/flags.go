package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Preset   string
	Scenario string
	Set      string
	Field    string
	Palette  string
	Scale    int
	TPS      int
	Steps    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Preset:  "cylinder",
		Field:   "speed",
		Palette: "viridis",
		Scale:   6,
		TPS:     60,
		Steps:   1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "preset to run")
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "TOML scenario file, overrides -preset")
	fs.StringVar(&c.Set, "set", c.Set, "comma-separated key=value preset overrides")
	fs.StringVar(&c.Field, "field", c.Field, "field to display (speed, pressure, psi)")
	fs.StringVar(&c.Palette, "palette", c.Palette, "color palette")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Steps, "steps", c.Steps, "simulation steps per frame")
}
