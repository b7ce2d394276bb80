// Package preset constructs ready-to-step simulations: built-in scenarios
// behind a name registry, plus TOML scenario files for custom domains.
package preset

import (
	"sort"

	"github.com/1n0r1/euler-fluid-sim/pkg/fluid"
)

// Factory builds a simulation, applying flag-style key/value overrides on top
// of the preset's defaults.
type Factory func(overrides map[string]string) (*fluid.Simulation, error)

// Info describes a registered preset.
type Info struct {
	Description string
	New         Factory
}

var presets = map[string]Info{}

// Register adds a preset under the provided name.
func Register(name string, info Info) {
	if name == "" || info.New == nil {
		return
	}
	presets[name] = info
}

// Lookup returns the preset registered under name.
func Lookup(name string) (Info, bool) {
	info, ok := presets[name]
	return info, ok
}

// Names lists the registered presets in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
