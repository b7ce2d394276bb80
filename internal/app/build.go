package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/1n0r1/euler-fluid-sim/pkg/fluid"
	"github.com/1n0r1/euler-fluid-sim/pkg/preset"
)

// BuildSimulation constructs the simulation the config names, scenario file
// first, registry preset otherwise. The returned name labels the window and
// HUD.
func BuildSimulation(cfg *Config) (*fluid.Simulation, string, error) {
	if cfg.Scenario != "" {
		sc, err := preset.LoadScenario(cfg.Scenario)
		if err != nil {
			return nil, "", err
		}
		sim, err := sc.Build()
		if err != nil {
			return nil, "", err
		}
		name := sc.Name
		if name == "" {
			name = filepath.Base(cfg.Scenario)
		}
		return sim, name, nil
	}

	info, ok := preset.Lookup(cfg.Preset)
	if !ok {
		return nil, "", fmt.Errorf("unknown preset %q (have %s)",
			cfg.Preset, strings.Join(preset.Names(), ", "))
	}
	overrides, err := preset.ParseOverrides(splitSet(cfg.Set))
	if err != nil {
		return nil, "", err
	}
	sim, err := info.New(overrides)
	if err != nil {
		return nil, "", err
	}
	return sim, cfg.Preset, nil
}

func splitSet(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
