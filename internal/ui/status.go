// Package ui holds the ebiten-side widgets of the viewer: the field painter,
// the velocity-arrow overlay, and the status panel. Headless builds get
// no-op stubs.
package ui

import "github.com/1n0r1/euler-fluid-sim/pkg/fluid"

// Status is the snapshot of simulation state the HUD prints each frame.
type Status struct {
	Name          string
	Field         string
	Paused        bool
	Time          float64
	Sweeps        int
	NonConverged  int
	StepsPerFrame int
	Speed         fluid.Range
	Pressure      fluid.Range
}
