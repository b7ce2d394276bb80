// Package render turns simulation grids into images: raw RGBA rasters for
// the viewer, heat maps and profile plots, animated GIFs, and motion-JPEG
// video.
package render

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/1n0r1/euler-fluid-sim/pkg/fluid"
)

// Field selects which scalar the renderer maps to color.
type Field int

const (
	FieldSpeed Field = iota
	FieldPressure
	FieldPsi
)

func (f Field) String() string {
	switch f {
	case FieldSpeed:
		return "speed"
	case FieldPressure:
		return "pressure"
	case FieldPsi:
		return "psi"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField maps a command-line name onto a Field.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(s) {
	case "speed":
		return FieldSpeed, nil
	case "pressure", "p":
		return FieldPressure, nil
	case "psi", "stream":
		return FieldPsi, nil
	}
	return 0, fmt.Errorf("render: unknown field %q (have speed, pressure, psi)", s)
}

// Scalar is one field sampled over the whole grid, x-major like the grid
// arena, with the value range taken over fluid cells only.
type Scalar struct {
	W, H   int
	Values []float64
	Mask   []bool // true where the cell is fluid
	Min    float64
	Max    float64
}

// Extract samples the chosen field from every fluid cell.
func Extract(g *fluid.Grid, f Field) Scalar {
	nx, ny := g.Size()
	sc := Scalar{
		W:      nx,
		H:      ny,
		Values: make([]float64, nx*ny),
		Mask:   make([]bool, nx*ny),
	}
	inRange := make([]float64, 0, nx*ny)
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			c := g.At(x, y)
			if c.Kind != fluid.CellFluid {
				continue
			}
			var v float64
			switch f {
			case FieldPressure:
				v = c.P
			case FieldPsi:
				v = c.Psi
			default:
				v = math.Hypot(c.U, c.V)
			}
			i := x*ny + y
			sc.Values[i] = v
			sc.Mask[i] = true
			inRange = append(inRange, v)
		}
	}
	if len(inRange) > 0 {
		sc.Min = floats.Min(inRange)
		sc.Max = floats.Max(inRange)
	}
	return sc
}

// Norm maps a value into [0,1] across the fluid range. A flat field maps to
// the middle of the gradient.
func (s Scalar) Norm(v float64) float64 {
	span := s.Max - s.Min
	if span <= 0 {
		return 0.5
	}
	return (v - s.Min) / span
}
