package render

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/mazznoer/colorgrad"
)

var gradients = map[string]func() colorgrad.Gradient{
	"viridis":  colorgrad.Viridis,
	"inferno":  colorgrad.Inferno,
	"magma":    colorgrad.Magma,
	"plasma":   colorgrad.Plasma,
	"turbo":    colorgrad.Turbo,
	"spectral": colorgrad.Spectral,
	"rdbu":     colorgrad.RdBu,
}

// Palette maps normalized field values onto a color gradient. Cells that are
// not fluid render in the wall color.
type Palette struct {
	grad colorgrad.Gradient
	wall color.RGBA
}

// NewPalette looks up a gradient by name.
func NewPalette(name string) (Palette, error) {
	g, ok := gradients[strings.ToLower(name)]
	if !ok {
		return Palette{}, fmt.Errorf("render: unknown palette %q (have %s)",
			name, strings.Join(PaletteNames(), ", "))
	}
	return Palette{grad: g(), wall: color.RGBA{R: 40, G: 40, B: 46, A: 255}}, nil
}

// PaletteNames lists the available gradients, sorted.
func PaletteNames() []string {
	names := make([]string, 0, len(gradients))
	for name := range gradients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// At returns the gradient color for a normalized value.
func (p Palette) At(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r, g, b := p.grad.At(t).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Wall returns the color used for non-fluid cells.
func (p Palette) Wall() color.RGBA { return p.wall }

// Colors samples n evenly spaced gradient colors, used to build the indexed
// palette for GIF frames.
func (p Palette) Colors(n int) []color.RGBA {
	if n < 2 {
		n = 2
	}
	out := make([]color.RGBA, n)
	for i := range out {
		out[i] = p.At(float64(i) / float64(n-1))
	}
	return out
}
