package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/1n0r1/euler-fluid-sim/pkg/fluid"
)

// fieldGrid adapts a sampled scalar to the plotter.GridXYZ interface. Walls
// report the field minimum so they sit at the bottom of the color map.
type fieldGrid struct {
	sc     Scalar
	dx, dy float64
}

func (fg fieldGrid) Dims() (int, int) { return fg.sc.W, fg.sc.H }
func (fg fieldGrid) X(c int) float64  { return float64(c) * fg.dx }
func (fg fieldGrid) Y(r int) float64  { return float64(r) * fg.dy }

func (fg fieldGrid) Z(c, r int) float64 {
	i := c*fg.sc.H + r
	if !fg.sc.Mask[i] {
		return fg.sc.Min
	}
	return fg.sc.Values[i]
}

// HeatmapPNG writes a heat map of the chosen field in physical coordinates.
func HeatmapPNG(path string, g *fluid.Grid, f Field) error {
	sc := Extract(g, f)
	dx, dy := g.Spacing()

	p := plot.New()
	p.Title.Text = f.String()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	hm := plotter.NewHeatMap(fieldGrid{sc: sc, dx: dx, dy: dy}, moreland.Kindlmann().Palette(255))
	if hm.Min == hm.Max {
		// flat fields render as a single color
		hm.Max = hm.Min + 1
	}
	p.Add(hm)
	if err := p.Save(6*vg.Inch, 6*vg.Inch*vg.Length(sc.H)/vg.Length(sc.W), path); err != nil {
		return fmt.Errorf("render: saving heat map: %w", err)
	}
	return nil
}

// CenterlineProfilePNG plots horizontal velocity along the vertical
// centerline, the standard cavity validation curve.
func CenterlineProfilePNG(path string, g *fluid.Grid) error {
	nx, ny := g.Size()
	_, dy := g.Spacing()
	x := nx / 2
	pts := make(plotter.XYs, 0, ny)
	for y := 0; y < ny; y++ {
		u, _ := g.CenteredVelocity(x, y)
		pts = append(pts, plotter.XY{X: u, Y: float64(y) * dy})
	}

	p := plot.New()
	p.Title.Text = "centerline u profile"
	p.X.Label.Text = "u"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("render: building profile: %w", err)
	}
	p.Add(line)
	if err := p.Save(4*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("render: saving profile: %w", err)
	}
	return nil
}
