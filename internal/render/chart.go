package render

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"
)

// SweepChartPNG plots pressure-solver sweep counts per step, a quick health
// view of the Poisson solve.
func SweepChartPNG(path string, sweeps []int) error {
	if len(sweeps) == 0 {
		return fmt.Errorf("render: no sweep history to plot")
	}
	xs := make([]float64, len(sweeps))
	ys := make([]float64, len(sweeps))
	for i, s := range sweeps {
		xs[i] = float64(i + 1)
		ys[i] = float64(s)
	}

	// go-chart rejects zero-delta ranges, so pad them out for one-step runs
	// and constant sweep counts.
	xr := &chart.ContinuousRange{Min: xs[0], Max: xs[len(xs)-1]}
	if xr.Min == xr.Max {
		xr.Min, xr.Max = xr.Min-1, xr.Max+1
	}
	yr := &chart.ContinuousRange{Min: floats.Min(ys), Max: floats.Max(ys)}
	if yr.Min == yr.Max {
		yr.Min, yr.Max = yr.Min-1, yr.Max+1
	}

	graph := chart.Chart{
		XAxis: chart.XAxis{Name: "step", Range: xr},
		YAxis: chart.YAxis{Name: "sweeps", Range: yr},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return graph.Render(chart.PNG, f)
}
