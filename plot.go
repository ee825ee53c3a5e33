package main

import (
	"slices"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotLatency draws one bar group per operation and one bar per
// structure/config pair, and saves the chart to path.
func PlotLatency(results []BenchResult, path string) error {
	var ops, series []string
	latency := make(map[string]map[string]float64)
	for _, r := range results {
		name := r.Name + " " + r.Config
		if _, ok := latency[name]; !ok {
			latency[name] = make(map[string]float64)
			series = append(series, name)
		}
		if !slices.Contains(ops, r.Operation) {
			ops = append(ops, r.Operation)
		}
		latency[name][r.Operation] = float64(r.LatencyNs)
	}
	if len(series) == 0 {
		return errors.New("plot: no results")
	}

	p := plot.New()
	p.Title.Text = "Latency per operation"
	p.Y.Label.Text = "ns/op"

	width := vg.Points(60 / float64(len(series)))
	if width < 2 {
		width = 2
	}
	for i, name := range series {
		values := make(plotter.Values, len(ops))
		for j, op := range ops {
			values[j] = latency[name][op]
		}
		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return errors.Wrapf(err, "plot: bars for %s", name)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = width * vg.Length(i-len(series)/2)
		p.Add(bars)
		p.Legend.Add(name, bars)
	}
	p.Legend.Top = true
	p.NominalX(ops...)

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "plot: save %s", path)
	}
	return nil
}
