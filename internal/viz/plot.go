package viz

import (
	"github.com/guptarohit/asciigraph"
)

// Plot draws a per-frame series as an ascii line chart.
func Plot(series []float64, caption string, width, height int) string {
	if len(series) == 0 {
		return Subtle.Render("(no data)")
	}
	data := series
	if len(data) == 1 {
		data = []float64{data[0], data[0]}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// PlotMany draws several series that share the frame axis.
func PlotMany(series [][]float64, caption string, width, height int) string {
	var data [][]float64
	for _, s := range series {
		if len(s) > 1 {
			data = append(data, s)
		}
	}
	if len(data) == 0 {
		return Subtle.Render("(no data)")
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Magenta, asciigraph.Yellow),
	)
}
