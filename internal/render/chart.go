package render

import (
	"github.com/guptarohit/asciigraph"

	"loanworks/internal/loan"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Blue,
}

// Chart draws the interest, principal and installment series of a schedule
// as a multi-line terminal chart with a legend.
func Chart(s loan.Schedule, width, height int) string {
	series := s.Series()
	data := make([][]float64, len(series))
	legends := make([]string, len(series))
	for i, col := range series {
		data[i] = col.Values
		legends[i] = col.Name
	}
	return asciigraph.PlotMany(data,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(s.Model.Title()),
		asciigraph.SeriesColors(seriesColors...),
		asciigraph.SeriesLegends(legends...),
	)
}
