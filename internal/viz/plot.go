package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/mvolek/biosim/internal/ode"
)

const (
	plotWidth  = 80
	plotHeight = 10
)

// PlotSeries renders one asciigraph chart per compartment, captioned
// with the model's labels.
func PlotSeries(series *ode.Series, labels []string) string {
	if series.Len() == 0 {
		return "no data to plot\n"
	}

	var b strings.Builder
	for i := 0; i < len(series.States[0]); i++ {
		caption := fmt.Sprintf("x%d vs time", i)
		if i < len(labels) {
			caption = labels[i]
		}

		graph := asciigraph.Plot(series.Compartment(i),
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(caption),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}
	return b.String()
}

// PlotCombined renders every compartment on a single chart.
func PlotCombined(series *ode.Series, labels []string) string {
	if series.Len() == 0 {
		return "no data to plot\n"
	}

	data := make([][]float64, len(series.States[0]))
	for i := range data {
		data[i] = series.Compartment(i)
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(plotHeight+5),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(strings.Join(labels, " / ")),
	)
}
