package viz

import (
	"fmt"
	"strings"

	"github.com/mvolek/biosim/internal/ode"
)

// PhasePlot draws an ASCII scatter of compartment yIdx against
// compartment xIdx. Point glyphs encode progress through the run:
// '.' early, 'o' middle, '●' late.
func PhasePlot(series *ode.Series, xIdx, yIdx int) (string, error) {
	if series.Len() == 0 {
		return "", fmt.Errorf("no data to plot")
	}
	if dim := len(series.States[0]); xIdx >= dim || yIdx >= dim {
		return "", fmt.Errorf("state dimension %d too small for axes %d/%d", dim, xIdx, yIdx)
	}

	xData := series.Compartment(xIdx)
	yData := series.Compartment(yIdx)

	xMin, xMax := xData[0], xData[0]
	yMin, yMax := yData[0], yData[0]
	for i := range xData {
		if xData[i] < xMin {
			xMin = xData[i]
		}
		if xData[i] > xMax {
			xMax = xData[i]
		}
		if yData[i] < yMin {
			yMin = yData[i]
		}
		if yData[i] > yMax {
			yMax = yData[i]
		}
	}

	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	const width, height = 70, 20
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i := range xData {
		px := int(float64(width-1) * (xData[i] - xMin) / xRange)
		py := int(float64(height-1) * (yData[i] - yMin) / yRange)
		py = height - 1 - py
		if px >= 0 && px < width && py >= 0 && py < height {
			if i < len(xData)/3 {
				canvas[py][px] = '.'
			} else if i < 2*len(xData)/3 {
				canvas[py][px] = 'o'
			} else {
				canvas[py][px] = '●'
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %.2f ┌%s┐\n", yMax, strings.Repeat("─", width))
	for i := range canvas {
		if i == height/2 {
			fmt.Fprintf(&b, "  %.2f │", (yMax+yMin)/2)
		} else {
			b.WriteString("       │")
		}
		b.WriteString(string(canvas[i]))
		b.WriteString("│\n")
	}
	fmt.Fprintf(&b, "  %.2f └%s┘\n", yMin, strings.Repeat("─", width))
	fmt.Fprintf(&b, "       %.2f%s%.2f\n", xMin, strings.Repeat(" ", width-20), xMax)
	b.WriteString("\nlegend: . = early, o = middle, ● = late\n")

	return b.String(), nil
}
