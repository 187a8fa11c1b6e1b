package renderer

import (
	"fmt"

	"github.com/etnz/frontier"
	"github.com/vicanso/go-charts/v2"
)

// FrontierChart renders the volatility/return curve of a frontier sweep as a
// PNG image: x axis is annualized volatility, y axis annualized return, both
// in percent.
func FrontierChart(f *frontier.FrontierReport) ([]byte, error) {
	if len(f.Points) == 0 {
		return nil, fmt.Errorf("no frontier points to chart")
	}

	labels := make([]string, 0, len(f.Points))
	values := make([]float64, 0, len(f.Points))
	minVal, maxVal := float64(f.Points[0].Return), float64(f.Points[0].Return)
	for _, point := range f.Points {
		labels = append(labels, fmt.Sprintf("%.1f", float64(point.Risk)))
		v := float64(point.Return)
		values = append(values, v)
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	// Pad the Y range so the curve does not hug the plot borders.
	padding := (maxVal - minVal) * 0.05
	if padding == 0 {
		padding = maxVal * 0.05
	}
	yMin := minVal - padding
	yMax := maxVal + padding

	title := fmt.Sprintf("Efficient Frontier (%s)\nmin volatility %s at c=%.2f",
		f.Period, f.MinRisk.Risk, f.MinRisk.Coefficient)

	p, err := charts.LineRender(
		[][]float64{values},
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			SplitNumber: 6,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate chart bytes: %w", err)
	}
	return buf, nil
}
