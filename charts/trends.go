// Package charts renders bill trends as images.
package charts

import (
	"errors"
	"fmt"

	"github.com/VivekbirN/SDP-project/insight"
	charts "github.com/vicanso/go-charts/v2"
)

// ErrNoTrends is returned when there is nothing to plot.
var ErrNoTrends = errors.New("no trend data available")

// TrendChart renders trend lines.
type TrendChart struct {
	theme  string
	width  int
	height int
}

// NewTrendChart creates a chart renderer with the default size and theme.
func NewTrendChart() *TrendChart {
	return &TrendChart{
		theme:  "light",
		width:  1200,
		height: 400,
	}
}

// Series splits trends into x-axis labels and the units/amount series.
func Series(trends []insight.Trend) (labels []string, units []float64, amounts []float64) {
	for _, t := range trends {
		labels = append(labels, t.Period)
		units = append(units, t.UnitsConsumed)
		amounts = append(amounts, t.Amount)
	}
	return labels, units, amounts
}

// RenderPNG draws units consumed and amount per period as a PNG line chart.
func (tc *TrendChart) RenderPNG(title string, trends []insight.Trend) ([]byte, error) {
	if len(trends) == 0 {
		return nil, ErrNoTrends
	}

	labels, units, amounts := Series(trends)
	p, err := charts.LineRender(
		[][]float64{units, amounts},
		charts.TitleTextOptionFunc(title),
		charts.XAxisDataOptionFunc(labels),
		charts.LegendLabelsOptionFunc([]string{"Units consumed", "Amount (₹)"}, charts.PositionRight),
		charts.ThemeOptionFunc(tc.theme),
		charts.WidthOptionFunc(tc.width),
		charts.HeightOptionFunc(tc.height),
		charts.PaddingOptionFunc(charts.Box{
			Top:    20,
			Right:  20,
			Bottom: 20,
			Left:   20,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render trend chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate chart bytes: %w", err)
	}
	return buf, nil
}
