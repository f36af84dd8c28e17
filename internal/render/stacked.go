package render

import (
	"context"
	"fmt"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/core"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/logging"
)

// StackedBarChart draws one stack per layout with a segment per metro line,
// coloured from palette. A line the palette cannot colour is drawn in a
// fallback colour, flagged in the legend and logged at WARN; it never
// fails the chart.
func StackedBarChart(ctx context.Context, ct core.CrossTab, palette Palette) (Artifact, error) {
	if len(ct.Rows) == 0 || ct.Total() == 0 {
		return Artifact{}, fmt.Errorf("stacked bar chart: %w", ErrNoData)
	}

	colors, fallback := palette.assignColors(ct.Columns)
	legend := make([]LegendEntry, len(ct.Columns))
	for j, line := range ct.Columns {
		legend[j] = LegendEntry{Label: line, Color: colors[j].String(), Fallback: fallback[j]}
		if fallback[j] {
			logging.FromContext(ctx).Warn("metro line has no palette colour; using fallback",
				"line", line,
				"color", legend[j].Color,
			)
		}
	}

	bars, tallest := stackedBars(ct, colors)
	data := make([]Datum, len(ct.Rows))
	for i, layout := range ct.Rows {
		data[i] = Datum{Label: layout, Value: float64(ct.RowTotal(i))}
	}

	svg, err := renderSVG("stacked bar chart", chart.StackedBarChart{
		Width:      barChartWidth(len(bars), 80, 80),
		Height:     DefaultHeight,
		BarSpacing: 80,
		Background: chart.Style{Padding: chart.Box{Top: 40, Bottom: 40}},
		YAxis:      chart.Hidden(),
		Bars:       bars,
	})
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{
		Kind:  KindChart,
		Title: "Layout Distribution by Metro Line",
		Description: fmt.Sprintf("Stations per layout, split by metro line. The tallest stack has %d stations.",
			tallest),
		SVG:    svg,
		Data:   data,
		Legend: legend,
	}, nil
}

// stackedBars builds one bar per layout. go-chart scales every stack to
// the full height, so shorter stacks are topped with a transparent segment
// that pads them to the tallest one.
func stackedBars(ct core.CrossTab, colors []drawing.Color) ([]chart.StackedBar, int) {
	tallest := 0
	for i := range ct.Rows {
		if t := ct.RowTotal(i); t > tallest {
			tallest = t
		}
	}

	bars := make([]chart.StackedBar, len(ct.Rows))
	for i, layout := range ct.Rows {
		values := []chart.Value{{
			Value: float64(tallest - ct.RowTotal(i)),
			Style: chart.Style{FillColor: drawing.ColorTransparent, StrokeColor: drawing.ColorTransparent},
		}}
		for j, n := range ct.Counts[i] {
			if n == 0 {
				continue
			}
			values = append(values, chart.Value{
				Label: strconv.Itoa(n),
				Value: float64(n),
				Style: chart.Style{
					FillColor:   colors[j],
					StrokeColor: drawing.ColorWhite,
					StrokeWidth: 1,
					FontColor:   drawing.ColorBlack,
				},
			})
		}
		bars[i] = chart.StackedBar{Name: svgText(layout), Width: 80, Values: values}
	}
	return bars, tallest
}
