package render

import (
	"fmt"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/core"
)

var (
	barColor  = drawing.ColorFromHex("4c78a8")
	lineColor = drawing.ColorFromHex("e45756")
)

// PieChart draws the share of stations on each metro line.
// Slice labels carry the percentage, e.g. "Red line 60.0%".
func PieChart(counts []core.CategoryCount) (Artifact, error) {
	values, data, err := pieValues(counts)
	if err != nil {
		return Artifact{}, err
	}

	svg, err := renderSVG("pie chart", chart.PieChart{
		Width:  DefaultHeight + 160,
		Height: DefaultHeight + 160,
		Values: values,
	})
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{
		Kind:        KindChart,
		Title:       "Metro Line Distribution",
		Description: "Share of stations served by each metro line.",
		SVG:         svg,
		Data:        data,
	}, nil
}

func pieValues(counts []core.CategoryCount) ([]chart.Value, []Datum, error) {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	if total == 0 {
		return nil, nil, fmt.Errorf("pie chart: %w", ErrNoData)
	}

	values := make([]chart.Value, len(counts))
	data := make([]Datum, len(counts))
	for i, c := range counts {
		share := float64(c.Count) / float64(total) * 100
		values[i] = chart.Value{
			Label: svgText(fmt.Sprintf("%s %.1f%%", c.Category, share)),
			Value: float64(c.Count),
		}
		data[i] = Datum{Label: c.Category, Value: float64(c.Count)}
	}
	return values, data, nil
}

// BarChart draws one bar per metro line with its station count.
func BarChart(counts []core.CategoryCount) (Artifact, error) {
	if len(counts) == 0 {
		return Artifact{}, fmt.Errorf("bar chart: %w", ErrNoData)
	}

	bars := make([]chart.Value, len(counts))
	data := make([]Datum, len(counts))
	max := 0
	for i, c := range counts {
		bars[i] = chart.Value{
			Label: svgText(c.Category),
			Value: float64(c.Count),
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor},
		}
		data[i] = Datum{Label: c.Category, Value: float64(c.Count)}
		if c.Count > max {
			max = c.Count
		}
	}

	ticks := intTicks(max)
	svg, err := renderSVG("bar chart", chart.BarChart{
		Width:      barChartWidth(len(bars), 60, 30),
		Height:     DefaultHeight,
		BarWidth:   60,
		BarSpacing: 30,
		Background: chart.Style{Padding: chart.Box{Top: 40, Bottom: 40}},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: tickMax(ticks)},
			Ticks:          ticks,
			ValueFormatter: chart.IntValueFormatter,
		},
		Bars: bars,
	})
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{
		Kind:        KindChart,
		Title:       "Stations per Metro Line",
		Description: "Number of stations on each metro line.",
		SVG:         svg,
		Data:        data,
	}, nil
}

// HistogramChart draws the distance histogram, one bar per bin labelled
// with its lower edge in kilometres.
func HistogramChart(h core.Histogram) (Artifact, error) {
	if len(h.Bins) == 0 || h.Total() == 0 {
		return Artifact{}, fmt.Errorf("histogram: %w", ErrNoData)
	}

	bars := make([]chart.Value, len(h.Bins))
	data := make([]Datum, len(h.Bins))
	max := 0
	for i, b := range h.Bins {
		label := strconv.FormatFloat(b.Lo, 'f', 1, 64)
		bars[i] = chart.Value{
			Label: label,
			Value: float64(b.Count),
			Style: chart.Style{FillColor: barColor, StrokeColor: drawing.ColorWhite, StrokeWidth: 1},
		}
		data[i] = Datum{Label: fmt.Sprintf("%.2f-%.2f", b.Lo, b.Hi), Value: float64(b.Count)}
		if b.Count > max {
			max = b.Count
		}
	}

	ticks := intTicks(max)
	svg, err := renderSVG("histogram", chart.BarChart{
		Width:      barChartWidth(len(bars), 34, 6),
		Height:     DefaultHeight,
		BarWidth:   34,
		BarSpacing: 6,
		Background: chart.Style{Padding: chart.Box{Top: 40, Bottom: 40}},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: tickMax(ticks)},
			Ticks:          ticks,
			ValueFormatter: chart.IntValueFormatter,
		},
		Bars: bars,
	})
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{
		Kind:        KindChart,
		Title:       "Distance from First Station",
		Description: fmt.Sprintf("Stations grouped into %d equal-width distance bins (km).", len(h.Bins)),
		SVG:         svg,
		Data:        data,
	}, nil
}

// LineChart draws stations opened per year with a marker on each year.
func LineChart(years []core.YearCount) (Artifact, error) {
	if len(years) == 0 {
		return Artifact{}, fmt.Errorf("line chart: %w", ErrNoData)
	}

	xs := make([]float64, len(years))
	ys := make([]float64, len(years))
	data := make([]Datum, len(years))
	xTicks := make([]chart.Tick, 0, len(years)+2)
	max := 0
	for i, y := range years {
		xs[i] = float64(y.Year)
		ys[i] = float64(y.Count)
		data[i] = Datum{Label: strconv.Itoa(y.Year), Value: float64(y.Count)}
		xTicks = append(xTicks, chart.Tick{Value: xs[i], Label: strconv.Itoa(y.Year)})
		if y.Count > max {
			max = y.Count
		}
	}

	first, last := years[0].Year-1, years[len(years)-1].Year+1
	xTicks = append([]chart.Tick{{Value: float64(first)}}, xTicks...)
	xTicks = append(xTicks, chart.Tick{Value: float64(last)})
	yTicks := intTicks(max)

	svg, err := renderSVG("line chart", chart.Chart{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           "Opened (Year)",
			Range:          &chart.ContinuousRange{Min: float64(first), Max: float64(last)},
			Ticks:          xTicks,
			ValueFormatter: chart.IntValueFormatter,
			Style:          chart.Style{TextRotationDegrees: 45},
		},
		YAxis: chart.YAxis{
			Name:           "Stations opened",
			Range:          &chart.ContinuousRange{Min: 0, Max: tickMax(yTicks)},
			Ticks:          yTicks,
			ValueFormatter: chart.IntValueFormatter,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Openings",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
					DotColor:    lineColor,
					DotWidth:    4,
				},
			},
		},
	})
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{
		Kind:        KindChart,
		Title:       "Yearly Openings",
		Description: "Stations opened in each year. Years without openings are not plotted unless gap filling is enabled.",
		SVG:         svg,
		Data:        data,
	}, nil
}

// barChartWidth sizes a bar chart so every bar and its label fit.
func barChartWidth(bars, barWidth, spacing int) int {
	w := bars*(barWidth+spacing) + 120
	if w < DefaultWidth/2 {
		return DefaultWidth / 2
	}
	return w
}
