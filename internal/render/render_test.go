package render

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/core"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/logging"
)

var redBlue = []core.CategoryCount{{Category: "Red line", Count: 3}, {Category: "Blue line", Count: 2}}

func TestPieChart(t *testing.T) {
	a, err := PieChart(redBlue)
	if err != nil {
		t.Fatalf("PieChart() error = %v", err)
	}

	if a.Kind != KindChart {
		t.Errorf("Kind = %q, want %q", a.Kind, KindChart)
	}
	if !bytes.HasPrefix(a.SVG, []byte("<svg")) {
		t.Errorf("SVG should start with <svg, got %.40q", a.SVG)
	}
	for _, want := range []string{"Red line 60.0%", "Blue line 40.0%"} {
		if !bytes.Contains(a.SVG, []byte(want)) {
			t.Errorf("SVG should contain slice label %q", want)
		}
	}
}

func TestPieValues_Split(t *testing.T) {
	values, data, err := pieValues(redBlue)
	if err != nil {
		t.Fatalf("pieValues() error = %v", err)
	}
	if len(values) != 2 || len(data) != 2 {
		t.Fatalf("got %d values, %d data, want 2 each", len(values), len(data))
	}
	if values[0].Label != "Red line 60.0%" || values[1].Label != "Blue line 40.0%" {
		t.Errorf("labels = %q, %q", values[0].Label, values[1].Label)
	}
}

func TestBarChart(t *testing.T) {
	a, err := BarChart(redBlue)
	if err != nil {
		t.Fatalf("BarChart() error = %v", err)
	}

	if len(a.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(a.Data))
	}
	if a.Data[0] != (Datum{Label: "Red line", Value: 3}) || a.Data[1] != (Datum{Label: "Blue line", Value: 2}) {
		t.Errorf("Data = %+v", a.Data)
	}
	if !bytes.Contains(a.SVG, []byte("Red")) {
		t.Error("SVG should contain the Red line label")
	}
}

func TestBarChart_EscapesLabels(t *testing.T) {
	a, err := BarChart([]core.CategoryCount{{Category: "<Line & Co>", Count: 1}})
	if err != nil {
		t.Fatalf("BarChart() error = %v", err)
	}
	if bytes.Contains(a.SVG, []byte("<Line")) {
		t.Error("SVG should not contain unescaped label markup")
	}
	if a.Data[0].Label != "<Line & Co>" {
		t.Errorf("Data label = %q, want the raw category", a.Data[0].Label)
	}
}

func TestHistogramChart(t *testing.T) {
	h := core.Histogram{Bins: make([]core.Bin, 20)}
	for i := range h.Bins {
		h.Bins[i] = core.Bin{Lo: float64(i), Hi: float64(i + 1)}
	}
	h.Bins[0].Count = 2
	h.Bins[19].Count = 1

	a, err := HistogramChart(h)
	if err != nil {
		t.Fatalf("HistogramChart() error = %v", err)
	}
	if len(a.Data) != 20 {
		t.Errorf("len(Data) = %d, want 20", len(a.Data))
	}
	if !strings.Contains(a.Description, "20") {
		t.Errorf("Description = %q, should mention the bin count", a.Description)
	}
}

func TestLineChart(t *testing.T) {
	a, err := LineChart([]core.YearCount{{Year: 2002, Count: 2}, {Year: 2010, Count: 1}})
	if err != nil {
		t.Fatalf("LineChart() error = %v", err)
	}
	if len(a.Data) != 2 || a.Data[0].Label != "2002" || a.Data[0].Value != 2 {
		t.Errorf("Data = %+v", a.Data)
	}
	if !bytes.Contains(a.SVG, []byte("2010")) {
		t.Error("SVG should label 2010")
	}
}

func TestLineChart_SingleYear(t *testing.T) {
	if _, err := LineChart([]core.YearCount{{Year: 2002, Count: 1}}); err != nil {
		t.Fatalf("LineChart() error = %v", err)
	}
}

func TestPresenters_NoData(t *testing.T) {
	checks := map[string]func() error{
		"PieChart": func() error { _, err := PieChart(nil); return err },
		"BarChart": func() error { _, err := BarChart(nil); return err },
		"HistogramChart": func() error {
			_, err := HistogramChart(core.Histogram{Bins: make([]core.Bin, 20)})
			return err
		},
		"LineChart": func() error { _, err := LineChart(nil); return err },
		"StationMap": func() error {
			_, err := StationMap(nil, MapOptions{})
			return err
		},
		"StackedBarChart": func() error {
			_, err := StackedBarChart(context.Background(), core.CrossTab{}, nil)
			return err
		},
	}

	for name, check := range checks {
		if err := check(); !errors.Is(err, ErrNoData) {
			t.Errorf("%s() error = %v, want ErrNoData", name, err)
		}
	}
}

func TestStackedBarChart_UnmappedLine(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(logging.New(&buf, "warn", "text"))
	defer slog.SetDefault(prev)

	ct := core.CrossTab{
		Rows:    []string{"Elevated", "Underground"},
		Columns: []string{"Red line", "Test Line"},
		Counts:  [][]int{{2, 1}, {1, 0}},
	}
	palette := NewPalette(map[string]string{"Red line": "#ff0000"})

	a, err := StackedBarChart(context.Background(), ct, palette)
	if err != nil {
		t.Fatalf("StackedBarChart() error = %v", err)
	}

	if len(a.Legend) != 2 {
		t.Fatalf("len(Legend) = %d, want 2", len(a.Legend))
	}
	if a.Legend[0].Fallback {
		t.Error("Red line should use its palette colour")
	}
	if a.Legend[0].Color != "rgba(255,0,0,1.0)" {
		t.Errorf("Red line colour = %q, want rgba(255,0,0,1.0)", a.Legend[0].Color)
	}
	if !a.Legend[1].Fallback {
		t.Error("Test Line should be flagged as a fallback colour")
	}
	if !strings.Contains(buf.String(), "Test Line") {
		t.Errorf("expected a warning naming Test Line, got %q", buf.String())
	}
	if len(a.Data) != 2 || a.Data[0].Value != 3 {
		t.Errorf("Data = %+v, want Elevated total 3 first", a.Data)
	}
}

func TestStackedBars_PadsToTallest(t *testing.T) {
	ct := core.CrossTab{
		Rows:    []string{"Elevated", "Underground"},
		Columns: []string{"Red line", "Test Line"},
		Counts:  [][]int{{2, 1}, {1, 0}},
	}
	colors := []drawing.Color{drawing.ColorRed, drawing.ColorBlue}

	bars, tallest := stackedBars(ct, colors)

	if tallest != 3 {
		t.Errorf("tallest = %d, want 3", tallest)
	}
	if len(bars) != 2 {
		t.Fatalf("len(bars) = %d, want 2", len(bars))
	}
	// Elevated: zero padding, then both lines.
	if len(bars[0].Values) != 3 || bars[0].Values[0].Value != 0 {
		t.Errorf("Elevated values = %+v", bars[0].Values)
	}
	// Underground: padding of 2, then one Red line segment; the empty Test Line cell is skipped.
	if len(bars[1].Values) != 2 || bars[1].Values[0].Value != 2 || bars[1].Values[1].Value != 1 {
		t.Errorf("Underground values = %+v", bars[1].Values)
	}
	if !bars[1].Values[1].Style.FillColor.Equals(drawing.ColorRed) {
		t.Error("Underground Red line segment should be red")
	}
}

func TestPalette_Color(t *testing.T) {
	p := NewPalette(map[string]string{
		"Red line":   "#ff0000",
		"Teal line":  "teal",
		"Bogus line": "not-a-colour",
		"Short hex":  "#12",
	})

	tests := []struct {
		line   string
		wantOK bool
	}{
		{"Red line", true},
		{"Teal line", true},
		{"Bogus line", false},
		{"Short hex", false},
		{"Missing line", false},
	}

	for _, tt := range tests {
		if _, ok := p.Color(tt.line); ok != tt.wantOK {
			t.Errorf("Color(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
		}
	}
}

func TestPalette_FallbackDeterministic(t *testing.T) {
	p := NewPalette(nil)
	lines := []string{"A", "B"}

	first, _ := p.assignColors(lines)
	second, fallback := p.assignColors(lines)

	for i := range lines {
		if !first[i].Equals(second[i]) {
			t.Errorf("colour %d differs between runs", i)
		}
		if !fallback[i] {
			t.Errorf("line %d should be a fallback", i)
		}
	}
	if first[0].Equals(first[1]) {
		t.Error("distinct unmapped lines should get distinct colours")
	}
}

func TestStationMap(t *testing.T) {
	points := []core.StationPoint{
		{Name: "Rithala", Line: "Red line", Lat: 28.72, Lon: 77.10, DistanceFromCentreKm: 15.2},
		{Name: "Dwarka", Line: "Blue line", Lat: 28.61, Lon: 77.03},
	}
	opts := MapOptions{Center: core.Coord{Lat: 28.6139, Lon: 77.2090}, Zoom: 12, TileURL: "https://tiles/{z}/{x}/{y}.png"}

	a, err := StationMap(points, opts)
	if err != nil {
		t.Fatalf("StationMap() error = %v", err)
	}
	if a.Kind != KindMap || a.Map == nil {
		t.Fatalf("artifact = %+v, want a map", a)
	}
	if a.Map.Zoom != 12 || a.Map.Center != opts.Center {
		t.Errorf("viewport = %+v", a.Map)
	}
	if len(a.Map.Markers) != 2 || a.Map.Markers[0].Label != "Rithala" {
		t.Errorf("Markers = %+v", a.Map.Markers)
	}
}

func TestIntTicks(t *testing.T) {
	tests := []struct {
		max      int
		wantLast float64
	}{
		{0, 1},
		{3, 3},
		{12, 12},
		{23, 25},
	}

	for _, tt := range tests {
		ticks := intTicks(tt.max)
		if got := tickMax(ticks); got != tt.wantLast {
			t.Errorf("intTicks(%d) last = %g, want %g", tt.max, got, tt.wantLast)
		}
		if len(ticks) > 7 {
			t.Errorf("intTicks(%d) produced %d ticks", tt.max, len(ticks))
		}
	}
}
