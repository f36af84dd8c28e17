// Package render turns station aggregates into dashboard artifacts: SVG
// charts drawn with go-chart and the data behind the station map.
//
// Presenters only build values. Writing them to a page is the web
// package's job, so every presenter can be tested without a browser.
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/core"
)

// ErrNoData is returned by presenters given an empty aggregate.
var ErrNoData = core.ErrNoData

// Kind identifies how an artifact is displayed.
type Kind string

const (
	KindChart Kind = "chart"
	KindMap   Kind = "map"
)

// Default chart dimensions in pixels.
const (
	DefaultWidth  = 960
	DefaultHeight = 480
)

// Datum is one labelled value behind a chart.
type Datum struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// LegendEntry maps a series label to the CSS colour it is drawn in.
type LegendEntry struct {
	Label    string `json:"label"`
	Color    string `json:"color"`
	Fallback bool   `json:"fallback"` // Colour came from the fallback cycle
}

// Artifact is one rendered dashboard visual.
type Artifact struct {
	Kind        Kind          `json:"kind"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	SVG         []byte        `json:"-"`
	Data        []Datum       `json:"data,omitempty"`
	Legend      []LegendEntry `json:"legend,omitempty"`
	Map         *MapView      `json:"map,omitempty"`
}

// renderable is satisfied by every go-chart chart type.
type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// renderSVG draws c as SVG.
func renderSVG(name string, c renderable) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// svgText escapes text drawn into SVG. go-chart writes labels verbatim.
func svgText(s string) string {
	return templ.EscapeString(s)
}

// intTicks returns ticks from 0 to at least max in whole-number steps,
// at most about six of them.
func intTicks(max int) []chart.Tick {
	if max < 1 {
		max = 1
	}
	step := (max + 4) / 5
	var ticks []chart.Tick
	for v := 0; ; v += step {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: fmt.Sprint(v)})
		if v >= max {
			break
		}
	}
	return ticks
}

func tickMax(ticks []chart.Tick) float64 {
	return ticks[len(ticks)-1].Value
}
