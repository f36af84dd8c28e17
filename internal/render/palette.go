package render

import (
	"regexp"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// hexColor guards drawing.ColorFromHex, which slices without checking length.
var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Palette maps metro line names to colours: "#rrggbb", "#rgb", rgb(),
// rgba() or a colour name go-chart knows.
type Palette map[string]string

// NewPalette copies colors into a Palette.
func NewPalette(colors map[string]string) Palette {
	p := make(Palette, len(colors))
	for line, c := range colors {
		p[line] = c
	}
	return p
}

// Color returns the colour for line, or false when line is not in the
// palette or its colour cannot be parsed.
func (p Palette) Color(line string) (drawing.Color, bool) {
	raw, ok := p[line]
	if !ok {
		return drawing.Color{}, false
	}
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "#") && !hexColor.MatchString(raw) {
		return drawing.Color{}, false
	}
	c := drawing.ParseColor(raw)
	if c.IsTransparent() && !strings.EqualFold(raw, "transparent") {
		return drawing.Color{}, false
	}
	return c, true
}

// assignColors resolves a colour for every line. Lines the palette cannot
// colour take the next colour of go-chart's alternate cycle, so the same
// input always produces the same colours.
func (p Palette) assignColors(lines []string) ([]drawing.Color, []bool) {
	colors := make([]drawing.Color, len(lines))
	fallback := make([]bool, len(lines))
	next := 0
	for i, line := range lines {
		if c, ok := p.Color(line); ok {
			colors[i] = c
			continue
		}
		colors[i] = chart.GetAlternateColor(next)
		fallback[i] = true
		next++
	}
	return colors, fallback
}
