// Package templates holds the templ components of the dashboard page.
// Edit dashboard.templ and run `templ generate`; dashboard_templ.go is
// generated from it.
package templates

import (
	"github.com/a-h/templ"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/dashboard"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/render"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/schema"
)

// Leaflet assets loaded by pages with a station map.
const (
	LeafletCSS = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
	LeafletJS  = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
)

// MapDataID is the id of the JSON script holding the map view.
const MapDataID = "station-map-data"

func hasMap(p *dashboard.Page) bool {
	for _, s := range p.Sections {
		if s.Artifact != nil && s.Artifact.Kind == render.KindMap {
			return true
		}
	}
	return false
}

// columnLabel returns the display name of a station column. Columns outside
// the station schema keep their header.
func columnLabel(name string) string {
	if spec, ok := schema.Lookup(name); ok {
		return spec.Label
	}
	return name
}

// swatchStyle colours a legend swatch. Colours come from the palette, which
// only holds validated hex values and go-chart colours.
func swatchStyle(color string) templ.SafeCSS {
	return templ.SafeCSS("background:" + color)
}
