package render

import (
	"fmt"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/core"
)

// MapView is everything the browser needs to draw the station map.
type MapView struct {
	Center  core.Coord `json:"center"`
	Zoom    int        `json:"zoom"`
	TileURL string     `json:"tile_url"`
	Markers []Marker   `json:"markers"`
}

// Marker is one station pin. The popup shows Label.
type Marker struct {
	Lat                  float64 `json:"lat"`
	Lon                  float64 `json:"lon"`
	Label                string  `json:"label"`
	Line                 string  `json:"line"`
	DistanceFromCentreKm float64 `json:"distance_from_centre_km"`
}

// MapOptions positions the map viewport.
type MapOptions struct {
	Center  core.Coord
	Zoom    int
	TileURL string
}

// StationMap places one marker per station point.
func StationMap(points []core.StationPoint, opts MapOptions) (Artifact, error) {
	if len(points) == 0 {
		return Artifact{}, fmt.Errorf("station map: %w", ErrNoData)
	}

	markers := make([]Marker, len(points))
	for i, p := range points {
		markers[i] = Marker{
			Lat:                  p.Lat,
			Lon:                  p.Lon,
			Label:                p.Name,
			Line:                 p.Line,
			DistanceFromCentreKm: p.DistanceFromCentreKm,
		}
	}

	return Artifact{
		Kind:  KindMap,
		Title: "Metro Station Locations",
		Description: fmt.Sprintf("%d stations centred on %.4f°N, %.4f°E. Click a marker for the station name.",
			len(markers), opts.Center.Lat, opts.Center.Lon),
		Map: &MapView{
			Center:  opts.Center,
			Zoom:    opts.Zoom,
			TileURL: opts.TileURL,
			Markers: markers,
		},
	}, nil
}
