// Package schema describes the columns of the metro station source file.
package schema

import (
	"strings"
	"unicode"
)

// FieldType is the parsed type of a station column.
type FieldType int

const (
	FieldText FieldType = iota
	FieldFloat
	FieldYear
)

// String returns the lowercase type name.
func (t FieldType) String() string {
	switch t {
	case FieldFloat:
		return "float"
	case FieldYear:
		return "year"
	default:
		return "text"
	}
}

// Canonical station column headers.
const (
	StationName = "Station Names"
	MetroLine   = "Metro Line"
	Latitude    = "Latitude"
	Longitude   = "Longitude"
	Distance    = "Dist. From First Station(km)"
	OpenedYear  = "Opened(Year)"
	Layout      = "Layout"
)

// FieldSpec describes one station attribute.
type FieldSpec struct {
	Name    string    // Canonical header
	Label   string    // Display name
	Type    FieldType // Parsed type
	Aliases []string  // Alternative headers accepted on load
}

// StationFieldSpecs lists the station attributes in display order.
var StationFieldSpecs = []FieldSpec{
	{Name: StationName, Label: "Station Name", Type: FieldText, Aliases: []string{"Station Name", "station_name", "Name"}},
	{Name: MetroLine, Label: "Metro Line", Type: FieldText, Aliases: []string{"Line", "metro_line"}},
	{Name: Latitude, Label: "Latitude", Type: FieldFloat, Aliases: []string{"Lat"}},
	{Name: Longitude, Label: "Longitude", Type: FieldFloat, Aliases: []string{"Lon", "Lng", "Long"}},
	{Name: Distance, Label: "Distance From First Station (km)", Type: FieldFloat, Aliases: []string{"Distance From First Station", "distance_km"}},
	{Name: OpenedYear, Label: "Opened Year", Type: FieldYear, Aliases: []string{"Opened Year", "Opened", "year"}},
	{Name: Layout, Label: "Layout", Type: FieldText, Aliases: []string{"layout"}},
}

// MissingMarkers are cell values treated as missing, in addition to the
// empty cell. The list is the pandas read_csv default.
var MissingMarkers = []string{
	"#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// IsMissing reports whether a trimmed cell is empty or a missing marker.
func IsMissing(cell string) bool {
	if cell == "" {
		return true
	}
	for _, m := range MissingMarkers {
		if cell == m {
			return true
		}
	}
	return false
}

var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]string {
	idx := make(map[string]string)
	for _, spec := range StationFieldSpecs {
		idx[HeaderKey(spec.Name)] = spec.Name
		for _, alias := range spec.Aliases {
			idx[HeaderKey(alias)] = spec.Name
		}
	}
	return idx
}

// HeaderKey folds a header to lowercase letters and digits so that
// "Dist. From First Station(km)" and "dist_from_first_station_km" compare equal.
func HeaderKey(h string) string {
	var b strings.Builder
	for _, r := range h {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Canonical returns the canonical header for h, or false when h is not a
// station attribute.
func Canonical(h string) (string, bool) {
	name, ok := aliasIndex[HeaderKey(h)]
	return name, ok
}

// CanonicalHeader rewrites a header row to canonical names. Unknown headers
// are trimmed and kept. An alias never replaces a column that already
// carries the canonical name, so the first occurrence wins.
func CanonicalHeader(header []string) []string {
	out := make([]string, len(header))
	taken := make(map[string]bool, len(header))
	for i, h := range header {
		out[i] = CleanHeader(h)
		if name, ok := Canonical(out[i]); ok && !taken[name] {
			out[i] = name
			taken[name] = true
		}
	}
	return out
}

// CleanHeader removes whitespace, surrounding quotes and an Excel formula
// prefix (="...") from a header cell.
func CleanHeader(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	}
	return strings.TrimSpace(strings.Trim(s, `"'`))
}

// Lookup returns the spec for a canonical column name.
func Lookup(name string) (FieldSpec, bool) {
	for _, spec := range StationFieldSpecs {
		if spec.Name == name {
			return spec, true
		}
	}
	return FieldSpec{}, false
}
