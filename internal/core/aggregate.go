package core

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/series"
	"github.com/umahmood/haversine"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/schema"
)

// DefaultHistogramBins is the bin count of the distance histogram.
const DefaultHistogramBins = 20

// yearLayouts are the date forms accepted in the opening year column.
var yearLayouts = []string{
	"2006-01-02", "2006/01/02", "02-01-2006", "2/1/2006", "01/02/2006",
	"Jan 2, 2006", "2 Jan 2006", "2 January 2006", "January 2006", "2006-01",
}

// column returns the named series or an error wrapping ErrColumnNotFound.
func column(t *Table, name, op string) (series.Series, error) {
	if !slices.Contains(t.df.Names(), name) {
		return series.Series{}, columnError(op, name)
	}
	col := t.df.Col(name)
	if col.Err != nil {
		return series.Series{}, fmt.Errorf("%s: %w", op, col.Err)
	}
	return col, nil
}

// countByLine counts records per metro line, in order of first appearance.
func countByLine(t *Table, op string) ([]CategoryCount, error) {
	col, err := column(t, schema.MetroLine, op)
	if err != nil {
		return nil, err
	}

	groups := t.df.GroupBy(schema.MetroLine)
	if groups.Err != nil {
		return nil, fmt.Errorf("%s: %w", op, groups.Err)
	}
	frames := groups.GetGroups()

	out := make([]CategoryCount, 0, len(frames))
	seen := make(map[string]bool, len(frames))
	for i, line := range col.Records() {
		if seen[line] || col.Elem(i).IsNA() {
			continue
		}
		seen[line] = true
		out = append(out, CategoryCount{Category: line, Count: frames[line].Nrow()})
	}
	return out, nil
}

// LineDistribution counts records per metro line, largest first.
// Lines with equal counts keep their order of first appearance.
func LineDistribution(t *Table) ([]CategoryCount, error) {
	counts, err := countByLine(t, "line distribution")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts, nil
}

// StationsPerLine counts records per metro line, one entry per line in
// order of first appearance.
func StationsPerLine(t *Table) ([]CategoryCount, error) {
	return countByLine(t, "stations per line")
}

// DistanceHistogram partitions distance from the first station into bins
// equal-width bins spanning the observed minimum and maximum. The last bin
// includes the maximum. When every value is equal the span is widened by
// 0.5 on each side; an empty table spans 0 to 1.
func DistanceHistogram(t *Table, bins int) (Histogram, error) {
	const op = "distance histogram"
	if bins <= 0 {
		return Histogram{}, fmt.Errorf("%s: %w: bin count %d", op, ErrInvalidValue, bins)
	}
	col, err := column(t, schema.Distance, op)
	if err != nil {
		return Histogram{}, err
	}

	values := make([]float64, 0, col.Len())
	for _, v := range col.Float() {
		if math.IsNaN(v) {
			continue
		}
		if math.IsInf(v, 0) {
			return Histogram{}, fmt.Errorf("%s: %w: infinite distance", op, ErrInvalidValue)
		}
		values = append(values, v)
	}

	lo, hi := 0.0, 1.0
	if len(values) > 0 {
		lo, hi = slices.Min(values), slices.Max(values)
		if lo == hi {
			lo, hi = lo-0.5, hi+0.5
		}
	}

	width := (hi - lo) / float64(bins)
	h := Histogram{Column: schema.Distance, Bins: make([]Bin, bins)}
	for i := range h.Bins {
		h.Bins[i] = Bin{Lo: lo + float64(i)*width, Hi: lo + float64(i+1)*width}
	}
	h.Bins[bins-1].Hi = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		h.Bins[idx].Count++
	}
	return h, nil
}

// YearlyOpenings counts records per opening year in ascending year order.
// Years without openings are omitted unless fillGaps is set, in which case
// every year between the first and last is present with a zero count.
func YearlyOpenings(t *Table, fillGaps bool) ([]YearCount, error) {
	const op = "yearly openings"
	col, err := column(t, schema.OpenedYear, op)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int)
	for i, raw := range col.Records() {
		if col.Elem(i).IsNA() {
			continue
		}
		year, err := ParseYear(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", op, i+1, err)
		}
		counts[year]++
	}
	if len(counts) == 0 {
		return []YearCount{}, nil
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	if fillGaps {
		first, last := years[0], years[len(years)-1]
		out := make([]YearCount, 0, last-first+1)
		for y := first; y <= last; y++ {
			out = append(out, YearCount{Year: y, Count: counts[y]})
		}
		return out, nil
	}

	out := make([]YearCount, len(years))
	for i, y := range years {
		out[i] = YearCount{Year: y, Count: counts[y]}
	}
	return out, nil
}

// ParseYear reads a calendar year from an integer ("2002"), an integral
// float ("2002.0") or a date whose year is taken ("2002-12-25").
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if y, err := strconv.Atoi(s); err == nil {
		return y, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && math.Abs(f) < 1e6 {
		return int(f), nil
	}
	for _, layout := range yearLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Year(), nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a year", ErrInvalidValue, s)
}

// LayoutByLine cross-tabulates layout against metro line. Rows and
// columns are the distinct values sorted alphabetically.
func LayoutByLine(t *Table) (CrossTab, error) {
	const op = "layout by line"
	layouts, err := column(t, schema.Layout, op)
	if err != nil {
		return CrossTab{}, err
	}
	lines, err := column(t, schema.MetroLine, op)
	if err != nil {
		return CrossTab{}, err
	}

	layoutVals, lineVals := layouts.Records(), lines.Records()
	type pair struct{ layout, line string }
	pairs := make(map[pair]int)
	rowSet := make(map[string]bool)
	colSet := make(map[string]bool)
	for i := range layoutVals {
		if layouts.Elem(i).IsNA() || lines.Elem(i).IsNA() {
			continue
		}
		pairs[pair{layoutVals[i], lineVals[i]}]++
		rowSet[layoutVals[i]] = true
		colSet[lineVals[i]] = true
	}

	ct := CrossTab{Rows: sortedKeys(rowSet), Columns: sortedKeys(colSet)}
	ct.Counts = make([][]int, len(ct.Rows))
	for i, layout := range ct.Rows {
		ct.Counts[i] = make([]int, len(ct.Columns))
		for j, line := range ct.Columns {
			ct.Counts[i][j] = pairs[pair{layout, line}]
		}
	}
	return ct, nil
}

// StationPoints returns one map point per row with a position, in table
// order, with its great-circle distance from centre. Coordinates are not
// range checked; the map draws whatever the file holds.
func StationPoints(t *Table, centre Coord) ([]StationPoint, error) {
	const op = "station points"
	names, err := column(t, schema.StationName, op)
	if err != nil {
		return nil, err
	}
	lines, err := column(t, schema.MetroLine, op)
	if err != nil {
		return nil, err
	}
	lats, err := column(t, schema.Latitude, op)
	if err != nil {
		return nil, err
	}
	lons, err := column(t, schema.Longitude, op)
	if err != nil {
		return nil, err
	}

	from := haversine.Coord{Lat: centre.Lat, Lon: centre.Lon}
	nameVals, lineVals := names.Records(), lines.Records()
	latVals, lonVals := lats.Float(), lons.Float()

	points := make([]StationPoint, 0, len(latVals))
	for i := range latVals {
		if math.IsNaN(latVals[i]) || math.IsNaN(lonVals[i]) {
			continue
		}
		_, km := haversine.Distance(from, haversine.Coord{Lat: latVals[i], Lon: lonVals[i]})
		points = append(points, StationPoint{
			Name:                 nameVals[i],
			Line:                 lineVals[i],
			Lat:                  latVals[i],
			Lon:                  lonVals[i],
			DistanceFromCentreKm: math.Round(km*100) / 100,
		})
	}
	return points, nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
