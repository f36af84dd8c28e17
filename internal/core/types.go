package core

import (
	"math"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Table is a loaded or cleaned set of station records.
// The underlying DataFrame is never modified after construction.
type Table struct {
	df     dataframe.DataFrame
	source string
}

// NewTable wraps a DataFrame. source names where the rows came from.
func NewTable(df dataframe.DataFrame, source string) *Table {
	return &Table{df: df, source: source}
}

// Frame returns the underlying DataFrame.
func (t *Table) Frame() dataframe.DataFrame { return t.df }

// Source returns the path or name the table was read from.
func (t *Table) Source() string { return t.source }

// Len returns the number of rows.
func (t *Table) Len() int { return t.df.Nrow() }

// Columns returns the column headers in file order.
func (t *Table) Columns() []string { return t.df.Names() }

// Preview returns the first n rows for display. Missing cells show as NaN.
func (t *Table) Preview(n int) Preview {
	if n > t.Len() {
		n = t.Len()
	}
	if n < 0 {
		n = 0
	}
	return Preview{
		Columns: t.Columns(),
		Rows:    t.rows(n),
		Total:   t.Len(),
	}
}

func (t *Table) rows(n int) [][]string {
	cols := make([]series.Series, 0, t.df.Ncol())
	for _, name := range t.df.Names() {
		cols = append(cols, t.df.Col(name))
	}

	out := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(cols))
		for j, col := range cols {
			row[j] = formatElement(col.Elem(i))
		}
		out[i] = row
	}
	return out
}

// formatElement renders a cell the way it appeared in the file: floats
// without trailing zeros, text verbatim and missing cells as NaN.
func formatElement(e series.Element) string {
	if e.IsNA() {
		return "NaN"
	}
	if e.Type() == series.Float {
		f := e.Float()
		if math.IsInf(f, 0) {
			return e.String()
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return e.String()
}

// Preview is the head of a table.
type Preview struct {
	Columns []string
	Rows    [][]string
	Total   int // Row count of the whole table
}

// ColumnMissing is the number of missing cells in one column.
type ColumnMissing struct {
	Column  string `json:"column"`
	Missing int    `json:"missing"`
}

// CategoryCount is the number of records in one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Bin is one equal-width histogram bucket. Lo is inclusive; Hi is exclusive
// except for the last bin of a histogram.
type Bin struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// Histogram is a fixed number of equal-width bins over a numeric column.
type Histogram struct {
	Column string `json:"column"`
	Bins   []Bin  `json:"bins"`
}

// Total returns the sum of all bin counts.
func (h Histogram) Total() int {
	total := 0
	for _, b := range h.Bins {
		total += b.Count
	}
	return total
}

// YearCount is the number of stations opened in one year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// CrossTab is a count matrix: Counts[i][j] is the number of records with
// layout Rows[i] on line Columns[j].
type CrossTab struct {
	Rows    []string `json:"rows"`
	Columns []string `json:"columns"`
	Counts  [][]int  `json:"counts"`
}

// RowTotal returns the sum of row i.
func (c CrossTab) RowTotal(i int) int {
	total := 0
	for _, n := range c.Counts[i] {
		total += n
	}
	return total
}

// Total returns the sum of every cell.
func (c CrossTab) Total() int {
	total := 0
	for i := range c.Counts {
		total += c.RowTotal(i)
	}
	return total
}

// Coord is a WGS-84 position in degrees.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// StationPoint is one map marker.
type StationPoint struct {
	Name                 string  `json:"name"`
	Line                 string  `json:"line"`
	Lat                  float64 `json:"lat"`
	Lon                  float64 `json:"lon"`
	DistanceFromCentreKm float64 `json:"distance_from_centre_km"`
}
