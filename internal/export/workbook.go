// Package export writes a built dashboard page as an Excel workbook.
package export

import (
	"fmt"
	"io"

	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/core"
	"github.com/shaik-1036/delhi-metro-data-analysis/internal/dashboard"
)

// Sheet names, in workbook order.
const (
	SheetCleaned      = "Cleaned"
	SheetMissing      = "Missing Values"
	SheetLines        = "Line Distribution"
	SheetYears        = "Yearly Openings"
	SheetLayoutByLine = "Layout by Line"
)

// Filename is the download name of the workbook.
const Filename = "delhi-metro-cleaned.xlsx"

// ContentType is the MIME type of an xlsx workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Workbook builds the workbook for a page. The page must be complete; a
// failed build returns its error.
func Workbook(p *dashboard.Page) (*excelize.File, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	if p.Cleaned == nil || p.Summary.LayoutByLine == nil {
		return nil, fmt.Errorf("export: %w", core.ErrNoData)
	}

	f := excelize.NewFile()
	w := &sheetWriter{f: f}

	if err := f.SetSheetName("Sheet1", SheetCleaned); err != nil {
		f.Close()
		return nil, fmt.Errorf("export: %w", err)
	}
	w.bold, w.err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	w.cleaned(p.Cleaned)
	w.missing(p.Summary.Missing)
	w.lines(p.Summary.LineDistribution)
	w.years(p.Summary.YearlyOpenings)
	w.crossTab(*p.Summary.LayoutByLine)

	if w.err != nil {
		f.Close()
		return nil, fmt.Errorf("export: %w", w.err)
	}
	return f, nil
}

// Write streams the workbook for a page to out.
func Write(out io.Writer, p *dashboard.Page) error {
	f, err := Workbook(p)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(out); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

// sheetWriter keeps the first error so sheets can be written in sequence.
type sheetWriter struct {
	f    *excelize.File
	bold int
	err  error
}

func (w *sheetWriter) sheet(name string) {
	if w.err != nil || name == SheetCleaned {
		return
	}
	_, w.err = w.f.NewSheet(name)
}

func (w *sheetWriter) header(sheet string, names ...string) {
	row := make([]any, len(names))
	for i, n := range names {
		row[i] = n
	}
	w.row(sheet, 1, row)
	if w.err == nil {
		w.err = w.f.SetRowStyle(sheet, 1, 1, w.bold)
	}
}

// row writes values starting at column A of the 1-based row r.
func (w *sheetWriter) row(sheet string, r int, values []any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, r)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

func (w *sheetWriter) cleaned(t *core.Table) {
	w.sheet(SheetCleaned)
	names := t.Columns()
	w.header(SheetCleaned, names...)

	df := t.Frame()
	cols := make([]series.Series, len(names))
	for j, name := range names {
		cols[j] = df.Col(name)
	}
	for i := 0; i < t.Len(); i++ {
		values := make([]any, len(cols))
		for j, col := range cols {
			values[j] = cellValue(col.Elem(i))
		}
		w.row(SheetCleaned, i+2, values)
	}
}

// cellValue keeps float columns numeric so the sheet can be charted.
func cellValue(e series.Element) any {
	if e.IsNA() {
		return ""
	}
	if e.Type() == series.Float {
		return e.Float()
	}
	return e.String()
}

func (w *sheetWriter) missing(counts []core.ColumnMissing) {
	w.sheet(SheetMissing)
	w.header(SheetMissing, "Column", "Missing")
	for i, c := range counts {
		w.row(SheetMissing, i+2, []any{c.Column, c.Missing})
	}
}

func (w *sheetWriter) lines(counts []core.CategoryCount) {
	w.sheet(SheetLines)
	w.header(SheetLines, "Metro Line", "Stations")
	for i, c := range counts {
		w.row(SheetLines, i+2, []any{c.Category, c.Count})
	}
}

func (w *sheetWriter) years(years []core.YearCount) {
	w.sheet(SheetYears)
	w.header(SheetYears, "Opened Year", "Stations")
	for i, y := range years {
		w.row(SheetYears, i+2, []any{y.Year, y.Count})
	}
}

func (w *sheetWriter) crossTab(ct core.CrossTab) {
	w.sheet(SheetLayoutByLine)
	w.header(SheetLayoutByLine, append([]string{"Layout"}, ct.Columns...)...)
	for i, layout := range ct.Rows {
		values := make([]any, 0, len(ct.Columns)+1)
		values = append(values, layout)
		for _, n := range ct.Counts[i] {
			values = append(values, n)
		}
		w.row(SheetLayoutByLine, i+2, values)
	}
}
