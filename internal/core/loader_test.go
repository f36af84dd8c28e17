package core

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/schema"
)

func TestReadTable(t *testing.T) {
	table := readCSV(t, fiveStations)

	if table.Len() != 5 {
		t.Errorf("Len() = %d, want 5", table.Len())
	}
	want := []string{schema.StationName, schema.MetroLine, schema.Latitude, schema.Longitude,
		schema.Distance, schema.OpenedYear, schema.Layout}
	if !reflect.DeepEqual(table.Columns(), want) {
		t.Errorf("Columns() = %q, want %q", table.Columns(), want)
	}
	if table.Source() != "test.csv" {
		t.Errorf("Source() = %q, want %q", table.Source(), "test.csv")
	}
}

func TestReadTable_StripsBOM(t *testing.T) {
	table := readCSV(t, "\ufeff"+fiveStations)

	if got := table.Columns()[0]; got != schema.StationName {
		t.Errorf("first column = %q, want %q", got, schema.StationName)
	}
}

func TestReadTable_RenamesAliases(t *testing.T) {
	content := "ID (Station ID),Station Name,Line,Lat,Lng,distance_km,year,layout\n" +
		"1,Dwarka,Blue line,28.61,77.03,2.1,2005,Elevated\n"
	table := readCSV(t, content)

	want := []string{"ID (Station ID)", schema.StationName, schema.MetroLine, schema.Latitude,
		schema.Longitude, schema.Distance, schema.OpenedYear, schema.Layout}
	if !reflect.DeepEqual(table.Columns(), want) {
		t.Errorf("Columns() = %q, want %q", table.Columns(), want)
	}
}

func TestReadTable_MissingMarkers(t *testing.T) {
	content := stationHeader +
		"A,Red line,28.6,77.2,0,2002,Elevated\n" +
		"B,NA,28.6,77.2,1,2002,Elevated\n" +
		"C,Red line,n/a,77.2,2,2002,  \n" +
		"D,Red line,28.6,77.2,3,null,Elevated\n"
	table := readCSV(t, content)

	got := map[string]int{}
	for _, c := range MissingCounts(table) {
		got[c.Column] = c.Missing
	}
	want := map[string]int{
		schema.MetroLine:  1,
		schema.Latitude:   1,
		schema.Layout:     1,
		schema.OpenedYear: 1,
	}
	for col, n := range want {
		if got[col] != n {
			t.Errorf("missing[%q] = %d, want %d", col, got[col], n)
		}
	}
	if got[schema.StationName] != 0 {
		t.Errorf("missing[%q] = %d, want 0", schema.StationName, got[schema.StationName])
	}
}

func TestReadTable_DashIsAValue(t *testing.T) {
	content := stationHeader +
		"A,Red line,28.6,77.2,0,2002,Elevated\n" +
		"B,-,28.6,77.2,1,2002,-\n" +
		"C,Red line,28.6,77.2,2,2002,-\n"
	table := readCSV(t, content)

	if n := TotalMissing(MissingCounts(table)); n != 0 {
		t.Errorf("TotalMissing() = %d, want 0", n)
	}
	cleaned := Clean(table)
	if cleaned.Len() != table.Len() {
		t.Errorf("Clean() kept %d of %d rows from a file without missing values", cleaned.Len(), table.Len())
	}
	if got := cleaned.Preview(3).Rows[1][6]; got != "-" {
		t.Errorf("Layout = %q, want %q", got, "-")
	}
}

func TestReadTable_InvalidNumber(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"latitude with suffix", "B,Red line,28.7N,77.2,1,2002,Elevated\n"},
		{"dash longitude", "B,Red line,28.7,-,1,2002,Elevated\n"},
		{"word distance", "B,Red line,28.7,77.2,one,2002,Elevated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := stationHeader + "A,Red line,28.6,77.2,0,2002,Elevated\n" + tt.row
			_, err := ReadTable(strings.NewReader(content), "bad.csv")
			if !errors.Is(err, ErrInvalidValue) {
				t.Fatalf("error = %v, want wrapping ErrInvalidValue", err)
			}
			if !strings.Contains(err.Error(), "row 2") || !strings.Contains(err.Error(), "is not a float") {
				t.Errorf("error = %q, want the row number and expected type", err)
			}
			if code := MapError(err).Code; code != "VAL002" {
				t.Errorf("MapError().Code = %q, want VAL002", code)
			}
		})
	}
}

func TestReadTable_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine bool
		wantErr  error
	}{
		{
			name:     "inconsistent column count",
			content:  stationHeader + "A,Red line,28.6,77.2,0,2002\n",
			wantLine: true,
		},
		{
			name:     "bare quote",
			content:  stationHeader + "A \"quoted\" name,Red line,28.6,77.2,0,2002,Elevated\n",
			wantLine: true,
		},
		{
			name:    "invalid utf-8",
			content: stationHeader + "Ch\xffowk,Red line,28.6,77.2,0,2002,Elevated\n",
			wantErr: ErrEncoding,
		},
		{
			name:    "empty file",
			content: "",
		},
		{
			name:    "header only",
			content: stationHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTable(strings.NewReader(tt.content), "bad.csv")
			if err == nil {
				t.Fatal("ReadTable() expected error")
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error = %T, want *ParseError", err)
			}
			if tt.wantLine && pe.Line == 0 {
				t.Errorf("ParseError.Line = 0, want a line number")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want wrapping %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Delhi metro.csv")
	content := strings.ReplaceAll(fiveStations, ",", ";")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	table, err := LoadFile(path, WithComma(';'))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if table.Len() != 5 {
		t.Errorf("Len() = %d, want 5", table.Len())
	}
	if table.Source() != path {
		t.Errorf("Source() = %q, want %q", table.Source(), path)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, err := LoadFile(path)

	var fe *FileAccessError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FileAccessError", err)
	}
	if fe.Path != path {
		t.Errorf("Path = %q, want %q", fe.Path, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("error should wrap os.ErrNotExist")
	}
}

func TestLoadFile_Directory(t *testing.T) {
	_, err := LoadFile(t.TempDir())

	var fe *FileAccessError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FileAccessError", err)
	}
}

func TestPreview(t *testing.T) {
	table := readCSV(t, fiveStations)

	p := table.Preview(3)
	if len(p.Rows) != 3 {
		t.Fatalf("len(Rows) = %d, want 3", len(p.Rows))
	}
	if p.Total != 5 {
		t.Errorf("Total = %d, want 5", p.Total)
	}
	if got := p.Rows[0][2]; got != "28.72" {
		t.Errorf("Rows[0][Latitude] = %q, want %q", got, "28.72")
	}
	if got := p.Rows[2][2]; got != "NaN" {
		t.Errorf("Rows[2][Latitude] = %q, want %q", got, "NaN")
	}
	if got := p.Rows[0][5]; got != "2004" {
		t.Errorf("Rows[0][Opened] = %q, want %q", got, "2004")
	}

	if got := len(table.Preview(50).Rows); got != 5 {
		t.Errorf("Preview(50) rows = %d, want 5", got)
	}
}
