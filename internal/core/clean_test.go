package core

import (
	"reflect"
	"testing"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/schema"
)

func TestClean_DropsIncompleteRows(t *testing.T) {
	raw := readCSV(t, fiveStations)

	cleaned := Clean(raw)

	if cleaned.Len() != 4 {
		t.Fatalf("cleaned Len() = %d, want 4", cleaned.Len())
	}
	if raw.Len() != 5 {
		t.Errorf("raw Len() = %d after Clean, want 5", raw.Len())
	}

	names := cleaned.Frame().Col(schema.StationName).Records()
	want := []string{"Rithala", "Rohini West", "Barakhamba", "Shahdara"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("cleaned names = %q, want %q", names, want)
	}

	for _, c := range MissingCounts(cleaned) {
		if c.Missing != 0 {
			t.Errorf("cleaned column %q has %d missing", c.Column, c.Missing)
		}
	}
}

func TestClean_Idempotent(t *testing.T) {
	once := Clean(readCSV(t, fiveStations))
	twice := Clean(once)

	a, b := once.Preview(once.Len()).Rows, twice.Preview(twice.Len()).Rows
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Clean(Clean(t)) rows differ:\n%q\n%q", a, b)
	}
}

func TestClean_CompleteTableUnchanged(t *testing.T) {
	content := stationHeader +
		"A,Red line,28.6,77.2,0,2002,Elevated\n" +
		"B,Blue line,28.7,77.3,1,2005,Underground\n"
	raw := readCSV(t, content)

	cleaned := Clean(raw)

	if cleaned.Len() != raw.Len() {
		t.Errorf("cleaned Len() = %d, want %d", cleaned.Len(), raw.Len())
	}
	if TotalMissing(MissingCounts(raw)) != 0 {
		t.Error("complete table should report no missing cells")
	}
}

func TestClean_ExtraColumnsCount(t *testing.T) {
	content := "ID (Station ID)," + stationHeader +
		",A,Red line,28.6,77.2,0,2002,Elevated\n" +
		"2,B,Red line,28.7,77.3,1,2002,Elevated\n"

	cleaned := Clean(readCSV(t, content))

	if cleaned.Len() != 1 {
		t.Errorf("cleaned Len() = %d, want 1", cleaned.Len())
	}
}

func TestClean_AllRowsIncomplete(t *testing.T) {
	content := stationHeader + "A,Red line,,77.2,0,2002,Elevated\n"

	cleaned := Clean(readCSV(t, content))

	if cleaned.Len() != 0 {
		t.Errorf("cleaned Len() = %d, want 0", cleaned.Len())
	}
	if len(cleaned.Columns()) != 7 {
		t.Errorf("cleaned keeps %d columns, want 7", len(cleaned.Columns()))
	}
}

func TestMissingCounts(t *testing.T) {
	counts := MissingCounts(readCSV(t, fiveStations))

	if len(counts) != 7 {
		t.Fatalf("len(counts) = %d, want 7", len(counts))
	}
	if counts[2].Column != schema.Latitude || counts[2].Missing != 1 {
		t.Errorf("counts[2] = %+v, want {%s 1}", counts[2], schema.Latitude)
	}
	if TotalMissing(counts) != 1 {
		t.Errorf("TotalMissing() = %d, want 1", TotalMissing(counts))
	}
}
