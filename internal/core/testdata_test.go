package core

import (
	"strings"
	"testing"
)

const stationHeader = "Station Names,Metro Line,Latitude,Longitude,Dist. From First Station(km),Opened(Year),Layout\n"

// fiveStations has a missing latitude on row 3.
const fiveStations = stationHeader +
	"Rithala,Red line,28.72,77.10,0,2004,Elevated\n" +
	"Rohini West,Red line,28.71,77.11,1.2,2004,Elevated\n" +
	"Rajiv Chowk,Blue line,,77.21,9.5,2005,Underground\n" +
	"Barakhamba,Blue line,28.62,77.22,10.4,2005,Underground\n" +
	"Shahdara,Red line,28.67,77.28,18.6,2002,At-Grade\n"

func readCSV(t *testing.T, content string) *Table {
	t.Helper()
	table, err := ReadTable(strings.NewReader(content), "test.csv")
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	return table
}
