package core

// Clean returns a copy of t holding only the rows where every column is
// present, in their original order. t is not modified. Cleaning a cleaned
// table returns a table with the same rows.
func Clean(t *Table) *Table {
	keep := make([]bool, t.Len())
	for i := range keep {
		keep[i] = true
	}

	for _, name := range t.df.Names() {
		for i, na := range t.df.Col(name).IsNaN() {
			if na {
				keep[i] = false
			}
		}
	}

	return NewTable(t.df.Subset(keep), t.source)
}

// MissingCounts reports how many cells are missing in each column of t,
// in header order.
func MissingCounts(t *Table) []ColumnMissing {
	names := t.df.Names()
	out := make([]ColumnMissing, len(names))
	for i, name := range names {
		missing := 0
		for _, na := range t.df.Col(name).IsNaN() {
			if na {
				missing++
			}
		}
		out[i] = ColumnMissing{Column: name, Missing: missing}
	}
	return out
}

// TotalMissing returns the number of missing cells across all columns.
func TotalMissing(counts []ColumnMissing) int {
	total := 0
	for _, c := range counts {
		total += c.Missing
	}
	return total
}
