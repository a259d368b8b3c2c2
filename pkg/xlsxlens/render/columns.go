package render

import "github.com/xuri/excelize/v2"

// ColumnName returns the spreadsheet column letters for a 0-based index
// (0 -> A, 25 -> Z, 26 -> AA).
func ColumnName(idx int) string {
	name, err := excelize.ColumnNumberToName(idx + 1)
	if err != nil {
		// beyond XFD, fall back to plain bijective base-26
		name = ""
		for n := idx + 1; n > 0; n = (n - 1) / 26 {
			name = string(rune('A'+(n-1)%26)) + name
		}
	}
	return name
}

// Window applies prefix truncation to rows: at most maxRows rows and maxCols
// columns per row. The input is not modified.
func Window(rows [][]string, maxRows, maxCols int) [][]string {
	if maxRows >= 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		if maxCols >= 0 && len(row) > maxCols {
			row = row[:maxCols]
		}
		out[i] = row
	}
	return out
}
