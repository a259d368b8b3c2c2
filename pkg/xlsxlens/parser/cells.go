// Package parser reads sheet values and formatting from xlsx workbooks.
package parser

import (
	"strings"

	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/models"
	"github.com/xuri/excelize/v2"
)

// fillPatterns lists pattern fill names in excelize's Fill.Pattern order.
var fillPatterns = []string{
	"none", "solid", "mediumGray", "darkGray", "lightGray", "darkHorizontal",
	"darkVertical", "darkDown", "darkUp", "darkGrid", "darkTrellis",
	"lightHorizontal", "lightVertical", "lightDown", "lightUp", "lightGrid",
	"lightTrellis", "gray125", "gray0625",
}

// ExtractValues reads the formatted display values of a sheet together with
// the raw style of every styled cell inside the window. The window keeps the
// first maxRows rows and maxCols columns; a negative limit disables it.
func ExtractValues(f *excelize.File, sheetName string, maxRows, maxCols int) ([][]string, models.ValueSheet, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, err
	}
	rows = window(rows, maxRows, maxCols)

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	values := make(models.ValueSheet)
	styles := make(map[int]*models.RawStyle)
	for rowIdx, row := range rows {
		for colIdx := 0; colIdx < width; colIdx++ {
			ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, nil, err
			}
			var value string
			if colIdx < len(row) {
				value = row[colIdx]
			}

			idx, err := f.GetCellStyle(sheetName, ref)
			if err != nil {
				return nil, nil, err
			}
			var raw *models.RawStyle
			if idx != 0 {
				var ok bool
				if raw, ok = styles[idx]; !ok {
					st, err := f.GetStyle(idx)
					if err != nil {
						return nil, nil, err
					}
					raw = rawStyle(st)
					styles[idx] = raw
				}
			}

			if value == "" && raw == nil {
				continue
			}
			values[ref] = &models.ValueCell{Ref: ref, Value: value, Style: raw}
		}
	}

	return rows, values, nil
}

// rawStyle maps an excelize style onto the partial style of the value parse.
// Any non-nil style yields a descriptor, so cells styled only through their
// font or border still reach the style rules.
func rawStyle(st *excelize.Style) *models.RawStyle {
	if st == nil {
		return nil
	}
	raw := &models.RawStyle{
		HasFont:   st.Font != nil,
		HasBorder: len(st.Border) > 0,
	}

	switch st.Fill.Type {
	case "pattern":
		if st.Fill.Pattern >= 0 && st.Fill.Pattern < len(fillPatterns) {
			raw.PatternType = fillPatterns[st.Fill.Pattern]
		}
		if len(st.Fill.Color) > 0 && st.Fill.Color[0] != "" {
			raw.FgColor = st.Fill.Color[0]
		}
		if len(st.Fill.Color) > 1 && st.Fill.Color[1] != "" {
			raw.BgColor = st.Fill.Color[1]
		}
	case "gradient":
		fill := &models.Fill{}
		if len(st.Fill.Color) > 0 {
			fill.FgColor = st.Fill.Color[0]
		}
		if len(st.Fill.Color) > 1 {
			fill.BgColor = st.Fill.Color[1]
		}
		if fill.FgColor != "" || fill.BgColor != "" {
			raw.Fill = fill
		}
	}

	if a := st.Alignment; a != nil && (a.Horizontal != "" || a.Vertical != "" || a.WrapText) {
		raw.Alignment = &models.Alignment{
			Horizontal: a.Horizontal,
			Vertical:   a.Vertical,
			WrapText:   a.WrapText,
		}
	}

	return raw
}

// window applies prefix truncation to rows without modifying the input.
func window(rows [][]string, maxRows, maxCols int) [][]string {
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

// inWindow reports whether a 1-based row and 0-based column fall inside the window.
func inWindow(rowNum, colIdx, maxRows, maxCols int) bool {
	return (maxRows < 0 || rowNum <= maxRows) && (maxCols < 0 || colIdx < maxCols)
}

// normalizeRef upper-cases a coordinate so both parses share one key space.
func normalizeRef(ref string) string {
	return strings.ToUpper(strings.TrimSpace(ref))
}
