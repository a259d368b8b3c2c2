package formats

import "strings"

// Records renders rows in record format: the first row supplies the field
// names and every following row becomes a block of "name: value" lines.
// Blocks are separated by an empty line. Cells beyond the header width are
// dropped, missing cells render as empty values.
func Records(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	headers := rows[0]
	var b strings.Builder
	for i, row := range rows[1:] {
		if i > 0 {
			b.WriteString("\n\n")
		}
		for j, header := range headers {
			if j > 0 {
				b.WriteByte('\n')
			}
			var value string
			if j < len(row) {
				value = row[j]
			}
			b.WriteString(header)
			b.WriteString(": ")
			b.WriteString(value)
		}
	}
	return b.String()
}
