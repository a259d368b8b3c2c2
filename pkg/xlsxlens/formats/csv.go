// Package formats produces the text representations of a sheet that are sent
// alongside the rendered image.
package formats

import (
	"encoding/csv"
	"strings"
)

// CSV renders rows as RFC 4180 delimited text. Rows keep their own length.
func CSV(rows [][]string) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.WriteAll(rows); err != nil {
		return "", err
	}
	return b.String(), nil
}
