// Package markup joins spreadsheet formatting onto generated HTML tables.
package markup

import (
	"regexp"
	"strings"
)

// CellIDPrefix prefixes the id attribute of every data cell.
const CellIDPrefix = "xl-"

var coordinateRe = regexp.MustCompile(`^[A-Za-z]+[1-9][0-9]*$`)

// CellID builds the id attribute value for the cell at ref.
func CellID(ref string) string {
	return CellIDPrefix + ref
}

// CoordinateFromID recovers the cell coordinate encoded in a data cell id.
// Ids without the prefix or with a remainder that is not a letter run
// followed by a row number yield false.
func CoordinateFromID(id string) (string, bool) {
	ref, ok := strings.CutPrefix(id, CellIDPrefix)
	if !ok || !coordinateRe.MatchString(ref) {
		return "", false
	}
	return ref, true
}
