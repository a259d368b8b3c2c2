package style

import "strings"

// NormalizeColor converts an 8-digit ARGB hex (as used in XLSX) to a CSS
// "#RRGGBB" value. Other lengths are returned with a leading '#' unchanged.
// Empty input yields an empty string.
func NormalizeColor(hex string) string {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if hex == "" {
		return ""
	}
	if len(hex) == 8 {
		hex = hex[2:]
	}
	return "#" + strings.ToUpper(hex)
}
