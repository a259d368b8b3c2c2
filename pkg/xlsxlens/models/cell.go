// Package models defines data structures shared by the xlsxlens parsers and renderers.
package models

import "strings"

// ValueCell is a cell as seen by the value parse: its display value plus the
// partial style attached to it.
type ValueCell struct {
	// Ref is the A1-style coordinate of the cell.
	Ref string `json:"ref"`
	// Value is the formatted display value.
	Value string `json:"value"`
	// Style is the raw style descriptor (nil when the cell has no style).
	Style *RawStyle `json:"style,omitempty"`
}

// RichCell is a cell as seen by the format-aware parse.
type RichCell struct {
	// Ref is the A1-style coordinate of the cell.
	Ref string `json:"ref"`
	// Result is the computed numeric value, including cached formula results.
	// Nil when the cell is not numeric.
	Result *float64 `json:"result,omitempty"`
	// Font is the resolved font (nil when unknown).
	Font *Font `json:"font,omitempty"`
	// Border is the resolved border set (nil when unknown).
	Border *Border `json:"border,omitempty"`
}

// HasStyle reports whether the rich cell carries any style object.
func (c *RichCell) HasStyle() bool {
	return c != nil && (c.Font != nil || c.Border != nil)
}

// ValueSheet maps upper-case coordinates to value cells.
type ValueSheet map[string]*ValueCell

// Lookup returns the value cell at ref regardless of letter case.
func (s ValueSheet) Lookup(ref string) (*ValueCell, bool) {
	c, ok := s[strings.ToUpper(ref)]
	return c, ok && c != nil
}

// RichSheet maps upper-case coordinates to rich cells.
type RichSheet map[string]*RichCell

// Lookup returns the rich cell at ref regardless of letter case.
func (s RichSheet) Lookup(ref string) (*RichCell, bool) {
	c, ok := s[strings.ToUpper(ref)]
	return c, ok && c != nil
}
