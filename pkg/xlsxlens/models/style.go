package models

// RawStyle is the partial style attached to a value cell. Every cell with a
// non-default style index carries one, even when only its font or border is
// set; the font and border themselves come from the rich parse.
type RawStyle struct {
	// PatternType is the fill pattern name (e.g. "solid").
	PatternType string `json:"pattern_type,omitempty"`
	// FgColor is the direct foreground fill color (RGB or ARGB hex).
	FgColor string `json:"fg_color,omitempty"`
	// BgColor is the direct background fill color (RGB or ARGB hex).
	BgColor string `json:"bg_color,omitempty"`
	// Fill is the nested fill object used by gradient fills.
	Fill *Fill `json:"fill,omitempty"`
	// Alignment is the cell alignment (nil when unset).
	Alignment *Alignment `json:"alignment,omitempty"`
	// HasFont reports a font attached to the style.
	HasFont bool `json:"has_font,omitempty"`
	// HasBorder reports at least one border side attached to the style.
	HasBorder bool `json:"has_border,omitempty"`
}

// Fill is a nested fill description.
type Fill struct {
	FgColor string `json:"fg_color,omitempty"`
	BgColor string `json:"bg_color,omitempty"`
}

// Alignment holds the alignment attributes of a cell.
type Alignment struct {
	// Horizontal is passed through verbatim (left, center, right, ...).
	Horizontal string `json:"horizontal,omitempty"`
	// Vertical is one of top, center, bottom or an application specific value.
	Vertical string `json:"vertical,omitempty"`
	// WrapText reports whether text wraps inside the cell.
	WrapText bool `json:"wrap_text,omitempty"`
}

// Font is the resolved font of a rich cell.
type Font struct {
	Bold      bool    `json:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty"`
	Underline bool    `json:"underline,omitempty"`
	Strike    bool    `json:"strike,omitempty"`
	Color     *Color  `json:"color,omitempty"`
	Size      float64 `json:"size,omitempty"`
	Name      string  `json:"name,omitempty"`
}

// Color is either an explicit RGB value or a reference into the workbook theme.
type Color struct {
	// RGB is the explicit color (RGB or ARGB hex), empty for theme colors.
	RGB string `json:"rgb,omitempty"`
	// Theme is the theme palette index (nil for explicit colors).
	Theme *int `json:"theme,omitempty"`
}

// Border holds the four sides of a cell border.
type Border struct {
	Top    *BorderSide `json:"top,omitempty"`
	Right  *BorderSide `json:"right,omitempty"`
	Bottom *BorderSide `json:"bottom,omitempty"`
	Left   *BorderSide `json:"left,omitempty"`
}

// BorderSide is a single border side.
type BorderSide struct {
	// Style is the border style name (thin, medium, thick, dashed, ...).
	Style string `json:"style,omitempty"`
	// Color is the explicit side color (RGB or ARGB hex), empty for default.
	Color string `json:"color,omitempty"`
}
