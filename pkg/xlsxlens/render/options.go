// Package render produces self-contained HTML documents from a window of sheet rows.
package render

import (
	"errors"
	"fmt"
	"io"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrInvalidOption indicates a renderer option outside its allowed range.
var ErrInvalidOption = errors.New("invalid render option")

// Options configures the rendered document. Every option only affects its
// named visual property.
type Options struct {
	// CellPadding is the cell padding in pixels.
	CellPadding int `yaml:"cell_padding" validate:"gte=0"`
	// FontSize is the base font size in pixels.
	FontSize int `yaml:"font_size" validate:"gt=0"`
	// HeaderColor is the background color of header cells.
	HeaderColor string `yaml:"header_color" validate:"required"`
	// BorderColor is the color of cell borders.
	BorderColor string `yaml:"border_color" validate:"required"`
	// TextColor is the default text color.
	TextColor string `yaml:"text_color" validate:"required"`
	// MaxRows caps the number of rendered rows.
	MaxRows int `yaml:"max_rows" validate:"gt=0"`
	// MaxCols caps the number of rendered columns.
	MaxCols int `yaml:"max_cols" validate:"gt=0"`
	// Title is the document title.
	Title string `yaml:"title,omitempty"`
}

// DefaultOptions returns default render options.
func DefaultOptions() Options {
	return Options{
		CellPadding: 8,
		FontSize:    12,
		HeaderColor: "#f0f0f0",
		BorderColor: "#cccccc",
		TextColor:   "#333333",
		MaxRows:     100,
		MaxCols:     20,
		Title:       "Excel Data",
	}
}

// Validate checks option ranges and that colors are single CSS color tokens.
func (o Options) Validate() error {
	if o.CellPadding < 0 {
		return fmt.Errorf("%w: cell padding %d", ErrInvalidOption, o.CellPadding)
	}
	if o.FontSize <= 0 {
		return fmt.Errorf("%w: font size %d", ErrInvalidOption, o.FontSize)
	}
	if o.MaxRows <= 0 || o.MaxCols <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidOption, o.MaxRows, o.MaxCols)
	}
	for name, v := range map[string]string{
		"header color": o.HeaderColor,
		"border color": o.BorderColor,
		"text color":   o.TextColor,
	} {
		if !IsColor(v) {
			return fmt.Errorf("%w: %s %q", ErrInvalidOption, name, v)
		}
	}
	return nil
}

// IsColor reports whether v is a single CSS hash color (#rgb, #rgba, #rrggbb,
// #rrggbbaa) or a color keyword.
func IsColor(v string) bool {
	l := css.NewLexer(parse.NewInputString(v))
	tt, data := l.Next()
	switch tt {
	case css.HashToken:
		if !isHex(data[1:]) {
			return false
		}
		switch len(data) - 1 {
		case 3, 4, 6, 8:
		default:
			return false
		}
	case css.IdentToken:
	default:
		return false
	}
	tt, _ = l.Next()
	return tt == css.ErrorToken && l.Err() == io.EOF
}

func isHex(b []byte) bool {
	for _, c := range b {
		switch {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
