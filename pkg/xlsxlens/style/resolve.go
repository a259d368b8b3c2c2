package style

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/models"
)

// AutomaticThemeIndex is the theme slot spreadsheet tools use for "automatic"
// text color. Negative numbers in such cells are shown in red.
const AutomaticThemeIndex = 1

// NegativeColor is the override applied to negative numbers in automatic color.
const NegativeColor = "#FF0000"

// DefaultBorderColor is used for border sides without an explicit color.
const DefaultBorderColor = "#000000"

// rule contributes zero or more declarations for one concern.
type rule func(d *Declaration, raw *models.RawStyle, rich *models.RichCell)

// rules are evaluated in output order: fill, font, borders, alignment.
var rules = []rule{
	fillRule,
	fontRule,
	borderRule,
	alignmentRule,
}

// Resolve builds the inline CSS declaration for a cell from its raw style
// (value parse) and its rich counterpart (format-aware parse). A nil raw
// style yields an empty declaration; a nil rich cell only disables the rule
// groups that depend on it.
func Resolve(raw *models.RawStyle, rich *models.RichCell) Declaration {
	if raw == nil {
		return nil
	}
	var d Declaration
	for _, r := range rules {
		r(&d, raw, rich)
	}
	return d
}

func fillRule(d *Declaration, raw *models.RawStyle, _ *models.RichCell) {
	candidates := []string{raw.FgColor, raw.BgColor}
	if raw.Fill != nil {
		candidates = append(candidates, raw.Fill.BgColor, raw.Fill.FgColor)
	}
	for _, c := range candidates {
		if c = NormalizeColor(c); c != "" {
			d.add("background-color", c)
			return
		}
	}
}

func fontRule(d *Declaration, _ *models.RawStyle, rich *models.RichCell) {
	if rich == nil || rich.Font == nil {
		return
	}
	font := rich.Font
	if font.Bold {
		d.add("font-weight", "bold")
	}
	if font.Italic {
		d.add("font-style", "italic")
	}
	switch {
	case font.Underline && font.Strike:
		d.add("text-decoration", "underline line-through")
	case font.Underline:
		d.add("text-decoration", "underline")
	case font.Strike:
		d.add("text-decoration", "line-through")
	}
	if c := font.Color; c != nil {
		if rgb := NormalizeColor(c.RGB); rgb != "" {
			d.add("color", rgb)
		} else if c.Theme != nil && *c.Theme == AutomaticThemeIndex && rich.Result != nil && *rich.Result < 0 {
			d.add("color", NegativeColor)
		}
	}
	if font.Size > 0 {
		d.add("font-size", strconv.FormatFloat(font.Size, 'f', -1, 64)+"pt")
	}
	if font.Name != "" {
		d.add("font-family", fmt.Sprintf("'%s'", font.Name))
	}
}

func borderRule(d *Declaration, _ *models.RawStyle, rich *models.RichCell) {
	if rich == nil || rich.Border == nil {
		return
	}
	sides := []struct {
		name string
		side *models.BorderSide
	}{
		{"top", rich.Border.Top},
		{"right", rich.Border.Right},
		{"bottom", rich.Border.Bottom},
		{"left", rich.Border.Left},
	}
	for _, s := range sides {
		if s.side == nil || s.side.Style == "" || s.side.Style == "none" {
			continue
		}
		color := NormalizeColor(s.side.Color)
		if color == "" {
			color = DefaultBorderColor
		}
		d.add("border-"+s.name, BorderWidth(s.side.Style)+" solid "+color)
	}
}

// BorderWidth maps a spreadsheet border style name to a CSS width.
func BorderWidth(style string) string {
	switch style {
	case "medium":
		return "2px"
	case "thick":
		return "3px"
	default:
		return "1px"
	}
}

// verticalAlign maps spreadsheet vertical alignment to CSS; unknown values
// pass through.
var verticalAlign = map[string]string{
	"top":    "top",
	"center": "middle",
	"bottom": "bottom",
}

func alignmentRule(d *Declaration, raw *models.RawStyle, _ *models.RichCell) {
	a := raw.Alignment
	if a == nil {
		return
	}
	if a.Horizontal != "" {
		d.add("text-align", a.Horizontal)
	}
	if a.Vertical != "" {
		v, ok := verticalAlign[a.Vertical]
		if !ok {
			v = a.Vertical
		}
		d.add("vertical-align", v)
	}
	if a.WrapText {
		d.add("white-space", "normal")
	}
}
