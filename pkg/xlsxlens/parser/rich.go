package parser

import (
	"fmt"

	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/models"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// ExtractRich performs the format-aware parse of one sheet: resolved fonts,
// borders and the computed numeric value of every cell inside the window.
// An empty sheetName selects the first sheet.
func ExtractRich(path, sheetName string, maxRows, maxCols int) (models.RichSheet, error) {
	wb, err := spreadsheet.Open(path)
	if err != nil {
		return nil, err
	}

	sheet, err := selectSheet(wb, sheetName)
	if err != nil {
		return nil, err
	}

	rich := make(models.RichSheet)
	for _, row := range sheet.Rows() {
		rowNum := int(row.RowNumber())
		if maxRows >= 0 && rowNum > maxRows {
			break
		}
		for _, cell := range row.Cells() {
			col, err := cell.Column()
			if err != nil {
				continue
			}
			if !inWindow(rowNum, int(reference.ColumnToIndex(col)), maxRows, maxCols) {
				continue
			}

			rc := &models.RichCell{Ref: normalizeRef(cell.Reference())}
			if cell.IsNumber() {
				if v, err := cell.GetValueAsNumber(); err == nil {
					rc.Result = &v
				}
			}
			if x := cell.X(); x.SAttr != nil {
				rc.Font = fontOf(getFontProps(wb.StyleSheet, *x.SAttr))
				rc.Border = borderOf(getBorderProps(wb.StyleSheet, *x.SAttr))
			}
			if rc.Result == nil && !rc.HasStyle() {
				continue
			}
			rich[rc.Ref] = rc
		}
	}
	return rich, nil
}

func selectSheet(wb *spreadsheet.Workbook, name string) (spreadsheet.Sheet, error) {
	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return spreadsheet.Sheet{}, fmt.Errorf("workbook has no sheets")
	}
	if name == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s.Name() == name {
			return s, nil
		}
	}
	return spreadsheet.Sheet{}, fmt.Errorf("sheet %q not found", name)
}

// cellXf returns the cell format record for a style index, nil when out of range.
func cellXf(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Xf {
	x := ss.X()
	if x == nil || x.CellXfs == nil || int(styleID) >= len(x.CellXfs.Xf) {
		return nil
	}
	return x.CellXfs.Xf[styleID]
}

func getFontProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Font {
	xf := cellXf(ss, styleID)
	if xf == nil || xf.FontIdAttr == nil || ss.X().Fonts == nil {
		return nil
	}
	idx := int(*xf.FontIdAttr)
	if idx >= len(ss.X().Fonts.Font) {
		return nil
	}
	return ss.X().Fonts.Font[idx]
}

func getBorderProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Border {
	xf := cellXf(ss, styleID)
	if xf == nil || xf.BorderIdAttr == nil || ss.X().Borders == nil {
		return nil
	}
	idx := int(*xf.BorderIdAttr)
	if idx >= len(ss.X().Borders.Border) {
		return nil
	}
	return ss.X().Borders.Border[idx]
}

func fontOf(f *sml.CT_Font) *models.Font {
	if f == nil {
		return nil
	}
	font := &models.Font{
		Bold:   flagSet(f.B),
		Italic: flagSet(f.I),
		Strike: flagSet(f.Strike),
	}
	for _, u := range f.U {
		if u != nil && u.ValAttr != sml.ST_UnderlineValuesNone {
			font.Underline = true
		}
	}
	if len(f.Color) > 0 {
		font.Color = colorOf(f.Color[0])
	}
	if len(f.Sz) > 0 && f.Sz[0] != nil {
		font.Size = f.Sz[0].ValAttr
	}
	if len(f.Name) > 0 && f.Name[0] != nil {
		font.Name = f.Name[0].ValAttr
	}
	return font
}

// flagSet reports whether a boolean font property is on. A present element
// without a val attribute means true.
func flagSet(props []*sml.CT_BooleanProperty) bool {
	for _, p := range props {
		if p != nil && (p.ValAttr == nil || *p.ValAttr) {
			return true
		}
	}
	return false
}

func colorOf(c *sml.CT_Color) *models.Color {
	if c == nil {
		return nil
	}
	color := &models.Color{}
	if c.RgbAttr != nil {
		color.RGB = *c.RgbAttr
	}
	if c.ThemeAttr != nil {
		theme := int(*c.ThemeAttr)
		color.Theme = &theme
	}
	if color.RGB == "" && color.Theme == nil {
		return nil
	}
	return color
}

func borderOf(b *sml.CT_Border) *models.Border {
	if b == nil {
		return nil
	}
	border := &models.Border{
		Top:    borderSideOf(b.Top),
		Right:  borderSideOf(b.Right),
		Bottom: borderSideOf(b.Bottom),
		Left:   borderSideOf(b.Left),
	}
	if border.Top == nil && border.Right == nil && border.Bottom == nil && border.Left == nil {
		return nil
	}
	return border
}

func borderSideOf(p *sml.CT_BorderPr) *models.BorderSide {
	if p == nil {
		return nil
	}
	name := p.StyleAttr.String()
	if name == "" || name == "none" {
		return nil
	}
	side := &models.BorderSide{Style: name}
	if p.Color != nil && p.Color.RgbAttr != nil {
		side.Color = *p.Color.RgbAttr
	}
	return side
}
