package parser

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/style"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook creates a workbook in a temporary directory, lets fill
// populate Sheet1 and returns the saved path.
func buildWorkbook(t *testing.T, fill func(f *excelize.File, sheet string)) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	fill(f, "Sheet1")

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func openWorkbook(t *testing.T, path string) *excelize.File {
	t.Helper()
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestExtractValues(t *testing.T) {
	path := buildWorkbook(t, func(f *excelize.File, sheet string) {
		f.SetCellValue(sheet, "A1", "Header1")
		f.SetCellValue(sheet, "B1", "Header2")
		f.SetCellValue(sheet, "A2", 100)
		f.SetCellValue(sheet, "B2", 200.5)
		f.SetCellValue(sheet, "A3", "Text")
	})
	f := openWorkbook(t, path)

	rows, values, err := ExtractValues(f, "Sheet1", -1, -1)
	if err != nil {
		t.Fatalf("ExtractValues failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "Header1" || rows[1][1] != "200.5" {
		t.Errorf("Unexpected rows: %v", rows)
	}

	cell, ok := values.Lookup("b2")
	if !ok {
		t.Fatalf("Expected value cell B2")
	}
	if cell.Value != "200.5" || cell.Ref != "B2" {
		t.Errorf("Unexpected cell: %+v", cell)
	}
	if cell.Style != nil {
		t.Errorf("Expected no style for B2, got %+v", cell.Style)
	}
	if _, ok := values.Lookup("B3"); ok {
		t.Errorf("Expected no value cell for empty B3")
	}
}

func TestExtractValuesWindow(t *testing.T) {
	path := buildWorkbook(t, func(f *excelize.File, sheet string) {
		for r := 1; r <= 5; r++ {
			for c := 1; c <= 5; c++ {
				ref, _ := excelize.CoordinatesToCellName(c, r)
				f.SetCellValue(sheet, ref, ref)
			}
		}
	})
	f := openWorkbook(t, path)

	rows, values, err := ExtractValues(f, "Sheet1", 2, 3)
	if err != nil {
		t.Fatalf("ExtractValues failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if len(row) != 3 {
			t.Errorf("Expected 3 columns, got %d", len(row))
		}
	}
	if len(values) != 6 {
		t.Errorf("Expected 6 value cells, got %d", len(values))
	}
	if _, ok := values["D1"]; ok {
		t.Errorf("D1 is outside the window")
	}
}

func TestExtractValuesStyles(t *testing.T) {
	path := buildWorkbook(t, func(f *excelize.File, sheet string) {
		f.SetCellValue(sheet, "A1", "Filled")
		f.SetCellValue(sheet, "B1", "Aligned")
		f.SetCellValue(sheet, "B2", "x")
		fill, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}},
		})
		if err != nil {
			t.Fatalf("NewStyle failed: %v", err)
		}
		align, err := f.NewStyle(&excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		})
		if err != nil {
			t.Fatalf("NewStyle failed: %v", err)
		}
		f.SetCellStyle(sheet, "A1", "A1", fill)
		f.SetCellStyle(sheet, "B1", "B1", align)
		// styled but empty
		f.SetCellStyle(sheet, "A2", "A2", fill)
	})
	f := openWorkbook(t, path)

	_, values, err := ExtractValues(f, "Sheet1", -1, -1)
	if err != nil {
		t.Fatalf("ExtractValues failed: %v", err)
	}

	a1, ok := values.Lookup("A1")
	if !ok || a1.Style == nil {
		t.Fatalf("Expected style on A1, got %+v", a1)
	}
	if got := style.NormalizeColor(a1.Style.FgColor); got != "#FFFF00" {
		t.Errorf("Expected fg color FFFF00, got %q", a1.Style.FgColor)
	}
	if a1.Style.PatternType != "solid" {
		t.Errorf("Expected solid pattern, got %q", a1.Style.PatternType)
	}

	b1, ok := values.Lookup("B1")
	if !ok || b1.Style == nil || b1.Style.Alignment == nil {
		t.Fatalf("Expected alignment on B1, got %+v", b1)
	}
	if got := *b1.Style.Alignment; got.Horizontal != "center" || got.Vertical != "center" || !got.WrapText {
		t.Errorf("Unexpected alignment: %+v", got)
	}

	a2, ok := values.Lookup("A2")
	if !ok || a2.Style == nil || a2.Value != "" {
		t.Errorf("Expected styled empty cell A2, got %+v", a2)
	}
}

func TestExtractValuesFontAndBorderOnly(t *testing.T) {
	path := buildWorkbook(t, func(f *excelize.File, sheet string) {
		f.SetCellValue(sheet, "A1", "Bold")
		f.SetCellValue(sheet, "B1", "Boxed")
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			t.Fatalf("NewStyle failed: %v", err)
		}
		boxed, err := f.NewStyle(&excelize.Style{
			Border: []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
		})
		if err != nil {
			t.Fatalf("NewStyle failed: %v", err)
		}
		f.SetCellStyle(sheet, "A1", "A1", bold)
		f.SetCellStyle(sheet, "B1", "B1", boxed)
	})
	f := openWorkbook(t, path)

	_, values, err := ExtractValues(f, "Sheet1", -1, -1)
	if err != nil {
		t.Fatalf("ExtractValues failed: %v", err)
	}

	a1, ok := values.Lookup("A1")
	if !ok || a1.Style == nil || !a1.Style.HasFont {
		t.Errorf("Expected font-only style on A1, got %+v", a1)
	}
	b1, ok := values.Lookup("B1")
	if !ok || b1.Style == nil || !b1.Style.HasBorder {
		t.Errorf("Expected border-only style on B1, got %+v", b1)
	}
}

func TestExtractValuesMissingSheet(t *testing.T) {
	path := buildWorkbook(t, func(f *excelize.File, sheet string) {
		f.SetCellValue(sheet, "A1", "x")
	})
	f := openWorkbook(t, path)

	if _, _, err := ExtractValues(f, "Nope", -1, -1); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestRawStyle(t *testing.T) {
	tests := []struct {
		name       string
		style      *excelize.Style
		wantNil    bool
		wantFont   bool
		wantBorder bool
	}{
		{"nil", nil, true, false, false},
		{"default attributes", &excelize.Style{}, false, false, false},
		{"pattern without color", &excelize.Style{Fill: excelize.Fill{Type: "pattern", Pattern: 1}}, false, false, false},
		{"font only", &excelize.Style{Font: &excelize.Font{Bold: true}}, false, true, false},
		{"border only", &excelize.Style{Border: []excelize.Border{{Type: "top", Style: 1}}}, false, false, true},
		{"pattern with color", &excelize.Style{Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FF0000"}}}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rawStyle(tt.style)
			if (got == nil) != tt.wantNil {
				t.Fatalf("rawStyle() = %+v, wantNil %v", got, tt.wantNil)
			}
			if got == nil {
				return
			}
			if got.HasFont != tt.wantFont || got.HasBorder != tt.wantBorder {
				t.Errorf("rawStyle() font=%v border=%v, expected font=%v border=%v",
					got.HasFont, got.HasBorder, tt.wantFont, tt.wantBorder)
			}
		})
	}

	if got := rawStyle(&excelize.Style{Alignment: &excelize.Alignment{}}); got == nil || got.Alignment != nil {
		t.Errorf("Expected no alignment for empty alignment, got %+v", got)
	}

	gradient := rawStyle(&excelize.Style{Fill: excelize.Fill{Type: "gradient", Color: []string{"FFFFFF", "E0EBF5"}}})
	if gradient == nil || gradient.Fill == nil {
		t.Fatalf("Expected nested fill for gradient")
	}
	if gradient.Fill.FgColor != "FFFFFF" || gradient.Fill.BgColor != "E0EBF5" || gradient.FgColor != "" {
		t.Errorf("Unexpected gradient mapping: %+v", gradient)
	}
}

func TestWindow(t *testing.T) {
	rows := [][]string{{"a", "b", "c"}, {"d"}, {"e", "f"}}

	if got := window(rows, -1, -1); len(got) != 3 || len(got[0]) != 3 {
		t.Errorf("Unbounded window changed rows: %v", got)
	}
	got := window(rows, 2, 2)
	if len(got) != 2 || len(got[0]) != 2 || len(got[1]) != 1 {
		t.Errorf("window(2,2) = %v", got)
	}
	if len(rows[0]) != 3 {
		t.Errorf("window modified its input")
	}
}
