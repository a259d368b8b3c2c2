package models

// WorkbookData represents the result of extracting the first sheet of a workbook.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheet is the first sheet of the workbook.
	Sheet SheetData `json:"sheet"`
}
