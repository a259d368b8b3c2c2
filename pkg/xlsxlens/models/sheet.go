package models

// SheetData represents the processed window of a single sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows contains formatted display values, already limited to the requested window.
	Rows [][]string `json:"rows,omitempty"`
	// Values is the value parse of the window keyed by coordinate.
	Values ValueSheet `json:"values,omitempty"`
	// Rich is the format-aware parse of the window keyed by coordinate.
	Rich RichSheet `json:"rich,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
}
