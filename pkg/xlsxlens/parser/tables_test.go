package parser

import (
	"reflect"
	"testing"
)

func TestDetectTables(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected []string
	}{
		{"empty", nil, nil},
		{"all blank", [][]string{{"", ""}, {""}}, nil},
		{"too few cells", [][]string{{"a", "b"}}, nil},
		{
			"dense block",
			[][]string{{"Name", "Age"}, {"Ann", "30"}, {"Bob", "41"}},
			[]string{"A1:B3"},
		},
		{
			"offset block",
			[][]string{{}, {"", "x", "y"}, {"", "z", ""}},
			[]string{"B2:C3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectTables(tt.rows, DefaultTableParams())
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("DetectTables() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestDetectTablesThresholds(t *testing.T) {
	// a full first row and one far corner: 11 of 100 cells, 2 of 10 rows
	rows := make([][]string, 10)
	for i := range rows {
		rows[i] = make([]string, 10)
	}
	for c := range rows[0] {
		rows[0][c] = "h"
	}
	rows[9][9] = "x"

	params := DefaultTableParams()
	params.DensityMin = 0.5
	if got := DetectTables(rows, params); got != nil {
		t.Errorf("Expected no table under density threshold, got %v", got)
	}

	params = DefaultTableParams()
	params.CoverageMin = 0.5
	if got := DetectTables(rows, params); got != nil {
		t.Errorf("Expected no table under coverage threshold, got %v", got)
	}

	if got := DetectTables(rows, DefaultTableParams()); !reflect.DeepEqual(got, []string{"A1:J10"}) {
		t.Errorf("Expected A1:J10 with defaults, got %v", got)
	}
}
