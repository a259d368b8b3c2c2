package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	text := "PRICES: Gas ($/MCF): 6.73\nnoise\nPRICES: Gas (per mcf): 8.46\nPRICES: Oil ($/BBL): 70.1\n"
	got := Extract(text, GasPrices.Pattern)
	if len(got) != 2 || got[0] != 6.73 || got[1] != 8.46 {
		t.Errorf("Extract() = %v", got)
	}

	if got := Extract("nothing here", GasPrices.Pattern); got != nil {
		t.Errorf("Expected nil for no matches, got %v", got)
	}

	// "1.2.3" matches [\d.]+ but does not parse
	if got := Extract("NET TO WI: 1.2.3", WorkingInterest.Pattern); len(got) != 0 {
		t.Errorf("Expected unparsable match to be skipped, got %v", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name      string
		expected  []float64
		actual    []float64
		tolerance float64
		passed    bool
		checks    int
	}{
		{"exact", []float64{1, 2}, []float64{1, 2}, 0, true, 2},
		{"within tolerance", []float64{6.73}, []float64{6.74}, 0.01, true, 1},
		{"out of tolerance", []float64{6.73}, []float64{6.75}, 0.01, false, 1},
		{"count mismatch", []float64{1, 2}, []float64{1}, 1, false, 0},
		{"both empty", nil, nil, 0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Compare(tt.name, tt.expected, tt.actual, tt.tolerance)
			if res.Passed() != tt.passed {
				t.Errorf("Passed() = %v, expected %v (%s)", res.Passed(), tt.passed, res)
			}
			if len(res.Checks) != tt.checks {
				t.Errorf("Expected %d checks, got %d", tt.checks, len(res.Checks))
			}
		})
	}
}

func TestResultString(t *testing.T) {
	if s := Compare("x", []float64{1}, nil, 0).String(); !strings.Contains(s, "expected 1 values, got 0") {
		t.Errorf("Unexpected summary: %q", s)
	}
	if s := Compare("x", []float64{1}, []float64{3}, 0).String(); !strings.Contains(s, "1 of 1 values out of tolerance") {
		t.Errorf("Unexpected summary: %q", s)
	}
	if s := Compare("x", []float64{1}, []float64{1}, 0).String(); !strings.Contains(s, "all 1 values match") {
		t.Errorf("Unexpected summary: %q", s)
	}
}

func TestRunDefaultSeries(t *testing.T) {
	var b strings.Builder
	for i, v := range GasPrices.Expected {
		fmt.Fprintf(&b, "Period %d\nPRICES: Gas ($/MCF): %s\n", i+1, strconv.FormatFloat(v, 'f', -1, 64))
		fmt.Fprintf(&b, "NET TO WI: %s\n\n", strconv.FormatFloat(WorkingInterest.Expected[i], 'f', -1, 64))
	}

	results := Run(b.String(), DefaultSeries())
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed() {
			t.Errorf("%s", r)
		}
	}
}

func TestRunCustomSeries(t *testing.T) {
	s := Series{Name: "totals", Pattern: regexp.MustCompile(`TOTAL=(\d+)`), Expected: []float64{10, 20}}
	results := Run("TOTAL=10 TOTAL=21", []Series{s})
	if results[0].Passed() {
		t.Errorf("Expected failure, got %s", results[0])
	}
	if results[0].Checks[1].OK || !results[0].Checks[0].OK {
		t.Errorf("Unexpected checks: %+v", results[0].Checks)
	}
}
