// Package validate checks numeric series extracted from model output against
// known values.
package validate

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Series is a named list of expected values and the pattern that extracts
// them from analysis text. The pattern's first group captures the number.
type Series struct {
	Name      string
	Pattern   *regexp.Regexp
	Expected  []float64
	Tolerance float64
}

// GasPrices and WorkingInterest are the reference series of the sample lease
// operating statement.
var (
	GasPrices = Series{
		Name:      "gas prices",
		Pattern:   regexp.MustCompile(`PRICES:\s*Gas\s*\([^)]+\):\s*([\d.]+)`),
		Expected:  []float64{6.73, 8.46, 9.17, 15.8, 11.26, 2.98, 3.6, 3.68, 3.56, 1.59, 1.98, 2.47, 3.79},
		Tolerance: 0.01,
	}
	WorkingInterest = Series{
		Name:    "working interest",
		Pattern: regexp.MustCompile(`NET TO WI:\s*([\d.]+)`),
		Expected: []float64{
			1492932, 1855968, 1843238, 2882928, 1730478, 453757, 597380,
			647432, 809220, 393202, 157421, 377842, 696481,
		},
		Tolerance: 1,
	}
)

// DefaultSeries returns the series checked by default.
func DefaultSeries() []Series {
	return []Series{GasPrices, WorkingInterest}
}

// Extract collects the first group of every match of pattern in text parsed
// as a float. Matches that do not parse are skipped.
func Extract(text string, pattern *regexp.Regexp) []float64 {
	var out []float64
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		if len(m) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Check is the outcome for a single position of a series.
type Check struct {
	Index    int
	Expected float64
	Actual   float64
	OK       bool
}

// Result is the outcome of comparing one series.
type Result struct {
	Name          string
	ExpectedCount int
	ActualCount   int
	Checks        []Check
}

// Passed reports whether the counts agree and every value is within tolerance.
func (r Result) Passed() bool {
	if r.ExpectedCount != r.ActualCount {
		return false
	}
	for _, c := range r.Checks {
		if !c.OK {
			return false
		}
	}
	return true
}

// String renders a one-line summary.
func (r Result) String() string {
	if r.ExpectedCount != r.ActualCount {
		return fmt.Sprintf("%s: expected %d values, got %d", r.Name, r.ExpectedCount, r.ActualCount)
	}
	failed := 0
	for _, c := range r.Checks {
		if !c.OK {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Sprintf("%s: %d of %d values out of tolerance", r.Name, failed, len(r.Checks))
	}
	return fmt.Sprintf("%s: all %d values match", r.Name, len(r.Checks))
}

// Compare checks actual against expected position by position. When the
// lengths differ no per-position checks are made.
func Compare(name string, expected, actual []float64, tolerance float64) Result {
	res := Result{Name: name, ExpectedCount: len(expected), ActualCount: len(actual)}
	if len(expected) != len(actual) {
		return res
	}
	res.Checks = make([]Check, len(expected))
	for i := range expected {
		res.Checks[i] = Check{
			Index:    i + 1,
			Expected: expected[i],
			Actual:   actual[i],
			OK:       math.Abs(actual[i]-expected[i]) <= tolerance+1e-9,
		}
	}
	return res
}

// Run extracts and compares every series against text.
func Run(text string, series []Series) []Result {
	results := make([]Result, 0, len(series))
	for _, s := range series {
		results = append(results, Compare(s.Name, s.Expected, Extract(text, s.Pattern), s.Tolerance))
	}
	return results
}
