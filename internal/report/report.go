package report

import (
	"math"
	"strconv"
)

// SourceArgs is the Source of a result computed from command-line fragments.
const SourceArgs = "args"

// Result is one computed average of squares and where its input came from.
type Result struct {
	Value    float64
	Count    int    // number of values squared
	Weighted bool   // an explicit weight sequence was supplied
	Source   string // numbers file path, or SourceArgs
}

// Display formats the value the way the text output prints it.
func (r Result) Display() string {
	return FormatFloat(r.Value)
}

// CanonicalMap returns the result as a map suitable for MarshalCanonical.
// Non-finite values have no JSON number form, so only "display" carries
// them.
func (r Result) CanonicalMap() map[string]any {
	m := map[string]any{
		"count":    r.Count,
		"display":  r.Display(),
		"source":   r.Source,
		"weighted": r.Weighted,
	}
	if !math.IsNaN(r.Value) && !math.IsInf(r.Value, 0) {
		m["result"] = r.Value
	}
	return m
}

// MarshalJSON encodes the result canonically.
func (r Result) MarshalJSON() ([]byte, error) {
	return MarshalCanonical(r.CanonicalMap())
}

// FormatFloat formats v as fmt's %v does: the shortest representation that
// round-trips, e.g. "21", "0.5", "1.5e+06", "+Inf".
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String returns Display, so text output prints just the value.
func (r Result) String() string {
	return r.Display()
}
