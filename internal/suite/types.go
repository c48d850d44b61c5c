package suite

import "github.com/roach88/squares/internal/report"

// Error kinds a case may expect.
const (
	ErrorParse          = "parse"
	ErrorLengthMismatch = "length_mismatch"
)

// DefaultTolerance is the absolute tolerance used when a case sets none.
const DefaultTolerance = 1e-9

// Suite is a named list of cases.
type Suite struct {
	// Name identifies the suite in output and golden files.
	Name string `yaml:"name"`

	// Description explains what the suite covers.
	Description string `yaml:"description,omitempty"`

	// Cases run in declaration order.
	Cases []Case `yaml:"cases"`
}

// Case is one computation and its expected outcome.
type Case struct {
	Name string `yaml:"name"`

	// Numbers holds fragments; each may contain several literals.
	Numbers []string `yaml:"numbers"`

	// Weights holds weight fragments. Nil means the case is unweighted;
	// an empty list is an (empty) weight sequence.
	Weights *[]string `yaml:"weights,omitempty"`

	Expect Expect `yaml:"expect"`
}

// Expect names exactly one of Result or Error.
type Expect struct {
	Result    *float64 `yaml:"result,omitempty"`
	Error     string   `yaml:"error,omitempty"`
	Tolerance *float64 `yaml:"tolerance,omitempty"`
}

// tolerance returns the case tolerance, or DefaultTolerance.
func (e Expect) tolerance() float64 {
	if e.Tolerance != nil {
		return *e.Tolerance
	}
	return DefaultTolerance
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name string
	Pass bool

	// Display is the formatted result when the computation succeeded.
	Display string

	// Error is the error kind and Message its text when it failed.
	Error   string
	Message string

	// Failure explains why the outcome did not match the expectation.
	Failure string
}

// Result is the outcome of a suite run.
type Result struct {
	Name   string
	Cases  []CaseResult
	Passed int
	Failed int
}

// Total returns the number of cases that ran.
func (r *Result) Total() int {
	return len(r.Cases)
}

// CanonicalMap converts the result for report.MarshalCanonical.
func (r *Result) CanonicalMap() map[string]any {
	cases := make([]any, len(r.Cases))
	for i, c := range r.Cases {
		m := map[string]any{
			"name": c.Name,
			"pass": c.Pass,
		}
		if c.Display != "" {
			m["display"] = c.Display
		}
		if c.Error != "" {
			m["error"] = c.Error
		}
		if c.Message != "" {
			m["message"] = c.Message
		}
		if c.Failure != "" {
			m["failure"] = c.Failure
		}
		cases[i] = m
	}

	return map[string]any{
		"name":   r.Name,
		"cases":  cases,
		"passed": r.Passed,
		"failed": r.Failed,
	}
}

// MarshalJSON encodes the result canonically, so JSON output and golden
// files agree byte for byte.
func (r *Result) MarshalJSON() ([]byte, error) {
	return report.MarshalCanonical(r.CanonicalMap())
}
