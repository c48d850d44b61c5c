package suite

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/roach88/squares/internal/report"
	"github.com/roach88/squares/internal/squares"
)

// Run executes every case whose name matches filter, in order. An empty
// filter matches all cases.
func Run(s *Suite, filter string) (*Result, error) {
	result := &Result{
		Name:  s.Name,
		Cases: make([]CaseResult, 0, len(s.Cases)),
	}

	for _, c := range s.Cases {
		if filter != "" {
			matched, err := filepath.Match(filter, c.Name)
			if err != nil {
				return nil, fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				continue
			}
		}

		cr := runCase(c)
		if cr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Cases = append(result.Cases, cr)
	}
	return result, nil
}

// Compute converts the case fragments and computes the average of squares.
func (c Case) Compute() (float64, error) {
	numbers, err := squares.ConvertNumbers(c.Numbers)
	if err != nil {
		return 0, fmt.Errorf("numbers: %w", err)
	}

	var weights []float64
	if c.Weights != nil {
		weights, err = squares.ConvertNumbers(*c.Weights)
		if err != nil {
			return 0, fmt.Errorf("weights: %w", err)
		}
	}

	return squares.AverageOfSquares(numbers, weights)
}

func runCase(c Case) CaseResult {
	cr := CaseResult{Name: c.Name}

	value, err := c.Compute()
	if err != nil {
		cr.Error = errorKind(err)
		cr.Message = err.Error()
		switch {
		case c.Expect.Error == "":
			cr.Failure = fmt.Sprintf("expected result %s, got error", report.FormatFloat(*c.Expect.Result))
		case c.Expect.Error != cr.Error:
			cr.Failure = fmt.Sprintf("expected %s error, got %s error", c.Expect.Error, cr.Error)
		default:
			cr.Pass = true
		}
		return cr
	}

	cr.Display = report.FormatFloat(value)
	if c.Expect.Error != "" {
		cr.Failure = fmt.Sprintf("expected %s error, got result %s", c.Expect.Error, cr.Display)
		return cr
	}

	want := *c.Expect.Result
	if !withinTolerance(value, want, c.Expect.tolerance()) {
		cr.Failure = fmt.Sprintf("expected result %s, got %s", report.FormatFloat(want), cr.Display)
		return cr
	}
	cr.Pass = true
	return cr
}

func withinTolerance(got, want, tolerance float64) bool {
	if got == want {
		return true
	}
	return math.Abs(got-want) <= tolerance
}

// errorKind classifies a computation error as a suite error kind.
func errorKind(err error) string {
	var parseErr *squares.ParseError
	var mismatch *squares.LengthMismatchError
	switch {
	case errors.As(err, &parseErr):
		return ErrorParse
	case errors.As(err, &mismatch):
		return ErrorLengthMismatch
	default:
		return "unknown"
	}
}
