package suite

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/squares/internal/report"
)

// assertGolden compares a suite result, as canonical JSON, against
// testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/suite -update
func assertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	data, err := report.MarshalCanonical(result.CanonicalMap())
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}

// runWithGolden loads the suite at path, runs every case and compares the
// result against the golden file named after the suite.
func runWithGolden(t *testing.T, path string) (*Result, error) {
	t.Helper()

	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	result, err := Run(s, "")
	if err != nil {
		return nil, err
	}
	return result, assertGolden(t, s.Name, result)
}
