// Package suite runs conformance suites against the squares calculator.
//
// A suite is a YAML file listing cases. Each case gives number fragments,
// optional weight fragments and the expected outcome: either a result or an
// error kind. Suite files are checked against a CUE schema before they are
// decoded, so malformed files fail with a position-bearing message instead
// of a zero-valued case.
//
// Example:
//
//	name: basics
//	cases:
//	  - name: unit-weights
//	    numbers: ["1 2", "4"]
//	    expect: {result: 21}
//	  - name: mismatch
//	    numbers: ["1 2 4"]
//	    weights: ["1 0.5"]
//	    expect: {error: length_mismatch}
package suite
