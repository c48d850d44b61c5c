// Package squares converts textual numeric input into float64 sequences and
// computes the weighted average of squares over them.
//
// Both operations are pure: they hold no state and have no side effects.
//
// NAMING:
//
// AverageOfSquares returns the weighted SUM of squares. The result is never
// divided by the number of values or by the total weight. Callers that want
// a mean must normalise it themselves.
//
// WEIGHTS:
//
// A nil weight slice means "no weights" and every value counts once. A
// non-nil slice, even an empty one, is a weight sequence and must match the
// number sequence in length.
package squares
