package squares

import "fmt"

// ParseError reports a token that is not a decimal floating-point literal.
type ParseError struct {
	Token string // offending token, as it appeared in the input
	Index int    // position in the flattened token sequence
	Err   error  // underlying strconv error, if any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not convert %q to a number (token %d)", e.Token, e.Index)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LengthMismatchError reports a weight sequence whose length differs from
// the number sequence.
type LengthMismatchError struct {
	Numbers int
	Weights int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("weights and numbers must have same length: %d numbers, %d weights", e.Numbers, e.Weights)
}
