package squares

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// decimalLiteral matches an optionally signed decimal float with optional
// fraction and exponent. strconv.ParseFloat alone also accepts inf, nan,
// hex floats and underscores, which are not valid input here.
var decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// Tokenize splits every fragment on runs of whitespace and flattens the
// tokens in fragment order. Blank fragments contribute nothing.
func Tokenize(fragments []string) []string {
	tokens := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		tokens = append(tokens, strings.Fields(fragment)...)
	}
	return tokens
}

// ConvertNumbers tokenizes fragments and parses each token as a float64.
//
// The returned slice is never nil, so an all-blank input yields an empty
// sequence rather than "no sequence". The first invalid token aborts the
// conversion with a *ParseError.
func ConvertNumbers(fragments []string) ([]float64, error) {
	tokens := Tokenize(fragments)
	numbers := make([]float64, 0, len(tokens))
	for i, token := range tokens {
		n, err := parseToken(token)
		if err != nil {
			return nil, &ParseError{Token: token, Index: i, Err: err}
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// parseToken parses a single decimal literal. Overflow yields ±Inf and
// underflow yields zero, both without error.
func parseToken(token string) (float64, error) {
	if !decimalLiteral.MatchString(token) {
		return 0, strconv.ErrSyntax
	}
	n, err := strconv.ParseFloat(token, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return n, nil
}
