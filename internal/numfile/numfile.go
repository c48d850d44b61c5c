// Package numfile reads whitespace-delimited numeric text files.
package numfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/roach88/squares/internal/squares"
)

// IOError reports a file that could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ReadLines returns the non-empty lines of the file at path, each trimmed of
// surrounding whitespace, in file order.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: unwrapPathError(err)}
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// ReadNumbers reads path with ReadLines and converts the lines to numbers.
// Parse failures are prefixed with the path and still unwrap to
// *squares.ParseError.
func ReadNumbers(path string) ([]float64, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	numbers, err := squares.ConvertNumbers(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return numbers, nil
}

// unwrapPathError drops the *os.PathError wrapper so the path is not
// repeated in IOError messages.
func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
