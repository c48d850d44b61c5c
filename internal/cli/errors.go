package cli

import (
	"errors"

	"github.com/roach88/squares/internal/numfile"
	"github.com/roach88/squares/internal/squares"
	"github.com/roach88/squares/internal/suite"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric    = "E001" // Generic/unknown error
	ErrCodeReadFailed = "E005" // Path not found or unreadable

	// Input errors
	ErrCodeParse          = "E201" // Token is not a number
	ErrCodeLengthMismatch = "E202" // Weights and numbers differ in length

	// Suite errors
	ErrCodeSuiteInvalid = "E301" // Suite file missing or malformed
	ErrCodeSuiteFailed  = "E302" // One or more cases failed
)

// classifyError maps an error to its code, exit code and JSON details.
func classifyError(err error) (code string, exit int, details interface{}) {
	var ioErr *numfile.IOError
	var parseErr *squares.ParseError
	var mismatch *squares.LengthMismatchError
	var loadErr *suite.LoadError

	switch {
	case errors.As(err, &ioErr):
		return ErrCodeReadFailed, ExitCommandError, map[string]any{"path": ioErr.Path}
	case errors.As(err, &parseErr):
		return ErrCodeParse, ExitFailure, map[string]any{"token": parseErr.Token, "index": parseErr.Index}
	case errors.As(err, &mismatch):
		return ErrCodeLengthMismatch, ExitFailure, map[string]any{"numbers": mismatch.Numbers, "weights": mismatch.Weights}
	case errors.As(err, &loadErr):
		return ErrCodeSuiteInvalid, ExitCommandError, map[string]any{"path": loadErr.Path}
	default:
		return ErrCodeGeneric, ExitFailure, nil
	}
}

// outputError renders err and returns the ExitError the command should
// return.
func outputError(formatter *OutputFormatter, err error) error {
	code, exit, details := classifyError(err)
	_ = formatter.Error(code, err.Error(), details)
	return WrapExitError(exit, code, err)
}
