package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/squares/internal/suite"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Filter string // case filter (glob pattern)
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <suite-file>",
		Short: "Run a conformance suite",
		Long: `Run the cases of a YAML conformance suite against the calculator.

Each case lists number fragments, optional weight fragments and either
an expected result or an expected error kind (parse, length_mismatch).

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (missing or invalid suite file)

Examples:
  squares check suites/basics.yaml
  squares check suites/basics.yaml --filter "weighted*"
  squares check suites/basics.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter cases by glob pattern")

	return cmd
}

func runCheck(opts *CheckOptions, suiteFile string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	defer func() { _ = formatter.log().Sync() }()

	s, err := suite.Load(suiteFile)
	if err != nil {
		return outputError(formatter, err)
	}
	formatter.log().Debug("loaded suite", zap.String("path", suiteFile), zap.String("name", s.Name), zap.Int("cases", len(s.Cases)))

	result, err := suite.Run(s, opts.Filter)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeGeneric, err)
	}

	if opts.Format == "json" {
		return outputCheckJSON(formatter, result)
	}
	return outputCheckText(formatter, result)
}

// outputCheckJSON outputs the suite result as JSON.
func outputCheckJSON(formatter *OutputFormatter, result *suite.Result) error {
	status := "ok"
	if result.Failed > 0 {
		status = "error"
	}

	response := CLIResponse{
		Status:  status,
		Data:    result,
		TraceID: formatter.TraceID,
	}

	if result.Failed > 0 {
		response.Error = &CLIError{
			Code:    ErrCodeSuiteFailed,
			Message: fmt.Sprintf("%d case(s) failed", result.Failed),
		}
	}

	encoder := json.NewEncoder(formatter.Writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", result.Failed))
	}
	return nil
}

// outputCheckText outputs one line per case followed by a summary.
func outputCheckText(formatter *OutputFormatter, result *suite.Result) error {
	w := formatter.Writer

	for _, c := range result.Cases {
		if c.Pass {
			fmt.Fprintf(w, "✓ %s\n", c.Name)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", c.Name)
		fmt.Fprintf(w, "  %s\n", c.Failure)
		if c.Message != "" {
			fmt.Fprintf(w, "  %s\n", c.Message)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Suite %s: %d passed, %d failed, %d total\n", result.Name, result.Passed, result.Failed, result.Total())

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", result.Failed))
	}

	fmt.Fprintln(w, "✓ All cases passed")
	return nil
}
