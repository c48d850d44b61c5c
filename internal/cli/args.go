package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/squares/internal/report"
	"github.com/roach88/squares/internal/squares"
)

// ArgsOptions holds flags for the args command.
type ArgsOptions struct {
	*RootOptions
	Weights []string // weight fragments
}

// NewArgsCommand creates the args command.
func NewArgsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ArgsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "args [flags] <number>...",
		Short: "Compute the average of squares from command-line numbers",
		Long: `Compute the (weighted) average of squares of numbers given as arguments.

Each argument may hold several whitespace-separated literals. --weights
may be repeated, or hold several literals in one quoted value. Flags go
before the numbers: everything from the first number on is read as a
number, so later negative values need no escaping. A negative first
number needs "--" in front of it.

Examples:
  squares args 1 2 4
  squares args 3 -3 0.5
  squares args --weights 1 --weights 0.5 2 4
  squares args --weights "1 0.5" "2 4"
  squares args -- -3 3`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArgs(opts, args, cmd)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Weights, "weights", nil, "weights, matched to numbers by position (repeatable)")
	// Stop flag parsing at the first number so "-2" is not read as a shorthand.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runArgs(opts *ArgsOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	defer func() { _ = formatter.log().Sync() }()

	numbers, err := squares.ConvertNumbers(args)
	if err != nil {
		return outputError(formatter, fmt.Errorf("numbers: %w", err))
	}
	formatter.log().Debug("converted numbers", zap.Int("count", len(numbers)))

	var weights []float64
	if cmd.Flags().Changed("weights") {
		weights, err = squares.ConvertNumbers(opts.Weights)
		if err != nil {
			return outputError(formatter, fmt.Errorf("weights: %w", err))
		}
		formatter.log().Debug("converted weights", zap.Int("count", len(weights)))
	}

	return computeAndOutput(formatter, numbers, weights, report.SourceArgs)
}
