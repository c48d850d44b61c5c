package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/squares/internal/numfile"
)

// FilesOptions holds flags for the files command.
type FilesOptions struct {
	*RootOptions
	Weights string // weights file path
}

// NewFilesCommand creates the files command.
func NewFilesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FilesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "files <numbers-file>",
		Short: "Compute the average of squares from text files",
		Long: `Compute the (weighted) average of squares of the numbers in a text file.

Files hold floating-point literals separated by whitespace, one or more
per line. Blank lines are ignored. With --weights, the weights file must
hold exactly as many values as the numbers file.

Examples:
  squares files numbers.txt
  squares files numbers.txt --weights weights.txt
  squares files numbers.txt --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Weights, "weights", "", "text file containing the weights")

	return cmd
}

func runFiles(opts *FilesOptions, numbersFile string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	defer func() { _ = formatter.log().Sync() }()

	numbers, err := numfile.ReadNumbers(numbersFile)
	if err != nil {
		return outputError(formatter, err)
	}
	formatter.log().Debug("read numbers", zap.String("path", numbersFile), zap.Int("count", len(numbers)))

	// An explicitly empty --weights "" is still a weights file and fails to read.
	var weights []float64
	if cmd.Flags().Changed("weights") {
		weights, err = numfile.ReadNumbers(opts.Weights)
		if err != nil {
			return outputError(formatter, err)
		}
		formatter.log().Debug("read weights", zap.String("path", opts.Weights), zap.Int("count", len(weights)))
	}

	return computeAndOutput(formatter, numbers, weights, numbersFile)
}
