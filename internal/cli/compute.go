package cli

import (
	"go.uber.org/zap"

	"github.com/roach88/squares/internal/report"
	"github.com/roach88/squares/internal/squares"
)

// computeAndOutput runs the calculator and writes the result. source is
// recorded in the JSON report.
func computeAndOutput(formatter *OutputFormatter, numbers, weights []float64, source string) error {
	value, err := squares.AverageOfSquares(numbers, weights)
	if err != nil {
		return outputError(formatter, err)
	}

	result := report.Result{
		Value:    value,
		Count:    len(numbers),
		Weighted: weights != nil,
		Source:   source,
	}
	formatter.log().Debug("computed",
		zap.String("result", result.Display()),
		zap.Int("count", result.Count),
		zap.Bool("weighted", result.Weighted),
	)

	return formatter.Success(result)
}
