package squares

// AverageOfSquares returns the sum of weights[i] * numbers[i]^2.
//
// When weights is nil every number has weight 1. Otherwise weights must be
// the same length as numbers, pairing by position, or a
// *LengthMismatchError is returned. An empty input sums to 0.
func AverageOfSquares(numbers, weights []float64) (float64, error) {
	if weights != nil && len(weights) != len(numbers) {
		return 0, &LengthMismatchError{Numbers: len(numbers), Weights: len(weights)}
	}

	var sum float64
	for i, n := range numbers {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		sum += w * n * n
	}
	return sum, nil
}
