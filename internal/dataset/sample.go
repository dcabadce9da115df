package dataset

import (
	"fmt"

	"github.com/tictacnet/tictacnet/internal/ml"
)

// Sample is one labeled example. Samples are never modified after loading.
type Sample struct {
	Input  []float64
	Target []float64
}

// Validate checks that every sample fits a network with the given sizes.
func Validate(samples []Sample, inputSize, outputSize int) error {
	for i := range samples {
		var sample = &samples[i]
		if len(sample.Input) != inputSize {
			return fmt.Errorf("%w: sample %d input has %d values, want %d",
				ml.ErrDimensionMismatch, i, len(sample.Input), inputSize)
		}
		if len(sample.Target) != outputSize {
			return fmt.Errorf("%w: sample %d target has %d values, want %d",
				ml.ErrDimensionMismatch, i, len(sample.Target), outputSize)
		}
	}
	return nil
}
