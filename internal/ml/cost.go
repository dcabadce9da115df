package ml

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

type IModelCost interface {
	Cost(predicted, target []float64) (float64, error)
}

type MSECost struct{}

// Cost is the mean of squared differences between target and predicted.
// Empty vectors cost nothing.
func (*MSECost) Cost(predicted, target []float64) (float64, error) {
	if len(predicted) != len(target) {
		return 0, fmt.Errorf("%w: output has %d values, target has %d",
			ErrDimensionMismatch, len(predicted), len(target))
	}
	if len(predicted) == 0 {
		return 0, nil
	}
	var diff = make([]float64, len(target))
	floats.SubTo(diff, target, predicted)
	return floats.Dot(diff, diff) / float64(len(diff)), nil
}

func MSE(output, target []float64) (float64, error) {
	return (&MSECost{}).Cost(output, target)
}
