package ml

import (
	"math"
	"math/rand"
)

// InitUniform fills data with independent draws from [0, 1).
func InitUniform(rnd *rand.Rand, data []float64) {
	for i := range data {
		data[i] = rnd.Float64()
	}
}

func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
