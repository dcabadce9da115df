package nn

import (
	"fmt"
	"math/rand"

	"github.com/tictacnet/tictacnet/internal/ml"
	"gonum.org/v1/gonum/mat"
)

// Parameters holds the two weight matrices of the network. There are no biases.
// Shapes never change after construction.
type Parameters struct {
	inputToHidden  *mat.Dense // inputSize x hiddenSize
	hiddenToOutput *mat.Dense // hiddenSize x outputSize
}

func newParameters(rnd *rand.Rand, inputSize, hiddenSize, outputSize int) Parameters {
	var w1 = make([]float64, inputSize*hiddenSize)
	var w2 = make([]float64, hiddenSize*outputSize)
	ml.InitUniform(rnd, w1)
	ml.InitUniform(rnd, w2)
	return Parameters{
		inputToHidden:  mat.NewDense(inputSize, hiddenSize, w1),
		hiddenToOutput: mat.NewDense(hiddenSize, outputSize, w2),
	}
}

func parametersFromRows(inputToHidden, hiddenToOutput [][]float64) (Parameters, error) {
	w1, err := denseFromRows(inputToHidden)
	if err != nil {
		return Parameters{}, fmt.Errorf("input to hidden: %w", err)
	}
	w2, err := denseFromRows(hiddenToOutput)
	if err != nil {
		return Parameters{}, fmt.Errorf("hidden to output: %w", err)
	}
	var _, hiddenSize = w1.Dims()
	if rows, _ := w2.Dims(); rows != hiddenSize {
		return Parameters{}, fmt.Errorf("%w: hidden size %d vs %d rows in hidden to output",
			ml.ErrInvalidConfiguration, hiddenSize, rows)
	}
	return Parameters{
		inputToHidden:  w1,
		hiddenToOutput: w2,
	}, nil
}

func denseFromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ml.ErrInvalidConfiguration)
	}
	var cols = len(rows[0])
	var data = make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d",
				ml.ErrInvalidConfiguration, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

func rowsFromDense(m *mat.Dense) [][]float64 {
	var r, _ = m.Dims()
	var result = make([][]float64, r)
	for i := range result {
		result[i] = mat.Row(nil, i, m)
	}
	return result
}
