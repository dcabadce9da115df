package nn

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/tictacnet/tictacnet/internal/ml"
	"gonum.org/v1/gonum/floats"
)

func newTestNetwork(t *testing.T, inputSize, hiddenSize, outputSize int) *Network {
	t.Helper()
	n, err := New(inputSize, hiddenSize, outputSize, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestForwardShape(t *testing.T) {
	var n = newTestNetwork(t, 9, 10, 9)
	var input = []float64{0, 0, 0, 0, 1, 0, 0, 0, 0}
	result, err := n.Forward(input)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Output) != 9 || len(result.OutputRaw) != 9 {
		t.Errorf("output length %d/%d, want 9", len(result.Output), len(result.OutputRaw))
	}
	if n.HiddenSize() != 10 || len(result.Hidden) != 10 || len(result.HiddenRaw) != 10 {
		t.Errorf("hidden length %d/%d, want 10", len(result.Hidden), len(result.HiddenRaw))
	}
	for i, v := range result.Output {
		if v <= 0 || v >= 1 {
			t.Errorf("output[%d] = %v outside (0, 1)", i, v)
		}
		if v != ml.Sigmoid(result.OutputRaw[i]) {
			t.Errorf("output[%d] is not sigmoid of raw value", i)
		}
	}
}

func TestForwardMatchesDotProducts(t *testing.T) {
	var n, err = NewFromWeights(
		[][]float64{{0.5, -1}, {2, 0.25}, {0, 1}},
		[][]float64{{1}, {-2}},
	)
	if err != nil {
		t.Fatal(err)
	}
	var input = []float64{1, -1, 2}
	result, err := n.Forward(input)
	if err != nil {
		t.Fatal(err)
	}
	var wantHiddenRaw = []float64{0.5 - 2, -1 - 0.25 + 2}
	if !floats.EqualApprox(result.HiddenRaw, wantHiddenRaw, 1e-12) {
		t.Fatalf("hidden raw = %v, want %v", result.HiddenRaw, wantHiddenRaw)
	}
	var wantOutputRaw = ml.Sigmoid(wantHiddenRaw[0]) - 2*ml.Sigmoid(wantHiddenRaw[1])
	if math.Abs(result.OutputRaw[0]-wantOutputRaw) > 1e-12 {
		t.Fatalf("output raw = %v, want %v", result.OutputRaw[0], wantOutputRaw)
	}
}

func TestForwardDeterministic(t *testing.T) {
	var n = newTestNetwork(t, 9, 10, 9)
	var input = []float64{-1, 0, 1, 0, -1, 0, 1, 0, 0}
	first, err := n.Forward(input)
	if err != nil {
		t.Fatal(err)
	}
	second, err := n.Forward(input)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.Equal(first.Output, second.Output) || !floats.Equal(first.Hidden, second.Hidden) {
		t.Fatalf("forward is not deterministic: %v vs %v", first.Output, second.Output)
	}
}

func TestForwardConcurrent(t *testing.T) {
	var n = newTestNetwork(t, 9, 10, 9)
	var input = []float64{0, 1, 0, -1, 0, 0, 0, 0, 1}
	want, err := n.Forward(input)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	var results = make([]ForwardResult, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = n.Forward(input)
		}(i)
	}
	wg.Wait()
	for i := range results {
		if !floats.Equal(results[i].Output, want.Output) {
			t.Fatalf("goroutine %d got %v, want %v", i, results[i].Output, want.Output)
		}
	}
}

func TestForwardDimensionMismatch(t *testing.T) {
	var n = newTestNetwork(t, 9, 10, 9)
	var _, err = n.Forward([]float64{1, 2, 3})
	if !errors.Is(err, ml.ErrDimensionMismatch) {
		t.Fatalf("err = %v, want ErrDimensionMismatch", err)
	}
}

func TestNewInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name                              string
		inputSize, hiddenSize, outputSize int
	}{
		{"zero input", 0, 10, 9},
		{"zero hidden", 9, 0, 9},
		{"negative output", 9, 10, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var _, err = New(tt.inputSize, tt.hiddenSize, tt.outputSize, nil)
			if !errors.Is(err, ml.ErrInvalidConfiguration) {
				t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestNewWeightsInUnitInterval(t *testing.T) {
	var n = newTestNetwork(t, 9, 10, 9)
	var w1, w2 = n.Weights()
	if len(w1) != 9 || len(w1[0]) != 10 {
		t.Fatalf("input to hidden shape %dx%d", len(w1), len(w1[0]))
	}
	if len(w2) != 10 || len(w2[0]) != 9 {
		t.Fatalf("hidden to output shape %dx%d", len(w2), len(w2[0]))
	}
	for _, rows := range [][][]float64{w1, w2} {
		for _, row := range rows {
			for _, v := range row {
				if v < 0 || v >= 1 {
					t.Fatalf("weight %v outside [0, 1)", v)
				}
			}
		}
	}
}

func TestNewFromWeightsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		w1, w2 [][]float64
	}{
		{"empty", nil, [][]float64{{1}}},
		{"ragged", [][]float64{{1, 2}, {3}}, [][]float64{{1}, {1}}},
		{"hidden mismatch", [][]float64{{1, 2}}, [][]float64{{1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var _, err = NewFromWeights(tt.w1, tt.w2)
			if !errors.Is(err, ml.ErrInvalidConfiguration) {
				t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestTrainReturnsLossBeforeUpdate(t *testing.T) {
	var n = newTestNetwork(t, 9, 10, 9)
	var input = []float64{-1, 0, 0, 0, 0, 0, 0, 0, 0}
	var target = []float64{0, 0, 0, 0, 1, 0, 0, 0, 0}

	before, err := n.Forward(input)
	if err != nil {
		t.Fatal(err)
	}
	want, err := ml.MSE(before.Output, target)
	if err != nil {
		t.Fatal(err)
	}
	got, err := n.Train(input, target, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("Train loss = %v, want %v", got, want)
	}
	after, err := n.Loss(input, target)
	if err != nil {
		t.Fatal(err)
	}
	if after >= got {
		t.Fatalf("loss did not decrease after one step: %v -> %v", got, after)
	}
}

// referenceBackprop applies the update with plain loops on copied weights.
func referenceBackprop(w1, w2 [][]float64, input, target []float64, fr ForwardResult, lr float64) {
	var s = &ml.SigmoidActivation{}
	var outputGrad = make([]float64, len(fr.Output))
	for o := range fr.Output {
		outputGrad[o] = (fr.Output[o] - target[o]) * s.SigmaPrime(fr.OutputRaw[o])
	}
	for h := range fr.Hidden {
		for o := range outputGrad {
			w2[h][o] -= lr * outputGrad[o] * fr.Hidden[h]
		}
	}
	var hiddenGrad = make([]float64, len(fr.Hidden))
	for h := range w2 {
		var hiddenError float64
		for o := range outputGrad {
			hiddenError += w2[h][o] * outputGrad[o]
		}
		hiddenGrad[h] = hiddenError * s.SigmaPrime(fr.HiddenRaw[h])
	}
	for i := range input {
		for h := range hiddenGrad {
			w1[i][h] -= lr * hiddenGrad[h] * input[i]
		}
	}
}

func TestBackpropagateUsesUpdatedHiddenWeights(t *testing.T) {
	var n = newTestNetwork(t, 4, 3, 2)
	var input = []float64{1, -1, 0.5, 0}
	var target = []float64{1, 0}
	const lr = 0.5

	fr, err := n.Forward(input)
	if err != nil {
		t.Fatal(err)
	}
	var w1, w2 = n.Weights()
	referenceBackprop(w1, w2, input, target, fr, lr)

	if err := n.Backpropagate(input, target, fr, lr); err != nil {
		t.Fatal(err)
	}
	var got1, got2 = n.Weights()
	for i := range w1 {
		if !floats.EqualApprox(got1[i], w1[i], 1e-12) {
			t.Fatalf("input to hidden row %d = %v, want %v", i, got1[i], w1[i])
		}
	}
	for h := range w2 {
		if !floats.EqualApprox(got2[h], w2[h], 1e-12) {
			t.Fatalf("hidden to output row %d = %v, want %v", h, got2[h], w2[h])
		}
	}
}

func TestBackpropagateZeroInputKeepsFirstLayer(t *testing.T) {
	var n = newTestNetwork(t, 3, 2, 2)
	var input = []float64{0, 0, 0}
	fr, err := n.Forward(input)
	if err != nil {
		t.Fatal(err)
	}
	var before, _ = n.Weights()
	if err := n.Backpropagate(input, []float64{1, 0}, fr, 1); err != nil {
		t.Fatal(err)
	}
	var after, _ = n.Weights()
	for i := range before {
		if !floats.Equal(before[i], after[i]) {
			t.Fatalf("row %d changed with zero input: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestBackpropagateDimensionMismatch(t *testing.T) {
	var n = newTestNetwork(t, 3, 2, 2)
	var input = []float64{1, 0, 0}
	fr, err := n.Forward(input)
	if err != nil {
		t.Fatal(err)
	}
	var w1, w2 = n.Weights()

	tests := []struct {
		name   string
		input  []float64
		target []float64
		fr     ForwardResult
	}{
		{"target", input, []float64{1}, fr},
		{"input", []float64{1}, []float64{1, 0}, fr},
		{"forward result", input, []float64{1, 0}, ForwardResult{Output: fr.Output}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err = n.Backpropagate(tt.input, tt.target, tt.fr, 0.1)
			if !errors.Is(err, ml.ErrDimensionMismatch) {
				t.Fatalf("err = %v, want ErrDimensionMismatch", err)
			}
		})
	}
	if _, err := n.Train(input, []float64{1, 0, 0}, 0.1); !errors.Is(err, ml.ErrDimensionMismatch) {
		t.Fatalf("Train err = %v, want ErrDimensionMismatch", err)
	}

	var got1, got2 = n.Weights()
	for i := range w1 {
		if !floats.Equal(got1[i], w1[i]) {
			t.Fatalf("weights changed after rejected update")
		}
	}
	for i := range w2 {
		if !floats.Equal(got2[i], w2[i]) {
			t.Fatalf("weights changed after rejected update")
		}
	}
}
