package nn

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/tictacnet/tictacnet/internal/ml"
	"gonum.org/v1/gonum/mat"
)

// Network is a feedforward network with one hidden layer and sigmoid
// activations on both layers.
//
// Forward and BestAction only read the weights and may run concurrently with
// each other. Train and Backpropagate mutate the weights and must not overlap
// with any other call on the same Network.
type Network struct {
	inputSize    int
	hiddenSize   int
	outputSize   int
	activationFn ml.IActivationFn
	cost         ml.IModelCost
	params       Parameters
}

// ForwardResult keeps every intermediate vector of one forward pass.
type ForwardResult struct {
	HiddenRaw []float64
	Hidden    []float64
	OutputRaw []float64
	Output    []float64
}

// New creates a network with weights drawn uniformly from [0, 1).
// A nil rnd means a time seeded source.
func New(inputSize, hiddenSize, outputSize int, rnd *rand.Rand) (*Network, error) {
	if inputSize <= 0 || hiddenSize <= 0 || outputSize <= 0 {
		return nil, fmt.Errorf("%w: layer sizes must be positive, got %d-%d-%d",
			ml.ErrInvalidConfiguration, inputSize, hiddenSize, outputSize)
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Network{
		inputSize:    inputSize,
		hiddenSize:   hiddenSize,
		outputSize:   outputSize,
		activationFn: &ml.SigmoidActivation{},
		cost:         &ml.MSECost{},
		params:       newParameters(rnd, inputSize, hiddenSize, outputSize),
	}, nil
}

// NewFromWeights creates a network from explicit row-major weights:
// inputToHidden is inputSize x hiddenSize, hiddenToOutput is hiddenSize x outputSize.
func NewFromWeights(inputToHidden, hiddenToOutput [][]float64) (*Network, error) {
	params, err := parametersFromRows(inputToHidden, hiddenToOutput)
	if err != nil {
		return nil, err
	}
	var inputSize, hiddenSize = params.inputToHidden.Dims()
	var _, outputSize = params.hiddenToOutput.Dims()
	return &Network{
		inputSize:    inputSize,
		hiddenSize:   hiddenSize,
		outputSize:   outputSize,
		activationFn: &ml.SigmoidActivation{},
		cost:         &ml.MSECost{},
		params:       params,
	}, nil
}

func (n *Network) InputSize() int  { return n.inputSize }
func (n *Network) HiddenSize() int { return n.hiddenSize }
func (n *Network) OutputSize() int { return n.outputSize }

// Weights returns copies of both weight matrices as rows.
func (n *Network) Weights() (inputToHidden, hiddenToOutput [][]float64) {
	return rowsFromDense(n.params.inputToHidden), rowsFromDense(n.params.hiddenToOutput)
}

func (n *Network) Forward(input []float64) (ForwardResult, error) {
	if len(input) != n.inputSize {
		return ForwardResult{}, fmt.Errorf("%w: input has %d values, want %d",
			ml.ErrDimensionMismatch, len(input), n.inputSize)
	}
	return forward(&n.params, n.activationFn, input), nil
}

func forward(p *Parameters, fn ml.IActivationFn, input []float64) ForwardResult {
	var hiddenRaw, outputRaw mat.VecDense
	hiddenRaw.MulVec(p.inputToHidden.T(), mat.NewVecDense(len(input), input))
	var hidden = ml.Activate(fn, hiddenRaw.RawVector().Data)
	outputRaw.MulVec(p.hiddenToOutput.T(), mat.NewVecDense(len(hidden), hidden))
	var output = ml.Activate(fn, outputRaw.RawVector().Data)
	return ForwardResult{
		HiddenRaw: hiddenRaw.RawVector().Data,
		Hidden:    hidden,
		OutputRaw: outputRaw.RawVector().Data,
		Output:    output,
	}
}

// Backpropagate applies one gradient descent step for a single sample,
// using the intermediates of a forward pass over the same input.
func (n *Network) Backpropagate(input, target []float64, fr ForwardResult, learningRate float64) error {
	var err = n.checkSample(input, target)
	if err != nil {
		return err
	}
	if len(fr.Hidden) != n.hiddenSize || len(fr.HiddenRaw) != n.hiddenSize ||
		len(fr.Output) != n.outputSize || len(fr.OutputRaw) != n.outputSize {
		return fmt.Errorf("%w: forward result shape %d/%d/%d/%d, want hidden %d output %d",
			ml.ErrDimensionMismatch, len(fr.HiddenRaw), len(fr.Hidden), len(fr.OutputRaw), len(fr.Output),
			n.hiddenSize, n.outputSize)
	}
	backpropagate(&n.params, n.activationFn, input, target, fr, learningRate)
	return nil
}

// backpropagate is the only writer of p.
// The hidden error is taken through hiddenToOutput after it has already been
// updated for this sample.
func backpropagate(p *Parameters, fn ml.IActivationFn, input, target []float64, fr ForwardResult, learningRate float64) {
	var outputGrad = mat.NewVecDense(len(fr.Output), nil)
	for o := range fr.Output {
		var outputError = fr.Output[o] - target[o]
		outputGrad.SetVec(o, outputError*fn.SigmaPrime(fr.OutputRaw[o]))
	}

	var hidden = mat.NewVecDense(len(fr.Hidden), fr.Hidden)
	p.hiddenToOutput.RankOne(p.hiddenToOutput, -learningRate, hidden, outputGrad)

	var hiddenError mat.VecDense
	hiddenError.MulVec(p.hiddenToOutput, outputGrad)

	var hiddenGrad = mat.NewVecDense(len(fr.HiddenRaw), nil)
	for h := range fr.HiddenRaw {
		hiddenGrad.SetVec(h, hiddenError.AtVec(h)*fn.SigmaPrime(fr.HiddenRaw[h]))
	}

	var in = mat.NewVecDense(len(input), input)
	p.inputToHidden.RankOne(p.inputToHidden, -learningRate, in, hiddenGrad)
}

// Train runs one forward pass, measures the loss and backpropagates.
// The returned loss is the one before the weights were updated.
func (n *Network) Train(input, target []float64, learningRate float64) (float64, error) {
	var err = n.checkSample(input, target)
	if err != nil {
		return 0, err
	}
	var fr = forward(&n.params, n.activationFn, input)
	loss, err := n.cost.Cost(fr.Output, target)
	if err != nil {
		return 0, err
	}
	backpropagate(&n.params, n.activationFn, input, target, fr, learningRate)
	return loss, nil
}

// Loss is the cost of the current prediction for input against target.
func (n *Network) Loss(input, target []float64) (float64, error) {
	var err = n.checkSample(input, target)
	if err != nil {
		return 0, err
	}
	var fr = forward(&n.params, n.activationFn, input)
	return n.cost.Cost(fr.Output, target)
}

func (n *Network) checkSample(input, target []float64) error {
	if len(input) != n.inputSize {
		return fmt.Errorf("%w: input has %d values, want %d",
			ml.ErrDimensionMismatch, len(input), n.inputSize)
	}
	if len(target) != n.outputSize {
		return fmt.Errorf("%w: target has %d values, want %d",
			ml.ErrDimensionMismatch, len(target), n.outputSize)
	}
	return nil
}
