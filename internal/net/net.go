// Package net provides the core feed-forward network.
package net

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/perceptron-go/perceptron/internal/activations"
	"github.com/perceptron-go/perceptron/internal/loss"
	"github.com/perceptron-go/perceptron/internal/sample"
	"github.com/perceptron-go/perceptron/internal/weights"
)

// DefaultLearningRate is the learning rate used when callers have no
// reason to pick another one.
const DefaultLearningRate = 0.3

var (
	// ErrInvalidArgument reports malformed layer sizes or an empty
	// training set with a nonzero iteration count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDimensionMismatch reports an input or target vector whose
	// length does not match the configured layer size.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// TrainItem pairs one input vector with its target vector.
type TrainItem struct {
	Inputs  []float64
	Targets []float64
}

// TrainSet is an ordered sequence of training items. Order is irrelevant
// during training because items are drawn at random with replacement.
type TrainSet []TrainItem

// Network is a three-layer (input-hidden-output) feed-forward network
// trained by stochastic online backpropagation.
//
// A Network is not safe for concurrent use: Train mutates the weight
// matrices in place, and a concurrent Query would observe a torn state.
// Callers needing concurrency must serialize access themselves.
type Network struct {
	inputSize  int
	hiddenSize int
	outputSize int

	learningRate float64

	weightsIH *mat.Dense // hiddenSize x inputSize
	weightsHO *mat.Dense // outputSize x hiddenSize

	act       activations.Activation
	sampler   sample.Sampler
	callbacks []Callback
}

// New creates a network with the given layer sizes and learning rate.
// All three sizes must be positive. The learning rate should be positive;
// values outside (0, 1] risk divergence but are not rejected. Weights are
// initialized to independent uniform values in [-0.5, 0.5). The default
// activation is the logistic sigmoid.
func New(inputSize, hiddenSize, outputSize int, learningRate float64) (*Network, error) {
	if inputSize <= 0 || hiddenSize <= 0 || outputSize <= 0 {
		return nil, fmt.Errorf("%w: layer sizes must be positive, got %d-%d-%d",
			ErrInvalidArgument, inputSize, hiddenSize, outputSize)
	}

	n := &Network{
		inputSize:    inputSize,
		hiddenSize:   hiddenSize,
		outputSize:   outputSize,
		learningRate: learningRate,
		weightsIH:    mat.NewDense(hiddenSize, inputSize, nil),
		weightsHO:    mat.NewDense(outputSize, hiddenSize, nil),
		act:          activations.Sigmoid{},
		sampler:      sample.New(),
	}

	init := weights.NewUniform(0.5)
	init.Initialize(n.weightsIH)
	init.Initialize(n.weightsHO)

	return n, nil
}

// InputSize returns the configured input layer size.
func (n *Network) InputSize() int { return n.inputSize }

// HiddenSize returns the configured hidden layer size.
func (n *Network) HiddenSize() int { return n.hiddenSize }

// OutputSize returns the configured output layer size.
func (n *Network) OutputSize() int { return n.outputSize }

// LearningRate returns the configured learning rate.
func (n *Network) LearningRate() float64 { return n.learningRate }

// SetActivation replaces the activation strategy for all subsequent
// training and querying.
func (n *Network) SetActivation(act activations.Activation) {
	n.act = act
}

// SetSampler replaces the index sampler used by Train.
func (n *Network) SetSampler(s sample.Sampler) {
	n.sampler = s
}

// AddCallback registers a training callback.
func (n *Network) AddCallback(cb Callback) {
	n.callbacks = append(n.callbacks, cb)
}

// Weights returns deep copies of the input-to-hidden and hidden-to-output
// weight matrices. The internal matrices are never aliased.
func (n *Network) Weights() (ih, ho *mat.Dense) {
	return mat.DenseCopyOf(n.weightsIH), mat.DenseCopyOf(n.weightsHO)
}

// SetWeights overwrites both weight matrices with copies of the given
// ones. The shapes must match the configured layer sizes.
func (n *Network) SetWeights(ih, ho mat.Matrix) error {
	if r, c := ih.Dims(); r != n.hiddenSize || c != n.inputSize {
		return fmt.Errorf("%w: input-to-hidden weights are %dx%d, want %dx%d",
			ErrDimensionMismatch, r, c, n.hiddenSize, n.inputSize)
	}
	if r, c := ho.Dims(); r != n.outputSize || c != n.hiddenSize {
		return fmt.Errorf("%w: hidden-to-output weights are %dx%d, want %dx%d",
			ErrDimensionMismatch, r, c, n.outputSize, n.hiddenSize)
	}
	n.weightsIH.Copy(ih)
	n.weightsHO.Copy(ho)
	return nil
}

// Train performs count independent training steps. Each step draws one
// item uniformly at random from set (with replacement), runs a full
// forward pass and backpropagates the error with an immediate in-place
// weight update.
//
// A non-nil activator permanently replaces the stored activation
// strategy before the first step; the swap persists on the Network after
// Train returns. Pass nil to keep the current strategy.
//
// count == 0 is a legal no-op. An empty set with count > 0 fails with
// ErrInvalidArgument because the sampler has no valid index range.
func (n *Network) Train(set TrainSet, count int, activator activations.Activation) error {
	if activator != nil {
		n.act = activator
	}
	if count < 0 {
		return fmt.Errorf("%w: negative iteration count %d", ErrInvalidArgument, count)
	}
	if count == 0 {
		return nil
	}
	if len(set) == 0 {
		return fmt.Errorf("%w: empty training set", ErrInvalidArgument)
	}

	for _, cb := range n.callbacks {
		cb.OnTrainBegin(n)
	}

steps:
	for step := 0; step < count; step++ {
		idx := n.sampler.UniformIndex(0, len(set))
		stepLoss, err := n.trainStep(set[idx])
		if err != nil {
			return err
		}
		for _, cb := range n.callbacks {
			cb.OnStepEnd(step, stepLoss, n)
			if s, ok := cb.(Stopper); ok && s.ShouldStop() {
				break steps
			}
		}
	}

	for _, cb := range n.callbacks {
		cb.OnTrainEnd(n)
	}
	return nil
}

// Query runs a forward pass with the current weights and returns the
// final output vector. It does not mutate the network; the returned
// slice is freshly allocated.
func (n *Network) Query(inputs []float64) ([]float64, error) {
	if len(inputs) != n.inputSize {
		return nil, fmt.Errorf("%w: got %d inputs, want %d",
			ErrDimensionMismatch, len(inputs), n.inputSize)
	}

	input := columnOf(inputs)
	res := n.forward(input)

	out := make([]float64, n.outputSize)
	mat.Col(out, 0, res.finalOutputs)
	return out, nil
}

// forwardResult holds the transient layer outputs of one forward pass.
// It is handed to the immediately following backward pass and never
// retained by the Network.
type forwardResult struct {
	hiddenOutputs *mat.Dense // hiddenSize x 1
	finalOutputs  *mat.Dense // outputSize x 1
}

// trainStep runs one forward pass followed by one backward pass on a
// single item. Vector lengths are validated before any weight is
// touched, so a failed step leaves the network unchanged. Returns the
// pre-update mean squared error for callbacks.
func (n *Network) trainStep(item TrainItem) (float64, error) {
	if len(item.Inputs) != n.inputSize {
		return 0, fmt.Errorf("%w: item has %d inputs, want %d",
			ErrDimensionMismatch, len(item.Inputs), n.inputSize)
	}
	if len(item.Targets) != n.outputSize {
		return 0, fmt.Errorf("%w: item has %d targets, want %d",
			ErrDimensionMismatch, len(item.Targets), n.outputSize)
	}

	input := columnOf(item.Inputs)
	target := columnOf(item.Targets)

	res := n.forward(input)
	n.backpropagate(input, target, res)

	pred := make([]float64, n.outputSize)
	mat.Col(pred, 0, res.finalOutputs)
	return loss.MSE{}.Forward(pred, item.Targets), nil
}

// forward propagates one input column through both layers:
// matrix product, then elementwise activation, per layer. It is a pure
// function of the current weights and the input.
func (n *Network) forward(input *mat.Dense) forwardResult {
	var hiddenInputs mat.Dense
	hiddenInputs.Mul(n.weightsIH, input)
	hiddenOutputs := n.act.Execute(&hiddenInputs)

	var finalInputs mat.Dense
	finalInputs.Mul(n.weightsHO, hiddenOutputs)
	finalOutputs := n.act.Execute(&finalInputs)

	return forwardResult{hiddenOutputs: hiddenOutputs, finalOutputs: finalOutputs}
}

// backpropagate updates both weight matrices in place by gradient
// descent on the squared error. The hidden-layer error is computed
// through the transpose of the pre-update hidden-to-output weights, so
// the order of the two updates matters.
func (n *Network) backpropagate(input, target *mat.Dense, res forwardResult) {
	var outputErrors mat.Dense
	outputErrors.Sub(target, res.finalOutputs)

	var hiddenErrors mat.Dense
	hiddenErrors.Mul(n.weightsHO.T(), &outputErrors)

	n.applyDelta(n.weightsHO, &outputErrors, res.finalOutputs, res.hiddenOutputs)
	n.applyDelta(n.weightsIH, &hiddenErrors, res.hiddenOutputs, input)
}

// applyDelta adds lr * ((errs .* f'(outputs)) * inputs^T) to w in place,
// where f' is taken from the activation's own output.
func (n *Network) applyDelta(w *mat.Dense, errs, outputs, inputs *mat.Dense) {
	var grad mat.Dense
	grad.MulElem(errs, n.act.DerivativeFromOutput(outputs))

	var delta mat.Dense
	delta.Mul(&grad, inputs.T())
	delta.Scale(n.learningRate, &delta)

	w.Add(w, &delta)
}

// columnOf copies v into a fresh len(v) x 1 matrix.
func columnOf(v []float64) *mat.Dense {
	data := make([]float64, len(v))
	copy(data, v)
	return mat.NewDense(len(v), 1, data)
}
