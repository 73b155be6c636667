// Package perceptron is the public surface of the library: a minimal
// three-layer feed-forward network trained by stochastic online
// backpropagation.
package perceptron

import (
	"github.com/perceptron-go/perceptron/internal/activations"
	"github.com/perceptron-go/perceptron/internal/net"
	"github.com/perceptron-go/perceptron/internal/sample"
)

// Re-export common types for easier access
type (
	Network    = net.Network
	TrainItem  = net.TrainItem
	TrainSet   = net.TrainSet
	Activation = activations.Activation
	Sampler    = sample.Sampler
	Callback   = net.Callback
)

// DefaultLearningRate is the learning rate used when callers have no
// reason to pick another one.
const DefaultLearningRate = net.DefaultLearningRate

// Errors
var (
	ErrInvalidArgument   = net.ErrInvalidArgument
	ErrDimensionMismatch = net.ErrDimensionMismatch
)

// Activations
var (
	Sigmoid = activations.Sigmoid{}
	Tanh    = activations.Tanh{}
)

// New creates a network with the given layer sizes and learning rate.
func New(inputSize, hiddenSize, outputSize int, learningRate float64) (*Network, error) {
	return net.New(inputSize, hiddenSize, outputSize, learningRate)
}

// Samplers
func RandomSampler() Sampler {
	return sample.New()
}

func SeededSampler(seed int64) Sampler {
	return sample.NewSeeded(seed)
}

// Callbacks
func Logger(interval int) net.Logger {
	return net.Logger{Interval: interval}
}

func EarlyStopping(patience int, minDelta float64) *net.EarlyStopping {
	return net.NewEarlyStopping(patience, minDelta)
}

// Datasets
func LoadCSV(filename string, targetCols []int, hasHeader bool) (TrainSet, error) {
	return net.LoadCSV(filename, targetCols, hasHeader)
}
