// Package activations provides elementwise activation strategies.
package activations

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Activation applies an elementwise nonlinearity to a matrix.
//
// The backward pass never sees pre-activation values: it computes the
// derivative from the activation's own output via DerivativeFromOutput.
// A strategy is only substitutable if its derivative has a closed form
// in terms of that output (sigmoid: y*(1-y), tanh: 1-y*y).
type Activation interface {
	// Execute returns f applied elementwise; same shape as m.
	Execute(m mat.Matrix) *mat.Dense

	// DerivativeFromOutput returns f'(x) computed elementwise from y = f(x).
	DerivativeFromOutput(y mat.Matrix) *mat.Dense
}

// Sigmoid is the logistic activation 1 / (1 + exp(-x)).
type Sigmoid struct{}

// Execute computes sigmoid(x) elementwise.
func (Sigmoid) Execute(m mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return 1 / (1 + math.Exp(-v))
	}, m)
	return &out
}

// DerivativeFromOutput computes y * (1 - y) elementwise.
func (Sigmoid) DerivativeFromOutput(y mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return v * (1 - v)
	}, y)
	return &out
}

// Tanh is the hyperbolic tangent activation.
type Tanh struct{}

// Execute computes tanh(x) elementwise.
func (Tanh) Execute(m mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return math.Tanh(v)
	}, m)
	return &out
}

// DerivativeFromOutput computes 1 - y*y elementwise.
func (Tanh) DerivativeFromOutput(y mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return 1 - v*v
	}, y)
	return &out
}
