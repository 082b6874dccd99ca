// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/gradnet/internal/nn"
	"github.com/born-ml/gradnet/tensor"
)

// Module interface defines the common interface for all network modules.
type Module = nn.Module

// Parameter represents a named trainable tensor.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// Network

// TwoLayerNet is a fully-connected network with one sigmoid hidden layer
// and a softmax output.
type TwoLayerNet = nn.TwoLayerNet

// Parameter names of TwoLayerNet.
const (
	ParamW1 = nn.ParamW1
	ParamB1 = nn.ParamB1
	ParamW2 = nn.ParamW2
	ParamB2 = nn.ParamB2
)

// NewTwoLayerNet creates a network with N(0, 1) weights drawn from rng and
// zero biases.
//
// Example:
//
//	backend := cpu.New()
//	net := nn.NewTwoLayerNet(784, 50, 10, rand.New(rand.NewSource(1)), backend)
func NewTwoLayerNet(inputSize, hiddenSize, outputSize int, rng *rand.Rand, backend tensor.Backend) *TwoLayerNet {
	return nn.NewTwoLayerNet(inputSize, hiddenSize, outputSize, rng, backend)
}

// NewTwoLayerNetFrom builds a network from existing parameter tensors.
func NewTwoLayerNetFrom(w1, b1, w2, b2 *tensor.Tensor) (*TwoLayerNet, error) {
	return nn.NewTwoLayerNetFrom(w1, b1, w2, b2)
}

// Activations

// Sigmoid applies 1 / (1 + exp(-x)) element-wise.
func Sigmoid(x *tensor.Tensor) *tensor.Tensor { return nn.Sigmoid(x) }

// ReLU applies max(0, x) element-wise.
func ReLU(x *tensor.Tensor) *tensor.Tensor { return nn.ReLU(x) }

// Step maps positive elements to 1 and the rest to 0.
func Step(x *tensor.Tensor) *tensor.Tensor { return nn.Step(x) }

// Softmax normalizes each row (last axis) into a probability distribution.
func Softmax(x *tensor.Tensor) *tensor.Tensor { return nn.Softmax(x) }

// Loss functions

// Delta is added to predictions before the logarithm in cross-entropy.
const Delta = nn.Delta

// MeanSquaredError computes the mean of (y - t)² over all elements.
func MeanSquaredError(y, t *tensor.Tensor) (float64, error) {
	return nn.MeanSquaredError(y, t)
}

// CrossEntropyError computes -mean_rows(sum_cols(t * ln(y + Delta))).
func CrossEntropyError(y, t *tensor.Tensor) (float64, error) {
	return nn.CrossEntropyError(y, t)
}

// CrossEntropyErrorOneHot is the fast path of CrossEntropyError for
// strictly one-hot t. See IsOneHot.
func CrossEntropyErrorOneHot(y, t *tensor.Tensor) (float64, error) {
	return nn.CrossEntropyErrorOneHot(y, t)
}

// IsOneHot reports whether every row of t has exactly one 1 and zeros
// elsewhere.
func IsOneHot(t *tensor.Tensor) bool {
	return nn.IsOneHot(t)
}

// Initialization

// Randn creates a tensor with values drawn from N(0, 1) using rng.
func Randn(shape tensor.Shape, rng *rand.Rand, backend tensor.Backend) *tensor.Tensor {
	return nn.Randn(shape, rng, backend)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape tensor.Shape, backend tensor.Backend) *tensor.Tensor {
	return nn.Zeros(shape, backend)
}
