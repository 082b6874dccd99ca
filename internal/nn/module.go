// Package nn implements the neural network pieces of gradnet.
//
// This package provides:
//   - Activations: Sigmoid, Softmax, ReLU, Step
//   - Loss functions: MeanSquaredError, CrossEntropyError, CrossEntropyErrorOneHot
//   - Parameter: named trainable tensors
//   - Linear: affine layer x·W + b
//   - TwoLayerNet: Linear → sigmoid → Linear → softmax
package nn

import (
	"github.com/born-ml/gradnet/internal/tensor"
)

// Module is the base interface for network components.
//
// Every module must implement:
//   - Forward: Compute output from input
//   - Parameters: Return all trainable parameters
type Module interface {
	// Forward computes the output of the module given an input tensor.
	// Shape errors are returned, never partially computed.
	Forward(input *tensor.Tensor) (*tensor.Tensor, error)

	// Parameters returns all trainable parameters of this module.
	Parameters() []*Parameter
}
