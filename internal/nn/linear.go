package nn

import (
	"fmt"

	"github.com/born-ml/gradnet/internal/tensor"
)

// Linear implements a fully connected (affine) layer.
//
// Performs the transformation: y = x · W + b
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row with shape [1, out_features], added to every row
//   - y is the output tensor with shape [batch_size, out_features]
//
// Example:
//
//	w := nn.NewParameter("w1", nn.Randn(tensor.Shape{784, 50}, rng, backend))
//	b := nn.NewParameter("b1", nn.Zeros(tensor.Shape{1, 50}, backend))
//	layer, err := nn.NewLinear(w, b)
//	output, err := layer.Forward(input) // shape: [batch, 50]
type Linear struct {
	weight *Parameter // [in_features, out_features]
	bias   *Parameter // [1, out_features]
}

// NewLinear creates a Linear layer from existing parameters.
//
// Returns an error wrapping tensor.ErrShapeMismatch unless weight is 2-D
// and bias is a single row with weight's column count.
func NewLinear(weight, bias *Parameter) (*Linear, error) {
	w, b := weight.Tensor().Shape(), bias.Tensor().Shape()
	if !w.IsMatrix() || !b.IsMatrix() || b[0] != 1 || b[1] != w[1] {
		return nil, &tensor.ShapeError{Op: fmt.Sprintf("linear %s/%s", weight.Name(), bias.Name()), A: w, B: b}
	}
	return &Linear{weight: weight, bias: bias}, nil
}

// Forward computes x · W + b.
//
// Input with a feature count other than in_features fails with an error
// wrapping tensor.ErrShapeMismatch.
func (l *Linear) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	output, err := input.Dot(l.weight.Tensor())
	if err != nil {
		return nil, fmt.Errorf("linear %s: %w", l.weight.Name(), err)
	}
	output, err = output.Add(l.bias.Tensor())
	if err != nil {
		return nil, fmt.Errorf("linear %s: %w", l.bias.Name(), err)
	}
	return output, nil
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.weight.Tensor().Shape()[0]
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.weight.Tensor().Shape()[1]
}

// Clone returns a deep copy of the layer.
func (l *Linear) Clone() *Linear {
	return &Linear{weight: l.weight.Clone(), bias: l.bias.Clone()}
}
