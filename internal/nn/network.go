package nn

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/gradnet/internal/grad"
	"github.com/born-ml/gradnet/internal/tensor"
)

// Parameter names of TwoLayerNet, in the order returned by Parameters.
const (
	ParamW1 = "w1"
	ParamB1 = "b1"
	ParamW2 = "w2"
	ParamB2 = "b2"
)

// TwoLayerNet is a fully-connected network with one hidden layer.
//
// Architecture:
//   - a1 = x·W1 + B1   (B1 broadcast over rows)
//   - z1 = sigmoid(a1)
//   - a2 = z1·W2 + B2
//   - y  = softmax(a2)
//
// Shapes: W1 (input, hidden), B1 (1, hidden), W2 (hidden, output),
// B2 (1, output). Parameters are never resized after construction.
type TwoLayerNet struct {
	layer1 *Linear // W1, B1
	layer2 *Linear // W2, B2
}

// NewTwoLayerNet creates a network with weights drawn from N(0, 1) using rng
// and zero biases.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	net := nn.NewTwoLayerNet(2, 3, 2, rng, cpu.New())
//
// Panics if any size is negative.
func NewTwoLayerNet(inputSize, hiddenSize, outputSize int, rng *rand.Rand, backend tensor.Backend) *TwoLayerNet {
	net, err := NewTwoLayerNetFrom(
		Randn(tensor.Shape{inputSize, hiddenSize}, rng, backend),
		Zeros(tensor.Shape{1, hiddenSize}, backend),
		Randn(tensor.Shape{hiddenSize, outputSize}, rng, backend),
		Zeros(tensor.Shape{1, outputSize}, backend),
	)
	if err != nil {
		panic(fmt.Sprintf("two_layer_net: %v", err))
	}
	return net
}

// NewTwoLayerNetFrom builds a network from existing parameter tensors.
//
// The tensors are used as-is (not copied). Returns an error wrapping
// tensor.ErrShapeMismatch unless W1.cols == B1.cols == W2.rows,
// W2.cols == B2.cols and both biases are single rows.
func NewTwoLayerNetFrom(w1, b1, w2, b2 *tensor.Tensor) (*TwoLayerNet, error) {
	for _, p := range []*tensor.Tensor{w1, b1, w2, b2} {
		if !p.Shape().IsMatrix() {
			return nil, &tensor.ShapeError{Op: "two_layer_net", A: w1.Shape(), B: p.Shape()}
		}
	}

	// Bias shapes are checked by NewLinear.
	_, hidden := w1.Dims()
	if w2Rows, _ := w2.Dims(); w2Rows != hidden {
		return nil, &tensor.ShapeError{Op: "two_layer_net: w2", A: w1.Shape(), B: w2.Shape()}
	}

	layer1, err := NewLinear(NewParameter(ParamW1, w1), NewParameter(ParamB1, b1))
	if err != nil {
		return nil, err
	}
	layer2, err := NewLinear(NewParameter(ParamW2, w2), NewParameter(ParamB2, b2))
	if err != nil {
		return nil, err
	}
	return &TwoLayerNet{layer1: layer1, layer2: layer2}, nil
}

// W1 returns the first layer weights (input, hidden).
func (n *TwoLayerNet) W1() *tensor.Tensor { return n.layer1.weight.Tensor() }

// B1 returns the first layer bias (1, hidden).
func (n *TwoLayerNet) B1() *tensor.Tensor { return n.layer1.bias.Tensor() }

// W2 returns the second layer weights (hidden, output).
func (n *TwoLayerNet) W2() *tensor.Tensor { return n.layer2.weight.Tensor() }

// B2 returns the second layer bias (1, output).
func (n *TwoLayerNet) B2() *tensor.Tensor { return n.layer2.bias.Tensor() }

// Sizes returns the input, hidden and output layer widths.
func (n *TwoLayerNet) Sizes() (input, hidden, output int) {
	input, hidden = n.W1().Dims()
	_, output = n.W2().Dims()
	return input, hidden, output
}

// Predict runs the forward pass.
//
// x must be (batch, input); otherwise an error wrapping
// tensor.ErrShapeMismatch is returned. The result is (batch, output) and
// every row sums to 1.
func (n *TwoLayerNet) Predict(x *tensor.Tensor) (*tensor.Tensor, error) {
	a1, err := n.layer1.Forward(x)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	z1 := Sigmoid(a1)

	a2, err := n.layer2.Forward(z1)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	return Softmax(a2), nil
}

// Forward implements Module. It is identical to Predict.
func (n *TwoLayerNet) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	return n.Predict(input)
}

// Loss returns the cross-entropy between Predict(x) and the targets t.
func (n *TwoLayerNet) Loss(x, t *tensor.Tensor) (float64, error) {
	y, err := n.Predict(x)
	if err != nil {
		return 0, err
	}
	return CrossEntropyError(y, t)
}

// Accuracy returns the fraction of rows where the arg-max of Predict(x)
// matches the arg-max of t.
func (n *TwoLayerNet) Accuracy(x, t *tensor.Tensor) (float64, error) {
	y, err := n.Predict(x)
	if err != nil {
		return 0, err
	}
	if !y.Shape().Equal(t.Shape()) {
		return 0, &tensor.ShapeError{Op: "accuracy", A: y.Shape(), B: t.Shape()}
	}

	rows, cols := y.Dims()
	if rows == 0 || cols == 0 {
		return 0, nil
	}

	correct := 0
	yData, tData := y.Data(), t.Data()
	for i := 0; i < rows; i++ {
		row := i * cols
		if floats.MaxIdx(yData[row:row+cols]) == floats.MaxIdx(tData[row:row+cols]) {
			correct++
		}
	}
	return float64(correct) / float64(rows), nil
}

// Parameters returns W1, B1, W2 and B2 in that order.
func (n *TwoLayerNet) Parameters() []*Parameter {
	return append(n.layer1.Parameters(), n.layer2.Parameters()...)
}

// Parameter returns the parameter with the given name.
func (n *TwoLayerNet) Parameter(name string) (*Parameter, bool) {
	for _, p := range n.Parameters() {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the network.
func (n *TwoLayerNet) Clone() *TwoLayerNet {
	return &TwoLayerNet{
		layer1: n.layer1.Clone(),
		layer2: n.layer2.Clone(),
	}
}

// WithParameter returns a clone of the network with one parameter replaced
// by a copy of value. The receiver is not modified.
//
// value must have the same shape as the parameter it replaces.
func (n *TwoLayerNet) WithParameter(name string, value *tensor.Tensor) (*TwoLayerNet, error) {
	current, ok := n.Parameter(name)
	if !ok {
		return nil, fmt.Errorf("unknown parameter %q", name)
	}
	if !current.Tensor().Shape().Equal(value.Shape()) {
		return nil, &tensor.ShapeError{Op: "with_parameter " + name, A: current.Tensor().Shape(), B: value.Shape()}
	}

	clone := n.Clone()
	replaced := NewParameter(name, value.Clone())
	switch name {
	case ParamW1:
		clone.layer1.weight = replaced
	case ParamB1:
		clone.layer1.bias = replaced
	case ParamW2:
		clone.layer2.weight = replaced
	case ParamB2:
		clone.layer2.bias = replaced
	}
	return clone, nil
}

// NumericalGradients estimates the gradient of Loss(x, t) with respect to
// each parameter by central finite differences.
//
// For every parameter the gradient engine evaluates a loss function that
// clones the network, substitutes the perturbed parameter, predicts and
// computes cross-entropy against t. The receiver is not modified.
//
// Cost is two forward passes per parameter element.
func (n *TwoLayerNet) NumericalGradients(x, t *tensor.Tensor) (map[string]*tensor.Tensor, error) {
	// Surface shape errors once, before the engine starts perturbing.
	if _, err := n.Loss(x, t); err != nil {
		return nil, err
	}

	grads := make(map[string]*tensor.Tensor, 4)
	for _, p := range n.Parameters() {
		name := p.Name()
		var evalErr error
		lossFn := func(w *tensor.Tensor) float64 {
			net, err := n.WithParameter(name, w)
			if err != nil {
				evalErr = err
				return 0
			}
			loss, err := net.Loss(x, t)
			if err != nil {
				evalErr = err
				return 0
			}
			return loss
		}

		g := grad.NumericalGradient(lossFn, p.Tensor())
		if evalErr != nil {
			return nil, fmt.Errorf("numerical gradient of %s: %w", name, evalErr)
		}
		grads[name] = g
	}
	return grads, nil
}
