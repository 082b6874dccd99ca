package nn

import (
	"github.com/born-ml/gradnet/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// Parameters are tensors updated in place by an optimizer. They typically
// represent weights and biases of layers.
//
// Example:
//
//	// Create a weight parameter
//	weight := nn.NewParameter("w1", weightTensor)
//
//	// Access the tensor
//	w := weight.Tensor()
//
//	// Attach a gradient before an optimizer step
//	weight.SetGrad(grad)
type Parameter struct {
	name   string         // Parameter name (e.g., "w1", "b1")
	tensor *tensor.Tensor // The parameter tensor
	grad   *tensor.Tensor // Gradient tensor, nil until SetGrad
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Grad returns the gradient tensor.
//
// Returns nil if no gradient has been attached.
func (p *Parameter) Grad() *tensor.Tensor {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter) SetGrad(grad *tensor.Tensor) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}

// Clone returns a parameter with the same name and a deep copy of the tensor.
// The gradient is not copied.
func (p *Parameter) Clone() *Parameter {
	return NewParameter(p.name, p.tensor.Clone())
}
