package optim

import (
	"github.com/born-ml/gradnet/internal/nn"
	"github.com/born-ml/gradnet/internal/tensor"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: 0.1})
//	grads, _ := net.NumericalGradients(x, t)
//	_ = optimizer.Step(grads)
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter]*tensor.Tensor
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over params.
//
// Parameters are updated in place; the optimizer never replaces or resizes
// their tensors.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]*tensor.Tensor),
	}
}

// Step performs a single optimization step.
//
// Every gradient is shape-checked before any parameter changes, so a
// mismatch (wrapping tensor.ErrShapeMismatch) leaves all parameters intact.
func (s *SGD) Step(grads map[string]*tensor.Tensor) error {
	type update struct {
		param *nn.Parameter
		grad  *tensor.Tensor
	}

	updates := make([]update, 0, len(s.params))
	for _, param := range s.params {
		grad := gradientFor(param, grads)
		if grad == nil {
			continue
		}
		if err := checkShape(param, grad); err != nil {
			return err
		}
		updates = append(updates, update{param: param, grad: grad})
	}

	for _, u := range updates {
		if s.momentum == 0 {
			s.updateParameter(u.param, u.grad)
		} else {
			s.updateParameterWithMomentum(u.param, u.grad)
		}
	}
	return nil
}

// updateParameter performs simple SGD update without momentum.
func (s *SGD) updateParameter(param *nn.Parameter, grad *tensor.Tensor) {
	data := param.Tensor().Data()
	for i, g := range grad.Data() {
		data[i] -= s.lr * g
	}
}

// updateParameterWithMomentum performs SGD update with momentum.
func (s *SGD) updateParameterWithMomentum(param *nn.Parameter, grad *tensor.Tensor) {
	velocity, exists := s.velocities[param]
	if !exists {
		velocity = tensor.Zeros(param.Tensor().Shape(), param.Tensor().Backend())
		s.velocities[param] = velocity
	}

	v := velocity.Data()
	data := param.Tensor().Data()
	for i, g := range grad.Data() {
		v[i] = s.momentum*v[i] + g
		data[i] -= s.lr * v[i]
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
