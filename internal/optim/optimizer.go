// Package optim implements parameter update rules for training networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//
// Gradients are passed in by parameter name, so any gradient source works:
// gradnet computes them numerically with TwoLayerNet.NumericalGradients.
//
// Example usage:
//
//	optimizer := optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	for step := range steps {
//	    grads, err := net.NumericalGradients(x, t)
//	    if err != nil {
//	        return err
//	    }
//	    if err := optimizer.Step(grads); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"github.com/born-ml/gradnet/internal/nn"
	"github.com/born-ml/gradnet/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients attached to parameters
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies gradient updates to all parameters in place.
	//
	// grads maps parameter names to gradients of the same shape. A
	// parameter missing from grads falls back to its attached Grad();
	// parameters with neither are skipped.
	Step(grads map[string]*tensor.Tensor) error

	// ZeroGrad clears all attached parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// gradientFor returns the gradient to apply to param, or nil.
func gradientFor(param *nn.Parameter, grads map[string]*tensor.Tensor) *tensor.Tensor {
	if g, ok := grads[param.Name()]; ok && g != nil {
		return g
	}
	return param.Grad()
}

// checkShape requires an exact shape match; row broadcasting is not an
// acceptable gradient shape.
func checkShape(param *nn.Parameter, grad *tensor.Tensor) error {
	if !param.Tensor().Shape().Equal(grad.Shape()) {
		return &tensor.ShapeError{Op: "optim: " + param.Name(), A: param.Tensor().Shape(), B: grad.Shape()}
	}
	return nil
}
