// Package train runs the example-level training loop: numerical gradients
// for every parameter followed by a fixed learning-rate SGD update.
package train

import (
	"context"
	"fmt"
	"log"

	"github.com/born-ml/gradnet/internal/nn"
	"github.com/born-ml/gradnet/internal/optim"
	"github.com/born-ml/gradnet/internal/tensor"
)

// Config controls Run. The zero value is not runnable; start from
// DefaultConfig.
type Config struct {
	Steps        int         // Number of update steps; 0 only evaluates the loss
	LearningRate float64     // SGD learning rate; must be positive
	LogEvery     int         // Log loss every N steps; 0 disables
	Logger       *log.Logger // Destination for progress lines; nil is silent
}

// DefaultConfig returns the configuration of the reference training example.
func DefaultConfig() Config {
	return Config{
		Steps:        50,
		LearningRate: 0.1,
		LogEvery:     10,
	}
}

// History records the loss trajectory of a run.
type History struct {
	Losses []float64 // Loss before each step
	Final  float64   // Loss after the last step
}

// Initial returns the loss before the first step.
func (h *History) Initial() float64 {
	if len(h.Losses) == 0 {
		return h.Final
	}
	return h.Losses[0]
}

// Improved reports whether the final loss is below the initial one.
func (h *History) Improved() bool {
	return h.Final < h.Initial()
}

// Run trains net on (x, t) for cfg.Steps steps.
//
// Each step computes the loss, estimates gradients for w1, b1, w2 and b2
// with the numerical engine and applies param -= lr * grad in place. There
// is no momentum, regularization or convergence check.
//
// ctx is checked between steps; a step in progress always completes. On
// cancellation the partial history is returned together with ctx.Err().
func Run(ctx context.Context, net *nn.TwoLayerNet, x, t *tensor.Tensor, cfg Config) (*History, error) {
	if cfg.Steps < 0 {
		return nil, fmt.Errorf("train: negative step count %d", cfg.Steps)
	}
	if cfg.LearningRate <= 0 {
		return nil, fmt.Errorf("train: learning rate must be positive, got %g", cfg.LearningRate)
	}

	optimizer := optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: cfg.LearningRate})
	history := &History{Losses: make([]float64, 0, cfg.Steps)}

	for step := 0; step < cfg.Steps; step++ {
		if err := ctx.Err(); err != nil {
			return finish(history, net, x, t, err)
		}

		loss, err := net.Loss(x, t)
		if err != nil {
			return nil, fmt.Errorf("train: step %d: %w", step, err)
		}
		history.Losses = append(history.Losses, loss)

		if cfg.Logger != nil && cfg.LogEvery > 0 && step%cfg.LogEvery == 0 {
			cfg.Logger.Printf("step %d: loss %.6f", step, loss)
		}

		grads, err := net.NumericalGradients(x, t)
		if err != nil {
			return nil, fmt.Errorf("train: step %d: %w", step, err)
		}
		if err := optimizer.Step(grads); err != nil {
			return nil, fmt.Errorf("train: step %d: %w", step, err)
		}
	}

	history, err := finish(history, net, x, t, nil)
	if err == nil && cfg.Logger != nil {
		cfg.Logger.Printf("final loss %.6f after %d steps", history.Final, len(history.Losses))
	}
	return history, err
}

// finish records the final loss and returns cause, if any.
func finish(history *History, net *nn.TwoLayerNet, x, t *tensor.Tensor, cause error) (*History, error) {
	loss, err := net.Loss(x, t)
	if err != nil {
		return nil, fmt.Errorf("train: final loss: %w", err)
	}
	history.Final = loss
	return history, cause
}
