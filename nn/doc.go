// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides activations, losses and a two-layer feed-forward
// network.
//
// # Overview
//
// This package contains:
//   - Activations: Sigmoid, Softmax, ReLU, Step
//   - Loss functions: MeanSquaredError, CrossEntropyError, CrossEntropyErrorOneHot
//   - Network: TwoLayerNet (affine → sigmoid → affine → softmax)
//   - Utilities: Module interface, Parameter, Randn, Zeros
//
// Gradients are computed numerically (see package grad); there is no
// backpropagation.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/gradnet/backend/cpu"
//	    "github.com/born-ml/gradnet/nn"
//	    "github.com/born-ml/gradnet/optim"
//	    "github.com/born-ml/gradnet/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    net := nn.NewTwoLayerNet(2, 3, 2, rand.New(rand.NewSource(42)), backend)
//
//	    x, _ := tensor.FromRows([][]float64{{0.6, 0.9}}, backend)
//	    t, _ := tensor.FromRows([][]float64{{0, 1}}, backend)
//
//	    sgd := optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: 0.1})
//	    for i := 0; i < 50; i++ {
//	        grads, err := net.NumericalGradients(x, t)
//	        if err != nil {
//	            log.Fatal(err)
//	        }
//	        _ = sgd.Step(grads)
//	    }
//	}
//
// # Numerical Stability
//
// Softmax subtracts the row maximum before exponentiating, and
// cross-entropy adds Delta (1e-7) before taking the logarithm.
package nn
