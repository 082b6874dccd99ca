// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides parameter update rules for training networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Optimizer interface for custom optimizers
//
// Gradients are supplied by parameter name, typically from
// nn.TwoLayerNet.NumericalGradients.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/gradnet/optim"
//	    "github.com/born-ml/gradnet/nn"
//	    "github.com/born-ml/gradnet/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    net := nn.NewTwoLayerNet(2, 3, 2, rand.New(rand.NewSource(42)), backend)
//
//	    sgd := optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	    grads, _ := net.NumericalGradients(x, t)
//	    if err := sgd.Step(grads); err != nil {
//	        log.Fatal(err)
//	    }
//	}
package optim
