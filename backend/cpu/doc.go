// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the reference CPU backend for tensor operations.
//
// # Overview
//
// This package implements a hand-rolled backend with:
//   - Pure Go implementation (no CGO, no third-party numerics)
//   - Naive triple-loop matrix multiplication
//   - Row broadcasting for Add and Sub
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/gradnet/backend/cpu"
//	    "github.com/born-ml/gradnet/nn"
//	    "github.com/born-ml/gradnet/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Full(2, 3, 1, backend)
//	    net := nn.NewTwoLayerNet(3, 4, 2, rand.New(rand.NewSource(42)), backend)
//	    y, err := net.Predict(x)
//	}
//
// # Performance
//
// Matrix multiplication is O(rows·cols·inner) with no blocking or SIMD.
// The backend exists as a readable reference; see backend/gonum for an
// optimized alternative with identical semantics.
//
// # Thread Safety
//
// The CPU backend is stateless and safe for concurrent use.
package cpu
