// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grad computes derivatives by central finite differences.
//
// Example:
//
//	sumSquares := func(t *tensor.Tensor) float64 {
//	    var s float64
//	    for _, v := range t.Data() {
//	        s += v * v
//	    }
//	    return s
//	}
//	x, _ := tensor.FromSlice([]float64{3, 4}, tensor.Shape{2}, cpu.New())
//	g := grad.NumericalGradient(sumSquares, x) // ≈ [6 8]
package grad

import (
	"github.com/born-ml/gradnet/internal/grad"
	"github.com/born-ml/gradnet/tensor"
)

// H is the perturbation used for central differences.
const H = grad.H

// NumericalDiff returns the central-difference derivative of f at x.
func NumericalDiff(f func(float64) float64, x float64) float64 {
	return grad.NumericalDiff(f, x)
}

// NumericalGradient returns the gradient of f at x, for tensors of any
// rank. x is never modified.
func NumericalGradient(f func(*tensor.Tensor) float64, x *tensor.Tensor) *tensor.Tensor {
	return grad.NumericalGradient(f, x)
}
