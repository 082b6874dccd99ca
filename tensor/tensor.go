// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/born-ml/gradnet/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} is a matrix with 2 rows and 3 columns.
type Shape = tensor.Shape

// Tensor is a dense float64 array bound to a compute backend.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Full(2, 3, 0.5, backend)
//	y := x.Scale(2) // all ones
type Tensor = tensor.Tensor

// ShapeError describes operand shapes that are incompatible for an
// operation. It wraps ErrShapeMismatch.
type ShapeError = tensor.ShapeError

// Common errors.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrRaggedRows    = tensor.ErrRaggedRows
)

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{2, 3}, backend)
func Zeros(shape Shape, b Backend) *Tensor {
	return tensor.Zeros(shape, b)
}

// Full creates a rows×cols matrix with every element equal to fill.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Full(2, 3, 3.14, backend)
func Full(rows, cols int, fill float64, b Backend) *Tensor {
	return tensor.Full(rows, cols, fill, b)
}

// FromSlice creates a tensor from a Go slice. The data is copied.
//
// Example:
//
//	backend := cpu.New()
//	data := []float64{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice(data []float64, shape Shape, b Backend) (*Tensor, error) {
	return tensor.FromSlice(data, shape, b)
}

// FromRows creates a matrix from equal-length rows. Ragged input fails
// with an error wrapping ErrRaggedRows.
func FromRows(rows [][]float64, b Backend) (*Tensor, error) {
	return tensor.FromRows(rows, b)
}

// Randn creates a tensor with values drawn from N(0, 1) using rng.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	x := tensor.Randn(tensor.Shape{2, 3}, rng, backend)
func Randn(shape Shape, rng *rand.Rand, b Backend) *Tensor {
	return tensor.Randn(shape, rng, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Full, or FromRows instead.
func New(raw *RawTensor, b Backend) *Tensor {
	return tensor.New(raw, b)
}
