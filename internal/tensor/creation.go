package tensor

import (
	"fmt"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros(Shape{3, 4}, backend)
func Zeros(shape Shape, b Backend) *Tensor {
	raw, err := NewRaw(shape)
	if err != nil {
		panic(err) // Negative dimensions are a programming error
	}

	// Data is already zero-initialized by make()
	return New(raw, b)
}

// Full creates a rows×cols tensor with every element equal to fill.
//
// Construction never fails for non-negative sizes; a tensor with a zero
// dimension is simply empty.
//
// Example:
//
//	t := tensor.Full(2, 3, 0.5, backend)
func Full(rows, cols int, fill float64, b Backend) *Tensor {
	t := Zeros(Shape{rows, cols}, b)
	if fill != 0 {
		data := t.Data()
		for i := range data {
			data[i] = fill
		}
	}
	return t
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape, b Backend) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	raw, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}

	copy(raw.Data(), data)
	return New(raw, b), nil
}

// FromRows creates a 2-D tensor from an ordered sequence of rows.
//
// All rows must have the same length; a ragged input returns an error
// wrapping ErrRaggedRows. An empty input produces a 0×0 tensor.
func FromRows(rows [][]float64, b Backend) (*Tensor, error) {
	if len(rows) == 0 {
		return Zeros(Shape{0, 0}, b), nil
	}

	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), cols, ErrRaggedRows)
		}
	}

	t := Zeros(Shape{len(rows), cols}, b)
	data := t.Data()
	for i, row := range rows {
		copy(data[i*cols:(i+1)*cols], row)
	}
	return t, nil
}

// Randn creates a tensor with values drawn from the standard normal
// distribution N(0, 1) using rng.
//
// Passing a seeded *rand.Rand makes the result reproducible.
func Randn(shape Shape, rng *rand.Rand, b Backend) *Tensor {
	t := Zeros(shape, b)
	data := t.Data()
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return t
}
