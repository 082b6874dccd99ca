package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (no negative dimensions).
//
// Zero-sized dimensions are allowed: an empty tensor can be constructed,
// it just cannot be indexed.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// IsMatrix reports whether the shape is 2-D.
func (s Shape) IsMatrix() bool {
	return len(s) == 2
}

// MatMulShape returns the result shape of a (M, K) @ (K, N) product.
//
// Both operands must be 2-D and the inner dimensions must agree.
func MatMulShape(a, b Shape) (Shape, error) {
	if !a.IsMatrix() || !b.IsMatrix() {
		return nil, &ShapeError{Op: "matmul", A: a, B: b}
	}
	if a[1] != b[0] {
		return nil, &ShapeError{Op: "matmul", A: a, B: b}
	}
	return Shape{a[0], b[1]}, nil
}

// AddShape checks that b can be added to a.
//
// Rules:
//  1. Identical shapes add element-wise.
//  2. If a is (R, C) and b is (1, C), b is added to every row of a.
//
// Any other combination is a shape mismatch. Unlike NumPy, broadcasting
// never changes the shape of a: the result always has a's shape.
//
// Returns a flag indicating whether row broadcasting is needed.
//
// Examples:
//
//	(3, 5) + (3, 5) → false, nil
//	(3, 5) + (1, 5) → true, nil
//	(3, 5) + (3, 1) → false, Error
//	(1, 5) + (3, 5) → false, Error
func AddShape(op string, a, b Shape) (bool, error) {
	if a.Equal(b) {
		return false, nil
	}
	if a.IsMatrix() && b.IsMatrix() && b[0] == 1 && a[1] == b[1] {
		return true, nil
	}
	return false, &ShapeError{Op: op, A: a, B: b}
}
