package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrRaggedRows    = errors.New("rows have unequal length")
)

// ShapeError describes operand shapes that are incompatible for an operation.
//
// It wraps ErrShapeMismatch, so callers can test with errors.Is.
type ShapeError struct {
	Op string // Operation name (e.g., "matmul", "add")
	A  Shape  // Left operand shape
	B  Shape  // Right operand shape
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v vs %v: %v", e.Op, e.A, e.B, ErrShapeMismatch)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
