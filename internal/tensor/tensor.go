package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Tensor is a dense float64 array bound to a compute backend.
//
// A 2-D Tensor is the Matrix abstraction: Dot, Add and Dims are defined on
// it. Element-wise operations (Map, Scale, Sum) work for any rank.
//
// Every operation returns a new Tensor that owns its memory; operands are
// never modified.
//
// Example:
//
//	backend := cpu.New()
//	a, _ := tensor.FromRows([][]float64{{1, 2}, {3, 4}}, backend)
//	b, _ := tensor.FromRows([][]float64{{5, 6}, {7, 8}}, backend)
//	c, err := a.Dot(b) // [[19, 22], [43, 50]]
type Tensor struct {
	raw     *RawTensor
	backend Backend
}

// New creates a Tensor from a RawTensor and backend.
func New(raw *RawTensor, b Backend) *Tensor {
	return &Tensor{
		raw:     raw,
		backend: b,
	}
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.raw.Shape()
}

// Dims returns the number of rows and columns of a 2-D tensor.
// Panics if the tensor is not 2-D.
func (t *Tensor) Dims() (rows, cols int) {
	shape := t.Shape()
	if !shape.IsMatrix() {
		panic(fmt.Sprintf("Dims() only works for 2-D tensors, got shape %v", shape))
	}
	return shape[0], shape[1]
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
// Used by backend implementations for low-level operations.
func (t *Tensor) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor) Backend() Backend {
	return t.backend
}

// Data returns the tensor's elements in row-major order.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float64 {
	return t.raw.Data()
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	t := tensor.Full(3, 4, 0, backend)
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor) At(indices ...int) float64 {
	return t.raw.Data()[t.raw.Offset(indices...)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) Set(value float64, indices ...int) {
	t.raw.Data()[t.raw.Offset(indices...)] = value
}

// Row returns a copy of row i of a 2-D tensor.
func (t *Tensor) Row(i int) []float64 {
	_, cols := t.Dims()
	start := t.raw.Offset(i, 0)
	row := make([]float64, cols)
	copy(row, t.Data()[start:start+cols])
	return row
}

// Rows returns a copy of the tensor as a slice of rows.
func (t *Tensor) Rows() [][]float64 {
	rows, _ := t.Dims()
	out := make([][]float64, rows)
	for i := range out {
		out[i] = t.Row(i)
	}
	return out
}

// Clone returns a deep copy of the tensor on the same backend.
func (t *Tensor) Clone() *Tensor {
	return New(t.raw.Clone(), t.backend)
}

// Map returns a new tensor with f applied to every element.
// The receiver is not modified.
func (t *Tensor) Map(f func(float64) float64) *Tensor {
	return New(t.backend.Map(t.raw, f), t.backend)
}

// Scale returns a new tensor with every element multiplied by s.
func (t *Tensor) Scale(s float64) *Tensor {
	return t.Map(func(v float64) float64 { return v * s })
}

// Dot computes the matrix product t @ other.
//
// Requires both tensors to be 2-D with t.cols == other.rows, otherwise
// returns an error wrapping ErrShapeMismatch.
func (t *Tensor) Dot(other *Tensor) (*Tensor, error) {
	if _, err := MatMulShape(t.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	raw, err := t.backend.MatMul(t.raw, other.raw)
	if err != nil {
		return nil, err
	}
	return New(raw, t.backend), nil
}

// Add returns t + other.
//
// Shapes must match exactly, or other must be a single row with t's column
// count, in which case it is added to every row of t.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	if _, err := AddShape("add", t.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	raw, err := t.backend.Add(t.raw, other.raw)
	if err != nil {
		return nil, err
	}
	return New(raw, t.backend), nil
}

// Sub returns t - other with the same shape rules as Add.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	if _, err := AddShape("sub", t.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	raw, err := t.backend.Sub(t.raw, other.raw)
	if err != nil {
		return nil, err
	}
	return New(raw, t.backend), nil
}

// Sum returns the sum of all elements.
func (t *Tensor) Sum() float64 {
	var sum float64
	for _, v := range t.Data() {
		sum += v
	}
	return sum
}

// AllClose reports whether other has the same shape and every element is
// within tol of the corresponding element of t.
func (t *Tensor) AllClose(other *Tensor, tol float64) bool {
	if !t.Shape().Equal(other.Shape()) {
		return false
	}
	b := other.Data()
	for i, v := range t.Data() {
		if math.Abs(v-b[i]) > tol {
			return false
		}
	}
	return true
}

// String formats the tensor for debugging. 2-D tensors print one row per line.
func (t *Tensor) String() string {
	shape := t.Shape()
	if !shape.IsMatrix() {
		return fmt.Sprintf("Tensor%v%v", shape, t.Data())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor%v[", shape)
	rows, _ := t.Dims()
	for i := 0; i < rows; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", t.Row(i))
	}
	sb.WriteString("]")
	return sb.String()
}
