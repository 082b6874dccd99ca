// Package gonum implements a tensor backend on top of gonum's dense matrix
// and float slice routines.
//
// It satisfies the same tensor.Backend capability set as the reference CPU
// backend and exists to cross-check results and performance against it.
package gonum

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gradnet/internal/tensor"
)

// GonumBackend implements tensor operations with gonum/mat and gonum/floats.
type GonumBackend struct{}

// New creates a new gonum backend.
func New() *GonumBackend {
	return &GonumBackend{}
}

// Name returns the backend name.
func (g *GonumBackend) Name() string {
	return "Gonum"
}

// MatMul performs (M, K) @ (K, N) -> (M, N) with mat.Dense.Mul.
//
// mat.Dense cannot represent zero-sized matrices, so empty products are
// returned as zero-filled results without calling into gonum.
func (g *GonumBackend) MatMul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	outShape, err := tensor.MatMulShape(a.Shape(), b.Shape())
	if err != nil {
		return nil, err
	}

	result, err := tensor.NewRaw(outShape)
	if err != nil {
		return nil, err
	}

	m, k := a.Shape()[0], a.Shape()[1]
	n := b.Shape()[1]
	if m == 0 || n == 0 || k == 0 {
		return result, nil
	}

	// NewDense wraps the backing slices without copying; Mul writes
	// straight into the result buffer.
	lhs := mat.NewDense(m, k, a.Data())
	rhs := mat.NewDense(k, n, b.Data())
	dst := mat.NewDense(m, n, result.Data())
	dst.Mul(lhs, rhs)

	return result, nil
}

// Add performs element-wise addition, broadcasting a single row of b over a.
func (g *GonumBackend) Add(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return g.binary("add", a, b, floats.AddTo)
}

// Sub performs element-wise subtraction, broadcasting a single row of b over a.
func (g *GonumBackend) Sub(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return g.binary("sub", a, b, floats.SubTo)
}

// binary dispatches an element-wise gonum kernel over whole buffers or row by row.
func (g *GonumBackend) binary(
	op string,
	a, b *tensor.RawTensor,
	kernel func(dst, s, t []float64) []float64,
) (*tensor.RawTensor, error) {
	needsBroadcast, err := tensor.AddShape(op, a.Shape(), b.Shape())
	if err != nil {
		return nil, err
	}

	result, err := tensor.NewRaw(a.Shape())
	if err != nil {
		return nil, err
	}
	if result.NumElements() == 0 {
		return result, nil
	}

	if !needsBroadcast {
		kernel(result.Data(), a.Data(), b.Data())
		return result, nil
	}

	rows, cols := a.Shape()[0], a.Shape()[1]
	dst := result.Data()
	src := a.Data()
	row := b.Data()
	for i := 0; i < rows; i++ {
		kernel(dst[i*cols:(i+1)*cols], src[i*cols:(i+1)*cols], row)
	}

	return result, nil
}

// Map applies f to every element of x and returns a new tensor.
// 2-D inputs go through mat.Dense.Apply; other ranks use a flat loop.
func (g *GonumBackend) Map(x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	shape := x.Shape()
	result, err := tensor.NewRaw(shape)
	if err != nil {
		panic(err) // x already has a valid shape
	}

	if shape.IsMatrix() && shape[0] > 0 && shape[1] > 0 {
		src := mat.NewDense(shape[0], shape[1], x.Data())
		dst := mat.NewDense(shape[0], shape[1], result.Data())
		dst.Apply(func(_, _ int, v float64) float64 { return f(v) }, src)
		return result
	}

	dst := result.Data()
	for i, v := range x.Data() {
		dst[i] = f(v)
	}
	return result
}
