// Package grad computes derivatives by central finite differences.
//
// No computation graph is recorded: every partial derivative costs two
// evaluations of the target function. The engine works on tensors of any
// rank and never mutates its input.
package grad

import (
	"github.com/born-ml/gradnet/internal/tensor"
)

// H is the perturbation used for central differences.
const H = 1e-4

// NumericalDiff returns (f(x+H) - f(x-H)) / 2H.
func NumericalDiff(f func(float64) float64, x float64) float64 {
	return (f(x+H) - f(x-H)) / (2 * H)
}

// NumericalGradient returns the gradient of f at x.
//
// For each element of x, in row-major order, two fresh copies of x are
// built with that element shifted by +H and -H. The partial derivative is
// (f(x+H) - f(x-H)) / 2H. The result has the shape and backend of x.
//
// x is never modified and no state is shared between elements, so f may
// keep a reference to the tensor it receives.
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
//	g := grad.NumericalGradient(sumSquares, x) // 2x
func NumericalGradient(f func(*tensor.Tensor) float64, x *tensor.Tensor) *tensor.Tensor {
	g := tensor.Zeros(x.Shape(), x.Backend())
	out := g.Data()

	for i := range out {
		plus := x.Clone()
		plus.Data()[i] += H
		fPlus := f(plus)

		minus := x.Clone()
		minus.Data()[i] -= H
		fMinus := f(minus)

		out[i] = (fPlus - fMinus) / (2 * H)
	}
	return g
}
