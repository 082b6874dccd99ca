package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/gradnet/internal/tensor"
)

// SigmoidScalar computes σ(v) = 1 / (1 + exp(-v)).
//
// No clamping is applied. For very negative v, exp(-v) overflows to +Inf and
// the result is 0; for very positive v, exp(-v) underflows to 0 and the
// result is 1. Finite inputs never produce NaN.
func SigmoidScalar(v float64) float64 {
	return 1 / (1 + math.Exp(-v))
}

// ReLUScalar computes max(0, v).
func ReLUScalar(v float64) float64 {
	return math.Max(v, 0)
}

// StepScalar returns 1 if v > 0, else 0.
func StepScalar(v float64) float64 {
	if v > 0 {
		return 1
	}
	return 0
}

// Sigmoid applies σ element-wise.
//
// Sigmoid squashes values to the range (0, 1).
//
// Example:
//
//	z := nn.Sigmoid(a) // Values in range (0, 1)
func Sigmoid(x *tensor.Tensor) *tensor.Tensor {
	return x.Map(SigmoidScalar)
}

// ReLU applies max(0, x) element-wise.
func ReLU(x *tensor.Tensor) *tensor.Tensor {
	return x.Map(ReLUScalar)
}

// Step applies the Heaviside step element-wise (0 at the origin).
func Step(x *tensor.Tensor) *tensor.Tensor {
	return x.Map(StepScalar)
}

// Softmax normalizes each row (the last axis) of x into a probability
// distribution.
//
// Softmax(x_i) = exp(x_i - max) / sum_j exp(x_j - max)
//
// Subtracting the row maximum keeps every exponent <= 0, so rows with very
// large entries (e.g. all >= 1000) stay finite. Each output row sums to 1
// and every entry lies in [0, 1].
func Softmax(x *tensor.Tensor) *tensor.Tensor {
	result := x.Clone()

	shape := result.Shape()
	cols := 1
	if len(shape) > 0 {
		cols = shape[len(shape)-1]
	}
	if cols == 0 {
		return result
	}

	data := result.Data()
	for start := 0; start < len(data); start += cols {
		softmaxRow(data[start : start+cols])
	}
	return result
}

// softmaxRow applies softmax to row in place.
func softmaxRow(row []float64) {
	maxVal := floats.Max(row)
	for i, v := range row {
		row[i] = math.Exp(v - maxVal)
	}
	floats.Scale(1/floats.Sum(row), row)
}
