package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/gradnet/internal/tensor"
)

// Delta is added to predictions before taking the logarithm in
// cross-entropy, so that log(0) is never evaluated.
const Delta = 1e-7

// MeanSquaredError computes the mean of (y - t)² over all elements.
//
// y and t must have identical shapes; otherwise an error wrapping
// tensor.ErrShapeMismatch is returned.
func MeanSquaredError(y, t *tensor.Tensor) (float64, error) {
	if err := sameShape("mean_squared_error", y, t); err != nil {
		return 0, err
	}
	if y.NumElements() == 0 {
		return 0, nil
	}

	diff := make([]float64, y.NumElements())
	floats.SubTo(diff, y.Data(), t.Data())
	return floats.Dot(diff, diff) / float64(len(diff)), nil
}

// CrossEntropyError computes
//
//	-mean_over_rows( sum_over_cols( t * ln(y + Delta) ) )
//
// y holds predicted probabilities and t the targets, both (batch, classes).
// Shapes must be identical.
func CrossEntropyError(y, t *tensor.Tensor) (float64, error) {
	if err := sameShape("cross_entropy_error", y, t); err != nil {
		return 0, err
	}

	rows := batchSize(y)
	if rows == 0 {
		return 0, nil
	}

	var sum float64
	tData := t.Data()
	for i, v := range y.Data() {
		sum += tData[i] * math.Log(v+Delta)
	}
	return -sum / float64(rows), nil
}

// CrossEntropyErrorOneHot is a fast path of CrossEntropyError for one-hot
// targets: it only evaluates ln(y + Delta) where t == 1.
//
// Precondition: every row of t contains exactly one 1.0 and zeros
// elsewhere (see IsOneHot). For such t the result equals
// CrossEntropyError(y, t) up to floating-point rounding. For other targets
// (soft labels, rows with zero or several ones) the result is a different
// quantity and must not be used as a cross-entropy.
func CrossEntropyErrorOneHot(y, t *tensor.Tensor) (float64, error) {
	if err := sameShape("cross_entropy_error_one_hot", y, t); err != nil {
		return 0, err
	}

	rows := batchSize(y)
	if rows == 0 {
		return 0, nil
	}

	var sum float64
	yData := y.Data()
	for i, v := range t.Data() {
		if v == 1.0 {
			sum += math.Log(yData[i] + Delta)
		}
	}
	return -sum / float64(rows), nil
}

// IsOneHot reports whether every row of t contains exactly one 1.0 and
// zeros elsewhere.
func IsOneHot(t *tensor.Tensor) bool {
	shape := t.Shape()
	if len(shape) == 0 {
		return false
	}
	cols := shape[len(shape)-1]
	if cols == 0 {
		return false
	}

	data := t.Data()
	for start := 0; start < len(data); start += cols {
		ones := 0
		for _, v := range data[start : start+cols] {
			switch v {
			case 1:
				ones++
			case 0:
			default:
				return false
			}
		}
		if ones != 1 {
			return false
		}
	}
	return true
}

// sameShape checks that y and t have identical shapes.
func sameShape(op string, y, t *tensor.Tensor) error {
	if !y.Shape().Equal(t.Shape()) {
		return &tensor.ShapeError{Op: op, A: y.Shape(), B: t.Shape()}
	}
	return nil
}

// batchSize returns the number of rows: the first dimension of a 2-D or
// higher tensor, or 1 for a 1-D tensor.
func batchSize(y *tensor.Tensor) int {
	shape := y.Shape()
	if len(shape) < 2 {
		if y.NumElements() == 0 {
			return 0
		}
		return 1
	}
	return shape[0]
}
