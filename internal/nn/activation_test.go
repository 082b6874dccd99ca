package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradnet/internal/backend/cpu"
	"github.com/born-ml/gradnet/internal/tensor"
)

func TestSigmoidScalar(t *testing.T) {
	assert.Equal(t, 0.5, SigmoidScalar(0))
	assert.InDelta(t, 0.7310585786300049, SigmoidScalar(1), 1e-15)
	assert.InDelta(t, 0.2689414213699951, SigmoidScalar(-1), 1e-15)

	// Symmetry: sigmoid(-x) = 1 - sigmoid(x)
	for _, x := range []float64{0.1, 2, 7.5} {
		assert.InDelta(t, 1-SigmoidScalar(x), SigmoidScalar(-x), 1e-12)
	}
}

func TestSigmoid_Range(t *testing.T) {
	x, err := tensor.FromRows([][]float64{{-10, -1, 0}, {1, 10, 30}}, cpu.New())
	require.NoError(t, err)

	y := Sigmoid(x)
	require.Equal(t, x.Shape(), y.Shape())
	for _, v := range y.Data() {
		assert.Greater(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	assert.Equal(t, 0.5, y.At(0, 2))

	// Input untouched.
	assert.Equal(t, -10.0, x.At(0, 0))
}

func TestReLU(t *testing.T) {
	assert.Equal(t, 0.0, ReLUScalar(-3))
	assert.Equal(t, 0.0, ReLUScalar(0))
	assert.Equal(t, 2.5, ReLUScalar(2.5))

	x, err := tensor.FromRows([][]float64{{-1, 0, 1}, {2, -2, 3}}, cpu.New())
	require.NoError(t, err)

	y := ReLU(x)
	assert.Equal(t, [][]float64{{0, 0, 1}, {2, 0, 3}}, y.Rows())
}

func TestStep(t *testing.T) {
	assert.Equal(t, 0.0, StepScalar(-0.1))
	assert.Equal(t, 0.0, StepScalar(0))
	assert.Equal(t, 1.0, StepScalar(0.1))

	x, err := tensor.FromRows([][]float64{{-1, 0, 1}}, cpu.New())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0, 1}}, Step(x).Rows())
}

func TestSoftmax_RowsSumToOne(t *testing.T) {
	x, err := tensor.FromRows([][]float64{
		{0.3, 2.9, 4.0},
		{-1, 0, 1},
		{5, 5, 5},
	}, cpu.New())
	require.NoError(t, err)

	y := Softmax(x)
	require.Equal(t, x.Shape(), y.Shape())
	for _, row := range y.Rows() {
		var sum float64
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-10)
	}
}

func TestSoftmax_Uniform(t *testing.T) {
	x := tensor.Full(1, 3, 2, cpu.New())

	y := Softmax(x)
	for _, v := range y.Data() {
		assert.InDelta(t, 1.0/3.0, v, 1e-12)
	}
}

func TestSoftmax_LargeInputsStayFinite(t *testing.T) {
	x, err := tensor.FromRows([][]float64{{1000, 1001, 1002}}, cpu.New())
	require.NoError(t, err)

	y := Softmax(x)
	var sum float64
	for _, v := range y.Data() {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "softmax produced %v", v)
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-10)

	// Shift invariance: same result as [0, 1, 2].
	small, err := tensor.FromRows([][]float64{{0, 1, 2}}, cpu.New())
	require.NoError(t, err)
	assert.True(t, Softmax(small).AllClose(y, 1e-12))
}

func TestSoftmax_DoesNotModifyInput(t *testing.T) {
	x, err := tensor.FromRows([][]float64{{1, 2}}, cpu.New())
	require.NoError(t, err)

	_ = Softmax(x)
	assert.Equal(t, []float64{1, 2}, x.Data())
}
