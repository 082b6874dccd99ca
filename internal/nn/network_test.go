package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradnet/internal/backend/cpu"
	"github.com/born-ml/gradnet/internal/tensor"
)

func newTestNet(t *testing.T) *TwoLayerNet {
	t.Helper()
	return NewTwoLayerNet(2, 3, 2, rand.New(rand.NewSource(42)), cpu.New())
}

func TestNewTwoLayerNet_Shapes(t *testing.T) {
	net := NewTwoLayerNet(4, 5, 3, rand.New(rand.NewSource(1)), cpu.New())

	assert.Equal(t, tensor.Shape{4, 5}, net.W1().Shape())
	assert.Equal(t, tensor.Shape{1, 5}, net.B1().Shape())
	assert.Equal(t, tensor.Shape{5, 3}, net.W2().Shape())
	assert.Equal(t, tensor.Shape{1, 3}, net.B2().Shape())

	assert.Equal(t, 0.0, net.B1().Sum())
	assert.Equal(t, 0.0, net.B2().Sum())

	in, hidden, out := net.Sizes()
	assert.Equal(t, []int{4, 5, 3}, []int{in, hidden, out})

	names := make([]string, 0, 4)
	for _, p := range net.Parameters() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{ParamW1, ParamB1, ParamW2, ParamB2}, names)
}

func TestNewTwoLayerNet_Deterministic(t *testing.T) {
	a := NewTwoLayerNet(3, 4, 2, rand.New(rand.NewSource(7)), cpu.New())
	b := NewTwoLayerNet(3, 4, 2, rand.New(rand.NewSource(7)), cpu.New())

	assert.Equal(t, a.W1().Data(), b.W1().Data())
	assert.Equal(t, a.W2().Data(), b.W2().Data())
}

func TestNewTwoLayerNetFrom(t *testing.T) {
	backend := cpu.New()
	w1 := tensor.Zeros(tensor.Shape{2, 3}, backend)
	b1 := tensor.Zeros(tensor.Shape{1, 3}, backend)
	w2 := tensor.Zeros(tensor.Shape{3, 2}, backend)
	b2 := tensor.Zeros(tensor.Shape{1, 2}, backend)

	net, err := NewTwoLayerNetFrom(w1, b1, w2, b2)
	require.NoError(t, err)
	assert.Same(t, w1, net.W1())

	_, err = NewTwoLayerNetFrom(w1, tensor.Zeros(tensor.Shape{1, 4}, backend), w2, b2)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = NewTwoLayerNetFrom(w1, b1, tensor.Zeros(tensor.Shape{4, 2}, backend), b2)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = NewTwoLayerNetFrom(w1, b1, w2, tensor.Zeros(tensor.Shape{2, 2}, backend))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	// Bias errors come from the layer constructor and name the layer.
	_, err = NewTwoLayerNetFrom(w1, tensor.Zeros(tensor.Shape{1, 4}, backend), w2, b2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "linear w1/b1")
}

func TestPredict(t *testing.T) {
	net := newTestNet(t)
	x, err := tensor.FromRows([][]float64{{0.6, 0.9}, {0.1, -0.4}}, cpu.New())
	require.NoError(t, err)

	y, err := net.Predict(x)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{2, 2}, y.Shape())

	for _, row := range y.Rows() {
		var sum float64
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-6)
	}
}

func TestPredict_ShapeMismatch(t *testing.T) {
	net := newTestNet(t)
	x := tensor.Full(1, 3, 0.5, cpu.New())

	_, err := net.Predict(x)
	require.Error(t, err)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestPredict_KnownWeights(t *testing.T) {
	backend := cpu.New()
	// Zero weights: sigmoid(0) = 0.5 everywhere, logits equal, uniform output.
	net, err := NewTwoLayerNetFrom(
		tensor.Zeros(tensor.Shape{2, 3}, backend),
		tensor.Zeros(tensor.Shape{1, 3}, backend),
		tensor.Zeros(tensor.Shape{3, 2}, backend),
		tensor.Zeros(tensor.Shape{1, 2}, backend),
	)
	require.NoError(t, err)

	x, err := tensor.FromRows([][]float64{{0.6, 0.9}}, backend)
	require.NoError(t, err)
	y, err := net.Predict(x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, y.Data(), 1e-12)

	target, err := tensor.FromRows([][]float64{{0, 1}}, backend)
	require.NoError(t, err)
	loss, err := net.Loss(x, target)
	require.NoError(t, err)
	assert.InDelta(t, -math.Log(0.5+Delta), loss, 1e-12)
}

func TestAccuracy(t *testing.T) {
	backend := cpu.New()
	// W2 favors class 1 for every input.
	w2, err := tensor.FromRows([][]float64{{0, 5}, {0, 5}}, backend)
	require.NoError(t, err)
	net, err := NewTwoLayerNetFrom(
		tensor.Zeros(tensor.Shape{2, 2}, backend),
		tensor.Zeros(tensor.Shape{1, 2}, backend),
		w2,
		tensor.Zeros(tensor.Shape{1, 2}, backend),
	)
	require.NoError(t, err)

	x := tensor.Full(4, 2, 1, backend)
	target, err := tensor.FromRows([][]float64{{0, 1}, {0, 1}, {1, 0}, {0, 1}}, backend)
	require.NoError(t, err)

	acc, err := net.Accuracy(x, target)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, acc, 1e-12)
}

func TestClone_IsDeep(t *testing.T) {
	net := newTestNet(t)
	clone := net.Clone()

	clone.W1().Set(123, 0, 0)
	assert.NotEqual(t, 123.0, net.W1().At(0, 0))
}

func TestWithParameter(t *testing.T) {
	net := newTestNet(t)
	before := net.B2().Clone()

	value := tensor.Full(1, 2, 3, cpu.New())
	replaced, err := net.WithParameter(ParamB2, value)
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 3}, replaced.B2().Data())
	assert.True(t, net.B2().AllClose(before, 0), "receiver must not change")
	assert.Equal(t, net.W1().Data(), replaced.W1().Data())

	value.Set(-1, 0, 0)
	assert.Equal(t, 3.0, replaced.B2().At(0, 0), "value must be copied")

	_, err = net.WithParameter(ParamB2, tensor.Full(1, 3, 0, cpu.New()))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = net.WithParameter("w3", value)
	assert.Error(t, err)
}

func TestNumericalGradients(t *testing.T) {
	net := newTestNet(t)
	backend := cpu.New()
	x, err := tensor.FromRows([][]float64{{0.6, 0.9}}, backend)
	require.NoError(t, err)
	target, err := tensor.FromRows([][]float64{{0, 1}}, backend)
	require.NoError(t, err)

	w1Before := net.W1().Clone()

	grads, err := net.NumericalGradients(x, target)
	require.NoError(t, err)
	require.Len(t, grads, 4)

	for _, p := range net.Parameters() {
		g, ok := grads[p.Name()]
		require.True(t, ok, "missing gradient for %s", p.Name())
		assert.Equal(t, p.Tensor().Shape(), g.Shape())
	}

	// For softmax + cross-entropy, dL/dB2 = (y - t) / batch.
	y, err := net.Predict(x)
	require.NoError(t, err)
	want, err := y.Sub(target)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want.Data(), grads[ParamB2].Data(), 1e-4)

	assert.True(t, net.W1().AllClose(w1Before, 0), "network must not change")
}

func TestNumericalGradients_ShapeMismatch(t *testing.T) {
	net := newTestNet(t)
	x := tensor.Full(1, 2, 0.5, cpu.New())
	target := tensor.Full(1, 3, 0, cpu.New())

	_, err := net.NumericalGradients(x, target)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}
