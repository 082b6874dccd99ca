package train

import (
	"bytes"
	"context"
	"log"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradnet/internal/backend/cpu"
	"github.com/born-ml/gradnet/internal/backend/gonum"
	"github.com/born-ml/gradnet/internal/nn"
	"github.com/born-ml/gradnet/internal/tensor"
)

func exampleData(t *testing.T, backend tensor.Backend) (x, target *tensor.Tensor) {
	t.Helper()
	x, err := tensor.FromRows([][]float64{{0.6, 0.9}}, backend)
	require.NoError(t, err)
	target, err = tensor.FromRows([][]float64{{0, 1}}, backend)
	require.NoError(t, err)
	return x, target
}

func TestRun_LossDecreases(t *testing.T) {
	backends := []tensor.Backend{cpu.New(), gonum.New()}

	for _, backend := range backends {
		t.Run(backend.Name(), func(t *testing.T) {
			net := nn.NewTwoLayerNet(2, 3, 2, rand.New(rand.NewSource(42)), backend)
			x, target := exampleData(t, backend)

			cfg := DefaultConfig()
			history, err := Run(context.Background(), net, x, target, cfg)
			require.NoError(t, err)

			assert.Len(t, history.Losses, cfg.Steps)
			assert.Less(t, history.Final, history.Initial())
			assert.True(t, history.Improved())
		})
	}
}

func TestRun_Logging(t *testing.T) {
	backend := cpu.New()
	net := nn.NewTwoLayerNet(2, 3, 2, rand.New(rand.NewSource(1)), backend)
	x, target := exampleData(t, backend)

	var buf bytes.Buffer
	cfg := Config{Steps: 5, LearningRate: 0.1, LogEvery: 2, Logger: log.New(&buf, "", 0)}
	_, err := Run(context.Background(), net, x, target, cfg)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// Steps 0, 2, 4 and the final line.
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "step 0: loss "))
	assert.True(t, strings.HasPrefix(lines[3], "final loss "))
}

func TestRun_Canceled(t *testing.T) {
	backend := cpu.New()
	net := nn.NewTwoLayerNet(2, 3, 2, rand.New(rand.NewSource(1)), backend)
	x, target := exampleData(t, backend)
	before := net.W1().Clone()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	history, err := Run(ctx, net, x, target, DefaultConfig())
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, history)
	assert.Empty(t, history.Losses)
	assert.True(t, net.W1().AllClose(before, 0))
}

func TestRun_ShapeMismatch(t *testing.T) {
	backend := cpu.New()
	net := nn.NewTwoLayerNet(2, 3, 2, rand.New(rand.NewSource(1)), backend)
	x := tensor.Full(1, 4, 0.5, backend)
	target := tensor.Full(1, 2, 0, backend)

	_, err := Run(context.Background(), net, x, target, DefaultConfig())
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestRun_ZeroSteps(t *testing.T) {
	backend := cpu.New()
	net := nn.NewTwoLayerNet(2, 3, 2, rand.New(rand.NewSource(1)), backend)
	x, target := exampleData(t, backend)

	history, err := Run(context.Background(), net, x, target, Config{LearningRate: 0.1})
	require.NoError(t, err)
	assert.Empty(t, history.Losses)
	assert.Equal(t, history.Final, history.Initial())
	assert.False(t, history.Improved())

	_, err = Run(context.Background(), net, x, target, Config{Steps: -1, LearningRate: 0.1})
	assert.Error(t, err)
}

func TestRun_InvalidLearningRate(t *testing.T) {
	backend := cpu.New()
	net := nn.NewTwoLayerNet(2, 3, 2, rand.New(rand.NewSource(1)), backend)
	x, target := exampleData(t, backend)
	before := net.W1().Clone()

	for _, lr := range []float64{0, -0.1} {
		_, err := Run(context.Background(), net, x, target, Config{Steps: 3, LearningRate: lr})
		assert.Error(t, err, "lr=%g", lr)
	}
	assert.Equal(t, before.Data(), net.W1().Data())
}
