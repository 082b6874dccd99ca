package nn

import (
	"math/rand"

	"github.com/born-ml/gradnet/internal/tensor"
)

// Randn creates a tensor with random values from standard normal distribution.
//
// Values are drawn from N(0, 1) using rng, so a seeded generator gives a
// reproducible result.
//
// Parameters:
//   - shape: Shape of the tensor
//   - rng: Random source (e.g. rand.New(rand.NewSource(42)))
//   - backend: Backend to use for tensor creation
func Randn(shape tensor.Shape, rng *rand.Rand, backend tensor.Backend) *tensor.Tensor {
	return tensor.Randn(shape, rng, backend)
}

// Zeros creates a tensor filled with zeros.
//
// This is commonly used for bias initialization.
func Zeros(shape tensor.Shape, backend tensor.Backend) *tensor.Tensor {
	return tensor.Zeros(shape, backend)
}
