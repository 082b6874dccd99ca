package cpu

import (
	"github.com/born-ml/gradnet/internal/tensor"
)

// MatMul performs matrix multiplication.
// For 2D tensors: (M, K) @ (K, N) -> (M, N)
// Uses the naive O(M·N·K) triple loop; see the gonum backend for a BLAS path.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
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
	matmulFloat64(result.Data(), a.Data(), b.Data(), m, k, n)

	return result, nil
}

// matmulFloat64 computes C[i,j] = sum_k A[i,k] * B[k,j].
func matmulFloat64(c, a, b []float64, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := float64(0)
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}
