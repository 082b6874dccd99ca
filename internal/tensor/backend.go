package tensor

// Backend defines the capability set every compute backend implements.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - cpu: hand-rolled reference implementation (naive triple-loop matmul)
//   - gonum: adapter over gonum.org/v1/gonum/mat and floats
//
// All operations return freshly allocated results and never write into
// their operands. Shape errors are reported before any work is done.
type Backend interface {
	// MatMul computes (M, K) @ (K, N) -> (M, N).
	MatMul(a, b *RawTensor) (*RawTensor, error)

	// Add adds b to a element-wise, or adds a (1, C) row b to every row of a (R, C).
	Add(a, b *RawTensor) (*RawTensor, error)

	// Sub subtracts b from a with the same shape rules as Add.
	Sub(a, b *RawTensor) (*RawTensor, error)

	// Map applies f to every element of x.
	Map(x *RawTensor, f func(float64) float64) *RawTensor

	// Name returns a human-readable backend name.
	Name() string
}
