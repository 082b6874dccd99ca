package grad

import (
	"math/rand"
	"testing"

	"github.com/born-ml/gradnet/internal/backend/cpu"
	"github.com/born-ml/gradnet/internal/tensor"
)

func BenchmarkNumericalGradient(b *testing.B) {
	sizes := []struct {
		name string
		rows int
		cols int
	}{
		{"10x10", 10, 10},
		{"50x50", 50, 50},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			x := tensor.Randn(tensor.Shape{size.rows, size.cols}, rand.New(rand.NewSource(1)), cpu.New())
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = NumericalGradient(sumSquares, x)
			}
		})
	}
}
