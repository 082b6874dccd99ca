// Package cpu implements the reference CPU backend in plain Go.
//
// The implementation favors readability over speed: matrix products use the
// naive triple loop and there is no blocking or SIMD.
package cpu

import (
	"github.com/born-ml/gradnet/internal/tensor"
)

// CPUBackend implements tensor operations on CPU with hand-rolled loops.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Add performs element-wise addition, broadcasting a single row of b over a.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	needsBroadcast, err := tensor.AddShape("add", a.Shape(), b.Shape())
	if err != nil {
		return nil, err
	}

	result, err := tensor.NewRaw(a.Shape())
	if err != nil {
		return nil, err
	}

	if needsBroadcast {
		binaryRowBroadcast(result, a, b, func(x, y float64) float64 { return x + y })
	} else {
		binarySameShape(result, a, b, func(x, y float64) float64 { return x + y })
	}

	return result, nil
}

// Sub performs element-wise subtraction, broadcasting a single row of b over a.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	needsBroadcast, err := tensor.AddShape("sub", a.Shape(), b.Shape())
	if err != nil {
		return nil, err
	}

	result, err := tensor.NewRaw(a.Shape())
	if err != nil {
		return nil, err
	}

	if needsBroadcast {
		binaryRowBroadcast(result, a, b, func(x, y float64) float64 { return x - y })
	} else {
		binarySameShape(result, a, b, func(x, y float64) float64 { return x - y })
	}

	return result, nil
}

// Map applies f to every element of x and returns a new tensor.
func (cpu *CPUBackend) Map(x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	result := x.Clone()
	dst := result.Data()
	for i, v := range dst {
		dst[i] = f(v)
	}
	return result
}
