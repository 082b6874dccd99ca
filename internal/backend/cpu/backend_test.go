package cpu

import (
	"errors"
	"testing"

	"github.com/born-ml/gradnet/internal/tensor"
)

// Helper to create test backend.
func newTestBackend() *CPUBackend {
	return New()
}

// Helper to build a raw tensor from values.
func newRaw(t *testing.T, shape tensor.Shape, values ...float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape)
	if err != nil {
		t.Fatalf("NewRaw(%v): %v", shape, err)
	}
	copy(raw.Data(), values)
	return raw
}

// Helper to check float64 slices are equal within epsilon.
func float64SliceEqual(a, b []float64) bool {
	const epsilon = 1e-12
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > epsilon {
			return false
		}
	}
	return true
}

// TestCPUBackend_New tests backend creation.
func TestCPUBackend_New(t *testing.T) {
	backend := New()
	if backend == nil {
		t.Fatal("New() returned nil")
	}
	if backend.Name() != "CPU" {
		t.Errorf("Expected name 'CPU', got '%s'", backend.Name())
	}
}

// TestCPUBackend_Add tests element-wise and row-broadcast addition.
func TestCPUBackend_Add(t *testing.T) {
	backend := newTestBackend()

	t.Run("SameShape", func(t *testing.T) {
		a := newRaw(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
		b := newRaw(t, tensor.Shape{2, 3}, 10, 11, 12, 13, 14, 15)

		result, err := backend.Add(a, b)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}

		expected := []float64{11, 13, 15, 17, 19, 21}
		if !float64SliceEqual(result.Data(), expected) {
			t.Errorf("Add = %v, want %v", result.Data(), expected)
		}
	})

	t.Run("RowBroadcast", func(t *testing.T) {
		a := newRaw(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
		b := newRaw(t, tensor.Shape{1, 2}, 1, 1)

		result, err := backend.Add(a, b)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}

		expected := []float64{2, 3, 4, 5}
		if !float64SliceEqual(result.Data(), expected) {
			t.Errorf("Add = %v, want %v", result.Data(), expected)
		}
		if !result.Shape().Equal(tensor.Shape{2, 2}) {
			t.Errorf("result shape = %v, want [2 2]", result.Shape())
		}
	})

	t.Run("NotBroadcastable", func(t *testing.T) {
		cases := []struct {
			name string
			a, b tensor.Shape
		}{
			{"column vector", tensor.Shape{2, 2}, tensor.Shape{2, 1}},
			{"wrong cols", tensor.Shape{2, 3}, tensor.Shape{1, 2}},
			{"broadcast left", tensor.Shape{1, 2}, tensor.Shape{2, 2}},
			{"rank mismatch", tensor.Shape{2, 2}, tensor.Shape{2}},
		}
		for _, tc := range cases {
			a := newRaw(t, tc.a)
			b := newRaw(t, tc.b)
			if _, err := backend.Add(a, b); !errors.Is(err, tensor.ErrShapeMismatch) {
				t.Errorf("%s: expected ErrShapeMismatch, got %v", tc.name, err)
			}
		}
	})

	t.Run("OperandsUnchanged", func(t *testing.T) {
		a := newRaw(t, tensor.Shape{1, 2}, 1, 2)
		b := newRaw(t, tensor.Shape{1, 2}, 3, 4)

		if _, err := backend.Add(a, b); err != nil {
			t.Fatalf("Add: %v", err)
		}
		if !float64SliceEqual(a.Data(), []float64{1, 2}) {
			t.Errorf("Add modified its left operand: %v", a.Data())
		}
	})
}

// TestCPUBackend_Sub tests element-wise subtraction.
func TestCPUBackend_Sub(t *testing.T) {
	backend := newTestBackend()

	a := newRaw(t, tensor.Shape{2, 2}, 5, 6, 7, 8)
	b := newRaw(t, tensor.Shape{1, 2}, 1, 2)

	result, err := backend.Sub(a, b)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}

	expected := []float64{4, 4, 6, 6}
	if !float64SliceEqual(result.Data(), expected) {
		t.Errorf("Sub = %v, want %v", result.Data(), expected)
	}
}

// TestCPUBackend_Map tests element-wise function application.
func TestCPUBackend_Map(t *testing.T) {
	backend := newTestBackend()

	x := newRaw(t, tensor.Shape{3}, 1, 2, 3)
	result := backend.Map(x, func(v float64) float64 { return v * v })

	if !float64SliceEqual(result.Data(), []float64{1, 4, 9}) {
		t.Errorf("Map = %v, want [1 4 9]", result.Data())
	}
	if !float64SliceEqual(x.Data(), []float64{1, 2, 3}) {
		t.Errorf("Map modified its input: %v", x.Data())
	}
}

// TestCPUBackend_MatMul tests matrix multiplication.
func TestCPUBackend_MatMul(t *testing.T) {
	backend := newTestBackend()

	t.Run("Square", func(t *testing.T) {
		a := newRaw(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
		b := newRaw(t, tensor.Shape{2, 2}, 5, 6, 7, 8)

		result, err := backend.MatMul(a, b)
		if err != nil {
			t.Fatalf("MatMul: %v", err)
		}

		expected := []float64{19, 22, 43, 50}
		for i, v := range result.Data() {
			if v != expected[i] {
				t.Errorf("MatMul[%d] = %v, want %v", i, v, expected[i])
			}
		}
	})

	t.Run("Rectangular", func(t *testing.T) {
		// (2, 3) @ (3, 1) -> (2, 1)
		a := newRaw(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
		b := newRaw(t, tensor.Shape{3, 1}, 1, 0, -1)

		result, err := backend.MatMul(a, b)
		if err != nil {
			t.Fatalf("MatMul: %v", err)
		}
		if !result.Shape().Equal(tensor.Shape{2, 1}) {
			t.Fatalf("shape = %v, want [2 1]", result.Shape())
		}
		if !float64SliceEqual(result.Data(), []float64{-2, -2}) {
			t.Errorf("MatMul = %v, want [-2 -2]", result.Data())
		}
	})

	t.Run("EmptyInner", func(t *testing.T) {
		a := newRaw(t, tensor.Shape{2, 0})
		b := newRaw(t, tensor.Shape{0, 3})

		result, err := backend.MatMul(a, b)
		if err != nil {
			t.Fatalf("MatMul: %v", err)
		}
		if !float64SliceEqual(result.Data(), make([]float64, 6)) {
			t.Errorf("MatMul = %v, want zeros", result.Data())
		}
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		a := newRaw(t, tensor.Shape{2, 3})
		b := newRaw(t, tensor.Shape{2, 3})

		_, err := backend.MatMul(a, b)
		if !errors.Is(err, tensor.ErrShapeMismatch) {
			t.Errorf("expected ErrShapeMismatch, got %v", err)
		}
	})
}
