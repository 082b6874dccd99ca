// Package perceptron implements single-layer step-function perceptrons and
// the logic gates built from them.
package perceptron

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/gradnet/internal/nn"
)

// Gate is a two-input logic gate returning 0 or 1.
type Gate func(x1, x2 float64) float64

// Perceptron returns step(x·w + b).
//
// Panics if x and w have different lengths.
func Perceptron(x, w []float64, b float64) float64 {
	return nn.StepScalar(floats.Dot(x, w) + b)
}

// AND fires only when both inputs are 1.
func AND(x1, x2 float64) float64 {
	return Perceptron([]float64{x1, x2}, []float64{0.5, 0.5}, -0.7)
}

// NAND is the negation of AND.
func NAND(x1, x2 float64) float64 {
	return Perceptron([]float64{x1, x2}, []float64{-0.5, -0.5}, 0.7)
}

// OR fires when at least one input is 1.
func OR(x1, x2 float64) float64 {
	return Perceptron([]float64{x1, x2}, []float64{0.5, 0.5}, -0.2)
}

// XOR is not linearly separable, so it stacks two layers: AND(NAND, OR).
func XOR(x1, x2 float64) float64 {
	return AND(NAND(x1, x2), OR(x1, x2))
}

// Gates lists the gates by name in display order.
var Gates = []struct {
	Name string
	Gate Gate
}{
	{"AND", AND},
	{"NAND", NAND},
	{"OR", OR},
	{"XOR", XOR},
}

// TruthTable evaluates g on the four binary input pairs, in the order
// (0,0), (1,0), (0,1), (1,1).
func TruthTable(g Gate) [4][3]float64 {
	inputs := [4][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	var table [4][3]float64
	for i, in := range inputs {
		table[i] = [3]float64{in[0], in[1], g(in[0], in[1])}
	}
	return table
}
