package cpu

import (
	"github.com/born-ml/gradnet/internal/tensor"
)

// binarySameShape applies op to matching elements of a and b.
func binarySameShape(result, a, b *tensor.RawTensor, op func(x, y float64) float64) {
	dst := result.Data()
	aData := a.Data()
	bData := b.Data()
	for i := range dst {
		dst[i] = op(aData[i], bData[i])
	}
}

// binaryRowBroadcast applies op between every row of a (R, C) and the single
// row of b (1, C).
func binaryRowBroadcast(result, a, b *tensor.RawTensor, op func(x, y float64) float64) {
	cols := a.Shape()[1]
	rows := a.Shape()[0]
	dst := result.Data()
	aData := a.Data()
	row := b.Data()

	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			dst[base+j] = op(aData[base+j], row[j])
		}
	}
}
