package mnist

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/gradnet/internal/tensor"
)

// SubsetSize is the number of training samples used for quick experiments.
const SubsetSize = 1000

// Dataset holds the MNIST train and test splits.
type Dataset struct {
	TrainImages *tensor.Tensor // (N, 784)
	TrainLabels []uint8        // N labels in 0-9
	TestImages  *tensor.Tensor // (M, 784)
	TestLabels  []uint8        // M labels in 0-9
}

// TrainSize returns the number of training samples.
func (d *Dataset) TrainSize() int { return len(d.TrainLabels) }

// TestSize returns the number of test samples.
func (d *Dataset) TestSize() int { return len(d.TestLabels) }

// Normalize returns a copy of the dataset with pixels scaled from 0-255
// to [0, 1]. The receiver is unchanged.
func (d *Dataset) Normalize() *Dataset {
	return &Dataset{
		TrainImages: d.TrainImages.Scale(1.0 / 255.0),
		TrainLabels: append([]uint8(nil), d.TrainLabels...),
		TestImages:  d.TestImages.Scale(1.0 / 255.0),
		TestLabels:  append([]uint8(nil), d.TestLabels...),
	}
}

// TrainBatch gathers the training samples at indices.
func (d *Dataset) TrainBatch(indices []int) (*tensor.Tensor, []uint8, error) {
	return gather(d.TrainImages, d.TrainLabels, indices)
}

// TestBatch gathers the test samples at indices.
func (d *Dataset) TestBatch(indices []int) (*tensor.Tensor, []uint8, error) {
	return gather(d.TestImages, d.TestLabels, indices)
}

// Subset returns the first n training and test samples (fewer if a split
// is smaller).
func (d *Dataset) Subset(n int) (*Dataset, error) {
	if n < 0 {
		return nil, fmt.Errorf("subset: negative size %d", n)
	}

	train, trainLabels, err := d.TrainBatch(firstN(min(n, d.TrainSize())))
	if err != nil {
		return nil, err
	}
	test, testLabels, err := d.TestBatch(firstN(min(n, d.TestSize())))
	if err != nil {
		return nil, err
	}

	return &Dataset{
		TrainImages: train,
		TrainLabels: trainLabels,
		TestImages:  test,
		TestLabels:  testLabels,
	}, nil
}

// validate checks that image rows and labels line up.
func (d *Dataset) validate() error {
	if rows, _ := d.TrainImages.Dims(); rows != len(d.TrainLabels) {
		return fmt.Errorf("train split has %d images and %d labels", rows, len(d.TrainLabels))
	}
	if rows, _ := d.TestImages.Dims(); rows != len(d.TestLabels) {
		return fmt.Errorf("test split has %d images and %d labels", rows, len(d.TestLabels))
	}
	return nil
}

// OneHot encodes labels as a (len(labels), classes) tensor.
//
// Returns an error if a label is not below classes.
func OneHot(labels []uint8, classes int, backend tensor.Backend) (*tensor.Tensor, error) {
	out := tensor.Zeros(tensor.Shape{len(labels), classes}, backend)
	for i, label := range labels {
		if int(label) >= classes {
			return nil, fmt.Errorf("one-hot: label %d at row %d exceeds %d classes", label, i, classes)
		}
		out.Set(1, i, int(label))
	}
	return out, nil
}

// Synthetic builds a small offline dataset of n training and n test
// samples.
//
// Sample i has label i%10 and a bright horizontal band whose vertical
// position depends on the label, plus low-level noise from rng. The
// patterns are easy to separate and are not real digits.
func Synthetic(n int, rng *rand.Rand, backend tensor.Backend) *Dataset {
	train, trainLabels := syntheticSplit(n, rng, backend)
	test, testLabels := syntheticSplit(n, rng, backend)
	return &Dataset{
		TrainImages: train,
		TrainLabels: trainLabels,
		TestImages:  test,
		TestLabels:  testLabels,
	}
}

func syntheticSplit(n int, rng *rand.Rand, backend tensor.Backend) (*tensor.Tensor, []uint8) {
	images := tensor.Zeros(tensor.Shape{n, ImageSize}, backend)
	labels := make([]uint8, n)
	data := images.Data()

	for i := 0; i < n; i++ {
		label := i % NumClasses
		labels[i] = uint8(label)

		pixels := data[i*ImageSize : (i+1)*ImageSize]
		for j := range pixels {
			pixels[j] = float64(rng.Intn(32))
		}

		startRow := label * 2
		for row := startRow; row < startRow+8 && row < ImageRows; row++ {
			for col := 5; col < 23; col++ {
				pixels[row*ImageCols+col] = 204
			}
		}
	}
	return images, labels
}

func gather(images *tensor.Tensor, labels []uint8, indices []int) (*tensor.Tensor, []uint8, error) {
	_, cols := images.Dims()
	batch := tensor.Zeros(tensor.Shape{len(indices), cols}, images.Backend())
	batchLabels := make([]uint8, len(indices))

	src, dst := images.Data(), batch.Data()
	for i, idx := range indices {
		if idx < 0 || idx >= len(labels) {
			return nil, nil, fmt.Errorf("batch: index %d out of range [0, %d)", idx, len(labels))
		}
		copy(dst[i*cols:(i+1)*cols], src[idx*cols:(idx+1)*cols])
		batchLabels[i] = labels[idx]
	}
	return batch, batchLabels, nil
}

func firstN(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}
