// Package mnist loads the MNIST handwritten digit dataset.
//
// Files use the gzip-compressed IDX format:
//
//	images: magic 0x00000803, count, rows (28), cols (28), then count*784 pixel bytes
//	labels: magic 0x00000801, count, then count label bytes (0-9)
//
// All header fields are big-endian uint32. Images are returned as an
// (N, 784) tensor of raw 0-255 pixel values; see Dataset.Normalize.
package mnist

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/gradnet/internal/tensor"
)

// IDX constants.
const (
	ImageMagic = 0x00000803
	LabelMagic = 0x00000801
	ImageRows  = 28
	ImageCols  = 28
	ImageSize  = ImageRows * ImageCols
	NumClasses = 10
)

// Common errors.
var (
	ErrInvalidMagicNumber = errors.New("invalid IDX magic number")
	ErrInvalidDimensions  = errors.New("invalid image dimensions")
)

// ReadImages parses a gzip-compressed IDX image stream.
//
// Returns an (N, 784) tensor on backend. A wrong magic number yields
// ErrInvalidMagicNumber; rows or cols other than 28 yield
// ErrInvalidDimensions. Truncated streams return the wrapped I/O error.
func ReadImages(r io.Reader, backend tensor.Backend) (*tensor.Tensor, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("images: %w", err)
	}
	defer zr.Close()
	br := bufio.NewReader(zr)

	var header struct {
		Magic, Count, Rows, Cols uint32
	}
	if err := binary.Read(br, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("images: read header: %w", err)
	}
	if header.Magic != ImageMagic {
		return nil, fmt.Errorf("images: got 0x%08x, want 0x%08x: %w", header.Magic, ImageMagic, ErrInvalidMagicNumber)
	}
	if header.Rows != ImageRows || header.Cols != ImageCols {
		return nil, fmt.Errorf("images: got %dx%d, want %dx%d: %w",
			header.Rows, header.Cols, ImageRows, ImageCols, ErrInvalidDimensions)
	}

	count := int(header.Count)
	pixels, err := readPayload(br, int64(count)*ImageSize)
	if err != nil {
		return nil, fmt.Errorf("images: read %d images: %w", count, err)
	}

	images := tensor.Zeros(tensor.Shape{count, ImageSize}, backend)
	data := images.Data()
	for i, p := range pixels {
		data[i] = float64(p)
	}
	return images, nil
}

// ReadLabels parses a gzip-compressed IDX label stream.
func ReadLabels(r io.Reader) ([]uint8, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	defer zr.Close()
	br := bufio.NewReader(zr)

	var header struct {
		Magic, Count uint32
	}
	if err := binary.Read(br, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("labels: read header: %w", err)
	}
	if header.Magic != LabelMagic {
		return nil, fmt.Errorf("labels: got 0x%08x, want 0x%08x: %w", header.Magic, LabelMagic, ErrInvalidMagicNumber)
	}

	labels, err := readPayload(br, int64(header.Count))
	if err != nil {
		return nil, fmt.Errorf("labels: read %d labels: %w", header.Count, err)
	}
	return labels, nil
}

// readPayload reads exactly n bytes from r. The buffer grows with the data
// actually received, so a header claiming more records than the stream
// holds fails with io.ErrUnexpectedEOF instead of a huge allocation.
func readPayload(r io.Reader, n int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, n))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) != n {
		return nil, fmt.Errorf("got %d of %d bytes: %w", len(data), n, io.ErrUnexpectedEOF)
	}
	return data, nil
}

// LoadImages reads an image file from disk.
func LoadImages(path string, backend tensor.Backend) (*tensor.Tensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	images, err := ReadImages(f, backend)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return images, nil
}

// LoadLabels reads a label file from disk.
func LoadLabels(path string) ([]uint8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	labels, err := ReadLabels(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return labels, nil
}
