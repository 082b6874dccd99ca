// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/gradnet/internal/tensor"

// RawTensor is the low-level tensor representation used by backends: a
// dense row-major float64 buffer with a fixed shape.
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-filled raw tensor with the given shape.
//
// This is a low-level function. Most users should use high-level creation functions instead.
func NewRaw(shape Shape) (*RawTensor, error) {
	return tensor.NewRaw(shape)
}
