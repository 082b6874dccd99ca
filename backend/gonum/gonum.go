// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package gonum

import (
	internalgonum "github.com/born-ml/gradnet/internal/backend/gonum"
	"github.com/born-ml/gradnet/tensor"
)

// Backend represents the gonum backend implementation.
type Backend = internalgonum.GonumBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new gonum backend.
func New() *Backend {
	return internalgonum.New()
}
