// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/gradnet/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: hand-rolled reference implementation
//   - backend/gonum: adapter over gonum.org/v1/gonum/mat and floats
//
// Example:
//
//	import (
//	    "github.com/born-ml/gradnet/tensor"
//	    "github.com/born-ml/gradnet/backend/gonum"
//	)
//
//	backend := gonum.New()
//	x := tensor.Zeros(tensor.Shape{2, 3}, backend)
type Backend = tensor.Backend
