// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense float64 arrays gradnet computes with.
//
// # Overview
//
// A Tensor is a row-major float64 array with an explicit Shape, bound to a
// compute Backend. Its 2-D form is the matrix abstraction used by the
// network: Dot, Add (with row broadcasting) and Dims are defined on it.
// Element-wise operations (Map, Scale, Sum) work for any rank.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/gradnet/backend/cpu"
//	    "github.com/born-ml/gradnet/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, _ := tensor.FromRows([][]float64{{1, 2}, {3, 4}}, backend)
//	    b, _ := tensor.FromRows([][]float64{{5, 6}, {7, 8}}, backend)
//
//	    c, err := a.Dot(b) // [[19 22] [43 50]]
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Ownership
//
// Every operation returns a new tensor that owns its memory. Operands are
// never modified, and Clone is a deep copy.
//
// # Broadcasting
//
// Add and Sub accept operands of identical shape, or a (1, C) row added to
// every row of an (R, C) matrix. Anything else fails with an error
// wrapping ErrShapeMismatch.
//
// # Backends
//
//   - backend/cpu: hand-rolled reference implementation
//   - backend/gonum: adapter over gonum.org/v1/gonum
package tensor
