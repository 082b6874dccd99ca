// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gonum provides a tensor backend built on gonum.org/v1/gonum.
//
// Matrix products use mat.Dense.Mul; element-wise arithmetic uses the
// floats package. Results match backend/cpu up to floating-point rounding
// (products may sum in a different order).
//
// Example:
//
//	backend := gonum.New()
//	net := nn.NewTwoLayerNet(784, 128, 10, rand.New(rand.NewSource(1)), backend)
package gonum
