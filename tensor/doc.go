// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor API of the Born fixtures.
//
// # Overview
//
// Tensors are the data the fixtures compute on. This package exposes:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Row-major RawTensor storage
//   - The Backend interface the CPU backend implements
//   - Explicit random sources for reproducible dummy inputs
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/fixtures/backend/cpu"
//	    "github.com/born-ml/fixtures/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.RandnFrom[float32](tensor.Shape{1, 2, 3, 3}, rand.New(rand.NewSource(0)), backend)
//	    y, err := x.LogSoftmax(1)
//	}
//
// # Supported Data Types
//
// float32 is the primary type; float64 is supported by every operation.
//
// # Errors
//
// Tensor methods that take a dimension return ErrDimOutOfRange (wrapped)
// for dimensions outside [-rank, rank). Backend methods panic instead.
package tensor
