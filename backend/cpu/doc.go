// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 support
//   - Numerically stable Softmax and LogSoftmax (log-sum-exp)
//   - Axis reductions (SumDim, MaxDim)
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/fixtures/backend/cpu"
//	    "github.com/born-ml/fixtures/nn"
//	    "github.com/born-ml/fixtures/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Randn[float32](tensor.Shape{1, 2, 3, 3}, backend)
//	    out, err := nn.NewLogSoftmax[*cpu.Backend]().Forward(x)
//	}
//
// # Errors
//
// Backend methods panic on an out-of-range dimension or unsupported dtype.
// The tensor and nn packages check arguments first and return errors.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
