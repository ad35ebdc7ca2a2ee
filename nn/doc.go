// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the neural network modules used by the fixtures.
//
// # Modules
//
// A module is constructed once and applied with Forward, a pure function
// of its input. Graph traces the module into an in-memory ONNX graph for
// an external exporter.
//
//	backend := cpu.New()
//	model := nn.NewLogSoftmax[*cpu.Backend]()
//	out, err := model.Forward(input)           // implicit dim
//	g, err := model.Graph(input.Shape())       // one LogSoftmax node
//
// # Implicit dimension
//
// NewLogSoftmax without a dimension picks it from the input rank:
// rank 0, 1 or 3 normalizes over dim 0, any other rank over dim 1.
// Use NewLogSoftmaxDim to fix the dimension.
package nn
