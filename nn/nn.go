// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/fixtures/internal/nn"
	"github.com/born-ml/fixtures/internal/tensor"
)

// Module interface defines the common interface for all neural network modules.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter is a named tensor owned by a module.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// Activations

// LogSoftmax applies log(softmax(x)) along one dimension.
type LogSoftmax[B tensor.Backend] = nn.LogSoftmax[B]

// NewLogSoftmax creates a LogSoftmax module using the implicit dimension rule.
func NewLogSoftmax[B tensor.Backend]() *LogSoftmax[B] {
	return nn.NewLogSoftmax[B]()
}

// NewLogSoftmaxDim creates a LogSoftmax module over dim.
// Negative values count from the last dimension.
//
// Example:
//
//	model := nn.NewLogSoftmaxDim[*cpu.Backend](-1)
func NewLogSoftmaxDim[B tensor.Backend](dim int) *LogSoftmax[B] {
	return nn.NewLogSoftmaxDim[B](dim)
}

// ImplicitDim returns the dimension an implicit LogSoftmax uses for rank.
func ImplicitDim(rank int) int {
	return nn.ImplicitDim(rank)
}
