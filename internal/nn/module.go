// Package nn implements neural network modules for the fixtures.
//
// Modules follow a "construct, then apply" shape: a constructor fixes the
// configuration and Forward is a pure function of its input. The modules
// here carry no learned parameters.
//
// Design inspired by PyTorch's nn.Module but adapted for Go generics.
package nn

import (
	"github.com/born-ml/fixtures/internal/onnx"
	"github.com/born-ml/fixtures/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	//
	// Errors from shape or dimension checks are returned unchanged
	// (wrapped with the module name); Forward never mutates input.
	Forward(input *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error)

	// Graph traces the module for an input of the given shape, producing
	// the graph an exporter would serialize.
	Graph(inputShape tensor.Shape) (*onnx.Graph, error)

	// Name returns the module's type name, e.g. "LogSoftmax".
	Name() string

	// Parameters returns the module's learned tensors. Stateless
	// modules return an empty slice.
	Parameters() []*Parameter[B]
}

// Parameter is a named tensor owned by a module.
type Parameter[B tensor.Backend] struct {
	Name   string
	Tensor *tensor.Tensor[float32, B]
}
