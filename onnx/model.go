package onnx

import "github.com/born-ml/fixtures/internal/tensor"

// Model is an executable graph.
//
// The interface hides the runner so tests can substitute a fake and
// callers never depend on the internal package layout.
type Model interface {
	// Forward runs the graph with a single input tensor.
	// For graphs with multiple inputs or outputs, use ForwardNamed.
	Forward(input *tensor.RawTensor) (*tensor.RawTensor, error)

	// ForwardNamed runs the graph with named inputs and returns a map
	// of output name to tensor.
	ForwardNamed(inputs map[string]*tensor.RawTensor) (map[string]*tensor.RawTensor, error)

	// InputNames returns the names of graph inputs.
	InputNames() []string

	// OutputNames returns the names of graph outputs.
	OutputNames() []string

	// OpsetVersion returns the ONNX opset version the graph targets.
	OpsetVersion() int64

	// Graph returns the underlying graph.
	Graph() *Graph
}
