// Package onnx describes traced models as in-memory ONNX graphs.
//
// A graph produced by nn.Module.Graph is what an external exporter would
// serialize to an .onnx file. This package does not write protobuf; it
// lets callers inspect the graph and execute it to check it matches the
// module.
//
// # Example Usage
//
//	import (
//	    "github.com/born-ml/fixtures/backend/cpu"
//	    "github.com/born-ml/fixtures/nn"
//	    "github.com/born-ml/fixtures/onnx"
//	)
//
//	backend := cpu.New()
//	g, err := nn.NewLogSoftmax[*cpu.Backend]().Graph(tensor.Shape{1, 2, 3, 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	model, err := onnx.NewModel(g, backend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	output, err := model.Forward(input.Raw())
//
// # Supported Operators
//
// Exp, Identity, Log, LogSoftmax and Softmax with opset 13 semantics.
// Use [ListSupportedOps] to get the complete list.
package onnx

import (
	internalonnx "github.com/born-ml/fixtures/internal/onnx"
	"github.com/born-ml/fixtures/internal/onnx/operators"
	"github.com/born-ml/fixtures/internal/tensor"
)

// Graph is a traced computation graph.
type Graph = internalonnx.Graph

// ValueInfo names a graph input or output with its type and shape.
type ValueInfo = internalonnx.ValueInfo

// Node is one operator invocation in a Graph.
type Node = operators.Node

// Attribute is a named operator attribute.
type Attribute = operators.Attribute

// DefaultOpset is the opset traced graphs declare.
const DefaultOpset = internalonnx.DefaultOpset

// ErrInvalidGraph is returned for graphs that fail validation.
var ErrInvalidGraph = internalonnx.ErrInvalidGraph

// NewModel validates g and prepares it for execution on backend.
//
// Returns a Model interface; the runner implementation stays internal.
func NewModel(g *Graph, backend tensor.Backend) (Model, error) {
	r, err := internalonnx.NewRunner(g, backend)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListSupportedOps returns the sorted operator names a Model can execute.
//
// Example:
//
//	for _, op := range onnx.ListSupportedOps() {
//	    fmt.Println(op)
//	}
func ListSupportedOps() []string {
	return operators.NewRegistry().SupportedOps()
}
