// Package onnx describes traced model graphs in ONNX terms and executes them.
//
// A Graph is the in-memory form an exporter serializes: typed graph inputs
// and outputs plus a list of operator nodes in ONNX naming (op_type, axis
// attributes, opset version). Writing the protobuf file itself is left to the
// export tool; this package only builds and runs the graph.
//
// Key components:
//   - Graph: Computation graph with nodes, inputs and outputs
//   - ValueInfo: Input/output tensor type information
//   - Runner: Validated, topologically sorted executor for a Graph
//
// Example usage:
//
//	graph, err := model.Graph(tensor.Shape{1, 2, 3, 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	runner, err := onnx.NewRunner(graph, cpu.New())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := runner.Forward(dummy.Raw())
package onnx
