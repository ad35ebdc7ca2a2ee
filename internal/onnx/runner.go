package onnx

import (
	"fmt"

	"github.com/born-ml/fixtures/internal/onnx/operators"
	"github.com/born-ml/fixtures/internal/tensor"
)

// Runner executes a validated Graph using the provided backend.
// A Runner is read-only after construction and safe for concurrent use.
type Runner struct {
	graph       *Graph
	registry    *operators.Registry
	backend     tensor.Backend
	sortedNodes []operators.Node
}

// NewRunner validates g, checks every operator is supported and
// prepares the execution order.
func NewRunner(g *Graph, backend tensor.Backend) (*Runner, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	registry := operators.NewRegistry()
	for i := range g.Nodes {
		if _, ok := registry.Get(g.Nodes[i].OpType); !ok {
			return nil, fmt.Errorf("%w: node %q: %w %s",
				ErrInvalidGraph, g.Nodes[i].Name, operators.ErrUnsupportedOp, g.Nodes[i].OpType)
		}
	}

	sorted, err := topologicalSort(g.Nodes)
	if err != nil {
		return nil, err
	}

	return &Runner{
		graph:       g,
		registry:    registry,
		backend:     backend,
		sortedNodes: sorted,
	}, nil
}

// Graph returns the graph being executed.
func (r *Runner) Graph() *Graph {
	return r.graph
}

// InputNames returns the graph input names in declaration order.
func (r *Runner) InputNames() []string {
	return r.graph.InputNames()
}

// OutputNames returns the graph output names in declaration order.
func (r *Runner) OutputNames() []string {
	return r.graph.OutputNames()
}

// OpsetVersion returns the opset the graph targets.
func (r *Runner) OpsetVersion() int64 {
	return r.graph.Opset
}

// Forward runs the graph with a single input tensor.
// For graphs with multiple inputs or outputs, use ForwardNamed.
func (r *Runner) Forward(input *tensor.RawTensor) (*tensor.RawTensor, error) {
	if len(r.graph.Inputs) != 1 {
		return nil, fmt.Errorf("graph has %d inputs, use ForwardNamed", len(r.graph.Inputs))
	}
	if len(r.graph.Outputs) != 1 {
		return nil, fmt.Errorf("graph has %d outputs, use ForwardNamed", len(r.graph.Outputs))
	}

	outputs, err := r.ForwardNamed(map[string]*tensor.RawTensor{
		r.graph.Inputs[0].Name: input,
	})
	if err != nil {
		return nil, err
	}

	return outputs[r.graph.Outputs[0].Name], nil
}

// ForwardNamed runs the graph with named inputs.
// Inputs must match the declared dtype and, when declared, the shape.
// Returns a map of output name to tensor.
func (r *Runner) ForwardNamed(inputs map[string]*tensor.RawTensor) (map[string]*tensor.RawTensor, error) {
	values := make(map[string]*tensor.RawTensor, len(inputs))

	for _, info := range r.graph.Inputs {
		t, ok := inputs[info.Name]
		if !ok || t == nil {
			return nil, fmt.Errorf("missing input: %s", info.Name)
		}
		if t.DType() != info.DType {
			return nil, fmt.Errorf("input %s: %w: got %s, want %s",
				info.Name, tensor.ErrUnsupportedDType, t.DType(), info.DType)
		}
		if info.Shape != nil && !t.Shape().Equal(info.Shape) {
			return nil, fmt.Errorf("input %s: %w: got %v, want %v",
				info.Name, tensor.ErrShapeMismatch, t.Shape(), info.Shape)
		}
		values[info.Name] = t
	}

	ctx := &operators.Context{Backend: r.backend}
	for i := range r.sortedNodes {
		node := &r.sortedNodes[i]

		nodeInputs := make([]*tensor.RawTensor, len(node.Inputs))
		for j, name := range node.Inputs {
			if name == "" {
				// Optional input not provided
				continue
			}
			t, ok := values[name]
			if !ok {
				return nil, fmt.Errorf("node %s: missing input %s", node.Name, name)
			}
			nodeInputs[j] = t
		}

		outputs, err := r.registry.Execute(ctx, node, nodeInputs)
		if err != nil {
			return nil, fmt.Errorf("node %s (%s): %w", node.Name, node.OpType, err)
		}

		for j, name := range node.Outputs {
			if j < len(outputs) {
				values[name] = outputs[j]
			}
		}
	}

	result := make(map[string]*tensor.RawTensor, len(r.graph.Outputs))
	for _, info := range r.graph.Outputs {
		t, ok := values[info.Name]
		if !ok {
			return nil, fmt.Errorf("missing output: %s", info.Name)
		}
		result[info.Name] = t
	}

	return result, nil
}
