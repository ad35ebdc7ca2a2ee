package onnx

import (
	"errors"
	"fmt"

	"github.com/born-ml/fixtures/internal/onnx/operators"
	"github.com/born-ml/fixtures/internal/tensor"
)

// DefaultOpset is the ai.onnx opset traced graphs target.
// Opset 13 is the first where Softmax/LogSoftmax reduce over a single axis.
const DefaultOpset int64 = 13

// ErrInvalidGraph is returned when a graph fails structural validation.
var ErrInvalidGraph = errors.New("onnx: invalid graph")

// ValueInfo describes a graph input or output tensor.
type ValueInfo struct {
	Name  string          `json:"name"`
	DType tensor.DataType `json:"elem_type"`
	Shape tensor.Shape    `json:"shape"`
}

// Graph is a traced computation graph.
type Graph struct {
	Name    string           `json:"name"`
	Opset   int64            `json:"opset"`
	Inputs  []ValueInfo      `json:"inputs"`
	Outputs []ValueInfo      `json:"outputs"`
	Nodes   []operators.Node `json:"nodes"`
}

// Validate checks the graph structure: at least one input and output,
// unique value names, every node input defined somewhere, every output
// produced, and an opset new enough for single-axis softmax semantics.
func (g *Graph) Validate() error {
	if len(g.Inputs) == 0 {
		return fmt.Errorf("%w: graph %q has no inputs", ErrInvalidGraph, g.Name)
	}
	if len(g.Outputs) == 0 {
		return fmt.Errorf("%w: graph %q has no outputs", ErrInvalidGraph, g.Name)
	}

	defined := make(map[string]bool)
	for _, in := range g.Inputs {
		if in.Name == "" {
			return fmt.Errorf("%w: unnamed graph input", ErrInvalidGraph)
		}
		if defined[in.Name] {
			return fmt.Errorf("%w: duplicate input %q", ErrInvalidGraph, in.Name)
		}
		defined[in.Name] = true
	}

	for i := range g.Nodes {
		node := &g.Nodes[i]
		for _, out := range node.Outputs {
			if defined[out] {
				return fmt.Errorf("%w: value %q defined twice (node %q)", ErrInvalidGraph, out, node.Name)
			}
			defined[out] = true
		}
		if (node.OpType == "Softmax" || node.OpType == "LogSoftmax") && g.Opset < DefaultOpset {
			return fmt.Errorf("%w: %s with opset %d uses coerced 2-D semantics, need opset >= %d",
				ErrInvalidGraph, node.OpType, g.Opset, DefaultOpset)
		}
	}

	for i := range g.Nodes {
		for _, in := range g.Nodes[i].Inputs {
			if in != "" && !defined[in] {
				return fmt.Errorf("%w: node %q reads undefined value %q", ErrInvalidGraph, g.Nodes[i].Name, in)
			}
		}
	}

	for _, out := range g.Outputs {
		if !defined[out.Name] {
			return fmt.Errorf("%w: output %q is never produced", ErrInvalidGraph, out.Name)
		}
	}

	return nil
}

// InputNames returns the names of graph inputs.
func (g *Graph) InputNames() []string {
	names := make([]string, len(g.Inputs))
	for i, in := range g.Inputs {
		names[i] = in.Name
	}
	return names
}

// OutputNames returns the names of graph outputs.
func (g *Graph) OutputNames() []string {
	names := make([]string, len(g.Outputs))
	for i, out := range g.Outputs {
		names[i] = out.Name
	}
	return names
}

// topologicalSort sorts nodes in execution order.
// Ensures dependencies are executed before dependents; cycles are an error.
func topologicalSort(nodes []operators.Node) ([]operators.Node, error) {
	outputToNode := make(map[string]int)
	for i := range nodes {
		for _, output := range nodes[i].Outputs {
			outputToNode[output] = i
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(nodes))
	result := make([]operators.Node, 0, len(nodes))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: cycle through node %q", ErrInvalidGraph, nodes[i].Name)
		}
		state[i] = visiting

		for _, input := range nodes[i].Inputs {
			if depIdx, ok := outputToNode[input]; ok {
				if err := visit(depIdx); err != nil {
					return err
				}
			}
		}

		state[i] = done
		result = append(result, nodes[i])
		return nil
	}

	for i := range nodes {
		if err := visit(i); err != nil {
			return nil, err
		}
	}

	return result, nil
}
