package nn

import (
	"fmt"

	"github.com/born-ml/fixtures/internal/onnx"
	"github.com/born-ml/fixtures/internal/onnx/operators"
	"github.com/born-ml/fixtures/internal/tensor"
)

// Value names used in traced graphs.
const (
	GraphInputName  = "input"
	GraphOutputName = "output"
)

// LogSoftmax applies log(softmax(x)) along one dimension.
//
// For every slice along the dimension:
//
//	out[i] = x[i] - log(Σ_j exp(x[j]))
//
// computed with the log-sum-exp trick, so out ≤ 0, Σ exp(out) = 1 and
// extreme inputs stay finite ([1000, -1000] gives [0, -2000]).
//
// When constructed without a dimension, the dimension is chosen from the
// input rank the way PyTorch does for nn.LogSoftmax(): rank 0, 1 or 3
// normalizes over dim 0, every other rank over dim 1.
//
// Example:
//
//	logSoftmax := nn.NewLogSoftmax[*cpu.CPUBackend]()
//	output, err := logSoftmax.Forward(input)  // input [1, 2, 3, 3] → over dim 1
type LogSoftmax[B tensor.Backend] struct {
	dim      int
	explicit bool
}

// NewLogSoftmax creates a LogSoftmax module using the implicit dimension rule.
func NewLogSoftmax[B tensor.Backend]() *LogSoftmax[B] {
	return &LogSoftmax[B]{}
}

// NewLogSoftmaxDim creates a LogSoftmax module over an explicit dimension.
// Negative values count from the last dimension.
func NewLogSoftmaxDim[B tensor.Backend](dim int) *LogSoftmax[B] {
	return &LogSoftmax[B]{dim: dim, explicit: true}
}

// Name returns "LogSoftmax".
func (l *LogSoftmax[B]) Name() string {
	return "LogSoftmax"
}

// Parameters returns an empty slice (LogSoftmax has no trainable parameters).
func (l *LogSoftmax[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{}
}

// Dim returns the configured dimension and whether it was set explicitly.
func (l *LogSoftmax[B]) Dim() (int, bool) {
	return l.dim, l.explicit
}

// ResolveDim returns the non-negative dimension Forward normalizes over
// for an input of the given rank.
func (l *LogSoftmax[B]) ResolveDim(rank int) (int, error) {
	dim := l.dim
	if !l.explicit {
		dim = ImplicitDim(rank)
	}
	d, err := tensor.NormalizeDim(dim, rank)
	if err != nil {
		return 0, fmt.Errorf("LogSoftmax: %w", err)
	}
	return d, nil
}

// Forward applies log-softmax along the resolved dimension.
func (l *LogSoftmax[B]) Forward(input *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error) {
	if input == nil {
		return nil, fmt.Errorf("LogSoftmax: %w", tensor.ErrNilTensor)
	}

	dim, err := l.ResolveDim(input.Rank())
	if err != nil {
		return nil, err
	}

	output, err := input.LogSoftmax(dim)
	if err != nil {
		return nil, fmt.Errorf("LogSoftmax: %w", err)
	}
	return output, nil
}

// Graph traces a single LogSoftmax node. The axis attribute always holds
// the resolved dimension, so the implicit rule never reaches the exporter.
func (l *LogSoftmax[B]) Graph(inputShape tensor.Shape) (*onnx.Graph, error) {
	if err := inputShape.Validate(); err != nil {
		return nil, fmt.Errorf("LogSoftmax: %w", err)
	}

	dim, err := l.ResolveDim(len(inputShape))
	if err != nil {
		return nil, err
	}

	g := &onnx.Graph{
		Name:  "net_LogSoftmax",
		Opset: onnx.DefaultOpset,
		Inputs: []onnx.ValueInfo{
			{Name: GraphInputName, DType: tensor.Float32, Shape: inputShape.Clone()},
		},
		Outputs: []onnx.ValueInfo{
			{Name: GraphOutputName, DType: tensor.Float32, Shape: inputShape.Clone()},
		},
		Nodes: []operators.Node{
			{
				Name:       "op",
				OpType:     "LogSoftmax",
				Inputs:     []string{GraphInputName},
				Outputs:    []string{GraphOutputName},
				Attributes: []operators.Attribute{operators.IntAttr("axis", int64(dim))},
			},
		},
	}
	return g, nil
}

// ImplicitDim is the dimension PyTorch picks for softmax-family modules
// constructed without one.
func ImplicitDim(rank int) int {
	switch rank {
	case 0, 1, 3:
		return 0
	default:
		return 1
	}
}
