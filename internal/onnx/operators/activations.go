package operators

import (
	"fmt"

	"github.com/born-ml/fixtures/internal/tensor"
)

func (r *Registry) registerActivations() {
	r.mustRegister("Softmax", handleSoftmax)
	r.mustRegister("LogSoftmax", handleLogSoftmax)
}

func handleSoftmax(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	x, axis, err := softmaxArgs(node, inputs)
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	return []*tensor.RawTensor{ctx.Backend.Softmax(x, axis)}, nil
}

func handleLogSoftmax(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	x, axis, err := softmaxArgs(node, inputs)
	if err != nil {
		return nil, fmt.Errorf("logSoftmax: %w", err)
	}
	return []*tensor.RawTensor{ctx.Backend.LogSoftmax(x, axis)}, nil
}

// softmaxArgs validates the single input and resolves the axis attribute
// so the backend never sees an out-of-range axis.
func softmaxArgs(node *Node, inputs []*tensor.RawTensor) (*tensor.RawTensor, int, error) {
	if len(inputs) != 1 {
		return nil, 0, fmt.Errorf("requires 1 input, got %d", len(inputs))
	}
	x := inputs[0]
	if x == nil {
		return nil, 0, tensor.ErrNilTensor
	}
	if x.DType() != tensor.Float32 && x.DType() != tensor.Float64 {
		return nil, 0, fmt.Errorf("%w: %s", tensor.ErrUnsupportedDType, x.DType())
	}
	axis, err := tensor.NormalizeDim(int(GetAttrInt(node, "axis", -1)), len(x.Shape()))
	if err != nil {
		return nil, 0, err
	}
	return x, axis, nil
}
