package operators

import (
	"fmt"

	"github.com/born-ml/fixtures/internal/tensor"
)

func (r *Registry) registerMathOps() {
	r.mustRegister("Exp", handleExp)
	r.mustRegister("Log", handleLog)
	r.mustRegister("Identity", handleIdentity)
}

func handleExp(ctx *Context, _ *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	x, err := unaryInput("exp", inputs)
	if err != nil {
		return nil, err
	}
	return []*tensor.RawTensor{ctx.Backend.Exp(x)}, nil
}

func handleLog(ctx *Context, _ *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	x, err := unaryInput("log", inputs)
	if err != nil {
		return nil, err
	}
	return []*tensor.RawTensor{ctx.Backend.Log(x)}, nil
}

func handleIdentity(_ *Context, _ *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	x, err := unaryInput("identity", inputs)
	if err != nil {
		return nil, err
	}
	return []*tensor.RawTensor{x}, nil
}

// unaryInput returns the single non-nil input of an element-wise op.
// An omitted ("") node input reaches handlers as nil.
func unaryInput(op string, inputs []*tensor.RawTensor) (*tensor.RawTensor, error) {
	if len(inputs) != 1 {
		return nil, fmt.Errorf("%s requires 1 input, got %d", op, len(inputs))
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("%s: %w", op, tensor.ErrNilTensor)
	}
	return inputs[0], nil
}
