package operators

import (
	"errors"
	"fmt"
	"sort"

	"github.com/born-ml/fixtures/internal/tensor"
)

var (
	// ErrUnsupportedOp is returned by Execute for unregistered operator types.
	ErrUnsupportedOp = errors.New("unsupported operator")

	// ErrDuplicateOp is returned by Register when the operator type is taken.
	ErrDuplicateOp = errors.New("operator already registered")
)

// OpHandler evaluates one node. It returns an error, never panics, for
// bad arity, nil inputs, unsupported dtypes and out-of-range attributes.
type OpHandler func(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error)

// Context carries the backend a handler computes on.
type Context struct {
	Backend tensor.Backend
}

// Registry maps operator types to handlers. It is not safe for concurrent
// Register calls; Runner only reads it after construction.
type Registry struct {
	handlers map[string]OpHandler
}

// NewRegistry returns a registry holding the element-wise and softmax operators.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[string]OpHandler)}
	r.registerMathOps()
	r.registerActivations()
	return r
}

// Register adds handler under opType. Built-ins cannot be replaced.
func (r *Registry) Register(opType string, handler OpHandler) error {
	switch {
	case opType == "":
		return errors.New("register: empty operator type")
	case handler == nil:
		return fmt.Errorf("register %s: nil handler", opType)
	}
	if _, ok := r.handlers[opType]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateOp, opType)
	}
	r.handlers[opType] = handler
	return nil
}

func (r *Registry) mustRegister(opType string, handler OpHandler) {
	if err := r.Register(opType, handler); err != nil {
		panic(err)
	}
}

// Get returns the handler for opType.
func (r *Registry) Get(opType string) (OpHandler, bool) {
	h, ok := r.handlers[opType]
	return h, ok
}

// Execute dispatches node to its handler.
func (r *Registry) Execute(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	handler, ok := r.handlers[node.OpType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOp, node.OpType)
	}
	return handler(ctx, node, inputs)
}

// SupportedOps lists the registered operator types in sorted order.
func (r *Registry) SupportedOps() []string {
	ops := make([]string, 0, len(r.handlers))
	for op := range r.handlers {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}
