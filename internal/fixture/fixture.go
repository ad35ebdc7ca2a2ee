// Package fixture bundles models with the dummy inputs used to trace them
// for export. Each fixture is a model plus the one input an exporter feeds
// through it; the LogSoftmax fixture is registered by default.
package fixture

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/born-ml/fixtures/internal/nn"
	"github.com/born-ml/fixtures/internal/onnx"
	"github.com/born-ml/fixtures/internal/tensor"
)

// LogSoftmaxName is the registry name of the LogSoftmax fixture.
const LogSoftmaxName = "LogSoftmax"

var (
	// ErrUnknownFixture is returned by Build for names never registered.
	ErrUnknownFixture = errors.New("fixture: unknown fixture")

	// ErrDuplicateFixture is returned by Register when a name is taken.
	ErrDuplicateFixture = errors.New("fixture: duplicate fixture")
)

// DummyShape returns the shape of the default dummy input, (1, 2, 3, 3).
func DummyShape() tensor.Shape {
	return tensor.Shape{1, 2, 3, 3}
}

// Options configures how a fixture is built.
type Options struct {
	// Dim is the normalization dimension. Nil selects the model's implicit default.
	Dim *int

	// Seed drives the dummy input's random source.
	Seed int64

	// Shape overrides the dummy input shape. Nil means DummyShape().
	Shape tensor.Shape
}

func (o Options) shape() tensor.Shape {
	if o.Shape == nil {
		return DummyShape()
	}
	return o.Shape.Clone()
}

// Fixture is a model paired with the dummy input used to trace it.
type Fixture[B tensor.Backend] struct {
	Name  string
	Model nn.Module[B]
	Dummy *tensor.Tensor[float32, B]

	// Dim is the resolved, non-negative dimension the model normalizes over.
	Dim int
}

// Run applies the model to the dummy input.
func (f *Fixture[B]) Run() (*tensor.Tensor[float32, B], error) {
	out, err := f.Model.Forward(f.Dummy)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", f.Name, err)
	}
	return out, nil
}

// Graph traces the model for the dummy input's shape.
func (f *Fixture[B]) Graph() (*onnx.Graph, error) {
	g, err := f.Model.Graph(f.Dummy.Shape())
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", f.Name, err)
	}
	return g, nil
}

// Builder constructs a fixture on the given backend.
type Builder[B tensor.Backend] func(opts Options, backend B) (*Fixture[B], error)

// Registry maps fixture names to builders. Safe for concurrent use.
type Registry[B tensor.Backend] struct {
	mu       sync.RWMutex
	builders map[string]Builder[B]
}

// NewRegistry creates an empty registry.
func NewRegistry[B tensor.Backend]() *Registry[B] {
	return &Registry[B]{builders: make(map[string]Builder[B])}
}

// Default creates a registry with every built-in fixture registered.
func Default[B tensor.Backend]() *Registry[B] {
	r := NewRegistry[B]()
	if err := r.Register(LogSoftmaxName, NewLogSoftmax[B]); err != nil {
		panic(err) // empty registry, cannot collide
	}
	return r
}

// Register adds a builder under name.
func (r *Registry[B]) Register(name string, builder Builder[B]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.builders[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateFixture, name)
	}
	r.builders[name] = builder
	return nil
}

// Build constructs the named fixture.
func (r *Registry[B]) Build(name string, opts Options, backend B) (*Fixture[B], error) {
	r.mu.RLock()
	builder, ok := r.builders[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownFixture, name, r.Names())
	}
	return builder(opts, backend)
}

// Names returns the registered fixture names in sorted order.
func (r *Registry[B]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewLogSoftmax builds the LogSoftmax fixture: a log-softmax model
// and a standard-normal dummy input.
func NewLogSoftmax[B tensor.Backend](opts Options, backend B) (*Fixture[B], error) {
	shape := opts.shape()
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", LogSoftmaxName, err)
	}

	var model *nn.LogSoftmax[B]
	if opts.Dim != nil {
		model = nn.NewLogSoftmaxDim[B](*opts.Dim)
	} else {
		model = nn.NewLogSoftmax[B]()
	}

	dim, err := model.ResolveDim(len(shape))
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", LogSoftmaxName, err)
	}

	//nolint:gosec // G404: dummy inputs use math/rand for reproducibility
	rng := rand.New(rand.NewSource(opts.Seed))

	return &Fixture[B]{
		Name:  LogSoftmaxName,
		Model: model,
		Dummy: tensor.RandnFrom[float32](shape, rng, backend),
		Dim:   dim,
	}, nil
}
