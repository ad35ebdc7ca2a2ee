// Package fixture exposes the export fixtures: models paired with the
// dummy input an exporter traces them with.
//
// Example:
//
//	backend := cpu.New()
//	f, err := fixture.Default[*cpu.Backend]().Build(fixture.LogSoftmaxName, fixture.Options{}, backend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := f.Run()
//	report, err := fixture.Verify(f.Dummy.Raw(), out.Raw(), f.Dim, fixture.DefaultTolerance)
package fixture

import (
	"github.com/born-ml/fixtures/internal/fixture"
	"github.com/born-ml/fixtures/internal/tensor"
)

// LogSoftmaxName is the registry name of the LogSoftmax fixture.
const LogSoftmaxName = fixture.LogSoftmaxName

// DefaultTolerance is the slack Verify allows by default.
const DefaultTolerance = fixture.DefaultTolerance

// Errors returned by Registry.
var (
	ErrUnknownFixture   = fixture.ErrUnknownFixture
	ErrDuplicateFixture = fixture.ErrDuplicateFixture
)

// Fixture is a model paired with its dummy input.
type Fixture[B tensor.Backend] = fixture.Fixture[B]

// Options configures how a fixture is built.
type Options = fixture.Options

// Builder constructs a fixture for a backend.
type Builder[B tensor.Backend] = fixture.Builder[B]

// Registry maps fixture names to builders.
type Registry[B tensor.Backend] = fixture.Registry[B]

// Report summarizes a successful Verify.
type Report = fixture.Report

// VerifyError describes the first violated output property.
type VerifyError = fixture.VerifyError

// NewRegistry returns an empty registry.
func NewRegistry[B tensor.Backend]() *Registry[B] {
	return fixture.NewRegistry[B]()
}

// Default returns a registry with every built-in fixture registered.
func Default[B tensor.Backend]() *Registry[B] {
	return fixture.Default[B]()
}

// NewLogSoftmax builds the LogSoftmax fixture directly.
func NewLogSoftmax[B tensor.Backend](opts Options, backend B) (*Fixture[B], error) {
	return fixture.NewLogSoftmax(opts, backend)
}

// DummyShape returns the default dummy input shape, (1, 2, 3, 3).
func DummyShape() tensor.Shape {
	return fixture.DummyShape()
}

// Verify checks output is a valid log-softmax of input along dim.
func Verify(input, output *tensor.RawTensor, dim int, tol float64) (Report, error) {
	return fixture.Verify(input, output, dim, tol)
}
