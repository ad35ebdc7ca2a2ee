// Package cpu implements the pure Go CPU backend.
package cpu

import (
	"fmt"

	"github.com/born-ml/fixtures/internal/parallel"
	"github.com/born-ml/fixtures/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
// It holds no mutable state, so one instance may be shared across goroutines.
// Independent slices of Softmax, LogSoftmax and the reductions are split
// across goroutines according to par.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// Compile-time check that CPUBackend implements tensor.Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// New creates a new CPU backend using parallel.DefaultConfig.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with an explicit parallelism setting.
// parallel.Sequential() runs every operation on the calling goroutine.
func NewWithConfig(par parallel.Config) *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    par,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// normalizeDim resolves dim against x's rank, panicking for out-of-range values.
// op is used as the panic message prefix.
func normalizeDim(op string, x *tensor.RawTensor, dim int) int {
	d, err := tensor.NormalizeDim(dim, len(x.Shape()))
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}
	return d
}

// newLike allocates a zeroed tensor with x's shape and dtype.
func (cpu *CPUBackend) newLike(op string, x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}
	return result
}
