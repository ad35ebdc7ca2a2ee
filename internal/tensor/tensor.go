package tensor

import "fmt"

// Tensor is a generic tensor with type T and backend B.
// It provides type-safe operations over multi-dimensional arrays.
//
// Type Parameters:
//   - T: Data type (must satisfy DType constraint)
//   - B: Computation backend (must implement Backend interface)
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{1, 2, 3, 3}, backend)
//	out, err := t.LogSoftmax(1)
type Tensor[T DType, B Backend] struct {
	raw     *RawTensor
	backend B
}

// New creates a Tensor from a RawTensor and backend.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return &Tensor[T, B]{
		raw:     raw,
		backend: b,
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		return nil, err
	}

	t := New[T, B](raw, b)
	copy(t.Data(), data)

	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T, B]) Shape() Shape {
	return t.raw.Shape()
}

// Rank returns the number of dimensions.
func (t *Tensor[T, B]) Rank() int {
	return len(t.raw.Shape())
}

// DType returns the tensor's data type.
func (t *Tensor[T, B]) DType() DataType {
	return t.raw.DType()
}

// Device returns the tensor's compute device.
func (t *Tensor[T, B]) Device() Device {
	return t.raw.Device()
}

// NumElements returns the total number of elements.
func (t *Tensor[T, B]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
// Used by backend implementations for low-level operations.
func (t *Tensor[T, B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor[T, B]) Backend() B {
	return t.backend
}

// Data returns a typed slice view of the tensor's data.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T, B]) Data() []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(t.raw.AsFloat32()).([]T)
	case float64:
		return any(t.raw.AsFloat64()).([]T)
	default:
		panic("unsupported type")
	}
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T, B]) At(indices ...int) T {
	return t.Data()[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T, B]) Set(value T, indices ...int) {
	t.Data()[t.offset(indices)] = value
}

func (t *Tensor[T, B]) offset(indices []int) int {
	shape := t.Shape()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(shape), len(indices)))
	}

	offset := 0
	strides := t.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T, B]) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.raw.DType(), t.raw.Shape(), t.raw.Device())
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T, B]) Clone() *Tensor[T, B] {
	return New[T, B](t.raw.Clone(), t.backend)
}

// Exp computes e^x for each element.
func (t *Tensor[T, B]) Exp() *Tensor[T, B] {
	return New[T, B](t.backend.Exp(t.raw), t.backend)
}

// Log computes the natural logarithm of each element.
func (t *Tensor[T, B]) Log() *Tensor[T, B] {
	return New[T, B](t.backend.Log(t.raw), t.backend)
}

// Softmax normalizes the tensor along dim so each slice sums to 1.
// Negative dims count from the end.
func (t *Tensor[T, B]) Softmax(dim int) (*Tensor[T, B], error) {
	d, err := NormalizeDim(dim, t.Rank())
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	return New[T, B](t.backend.Softmax(t.raw, d), t.backend), nil
}

// LogSoftmax computes log(softmax(x)) along dim using the log-sum-exp trick.
// Negative dims count from the end.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{1000, -1000}, Shape{2}, backend)
//	y, _ := x.LogSoftmax(0) // [0, -2000]
func (t *Tensor[T, B]) LogSoftmax(dim int) (*Tensor[T, B], error) {
	d, err := NormalizeDim(dim, t.Rank())
	if err != nil {
		return nil, fmt.Errorf("log_softmax: %w", err)
	}
	return New[T, B](t.backend.LogSoftmax(t.raw, d), t.backend), nil
}

// SumDim sums along dim. With keepDim the reduced dimension stays with size 1.
func (t *Tensor[T, B]) SumDim(dim int, keepDim bool) (*Tensor[T, B], error) {
	d, err := NormalizeDim(dim, t.Rank())
	if err != nil {
		return nil, fmt.Errorf("sum: %w", err)
	}
	return New[T, B](t.backend.SumDim(t.raw, d, keepDim), t.backend), nil
}

// MaxDim takes the maximum along dim. With keepDim the reduced dimension stays with size 1.
func (t *Tensor[T, B]) MaxDim(dim int, keepDim bool) (*Tensor[T, B], error) {
	d, err := NormalizeDim(dim, t.Rank())
	if err != nil {
		return nil, fmt.Errorf("max: %w", err)
	}
	return New[T, B](t.backend.MaxDim(t.raw, d, keepDim), t.backend), nil
}
