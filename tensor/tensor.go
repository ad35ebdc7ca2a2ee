// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/born-ml/fixtures/internal/tensor"
)

// DType is a constraint for tensor element types (float32, float64).
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// CPU is the only device the fixtures run on.
const CPU Device = tensor.CPU

// Shape represents the dimensions of a tensor.
// Example: Shape{1, 2, 3, 3} is the LogSoftmax dummy input.
type Shape = tensor.Shape

// RawTensor is the low-level, type-erased tensor storage.
//
// Most users should use the high-level Tensor[T, B] type instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32()
type RawTensor = tensor.RawTensor

// Backend is the compute interface tensors dispatch to.
type Backend = tensor.Backend

// Tensor is a type-safe tensor bound to a backend.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Sentinel errors, checked with errors.Is.
var (
	ErrNilTensor        = tensor.ErrNilTensor
	ErrDimOutOfRange    = tensor.ErrDimOutOfRange
	ErrUnsupportedDType = tensor.ErrUnsupportedDType
	ErrShapeMismatch    = tensor.ErrShapeMismatch
	ErrInvalidShape     = tensor.ErrInvalidShape
)

// NewRaw allocates zeroed storage for the given shape and type.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// NormalizeDim maps dim in [-rank, rank) to [0, rank).
func NormalizeDim(dim, rank int) (int, error) {
	return tensor.NormalizeDim(dim, rank)
}

// ParseDataType parses "float32", "f32", "float64" or "f64".
func ParseDataType(name string) (DataType, error) {
	return tensor.ParseDataType(name)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T](shape, b)
}

// Full creates a tensor filled with value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full(shape, value, b)
}

// FromSlice creates a tensor from data laid out row-major in shape.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice(data, shape, b)
}

// Randn creates a tensor of N(0, 1) samples from a fresh random source.
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Randn[T](shape, b)
}

// RandnFrom creates a tensor of N(0, 1) samples drawn from rng.
// The same seed produces the same tensor.
func RandnFrom[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	return tensor.RandnFrom[T](shape, rng, b)
}
