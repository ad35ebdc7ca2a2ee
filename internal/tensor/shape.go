package tensor

import "fmt"

// MaxElements caps the element count of any tensor. It keeps byte sizes
// of every supported dtype well inside int range.
const MaxElements = 1 << 31

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is positive and that the element
// count does not exceed MaxElements. Errors wrap ErrInvalidShape.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
		if n > MaxElements/dim {
			return fmt.Errorf("%w: %v has more than %d elements", ErrInvalidShape, s, MaxElements)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Layout splits the shape around dim into the number of outer blocks,
// the length of dim itself and the number of contiguous inner elements.
//
// Element a of the slice (outer, inner) lives at
//
//	outer*axisSize*innerSize + a*innerSize + inner
//
// dim must already be normalized. A scalar shape yields (1, 1, 1).
func (s Shape) Layout(dim int) (outerSize, axisSize, innerSize int) {
	if len(s) == 0 {
		return 1, 1, 1
	}
	outerSize = 1
	for i := 0; i < dim; i++ {
		outerSize *= s[i]
	}
	axisSize = s[dim]
	innerSize = 1
	for i := dim + 1; i < len(s); i++ {
		innerSize *= s[i]
	}
	return outerSize, axisSize, innerSize
}

// NumSlices returns how many independent 1-D slices run along dim.
func (s Shape) NumSlices(dim int) int {
	outer, _, inner := s.Layout(dim)
	return outer * inner
}
