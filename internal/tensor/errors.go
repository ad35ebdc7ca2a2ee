package tensor

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by tensor operations. Callers match them with errors.Is;
// operations wrap them with the offending shape or axis.
var (
	// ErrNilTensor is returned when an operation receives a nil tensor.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrDimOutOfRange is returned when a dimension index does not fit the tensor rank.
	ErrDimOutOfRange = errors.New("tensor: dimension out of range")

	// ErrUnsupportedDType is returned for element types an operation cannot handle.
	ErrUnsupportedDType = errors.New("tensor: unsupported dtype")

	// ErrShapeMismatch is returned when data length or shapes disagree.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrInvalidShape is returned for non-positive dimensions or oversized shapes.
	ErrInvalidShape = errors.New("tensor: invalid shape")
)

// NormalizeDim maps a possibly negative dimension onto [0, rank).
// Scalars are treated as rank 1 so that dim 0 and -1 address the single element.
func NormalizeDim(dim, rank int) (int, error) {
	wrapped := rank
	if wrapped == 0 {
		wrapped = 1
	}
	if dim < -wrapped || dim >= wrapped {
		return 0, fmt.Errorf("%w: dim %d for tensor of rank %d (expected range [%d, %d])",
			ErrDimOutOfRange, dim, rank, -wrapped, wrapped-1)
	}
	if dim < 0 {
		dim += wrapped
	}
	return dim, nil
}
