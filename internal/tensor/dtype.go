// Package tensor provides the core tensor types and operations used by the fixtures.
package tensor

import "fmt"

// DType is a constraint for supported tensor data types.
// Fixtures only trace floating-point graphs, so integer and bool
// element types are not part of the constraint.
type DType interface {
	~float32 | ~float64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// MarshalText encodes the data type by name.
func (dt DataType) MarshalText() ([]byte, error) {
	if dt != Float32 && dt != Float64 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDType, int(dt))
	}
	return []byte(dt.String()), nil
}

// UnmarshalText decodes a data type name such as "float32".
func (dt *DataType) UnmarshalText(text []byte) error {
	parsed, err := ParseDataType(string(text))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// ParseDataType maps a name such as "float32" back to its DataType.
func ParseDataType(name string) (DataType, error) {
	switch name {
	case "float32", "f32":
		return Float32, nil
	case "float64", "f64":
		return Float64, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedDType, name)
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported type")
	}
}
