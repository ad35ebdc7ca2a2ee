package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/fixtures/internal/tensor"
)

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newLike("exp", x)

	switch x.DType() {
	case tensor.Float32:
		mapUnary(x.AsFloat32(), result.AsFloat32(), math.Exp)
	case tensor.Float64:
		mapUnary(x.AsFloat64(), result.AsFloat64(), math.Exp)
	default:
		panic(fmt.Sprintf("exp: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// Log computes element-wise natural logarithm: ln(x).
// Follows IEEE semantics: ln(0) = -Inf, ln(x<0) = NaN.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newLike("log", x)

	switch x.DType() {
	case tensor.Float32:
		mapUnary(x.AsFloat32(), result.AsFloat32(), math.Log)
	case tensor.Float64:
		mapUnary(x.AsFloat64(), result.AsFloat64(), math.Log)
	default:
		panic(fmt.Sprintf("log: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

func mapUnary[T tensor.DType](src, dst []T, fn func(float64) float64) {
	for i, v := range src {
		dst[i] = T(fn(float64(v)))
	}
}
