package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/fixtures/internal/parallel"
	"github.com/born-ml/fixtures/internal/tensor"
)

// SumDim sums tensor elements along the specified dimension.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
//
// Example:
//
//	x := tensor.Randn[float32](tensor.Shape{2, 3, 4}, backend)
//	y := backend.SumDim(x.Raw(), -1, true)   // shape: [2, 3, 1]
//	z := backend.SumDim(x.Raw(), -1, false)  // shape: [2, 3]
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceDim("sumdim", x, dim, keepDim, 0, func(acc, v float64) float64 {
		return acc + v
	})
}

// MaxDim takes the maximum of tensor elements along the specified dimension.
// A NaN anywhere in a slice makes that slice's result NaN.
func (cpu *CPUBackend) MaxDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceDim("maxdim", x, dim, keepDim, math.Inf(-1), func(acc, v float64) float64 {
		switch {
		case math.IsNaN(acc):
			return acc
		case v > acc || math.IsNaN(v):
			return v
		default:
			return acc
		}
	})
}

func (cpu *CPUBackend) reduceDim(op string, x *tensor.RawTensor, dim int, keepDim bool,
	init float64, fn func(acc, v float64) float64,
) *tensor.RawTensor {
	dim = normalizeDim(op, x, dim)
	shape := x.Shape()

	// Reducing a scalar is the identity.
	if len(shape) == 0 {
		return x.Clone()
	}

	var outShape tensor.Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[dim] = 1
	} else {
		outShape = make(tensor.Shape, 0, len(shape)-1)
		for i := range shape {
			if i != dim {
				outShape = append(outShape, shape[i])
			}
		}
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	switch x.DType() {
	case tensor.Float32:
		reduceSlices(cpu.par, x.AsFloat32(), result.AsFloat32(), shape, dim, init, fn)
	case tensor.Float64:
		reduceSlices(cpu.par, x.AsFloat64(), result.AsFloat64(), shape, dim, init, fn)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, x.DType()))
	}

	return result
}

// reduceSlices folds each slice along dim into one output element.
// Output element s = outer*innerSize + inner either way keepDim is set.
func reduceSlices[T tensor.DType](par parallel.Config, in, out []T, shape tensor.Shape, dim int,
	init float64, fn func(acc, v float64) float64,
) {
	outerSize, axisSize, innerSize := shape.Layout(dim)

	parallel.For(outerSize*innerSize, par, func(s int) {
		base := (s/innerSize)*axisSize*innerSize + s%innerSize
		acc := init
		for a := 0; a < axisSize; a++ {
			acc = fn(acc, float64(in[base+a*innerSize]))
		}
		out[s] = T(acc)
	})
}
