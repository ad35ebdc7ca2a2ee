package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/fixtures/internal/parallel"
	"github.com/born-ml/fixtures/internal/tensor"
)

// Softmax computes softmax along the specified dimension.
// Softmax(x_i) = exp(x_i - max) / sum(exp(x_j - max)) for all j in dimension.
func (cpu *CPUBackend) Softmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	dim = normalizeDim("softmax", x, dim)
	result := cpu.newLike("softmax", x)

	switch x.DType() {
	case tensor.Float32:
		softmaxSlices(cpu.par, x.AsFloat32(), result.AsFloat32(), x.Shape(), dim, false)
	case tensor.Float64:
		softmaxSlices(cpu.par, x.AsFloat64(), result.AsFloat64(), x.Shape(), dim, false)
	default:
		panic(fmt.Sprintf("softmax: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// LogSoftmax computes log(softmax(x)) along the specified dimension.
//
// Formula:
//
//	LogSoftmax(x)[i] = x[i] - LogSumExp(x)
//	                 = x[i] - (max(x) + log(Σ exp(x - max(x))))
//
// Computing it directly rather than as log(Softmax) keeps outputs finite
// when a slice's softmax underflows: [1000, -1000] gives [0, -2000].
func (cpu *CPUBackend) LogSoftmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	dim = normalizeDim("log_softmax", x, dim)
	result := cpu.newLike("log_softmax", x)

	switch x.DType() {
	case tensor.Float32:
		softmaxSlices(cpu.par, x.AsFloat32(), result.AsFloat32(), x.Shape(), dim, true)
	case tensor.Float64:
		softmaxSlices(cpu.par, x.AsFloat64(), result.AsFloat64(), x.Shape(), dim, true)
	default:
		panic(fmt.Sprintf("log_softmax: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// softmaxSlices normalizes every slice of in along dim into out.
// Accumulation runs in float64 for both element types.
func softmaxSlices[T tensor.DType](par parallel.Config, in, out []T, shape tensor.Shape, dim int, logSpace bool) {
	outerSize, axisSize, innerSize := shape.Layout(dim)

	parallel.For(outerSize*innerSize, par, func(s int) {
		base := (s/innerSize)*axisSize*innerSize + s%innerSize

		// Find max for numerical stability
		maxVal := math.Inf(-1)
		for a := 0; a < axisSize; a++ {
			if v := float64(in[base+a*innerSize]); v > maxVal || math.IsNaN(v) {
				maxVal = v
			}
		}

		var sum float64
		for a := 0; a < axisSize; a++ {
			sum += math.Exp(float64(in[base+a*innerSize]) - maxVal)
		}

		if logSpace {
			logSumExp := maxVal + math.Log(sum)
			for a := 0; a < axisSize; a++ {
				idx := base + a*innerSize
				out[idx] = T(float64(in[idx]) - logSumExp)
			}
			return
		}

		for a := 0; a < axisSize; a++ {
			idx := base + a*innerSize
			out[idx] = T(math.Exp(float64(in[idx])-maxVal) / sum)
		}
	})
}
