package fixture

import (
	"fmt"
	"math"

	"github.com/born-ml/fixtures/internal/tensor"
)

// DefaultTolerance bounds |Σ exp(out) - 1| per slice.
const DefaultTolerance = 1e-5

// Property names reported by VerifyError.
const (
	CheckShape    = "shape"
	CheckNonPos   = "non-positive"
	CheckSumToOne = "sum-to-one"
	CheckFinite   = "finite"
)

// VerifyError describes the first log-softmax property an output violates.
type VerifyError struct {
	Check string  // One of the Check* constants
	Index int     // Flat element or slice index, -1 for shape errors
	Value float64 // Offending value
	Msg   string
}

func (e *VerifyError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("verify %s: %s", e.Check, e.Msg)
	}
	return fmt.Sprintf("verify %s at %d: %s (value %g)", e.Check, e.Index, e.Msg, e.Value)
}

// Report summarizes a successful verification.
type Report struct {
	Slices     int     // Number of slices along the normalized dim
	MaxSumDiff float64 // Largest |Σ exp(out) - 1| seen
}

// Verify checks that output is a valid log-softmax of input along dim:
// identical shapes, finite inputs and outputs, every value ≤ tol,
// and Σ exp(out) within tol of 1 for every slice.
func Verify(input, output *tensor.RawTensor, dim int, tol float64) (Report, error) {
	if input == nil || output == nil {
		return Report{}, tensor.ErrNilTensor
	}
	if !input.Shape().Equal(output.Shape()) {
		return Report{}, &VerifyError{
			Check: CheckShape,
			Index: -1,
			Msg:   fmt.Sprintf("output shape %v differs from input shape %v", output.Shape(), input.Shape()),
		}
	}

	shape := output.Shape()
	dim, err := tensor.NormalizeDim(dim, len(shape))
	if err != nil {
		return Report{}, err
	}

	in := input.Float64s()
	out := output.Float64s()

	for i, v := range in {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Report{}, &VerifyError{Check: CheckFinite, Index: i, Value: v, Msg: "input is not finite"}
		}
	}

	for i, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Report{}, &VerifyError{Check: CheckFinite, Index: i, Value: v, Msg: "output is not finite"}
		}
		if v > tol {
			return Report{}, &VerifyError{Check: CheckNonPos, Index: i, Value: v, Msg: "log-probability above zero"}
		}
	}

	outerSize, axisSize, innerSize := shape.Layout(dim)
	report := Report{Slices: outerSize * innerSize}

	for outer := 0; outer < outerSize; outer++ {
		base := outer * axisSize * innerSize
		for inner := 0; inner < innerSize; inner++ {
			var sum float64
			for a := 0; a < axisSize; a++ {
				sum += math.Exp(out[base+a*innerSize+inner])
			}
			diff := math.Abs(sum - 1)
			if diff > tol {
				return Report{}, &VerifyError{
					Check: CheckSumToOne,
					Index: outer*innerSize + inner,
					Value: sum,
					Msg:   fmt.Sprintf("exp of slice sums to %g", sum),
				}
			}
			report.MaxSumDiff = math.Max(report.MaxSumDiff, diff)
		}
	}

	return report, nil
}
