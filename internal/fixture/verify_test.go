package fixture

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/fixtures/internal/backend/cpu"
	"github.com/born-ml/fixtures/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(t *testing.T, data []float32, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	x, err := tensor.FromSlice(data, shape, cpu.New())
	require.NoError(t, err)
	return x.Raw()
}

func TestVerifyAcceptsLogSoftmax(t *testing.T) {
	backend := cpu.New()
	in := raw(t, []float32{1000, -1000, 0, 0}, tensor.Shape{2, 2})
	out := backend.LogSoftmax(in, 1)

	report, err := Verify(in, out, 1, DefaultTolerance)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Slices)
}

func TestVerifyRejects(t *testing.T) {
	in := raw(t, []float32{0, 0}, tensor.Shape{2})
	half := float32(math.Log(0.5))

	tests := []struct {
		name  string
		in    *tensor.RawTensor
		out   *tensor.RawTensor
		check string
	}{
		{"shape", in, raw(t, []float32{half, half}, tensor.Shape{1, 2}), CheckShape},
		{"positive", in, raw(t, []float32{0.5, -2}, tensor.Shape{2}), CheckNonPos},
		{"sum", in, raw(t, []float32{half, -3}, tensor.Shape{2}), CheckSumToOne},
		{"nan output", in, raw(t, []float32{float32(math.NaN()), half}, tensor.Shape{2}), CheckFinite},
		{"inf input", raw(t, []float32{float32(math.Inf(1)), 0}, tensor.Shape{2}), raw(t, []float32{half, half}, tensor.Shape{2}), CheckFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Verify(tt.in, tt.out, 0, DefaultTolerance)

			var verr *VerifyError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.check, verr.Check)
			assert.Contains(t, verr.Error(), tt.check)
		})
	}
}

func TestVerifyBadArguments(t *testing.T) {
	in := raw(t, []float32{0, 0}, tensor.Shape{2})

	_, err := Verify(nil, in, 0, DefaultTolerance)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)

	_, err = Verify(in, in, 3, DefaultTolerance)
	assert.ErrorIs(t, err, tensor.ErrDimOutOfRange)
}
