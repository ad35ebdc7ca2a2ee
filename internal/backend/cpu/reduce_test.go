package cpu

import (
	"math"
	"testing"

	"github.com/born-ml/fixtures/internal/tensor"
	"github.com/stretchr/testify/assert"
)

func TestSumDim(t *testing.T) {
	backend := New()
	x := rawFromFloat32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	tests := []struct {
		name     string
		dim      int
		keepDim  bool
		shape    tensor.Shape
		expected []float32
	}{
		{"rows", 1, false, tensor.Shape{2}, []float32{6, 15}},
		{"rows keepdim", 1, true, tensor.Shape{2, 1}, []float32{6, 15}},
		{"cols", 0, false, tensor.Shape{3}, []float32{5, 7, 9}},
		{"negative", -2, true, tensor.Shape{1, 3}, []float32{5, 7, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := backend.SumDim(x, tt.dim, tt.keepDim)
			assert.Equal(t, tt.shape, out.Shape())
			assert.Equal(t, tt.expected, out.AsFloat32())
		})
	}
}

func TestMaxDim(t *testing.T) {
	backend := New()
	x := rawFromFloat32(t, []float32{1, 9, 3, -4, -5, -6}, tensor.Shape{2, 3})

	assert.Equal(t, []float32{9, -4}, backend.MaxDim(x, 1, false).AsFloat32())
	assert.Equal(t, []float32{1, 9, 3}, backend.MaxDim(x, 0, false).AsFloat32())

	withNaN := rawFromFloat32(t, []float32{float32(math.NaN()), 1, 2}, tensor.Shape{3})
	out := backend.MaxDim(withNaN, 0, false)
	assert.Equal(t, tensor.Shape{}, out.Shape())
	assert.True(t, math.IsNaN(float64(out.AsFloat32()[0])))
}

func TestReduceScalarIsIdentity(t *testing.T) {
	backend := New()
	x := rawFromFloat32(t, []float32{2.5}, tensor.Shape{})

	assert.Equal(t, []float32{2.5}, backend.SumDim(x, 0, false).AsFloat32())
	assert.Equal(t, []float32{2.5}, backend.MaxDim(x, -1, true).AsFloat32())
}

func TestExpLog(t *testing.T) {
	backend := New()
	x := rawFromFloat32(t, []float32{0, 1, -1}, tensor.Shape{3})

	exp := backend.Exp(x)
	assert.InDeltaSlice(t, []float32{1, float32(math.E), float32(1 / math.E)}, exp.AsFloat32(), 1e-6)
	assert.InDeltaSlice(t, x.AsFloat32(), backend.Log(exp).AsFloat32(), 1e-6)

	zero := backend.Log(rawFromFloat32(t, []float32{0}, tensor.Shape{1})).AsFloat32()
	assert.True(t, math.IsInf(float64(zero[0]), -1))
}

func TestBackendMetadata(t *testing.T) {
	backend := New()
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
}
