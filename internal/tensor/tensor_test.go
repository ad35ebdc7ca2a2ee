package tensor

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopBackend satisfies Backend for tests that only exercise storage.
type nopBackend struct{}

func (nopBackend) Exp(*RawTensor) *RawTensor { panic("not implemented") }
func (nopBackend) Log(*RawTensor) *RawTensor { panic("not implemented") }
func (nopBackend) Softmax(*RawTensor, int) *RawTensor { panic("not implemented") }
func (nopBackend) LogSoftmax(*RawTensor, int) *RawTensor { panic("not implemented") }
func (nopBackend) SumDim(*RawTensor, int, bool) *RawTensor { panic("not implemented") }
func (nopBackend) MaxDim(*RawTensor, int, bool) *RawTensor { panic("not implemented") }
func (nopBackend) Name() string { return "nop" }
func (nopBackend) Device() Device { return CPU }

func TestDataType(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
		str   string
	}{
		{Float32, 4, "float32"},
		{Float64, 8, "float64"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.dtype.Size())
		assert.Equal(t, tt.str, tt.dtype.String())

		parsed, err := ParseDataType(tt.str)
		require.NoError(t, err)
		assert.Equal(t, tt.dtype, parsed)
	}

	_, err := ParseDataType("int8")
	assert.ErrorIs(t, err, ErrUnsupportedDType)
}

func TestShape(t *testing.T) {
	s := Shape{1, 2, 3, 3}

	assert.Equal(t, 18, s.NumElements())
	assert.Equal(t, []int{18, 9, 3, 1}, s.ComputeStrides())
	assert.True(t, s.Equal(Shape{1, 2, 3, 3}))
	assert.False(t, s.Equal(Shape{1, 2, 3}))
	assert.NoError(t, s.Validate())
	assert.Equal(t, 1, Shape{}.NumElements())

	clone := s.Clone()
	clone[0] = 7
	assert.Equal(t, 1, s[0], "Clone must not alias")
}

func TestShapeValidate(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		ok    bool
	}{
		{"scalar", Shape{}, true},
		{"dummy", Shape{1, 2, 3, 3}, true},
		{"at cap", Shape{1 << 16, 1 << 15}, true},
		{"zero dim", Shape{2, 0}, false},
		{"negative dim", Shape{-1, 3}, false},
		{"past cap", Shape{1 << 16, 1 << 15, 2}, false},
		{"large without overflow", Shape{1000000000, 1000000000}, false},
		{"wraps int64", Shape{4611686018427387904, 4}, false},
		{"wraps to zero late", Shape{4, 4, 4611686018427387904}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidShape)
		})
	}

	_, err := NewRaw(Shape{4611686018427387904, 4}, Float32, CPU)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestShapeLayout(t *testing.T) {
	tests := []struct {
		name               string
		shape              Shape
		dim                int
		outer, axis, inner int
		slices             int
	}{
		{"dummy dim 1", Shape{1, 2, 3, 3}, 1, 1, 2, 9, 9},
		{"dummy dim 0", Shape{1, 2, 3, 3}, 0, 1, 1, 18, 18},
		{"dummy last", Shape{1, 2, 3, 3}, 3, 6, 3, 1, 6},
		{"vector", Shape{5}, 0, 1, 5, 1, 1},
		{"scalar", Shape{}, 0, 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outer, axis, inner := tt.shape.Layout(tt.dim)
			assert.Equal(t, tt.outer, outer)
			assert.Equal(t, tt.axis, axis)
			assert.Equal(t, tt.inner, inner)
			assert.Equal(t, tt.slices, tt.shape.NumSlices(tt.dim))
		})
	}
}

func TestNormalizeDim(t *testing.T) {
	tests := []struct {
		dim, rank int
		want      int
		wantErr   bool
	}{
		{1, 4, 1, false},
		{-1, 4, 3, false},
		{-4, 4, 0, false},
		{4, 4, 0, true},
		{-5, 4, 0, true},
		{0, 0, 0, false},
		{-1, 0, 0, false},
		{1, 0, 0, true},
	}

	for _, tt := range tests {
		got, err := NormalizeDim(tt.dim, tt.rank)
		if tt.wantErr {
			require.Error(t, err, "dim %d rank %d", tt.dim, tt.rank)
			assert.True(t, errors.Is(err, ErrDimOutOfRange))
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFromSlice(t *testing.T) {
	x, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, nopBackend{})
	require.NoError(t, err)

	assert.Equal(t, Float32, x.DType())
	assert.Equal(t, 2, x.Rank())
	assert.Equal(t, float32(6), x.At(1, 2))

	x.Set(10, 0, 1)
	assert.Equal(t, []float32{1, 10, 3, 4, 5, 6}, x.Data())

	clone := x.Clone()
	clone.Set(0, 0, 0)
	assert.Equal(t, float32(1), x.At(0, 0), "Clone must deep copy")

	_, err = FromSlice([]float32{1, 2}, Shape{3}, nopBackend{})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// The wrapped element count would be 0 and match the empty slice.
	_, err = FromSlice([]float32{}, Shape{4611686018427387904, 4}, nopBackend{})
	assert.ErrorIs(t, err, ErrInvalidShape)

	assert.Panics(t, func() { x.At(2, 0) })
	assert.Panics(t, func() { x.At(0) })
}

func TestFloat64s(t *testing.T) {
	x, err := FromSlice([]float32{0.5, -1.5}, Shape{2}, nopBackend{})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -1.5}, x.Raw().Float64s())

	y, err := FromSlice([]float64{math.Pi}, Shape{1}, nopBackend{})
	require.NoError(t, err)
	assert.Equal(t, []float64{math.Pi}, y.Raw().Float64s())
}

func TestRandnFromIsReproducible(t *testing.T) {
	shape := Shape{1, 2, 3, 3}
	a := RandnFrom[float32](shape, rand.New(rand.NewSource(42)), nopBackend{})
	b := RandnFrom[float32](shape, rand.New(rand.NewSource(42)), nopBackend{})
	c := RandnFrom[float32](shape, rand.New(rand.NewSource(43)), nopBackend{})

	assert.Equal(t, a.Data(), b.Data())
	assert.NotEqual(t, a.Data(), c.Data())

	for _, v := range a.Data() {
		assert.False(t, math.IsNaN(float64(v)) || math.IsInf(float64(v), 0))
	}
}

func TestRandnMoments(t *testing.T) {
	x := RandnFrom[float64](Shape{10000}, rand.New(rand.NewSource(1)), nopBackend{})

	var sum, sumSq float64
	for _, v := range x.Data() {
		sum += v
		sumSq += v * v
	}
	n := float64(x.NumElements())
	mean := sum / n
	variance := sumSq/n - mean*mean

	assert.InDelta(t, 0.0, mean, 0.05)
	assert.InDelta(t, 1.0, variance, 0.05)
}

func TestDataTypeText(t *testing.T) {
	text, err := Float64.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "float64", string(text))

	var dt DataType
	require.NoError(t, dt.UnmarshalText([]byte("float32")))
	assert.Equal(t, Float32, dt)

	assert.Error(t, dt.UnmarshalText([]byte("bfloat16")))

	_, err = DataType(99).MarshalText()
	assert.ErrorIs(t, err, ErrUnsupportedDType)
}
