package array_test

import (
	"testing"

	"github.com/katalvlaran/findiff/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Validation checks shape validation and zero initialization.
func TestNewDense_Validation(t *testing.T) {
	_, err := array.NewDense()
	assert.ErrorIs(t, err, array.ErrInvalidShape, "no axes")

	_, err = array.NewDense(3, 0)
	assert.ErrorIs(t, err, array.ErrInvalidShape, "zero extent")

	d, err := array.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, d.Shape())
	assert.Equal(t, 2, d.NDim())
	assert.Equal(t, 6, d.Size())
	for _, v := range d.Data() {
		assert.Zero(t, v)
	}
}

// TestDense_RowMajorLayout checks strides and the flat ordering contract.
func TestDense_RowMajorLayout(t *testing.T) {
	d, err := array.NewDense(2, 3, 4)
	require.NoError(t, err)

	assert.Equal(t, 12, d.Stride(0))
	assert.Equal(t, 4, d.Stride(1))
	assert.Equal(t, 1, d.Stride(2), "last axis is contiguous")

	require.NoError(t, d.Set(7, 1, 2, 3))
	assert.Equal(t, 7.0, d.Data()[1*12+2*4+3])
}

// TestDense_AtSetBounds checks multi-index access and bounds errors.
func TestDense_AtSetBounds(t *testing.T) {
	d, err := array.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, d.Set(1.5, 0, 1))
	v, err := d.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, array.ErrIndexOutOfBounds, "axis 0 overflow")

	_, err = d.At(0, -1)
	assert.ErrorIs(t, err, array.ErrIndexOutOfBounds, "negative index")

	_, err = d.At(0)
	assert.ErrorIs(t, err, array.ErrIndexOutOfBounds, "wrong index count")
}

// TestFromFunc checks the multi-index sampling order.
func TestFromFunc(t *testing.T) {
	d, err := array.FromFunc([]int{2, 3}, func(idx []int) float64 {
		return float64(10*idx[0] + idx[1])
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 2, 10, 11, 12}, d.Data())
}

// TestClone_Independence checks that Clone detaches the backing data.
func TestClone_Independence(t *testing.T) {
	d, err := array.FromFunc([]int{3}, func(idx []int) float64 { return float64(idx[0]) })
	require.NoError(t, err)

	cp := d.Clone()
	require.NoError(t, cp.Set(42, 0))

	v, err := d.At(0)
	require.NoError(t, err)
	assert.Zero(t, v, "original must be untouched")
}

// TestOps_Elementwise checks Add, Sub, Scale and Hadamard.
func TestOps_Elementwise(t *testing.T) {
	a, err := array.FromFunc([]int{2, 2}, func(idx []int) float64 { return 1 })
	require.NoError(t, err)
	b, err := array.FromFunc([]int{2, 2}, func(idx []int) float64 { return float64(idx[0] + idx[1]) })
	require.NoError(t, err)

	sum, err := array.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 2, 3}, sum.Data())

	dif, err := array.Sub(b, a)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0, 0, 1}, dif.Data())

	sc, err := array.Scale(b, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 2, 4}, sc.Data())

	had, err := array.Hadamard(b, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1, 4}, had.Data())
}

// TestOps_Errors checks the nil and shape-mismatch contracts.
func TestOps_Errors(t *testing.T) {
	a, err := array.NewDense(2, 2)
	require.NoError(t, err)
	b, err := array.NewDense(2, 3)
	require.NoError(t, err)

	_, err = array.Add(a, b)
	assert.ErrorIs(t, err, array.ErrShapeMismatch)

	_, err = array.Hadamard(a, nil)
	assert.ErrorIs(t, err, array.ErrNilArray)

	_, err = array.Scale(nil, 2)
	assert.ErrorIs(t, err, array.ErrNilArray)
}
