package array

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for array construction and access.
var (
	// ErrInvalidShape indicates a shape with no axes or a non-positive extent.
	ErrInvalidShape = errors.New("array: shape must have at least one positive extent")
	// ErrIndexOutOfBounds indicates an index outside the valid range of an axis.
	ErrIndexOutOfBounds = errors.New("array: index out of bounds")
	// ErrShapeMismatch indicates two arrays of differing shapes in a binary kernel.
	ErrShapeMismatch = errors.New("array: operand shapes must be identical")
	// ErrNilArray indicates a nil *Dense passed to a kernel.
	ErrNilArray = errors.New("array: nil array")
)

// Dense is a row-major N-dimensional array of float64 values.
// shape holds the per-axis extents, stride the per-axis flat-index steps,
// and data the len(shape)-fold product of extents in row-major order.
type Dense struct {
	shape  []int
	stride []int
	data   []float64
}

// NewDense creates a zero-initialized Dense with the given per-axis extents.
// Returns ErrInvalidShape if no axes are given or any extent is < 1.
// Complexity: O(product(shape)) time and memory.
func NewDense(shape ...int) (*Dense, error) {
	if len(shape) == 0 {
		return nil, ErrInvalidShape
	}
	size := 1
	for _, n := range shape {
		if n <= 0 {
			return nil, ErrInvalidShape
		}
		size *= n
	}
	d := &Dense{
		shape:  append([]int(nil), shape...),
		stride: make([]int, len(shape)),
		data:   make([]float64, size),
	}
	// Row-major strides: last axis is contiguous.
	s := 1
	for ax := len(shape) - 1; ax >= 0; ax-- {
		d.stride[ax] = s
		s *= shape[ax]
	}

	return d, nil
}

// FromFunc creates a Dense whose element at each multi-index idx equals fn(idx).
// The idx slice passed to fn is reused between calls; copy it if retained.
// Complexity: O(product(shape)).
func FromFunc(shape []int, fn func(idx []int) float64) (*Dense, error) {
	d, err := NewDense(shape...)
	if err != nil {
		return nil, err
	}
	idx := make([]int, len(shape))
	for flat := range d.data {
		d.data[flat] = fn(idx)
		// Advance the multi-index odometer-style, last axis fastest.
		for ax := len(idx) - 1; ax >= 0; ax-- {
			idx[ax]++
			if idx[ax] < shape[ax] {
				break
			}
			idx[ax] = 0
		}
	}

	return d, nil
}

// Shape returns a copy of the per-axis extents.
func (d *Dense) Shape() []int {
	return append([]int(nil), d.shape...)
}

// NDim returns the number of axes.
func (d *Dense) NDim() int { return len(d.shape) }

// Size returns the total number of elements.
func (d *Dense) Size() int { return len(d.data) }

// Stride returns the flat-index step of axis ax.
func (d *Dense) Stride(ax int) int { return d.stride[ax] }

// Extent returns the length of axis ax.
func (d *Dense) Extent(ax int) int { return d.shape[ax] }

// Data returns the flat row-major backing slice. The slice is live: writes
// through it are visible in the array. Callers treating a Dense as immutable
// must not write through the returned slice.
func (d *Dense) Data() []float64 { return d.data }

// flatIndex maps a multi-index to its flat offset, or reports an out-of-bounds axis.
func (d *Dense) flatIndex(idx []int) (int, error) {
	if len(idx) != len(d.shape) {
		return 0, fmt.Errorf("array: got %d indices for %d axes: %w", len(idx), len(d.shape), ErrIndexOutOfBounds)
	}
	flat := 0
	for ax, i := range idx {
		if i < 0 || i >= d.shape[ax] {
			return 0, fmt.Errorf("array: index %d on axis %d (extent %d): %w", i, ax, d.shape[ax], ErrIndexOutOfBounds)
		}
		flat += i * d.stride[ax]
	}

	return flat, nil
}

// At retrieves the element at the given multi-index.
// Complexity: O(ndim).
func (d *Dense) At(idx ...int) (float64, error) {
	flat, err := d.flatIndex(idx)
	if err != nil {
		return 0, err
	}

	return d.data[flat], nil
}

// Set assigns v at the given multi-index.
// Complexity: O(ndim).
func (d *Dense) Set(v float64, idx ...int) error {
	flat, err := d.flatIndex(idx)
	if err != nil {
		return err
	}
	d.data[flat] = v

	return nil
}

// Clone returns a deep copy of the array.
// Complexity: O(size) time and memory.
func (d *Dense) Clone() *Dense {
	cp := &Dense{
		shape:  append([]int(nil), d.shape...),
		stride: append([]int(nil), d.stride...),
		data:   make([]float64, len(d.data)),
	}
	copy(cp.data, d.data)

	return cp
}

// SameShape reports whether d and o have identical extents on every axis.
func (d *Dense) SameShape(o *Dense) bool {
	if len(d.shape) != len(o.shape) {
		return false
	}
	for ax := range d.shape {
		if d.shape[ax] != o.shape[ax] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging: shape plus flattened data.
func (d *Dense) String() string {
	var b strings.Builder
	b.WriteString("Dense")
	fmt.Fprintf(&b, "%v[", d.shape)
	for i, v := range d.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", v)
	}
	b.WriteString("]")

	return b.String()
}
