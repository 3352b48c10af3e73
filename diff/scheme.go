package diff

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/findiff/array"
	"github.com/katalvlaran/findiff/grid"
	"github.com/katalvlaran/findiff/stencil"
)

// axisScheme is the fully discretized single-axis derivative: one weighted
// index row per grid point, spacing already folded into the weights. Both the
// array evaluator and the sparse matrix builder consume the same rows, so the
// two paths agree to the last bit.
type axisScheme struct {
	n    int
	rows []schemeRow
}

// schemeRow lists the grid indices and weights contributing to one point.
type schemeRow struct {
	cols []int
	ws   []float64
}

// buildAxisScheme discretizes d^deriv/dx^deriv along one axis of n points
// with the given spacing.
//
// Uniform axes reuse the integer-offset stencil set and scale by 1/h^deriv.
// Non-uniform axes solve a fresh Taylor system per point from the exact
// rational coordinate differences, so the weights absorb the local spacing.
//
// Errors: stencil.ErrScheme, stencil.ErrInvalidArraySize, grid.ErrInvalidGrid
// (coordinate count not matching the axis extent).
func buildAxisScheme(axis, deriv, acc, n int, ax grid.Axis) (*axisScheme, error) {
	if ax.IsUniform() {
		set, err := stencil.Build(deriv, acc, n)
		if err != nil {
			return nil, err
		}
		scale := 1 / math.Pow(ax.Step(), float64(deriv))
		s := &axisScheme{n: n, rows: make([]schemeRow, n)}
		for i := 0; i < n; i++ {
			st := set.At(i, n)
			offs := st.Offsets()
			row := schemeRow{cols: make([]int, len(offs)), ws: make([]float64, len(offs))}
			for j, o := range offs {
				row.cols[j] = i + o
				row.ws[j] = st[o] * scale
			}
			s.rows[i] = row
		}

		return s, nil
	}

	coords := ax.Coordinates()
	if len(coords) != n {
		return nil, fmt.Errorf("axis %d: %d coordinates for extent %d: %w",
			axis, len(coords), n, grid.ErrInvalidGrid)
	}
	if acc < 2 || acc%2 != 0 {
		return nil, fmt.Errorf("accuracy order %d must be a positive even integer: %w", acc, stencil.ErrScheme)
	}
	side := stencil.SidePoints(deriv, acc)
	if n < side {
		return nil, fmt.Errorf("axis %d extent %d cannot host %d-point stencil: %w",
			axis, n, side, stencil.ErrInvalidArraySize)
	}
	center := stencil.CenterPoints(deriv, acc)
	half := (center - 1) / 2

	// Exact rational coordinates; float64 values convert losslessly.
	rats := make([]*big.Rat, n)
	for i, x := range coords {
		rats[i] = new(big.Rat).SetFloat64(x)
	}

	s := &axisScheme{n: n, rows: make([]schemeRow, n)}
	for i := 0; i < n; i++ {
		// Window selection mirrors the uniform layout: shifted one-sided
		// windows within the boundary width, a symmetric window elsewhere.
		var lo, p int
		switch {
		case i < half:
			lo, p = 0, side
		case n-1-i < half:
			lo, p = n-side, side
		default:
			lo, p = i-half, center
		}
		offs := make([]*big.Rat, p)
		for j := 0; j < p; j++ {
			offs[j] = new(big.Rat).Sub(rats[lo+j], rats[i])
		}
		ws, err := stencil.SolveRat(deriv, offs)
		if err != nil {
			return nil, err
		}
		row := schemeRow{cols: make([]int, p), ws: make([]float64, p)}
		for j := 0; j < p; j++ {
			row.cols[j] = lo + j
			row.ws[j], _ = ws[j].Float64()
		}
		s.rows[i] = row
	}

	return s, nil
}

// apply evaluates the scheme along the given axis of f, returning a fresh
// array. All rows stay inside the axis, so no out-of-bounds access occurs.
// Complexity: O(size · points-per-row).
func (s *axisScheme) apply(f *array.Dense, axis int) (*array.Dense, error) {
	out, err := array.NewDense(f.Shape()...)
	if err != nil {
		return nil, err
	}
	src, dst := f.Data(), out.Data()
	inner := f.Stride(axis)
	lines := f.Size() / s.n

	for line := 0; line < lines; line++ {
		// Flat offset of element 0 of this line: split the line index into
		// the outer block and the inner remainder around the target axis.
		base := (line/inner)*(s.n*inner) + line%inner
		for i := 0; i < s.n; i++ {
			row := s.rows[i]
			acc := 0.0
			for j, col := range row.cols {
				acc += row.ws[j] * src[base+col*inner]
			}
			dst[base+i*inner] = acc
		}
	}

	return out, nil
}

// schemeKey memoizes per-axis schemes within one evaluation.
type schemeKey struct {
	axis, deriv int
}

// schemeCache builds and caches axis schemes for a single Apply or Matrix
// call: one grid, one accuracy order, per-axis extents from the operand shape.
type schemeCache struct {
	g     *grid.Grid
	acc   int
	shape []int
	memo  map[schemeKey]*axisScheme
}

func newSchemeCache(g *grid.Grid, acc int, shape []int) *schemeCache {
	return &schemeCache{g: g, acc: acc, shape: shape, memo: map[schemeKey]*axisScheme{}}
}

// get returns the scheme for the given axis and derivative order, building
// it on first use.
func (c *schemeCache) get(axis, deriv int) (*axisScheme, error) {
	key := schemeKey{axis: axis, deriv: deriv}
	if s, ok := c.memo[key]; ok {
		return s, nil
	}
	if axis >= len(c.shape) {
		return nil, fmt.Errorf("axis %d outside array of %d dimensions: %w",
			axis, len(c.shape), stencil.ErrInvalidArraySize)
	}
	ax, err := c.g.Axis(axis)
	if err != nil {
		return nil, err
	}
	s, err := buildAxisScheme(axis, deriv, c.acc, c.shape[axis], ax)
	if err != nil {
		return nil, err
	}
	c.memo[key] = s

	return s, nil
}
