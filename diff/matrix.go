package diff

import (
	"fmt"

	"github.com/katalvlaran/findiff/array"
	"github.com/katalvlaran/findiff/grid"
	"github.com/katalvlaran/findiff/sparse"
)

// Matrix assembles the operator as a sparse matrix acting on arrays of the
// given shape flattened in row-major order: MatVec(M, f.Data()) equals
// Apply(o, f, g).Data() for every f of that shape, with accuracy preserved
// near the boundaries through the shifted one-sided stencils.
//
// Per-axis schemes become banded 1-D matrices composed by Kronecker product
// in ascending axis order; sums map to matrix sums, products to matrix
// products in the same non-commutative order, coefficient fields to diagonal
// matrices over the flattened field.
//
// Errors: grid.ErrInvalidGrid (nil grid, empty or non-positive shape),
// stencil.ErrScheme, stencil.ErrInvalidArraySize, array.ErrShapeMismatch.
func Matrix(o *Op, shape []int, g *grid.Grid, opts ...Option) (*sparse.Matrix, error) {
	if g == nil {
		return nil, fmt.Errorf("nil grid: %w", grid.ErrInvalidGrid)
	}
	if len(shape) == 0 {
		return nil, fmt.Errorf("empty shape: %w", grid.ErrInvalidGrid)
	}
	size := 1
	for ax, n := range shape {
		if n < 1 {
			return nil, fmt.Errorf("axis %d extent %d must be positive: %w", ax, n, grid.ErrInvalidGrid)
		}
		size *= n
	}
	eo := resolveOptions(opts)
	cache := newSchemeCache(g, eo.acc, shape)

	for _, term := range o.partialTerms() {
		for axis, d := range term {
			if _, err := cache.get(axis, d); err != nil {
				return nil, err
			}
		}
	}
	if err := validateCoefShapes(o, shape); err != nil {
		return nil, err
	}

	return evalMatrix(o, shape, size, cache)
}

func evalMatrix(o *Op, shape []int, size int, cache *schemeCache) (*sparse.Matrix, error) {
	switch o.kind {
	case kConst:
		eye, err := sparse.Identity(size)
		if err != nil {
			return nil, err
		}

		return sparse.Scale(eye, o.value)

	case kPartial:
		// Kron over every array axis in ascending order: the axis scheme where
		// a derivative is taken, the identity elsewhere. Row-major flattening
		// makes this the exact matrix counterpart of per-axis application.
		var out *sparse.Matrix
		for axis, n := range shape {
			var m *sparse.Matrix
			var err error
			if d, ok := o.orders[axis]; ok {
				s, serr := cache.get(axis, d)
				if serr != nil {
					return nil, serr
				}
				if m, err = axisMatrix(s); err != nil {
					return nil, err
				}
			} else if m, err = sparse.Identity(n); err != nil {
				return nil, err
			}
			if out == nil {
				out = m
				continue
			}
			if out, err = sparse.Kron(out, m); err != nil {
				return nil, err
			}
		}

		return out, nil

	case kCoef:
		return sparse.Diag(o.field.Data())

	case kSum:
		out, err := evalMatrix(o.kids[0], shape, size, cache)
		if err != nil {
			return nil, err
		}
		for _, k := range o.kids[1:] {
			m, err := evalMatrix(k, shape, size, cache)
			if err != nil {
				return nil, err
			}
			if out, err = sparse.Add(out, m); err != nil {
				return nil, err
			}
		}

		return out, nil

	case kProd:
		// Left-to-right matrix product matches right-to-left application:
		// the rightmost factor is nearest the operand vector.
		out, err := evalMatrix(o.kids[0], shape, size, cache)
		if err != nil {
			return nil, err
		}
		for _, k := range o.kids[1:] {
			m, err := evalMatrix(k, shape, size, cache)
			if err != nil {
				return nil, err
			}
			if out, err = sparse.Mul(out, m); err != nil {
				return nil, err
			}
		}

		return out, nil
	}

	return nil, fmt.Errorf("unknown operator node: %w", ErrOperatorSpec)
}

// axisMatrix renders a single-axis scheme as its banded n×n matrix.
func axisMatrix(s *axisScheme) (*sparse.Matrix, error) {
	m, err := sparse.NewMatrix(s.n, s.n)
	if err != nil {
		return nil, err
	}
	for i, row := range s.rows {
		for j, col := range row.cols {
			if err = m.Set(i, col, row.ws[j]); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// ApplyViaMatrix evaluates the operator by assembling its sparse matrix and
// multiplying the flattened operand. Mostly useful for cross-checking the
// direct evaluator; Apply is cheaper for one-off evaluations.
func ApplyViaMatrix(o *Op, f *array.Dense, g *grid.Grid, opts ...Option) (*array.Dense, error) {
	if f == nil {
		return nil, array.ErrNilArray
	}
	m, err := Matrix(o, f.Shape(), g, opts...)
	if err != nil {
		return nil, err
	}
	y, err := sparse.MatVec(m, f.Data())
	if err != nil {
		return nil, err
	}
	out, err := array.NewDense(f.Shape()...)
	if err != nil {
		return nil, err
	}
	copy(out.Data(), y)

	return out, nil
}
