package diff

import (
	"fmt"

	"github.com/katalvlaran/findiff/array"
	"github.com/katalvlaran/findiff/grid"
)

// Apply evaluates the operator on the array f over the grid g and returns a
// fresh array of the same shape; f is never modified.
//
// Every referenced axis is validated before any arithmetic runs: the grid
// must bind it to a valid spacing, the axis must exist in f, and the axis
// extent must host the stencil footprint. A failed call therefore does no
// partial work.
//
// Products evaluate right to left, so D.Mul(Coef(g)) premultiplies the
// operand by g before differentiating and the product rule emerges from the
// stencil itself.
//
// Errors: array.ErrNilArray, grid.ErrInvalidGrid, stencil.ErrScheme,
// stencil.ErrInvalidArraySize, array.ErrShapeMismatch (coefficient field
// shape differing from f).
func Apply(o *Op, f *array.Dense, g *grid.Grid, opts ...Option) (*array.Dense, error) {
	if f == nil {
		return nil, array.ErrNilArray
	}
	if g == nil {
		return nil, fmt.Errorf("nil grid: %w", grid.ErrInvalidGrid)
	}
	eo := resolveOptions(opts)
	cache := newSchemeCache(g, eo.acc, f.Shape())

	// Eager validation: build every needed axis scheme up front so spacing,
	// accuracy and extent errors surface before any evaluation.
	for _, term := range o.partialTerms() {
		for axis, d := range term {
			if _, err := cache.get(axis, d); err != nil {
				return nil, err
			}
		}
	}
	if err := validateCoefShapes(o, f.Shape()); err != nil {
		return nil, err
	}

	return evalArray(o, f, cache)
}

// evalArray walks the operator tree. The operand is treated as immutable;
// every node returns a fresh array.
func evalArray(o *Op, f *array.Dense, cache *schemeCache) (*array.Dense, error) {
	switch o.kind {
	case kConst:
		return array.Scale(f, o.value)

	case kPartial:
		out := f
		for _, axis := range o.axes() {
			s, err := cache.get(axis, o.orders[axis])
			if err != nil {
				return nil, err
			}
			if out, err = s.apply(out, axis); err != nil {
				return nil, err
			}
		}

		return out, nil

	case kCoef:
		return array.Hadamard(o.field, f)

	case kSum:
		acc, err := evalArray(o.kids[0], f, cache)
		if err != nil {
			return nil, err
		}
		for _, k := range o.kids[1:] {
			t, err := evalArray(k, f, cache)
			if err != nil {
				return nil, err
			}
			if acc, err = array.Add(acc, t); err != nil {
				return nil, err
			}
		}

		return acc, nil

	case kProd:
		// Rightmost factor touches the operand first.
		out := f
		var err error
		for i := len(o.kids) - 1; i >= 0; i-- {
			if out, err = evalArray(o.kids[i], out, cache); err != nil {
				return nil, err
			}
		}

		return out, nil
	}

	return nil, fmt.Errorf("unknown operator node: %w", ErrOperatorSpec)
}

// validateCoefShapes checks every coefficient field in the tree against the
// operand shape.
func validateCoefShapes(o *Op, shape []int) error {
	switch o.kind {
	case kCoef:
		if !sameShape(o.field.Shape(), shape) {
			return fmt.Errorf("coefficient field shape %v differs from operand shape %v: %w",
				o.field.Shape(), shape, array.ErrShapeMismatch)
		}
	case kSum, kProd:
		for _, k := range o.kids {
			if err := validateCoefShapes(k, shape); err != nil {
				return err
			}
		}
	}

	return nil
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
