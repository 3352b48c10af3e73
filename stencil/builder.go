package stencil

import (
	"fmt"
)

// Unbounded requests a stencil set without an axis-extent check, for callers
// that validate the extent themselves (for example the sparse matrix builder
// validating the whole shape up front).
const Unbounded = 0

// CenterPoints returns the offset count of the symmetric central stencil for
// the given derivative and accuracy order: 2·⌊(deriv+1)/2⌋ − 1 + acc.
// Always odd for even acc, so the stencil is symmetric around 0.
func CenterPoints(deriv, acc int) int {
	return 2*((deriv+1)/2) - 1 + acc
}

// SidePoints returns the offset count of the one-sided boundary stencils:
// deriv + acc. This is also the minimal axis extent that can host the scheme.
func SidePoints(deriv, acc int) int {
	return deriv + acc
}

// Build derives every stencil needed to differentiate an axis of n points to
// the requested accuracy: the interior central stencil plus one shifted
// one-sided stencil per boundary point on each side, so the full axis is
// always computable without out-of-grid access.
//
// Pass n = Unbounded to skip the extent check.
//
// Errors:
//   - ErrScheme           — deriv < 1, or acc not a positive even integer.
//   - ErrInvalidArraySize — 0 < n < deriv+acc.
//
// Complexity: O(B·p³) rational operations, B boundary width, p points per stencil.
func Build(deriv, acc, n int) (*Set, error) {
	if deriv < 1 {
		return nil, fmt.Errorf("derivative order %d must be >= 1: %w", deriv, ErrScheme)
	}
	if acc < 2 || acc%2 != 0 {
		return nil, fmt.Errorf("accuracy order %d must be a positive even integer: %w", acc, ErrScheme)
	}
	side := SidePoints(deriv, acc)
	if n != Unbounded && n < side {
		return nil, fmt.Errorf("axis extent %d cannot host %d-point stencil (derivative %d, accuracy %d): %w",
			n, side, deriv, acc, ErrInvalidArraySize)
	}

	center := CenterPoints(deriv, acc)
	half := (center - 1) / 2

	set := &Set{
		Deriv: deriv,
		Acc:   acc,
		Left:  make([]Stencil, half),
		Right: make([]Stencil, half),
	}

	// Interior: symmetric offsets -half..half.
	offs := make([]int, center)
	for i := range offs {
		offs[i] = i - half
	}
	st, err := Solve(deriv, offs)
	if err != nil {
		return nil, err
	}
	set.Center = st

	// Boundary: the k-th point from an edge keeps the one-sided point count
	// but shifts the window to stay inside the grid, preserving the accuracy
	// order near the edges.
	for k := 0; k < half; k++ {
		left := make([]int, side)
		right := make([]int, side)
		for i := range left {
			left[i] = i - k
			right[i] = k - (side - 1) + i
		}
		if set.Left[k], err = Solve(deriv, left); err != nil {
			return nil, err
		}
		if set.Right[k], err = Solve(deriv, right); err != nil {
			return nil, err
		}
	}

	return set, nil
}

// Coefficients is the stand-alone coefficient query entry point: it returns
// raw stencil weights for the given derivative order, derived either from a
// symmetric central scheme of the queried accuracy order or from an explicit
// offset set. Exactly one of the two selectors must be set.
//
// Errors:
//   - ErrCoefficientQuery   — zero or both selectors supplied.
//   - ErrScheme, ErrInsufficientOffsets — propagated from derivation.
func Coefficients(deriv int, q Query) (Stencil, error) {
	hasAcc := q.Acc != 0
	hasOffsets := len(q.Offsets) != 0
	if hasAcc == hasOffsets {
		return nil, ErrCoefficientQuery
	}
	if hasOffsets {
		return Solve(deriv, q.Offsets)
	}
	set, err := Build(deriv, q.Acc, Unbounded)
	if err != nil {
		return nil, err
	}

	return set.Center, nil
}
