package stencil

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for stencil derivation.
var (
	// ErrScheme indicates a malformed derivative/accuracy/offset specification:
	// negative derivative order, non-positive or odd accuracy, duplicate offsets.
	ErrScheme = errors.New("stencil: invalid scheme specification")
	// ErrInsufficientOffsets indicates an offset set too small to determine the
	// requested derivative order (underdetermined Taylor system).
	ErrInsufficientOffsets = errors.New("stencil: offset set cannot support requested derivative order")
	// ErrInvalidArraySize indicates an axis extent smaller than the minimal
	// stencil footprint for the requested derivative and accuracy order.
	ErrInvalidArraySize = errors.New("stencil: array extent too small for stencil footprint")
	// ErrCoefficientQuery indicates that not exactly one of the two selectors
	// (accuracy order, explicit offsets) was supplied to Coefficients.
	ErrCoefficientQuery = errors.New("stencil: exactly one of accuracy order or offset set must be given")
)

// Stencil maps an integer grid-point offset to its finite-difference weight.
// Weights of a derivative of order ≥ 1 sum to zero; a zeroth-order stencil
// sums to one.
type Stencil map[int]float64

// Offsets returns the stencil's offsets in ascending order.
func (s Stencil) Offsets() []int {
	offs := make([]int, 0, len(s))
	for o := range s {
		offs = append(offs, o)
	}
	sort.Ints(offs)

	return offs
}

// String renders the stencil deterministically in ascending offset order.
func (s Stencil) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, o := range s.Offsets() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %g", o, s[o])
	}
	b.WriteString("}")

	return b.String()
}

// Set holds every stencil needed to differentiate a whole axis: the interior
// central stencil plus one shifted one-sided stencil per boundary point.
// Left[k] and Right[k] serve the k-th point from the respective edge,
// k = 0..Boundary()-1. A Set is immutable once built.
type Set struct {
	// Deriv and Acc echo the request that produced the set.
	Deriv, Acc int
	// Center is the symmetric interior stencil.
	Center Stencil
	// Left holds the shifted stencils for points near the low-index edge.
	Left []Stencil
	// Right holds the shifted stencils for points near the high-index edge.
	Right []Stencil
}

// Boundary returns the number of points on each side that need a one-sided
// stencil: the central stencil's half-width.
func (s *Set) Boundary() int { return len(s.Left) }

// At selects the stencil serving point i of an axis with n points:
// Left[i] near the low edge, Right[n-1-i] near the high edge, Center otherwise.
func (s *Set) At(i, n int) Stencil {
	if i < len(s.Left) {
		return s.Left[i]
	}
	if n-1-i < len(s.Right) {
		return s.Right[n-1-i]
	}

	return s.Center
}

// Query selects how Coefficients derives its weights: by symmetric central
// scheme of a given accuracy order, or for an explicit offset set.
// Exactly one selector must be set.
type Query struct {
	// Acc requests the symmetric central stencil of this accuracy order.
	Acc int
	// Offsets requests weights for this explicit offset set.
	Offsets []int
}
