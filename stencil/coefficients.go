package stencil

import (
	"fmt"
	"math/big"
)

// Solve computes the finite-difference weights reproducing the derivative of
// order deriv from the given distinct integer offsets, by solving the Taylor
// matching system in exact rational arithmetic and converting the result to
// float64 at the very end.
//
// Errors:
//   - ErrScheme              — deriv < 0 or duplicate offsets.
//   - ErrInsufficientOffsets — deriv >= len(offsets) (underdetermined).
//
// Complexity: O(n³) rational operations for n offsets.
func Solve(deriv int, offsets []int) (Stencil, error) {
	rats := make([]*big.Rat, len(offsets))
	for j, o := range offsets {
		rats[j] = new(big.Rat).SetInt64(int64(o))
	}
	weights, err := SolveRat(deriv, rats)
	if err != nil {
		return nil, err
	}
	st := make(Stencil, len(offsets))
	for j, o := range offsets {
		w, _ := weights[j].Float64()
		st[o] = w
	}

	return st, nil
}

// SolveRat computes exact rational weights for the given distinct rational
// offsets. The returned slice is parallel to offsets. This is the non-uniform
// grid path: offsets are local coordinate differences rather than integer
// index displacements, and the weights already carry the spacing scaling.
//
// Errors:
//   - ErrScheme              — deriv < 0, empty or duplicate offsets.
//   - ErrInsufficientOffsets — deriv >= len(offsets).
//
// Determinism: exact arithmetic with a fixed elimination order; identical
// inputs always produce identical weights.
func SolveRat(deriv int, offsets []*big.Rat) ([]*big.Rat, error) {
	n := len(offsets)
	if deriv < 0 {
		return nil, fmt.Errorf("derivative order %d must be non-negative: %w", deriv, ErrScheme)
	}
	if n == 0 {
		return nil, fmt.Errorf("empty offset set: %w", ErrScheme)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if offsets[i].Cmp(offsets[j]) == 0 {
				return nil, fmt.Errorf("duplicate offset %s: %w", offsets[i].RatString(), ErrScheme)
			}
		}
	}
	if deriv >= n {
		return nil, fmt.Errorf("derivative order %d needs more than %d offsets: %w", deriv, n, ErrInsufficientOffsets)
	}

	// Build the augmented Taylor system A·w = e_deriv with
	// A[k][j] = offsets[j]^k / k!. Row k of the augmented matrix carries the
	// right-hand side in column n.
	aug := make([][]*big.Rat, n)
	fact := new(big.Rat).SetInt64(1) // k! accumulator
	for k := 0; k < n; k++ {
		if k > 0 {
			fact.Mul(fact, new(big.Rat).SetInt64(int64(k)))
		}
		row := make([]*big.Rat, n+1)
		for j := 0; j < n; j++ {
			row[j] = ratPow(offsets[j], k)
			row[j].Quo(row[j], fact)
		}
		if k == deriv {
			row[n] = new(big.Rat).SetInt64(1)
		} else {
			row[n] = new(big.Rat)
		}
		aug[k] = row
	}

	// Forward elimination with first-nonzero pivoting. Offsets are distinct,
	// so the generalized Vandermonde system is nonsingular.
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if aug[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return nil, fmt.Errorf("singular Taylor system: %w", ErrScheme)
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]
		for r := col + 1; r < n; r++ {
			if aug[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Quo(aug[r][col], aug[col][col])
			for c := col; c <= n; c++ {
				aug[r][c].Sub(aug[r][c], new(big.Rat).Mul(factor, aug[col][c]))
			}
		}
	}

	// Back substitution.
	weights := make([]*big.Rat, n)
	for r := n - 1; r >= 0; r-- {
		sum := new(big.Rat).Set(aug[r][n])
		for c := r + 1; c < n; c++ {
			sum.Sub(sum, new(big.Rat).Mul(aug[r][c], weights[c]))
		}
		weights[r] = sum.Quo(sum, aug[r][r])
	}

	return weights, nil
}

// ratPow returns x^k for k >= 0 as a fresh big.Rat.
func ratPow(x *big.Rat, k int) *big.Rat {
	out := new(big.Rat).SetInt64(1)
	for i := 0; i < k; i++ {
		out.Mul(out, x)
	}

	return out
}
