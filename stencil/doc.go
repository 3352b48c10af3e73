// Package stencil derives finite-difference stencil coefficients: the weights
// that combine neighboring grid values into an approximation of a derivative.
//
// 🚀 How it works
//
//	For a derivative order d and a set of n distinct offsets, the weights are
//	the unique solution of the Taylor matching system
//
//	    Σ_j w_j · offset_j^k / k!  =  δ_{k,d}    for k = 0..n-1,
//
//	which reproduces the derivative exactly on every polynomial of degree < n.
//	The system is solved in exact rational arithmetic (math/big.Rat), so
//	integer-offset stencils come out bit-for-bit reproducible and free of
//	floating-point solver noise.
//
// Two layers are exposed:
//
//   - Solve / SolveRat — the raw coefficient solver for an explicit offset set
//     (integer offsets for uniform grids, rational offsets for non-uniform).
//   - Build — per-position stencil sets for a whole axis: a symmetric central
//     stencil for interior points and shifted one-sided variants for every
//     point within the boundary region, all with the same guaranteed accuracy
//     order and no out-of-grid access.
//
// Point-count rules (acc must be a positive even integer):
//
//	central   : 2·⌊(d+1)/2⌋ − 1 + acc   (symmetric, odd)
//	one-sided : d + acc
//
// Errors are sentinel values: ErrScheme for malformed requests,
// ErrInsufficientOffsets for underdetermined systems, ErrInvalidArraySize
// when an axis is too short to host the minimal footprint.
package stencil
