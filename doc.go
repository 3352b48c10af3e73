// Package findiff computes finite-difference approximations of partial
// derivatives on structured (possibly non-uniform) Cartesian grids, for
// arbitrary derivative order, accuracy order and spatial dimension.
//
// 🚀 What is findiff?
//
//	A pure-Go differential-operator toolbox that brings together:
//		• Exact stencil coefficients for any derivative/offset set
//		• Composable operator algebra: sums, products, field coefficients
//		• Direct array evaluation via shifted-slice stencil convolution
//		• Sparse matrix assembly over the flattened grid (Kronecker composition)
//		• Uniform and non-uniform per-axis spacing
//
// ✨ Why choose findiff?
//
//   - Exact where it can be – coefficients come from a rational solve, never
//     a floating Vandermonde inversion
//   - Boundary-complete – one-sided stencils keep the full accuracy order at
//     the edges, so results never shrink
//   - Immutable operators – expression trees are pure values, safe to share
//     and evaluate concurrently
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under five subpackages:
//
//	array/   — dense N-dimensional row-major arrays + elementwise kernels
//	grid/    — per-axis spacing model (uniform step or coordinate slice)
//	stencil/ — coefficient solver and per-position stencil sets
//	sparse/  — sparse matrix kernels (Add, Mul, Kron, Diag, MatVec)
//	diff/    — operator algebra, array evaluator and sparse matrix builder
//
// Quick example — the 2-D Laplacian applied to a field f:
//
//	lap, _ := diff.Laplacian(2)
//	g, _ := grid.New(map[int]grid.Axis{0: grid.Uniform(dx), 1: grid.Uniform(dy)})
//	out, _ := diff.Apply(lap, f, g, diff.WithAccuracy(4))
//
// Dive into the package docs of diff/ and stencil/ for the full contract,
// including the product-rule semantics of coefficient multiplication.
//
//	go get github.com/katalvlaran/findiff
package findiff
