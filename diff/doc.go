// Package diff implements composable finite-difference differential
// operators: an immutable expression tree of partial-derivative terms,
// constants, field coefficients, sums and products, evaluated either
// directly against a dense array or assembled into a sparse matrix over
// the flattened grid.
//
// 🚀 Building operators
//
//	D0, _  := diff.Diff(0)                  // ∂/∂x0
//	D11, _ := diff.Diff(1, 2)               // ∂²/∂x1²
//	mixed, _ := diff.DiffN(map[int]int{0: 1, 1: 2})
//	lap, _ := diff.Laplacian(2)             // ∂²/∂x0² + ∂²/∂x1²
//	op := D0.Scale(2).Add(D11)              // 2·∂/∂x0 + ∂²/∂x1²
//
// Operators compose algebraically: Add and Sub are commutative sums with
// term merging, Mul chains operators (derivative orders add along shared
// axes) and Scale multiplies by a scalar. All nodes are immutable values;
// an operator may be reused and evaluated concurrently without locks.
//
// ✨ Coefficient multiplication — the product-rule duality
//
// Multiplying by a spatially varying coefficient g is order-sensitive:
//
//	c, _ := diff.Coef(X)
//	c.Mul(D0)   // g·(∂f/∂x): differentiate first, then scale elementwise
//	D0.Mul(c)   // ∂(g·f)/∂x: scale first, then differentiate — the product
//	            // rule g·f′ + g′·f realized through the stencil itself
//
// These are two distinct tree shapes, never inferred from context, and the
// sparse matrix path reproduces exactly the same semantics through matrix
// algebra (diagonal scaling composed in the same order).
//
// Evaluation requires a grid.Grid binding every referenced axis to a
// positive spacing; accuracy is an evaluation-time option (WithAccuracy,
// default 2) because it is a property of the discretization, not of the
// operator. Supplying it at construction fails with ErrMisplacedOption.
package diff
