// Package sparse provides the sparse linear-algebra kernels behind the
// matrix representation of finite-difference operators: row-map storage,
// elementwise addition, scalar scaling, matrix multiplication, Kronecker
// products, diagonal matrices and matrix-vector application.
//
// Differentiation matrices over flattened grids are banded (a handful of
// non-zeros per row regardless of grid size), so every kernel works on the
// stored entries only and never materializes zeros. All kernels perform
// strict fail-fast validation, return fresh results without mutating their
// operands, and iterate entries in deterministic ascending-index order so
// floating-point accumulation is reproducible run to run.
package sparse
