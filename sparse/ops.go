package sparse

// Operation tags for unified error wrapping.
const (
	opAdd    = "Add"
	opScale  = "Scale"
	opMul    = "Mul"
	opMatVec = "MatVec"
	opKron   = "Kron"
	opDiag   = "Diag"
)

// Add computes the entrywise sum C = A + B over the stored entries only.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz(A) + nnz(B)).
func Add(a, b *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	out := a.Clone()
	for i, row := range b.rows {
		for j, v := range row {
			// Each target entry is touched at most once per operand, so map
			// iteration order cannot change the result.
			if err := out.AddAt(i, j, v); err != nil {
				return nil, opErrorf(opAdd, err)
			}
		}
	}

	return out, nil
}

// Scale returns alpha * A as a fresh matrix. alpha == 0 yields an empty matrix.
// Errors: ErrNilMatrix.
// Complexity: O(nnz).
func Scale(a *Matrix, alpha float64) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opScale, err)
	}
	out, err := NewMatrix(a.r, a.c)
	if err != nil {
		return nil, opErrorf(opScale, err)
	}
	if alpha == 0 {
		return out, nil
	}
	for i, row := range a.rows {
		for j, v := range row {
			if err = out.Set(i, j, alpha*v); err != nil {
				return nil, opErrorf(opScale, err)
			}
		}
	}

	return out, nil
}

// Mul performs sparse matrix multiplication C = A × B.
// Rows of A are expanded in ascending column order so the accumulation order
// into each C entry is fixed and results are reproducible.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(Σ_i nnz(A_i) · nnz-per-row(B)).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	out, err := NewMatrix(a.r, b.c)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}
	for i := 0; i < a.r; i++ {
		for _, k := range a.rowCols(i) { // ascending k for deterministic accumulation
			av := a.rows[i][k]
			for _, j := range b.rowCols(k) {
				if err = out.AddAt(i, j, av*b.rows[k][j]); err != nil {
					return nil, opErrorf(opMul, err)
				}
			}
		}
	}

	return out, nil
}

// MatVec computes y = A · x for a dense vector x.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz).
func MatVec(a *Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.c); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	y := make([]float64, a.r)
	for i := 0; i < a.r; i++ {
		acc := 0.0
		for _, j := range a.rowCols(i) { // fixed ascending order per row
			acc += a.rows[i][j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Kron computes the Kronecker product A ⊗ B: the (ia*Rb+ib, ja*Cb+jb) entry
// equals A[ia,ja]·B[ib,jb]. With row-major flattening this composes per-axis
// operators into their multi-dimensional counterpart.
// Errors: ErrNilMatrix.
// Complexity: O(nnz(A) · nnz(B)).
func Kron(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opKron, ErrNilMatrix)
	}
	out, err := NewMatrix(a.r*b.r, a.c*b.c)
	if err != nil {
		return nil, opErrorf(opKron, err)
	}
	for ia, rowA := range a.rows {
		for ja, va := range rowA {
			for ib, rowB := range b.rows {
				for jb, vb := range rowB {
					// Single write per target entry: order-independent.
					if err = out.Set(ia*b.r+ib, ja*b.c+jb, va*vb); err != nil {
						return nil, opErrorf(opKron, err)
					}
				}
			}
		}
	}

	return out, nil
}

// Diag returns the square diagonal matrix with the given diagonal values.
// Errors: ErrInvalidDimensions on an empty slice.
// Complexity: O(n).
func Diag(values []float64) (*Matrix, error) {
	out, err := NewMatrix(len(values), len(values))
	if err != nil {
		return nil, opErrorf(opDiag, err)
	}
	for i, v := range values {
		if err = out.Set(i, i, v); err != nil {
			return nil, opErrorf(opDiag, err)
		}
	}

	return out, nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n < 1.
// Complexity: O(n).
func Identity(n int) (*Matrix, error) {
	out, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = out.Set(i, i, 1)
	}

	return out, nil
}
