package sparse

// Canonical validation checks shared by all kernels. Validators return plain
// sentinel errors; call sites wrap them with an operation tag via opErrorf.

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with identical dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil with a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateVecLen ensures x is non-nil with exactly n elements.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return ErrNilMatrix
	}
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}
