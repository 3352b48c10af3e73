package array

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Shared validation, allocation and flat-loop core for Add and Sub.
func addSub(a, b *Dense, sign float64) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilArray
	}
	if !a.SameShape(b) {
		return nil, ErrShapeMismatch
	}
	out, err := NewDense(a.shape...)
	if err != nil {
		return nil, err
	}
	for i := range a.data { // deterministic 0..n-1
		out.data[i] = a.data[i] + sign*b.data[i]
	}

	return out, nil
}

// Add returns the elementwise sum a + b as a fresh array.
// Errors: ErrNilArray, ErrShapeMismatch.
// Complexity: O(size).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1) }

// Sub returns the elementwise difference a - b as a fresh array.
// Errors: ErrNilArray, ErrShapeMismatch.
// Complexity: O(size).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1) }

// Scale returns alpha * a elementwise as a fresh array.
// Errors: ErrNilArray.
// Complexity: O(size).
func Scale(a *Dense, alpha float64) (*Dense, error) {
	if a == nil {
		return nil, ErrNilArray
	}
	out, err := NewDense(a.shape...)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		out.data[i] = alpha * a.data[i]
	}

	return out, nil
}

// Hadamard returns the elementwise product a ⊙ b as a fresh array.
// Errors: ErrNilArray, ErrShapeMismatch.
// Complexity: O(size).
func Hadamard(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilArray
	}
	if !a.SameShape(b) {
		return nil, ErrShapeMismatch
	}
	out, err := NewDense(a.shape...)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		out.data[i] = a.data[i] * b.data[i]
	}

	return out, nil
}
