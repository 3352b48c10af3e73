package sparse_test

import (
	"testing"

	"github.com/katalvlaran/findiff/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds a matrix from a dense row literal.
func mustMatrix(t *testing.T, rows [][]float64) *sparse.Matrix {
	t.Helper()
	m, err := sparse.NewMatrix(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// assertDense compares a matrix against a dense row literal.
func assertDense(t *testing.T, expected [][]float64, m *sparse.Matrix) {
	t.Helper()
	require.Equal(t, len(expected), m.Rows())
	require.Equal(t, len(expected[0]), m.Cols())
	for i := range expected {
		row, err := m.Row(i)
		require.NoError(t, err)
		assert.Equal(t, expected[i], row, "row %d", i)
	}
}

// TestMatrix_Accessors checks Set/At/AddAt semantics including zero removal.
func TestMatrix_Accessors(t *testing.T) {
	_, err := sparse.NewMatrix(0, 3)
	assert.ErrorIs(t, err, sparse.ErrInvalidDimensions)

	m, err := sparse.NewMatrix(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, m.NNZ())

	require.NoError(t, m.Set(0, 1, 2.5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
	assert.Equal(t, 1, m.NNZ())

	v, err = m.At(1, 2)
	require.NoError(t, err)
	assert.Zero(t, v, "unset entries read as zero")

	require.NoError(t, m.Set(0, 1, 0))
	assert.Equal(t, 0, m.NNZ(), "assigning zero removes the entry")

	require.NoError(t, m.AddAt(1, 0, 3))
	require.NoError(t, m.AddAt(1, 0, -3))
	assert.Equal(t, 0, m.NNZ(), "accumulation to zero removes the entry")

	err = m.Set(2, 0, 1)
	assert.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)
}

// TestAdd checks the entrywise sum and the shape contract.
func TestAdd(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 0}, {0, 2}})
	b := mustMatrix(t, [][]float64{{0, 3}, {0, -2}})

	sum, err := sparse.Add(a, b)
	require.NoError(t, err)
	assertDense(t, [][]float64{{1, 3}, {0, 0}}, sum)
	assert.Equal(t, 2, sum.NNZ(), "cancelled entry is not stored")

	wide, err := sparse.NewMatrix(2, 3)
	require.NoError(t, err)
	_, err = sparse.Add(a, wide)
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.Add(a, nil)
	assert.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestScale checks scalar multiplication including the zero short-circuit.
func TestScale(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, -2}, {0, 4}})

	sc, err := sparse.Scale(a, 0.5)
	require.NoError(t, err)
	assertDense(t, [][]float64{{0.5, -1}, {0, 2}}, sc)

	z, err := sparse.Scale(a, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, z.NNZ())
}

// TestMul checks sparse matrix multiplication against a hand computation.
func TestMul(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2}, {0, 3}})
	b := mustMatrix(t, [][]float64{{4, 0}, {1, -1}})

	c, err := sparse.Mul(a, b)
	require.NoError(t, err)
	assertDense(t, [][]float64{{6, -2}, {3, -3}}, c)

	_, err = sparse.Mul(a, mustMatrix(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}))
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

// TestMatVec checks the matrix-vector product and the length contract.
func TestMatVec(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, -2, 0}, {0, 0, 3}})

	y, err := sparse.MatVec(a, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, 9}, y)

	_, err = sparse.MatVec(a, []float64{1, 2})
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.MatVec(nil, []float64{1})
	assert.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestKron checks the Kronecker product block structure.
func TestKron(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2}, {0, 3}})
	b := mustMatrix(t, [][]float64{{0, 1}, {1, 0}})

	k, err := sparse.Kron(a, b)
	require.NoError(t, err)
	assertDense(t, [][]float64{
		{0, 1, 0, 2},
		{1, 0, 2, 0},
		{0, 0, 0, 3},
		{0, 0, 3, 0},
	}, k)

	_, err = sparse.Kron(a, nil)
	assert.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestKron_WithIdentity checks the per-axis composition pattern: I ⊗ A keeps
// A in diagonal blocks, A ⊗ I spreads it across strided entries.
func TestKron_WithIdentity(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	eye, err := sparse.Identity(2)
	require.NoError(t, err)

	left, err := sparse.Kron(eye, a)
	require.NoError(t, err)
	assertDense(t, [][]float64{
		{1, 2, 0, 0},
		{3, 4, 0, 0},
		{0, 0, 1, 2},
		{0, 0, 3, 4},
	}, left)

	right, err := sparse.Kron(a, eye)
	require.NoError(t, err)
	assertDense(t, [][]float64{
		{1, 0, 2, 0},
		{0, 1, 0, 2},
		{3, 0, 4, 0},
		{0, 3, 0, 4},
	}, right)
}

// TestDiagIdentity checks the diagonal constructors.
func TestDiagIdentity(t *testing.T) {
	d, err := sparse.Diag([]float64{1, 0, -2})
	require.NoError(t, err)
	assertDense(t, [][]float64{{1, 0, 0}, {0, 0, 0}, {0, 0, -2}}, d)
	assert.Equal(t, 2, d.NNZ(), "zero diagonal value is not stored")

	_, err = sparse.Diag(nil)
	assert.ErrorIs(t, err, sparse.ErrInvalidDimensions)

	eye, err := sparse.Identity(3)
	require.NoError(t, err)
	assertDense(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, eye)
}

// TestClone_Independence checks that Clone detaches the storage.
func TestClone_Independence(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	cp := a.Clone()
	require.NoError(t, cp.Set(0, 0, 99))

	v, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}
