package sparse

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for sparse matrix operations.
var (
	// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")
	// ErrIndexOutOfBounds indicates a row or column index outside the valid range.
	ErrIndexOutOfBounds = errors.New("sparse: index out of bounds")
	// ErrNilMatrix indicates a nil matrix operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")
	// ErrDimensionMismatch indicates operand shapes incompatible with the operation.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)

// opErrorf wraps err with an operation tag, preserving the original error
// for errors.Is via %w. Call only with non-nil err.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Matrix is a sparse r×c matrix of float64 values with per-row column maps.
// Entries that were never set are zero. Storage is proportional to the
// number of explicit non-zeros.
type Matrix struct {
	r, c int
	rows []map[int]float64
}

// NewMatrix creates an r×c sparse matrix with no stored entries.
// Returns ErrInvalidDimensions when either dimension is < 1.
// Complexity: O(r) time, O(r) memory.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{r: rows, c: cols, rows: make([]map[int]float64, rows)}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// checkIndex validates (row, col) against the matrix bounds.
func (m *Matrix) checkIndex(row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("sparse: (%d,%d) outside %dx%d: %w", row, col, m.r, m.c, ErrIndexOutOfBounds)
	}

	return nil
}

// At retrieves the element at (row, col); unset entries read as zero.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if err := m.checkIndex(row, col); err != nil {
		return 0, err
	}
	if m.rows[row] == nil {
		return 0, nil
	}

	return m.rows[row][col], nil
}

// Set assigns v at (row, col). Assigning zero removes the stored entry.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	if err := m.checkIndex(row, col); err != nil {
		return err
	}
	if v == 0 {
		if m.rows[row] != nil {
			delete(m.rows[row], col)
		}

		return nil
	}
	if m.rows[row] == nil {
		m.rows[row] = make(map[int]float64)
	}
	m.rows[row][col] = v

	return nil
}

// AddAt accumulates v into the entry at (row, col).
// Complexity: O(1).
func (m *Matrix) AddAt(row, col int, v float64) error {
	if err := m.checkIndex(row, col); err != nil {
		return err
	}
	if m.rows[row] == nil {
		m.rows[row] = make(map[int]float64)
	}
	m.rows[row][col] += v
	if m.rows[row][col] == 0 {
		delete(m.rows[row], col)
	}

	return nil
}

// NNZ returns the number of stored non-zero entries.
// Complexity: O(r).
func (m *Matrix) NNZ() int {
	n := 0
	for _, row := range m.rows {
		n += len(row)
	}

	return n
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r + nnz).
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{r: m.r, c: m.c, rows: make([]map[int]float64, m.r)}
	for i, row := range m.rows {
		if row == nil {
			continue
		}
		cp.rows[i] = make(map[int]float64, len(row))
		for j, v := range row {
			cp.rows[i][j] = v
		}
	}

	return cp
}

// rowCols returns the stored column indices of row i in ascending order,
// giving every kernel a deterministic iteration order over map storage.
func (m *Matrix) rowCols(i int) []int {
	row := m.rows[i]
	if len(row) == 0 {
		return nil
	}
	cols := make([]int, 0, len(row))
	for j := range row {
		cols = append(cols, j)
	}
	sort.Ints(cols)

	return cols
}

// Row returns the dense expansion of row i as a fresh slice.
// Complexity: O(c).
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("sparse: row %d outside %dx%d: %w", i, m.r, m.c, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.c)
	for j, v := range m.rows[i] {
		out[j] = v
	}

	return out, nil
}

// String implements fmt.Stringer for debugging: one dense row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		row, _ := m.Row(i)
		b.WriteString("[")
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString("]\n")
	}

	return b.String()
}
