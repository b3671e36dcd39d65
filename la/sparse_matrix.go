// SPDX-License-Identifier: MIT

// Package la: SparseRowMatrix — dense in the first dimension, sparse in
// the second.
//
// Backed by an array of *SparseVector rows. Row access is O(1); column
// access searches every row and is therefore O(rows · log cols). The
// per-row column sets are immutable, so Set/AddAt on an inactive column
// fail exactly like the sparse vector operations do.
package la

import (
	"math"
	"strings"
)

// SparseRowMatrix is a rank-2 tensor of independent sparse rows.
// The zero value is not usable; use one of the constructors.
type SparseRowMatrix struct {
	rowVecs []*SparseVector
	rows    int
	cols    int
}

// compile-time interface conformance
var _ Matrix = (*SparseRowMatrix)(nil)

// NewSparseRowMatrix builds a matrix by deep-copying the supplied rows.
//
// Errors: ErrInvalidDimensions for an empty row set; ErrRagged when rows
// declare differing dimensions; ErrNilOperand for a nil row.
// Complexity: O(total nnz).
func NewSparseRowMatrix(rows []*SparseVector) (*SparseRowMatrix, error) {
	if len(rows) == 0 {
		return nil, laErrorf("NewSparseRowMatrix", ErrInvalidDimensions)
	}
	if rows[0] == nil {
		return nil, laErrorf("NewSparseRowMatrix", ErrNilOperand)
	}
	cols := rows[0].size
	copied := make([]*SparseVector, len(rows))
	var i int
	for i = 0; i < len(rows); i++ {
		if rows[i] == nil {
			return nil, laErrorf("NewSparseRowMatrix", ErrNilOperand)
		}
		if rows[i].size != cols {
			return nil, laErrorf("NewSparseRowMatrix", ErrRagged)
		}
		copied[i] = rows[i].Clone().(*SparseVector)
	}

	return &SparseRowMatrix{rowVecs: copied, rows: len(rows), cols: cols}, nil
}

// EmptySparseRowMatrix returns a rows×cols matrix with no active entries.
// Useful as a placeholder accumulator shape.
//
// Errors: ErrInvalidDimensions.
func EmptySparseRowMatrix(rows, cols int) (*SparseRowMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, laErrorf("EmptySparseRowMatrix", ErrInvalidDimensions)
	}
	vecs := make([]*SparseVector, rows)
	var i int
	for i = 0; i < rows; i++ {
		vecs[i] = emptySparse(cols)
	}

	return &SparseRowMatrix{rowVecs: vecs, rows: rows, cols: cols}, nil
}

// SparseIdentity returns the n×n identity with one-hot rows.
//
// Errors: ErrInvalidDimensions.
func SparseIdentity(n int) (*SparseRowMatrix, error) {
	if n <= 0 {
		return nil, laErrorf("SparseIdentity", ErrInvalidDimensions)
	}
	vecs := make([]*SparseVector, n)
	var i int
	for i = 0; i < n; i++ {
		vecs[i] = newSparseUnchecked(n, []int{i}, []float64{1})
	}

	return &SparseRowMatrix{rowVecs: vecs, rows: n, cols: n}, nil
}

// SparseDiagonal returns a square matrix with v along the main diagonal.
// Every row is active at its diagonal position, zero-valued entries
// included.
//
// Errors: ErrNilOperand.
func SparseDiagonal(v Vector) (*SparseRowMatrix, error) {
	if err := ValidateVectorNotNil(v); err != nil {
		return nil, err
	}
	n := v.Size()
	vecs := make([]*SparseVector, n)
	var i int
	for i = 0; i < n; i++ {
		value, _ := v.At(i)
		vecs[i] = newSparseUnchecked(n, []int{i}, []float64{value})
	}

	return &SparseRowMatrix{rowVecs: vecs, rows: n, cols: n}, nil
}

// Rows returns the size of the first dimension.
func (m *SparseRowMatrix) Rows() int { return m.rows }

// Cols returns the size of the second dimension.
func (m *SparseRowMatrix) Cols() int { return m.cols }

// At returns the value at (i, j); inactive columns read as 0.
// Errors: ErrOutOfRange.
func (m *SparseRowMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows {
		return 0, laErrorf("SparseRowMatrix.At", ErrOutOfRange)
	}

	return m.rowVecs[i].At(j)
}

// Set stores value at (i, j).
// Errors: ErrOutOfRange; ErrInactiveIndex when column j is not active in
// row i.
func (m *SparseRowMatrix) Set(i, j int, value float64) error {
	if i < 0 || i >= m.rows {
		return laErrorf("SparseRowMatrix.Set", ErrOutOfRange)
	}

	return m.rowVecs[i].Set(j, value)
}

// AddAt adds delta to the value at (i, j).
// Errors: ErrOutOfRange; ErrInactiveIndex when column j is not active in
// row i.
func (m *SparseRowMatrix) AddAt(i, j int, delta float64) error {
	if i < 0 || i >= m.rows {
		return laErrorf("SparseRowMatrix.AddAt", ErrOutOfRange)
	}

	return m.rowVecs[i].AddAt(j, delta)
}

// NumActiveInRow returns the stored entry count of row i, or 0 for an
// out-of-range row.
func (m *SparseRowMatrix) NumActiveInRow(i int) int {
	if i < 0 || i >= m.rows {
		return 0
	}

	return len(m.rowVecs[i].values)
}

// Clone returns a deep copy.
func (m *SparseRowMatrix) Clone() Matrix {
	vecs := make([]*SparseVector, len(m.rowVecs))
	var i int
	for i = 0; i < len(m.rowVecs); i++ {
		vecs[i] = m.rowVecs[i].Clone().(*SparseVector)
	}

	return &SparseRowMatrix{rowVecs: vecs, rows: m.rows, cols: m.cols}
}

// Row returns row i as a live VIEW: writes through the returned vector
// mutate the matrix.
//
// Errors: ErrOutOfRange.
func (m *SparseRowMatrix) Row(i int) (*SparseVector, error) {
	if i < 0 || i >= m.rows {
		return nil, laErrorf("SparseRowMatrix.Row", ErrOutOfRange)
	}

	return m.rowVecs[i], nil
}

// Column returns a copy of column j as a sparse vector over the row
// dimension. Requires a lookup in every row.
//
// Errors: ErrOutOfRange.
// Complexity: O(rows · log cols).
func (m *SparseRowMatrix) Column(j int) (*SparseVector, error) {
	if j < 0 || j >= m.cols {
		return nil, laErrorf("SparseRowMatrix.Column", ErrOutOfRange)
	}
	indices := make([]int, 0)
	values := make([]float64, 0)
	var i int
	for i = 0; i < m.rows; i++ {
		if s := m.rowVecs[i].slot(j); s >= 0 && m.rowVecs[i].values[s] != 0 {
			indices = append(indices, i)
			values = append(values, m.rowVecs[i].values[s])
		}
	}

	return newSparseUnchecked(m.rows, indices, values), nil
}

// RowSumVec returns the vector of per-row sums.
func (m *SparseRowMatrix) RowSumVec() *DenseVector {
	out := make([]float64, m.rows)
	var i int
	for i = 0; i < m.rows; i++ {
		out[i] = m.rowVecs[i].Sum()
	}

	return wrapDense(out)
}

// RowScaleInPlace multiplies row i by coefficients[i].
//
// Errors: ErrNilOperand, ErrDimensionMismatch.
func (m *SparseRowMatrix) RowScaleInPlace(coefficients *DenseVector) error {
	if coefficients == nil {
		return laErrorf("SparseRowMatrix.RowScaleInPlace", ErrNilOperand)
	}
	if err := ValidateVecLen(coefficients, m.rows); err != nil {
		return err
	}
	var i int
	for i = 0; i < m.rows; i++ {
		m.rowVecs[i].ScaleInPlace(coefficients.data[i])
	}

	return nil
}

// TwoNorm returns the Frobenius norm over the stored entries.
func (m *SparseRowMatrix) TwoNorm() float64 {
	var sum float64
	var i int
	for i = 0; i < m.rows; i++ {
		norm := m.rowVecs[i].TwoNorm()
		sum += norm * norm
	}

	return math.Sqrt(sum)
}

// ApplyInPlace replaces every ACTIVE value x with f(x); implicit zeros are
// untouched.
func (m *SparseRowMatrix) ApplyInPlace(f func(float64) float64) {
	var i int
	for i = 0; i < m.rows; i++ {
		m.rowVecs[i].ApplyInPlace(f)
	}
}

// IntersectAddInPlace adds f(other[i,j]) at entries active in BOTH the
// receiver and other, row by row. The receiver's column sets are never
// extended.
//
// Errors: ErrNilOperand, ErrDimensionMismatch, ErrUnsupportedOperand.
func (m *SparseRowMatrix) IntersectAddInPlace(other Matrix, f func(float64) float64) error {
	return m.rowwiseInPlace(other, f, (*SparseVector).IntersectAddInPlace)
}

// HadamardInPlace multiplies entries active in both operands by
// f(other[i,j]), row by row.
//
// Errors: ErrNilOperand, ErrDimensionMismatch, ErrUnsupportedOperand.
func (m *SparseRowMatrix) HadamardInPlace(other Matrix, f func(float64) float64) error {
	return m.rowwiseInPlace(other, f, (*SparseVector).HadamardInPlace)
}

// rowwiseInPlace factors the shared dispatch of the two in-place kernels.
func (m *SparseRowMatrix) rowwiseInPlace(other Matrix, f func(float64) float64, apply func(*SparseVector, Vector, func(float64) float64) error) error {
	if err := ValidateMatrixNotNil(other); err != nil {
		return err
	}
	if err := ValidateSameShape(m, other); err != nil {
		return err
	}

	var i int
	switch o := other.(type) {
	case *DenseMatrix:
		for i = 0; i < m.rows; i++ {
			row, _ := o.Row(i)
			if err := apply(m.rowVecs[i], row, f); err != nil {
				return err
			}
		}
	case *SparseRowMatrix:
		for i = 0; i < m.rows; i++ {
			if err := apply(m.rowVecs[i], o.rowVecs[i], f); err != nil {
				return err
			}
		}
	default:
		return laErrorf("SparseRowMatrix in-place", ErrUnsupportedOperand)
	}

	return nil
}

// Equal reports elementwise equality of the active-entry streams within
// MatrixEpsilon.
func (m *SparseRowMatrix) Equal(other Matrix) bool {
	if other == nil {
		return false
	}

	return matrixCursorsEqual(m.Cursor(), other.Cursor())
}

// Cursor returns a row-major single-pass cursor over the stored entries.
func (m *SparseRowMatrix) Cursor() MatrixCursor {
	return &sparseRowCursor{m: m, row: 0, slot: -1}
}

// String renders each row on its own line.
func (m *SparseRowMatrix) String() string {
	var sb strings.Builder
	sb.WriteString("SparseRowMatrix(\n")
	var i int
	for i = 0; i < m.rows; i++ {
		sb.WriteByte('\t')
		sb.WriteString(m.rowVecs[i].String())
		sb.WriteString("\n")
	}
	sb.WriteString(")")

	return sb.String()
}

// sparseRowCursor walks rows in order, skipping rows with no storage.
type sparseRowCursor struct {
	m    *SparseRowMatrix
	row  int
	slot int
}

// Next advances to the next stored entry in row-major order.
func (c *sparseRowCursor) Next() bool {
	c.slot++
	for c.row < c.m.rows && c.slot >= len(c.m.rowVecs[c.row].indices) {
		c.row++
		c.slot = 0
	}

	return c.row < c.m.rows
}

// Entry returns the current (row, col, value) triple.
func (c *sparseRowCursor) Entry() MatrixEntry {
	rv := c.m.rowVecs[c.row]

	return MatrixEntry{Row: c.row, Col: rv.indices[c.slot], Value: rv.values[c.slot]}
}
