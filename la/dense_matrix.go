// SPDX-License-Identifier: MIT

// Package la: DenseMatrix — the contiguous rank-2 tensor.
//
// A DenseMatrix owns one row-major []float64 of rows*cols values; get and
// set are O(1). Construction from a 2D source rejects ragged input. Row
// returns a live view into the storage (documented below); every other
// accessor copies.
package la

import (
	"math"
	"strconv"
	"strings"
)

// DenseMatrix is a rank-2 tensor backed by row-major contiguous storage.
// The zero value is not usable; use NewDenseMatrix or DenseMatrixFrom.
type DenseMatrix struct {
	rows, cols int
	data       []float64
}

// compile-time interface conformance
var _ Matrix = (*DenseMatrix)(nil)

// NewDenseMatrix returns a zeroed rows×cols matrix.
//
// Errors: ErrInvalidDimensions if rows <= 0 or cols <= 0.
// Complexity: O(rows·cols).
func NewDenseMatrix(rows, cols int) (*DenseMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, laErrorf("NewDenseMatrix", ErrInvalidDimensions)
	}

	return &DenseMatrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// DenseMatrixFrom returns a matrix holding a defensive copy of values.
//
// Errors: ErrInvalidDimensions for an empty source; ErrRagged when rows
// differ in length.
// Complexity: O(rows·cols).
func DenseMatrixFrom(values [][]float64) (*DenseMatrix, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, laErrorf("DenseMatrixFrom", ErrInvalidDimensions)
	}
	cols := len(values[0])
	data := make([]float64, len(values)*cols)
	var i int
	for i = 0; i < len(values); i++ {
		if len(values[i]) != cols {
			return nil, laErrorf("DenseMatrixFrom", ErrRagged)
		}
		copy(data[i*cols:(i+1)*cols], values[i])
	}

	return &DenseMatrix{rows: len(values), cols: cols, data: data}, nil
}

// DenseIdentity returns the n×n identity matrix.
//
// Errors: ErrInvalidDimensions if n <= 0.
func DenseIdentity(n int) (*DenseMatrix, error) {
	m, err := NewDenseMatrix(n, n)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// DenseDiagonal returns a square matrix with v along the main diagonal.
//
// Errors: ErrNilOperand.
func DenseDiagonal(v Vector) (*DenseMatrix, error) {
	if err := ValidateVectorNotNil(v); err != nil {
		return nil, err
	}
	n := v.Size()
	m, err := NewDenseMatrix(n, n)
	if err != nil {
		return nil, err
	}
	cur := v.Cursor()
	for cur.Next() {
		e := cur.Entry()
		m.data[e.Index*n+e.Index] = e.Value
	}

	return m, nil
}

// newDenseMatrixUnchecked adopts data without copying. Internal; the
// caller yields ownership and guarantees len(data) == rows*cols.
func newDenseMatrixUnchecked(rows, cols int, data []float64) *DenseMatrix {
	return &DenseMatrix{rows: rows, cols: cols, data: data}
}

// Rows returns the size of the first dimension.
func (m *DenseMatrix) Rows() int { return m.rows }

// Cols returns the size of the second dimension.
func (m *DenseMatrix) Cols() int { return m.cols }

// index maps (i, j) to flat storage; bounds are the caller's business.
func (m *DenseMatrix) index(i, j int) int { return i*m.cols + j }

// validateMatrixIndex bounds-checks a coordinate pair.
func (m *DenseMatrix) validateMatrixIndex(i, j int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return laErrorf("DenseMatrix index", ErrOutOfRange)
	}

	return nil
}

// At returns the value at (i, j).
// Errors: ErrOutOfRange.
func (m *DenseMatrix) At(i, j int) (float64, error) {
	if err := m.validateMatrixIndex(i, j); err != nil {
		return 0, err
	}

	return m.data[m.index(i, j)], nil
}

// Set stores value at (i, j).
// Errors: ErrOutOfRange.
func (m *DenseMatrix) Set(i, j int, value float64) error {
	if err := m.validateMatrixIndex(i, j); err != nil {
		return err
	}
	m.data[m.index(i, j)] = value

	return nil
}

// AddAt adds delta to the value at (i, j).
// Errors: ErrOutOfRange.
func (m *DenseMatrix) AddAt(i, j int, delta float64) error {
	if err := m.validateMatrixIndex(i, j); err != nil {
		return err
	}
	m.data[m.index(i, j)] += delta

	return nil
}

// NumActiveInRow returns the column count; every dense entry is active.
func (m *DenseMatrix) NumActiveInRow(int) int { return m.cols }

// Clone returns a deep copy.
func (m *DenseMatrix) Clone() Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &DenseMatrix{rows: m.rows, cols: m.cols, data: data}
}

// Row returns row i as a dense vector VIEW: the returned vector shares
// storage with the matrix, so writes through it mutate the matrix. Clone
// the result for an independent copy.
//
// Errors: ErrOutOfRange.
func (m *DenseMatrix) Row(i int) (*DenseVector, error) {
	if i < 0 || i >= m.rows {
		return nil, laErrorf("DenseMatrix.Row", ErrOutOfRange)
	}

	return wrapDense(m.data[i*m.cols : (i+1)*m.cols]), nil
}

// Column returns a copy of column j.
//
// Errors: ErrOutOfRange.
func (m *DenseMatrix) Column(j int) (*DenseVector, error) {
	if j < 0 || j >= m.cols {
		return nil, laErrorf("DenseMatrix.Column", ErrOutOfRange)
	}
	out := make([]float64, m.rows)
	var i int
	for i = 0; i < m.rows; i++ {
		out[i] = m.data[m.index(i, j)]
	}

	return wrapDense(out), nil
}

// SetColumn overwrites column j with the values of v.
//
// Errors: ErrOutOfRange, ErrNilOperand, ErrDimensionMismatch.
func (m *DenseMatrix) SetColumn(j int, v Vector) error {
	if j < 0 || j >= m.cols {
		return laErrorf("DenseMatrix.SetColumn", ErrOutOfRange)
	}
	if err := ValidateVectorNotNil(v); err != nil {
		return err
	}
	if err := ValidateVecLen(v, m.rows); err != nil {
		return err
	}
	var i int
	for i = 0; i < m.rows; i++ {
		m.data[m.index(i, j)] = 0
	}
	cur := v.Cursor()
	for cur.Next() {
		e := cur.Entry()
		m.data[m.index(e.Index, j)] = e.Value
	}

	return nil
}

// SelectColumns returns a new matrix containing the requested columns, in
// the order given.
//
// Errors: ErrInvalidDimensions for an empty selection; ErrOutOfRange.
func (m *DenseMatrix) SelectColumns(columns []int) (*DenseMatrix, error) {
	if len(columns) == 0 {
		return nil, laErrorf("DenseMatrix.SelectColumns", ErrInvalidDimensions)
	}
	out := make([]float64, m.rows*len(columns))
	var i, j int
	for j = 0; j < len(columns); j++ {
		if columns[j] < 0 || columns[j] >= m.cols {
			return nil, laErrorf("DenseMatrix.SelectColumns", ErrOutOfRange)
		}
		for i = 0; i < m.rows; i++ {
			out[i*len(columns)+j] = m.data[m.index(i, columns[j])]
		}
	}

	return &DenseMatrix{rows: m.rows, cols: len(columns), data: out}, nil
}

// Reshape reinterprets the row-major storage under new dimensions. The
// element count must be preserved; the data is copied.
//
// Errors: ErrBadShape when rows*cols changes or a dimension is
// non-positive.
func (m *DenseMatrix) Reshape(rows, cols int) (*DenseMatrix, error) {
	if rows <= 0 || cols <= 0 || rows*cols != m.rows*m.cols {
		return nil, laErrorf("DenseMatrix.Reshape", ErrBadShape)
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &DenseMatrix{rows: rows, cols: cols, data: data}, nil
}

// RowSum returns the sum of row i.
// Errors: ErrOutOfRange.
func (m *DenseMatrix) RowSum(i int) (float64, error) {
	if i < 0 || i >= m.rows {
		return 0, laErrorf("DenseMatrix.RowSum", ErrOutOfRange)
	}
	var sum float64
	var j int
	for j = 0; j < m.cols; j++ {
		sum += m.data[m.index(i, j)]
	}

	return sum, nil
}

// ColSum returns the sum of column j.
// Errors: ErrOutOfRange.
func (m *DenseMatrix) ColSum(j int) (float64, error) {
	if j < 0 || j >= m.cols {
		return 0, laErrorf("DenseMatrix.ColSum", ErrOutOfRange)
	}
	var sum float64
	var i int
	for i = 0; i < m.rows; i++ {
		sum += m.data[m.index(i, j)]
	}

	return sum, nil
}

// RowSumVec returns the vector of per-row sums.
func (m *DenseMatrix) RowSumVec() *DenseVector {
	out := make([]float64, m.rows)
	var i, j int
	for i = 0; i < m.rows; i++ {
		var sum float64
		for j = 0; j < m.cols; j++ {
			sum += m.data[m.index(i, j)]
		}
		out[i] = sum
	}

	return wrapDense(out)
}

// ColSumVec returns the vector of per-column sums.
func (m *DenseMatrix) ColSumVec() *DenseVector {
	out := make([]float64, m.cols)
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			out[j] += m.data[m.index(i, j)]
		}
	}

	return wrapDense(out)
}

// RowScaleInPlace multiplies row i by coefficients[i].
//
// Errors: ErrNilOperand, ErrDimensionMismatch.
func (m *DenseMatrix) RowScaleInPlace(coefficients *DenseVector) error {
	if coefficients == nil {
		return laErrorf("DenseMatrix.RowScaleInPlace", ErrNilOperand)
	}
	if err := ValidateVecLen(coefficients, m.rows); err != nil {
		return err
	}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			m.data[m.index(i, j)] *= coefficients.data[i]
		}
	}

	return nil
}

// TwoNorm returns the Frobenius norm.
func (m *DenseMatrix) TwoNorm() float64 {
	var sum float64
	var i int
	for i = 0; i < len(m.data); i++ {
		sum += m.data[i] * m.data[i]
	}

	return math.Sqrt(sum)
}

// Symmetric reports whether the matrix equals its transpose exactly.
func (m *DenseMatrix) Symmetric() bool {
	return ValidateSymmetric(m) == nil
}

// ApplyInPlace replaces every value x with f(x).
func (m *DenseMatrix) ApplyInPlace(f func(float64) float64) {
	var i int
	for i = 0; i < len(m.data); i++ {
		m.data[i] = f(m.data[i])
	}
}

// ScaleInPlace multiplies every value by coefficient.
func (m *DenseMatrix) ScaleInPlace(coefficient float64) {
	var i int
	for i = 0; i < len(m.data); i++ {
		m.data[i] *= coefficient
	}
}

// IntersectAddInPlace adds f(other[i,j]) at every entry active in other.
// A dense other touches every cell; a sparse-row other touches only its
// stored entries.
//
// Errors: ErrNilOperand, ErrDimensionMismatch, ErrUnsupportedOperand.
func (m *DenseMatrix) IntersectAddInPlace(other Matrix, f func(float64) float64) error {
	if err := ValidateMatrixNotNil(other); err != nil {
		return err
	}
	if err := ValidateSameShape(m, other); err != nil {
		return err
	}

	switch o := other.(type) {
	case *DenseMatrix:
		var i int
		for i = 0; i < len(m.data); i++ {
			m.data[i] += f(o.data[i])
		}
	case *SparseRowMatrix:
		cur := o.Cursor()
		for cur.Next() {
			e := cur.Entry()
			m.data[m.index(e.Row, e.Col)] += f(e.Value)
		}
	default:
		return laErrorf("IntersectAddInPlace", ErrUnsupportedOperand)
	}

	return nil
}

// HadamardInPlace multiplies each entry by f(other[i,j]) at every entry
// active in other, leaving cells inactive in a sparse-row other untouched.
//
// Errors: ErrNilOperand, ErrDimensionMismatch, ErrUnsupportedOperand.
func (m *DenseMatrix) HadamardInPlace(other Matrix, f func(float64) float64) error {
	if err := ValidateMatrixNotNil(other); err != nil {
		return err
	}
	if err := ValidateSameShape(m, other); err != nil {
		return err
	}

	switch o := other.(type) {
	case *DenseMatrix:
		var i int
		for i = 0; i < len(m.data); i++ {
			m.data[i] *= f(o.data[i])
		}
	case *SparseRowMatrix:
		cur := o.Cursor()
		for cur.Next() {
			e := cur.Entry()
			m.data[m.index(e.Row, e.Col)] *= f(e.Value)
		}
	default:
		return laErrorf("HadamardInPlace", ErrUnsupportedOperand)
	}

	return nil
}

// AddBroadcastInPlace adds v across the matrix. With overRows true, v must
// have Cols() entries and is added to every row; with overRows false, v
// must have Rows() entries and is added to every column. A sparse v
// contributes only at its active indices.
//
// Errors: ErrNilOperand, ErrDimensionMismatch.
func (m *DenseMatrix) AddBroadcastInPlace(v Vector, overRows bool) error {
	if err := ValidateVectorNotNil(v); err != nil {
		return err
	}
	var i int
	if overRows {
		if err := ValidateVecLen(v, m.cols); err != nil {
			return err
		}
		for i = 0; i < m.rows; i++ {
			cur := v.Cursor()
			for cur.Next() {
				e := cur.Entry()
				m.data[m.index(i, e.Index)] += e.Value
			}
		}

		return nil
	}

	if err := ValidateVecLen(v, m.rows); err != nil {
		return err
	}
	cur := v.Cursor()
	for cur.Next() {
		e := cur.Entry()
		for i = 0; i < m.cols; i++ {
			m.data[m.index(e.Index, i)] += e.Value
		}
	}

	return nil
}

// Equal reports elementwise equality of the active-entry streams within
// MatrixEpsilon.
func (m *DenseMatrix) Equal(other Matrix) bool {
	if other == nil {
		return false
	}

	return matrixCursorsEqual(m.Cursor(), other.Cursor())
}

// Cursor returns a row-major single-pass cursor over every cell.
func (m *DenseMatrix) Cursor() MatrixCursor {
	return &denseMatrixCursor{m: m, pos: -1}
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *DenseMatrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.data[m.index(i, j)], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// denseMatrixCursor walks the flat storage in row-major order.
type denseMatrixCursor struct {
	m   *DenseMatrix
	pos int
}

// Next advances the cursor; it reports false once the matrix is exhausted.
func (c *denseMatrixCursor) Next() bool {
	c.pos++

	return c.pos < len(c.m.data)
}

// Entry returns the current (row, col, value) triple.
func (c *denseMatrixCursor) Entry() MatrixEntry {
	return MatrixEntry{Row: c.pos / c.m.cols, Col: c.pos % c.m.cols, Value: c.m.data[c.pos]}
}

// matrixCursorsEqual drains two cursors in lockstep with the matrix
// tolerance. Both streams must end together.
func matrixCursorsEqual(a, b MatrixCursor) bool {
	for {
		aOK := a.Next()
		bOK := b.Next()
		if aOK != bOK {
			return false
		}
		if !aOK {
			return true
		}
		if !a.Entry().Equal(b.Entry()) {
			return false
		}
	}
}
