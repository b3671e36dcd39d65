// Package la_test contains unit tests for the DenseMatrix implementation
// of the Matrix interface in the la package.
package la_test

import (
	"testing"

	"github.com/katalvlaran/linalg/la"
	"github.com/stretchr/testify/require"
)

// TestNewDenseMatrixValidation rejects non-positive and ragged input.
func TestNewDenseMatrixValidation(t *testing.T) {
	_, err := la.NewDenseMatrix(0, 5)                // zero rows
	require.ErrorIs(t, err, la.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = la.NewDenseMatrix(5, -1)                // negative columns
	require.ErrorIs(t, err, la.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = la.DenseMatrixFrom(nil)                 // empty source
	require.ErrorIs(t, err, la.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = la.DenseMatrixFrom([][]float64{{1, 2}, {3}}) // ragged source
	require.ErrorIs(t, err, la.ErrRagged)                 // expect ErrRagged
}

// TestDenseMatrixAtSetAddAt validates reads, writes and bounds.
func TestDenseMatrixAtSetAddAt(t *testing.T) {
	m, err := la.NewDenseMatrix(2, 3) // zeroed 2x3
	require.NoError(t, err)           // creation must succeed

	require.NoError(t, m.Set(1, 2, 7))   // write bottom-right
	require.NoError(t, m.AddAt(1, 2, 3)) // accumulate
	got, err := m.At(1, 2)               // read back
	require.NoError(t, err)              // At must succeed
	require.Equal(t, 10.0, got)          // 7 + 3

	_, err = m.At(2, 0)                       // row out of range
	require.ErrorIs(t, err, la.ErrOutOfRange) // expect ErrOutOfRange
	err = m.Set(0, 3, 1)                      // column out of range
	require.ErrorIs(t, err, la.ErrOutOfRange) // expect ErrOutOfRange
}

// TestDenseIdentityAndDiagonal checks the structured constructors.
func TestDenseIdentityAndDiagonal(t *testing.T) {
	eye, err := la.DenseIdentity(3) // 3x3 identity
	require.NoError(t, err)         // creation must succeed
	got, err := eye.At(1, 1)        // diagonal entry
	require.NoError(t, err)         // At must succeed
	require.Equal(t, 1.0, got)      // one on the diagonal
	got, err = eye.At(0, 2)         // off-diagonal entry
	require.NoError(t, err)         // At must succeed
	require.Equal(t, 0.0, got)      // zero elsewhere

	v, err := la.DenseVectorFrom([]float64{2, 5}) // diagonal values
	require.NoError(t, err)                       // creation must succeed
	d, err := la.DenseDiagonal(v)                 // diagonal matrix
	require.NoError(t, err)                       // creation must succeed
	got, err = d.At(1, 1)                         // second diagonal slot
	require.NoError(t, err)                       // At must succeed
	require.Equal(t, 5.0, got)                    // value placed
}

// TestDenseMatrixRowIsView confirms Row shares storage with the matrix.
func TestDenseMatrixRowIsView(t *testing.T) {
	m, err := la.DenseMatrixFrom([][]float64{{1, 2}, {3, 4}}) // fixture
	require.NoError(t, err)                                   // creation must succeed

	row, err := m.Row(1)             // live view of row 1
	require.NoError(t, err)          // must succeed
	require.NoError(t, row.Set(0, 9)) // write through the view

	got, err := m.At(1, 0)     // read through the matrix
	require.NoError(t, err)    // At must succeed
	require.Equal(t, 9.0, got) // mutation visible

	col, err := m.Column(1)           // column is a copy
	require.NoError(t, err)           // must succeed
	require.NoError(t, col.Set(0, 0)) // mutate the copy
	got, err = m.At(0, 1)             // matrix unaffected
	require.NoError(t, err)           // At must succeed
	require.Equal(t, 2.0, got)        // original intact
}

// TestDenseMatrixSetColumn overwrites a column from any vector kind.
func TestDenseMatrixSetColumn(t *testing.T) {
	m, err := la.DenseMatrixFrom([][]float64{{1, 1}, {1, 1}, {1, 1}}) // 3x2 of ones
	require.NoError(t, err)                                           // creation must succeed

	s, err := la.NewSparseVector(3, []int{1}, []float64{5}) // sparse column source
	require.NoError(t, err)                                 // creation must succeed
	require.NoError(t, m.SetColumn(0, s))                   // overwrite column 0

	got, err := m.At(0, 0)     // inactive source index
	require.NoError(t, err)    // At must succeed
	require.Equal(t, 0.0, got) // column zeroed first
	got, err = m.At(1, 0)      // active source index
	require.NoError(t, err)    // At must succeed
	require.Equal(t, 5.0, got) // written through
}

// TestDenseMatrixSelectColumnsAndReshape covers the structural transforms.
func TestDenseMatrixSelectColumnsAndReshape(t *testing.T) {
	m, err := la.DenseMatrixFrom([][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3 fixture
	require.NoError(t, err)                                         // creation must succeed

	sel, err := m.SelectColumns([]int{2, 0}) // reorder and subset
	require.NoError(t, err)                  // must succeed
	require.Equal(t, 2, sel.Cols())          // two columns selected
	got, err := sel.At(1, 0)                 // first selected column is old column 2
	require.NoError(t, err)                  // At must succeed
	require.Equal(t, 6.0, got)               // carried value

	_, err = m.SelectColumns([]int{3})        // bad column id
	require.ErrorIs(t, err, la.ErrOutOfRange) // expect ErrOutOfRange

	r, err := m.Reshape(3, 2)  // same element count, new shape
	require.NoError(t, err)    // must succeed
	got, err = r.At(1, 1)      // row-major reinterpretation: flat index 3
	require.NoError(t, err)    // At must succeed
	require.Equal(t, 4.0, got) // the fourth stored value

	_, err = m.Reshape(4, 2)               // element count changes
	require.ErrorIs(t, err, la.ErrBadShape) // expect ErrBadShape
}

// TestDenseMatrixSums verifies the scalar and vector sum reductions.
func TestDenseMatrixSums(t *testing.T) {
	m, err := la.DenseMatrixFrom([][]float64{{1, 2}, {3, 4}}) // fixture
	require.NoError(t, err)                                   // creation must succeed

	rs, err := m.RowSum(1)     // 3 + 4
	require.NoError(t, err)    // must succeed
	require.Equal(t, 7.0, rs)  // row sum
	cs, err := m.ColSum(0)     // 1 + 3
	require.NoError(t, err)    // must succeed
	require.Equal(t, 4.0, cs)  // column sum

	require.Equal(t, []float64{3, 7}, m.RowSumVec().ToSlice()) // per-row sums
	require.Equal(t, []float64{4, 6}, m.ColSumVec().ToSlice()) // per-column sums
}

// TestDenseMatrixRowScaleInPlace multiplies each row by its coefficient.
func TestDenseMatrixRowScaleInPlace(t *testing.T) {
	m, err := la.DenseMatrixFrom([][]float64{{1, 2}, {3, 4}}) // fixture
	require.NoError(t, err)                                   // creation must succeed
	c, err := la.DenseVectorFrom([]float64{10, 0})            // coefficients
	require.NoError(t, err)                                   // creation must succeed

	require.NoError(t, m.RowScaleInPlace(c)) // scale rows
	got, err := m.At(0, 1)                   // scaled row 0
	require.NoError(t, err)                  // At must succeed
	require.Equal(t, 20.0, got)              // 2 * 10
	got, err = m.At(1, 0)                    // zeroed row 1
	require.NoError(t, err)                  // At must succeed
	require.Equal(t, 0.0, got)               // 3 * 0
}

// TestDenseMatrixBroadcast adds a vector across rows and columns.
func TestDenseMatrixBroadcast(t *testing.T) {
	m, err := la.DenseMatrixFrom([][]float64{{1, 1, 1}, {1, 1, 1}}) // 2x3 of ones
	require.NoError(t, err)                                         // creation must succeed

	rowAdd, err := la.DenseVectorFrom([]float64{1, 2, 3}) // one value per column
	require.NoError(t, err)                               // creation must succeed
	require.NoError(t, m.AddBroadcastInPlace(rowAdd, true)) // add to every row
	got, err := m.At(1, 2)                                  // bottom-right
	require.NoError(t, err)                                 // At must succeed
	require.Equal(t, 4.0, got)                              // 1 + 3

	colAdd, err := la.DenseVectorFrom([]float64{10, 20}) // one value per row
	require.NoError(t, err)                              // creation must succeed
	require.NoError(t, m.AddBroadcastInPlace(colAdd, false)) // add down every column
	got, err = m.At(1, 0)                                    // row 1 gains 20
	require.NoError(t, err)                                  // At must succeed
	require.Equal(t, 22.0, got)                              // 1 + 1 + 20

	err = m.AddBroadcastInPlace(rowAdd, false)       // wrong orientation
	require.ErrorIs(t, err, la.ErrDimensionMismatch) // expect ErrDimensionMismatch
}

// TestDenseMatrixHadamardInPlace multiplies entrywise against both operand kinds.
func TestDenseMatrixHadamardInPlace(t *testing.T) {
	m, err := la.DenseMatrixFrom([][]float64{{2, 3}, {4, 5}}) // receiver
	require.NoError(t, err)                                   // creation must succeed

	other, err := la.DenseMatrixFrom([][]float64{{10, 1}, {1, 0}}) // dense other
	require.NoError(t, err)                                        // creation must succeed
	require.NoError(t, m.HadamardInPlace(other, func(x float64) float64 { return x }))
	got, err := m.At(0, 0)      // scaled entry
	require.NoError(t, err)     // At must succeed
	require.Equal(t, 20.0, got) // 2 * 10
	got, err = m.At(1, 1)       // zeroed entry
	require.NoError(t, err)     // At must succeed
	require.Equal(t, 0.0, got)  // 5 * 0

	// a sparse-row other touches only its stored entries
	row, err := la.NewSparseVector(2, []int{0}, []float64{3}) // one active cell
	require.NoError(t, err)                                   // creation must succeed
	empty, err := la.NewSparseVector(2, nil, nil)             // an empty row
	require.NoError(t, err)                                   // creation must succeed
	sm, err := la.NewSparseRowMatrix([]*la.SparseVector{row, empty}) // sparse operand
	require.NoError(t, err)                                          // creation must succeed
	require.NoError(t, m.HadamardInPlace(sm, func(x float64) float64 { return x }))
	got, err = m.At(0, 0)       // the touched cell
	require.NoError(t, err)     // At must succeed
	require.Equal(t, 60.0, got) // 20 * 3
	got, err = m.At(0, 1)       // untouched cell
	require.NoError(t, err)     // At must succeed
	require.Equal(t, 3.0, got)  // unchanged
}

// TestDenseMatrixSymmetricAndEqual covers the exact-symmetry check and equality.
func TestDenseMatrixSymmetricAndEqual(t *testing.T) {
	sym, err := la.DenseMatrixFrom([][]float64{{2, 1}, {1, 2}}) // symmetric fixture
	require.NoError(t, err)                                     // creation must succeed
	require.True(t, sym.Symmetric())                            // exact transpose equality

	asym, err := la.DenseMatrixFrom([][]float64{{2, 1}, {1.0000001, 2}}) // slightly off
	require.NoError(t, err)                                              // creation must succeed
	require.False(t, asym.Symmetric())                                   // symmetry is exact, not tolerant

	near, err := la.DenseMatrixFrom([][]float64{{2, 1}, {1 + 1e-11, 2}}) // within MatrixEpsilon
	require.NoError(t, err)                                              // creation must succeed
	require.True(t, sym.Equal(near))                                     // equality is tolerant
	require.False(t, sym.Equal(asym))                                     // but bounded
}

// TestTranspose flips a rectangular matrix.
func TestTranspose(t *testing.T) {
	m, err := la.DenseMatrixFrom([][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3
	require.NoError(t, err)                                         // creation must succeed

	tr, err := la.Transpose(m)     // 3x2
	require.NoError(t, err)        // must succeed
	require.Equal(t, 3, tr.Rows()) // dimensions flipped
	require.Equal(t, 2, tr.Cols()) // dimensions flipped
	got, err := tr.At(2, 1)        // (2, 1) was (1, 2)
	require.NoError(t, err)        // At must succeed
	require.Equal(t, 6.0, got)     // value carried

	back, err := la.Transpose(tr) // double transpose
	require.NoError(t, err)       // must succeed
	require.True(t, back.Equal(m)) // identity round trip
}

// TestDenseMatrixString renders one bracketed row per line.
func TestDenseMatrixString(t *testing.T) {
	m, err := la.DenseMatrixFrom([][]float64{{1, 2}, {3, 4}}) // fixture
	require.NoError(t, err)                                   // creation must succeed
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())          // exact rendering
}
