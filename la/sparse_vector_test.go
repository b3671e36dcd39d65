// Package la_test contains unit tests for the SparseVector implementation
// of the Vector interface in the la package.
package la_test

import (
	"testing"

	"github.com/katalvlaran/linalg/la"
	"github.com/stretchr/testify/require"
)

// fixtureSparse returns the canonical size-5 vector with entries {1: 2.0, 3: -1.0}.
func fixtureSparse(t *testing.T) *la.SparseVector {
	t.Helper()
	v, err := la.NewSparseVector(5, []int{1, 3}, []float64{2.0, -1.0})
	require.NoError(t, err)

	return v
}

// TestNewSparseVectorValidation exercises every constructor rejection path.
func TestNewSparseVectorValidation(t *testing.T) {
	_, err := la.NewSparseVector(0, nil, nil)        // zero declared dimension
	require.ErrorIs(t, err, la.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = la.NewSparseVector(5, []int{1}, []float64{1, 2}) // mismatched slice lengths
	require.ErrorIs(t, err, la.ErrLengthMismatch)             // expect ErrLengthMismatch

	_, err = la.NewSparseVector(5, []int{-1}, []float64{1}) // negative index
	require.ErrorIs(t, err, la.ErrOutOfRange)               // expect ErrOutOfRange

	_, err = la.NewSparseVector(5, []int{5}, []float64{1}) // index == size
	require.ErrorIs(t, err, la.ErrInvalidDimensions)       // expect ErrInvalidDimensions

	_, err = la.NewSparseVector(5, []int{1, 3, 1}, []float64{2, -1, 4}) // repeated index
	require.ErrorIs(t, err, la.ErrDuplicateIndex)                       // expect ErrDuplicateIndex
}

// TestNewSparseVectorSortsIndices verifies unsorted input comes out ascending.
func TestNewSparseVectorSortsIndices(t *testing.T) {
	v, err := la.NewSparseVector(6, []int{4, 0, 2}, []float64{40, 0.5, 20}) // deliberately shuffled
	require.NoError(t, err)                                                // creation must succeed

	cur := v.Cursor()           // walk the active entries
	require.True(t, cur.Next()) // first entry present
	require.Equal(t, la.VectorEntry{Index: 0, Value: 0.5}, cur.Entry())
	require.True(t, cur.Next()) // second entry present
	require.Equal(t, la.VectorEntry{Index: 2, Value: 20.0}, cur.Entry())
	require.True(t, cur.Next()) // third entry present
	require.Equal(t, la.VectorEntry{Index: 4, Value: 40.0}, cur.Entry())
	require.False(t, cur.Next()) // stream exhausted
}

// TestSparseVectorReadBehavior checks active reads, implicit zeros and bounds.
func TestSparseVectorReadBehavior(t *testing.T) {
	v := fixtureSparse(t) // {1: 2.0, 3: -1.0} over size 5

	require.Equal(t, 5, v.Size())      // declared dimension
	require.Equal(t, 2, v.NumActive()) // two stored entries

	got, err := v.At(1)        // active read
	require.NoError(t, err)    // At must succeed
	require.Equal(t, 2.0, got) // stored value

	got, err = v.At(0)         // inactive read
	require.NoError(t, err)    // reads succeed everywhere in range
	require.Equal(t, 0.0, got) // implicit zero

	_, err = v.At(5)                          // out-of-range read
	require.ErrorIs(t, err, la.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSparseVectorWriteBehavior checks that the active-index set is immutable.
func TestSparseVectorWriteBehavior(t *testing.T) {
	v := fixtureSparse(t) // {1: 2.0, 3: -1.0} over size 5

	require.NoError(t, v.Set(1, 7))     // writing an active index succeeds
	require.NoError(t, v.AddAt(3, 1))   // accumulating an active index succeeds
	got, err := v.At(3)                 // read back
	require.NoError(t, err)             // At must succeed
	require.Equal(t, 0.0, got)          // -1 + 1

	err = v.Set(0, 1.0)                          // writing an inactive in-range index
	require.ErrorIs(t, err, la.ErrInactiveIndex) // must fail, never extend the set

	err = v.AddAt(2, 1.0)                        // accumulating an inactive index
	require.ErrorIs(t, err, la.ErrInactiveIndex) // same contract

	err = v.Set(9, 1.0)                       // out of the declared range entirely
	require.ErrorIs(t, err, la.ErrOutOfRange) // bounds first
}

// TestSparseVectorFromMap builds from an index map and matches the slice form.
func TestSparseVectorFromMap(t *testing.T) {
	v, err := la.SparseVectorFromMap(5, map[int]float64{3: -1.0, 1: 2.0}) // map form
	require.NoError(t, err)                                              // creation must succeed
	require.True(t, v.Equal(fixtureSparse(t)))                           // identical to the slice form

	_, err = la.SparseVectorFromMap(2, map[int]float64{4: 1}) // index beyond size
	require.ErrorIs(t, err, la.ErrInvalidDimensions)          // expect ErrInvalidDimensions
}

// TestSparseVectorAggregates checks sums, norms and extrema over active entries.
func TestSparseVectorAggregates(t *testing.T) {
	v := fixtureSparse(t) // {1: 2.0, 3: -1.0} over size 5

	require.Equal(t, 1.0, v.Sum())                       // 2 - 1
	require.InDelta(t, 2.2360679, v.TwoNorm(), 1e-6)     // sqrt(5)
	require.Equal(t, 3.0, v.OneNorm())                   // 2 + 1
	require.Equal(t, 2.0, v.MaxValue())                  // largest active value
	require.Equal(t, -1.0, v.MinValue())                 // smallest active value
	require.Equal(t, 1, v.IndexOfMax())                  // vector index, not slot
	require.InDelta(t, 4.0+1.0, v.Variance(0), 1e-12)    // implicit zeros contribute nothing at mean 0
	require.InDelta(t, 1.0+4.0+3.0, v.Variance(1), 1e-12) // (2-1)² + (-1-1)² + 3 zeros at (0-1)²
}

// TestSparseVectorReduceCountsImplicitZeros folds over the full dimension.
func TestSparseVectorReduceCountsImplicitZeros(t *testing.T) {
	v := fixtureSparse(t) // {1: 2.0, 3: -1.0} over size 5

	// count every index by transforming all values to 1
	count := v.Reduce(0, func(float64) float64 { return 1 }, func(x, acc float64) float64 { return acc + x })
	require.Equal(t, 5.0, count) // all five indices participate

	// sum passes the three implicit zeros through unchanged
	sum := v.Reduce(0, func(x float64) float64 { return x }, func(x, acc float64) float64 { return acc + x })
	require.Equal(t, 1.0, sum) // 2 - 1
}

// TestSparseVectorIntersectAddInPlace drops contributions outside the receiver's pattern.
func TestSparseVectorIntersectAddInPlace(t *testing.T) {
	v := fixtureSparse(t) // active at {1, 3}

	other, err := la.NewSparseVector(5, []int{0, 1, 4}, []float64{100, 10, 100}) // active at {0, 1, 4}
	require.NoError(t, err)                                                     // creation must succeed

	require.NoError(t, v.IntersectAddInPlace(other, func(x float64) float64 { return x }))
	require.Equal(t, 2, v.NumActive()) // pattern never grows

	got, err := v.At(1)         // the single shared index
	require.NoError(t, err)     // At must succeed
	require.Equal(t, 12.0, got) // 2 + 10
	got, err = v.At(0)          // contribution at 0 was dropped
	require.NoError(t, err)     // At must succeed
	require.Equal(t, 0.0, got)  // still implicit zero
}

// TestSparseVectorHadamardInPlaceDense multiplies active slots by a dense operand.
func TestSparseVectorHadamardInPlaceDense(t *testing.T) {
	v := fixtureSparse(t) // {1: 2.0, 3: -1.0}

	dense, err := la.DenseVectorFrom([]float64{9, 3, 9, 4, 9}) // dense other
	require.NoError(t, err)                                    // creation must succeed

	require.NoError(t, v.HadamardInPlace(dense, func(x float64) float64 { return x }))
	got, err := v.At(1)        // 2 * 3
	require.NoError(t, err)    // At must succeed
	require.Equal(t, 6.0, got) // product stored
	got, err = v.At(3)         // -1 * 4
	require.NoError(t, err)    // At must succeed
	require.Equal(t, -4.0, got) // product stored
}

// TestSparseVectorSetOperations checks Difference and Intersection merges.
func TestSparseVectorSetOperations(t *testing.T) {
	a, err := la.NewSparseVector(6, []int{0, 2, 4}, []float64{1, 1, 1}) // pattern {0, 2, 4}
	require.NoError(t, err)                                            // creation must succeed
	b, err := la.NewSparseVector(6, []int{2, 3, 4}, []float64{1, 1, 1}) // pattern {2, 3, 4}
	require.NoError(t, err)                                             // creation must succeed

	require.Equal(t, []int{0}, a.Difference(b))      // in a, not in b
	require.Equal(t, []int{3}, b.Difference(a))      // in b, not in a
	require.Equal(t, []int{2, 4}, a.Intersection(b)) // shared pattern
}

// TestSparseVectorDensify materializes the implicit zeros.
func TestSparseVectorDensify(t *testing.T) {
	v := fixtureSparse(t) // {1: 2.0, 3: -1.0} over size 5

	d := v.Densify()                                         // dense copy
	require.Equal(t, []float64{0, 2, 0, -1, 0}, d.ToSlice()) // zeros materialized
}

// TestSparseVectorScalePreservesPattern scales values, not structure.
func TestSparseVectorScalePreservesPattern(t *testing.T) {
	v := fixtureSparse(t) // {1: 2.0, 3: -1.0}

	s := v.Scale(0) // scaling by zero keeps the slots active
	require.Equal(t, 2, s.NumActive()) // structural zeros remain stored
	got, err := s.At(1)                // read a scaled slot
	require.NoError(t, err)            // At must succeed
	require.Equal(t, 0.0, got)         // value is zero, slot still active
	require.NoError(t, s.Set(1, 5))    // and still writable
}

// TestTransposeSparseRows pivots row-major sparse storage to column-major.
func TestTransposeSparseRows(t *testing.T) {
	r0, err := la.NewSparseVector(3, []int{0, 2}, []float64{1, 2}) // row 0
	require.NoError(t, err)                                        // creation must succeed
	r1, err := la.NewSparseVector(3, []int{2}, []float64{3})       // row 1
	require.NoError(t, err)                                        // creation must succeed

	cols, err := la.TransposeSparseRows([]*la.SparseVector{r0, r1}) // pivot
	require.NoError(t, err)                                         // must succeed
	require.Len(t, cols, 3)                                         // one output per column

	require.Equal(t, 1, cols[0].NumActive()) // column 0 holds (0, 1)
	require.Equal(t, 0, cols[1].NumActive()) // column 1 is empty
	require.Equal(t, 2, cols[2].NumActive()) // column 2 holds (0, 2) and (1, 3)
	got, err := cols[2].At(1)                // entry contributed by row 1
	require.NoError(t, err)                  // At must succeed
	require.Equal(t, 3.0, got)               // value carried over

	_, err = la.TransposeSparseRows(nil)             // empty input
	require.ErrorIs(t, err, la.ErrInvalidDimensions) // expect ErrInvalidDimensions

	short, err := la.NewSparseVector(2, nil, nil)                      // differing dimension
	require.NoError(t, err)                                            // creation must succeed
	_, err = la.TransposeSparseRows([]*la.SparseVector{r0, short})     // ragged rows
	require.ErrorIs(t, err, la.ErrRagged)                              // expect ErrRagged
}

// TestSparseVectorString renders the size and the active entries.
func TestSparseVectorString(t *testing.T) {
	v := fixtureSparse(t)                                            // {1: 2.0, 3: -1.0}
	require.Equal(t, "SparseVector(size=5, [1:2, 3:-1])", v.String()) // exact rendering
}
