// Package la_test contains unit tests for the Cholesky factorization.
package la_test

import (
	"testing"

	"github.com/katalvlaran/linalg/la"
	"github.com/stretchr/testify/require"
)

// spdFixture returns the canonical 2x2 SPD matrix [[2, 1], [1, 2]].
func spdFixture(t *testing.T) *la.DenseMatrix {
	t.Helper()
	m, err := la.DenseMatrixFrom([][]float64{{2, 1}, {1, 2}})
	require.NoError(t, err)

	return m
}

// TestCholeskyCanonical factorizes [[2, 1], [1, 2]] and checks the known factor.
func TestCholeskyCanonical(t *testing.T) {
	f, err := la.Cholesky(spdFixture(t)) // factorize the fixture
	require.NoError(t, err)              // SPD input must succeed
	require.Equal(t, 2, f.Dim())         // dimension preserved

	l := f.L() // lower-triangular factor

	got, err := l.At(0, 0)               // l00 = sqrt(2)
	require.NoError(t, err)              // At must succeed
	require.InDelta(t, 1.414213, got, 1e-6) // known value
	got, err = l.At(0, 1)                // strict upper triangle
	require.NoError(t, err)              // At must succeed
	require.Equal(t, 0.0, got)           // zeroed
	got, err = l.At(1, 0)                // l10 = 1/sqrt(2)
	require.NoError(t, err)              // At must succeed
	require.InDelta(t, 0.707106, got, 1e-6) // known value
	got, err = l.At(1, 1)                // l11 = sqrt(3/2)
	require.NoError(t, err)              // At must succeed
	require.InDelta(t, 1.224744, got, 1e-6) // known value

	require.InDelta(t, 3.0, f.Determinant(), 1e-10) // det = 2*2 - 1*1
}

// TestCholeskyReconstruction verifies L·Lᵗ rebuilds the input within 1e-8.
func TestCholeskyReconstruction(t *testing.T) {
	m, err := la.DenseMatrixFrom([][]float64{ // a 3x3 SPD fixture
		{4, 2, 0.6},
		{2, 5, 1.5},
		{0.6, 1.5, 3},
	})
	require.NoError(t, err) // creation must succeed

	f, err := la.Cholesky(m) // factorize
	require.NoError(t, err)  // must succeed

	l := f.L()                                   // the factor
	rebuilt, err := la.MatMul(l, l, false, true) // L·Lᵗ
	require.NoError(t, err)                      // must succeed

	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			want, err := m.At(i, j)       // original entry
			require.NoError(t, err)       // At must succeed
			got, err := rebuilt.At(i, j)  // reconstructed entry
			require.NoError(t, err)       // At must succeed
			require.InDelta(t, want, got, 1e-8) // close reconstruction
		}
	}
}

// TestCholeskyRejections covers the gate errors and the SPD test.
func TestCholeskyRejections(t *testing.T) {
	_, err := la.Cholesky(nil)                // nil input
	require.ErrorIs(t, err, la.ErrNilOperand) // expect ErrNilOperand

	rect, err := la.NewDenseMatrix(2, 3) // non-square input
	require.NoError(t, err)              // creation must succeed
	_, err = la.Cholesky(rect)           // gate rejects
	require.ErrorIs(t, err, la.ErrNonSquare) // expect ErrNonSquare

	asym, err := la.DenseMatrixFrom([][]float64{{2, 1}, {1.5, 2}}) // asymmetric input
	require.NoError(t, err)                                        // creation must succeed
	_, err = la.Cholesky(asym)                                     // gate rejects
	require.ErrorIs(t, err, la.ErrAsymmetry)                       // expect ErrAsymmetry

	// symmetric but indefinite: eigenvalues 3 and -1
	indef, err := la.DenseMatrixFrom([][]float64{{1, 2}, {2, 1}}) // indefinite input
	require.NoError(t, err)                                       // creation must succeed
	_, err = la.Cholesky(indef)                                   // elimination hits a bad pivot
	require.ErrorIs(t, err, la.ErrNotPositiveDefinite)            // expect ErrNotPositiveDefinite

	// positive semi-definite is also rejected: rank-1 matrix
	semi, err := la.DenseMatrixFrom([][]float64{{1, 1}, {1, 1}}) // singular PSD input
	require.NoError(t, err)                                      // creation must succeed
	_, err = la.Cholesky(semi)                                   // zero pivot
	require.ErrorIs(t, err, la.ErrNotPositiveDefinite)           // expect ErrNotPositiveDefinite
}

// TestCholeskyTrivial factorizes a 1x1 matrix.
func TestCholeskyTrivial(t *testing.T) {
	m, err := la.DenseMatrixFrom([][]float64{{9}}) // scalar matrix
	require.NoError(t, err)                        // creation must succeed

	f, err := la.Cholesky(m)  // factorize
	require.NoError(t, err)   // must succeed
	got, err := f.L().At(0, 0) // the single factor entry
	require.NoError(t, err)   // At must succeed
	require.Equal(t, 3.0, got) // sqrt(9)
	require.Equal(t, 9.0, f.Determinant()) // det = 9
}

// TestCholeskySolve solves A·x = b and cross-checks by multiplying back.
func TestCholeskySolve(t *testing.T) {
	m := spdFixture(t) // [[2, 1], [1, 2]]

	f, err := la.Cholesky(m) // factorize
	require.NoError(t, err)  // must succeed

	b, err := la.DenseVectorFrom([]float64{3, 3}) // right-hand side
	require.NoError(t, err)                       // creation must succeed
	x, err := f.SolveVec(b)                       // solve
	require.NoError(t, err)                       // must succeed
	require.InDelta(t, 1.0, x.ToSlice()[0], 1e-10) // x = (1, 1)
	require.InDelta(t, 1.0, x.ToSlice()[1], 1e-10) // by symmetry

	back, err := la.LeftMultiply(m, x) // A·x
	require.NoError(t, err)            // must succeed
	require.True(t, back.Equal(b))     // recovers b

	short, err := la.NewDenseVector(3)               // wrong length
	require.NoError(t, err)                          // creation must succeed
	_, err = f.SolveVec(short)                       // solve rejects
	require.ErrorIs(t, err, la.ErrDimensionMismatch) // expect ErrDimensionMismatch

	// sparse right-hand sides work through the same path
	sb, err := la.NewSparseVector(2, []int{0}, []float64{2}) // (2, 0)
	require.NoError(t, err)                                  // creation must succeed
	x, err = f.SolveVec(sb)                                  // solve
	require.NoError(t, err)                                  // must succeed
	require.InDelta(t, 4.0/3.0, x.ToSlice()[0], 1e-10)       // A⁻¹·(2,0)
	require.InDelta(t, -2.0/3.0, x.ToSlice()[1], 1e-10)      // A⁻¹·(2,0)
}

// TestCholeskyInverse verifies A·A⁻¹ = I within the matrix tolerance.
func TestCholeskyInverse(t *testing.T) {
	m := spdFixture(t) // [[2, 1], [1, 2]]

	f, err := la.Cholesky(m) // factorize
	require.NoError(t, err)  // must succeed
	inv, err := f.Inverse()  // A⁻¹
	require.NoError(t, err)  // must succeed

	prod, err := la.MatMul(m, inv, false, false) // A·A⁻¹
	require.NoError(t, err)                      // must succeed
	eye, err := la.DenseIdentity(2)              // the target
	require.NoError(t, err)                      // creation must succeed
	require.True(t, prod.Equal(eye))             // identity within MatrixEpsilon
}
