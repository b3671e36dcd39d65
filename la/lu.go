// SPDX-License-Identifier: MIT

// Package la: LU factorization with partial pivoting, P·A = L·U.
//
// MAIN DESCRIPTION:
//   LU factorizes any non-singular square matrix into a unit lower
//   triangle L and an upper triangle U, with a row permutation P chosen by
//   partial pivoting. Unlike Cholesky it requires neither symmetry nor
//   positive definiteness.
//
// Implementation:
//   Stage 1 — gate: square, else no result.
//   Stage 2 — Gaussian elimination. At column i the largest-magnitude
//   candidate at or below the diagonal becomes the pivot; a magnitude
//   below FactorizationTolerance means the matrix is singular and the
//   factorization is absent. Row swaps are recorded in a permutation array
//   and a swap-parity flag, then the column is eliminated in place. The
//   buffer finally splits into L (unit diagonal) and U.
//
// Behavior highlights:
//   - The input is copied before elimination.
//   - The permutation is exposed both as an index array and as a one-hot
//     sparse matrix for consumers that need P explicitly.
//
// Determinism: pivot choice takes the first maximal magnitude, so
// identical inputs always produce identical permutations.
// Complexity: O(2n³/3) factorization, O(n²) per solve.
package la

import "math"

// LUFactorization is the immutable result of LU. Accessors copy.
type LUFactorization struct {
	lower       *DenseMatrix
	upper       *DenseMatrix
	permutation []int
	oddSwaps    bool
}

// LU factorizes a square matrix with partial pivoting.
//
// Inputs: any square dense matrix.
// Returns: the factorization, or an absent result expressed as an error.
// Errors: ErrNilOperand, ErrNonSquare, ErrSingular.
func LU(m *DenseMatrix) (*LUFactorization, error) {
	if m == nil {
		return nil, laErrorf("LU", ErrNilOperand)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, laErrorf("LU", err)
	}

	n := m.rows
	lu := make([]float64, len(m.data))
	copy(lu, m.data)
	permutation := make([]int, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		permutation[i] = i
	}
	oddSwaps := false

	for i = 0; i < n; i++ {
		// select the largest-magnitude pivot at or below the diagonal
		pivotRow := i
		pivotValue := math.Abs(lu[i*n+i])
		for k = i + 1; k < n; k++ {
			if math.Abs(lu[k*n+i]) > pivotValue {
				pivotValue = math.Abs(lu[k*n+i])
				pivotRow = k
			}
		}
		if pivotValue < FactorizationTolerance {
			return nil, laErrorf("LU", ErrSingular)
		}
		if pivotRow != i {
			for k = 0; k < n; k++ {
				lu[i*n+k], lu[pivotRow*n+k] = lu[pivotRow*n+k], lu[i*n+k]
			}
			permutation[i], permutation[pivotRow] = permutation[pivotRow], permutation[i]
			oddSwaps = !oddSwaps
		}
		for j = i + 1; j < n; j++ {
			lu[j*n+i] /= lu[i*n+i]
			for k = i + 1; k < n; k++ {
				lu[j*n+k] -= lu[j*n+i] * lu[i*n+k]
			}
		}
	}

	// split the elimination buffer into unit-lower L and upper U
	lower := make([]float64, n*n)
	upper := make([]float64, n*n)
	for i = 0; i < n; i++ {
		lower[i*n+i] = 1
		for j = 0; j < i; j++ {
			lower[i*n+j] = lu[i*n+j]
		}
		for j = i; j < n; j++ {
			upper[i*n+j] = lu[i*n+j]
		}
	}

	return &LUFactorization{
		lower:       newDenseMatrixUnchecked(n, n, lower),
		upper:       newDenseMatrixUnchecked(n, n, upper),
		permutation: permutation,
		oddSwaps:    oddSwaps,
	}, nil
}

// Dim returns the dimension of the factorized matrix.
func (f *LUFactorization) Dim() int { return f.lower.rows }

// L returns a copy of the unit lower-triangular factor.
func (f *LUFactorization) L() *DenseMatrix {
	return f.lower.Clone().(*DenseMatrix)
}

// U returns a copy of the upper-triangular factor.
func (f *LUFactorization) U() *DenseMatrix {
	return f.upper.Clone().(*DenseMatrix)
}

// Permutation returns a copy of the row permutation: row i of P·A is row
// Permutation()[i] of A.
func (f *LUFactorization) Permutation() []int {
	out := make([]int, len(f.permutation))
	copy(out, f.permutation)

	return out
}

// PermutationMatrix returns P as a matrix of one-hot sparse rows.
func (f *LUFactorization) PermutationMatrix() *SparseRowMatrix {
	n := len(f.permutation)
	rows := make([]*SparseVector, n)
	var i int
	for i = 0; i < n; i++ {
		rows[i] = newSparseUnchecked(n, []int{f.permutation[i]}, []float64{1})
	}

	return &SparseRowMatrix{rowVecs: rows, rows: n, cols: n}
}

// Determinant returns det(A): the product of U's diagonal, negated when
// the swap parity is odd.
func (f *LUFactorization) Determinant() float64 {
	det := 1.0
	n := f.upper.rows
	var i int
	for i = 0; i < n; i++ {
		det *= f.upper.data[i*n+i]
	}
	if f.oddSwaps {
		det = -det
	}

	return det
}

// SolveVec solves A·x = b for x.
//
// Implementation: permute b, forward-substitute against L (unit
// diagonal), back-substitute against U.
// Errors: ErrNilOperand, ErrDimensionMismatch.
// Complexity: O(n²).
func (f *LUFactorization) SolveVec(b Vector) (*DenseVector, error) {
	if err := ValidateVectorNotNil(b); err != nil {
		return nil, laErrorf("LU.SolveVec", err)
	}
	n := f.lower.rows
	if err := ValidateVecLen(b, n); err != nil {
		return nil, laErrorf("LU.SolveVec", err)
	}

	bDense := toDense(b)
	x := make([]float64, n)
	var i, k int
	for i = 0; i < n; i++ {
		x[i] = bDense[f.permutation[i]]
	}

	l := f.lower.data
	u := f.upper.data
	var sum float64
	for i = 0; i < n; i++ {
		sum = x[i]
		for k = 0; k < i; k++ {
			sum -= l[i*n+k] * x[k]
		}
		x[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= u[i*n+k] * x[k]
		}
		x[i] = sum / u[i*n+i]
	}

	return wrapDense(x), nil
}

// SolveMat solves A·X = B column by column.
//
// Errors: ErrNilOperand, ErrDimensionMismatch.
// Complexity: O(n²·cols).
func (f *LUFactorization) SolveMat(b Matrix) (*DenseMatrix, error) {
	if err := ValidateMatrixNotNil(b); err != nil {
		return nil, laErrorf("LU.SolveMat", err)
	}
	n := f.lower.rows
	if b.Rows() != n {
		return nil, laErrorf("LU.SolveMat", ErrDimensionMismatch)
	}

	out := make([]float64, n*b.Cols())
	var i, col int
	for col = 0; col < b.Cols(); col++ {
		column := make([]float64, n)
		for i = 0; i < n; i++ {
			column[i], _ = b.At(i, col)
		}
		solved, err := f.SolveVec(wrapDense(column))
		if err != nil {
			return nil, err
		}
		for i = 0; i < n; i++ {
			out[i*b.Cols()+col] = solved.data[i]
		}
	}

	return newDenseMatrixUnchecked(n, b.Cols(), out), nil
}

// Inverse returns A⁻¹ by solving against the identity.
//
// Complexity: O(n³).
func (f *LUFactorization) Inverse() (*DenseMatrix, error) {
	eye, err := SparseIdentity(f.lower.rows)
	if err != nil {
		return nil, err
	}

	return f.SolveMat(eye)
}
