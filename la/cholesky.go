// SPDX-License-Identifier: MIT

// Package la: Cholesky factorization A = L·Lᵗ.
//
// MAIN DESCRIPTION:
//   Cholesky factorizes a symmetric positive-definite matrix into a lower
//   triangle L with A = L·Lᵗ. It is the cheapest of the three
//   factorizations and doubles as the SPD test: a symmetric matrix is
//   positive definite iff the factorization succeeds.
//
// Implementation:
//   Stage 1 — gate: square and exactly symmetric, else no result.
//   Stage 2 — row-by-row elimination. For each (i, j) with j ≥ i the
//   partial sum subtracts the products of previously computed entries;
//   diagonal entries take a square root and abort with
//   ErrNotPositiveDefinite when the radicand is at or below
//   FactorizationTolerance. The upper triangle is zeroed afterwards.
//
// Behavior highlights:
//   - The input matrix is copied first; mutating it later does not affect
//     the factorization.
//   - Failure is a branchable sentinel, not a panic: "not SPD" is a
//     routine outcome (covariance regularization fallbacks rely on it).
//
// Determinism: no randomness; identical inputs yield identical factors.
// Complexity: O(n³/3) factorization, O(n²) per solve.
package la

import "math"

// CholeskyFactorization is the immutable result of Cholesky. It owns its
// lower triangle; accessors copy, so no mutation can reach the factor.
type CholeskyFactorization struct {
	lower *DenseMatrix
}

// Cholesky factorizes a symmetric positive-definite matrix.
//
// Inputs: a square, exactly symmetric dense matrix.
// Returns: the factorization, or an absent result expressed as an error.
// Errors: ErrNilOperand, ErrNonSquare, ErrAsymmetry,
// ErrNotPositiveDefinite.
func Cholesky(m *DenseMatrix) (*CholeskyFactorization, error) {
	if m == nil {
		return nil, laErrorf("Cholesky", ErrNilOperand)
	}
	if err := ValidateSymmetric(m); err != nil {
		return nil, laErrorf("Cholesky", err)
	}

	n := m.rows
	chol := make([]float64, len(m.data))
	copy(chol, m.data)

	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = chol[i*n+j]
			for k = i - 1; k >= 0; k-- {
				sum -= chol[i*n+k] * chol[j*n+k]
			}
			if i == j {
				if sum <= FactorizationTolerance {
					return nil, laErrorf("Cholesky", ErrNotPositiveDefinite)
				}
				chol[i*n+i] = math.Sqrt(sum)
			} else {
				chol[j*n+i] = sum / chol[i*n+i]
			}
		}
	}

	// zero the upper triangle left over from the working copy
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			chol[i*n+j] = 0
		}
	}

	return &CholeskyFactorization{lower: newDenseMatrixUnchecked(n, n, chol)}, nil
}

// Dim returns the dimension of the factorized matrix.
func (f *CholeskyFactorization) Dim() int { return f.lower.rows }

// L returns a copy of the lower-triangular factor.
func (f *CholeskyFactorization) L() *DenseMatrix {
	return f.lower.Clone().(*DenseMatrix)
}

// Determinant returns det(A) as the product of the squared diagonal
// entries of L.
func (f *CholeskyFactorization) Determinant() float64 {
	det := 1.0
	n := f.lower.rows
	var i int
	for i = 0; i < n; i++ {
		det *= f.lower.data[i*n+i] * f.lower.data[i*n+i]
	}

	return det
}

// SolveVec solves A·x = b for x.
//
// Implementation: forward substitution against L, then back substitution
// against Lᵗ read from the same triangle.
// Errors: ErrNilOperand, ErrDimensionMismatch.
// Complexity: O(n²).
func (f *CholeskyFactorization) SolveVec(b Vector) (*DenseVector, error) {
	if err := ValidateVectorNotNil(b); err != nil {
		return nil, laErrorf("Cholesky.SolveVec", err)
	}
	n := f.lower.rows
	if err := ValidateVecLen(b, n); err != nil {
		return nil, laErrorf("Cholesky.SolveVec", err)
	}

	x := toDense(b)
	l := f.lower.data
	var i, k int
	var sum float64

	// L·y = b
	for i = 0; i < n; i++ {
		sum = x[i]
		for k = i - 1; k >= 0; k-- {
			sum -= l[i*n+k] * x[k]
		}
		x[i] = sum / l[i*n+i]
	}

	// Lᵗ·x = y
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= l[k*n+i] * x[k]
		}
		x[i] = sum / l[i*n+i]
	}

	return wrapDense(x), nil
}

// SolveMat solves A·X = B column by column.
//
// Errors: ErrNilOperand, ErrDimensionMismatch.
// Complexity: O(n²·cols).
func (f *CholeskyFactorization) SolveMat(b Matrix) (*DenseMatrix, error) {
	if err := ValidateMatrixNotNil(b); err != nil {
		return nil, laErrorf("Cholesky.SolveMat", err)
	}
	n := f.lower.rows
	if b.Rows() != n {
		return nil, laErrorf("Cholesky.SolveMat", ErrDimensionMismatch)
	}

	out := make([]float64, n*b.Cols())
	l := f.lower.data
	var i, k, col int
	var sum float64
	for col = 0; col < b.Cols(); col++ {
		x := make([]float64, n)
		for i = 0; i < n; i++ {
			x[i], _ = b.At(i, col)
		}
		for i = 0; i < n; i++ {
			sum = x[i]
			for k = i - 1; k >= 0; k-- {
				sum -= l[i*n+k] * x[k]
			}
			x[i] = sum / l[i*n+i]
		}
		for i = n - 1; i >= 0; i-- {
			sum = x[i]
			for k = i + 1; k < n; k++ {
				sum -= l[k*n+i] * x[k]
			}
			x[i] = sum / l[i*n+i]
		}
		for i = 0; i < n; i++ {
			out[i*b.Cols()+col] = x[i]
		}
	}

	return newDenseMatrixUnchecked(n, b.Cols(), out), nil
}

// Inverse returns A⁻¹ by solving against the identity.
//
// Complexity: O(n³).
func (f *CholeskyFactorization) Inverse() (*DenseMatrix, error) {
	eye, err := SparseIdentity(f.lower.rows)
	if err != nil {
		return nil, err
	}

	return f.SolveMat(eye)
}
