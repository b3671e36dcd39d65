// SPDX-License-Identifier: MIT
// Package: la
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//  - Return wrapped sentinel errors so call sites stay uniform and callers
//    can still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - The symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Symmetry is checked exactly (bitwise value comparison), not within a
//    tolerance: it gates factorizations, where "almost symmetric" input must
//    be symmetrized explicitly by the caller rather than silently accepted.

package la

import "fmt"

// laErrorf wraps an underlying sentinel with the given validator or
// operation tag. Used across the package to maintain consistent labeling.
func laErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateVectorNotNil ensures the vector reference is non-nil.
//
// Returns ErrNilOperand if v == nil, including a nil concrete pointer
// boxed in the interface.
// Complexity: O(1).
func ValidateVectorNotNil(v Vector) error {
	if v == nil {
		return laErrorf("ValidateVectorNotNil", ErrNilOperand)
	}
	switch vv := v.(type) {
	case *DenseVector:
		if vv == nil {
			return laErrorf("ValidateVectorNotNil", ErrNilOperand)
		}
	case *SparseVector:
		if vv == nil {
			return laErrorf("ValidateVectorNotNil", ErrNilOperand)
		}
	}

	return nil
}

// ValidateMatrixNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilOperand if m == nil, including a nil concrete pointer
// boxed in the interface.
// Complexity: O(1).
func ValidateMatrixNotNil(m Matrix) error {
	if m == nil {
		return laErrorf("ValidateMatrixNotNil", ErrNilOperand)
	}
	switch mm := m.(type) {
	case *DenseMatrix:
		if mm == nil {
			return laErrorf("ValidateMatrixNotNil", ErrNilOperand)
		}
	case *SparseRowMatrix:
		if mm == nil {
			return laErrorf("ValidateMatrixNotNil", ErrNilOperand)
		}
	}

	return nil
}

// ValidateSameSize ensures vectors a and b share a declared dimension.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameSize(a, b Vector) error {
	if a.Size() != b.Size() {
		return laErrorf("ValidateSameSize", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVectorIndex ensures 0 <= i < size.
//
// Returns nil or wrapped ErrOutOfRange.
// Complexity: O(1).
func ValidateVectorIndex(size, i int) error {
	if i < 0 || i >= size {
		return laErrorf("ValidateVectorIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return laErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return laErrorf("ValidateSameShape: Cols", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: assumes m is not nil (caller must ensure).
// Returns nil or wrapped ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return laErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks that the dense matrix m equals its transpose
// exactly. Use before Cholesky and Eigen.
//
// Implementation: Stage 1 squareness, Stage 2 upper-triangle scan.
// Returns nil, wrapped ErrNonSquare or wrapped ErrAsymmetry.
// Complexity: O(n²/2).
func ValidateSymmetric(m *DenseMatrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	var i, j int // predeclared loop indices
	for i = 0; i < m.rows; i++ {
		for j = i + 1; j < m.cols; j++ {
			if m.data[i*m.cols+j] != m.data[j*m.cols+i] {
				return laErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateMulCompatible ensures the inner dimensions of a·b agree, after the
// requested implicit transposes are applied.
//
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix, transposeA, transposeB bool) error {
	inner := a.Cols()
	if transposeA {
		inner = a.Rows()
	}
	otherInner := b.Rows()
	if transposeB {
		otherInner = b.Cols()
	}
	if inner != otherInner {
		return laErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures a vector's declared dimension matches an expected
// length (matrix-vector compatibility guard).
//
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen(v Vector, expected int) error {
	if v.Size() != expected {
		return laErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
