// SPDX-License-Identifier: MIT
// Package la: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the la
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation should panic on user-triggered error
// conditions. Panics are reserved for programmer errors in private helpers.

package la

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "la: ..." for consistency and to allow easy
// grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// Factorization sentinels (ErrNotPositiveDefinite, ErrSingular, ErrAsymmetry,
// ErrNotConverged, ErrNonSquare) are expected, routine outcomes that callers
// branch on; they signal an absent result, not a programming mistake.

var (
	// ErrNilOperand indicates that a nil Vector or Matrix (receiver or
	// argument) was used.
	ErrNilOperand = errors.New("la: nil operand")

	// ErrInvalidDimensions indicates that a requested size or dimension is
	// non-positive, or that a declared dimension is smaller than the largest
	// supplied index.
	ErrInvalidDimensions = errors.New("la: invalid dimensions")

	// ErrOutOfRange indicates that an index is outside the valid bounds.
	// Public indexers (At/Set/AddAt) MUST return this, not panic.
	ErrOutOfRange = errors.New("la: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. dot of different sizes, or MatMul where the inner
	// dimensions disagree.
	ErrDimensionMismatch = errors.New("la: dimension mismatch")

	// ErrInactiveIndex is returned by Set/AddAt on a sparse index that is
	// absent from the fixed active set. Sparse index sets are immutable
	// after construction.
	ErrInactiveIndex = errors.New("la: index not in sparse active set")

	// ErrNaNValue signals a NaN encountered where finite values are
	// required (feature ingestion).
	ErrNaNValue = errors.New("la: NaN value encountered")

	// ErrRagged indicates a 2D source whose rows have differing lengths.
	ErrRagged = errors.New("la: ragged rows")

	// ErrLengthMismatch indicates that parallel index/value slices differ
	// in length at sparse construction.
	ErrLengthMismatch = errors.New("la: index and value lengths differ")

	// ErrDuplicateIndex indicates a repeated index at sparse construction;
	// active-index sets must be strictly ascending.
	ErrDuplicateIndex = errors.New("la: duplicate sparse index")

	// ErrBadShape indicates a reshape to an incompatible element count or
	// an unsupported rank.
	ErrBadShape = errors.New("la: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't.
	ErrNonSquare = errors.New("la: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry.
	ErrAsymmetry = errors.New("la: matrix is not symmetric")

	// ErrNotPositiveDefinite is returned by Cholesky when a diagonal pivot
	// falls at or below FactorizationTolerance.
	ErrNotPositiveDefinite = errors.New("la: matrix is not positive definite")

	// ErrSingular is returned by LU when the largest available pivot
	// magnitude falls below FactorizationTolerance.
	ErrSingular = errors.New("la: singular matrix")

	// ErrNotConverged is returned by Eigen when the QL iteration exceeds
	// its per-eigenvalue cap.
	ErrNotConverged = errors.New("la: eigen decomposition did not converge")

	// ErrUnsupportedOperand indicates a Vector or Matrix implementation the
	// kernel does not know how to dispatch on.
	ErrUnsupportedOperand = errors.New("la: unsupported operand type")

	// ErrBadPayload indicates a serialized frame whose payload length does
	// not match the declared dimensions, or which is otherwise truncated.
	ErrBadPayload = errors.New("la: malformed serialized payload")

	// ErrUnknownVersion indicates a serialized frame with a version outside
	// the supported range.
	ErrUnknownVersion = errors.New("la: unknown serialization version")

	// ErrUnknownClass indicates a serialized frame whose class discriminator
	// names no known tensor type.
	ErrUnknownClass = errors.New("la: unknown serialized class")
)
