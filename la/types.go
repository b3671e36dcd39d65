// SPDX-License-Identifier: MIT

// Package la: domain types shared across the package.
// This file intentionally contains ONLY the public interfaces, the cursor
// tuple types, and the numeric-policy constants. Errors live in errors.go
// and validators in validators.go per the global conventions.
package la

import "math"

// Numeric policy (single source of truth).
const (
	// EntryEpsilon is the absolute tolerance used when comparing vector
	// entries for equality.
	EntryEpsilon = 1e-12

	// MatrixEpsilon is the absolute tolerance used for elementwise matrix
	// equality.
	MatrixEpsilon = 1e-10

	// FactorizationTolerance bounds acceptable pivot magnitudes in Cholesky
	// and LU. Pivots at or below this threshold abort the factorization.
	FactorizationTolerance = 1e-14

	// qlMaxIterations caps the implicit QL sweeps per eigenvalue.
	qlMaxIterations = 35

	// machineEpsilon is 2^-52, the double-precision unit roundoff used to
	// scale the QL convergence threshold.
	machineEpsilon = 0x1p-52
)

// Vector is a rank-1 tensor with a fixed declared dimension.
//
// Two implementations exist: *DenseVector (contiguous storage, every index
// active) and *SparseVector (sorted active indices, immutable index set).
// Kernels type-switch on the concrete type for performance and fall back to
// this interface for foreign implementations where a fallback is sound.
type Vector interface {
	// Size returns the declared dimension.
	// Complexity: O(1).
	Size() int

	// NumActive returns the count of explicitly stored entries
	// (== Size for dense vectors).
	// Complexity: O(1).
	NumActive() int

	// At returns the value at index i. Sparse vectors return 0 for indices
	// outside the active set. Errors: ErrOutOfRange.
	At(i int) (float64, error)

	// Set stores v at index i.
	// Errors: ErrOutOfRange; ErrInactiveIndex for sparse inactive indices.
	Set(i int, v float64) error

	// AddAt adds delta to the value at index i.
	// Errors: ErrOutOfRange; ErrInactiveIndex for sparse inactive indices.
	AddAt(i int, delta float64) error

	// Sum returns the sum of all stored values.
	Sum() float64

	// TwoNorm returns the Euclidean norm.
	TwoNorm() float64

	// OneNorm returns the sum of absolute values.
	OneNorm() float64

	// Clone returns a deep copy sharing no storage with the receiver.
	Clone() Vector

	// Cursor returns a single-pass cursor over the active entries in
	// ascending index order. The cursor reuses one scratch entry; values
	// returned by Entry are snapshots and safe to retain.
	Cursor() VectorCursor
}

// Matrix is a rank-2 tensor with fixed dimensions.
//
// Two implementations exist: *DenseMatrix (row-major contiguous storage)
// and *SparseRowMatrix (dense array of sparse rows, immutable column sets).
type Matrix interface {
	// Rows returns the size of the first dimension.
	Rows() int

	// Cols returns the size of the second dimension.
	Cols() int

	// At returns the value at (i, j). Sparse rows return 0 for inactive
	// columns. Errors: ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set stores v at (i, j).
	// Errors: ErrOutOfRange; ErrInactiveIndex for sparse inactive columns.
	Set(i, j int, v float64) error

	// AddAt adds delta to the value at (i, j).
	// Errors: ErrOutOfRange; ErrInactiveIndex for sparse inactive columns.
	AddAt(i, j int, delta float64) error

	// NumActiveInRow returns the count of explicitly stored entries in the
	// row. An entry can be active and zero if it was active at construction.
	NumActiveInRow(i int) int

	// TwoNorm returns the Frobenius norm.
	TwoNorm() float64

	// Clone returns a deep copy sharing no storage with the receiver.
	Clone() Matrix

	// Cursor returns a single-pass cursor over active entries in row-major
	// order.
	Cursor() MatrixCursor
}

// VectorEntry is one (index, value) pair yielded by a vector cursor.
// It is a plain value struct; callers may retain it across steps.
type VectorEntry struct {
	Index int
	Value float64
}

// Equal reports whether two entries share an index and have values within
// EntryEpsilon of each other.
func (e VectorEntry) Equal(o VectorEntry) bool {
	return e.Index == o.Index && math.Abs(e.Value-o.Value) < EntryEpsilon
}

// MatrixEntry is one (row, col, value) triple yielded by a matrix cursor.
type MatrixEntry struct {
	Row   int
	Col   int
	Value float64
}

// Equal reports whether two entries share coordinates and have values within
// MatrixEpsilon of each other.
func (e MatrixEntry) Equal(o MatrixEntry) bool {
	return e.Row == o.Row && e.Col == o.Col && math.Abs(e.Value-o.Value) < MatrixEpsilon
}

// VectorCursor streams the active entries of a vector in ascending index
// order. Usage mirrors bufio.Scanner: Next advances and reports whether an
// entry is available, Entry returns the current pair.
//
// A cursor is valid for one traversal; obtain a fresh cursor to restart.
// Mutating the underlying vector mid-traversal is undefined.
type VectorCursor interface {
	Next() bool
	Entry() VectorEntry
}

// MatrixCursor streams active entries in row-major order.
type MatrixCursor interface {
	Next() bool
	Entry() MatrixEntry
}
