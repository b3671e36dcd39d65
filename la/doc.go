// Package la implements the linear-algebra kernel: dense and sparse
// vectors, dense and sparse-row matrices, and the operations that tie
// them together.
//
// The la package provides:
//
//   - DenseVector / SparseVector behind the Vector interface, with
//     cursor-based iteration over stored entries.
//   - DenseMatrix / SparseRowMatrix behind the Matrix interface.
//   - Elementwise and algebraic kernels: VecAdd, VecSub, Dot, Outer,
//     Hadamard and intersection updates, LeftMultiply, RightMultiply,
//     MatMul with implicit transposes, Euclidean and L1 distances.
//   - Factorizations: Cholesky (A = L·Lᵗ), LU with partial pivoting
//     (P·A = L·U) and symmetric eigendecomposition (A = V·diag(λ)·Vᵗ),
//     each exposing determinant, solve and inverse.
//   - Versioned binary persistence, optionally zstd-compressed, and
//     named-feature ingestion via FeatureMap.
//
// Numeric contracts are explicit: entry equality uses EntryEpsilon,
// matrix equality uses MatrixEpsilon, and factorizations reject pivots
// at or below FactorizationTolerance. Single values read as plain
// float64; any operation that can fail returns a branchable sentinel
// from errors.go instead of panicking.
//
// Sparse structures have an immutable active-index set: reading an
// inactive index yields 0, writing one yields ErrInactiveIndex. The
// in-place combining operations honor the receiver's pattern, so a
// sparse receiver never gains entries.
//
// See the package examples and the kmeans package for usage patterns.
package la
