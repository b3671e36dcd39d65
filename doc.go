// Package linalg is an in-memory numerical playground: dense & sparse
// vectors and matrices, classical factorizations, and the algorithms
// that consume them.
//
// 🚀 What is linalg?
//
//	A small, deterministic numerics library that brings together:
//		• Rank-1 tensors: dense vectors and sorted-index sparse vectors
//		• Rank-2 tensors: dense matrices and dense-of-sparse-row matrices
//		• Elementwise & algebraic ops: dot, outer, Hadamard, broadcasts
//		• Factorizations: Cholesky, LU with partial pivoting, symmetric eigen
//		• Persistence: versioned little-endian frames, optional zstd
//		• Consumers: a parallel K-Means trainer built on the kernel
//
// ✨ Why choose linalg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable numerics – documented tolerances, sentinel errors, no panics
//   - Pure Go – no cgo, no BLAS binding to ship
//   - Honest failure modes – singular/asymmetric inputs are branchable errors
//
// Under the hood, everything is organized under two subpackages:
//
//	la/     — vectors, matrices, factorizations, binary persistence
//	kmeans/ — Lloyd's algorithm with random & k-means++ seeding
//
// Quick ASCII example:
//
//	    ⎡2 1⎤            ⎡1.414  0    ⎤
//	    ⎣1 2⎦  = L·Lᵗ,  L=⎣0.707  1.224⎦
//
//	a 2×2 SPD matrix and its Cholesky factor.
//
// Dive into README.md for full examples and the operation matrix.
//
//	go get github.com/katalvlaran/linalg/la
package linalg
