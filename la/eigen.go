// SPDX-License-Identifier: MIT

// Package la: symmetric eigendecomposition A = V·diag(λ)·Vᵗ.
//
// MAIN DESCRIPTION:
//   Eigen decomposes a real symmetric matrix into eigenvalues and an
//   orthonormal eigenvector basis via the classic two-phase scheme.
//
// Implementation:
//   Stage 1 — Householder tridiagonalization. Iterating from the last row
//   upward, each step builds a reflection that zeroes the off-tridiagonal
//   entries of the current row/column while accumulating the orthogonal
//   transform in place. Rows whose scale accumulates to zero need no
//   reflection. A finishing pass converts the accumulated reflections
//   into the explicit transform matrix.
//   Stage 2 — implicit-shift QL iteration. For each diagonal position the
//   off-diagonal is driven below runningMax·2⁻⁵² by QL sweeps of plane
//   rotations with a computed shift; the rotations simultaneously update
//   the eigenvector matrix. More than 35 sweeps for one eigenvalue means
//   the decomposition did not converge and no result is produced.
//
// Behavior highlights:
//   - Eigenvalues come out sorted descending, with the eigenvector
//     columns permuted to match.
//   - The tridiagonal intermediates (diagonal, off-diagonal, Householder
//     transform) are retained and exposed read-only.
//
// Determinism: no randomness; ties in the eigenvalue sort keep their
// pre-sort order.
// Complexity: O(n³) tridiagonalization, O(n²) per QL sweep.
package la

import (
	"math"
	"sort"
)

// EigenDecomposition is the immutable result of Eigen. Accessors copy.
type EigenDecomposition struct {
	eigenvalues  []float64
	eigenvectors *DenseMatrix
	diagonal     []float64
	offDiagonal  []float64
	householder  *DenseMatrix
}

// Eigen decomposes a symmetric dense matrix.
//
// Inputs: a square, exactly symmetric dense matrix.
// Returns: the decomposition, or an absent result expressed as an error.
// Errors: ErrNilOperand, ErrNonSquare, ErrAsymmetry, ErrNotConverged.
func Eigen(m *DenseMatrix) (*EigenDecomposition, error) {
	if m == nil {
		return nil, laErrorf("Eigen", ErrNilOperand)
	}
	if err := ValidateSymmetric(m); err != nil {
		return nil, laErrorf("Eigen", err)
	}

	n := m.rows
	tv := make([]float64, len(m.data)) // accumulated transform, mutated in place
	copy(tv, m.data)

	diagonal := make([]float64, n)
	offDiagonal := make([]float64, n) // first element stays zero
	copy(diagonal, tv[(n-1)*n:n*n])

	var i, j, k int

	// Phase 1: Householder reduction, iterating up from the last row.
	for i = n - 1; i > 0; i-- {
		var scale float64
		for k = 0; k < i; k++ {
			scale += math.Abs(diagonal[k])
		}

		var diagElement float64
		if scale == 0 {
			// degenerate row: diagonal[0..i-1] is already zero
			offDiagonal[i] = 0
			for j = 0; j < i; j++ {
				diagonal[j] = tv[(i-1)*n+j]
				tv[i*n+j] = 0
				tv[j*n+i] = 0
			}
		} else {
			// generate the Householder vector
			for k = 0; k < i; k++ {
				tmp := diagonal[k] / scale
				diagElement += tmp * tmp
				diagonal[k] = tmp
				offDiagonal[k] = 0
			}
			nextDiag := diagonal[i-1]
			offDiag := math.Sqrt(diagElement)
			if nextDiag >= 0 {
				offDiag = -offDiag
			}

			offDiagonal[i] = scale * offDiag
			diagElement -= offDiag * nextDiag
			diagonal[i-1] = nextDiag - offDiag

			// apply the reflection to the remaining vectors
			for j = 0; j < i; j++ {
				transDiag := diagonal[j]
				tv[j*n+i] = transDiag
				transOffDiag := offDiagonal[j] + tv[j*n+j]*transDiag
				for k = j + 1; k < i; k++ {
					tmp := tv[k*n+j]
					transOffDiag += tmp * diagonal[k]
					offDiagonal[k] += tmp * transDiag
				}
				offDiagonal[j] = transOffDiag
			}

			var scaledElementSum float64
			for j = 0; j < i; j++ {
				tmp := offDiagonal[j] / diagElement
				offDiagonal[j] = tmp
				scaledElementSum += tmp * diagonal[j]
			}
			offDiagScalingFactor := scaledElementSum / (diagElement + diagElement)
			for j = 0; j < i; j++ {
				offDiagonal[j] -= offDiagScalingFactor * diagonal[j]
			}

			for j = 0; j < i; j++ {
				tmpDiag := diagonal[j]
				tmpOffDiag := offDiagonal[j]
				for k = j; k < i; k++ {
					tv[k*n+j] -= tmpDiag*offDiagonal[k] + tmpOffDiag*diagonal[k]
				}
				diagonal[j] = tv[(i-1)*n+j]
				tv[i*n+j] = 0
			}
		}
		diagonal[i] = diagElement
	}

	// finish the transformation into an explicit matrix
	last := n - 1
	for i = 0; i < last; i++ {
		tv[last*n+i] = tv[i*n+i]
		tv[i*n+i] = 1
		next := i + 1
		nextDiag := diagonal[next]
		if nextDiag != 0 {
			for k = 0; k < next; k++ {
				diagonal[k] = tv[k*n+next] / nextDiag
			}
			for j = 0; j < next; j++ {
				var acc float64
				for k = 0; k < next; k++ {
					acc += tv[k*n+next] * tv[k*n+j]
				}
				for k = 0; k < next; k++ {
					tv[k*n+j] -= acc * diagonal[k]
				}
			}
			for j = 0; j < next; j++ {
				tv[j*n+next] = 0
			}
		}
	}
	for j = 0; j < n; j++ {
		diagonal[j] = tv[last*n+j]
		tv[last*n+j] = 0
	}
	tv[last*n+last] = 1
	offDiagonal[0] = 0

	// snapshot the tridiagonal form before the QL phase mutates it
	diagCopy := make([]float64, n)
	offDiagCopy := make([]float64, n)
	copy(diagCopy, diagonal)
	copy(offDiagCopy, offDiagonal)
	hhData := make([]float64, len(tv))
	copy(hhData, tv)
	householder := newDenseMatrixUnchecked(n, n, hhData)

	// Phase 2: implicit-shift QL iteration on the tridiagonal form.
	// Shift the off-diagonal up one slot for indexing convenience.
	copy(offDiagonal[:last], offDiagonal[1:n])
	offDiagonal[last] = 0

	var diagAccum, largestDiagSum float64
	for i = 0; i < n; i++ {
		largestDiagSum = math.Max(largestDiagSum, math.Abs(diagonal[i])+math.Abs(offDiagonal[i]))
		testVal := largestDiagSum * machineEpsilon

		// find a small off-diagonal value to partition the matrix
		idx := i
		for idx < n && math.Abs(offDiagonal[idx]) > testVal {
			idx++
		}

		// idx == i means diagonal[i] already is an eigenvalue
		if idx > i {
			iter := 0
			for {
				if iter > qlMaxIterations {
					return nil, laErrorf("Eigen", ErrNotConverged)
				}
				iter++

				// compute the shift
				curDiag := diagonal[i]
				shift := (diagonal[i+1] - curDiag) / (2 * offDiagonal[i])
				shiftLength := math.Hypot(shift, 1)
				if shift < 0 {
					shiftLength = -shiftLength
				}
				diagonal[i] = offDiagonal[i] / (shift + shiftLength)
				diagonal[i+1] = offDiagonal[i] * (shift + shiftLength)

				nextDiag := diagonal[i+1]
				diagShift := curDiag - diagonal[i]
				for j = i + 2; j < n; j++ {
					diagonal[j] -= diagShift
				}
				diagAccum += diagShift

				// the implicit QL sweep: plane rotations from idx-1 down to i
				partitionDiag := diagonal[idx]
				oldOffDiag := offDiagonal[i+1]
				c, c2, c3 := 1.0, 1.0, 1.0
				s, prevS := 0.0, 0.0
				for j = idx - 1; j >= i; j-- {
					c3 = c2
					c2 = c
					prevS = s
					scaledOffDiag := c * offDiagonal[j]
					scaledDiag := c * partitionDiag
					dist := math.Hypot(partitionDiag, offDiagonal[j])
					offDiagonal[j+1] = s * dist
					s = offDiagonal[j] / dist
					c = partitionDiag / dist
					partitionDiag = c*diagonal[j] - s*scaledOffDiag
					diagonal[j+1] = scaledDiag + s*(c*scaledOffDiag+s*diagonal[j])

					// rotate the eigenvector columns j and j+1
					for k = 0; k < n; k++ {
						row := tv[k*n : (k+1)*n]
						tmp := row[j+1]
						row[j+1] = s*row[j] + c*tmp
						row[j] = c*row[j] - s*tmp
					}
				}
				partitionDiag = -s * prevS * c3 * oldOffDiag * offDiagonal[i] / nextDiag
				offDiagonal[i] = s * partitionDiag
				diagonal[i] = c * partitionDiag

				if math.Abs(offDiagonal[i]) <= testVal {
					break
				}
			}
		}

		diagonal[i] += diagAccum
		offDiagonal[i] = 0
	}

	// sort eigenvalues descending and permute the eigenvector columns
	indices := make([]int, n)
	for i = 0; i < n; i++ {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool { return diagonal[indices[a]] > diagonal[indices[b]] })

	eigenvalues := make([]float64, n)
	evData := make([]float64, n*n)
	for i = 0; i < n; i++ {
		eigenvalues[i] = diagonal[indices[i]]
		for j = 0; j < n; j++ {
			evData[j*n+i] = tv[j*n+indices[i]]
		}
	}

	return &EigenDecomposition{
		eigenvalues:  eigenvalues,
		eigenvectors: newDenseMatrixUnchecked(n, n, evData),
		diagonal:     diagCopy,
		offDiagonal:  offDiagCopy,
		householder:  householder,
	}, nil
}

// Dim returns the dimension of the decomposed matrix.
func (f *EigenDecomposition) Dim() int { return len(f.eigenvalues) }

// Eigenvalues returns a copy of the eigenvalues in non-increasing order.
func (f *EigenDecomposition) Eigenvalues() []float64 {
	out := make([]float64, len(f.eigenvalues))
	copy(out, f.eigenvalues)

	return out
}

// Eigenvectors returns a copy of the eigenvector matrix; column i pairs
// with Eigenvalues()[i].
func (f *EigenDecomposition) Eigenvectors() *DenseMatrix {
	return f.eigenvectors.Clone().(*DenseMatrix)
}

// EigenVector returns a copy of the i-th eigenvector.
//
// Errors: ErrOutOfRange.
func (f *EigenDecomposition) EigenVector(i int) (*DenseVector, error) {
	if i < 0 || i >= len(f.eigenvalues) {
		return nil, laErrorf("Eigen.EigenVector", ErrOutOfRange)
	}

	return f.eigenvectors.Column(i)
}

// Diagonal returns a copy of the tridiagonal form's diagonal.
func (f *EigenDecomposition) Diagonal() *DenseVector {
	out := make([]float64, len(f.diagonal))
	copy(out, f.diagonal)

	return wrapDense(out)
}

// OffDiagonal returns a copy of the tridiagonal form's off-diagonal; the
// first entry is zero.
func (f *EigenDecomposition) OffDiagonal() *DenseVector {
	out := make([]float64, len(f.offDiagonal))
	copy(out, f.offDiagonal)

	return wrapDense(out)
}

// Householder returns a copy of the accumulated tridiagonalization
// transform.
func (f *EigenDecomposition) Householder() *DenseMatrix {
	return f.householder.Clone().(*DenseMatrix)
}

// Determinant returns det(A) as the product of the eigenvalues.
func (f *EigenDecomposition) Determinant() float64 {
	det := 1.0
	var i int
	for i = 0; i < len(f.eigenvalues); i++ {
		det *= f.eigenvalues[i]
	}

	return det
}

// PositiveEigenvalues reports whether every eigenvalue is strictly
// positive, i.e. whether the decomposed matrix is positive definite.
func (f *EigenDecomposition) PositiveEigenvalues() bool {
	var i int
	for i = 0; i < len(f.eigenvalues); i++ {
		if f.eigenvalues[i] <= 0 {
			return false
		}
	}

	return true
}

// NonSingular reports whether every eigenvalue is non-zero.
func (f *EigenDecomposition) NonSingular() bool {
	var i int
	for i = 0; i < len(f.eigenvalues); i++ {
		if f.eigenvalues[i] == 0 {
			return false
		}
	}

	return true
}

// SolveVec solves A·x = b via the spectral expansion
// x = Σ_i (vᵢ·b / λᵢ)·vᵢ. The caller should confirm NonSingular first; a
// zero eigenvalue produces ±Inf coefficients rather than an error.
//
// Errors: ErrNilOperand, ErrDimensionMismatch.
// Complexity: O(n²).
func (f *EigenDecomposition) SolveVec(b Vector) (*DenseVector, error) {
	if err := ValidateVectorNotNil(b); err != nil {
		return nil, laErrorf("Eigen.SolveVec", err)
	}
	n := len(f.eigenvalues)
	if err := ValidateVecLen(b, n); err != nil {
		return nil, laErrorf("Eigen.SolveVec", err)
	}

	bDense := toDense(b)
	out := make([]float64, n)
	ev := f.eigenvectors.data
	var i, j int
	for i = 0; i < n; i++ {
		var dot float64
		for j = 0; j < n; j++ {
			dot += ev[j*n+i] * bDense[j]
		}
		coefficient := dot / f.eigenvalues[i]
		for j = 0; j < n; j++ {
			out[j] += coefficient * ev[j*n+i]
		}
	}

	return wrapDense(out), nil
}
