// SPDX-License-Identifier: MIT

// Package la: allocating vector kernels.
//
// MAIN DESCRIPTION:
//   Binary operations over Vector operands live here as package functions.
//   Each kernel validates shape compatibility, then dispatches on the
//   concrete operand types: dense/dense takes the flat loop, sparse/sparse
//   takes a merge-join over the two ascending index streams, and mixed
//   pairs iterate only the sparse side. Foreign Vector implementations fall
//   back to the interface accessors.
//
// Result-type rules (fixed, documented, relied on by tests):
//   - VecAdd/VecSub: Dense ⊕ anything → Dense; Sparse ⊕ Sparse → Sparse
//     (index-union merge).
//   - Outer: Dense ⊗ Dense → DenseMatrix; Sparse ⊗ Dense → DenseMatrix;
//     anything ⊗ Sparse → SparseRowMatrix of scaled sparse rows.
//
// Determinism: no randomness, no global state; identical inputs yield
// bitwise-identical outputs.
package la

import "math"

// operation tags used when wrapping sentinels.
const (
	opVecAdd   = "VecAdd"
	opVecSub   = "VecSub"
	opDot      = "Dot"
	opOuter    = "Outer"
	opDistance = "Distance"
)

// toDense materializes any vector as a flat slice.
func toDense(v Vector) []float64 {
	switch t := v.(type) {
	case *DenseVector:
		out := make([]float64, len(t.data))
		copy(out, t.data)

		return out
	case *SparseVector:
		return t.ToSlice()
	default:
		out := make([]float64, v.Size())
		cur := v.Cursor()
		for cur.Next() {
			e := cur.Entry()
			out[e.Index] = e.Value
		}

		return out
	}
}

// VecAdd returns a + b as a new vector.
//
// Behavior highlights:
//   - Dense ⊕ anything yields a DenseVector.
//   - Sparse ⊕ Sparse yields a SparseVector whose active set is the union
//     of the operands' index sets (entries summed where both are active).
//
// Errors: ErrNilOperand, ErrDimensionMismatch.
// Complexity: O(n) dense, O(nnz_a + nnz_b) sparse/sparse.
func VecAdd(a, b Vector) (Vector, error) {
	if err := ValidateVectorNotNil(a); err != nil {
		return nil, laErrorf(opVecAdd, err)
	}
	if err := ValidateVectorNotNil(b); err != nil {
		return nil, laErrorf(opVecAdd, err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return nil, laErrorf(opVecAdd, err)
	}

	sa, aSparse := a.(*SparseVector)
	sb, bSparse := b.(*SparseVector)
	if aSparse && bSparse {
		return mergeSparse(sa, sb, 1), nil
	}

	out := toDense(a)
	cur := b.Cursor()
	for cur.Next() {
		e := cur.Entry()
		out[e.Index] += e.Value
	}

	return wrapDense(out), nil
}

// VecSub returns a - b as a new vector, under the same result-type rules
// as VecAdd.
//
// Errors: ErrNilOperand, ErrDimensionMismatch.
// Complexity: O(n) dense, O(nnz_a + nnz_b) sparse/sparse.
func VecSub(a, b Vector) (Vector, error) {
	if err := ValidateVectorNotNil(a); err != nil {
		return nil, laErrorf(opVecSub, err)
	}
	if err := ValidateVectorNotNil(b); err != nil {
		return nil, laErrorf(opVecSub, err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return nil, laErrorf(opVecSub, err)
	}

	sa, aSparse := a.(*SparseVector)
	sb, bSparse := b.(*SparseVector)
	if aSparse && bSparse {
		return mergeSparse(sa, sb, -1), nil
	}

	out := toDense(a)
	cur := b.Cursor()
	for cur.Next() {
		e := cur.Entry()
		out[e.Index] -= e.Value
	}

	return wrapDense(out), nil
}

// mergeSparse unions two sparse operands into a new sparse vector,
// combining matched entries as a + sign*b. Entries that cancel to exactly
// zero stay active: the union index set is structural, not value-driven.
func mergeSparse(a, b *SparseVector, sign float64) *SparseVector {
	indices := make([]int, 0, len(a.indices)+len(b.indices))
	values := make([]float64, 0, len(a.indices)+len(b.indices))

	var i, j int
	for i < len(a.indices) || j < len(b.indices) {
		switch {
		case j >= len(b.indices) || (i < len(a.indices) && a.indices[i] < b.indices[j]):
			indices = append(indices, a.indices[i])
			values = append(values, a.values[i])
			i++
		case i >= len(a.indices) || b.indices[j] < a.indices[i]:
			indices = append(indices, b.indices[j])
			values = append(values, sign*b.values[j])
			j++
		default:
			indices = append(indices, a.indices[i])
			values = append(values, a.values[i]+sign*b.values[j])
			i++
			j++
		}
	}

	return newSparseUnchecked(a.size, indices, values)
}

// Dot returns the inner product a·b.
//
// Behavior highlights:
//   - Dense·Dense is a full linear scan.
//   - Sparse·Sparse is a merge-join; only matched indices contribute.
//   - Dense·Sparse iterates the sparse side's active indices only.
//
// Errors: ErrNilOperand, ErrDimensionMismatch.
// Complexity: O(n) dense, O(nnz_a + nnz_b) sparse/sparse, O(nnz) mixed.
func Dot(a, b Vector) (float64, error) {
	if err := ValidateVectorNotNil(a); err != nil {
		return 0, laErrorf(opDot, err)
	}
	if err := ValidateVectorNotNil(b); err != nil {
		return 0, laErrorf(opDot, err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return 0, laErrorf(opDot, err)
	}

	var score float64
	var i int
	switch x := a.(type) {
	case *DenseVector:
		switch y := b.(type) {
		case *DenseVector:
			for i = 0; i < len(x.data); i++ {
				score += x.data[i] * y.data[i]
			}
		case *SparseVector:
			for i = 0; i < len(y.indices); i++ {
				score += x.data[y.indices[i]] * y.values[i]
			}
		default:
			return genericDot(a, b), nil
		}
	case *SparseVector:
		switch y := b.(type) {
		case *DenseVector:
			for i = 0; i < len(x.indices); i++ {
				score += y.data[x.indices[i]] * x.values[i]
			}
		case *SparseVector:
			var j int
			for i < len(x.indices) && j < len(y.indices) {
				switch {
				case x.indices[i] == y.indices[j]:
					score += x.values[i] * y.values[j]
					i++
					j++
				case x.indices[i] < y.indices[j]:
					i++
				default:
					j++
				}
			}
		default:
			return genericDot(a, b), nil
		}
	default:
		return genericDot(a, b), nil
	}

	return score, nil
}

// genericDot handles foreign Vector implementations via cursors.
// Assumes sizes were validated.
func genericDot(a, b Vector) float64 {
	bDense := toDense(b)
	var score float64
	cur := a.Cursor()
	for cur.Next() {
		e := cur.Entry()
		score += e.Value * bDense[e.Index]
	}

	return score
}

// Outer returns the outer product a ⊗ b as a matrix with a.Size() rows and
// b.Size() columns. Row i is b scaled by a's value at i; rows at which a
// sparse left operand is inactive come out empty (sparse right operand) or
// zero (dense right operand).
//
// Errors: ErrNilOperand, ErrUnsupportedOperand for foreign implementations.
// Complexity: O(n·m) dense, proportional to stored entries otherwise.
func Outer(a, b Vector) (Matrix, error) {
	if err := ValidateVectorNotNil(a); err != nil {
		return nil, laErrorf(opOuter, err)
	}
	if err := ValidateVectorNotNil(b); err != nil {
		return nil, laErrorf(opOuter, err)
	}

	var i int
	switch x := a.(type) {
	case *DenseVector:
		switch y := b.(type) {
		case *DenseVector:
			out := make([]float64, len(x.data)*len(y.data))
			var j int
			for i = 0; i < len(x.data); i++ {
				row := out[i*len(y.data) : (i+1)*len(y.data)]
				for j = 0; j < len(y.data); j++ {
					row[j] = x.data[i] * y.data[j]
				}
			}

			return &DenseMatrix{rows: len(x.data), cols: len(y.data), data: out}, nil
		case *SparseVector:
			rows := make([]*SparseVector, len(x.data))
			for i = 0; i < len(x.data); i++ {
				rows[i] = y.Scale(x.data[i])
			}

			return &SparseRowMatrix{rowVecs: rows, rows: len(x.data), cols: y.size}, nil
		}
	case *SparseVector:
		switch y := b.(type) {
		case *DenseVector:
			out := make([]float64, x.size*len(y.data))
			var j int
			for i = 0; i < len(x.indices); i++ {
				row := out[x.indices[i]*len(y.data) : (x.indices[i]+1)*len(y.data)]
				for j = 0; j < len(y.data); j++ {
					row[j] = x.values[i] * y.data[j]
				}
			}

			return &DenseMatrix{rows: x.size, cols: len(y.data), data: out}, nil
		case *SparseVector:
			rows := make([]*SparseVector, x.size)
			for i = 0; i < x.size; i++ {
				rows[i] = emptySparse(y.size)
			}
			for i = 0; i < len(x.indices); i++ {
				rows[x.indices[i]] = y.Scale(x.values[i])
			}

			return &SparseRowMatrix{rowVecs: rows, rows: x.size, cols: y.size}, nil
		}
	}

	return nil, laErrorf(opOuter, ErrUnsupportedOperand)
}

// EuclideanDistance returns the l2 distance between a and b.
//
// Errors: ErrNilOperand, ErrDimensionMismatch.
func EuclideanDistance(a, b Vector) (float64, error) {
	return vectorDistance(a, b, func(d float64) float64 { return d * d }, math.Sqrt)
}

// L1Distance returns the Manhattan distance between a and b.
//
// Errors: ErrNilOperand, ErrDimensionMismatch.
func L1Distance(a, b Vector) (float64, error) {
	return vectorDistance(a, b, math.Abs, func(d float64) float64 { return d })
}

// vectorDistance accumulates transform(a[i]-b[i]) over the union of both
// active index streams in a single merge pass, then applies normalize.
// Unmatched indices contribute transform against an implicit zero.
func vectorDistance(a, b Vector, transform, normalize func(float64) float64) (float64, error) {
	if err := ValidateVectorNotNil(a); err != nil {
		return 0, laErrorf(opDistance, err)
	}
	if err := ValidateVectorNotNil(b); err != nil {
		return 0, laErrorf(opDistance, err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return 0, laErrorf(opDistance, err)
	}

	var score float64
	var i int

	// dense/dense short-circuits the merge machinery
	if x, ok := a.(*DenseVector); ok {
		if y, ok2 := b.(*DenseVector); ok2 {
			for i = 0; i < len(x.data); i++ {
				score += transform(x.data[i] - y.data[i])
			}

			return normalize(score), nil
		}
	}

	ca, cb := a.Cursor(), b.Cursor()
	aOK, bOK := ca.Next(), cb.Next()
	for aOK && bOK {
		ae, be := ca.Entry(), cb.Entry()
		switch {
		case ae.Index == be.Index:
			score += transform(ae.Value - be.Value)
			aOK = ca.Next()
			bOK = cb.Next()
		case ae.Index < be.Index:
			score += transform(ae.Value)
			aOK = ca.Next()
		default:
			score += transform(be.Value)
			bOK = cb.Next()
		}
	}
	for aOK {
		score += transform(ca.Entry().Value)
		aOK = ca.Next()
	}
	for bOK {
		score += transform(cb.Entry().Value)
		bOK = cb.Next()
	}

	return normalize(score), nil
}
