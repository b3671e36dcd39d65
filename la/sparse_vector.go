// SPDX-License-Identifier: MIT

// Package la: SparseVector — the sorted-index rank-1 tensor.
//
// A SparseVector stores a strictly ascending array of active indices and a
// parallel array of values. The index set is fixed at construction: Set and
// AddAt on an index outside it return ErrInactiveIndex, they never extend
// the set. Lookup resolves index→slot by binary search, so single-pass
// cursor traversal is preferred for bulk work.
package la

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// SparseVector is a rank-1 tensor with an immutable active-index set.
// The zero value is not usable; use NewSparseVector or SparseVectorFromMap.
type SparseVector struct {
	size    int
	indices []int
	values  []float64
}

// compile-time interface conformance
var _ Vector = (*SparseVector)(nil)

// NewSparseVector builds a sparse vector of the given declared dimension
// from parallel index/value slices. The input is defensively copied and
// sorted by index if needed.
//
// Errors: ErrLengthMismatch if the slices differ in length;
// ErrInvalidDimensions if size <= 0 or size <= the maximum index;
// ErrOutOfRange if any index is negative;
// ErrDuplicateIndex if an index appears more than once.
// Complexity: O(nnz log nnz).
func NewSparseVector(size int, indices []int, values []float64) (*SparseVector, error) {
	if size <= 0 {
		return nil, laErrorf("NewSparseVector", ErrInvalidDimensions)
	}
	if len(indices) != len(values) {
		return nil, laErrorf("NewSparseVector", ErrLengthMismatch)
	}
	if len(indices) == 0 {
		return &SparseVector{size: size}, nil
	}

	type pair struct {
		index int
		value float64
	}
	pairs := make([]pair, len(indices))
	var i int
	for i = 0; i < len(indices); i++ {
		if indices[i] < 0 {
			return nil, laErrorf("NewSparseVector", ErrOutOfRange)
		}
		pairs[i] = pair{index: indices[i], value: values[i]}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].index < pairs[b].index })

	newIndices := make([]int, len(pairs))
	newValues := make([]float64, len(pairs))
	for i = 0; i < len(pairs); i++ {
		if i > 0 && pairs[i].index == pairs[i-1].index {
			return nil, laErrorf("NewSparseVector", ErrDuplicateIndex)
		}
		newIndices[i] = pairs[i].index
		newValues[i] = pairs[i].value
	}
	if size <= newIndices[len(newIndices)-1] {
		return nil, laErrorf("NewSparseVector", ErrInvalidDimensions)
	}

	return &SparseVector{size: size, indices: newIndices, values: newValues}, nil
}

// SparseVectorFromMap builds a sparse vector from an index→value map.
//
// Errors: ErrInvalidDimensions if size <= 0 or size <= the maximum index;
// ErrOutOfRange if any index is negative.
// Complexity: O(nnz log nnz).
func SparseVectorFromMap(size int, entries map[int]float64) (*SparseVector, error) {
	indices := make([]int, 0, len(entries))
	values := make([]float64, 0, len(entries))
	for idx := range entries {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	for _, idx := range indices {
		values = append(values, entries[idx])
	}

	return NewSparseVector(size, indices, values)
}

// newSparseUnchecked adopts pre-sorted slices without copying or
// validation. Internal; callers yield ownership and guarantee ascending
// indices within [0, size).
func newSparseUnchecked(size int, indices []int, values []float64) *SparseVector {
	return &SparseVector{size: size, indices: indices, values: values}
}

// emptySparse returns a sparse vector with no active indices.
func emptySparse(size int) *SparseVector {
	return &SparseVector{size: size}
}

// Size returns the declared dimension.
func (v *SparseVector) Size() int { return v.size }

// NumActive returns the number of stored entries.
func (v *SparseVector) NumActive() int { return len(v.values) }

// slot resolves an index to its storage slot, or -1 when inactive.
func (v *SparseVector) slot(index int) int {
	pos := sort.SearchInts(v.indices, index)
	if pos < len(v.indices) && v.indices[pos] == index {
		return pos
	}

	return -1
}

// At returns the value at index i; inactive indices read as 0.
// Errors: ErrOutOfRange.
func (v *SparseVector) At(i int) (float64, error) {
	if err := ValidateVectorIndex(v.size, i); err != nil {
		return 0, err
	}
	if s := v.slot(i); s >= 0 {
		return v.values[s], nil
	}

	return 0, nil
}

// Set stores value at an active index.
// Errors: ErrOutOfRange; ErrInactiveIndex when i is not in the active set.
func (v *SparseVector) Set(i int, value float64) error {
	if err := ValidateVectorIndex(v.size, i); err != nil {
		return err
	}
	s := v.slot(i)
	if s < 0 {
		return laErrorf("SparseVector.Set", ErrInactiveIndex)
	}
	v.values[s] = value

	return nil
}

// AddAt adds delta at an active index.
// Errors: ErrOutOfRange; ErrInactiveIndex when i is not in the active set.
func (v *SparseVector) AddAt(i int, delta float64) error {
	if err := ValidateVectorIndex(v.size, i); err != nil {
		return err
	}
	s := v.slot(i)
	if s < 0 {
		return laErrorf("SparseVector.AddAt", ErrInactiveIndex)
	}
	v.values[s] += delta

	return nil
}

// Clone returns a deep copy.
func (v *SparseVector) Clone() Vector {
	indices := make([]int, len(v.indices))
	values := make([]float64, len(v.values))
	copy(indices, v.indices)
	copy(values, v.values)

	return &SparseVector{size: v.size, indices: indices, values: values}
}

// Sum returns the sum of the active values.
func (v *SparseVector) Sum() float64 {
	var sum float64
	var i int
	for i = 0; i < len(v.values); i++ {
		sum += v.values[i]
	}

	return sum
}

// TwoNorm returns the Euclidean norm.
func (v *SparseVector) TwoNorm() float64 {
	var sum float64
	var i int
	for i = 0; i < len(v.values); i++ {
		sum += v.values[i] * v.values[i]
	}

	return math.Sqrt(sum)
}

// OneNorm returns the sum of absolute values.
func (v *SparseVector) OneNorm() float64 {
	var sum float64
	var i int
	for i = 0; i < len(v.values); i++ {
		sum += math.Abs(v.values[i])
	}

	return sum
}

// MaxValue returns the largest active value. Implicit zeros do not
// participate; an all-negative active set reports a negative maximum.
func (v *SparseVector) MaxValue() float64 {
	value := math.Inf(-1)
	var i int
	for i = 0; i < len(v.values); i++ {
		if v.values[i] > value {
			value = v.values[i]
		}
	}

	return value
}

// MinValue returns the smallest active value.
func (v *SparseVector) MinValue() float64 {
	value := math.Inf(1)
	var i int
	for i = 0; i < len(v.values); i++ {
		if v.values[i] < value {
			value = v.values[i]
		}
	}

	return value
}

// IndexOfMax returns the vector index holding the largest active value.
func (v *SparseVector) IndexOfMax() int {
	slot := 0
	value := math.Inf(-1)
	var i int
	for i = 0; i < len(v.values); i++ {
		if v.values[i] > value {
			slot = i
			value = v.values[i]
		}
	}
	if len(v.indices) == 0 {
		return 0
	}

	return v.indices[slot]
}

// Variance returns the sum of squared deviations from the supplied mean,
// counting the implicit zeros.
func (v *SparseVector) Variance(mean float64) float64 {
	var variance float64
	var i int
	for i = 0; i < len(v.values); i++ {
		variance += (v.values[i] - mean) * (v.values[i] - mean)
	}
	variance += float64(v.size-len(v.values)) * mean * mean

	return variance
}

// Reduce folds the full declared dimension: active values and implicit
// zeros alike pass through transform before combination, so a non-zero
// transform(0) contributes once per inactive index.
func (v *SparseVector) Reduce(initial float64, transform func(float64) float64, reduce func(value, acc float64) float64) float64 {
	acc := initial
	transformedZero := transform(0)

	next := 0 // next untouched vector index
	var s int
	for s = 0; s < len(v.indices); s++ {
		for ; next < v.indices[s]; next++ {
			acc = reduce(transformedZero, acc)
		}
		acc = reduce(transform(v.values[s]), acc)
		next++
	}
	for ; next < v.size; next++ {
		acc = reduce(transformedZero, acc)
	}

	return acc
}

// ApplyInPlace replaces every active value x with f(x). Inactive indices
// are untouched; densify first to transform the whole dimension.
func (v *SparseVector) ApplyInPlace(f func(float64) float64) {
	var i int
	for i = 0; i < len(v.values); i++ {
		v.values[i] = f(v.values[i])
	}
}

// ScaleInPlace multiplies every active value by coefficient.
func (v *SparseVector) ScaleInPlace(coefficient float64) {
	var i int
	for i = 0; i < len(v.values); i++ {
		v.values[i] *= coefficient
	}
}

// Scale returns a new sparse vector with every active value multiplied by
// coefficient. The active set is preserved.
func (v *SparseVector) Scale(coefficient float64) *SparseVector {
	indices := make([]int, len(v.indices))
	values := make([]float64, len(v.values))
	copy(indices, v.indices)
	var i int
	for i = 0; i < len(v.values); i++ {
		values[i] = v.values[i] * coefficient
	}

	return &SparseVector{size: v.size, indices: indices, values: values}
}

// IntersectAddInPlace adds f(other[i]) at every index active in BOTH the
// receiver and other. Contributions at indices outside the receiver's
// active set are dropped: the receiver's sparsity pattern is authoritative
// and never extended by an in-place operation.
//
// Errors: ErrNilOperand, ErrDimensionMismatch, ErrUnsupportedOperand.
// Complexity: O(nnz_a + nnz_b) sparse other, O(nnz) dense other.
func (v *SparseVector) IntersectAddInPlace(other Vector, f func(float64) float64) error {
	if err := ValidateVectorNotNil(other); err != nil {
		return err
	}
	if err := ValidateSameSize(v, other); err != nil {
		return err
	}

	var i int
	switch o := other.(type) {
	case *SparseVector:
		var j int
		for i < len(v.indices) && j < len(o.indices) {
			switch {
			case v.indices[i] == o.indices[j]:
				v.values[i] += f(o.values[j])
				i++
				j++
			case v.indices[i] < o.indices[j]:
				i++
			default:
				j++
			}
		}
	case *DenseVector:
		for i = 0; i < len(v.indices); i++ {
			v.values[i] += f(o.data[v.indices[i]])
		}
	default:
		return laErrorf("IntersectAddInPlace", ErrUnsupportedOperand)
	}

	return nil
}

// HadamardInPlace multiplies the receiver's value by f(other[i]) at every
// index active in both vectors. As with IntersectAddInPlace, indices
// outside the receiver's active set never gain storage.
//
// Errors: ErrNilOperand, ErrDimensionMismatch, ErrUnsupportedOperand.
// Complexity: O(nnz_a + nnz_b) sparse other, O(nnz) dense other.
func (v *SparseVector) HadamardInPlace(other Vector, f func(float64) float64) error {
	if err := ValidateVectorNotNil(other); err != nil {
		return err
	}
	if err := ValidateSameSize(v, other); err != nil {
		return err
	}

	var i int
	switch o := other.(type) {
	case *SparseVector:
		var j int
		for i < len(v.indices) && j < len(o.indices) {
			switch {
			case v.indices[i] == o.indices[j]:
				v.values[i] *= f(o.values[j])
				i++
				j++
			case v.indices[i] < o.indices[j]:
				i++
			default:
				j++
			}
		}
	case *DenseVector:
		for i = 0; i < len(v.indices); i++ {
			v.values[i] *= f(o.data[v.indices[i]])
		}
	default:
		return laErrorf("HadamardInPlace", ErrUnsupportedOperand)
	}

	return nil
}

// Difference returns the indices active in the receiver but not in other.
// Complexity: O(nnz_a + nnz_b).
func (v *SparseVector) Difference(other *SparseVector) []int {
	out := make([]int, 0, len(v.indices))
	var i, j int
	for i < len(v.indices) {
		switch {
		case j >= len(other.indices) || v.indices[i] < other.indices[j]:
			out = append(out, v.indices[i])
			i++
		case v.indices[i] == other.indices[j]:
			i++
			j++
		default:
			j++
		}
	}

	return out
}

// Intersection returns the indices active in both vectors.
// Complexity: O(nnz_a + nnz_b).
func (v *SparseVector) Intersection(other *SparseVector) []int {
	out := make([]int, 0)
	var i, j int
	for i < len(v.indices) && j < len(other.indices) {
		switch {
		case v.indices[i] == other.indices[j]:
			out = append(out, v.indices[i])
			i++
			j++
		case v.indices[i] < other.indices[j]:
			i++
		default:
			j++
		}
	}

	return out
}

// Densify returns a dense copy including the implicit zeros.
func (v *SparseVector) Densify() *DenseVector {
	return wrapDense(v.ToSlice())
}

// ToSlice materializes the full declared dimension as a []float64.
func (v *SparseVector) ToSlice() []float64 {
	out := make([]float64, v.size)
	var i int
	for i = 0; i < len(v.indices); i++ {
		out[v.indices[i]] = v.values[i]
	}

	return out
}

// Equal reports entrywise equality of the active streams within
// EntryEpsilon. Equality is mathematical over the stored entries: two
// sparse vectors match iff they have identical index sets and close values.
func (v *SparseVector) Equal(other Vector) bool {
	if other == nil {
		return false
	}

	return cursorsEqual(v.Cursor(), other.Cursor())
}

// Cursor returns a single-pass cursor over the active entries in ascending
// index order.
func (v *SparseVector) Cursor() VectorCursor {
	return &sparseVectorCursor{vec: v, pos: -1}
}

// String renders as "SparseVector(size=n, [i:v, ...])".
func (v *SparseVector) String() string {
	var sb strings.Builder
	sb.WriteString("SparseVector(size=")
	sb.WriteString(strconv.Itoa(v.size))
	sb.WriteString(", [")
	var i int
	for i = 0; i < len(v.indices); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v.indices[i]))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(v.values[i], 'g', -1, 64))
	}
	sb.WriteString("])")

	return sb.String()
}

// sparseVectorCursor walks the parallel slices directly.
type sparseVectorCursor struct {
	vec *SparseVector
	pos int
}

// Next advances the cursor; it reports false once the active set is
// exhausted.
func (c *sparseVectorCursor) Next() bool {
	c.pos++

	return c.pos < len(c.vec.indices)
}

// Entry returns the current (index, value) pair.
func (c *sparseVectorCursor) Entry() VectorEntry {
	return VectorEntry{Index: c.vec.indices[c.pos], Value: c.vec.values[c.pos]}
}

// TransposeSparseRows pivots an array of sparse vectors from row-major to
// column-major orientation (or back). Entry (i, j) of the input appears as
// entry (j, i) of the output.
//
// Errors: ErrInvalidDimensions if rows is empty; ErrRagged if the rows
// differ in declared dimension.
// Complexity: O(total nnz + dims).
func TransposeSparseRows(rows []*SparseVector) ([]*SparseVector, error) {
	if len(rows) == 0 {
		return nil, laErrorf("TransposeSparseRows", ErrInvalidDimensions)
	}
	dim := rows[0].size
	indices := make([][]int, dim)
	values := make([][]float64, dim)

	var i, s int
	for i = 0; i < len(rows); i++ {
		if rows[i].size != dim {
			return nil, laErrorf("TransposeSparseRows", ErrRagged)
		}
		for s = 0; s < len(rows[i].indices); s++ {
			col := rows[i].indices[s]
			indices[col] = append(indices[col], i)
			values[col] = append(values[col], rows[i].values[s])
		}
	}

	out := make([]*SparseVector, dim)
	for i = 0; i < dim; i++ {
		out[i] = newSparseUnchecked(len(rows), indices[i], values[i])
	}

	return out, nil
}
