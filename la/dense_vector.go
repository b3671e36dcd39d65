// SPDX-License-Identifier: MIT

// Package la: DenseVector — the contiguous rank-1 tensor.
//
// A DenseVector owns one []float64; every index is active. Functional
// operations (Scale, VecAdd, VecSub) allocate a new vector; the *InPlace
// family mutates the receiver. Ownership is single: constructors copy their
// input unless explicitly documented otherwise.
package la

import (
	"math"
	"strconv"
	"strings"
)

// DenseVector is a rank-1 tensor backed by contiguous storage.
// The zero value is not usable; use NewDenseVector or DenseVectorFrom.
type DenseVector struct {
	data []float64
}

// compile-time interface conformance
var _ Vector = (*DenseVector)(nil)

// NewDenseVector returns a zeroed dense vector of the given size.
//
// Errors: ErrInvalidDimensions if size <= 0.
// Complexity: O(n).
func NewDenseVector(size int) (*DenseVector, error) {
	if size <= 0 {
		return nil, laErrorf("NewDenseVector", ErrInvalidDimensions)
	}

	return &DenseVector{data: make([]float64, size)}, nil
}

// DenseVectorFrom returns a dense vector holding a defensive copy of values.
//
// Errors: ErrInvalidDimensions if values is empty.
// Complexity: O(n).
func DenseVectorFrom(values []float64) (*DenseVector, error) {
	if len(values) == 0 {
		return nil, laErrorf("DenseVectorFrom", ErrInvalidDimensions)
	}
	data := make([]float64, len(values))
	copy(data, values)

	return &DenseVector{data: data}, nil
}

// wrapDense adopts data without copying. Internal; the caller yields
// ownership of the slice.
func wrapDense(data []float64) *DenseVector {
	return &DenseVector{data: data}
}

// Size returns the declared dimension.
func (v *DenseVector) Size() int { return len(v.data) }

// NumActive returns the number of stored entries, which equals Size.
func (v *DenseVector) NumActive() int { return len(v.data) }

// At returns the value at index i.
// Errors: ErrOutOfRange.
func (v *DenseVector) At(i int) (float64, error) {
	if err := ValidateVectorIndex(len(v.data), i); err != nil {
		return 0, err
	}

	return v.data[i], nil
}

// Set stores value at index i.
// Errors: ErrOutOfRange.
func (v *DenseVector) Set(i int, value float64) error {
	if err := ValidateVectorIndex(len(v.data), i); err != nil {
		return err
	}
	v.data[i] = value

	return nil
}

// AddAt adds delta to the value at index i.
// Errors: ErrOutOfRange.
func (v *DenseVector) AddAt(i int, delta float64) error {
	if err := ValidateVectorIndex(len(v.data), i); err != nil {
		return err
	}
	v.data[i] += delta

	return nil
}

// Clone returns a deep copy.
func (v *DenseVector) Clone() Vector {
	data := make([]float64, len(v.data))
	copy(data, v.data)

	return &DenseVector{data: data}
}

// ToSlice returns a copy of the stored values.
func (v *DenseVector) ToSlice() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Sum returns the sum of all values.
func (v *DenseVector) Sum() float64 {
	var sum float64
	var i int
	for i = 0; i < len(v.data); i++ {
		sum += v.data[i]
	}

	return sum
}

// TwoNorm returns the Euclidean norm.
func (v *DenseVector) TwoNorm() float64 {
	var sum float64
	var i int
	for i = 0; i < len(v.data); i++ {
		sum += v.data[i] * v.data[i]
	}

	return math.Sqrt(sum)
}

// OneNorm returns the sum of absolute values.
func (v *DenseVector) OneNorm() float64 {
	var sum float64
	var i int
	for i = 0; i < len(v.data); i++ {
		sum += math.Abs(v.data[i])
	}

	return sum
}

// MaxValue returns the largest value.
func (v *DenseVector) MaxValue() float64 {
	value := math.Inf(-1)
	var i int
	for i = 0; i < len(v.data); i++ {
		if v.data[i] > value {
			value = v.data[i]
		}
	}

	return value
}

// MinValue returns the smallest value.
func (v *DenseVector) MinValue() float64 {
	value := math.Inf(1)
	var i int
	for i = 0; i < len(v.data); i++ {
		if v.data[i] < value {
			value = v.data[i]
		}
	}

	return value
}

// IndexOfMax returns the index of the largest value; ties resolve to the
// lowest index.
func (v *DenseVector) IndexOfMax() int {
	index := 0
	value := math.Inf(-1)
	var i int
	for i = 0; i < len(v.data); i++ {
		if v.data[i] > value {
			index = i
			value = v.data[i]
		}
	}

	return index
}

// Variance returns the sum of squared deviations from the supplied mean.
func (v *DenseVector) Variance(mean float64) float64 {
	var variance float64
	var i int
	for i = 0; i < len(v.data); i++ {
		variance += (v.data[i] - mean) * (v.data[i] - mean)
	}

	return variance
}

// Reduce folds the vector: every value is passed through transform, then
// combined into the accumulator by reduce as reduce(transformed, acc).
// The initial accumulator is initial.
func (v *DenseVector) Reduce(initial float64, transform func(float64) float64, reduce func(value, acc float64) float64) float64 {
	acc := initial
	var i int
	for i = 0; i < len(v.data); i++ {
		acc = reduce(transform(v.data[i]), acc)
	}

	return acc
}

// ApplyInPlace replaces every value x with f(x).
func (v *DenseVector) ApplyInPlace(f func(float64) float64) {
	var i int
	for i = 0; i < len(v.data); i++ {
		v.data[i] = f(v.data[i])
	}
}

// ScaleInPlace multiplies every value by coefficient.
func (v *DenseVector) ScaleInPlace(coefficient float64) {
	var i int
	for i = 0; i < len(v.data); i++ {
		v.data[i] *= coefficient
	}
}

// Scale returns a new vector with every value multiplied by coefficient.
func (v *DenseVector) Scale(coefficient float64) *DenseVector {
	out := make([]float64, len(v.data))
	var i int
	for i = 0; i < len(v.data); i++ {
		out[i] = v.data[i] * coefficient
	}

	return &DenseVector{data: out}
}

// L2NormalizeInPlace scales the vector to unit Euclidean length.
// A zero vector is left unchanged.
func (v *DenseVector) L2NormalizeInPlace() {
	norm := v.TwoNorm()
	if norm == 0 {
		return
	}
	v.ScaleInPlace(1 / norm)
}

// IntersectAddInPlace adds f(other[i]) to every index i active in other.
// For a dense receiver every index of a dense other contributes; a sparse
// other contributes only at its active indices.
//
// Errors: ErrNilOperand, ErrDimensionMismatch, ErrUnsupportedOperand.
// Complexity: O(n) dense other, O(nnz) sparse other.
func (v *DenseVector) IntersectAddInPlace(other Vector, f func(float64) float64) error {
	if err := ValidateVectorNotNil(other); err != nil {
		return err
	}
	if err := ValidateSameSize(v, other); err != nil {
		return err
	}

	var i int
	switch o := other.(type) {
	case *DenseVector:
		for i = 0; i < len(v.data); i++ {
			v.data[i] += f(o.data[i])
		}
	case *SparseVector:
		for i = 0; i < len(o.indices); i++ {
			v.data[o.indices[i]] += f(o.values[i])
		}
	default:
		return laErrorf("IntersectAddInPlace", ErrUnsupportedOperand)
	}

	return nil
}

// HadamardInPlace multiplies the value at every index i active in other by
// f(other[i]). Indices inactive in a sparse other are left untouched.
//
// Errors: ErrNilOperand, ErrDimensionMismatch, ErrUnsupportedOperand.
// Complexity: O(n) dense other, O(nnz) sparse other.
func (v *DenseVector) HadamardInPlace(other Vector, f func(float64) float64) error {
	if err := ValidateVectorNotNil(other); err != nil {
		return err
	}
	if err := ValidateSameSize(v, other); err != nil {
		return err
	}

	var i int
	switch o := other.(type) {
	case *DenseVector:
		for i = 0; i < len(v.data); i++ {
			v.data[i] *= f(o.data[i])
		}
	case *SparseVector:
		for i = 0; i < len(o.indices); i++ {
			v.data[o.indices[i]] *= f(o.values[i])
		}
	default:
		return laErrorf("HadamardInPlace", ErrUnsupportedOperand)
	}

	return nil
}

// Sparsify returns a sparse copy retaining only values whose magnitude
// exceeds tolerance. The declared dimension is preserved.
func (v *DenseVector) Sparsify(tolerance float64) *SparseVector {
	indices := make([]int, 0, len(v.data))
	values := make([]float64, 0, len(v.data))
	var i int
	for i = 0; i < len(v.data); i++ {
		if math.Abs(v.data[i]) > tolerance {
			indices = append(indices, i)
			values = append(values, v.data[i])
		}
	}

	return newSparseUnchecked(len(v.data), indices, values)
}

// Equal reports entrywise equality against any vector within EntryEpsilon.
// Both cursors must yield the same active entries in the same order; for a
// dense receiver the comparison therefore requires other to expose every
// index, so a sparse other only matches when fully populated.
func (v *DenseVector) Equal(other Vector) bool {
	if other == nil {
		return false
	}

	return cursorsEqual(v.Cursor(), other.Cursor())
}

// Cursor returns a single-pass cursor over every index in ascending order.
func (v *DenseVector) Cursor() VectorCursor {
	return &denseVectorCursor{data: v.data, pos: -1}
}

// String renders the vector as "[v0, v1, ...]".
func (v *DenseVector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	var i int
	for i = 0; i < len(v.data); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v.data[i], 'g', -1, 64))
	}
	sb.WriteByte(']')

	return sb.String()
}

// denseVectorCursor walks the backing slice directly.
type denseVectorCursor struct {
	data []float64
	pos  int
}

// Next advances the cursor; it reports false once the vector is exhausted.
func (c *denseVectorCursor) Next() bool {
	c.pos++

	return c.pos < len(c.data)
}

// Entry returns the current (index, value) pair.
func (c *denseVectorCursor) Entry() VectorEntry {
	return VectorEntry{Index: c.pos, Value: c.data[c.pos]}
}

// cursorsEqual drains two cursors in lockstep, comparing entries with the
// vector tolerance. Both streams must end together.
func cursorsEqual(a, b VectorCursor) bool {
	for {
		aOK := a.Next()
		bOK := b.Next()
		if aOK != bOK {
			return false
		}
		if !aOK {
			return true
		}
		if !a.Entry().Equal(b.Entry()) {
			return false
		}
	}
}
