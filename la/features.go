// SPDX-License-Identifier: MIT

// Package la: named-feature ingestion.
//
// A FeatureMap assigns stable integer ids to feature names; the
// conversion helpers then turn loosely ordered (name, value) observations
// into vectors of a fixed dimension. Names absent from the map are
// dropped, duplicate names accumulate, and an optional bias slot is
// appended as a constant 1 at the highest index.
package la

import "math"

// Feature is a single named observation.
type Feature struct {
	Name  string
	Value float64
}

// FeatureMap maps feature names to dense ids in observation order.
// The zero value is not usable; use NewFeatureMap.
type FeatureMap struct {
	ids   map[string]int
	names []string
}

// NewFeatureMap builds a map over the given names, assigning ids in
// argument order. Duplicate names keep their first id.
func NewFeatureMap(names ...string) *FeatureMap {
	fm := &FeatureMap{ids: make(map[string]int, len(names))}
	var i int
	for i = 0; i < len(names); i++ {
		fm.Observe(names[i])
	}

	return fm
}

// Observe returns the id for name, assigning the next free id on first
// sight.
func (fm *FeatureMap) Observe(name string) int {
	if id, ok := fm.ids[name]; ok {
		return id
	}
	id := len(fm.names)
	fm.ids[name] = id
	fm.names = append(fm.names, name)

	return id
}

// ID returns the id for name and whether the name is known.
func (fm *FeatureMap) ID(name string) (int, bool) {
	id, ok := fm.ids[name]

	return id, ok
}

// Name returns the name owning id.
//
// Errors: ErrOutOfRange.
func (fm *FeatureMap) Name(id int) (string, error) {
	if id < 0 || id >= len(fm.names) {
		return "", laErrorf("FeatureMap.Name", ErrOutOfRange)
	}

	return fm.names[id], nil
}

// Size returns the number of known feature names.
func (fm *FeatureMap) Size() int { return len(fm.names) }

// DenseFromFeatures converts observations into a dense vector of
// dimension fm.Size(), plus one bias slot holding 1 when addBias is set.
//
// Behavior: unknown names are skipped, duplicate names accumulate, NaN
// values are rejected.
// Errors: ErrNilOperand, ErrInvalidDimensions for an empty map,
// ErrNaNValue.
func DenseFromFeatures(fm *FeatureMap, features []Feature, addBias bool) (*DenseVector, error) {
	if fm == nil {
		return nil, laErrorf("DenseFromFeatures", ErrNilOperand)
	}
	if fm.Size() == 0 {
		return nil, laErrorf("DenseFromFeatures", ErrInvalidDimensions)
	}

	dim := fm.Size()
	if addBias {
		dim++
	}
	data := make([]float64, dim)
	var i int
	for i = 0; i < len(features); i++ {
		if math.IsNaN(features[i].Value) {
			return nil, laErrorf("DenseFromFeatures", ErrNaNValue)
		}
		if id, ok := fm.ids[features[i].Name]; ok {
			data[id] += features[i].Value
		}
	}
	if addBias {
		data[dim-1] = 1
	}

	return wrapDense(data), nil
}

// SparseFromFeatures converts observations into a sparse vector of
// dimension fm.Size(), plus one bias slot holding 1 when addBias is set.
// Only the observed (known) names become active entries; an accumulated
// exact zero stays active.
//
// Errors: ErrNilOperand, ErrInvalidDimensions for an empty map,
// ErrNaNValue.
func SparseFromFeatures(fm *FeatureMap, features []Feature, addBias bool) (*SparseVector, error) {
	if fm == nil {
		return nil, laErrorf("SparseFromFeatures", ErrNilOperand)
	}
	if fm.Size() == 0 {
		return nil, laErrorf("SparseFromFeatures", ErrInvalidDimensions)
	}

	dim := fm.Size()
	if addBias {
		dim++
	}
	entries := make(map[int]float64, len(features))
	var i int
	for i = 0; i < len(features); i++ {
		if math.IsNaN(features[i].Value) {
			return nil, laErrorf("SparseFromFeatures", ErrNaNValue)
		}
		if id, ok := fm.ids[features[i].Name]; ok {
			entries[id] += features[i].Value
		}
	}
	if addBias {
		entries[dim-1] = 1
	}

	return SparseVectorFromMap(dim, entries)
}
