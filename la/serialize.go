// SPDX-License-Identifier: MIT

// Package la: versioned binary persistence for vectors and matrices.
//
// Frame layout (all fixed-width fields little-endian):
//
//	uint32  format version (currently 0)
//	uint32  class name length, followed by the class name bytes
//	int64   shape fields (size, or rows then cols)
//	payload IEEE-754 doubles; sparse payloads carry int64 index runs
//
// Sparse payloads store the active count before the index and value runs;
// a sparse row matrix repeats that per row. Decoding validates every
// field before allocating, so a truncated or corrupted frame surfaces as
// ErrBadPayload rather than a panic or a silently wrong result.
package la

import (
	"bytes"
	"encoding/binary"
	"math"
)

// class discriminators stored in the frame header.
const (
	classDenseVector  = "la.DenseVector"
	classSparseVector = "la.SparseVector"
	classDenseMatrix  = "la.DenseMatrix"
	classSparseRow    = "la.SparseRowMatrix"
)

// serializeVersion tags the frame layout; bump on incompatible change.
const serializeVersion uint32 = 0

// MarshalVector encodes a vector into a self-describing binary frame.
//
// Errors: ErrNilOperand, ErrUnsupportedOperand for a foreign Vector
// implementation.
func MarshalVector(v Vector) ([]byte, error) {
	if err := ValidateVectorNotNil(v); err != nil {
		return nil, laErrorf("MarshalVector", err)
	}

	var buf bytes.Buffer
	switch vv := v.(type) {
	case *DenseVector:
		writeHeader(&buf, classDenseVector)
		writeInt(&buf, int64(len(vv.data)))
		writeFloats(&buf, vv.data)
	case *SparseVector:
		writeHeader(&buf, classSparseVector)
		writeInt(&buf, int64(vv.size))
		writeSparsePayload(&buf, vv)
	default:
		return nil, laErrorf("MarshalVector", ErrUnsupportedOperand)
	}

	return buf.Bytes(), nil
}

// UnmarshalVector decodes a frame produced by MarshalVector.
//
// Errors: ErrUnknownVersion, ErrUnknownClass, ErrBadPayload,
// ErrInvalidDimensions.
func UnmarshalVector(data []byte) (Vector, error) {
	r := &frameReader{data: data}
	class, err := r.header()
	if err != nil {
		return nil, laErrorf("UnmarshalVector", err)
	}

	switch class {
	case classDenseVector:
		size, err := r.dimension()
		if err != nil {
			return nil, laErrorf("UnmarshalVector", err)
		}
		values, err := r.floats(size)
		if err != nil {
			return nil, laErrorf("UnmarshalVector", err)
		}
		if err = r.done(); err != nil {
			return nil, laErrorf("UnmarshalVector", err)
		}

		return wrapDense(values), nil
	case classSparseVector:
		size, err := r.dimension()
		if err != nil {
			return nil, laErrorf("UnmarshalVector", err)
		}
		sv, err := r.sparsePayload(size)
		if err != nil {
			return nil, laErrorf("UnmarshalVector", err)
		}
		if err = r.done(); err != nil {
			return nil, laErrorf("UnmarshalVector", err)
		}

		return sv, nil
	default:
		return nil, laErrorf("UnmarshalVector", ErrUnknownClass)
	}
}

// MarshalMatrix encodes a matrix into a self-describing binary frame.
//
// Errors: ErrNilOperand, ErrUnsupportedOperand for a foreign Matrix
// implementation.
func MarshalMatrix(m Matrix) ([]byte, error) {
	if err := ValidateMatrixNotNil(m); err != nil {
		return nil, laErrorf("MarshalMatrix", err)
	}

	var buf bytes.Buffer
	var i int
	switch mm := m.(type) {
	case *DenseMatrix:
		writeHeader(&buf, classDenseMatrix)
		writeInt(&buf, int64(mm.rows))
		writeInt(&buf, int64(mm.cols))
		writeFloats(&buf, mm.data)
	case *SparseRowMatrix:
		writeHeader(&buf, classSparseRow)
		writeInt(&buf, int64(mm.rows))
		writeInt(&buf, int64(mm.cols))
		for i = 0; i < mm.rows; i++ {
			writeSparsePayload(&buf, mm.rowVecs[i])
		}
	default:
		return nil, laErrorf("MarshalMatrix", ErrUnsupportedOperand)
	}

	return buf.Bytes(), nil
}

// UnmarshalMatrix decodes a frame produced by MarshalMatrix.
//
// Errors: ErrUnknownVersion, ErrUnknownClass, ErrBadPayload,
// ErrInvalidDimensions.
func UnmarshalMatrix(data []byte) (Matrix, error) {
	r := &frameReader{data: data}
	class, err := r.header()
	if err != nil {
		return nil, laErrorf("UnmarshalMatrix", err)
	}

	switch class {
	case classDenseMatrix:
		rows, err := r.dimension()
		if err != nil {
			return nil, laErrorf("UnmarshalMatrix", err)
		}
		cols, err := r.dimension()
		if err != nil {
			return nil, laErrorf("UnmarshalMatrix", err)
		}
		values, err := r.floats(rows * cols)
		if err != nil {
			return nil, laErrorf("UnmarshalMatrix", err)
		}
		if err = r.done(); err != nil {
			return nil, laErrorf("UnmarshalMatrix", err)
		}

		return newDenseMatrixUnchecked(rows, cols, values), nil
	case classSparseRow:
		rows, err := r.dimension()
		if err != nil {
			return nil, laErrorf("UnmarshalMatrix", err)
		}
		cols, err := r.dimension()
		if err != nil {
			return nil, laErrorf("UnmarshalMatrix", err)
		}
		vecs := make([]*SparseVector, rows)
		var i int
		for i = 0; i < rows; i++ {
			if vecs[i], err = r.sparsePayload(cols); err != nil {
				return nil, laErrorf("UnmarshalMatrix", err)
			}
		}
		if err = r.done(); err != nil {
			return nil, laErrorf("UnmarshalMatrix", err)
		}

		return &SparseRowMatrix{rowVecs: vecs, rows: rows, cols: cols}, nil
	default:
		return nil, laErrorf("UnmarshalMatrix", ErrUnknownClass)
	}
}

// writeHeader emits the version tag and the class discriminator.
func writeHeader(buf *bytes.Buffer, class string) {
	var scratch [4]byte
	binary.LittleEndian.PutUint32(scratch[:], serializeVersion)
	buf.Write(scratch[:])
	binary.LittleEndian.PutUint32(scratch[:], uint32(len(class)))
	buf.Write(scratch[:])
	buf.WriteString(class)
}

func writeInt(buf *bytes.Buffer, v int64) {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(v))
	buf.Write(scratch[:])
}

func writeFloats(buf *bytes.Buffer, values []float64) {
	var scratch [8]byte
	var i int
	for i = 0; i < len(values); i++ {
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(values[i]))
		buf.Write(scratch[:])
	}
}

// writeSparsePayload emits nnz, the index run, then the value run.
func writeSparsePayload(buf *bytes.Buffer, v *SparseVector) {
	writeInt(buf, int64(len(v.indices)))
	var i int
	for i = 0; i < len(v.indices); i++ {
		writeInt(buf, int64(v.indices[i]))
	}
	writeFloats(buf, v.values)
}

// frameReader is a checked forward-only reader over one frame.
type frameReader struct {
	data []byte
	pos  int
}

// header consumes the version tag and returns the class discriminator.
func (r *frameReader) header() (string, error) {
	version, err := r.uint32()
	if err != nil {
		return "", err
	}
	if version != serializeVersion {
		return "", ErrUnknownVersion
	}
	classLen, err := r.uint32()
	if err != nil {
		return "", err
	}
	if classLen > 64 || r.pos+int(classLen) > len(r.data) {
		return "", ErrBadPayload
	}
	class := string(r.data[r.pos : r.pos+int(classLen)])
	r.pos += int(classLen)

	return class, nil
}

// dimension reads one shape field and validates it is positive and sane.
func (r *frameReader) dimension() (int, error) {
	raw, err := r.int64()
	if err != nil {
		return 0, err
	}
	if raw <= 0 || raw > math.MaxInt32 {
		return 0, ErrInvalidDimensions
	}

	return int(raw), nil
}

// sparsePayload reads nnz + indices + values and rebuilds a sparse vector
// of the given logical size, revalidating the index run against it.
func (r *frameReader) sparsePayload(size int) (*SparseVector, error) {
	rawCount, err := r.int64()
	if err != nil {
		return nil, err
	}
	if rawCount < 0 || rawCount > int64(size) {
		return nil, ErrBadPayload
	}
	count := int(rawCount)

	indices := make([]int, count)
	var i int
	var prev int64 = -1
	for i = 0; i < count; i++ {
		raw, err := r.int64()
		if err != nil {
			return nil, err
		}
		// indices must be strictly increasing and in range
		if raw <= prev || raw >= int64(size) {
			return nil, ErrBadPayload
		}
		indices[i] = int(raw)
		prev = raw
	}
	values, err := r.floats(count)
	if err != nil {
		return nil, err
	}

	return newSparseUnchecked(size, indices, values), nil
}

func (r *frameReader) uint32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, ErrBadPayload
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4

	return v, nil
}

func (r *frameReader) int64() (int64, error) {
	if r.pos+8 > len(r.data) {
		return 0, ErrBadPayload
	}
	v := int64(binary.LittleEndian.Uint64(r.data[r.pos:]))
	r.pos += 8

	return v, nil
}

func (r *frameReader) floats(count int) ([]float64, error) {
	// compare against the un-multiplied count: 8*count can wrap negative
	// for huge declared dimensions and defeat an additive bounds check
	if count < 0 || count > (len(r.data)-r.pos)/8 {
		return nil, ErrBadPayload
	}
	out := make([]float64, count)
	var i int
	for i = 0; i < count; i++ {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(r.data[r.pos:]))
		r.pos += 8
	}

	return out, nil
}

// done rejects trailing garbage after a fully decoded frame.
func (r *frameReader) done() error {
	if r.pos != len(r.data) {
		return ErrBadPayload
	}

	return nil
}
