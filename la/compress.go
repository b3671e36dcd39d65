// SPDX-License-Identifier: MIT

// Package la: zstd-compressed persistence.
//
// Large dense payloads and index-heavy sparse payloads both compress
// well; the compressed variants wrap the plain binary frames so the two
// layers stay independently testable.
package la

import "github.com/klauspost/compress/zstd"

// stateless codecs, shared package-wide; EncodeAll/DecodeAll are safe for
// concurrent use.
var (
	zstdEncoder, _ = zstd.NewWriter(nil)
	zstdDecoder, _ = zstd.NewReader(nil)
)

// MarshalVectorCompressed encodes a vector frame and compresses it.
//
// Errors: as MarshalVector.
func MarshalVectorCompressed(v Vector) ([]byte, error) {
	frame, err := MarshalVector(v)
	if err != nil {
		return nil, err
	}

	return zstdEncoder.EncodeAll(frame, nil), nil
}

// UnmarshalVectorCompressed decompresses and decodes a vector frame.
//
// Errors: ErrBadPayload for an invalid zstd stream, then as
// UnmarshalVector.
func UnmarshalVectorCompressed(data []byte) (Vector, error) {
	frame, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, laErrorf("UnmarshalVectorCompressed", ErrBadPayload)
	}

	return UnmarshalVector(frame)
}

// MarshalMatrixCompressed encodes a matrix frame and compresses it.
//
// Errors: as MarshalMatrix.
func MarshalMatrixCompressed(m Matrix) ([]byte, error) {
	frame, err := MarshalMatrix(m)
	if err != nil {
		return nil, err
	}

	return zstdEncoder.EncodeAll(frame, nil), nil
}

// UnmarshalMatrixCompressed decompresses and decodes a matrix frame.
//
// Errors: ErrBadPayload for an invalid zstd stream, then as
// UnmarshalMatrix.
func UnmarshalMatrixCompressed(data []byte) (Matrix, error) {
	frame, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, laErrorf("UnmarshalMatrixCompressed", ErrBadPayload)
	}

	return UnmarshalMatrix(frame)
}
