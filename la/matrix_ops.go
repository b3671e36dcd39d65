// SPDX-License-Identifier: MIT

// Package la: matrix-vector and matrix-matrix kernels.
//
// MAIN DESCRIPTION:
//   LeftMultiply computes A·v, RightMultiply computes vᵀ·A, and MatMul
//   computes A·B under four transpose combinations. Results are always
//   dense: products of sparse operands densify in general, so a dense
//   accumulator is both the fast and the honest representation.
//
// Implementation:
//   Stage 1 — validate shapes for the requested transpose combination.
//   Stage 2 — dispatch: dense/dense takes flat i→k→j loops with a zero
//   skip on the left factor; a sparse left factor without transposition
//   drives the accumulation from its stored entries; remaining shapes fall
//   back to per-element accessor loops, mirroring how the row/column dot
//   helpers of the storage formats behave.
//
// Determinism: accumulation order is fixed by the loops; identical inputs
// yield bitwise-identical outputs.
package la

// operation tags used when wrapping sentinels.
const (
	opLeftMultiply  = "LeftMultiply"
	opRightMultiply = "RightMultiply"
	opMatMul        = "MatMul"
)

// LeftMultiply returns A·v as a new dense vector of length A.Rows().
//
// Inputs: any Matrix, any Vector with v.Size() == A.Cols().
// Errors: ErrNilOperand, ErrDimensionMismatch.
// Complexity: O(rows·cols) dense, O(total nnz) sparse row matrix.
func LeftMultiply(m Matrix, v Vector) (*DenseVector, error) {
	if err := ValidateMatrixNotNil(m); err != nil {
		return nil, laErrorf(opLeftMultiply, err)
	}
	if err := ValidateVectorNotNil(v); err != nil {
		return nil, laErrorf(opLeftMultiply, err)
	}
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return nil, laErrorf(opLeftMultiply, err)
	}

	out := make([]float64, m.Rows())
	var i, j int

	if dm, ok := m.(*DenseMatrix); ok {
		switch vv := v.(type) {
		case *DenseVector:
			for i = 0; i < dm.rows; i++ {
				row := dm.data[i*dm.cols : (i+1)*dm.cols]
				var sum float64
				for j = 0; j < dm.cols; j++ {
					sum += row[j] * vv.data[j]
				}
				out[i] = sum
			}

			return wrapDense(out), nil
		case *SparseVector:
			for i = 0; i < dm.rows; i++ {
				row := dm.data[i*dm.cols : (i+1)*dm.cols]
				var sum float64
				for j = 0; j < len(vv.indices); j++ {
					sum += row[vv.indices[j]] * vv.values[j]
				}
				out[i] = sum
			}

			return wrapDense(out), nil
		}
	}

	// entry-driven accumulation covers sparse-row and foreign matrices
	vDense := toDense(v)
	cur := m.Cursor()
	for cur.Next() {
		e := cur.Entry()
		out[e.Row] += e.Value * vDense[e.Col]
	}

	return wrapDense(out), nil
}

// RightMultiply returns vᵀ·A as a new dense vector of length A.Cols().
//
// Inputs: any Matrix, any Vector with v.Size() == A.Rows().
// Errors: ErrNilOperand, ErrDimensionMismatch.
// Complexity: O(rows·cols) dense, O(total nnz) sparse row matrix.
func RightMultiply(m Matrix, v Vector) (*DenseVector, error) {
	if err := ValidateMatrixNotNil(m); err != nil {
		return nil, laErrorf(opRightMultiply, err)
	}
	if err := ValidateVectorNotNil(v); err != nil {
		return nil, laErrorf(opRightMultiply, err)
	}
	if err := ValidateVecLen(v, m.Rows()); err != nil {
		return nil, laErrorf(opRightMultiply, err)
	}

	out := make([]float64, m.Cols())
	var i, j int

	if dm, ok := m.(*DenseMatrix); ok {
		if vv, ok2 := v.(*DenseVector); ok2 {
			for i = 0; i < dm.rows; i++ {
				row := dm.data[i*dm.cols : (i+1)*dm.cols]
				for j = 0; j < dm.cols; j++ {
					out[j] += vv.data[i] * row[j]
				}
			}

			return wrapDense(out), nil
		}
	}

	vDense := toDense(v)
	cur := m.Cursor()
	for cur.Next() {
		e := cur.Entry()
		out[e.Col] += vDense[e.Row] * e.Value
	}

	return wrapDense(out), nil
}

// MatMul returns A·B as a new dense matrix, with either factor implicitly
// transposed on request. The inner dimensions must agree after transposes
// are applied.
//
// Errors: ErrNilOperand, ErrDimensionMismatch.
// Complexity: O(n³) dense; a sparse untransposed left factor contributes
// O(nnz · cols(B)) instead.
func MatMul(a, b Matrix, transposeA, transposeB bool) (*DenseMatrix, error) {
	if err := ValidateMatrixNotNil(a); err != nil {
		return nil, laErrorf(opMatMul, err)
	}
	if err := ValidateMatrixNotNil(b); err != nil {
		return nil, laErrorf(opMatMul, err)
	}
	if err := ValidateMulCompatible(a, b, transposeA, transposeB); err != nil {
		return nil, laErrorf(opMatMul, err)
	}

	outRows := a.Rows()
	inner := a.Cols()
	if transposeA {
		outRows, inner = inner, outRows
	}
	outCols := b.Cols()
	if transposeB {
		outCols = b.Rows()
	}
	out := make([]float64, outRows*outCols)

	da, aDense := a.(*DenseMatrix)
	db, bDense := b.(*DenseMatrix)

	var i, j, k int
	switch {
	case aDense && bDense:
		denseMatMul(out, da, db, transposeA, transposeB, outRows, outCols, inner)
	case !transposeA && !aDense:
		// drive the accumulation from the sparse left factor's entries
		cur := a.Cursor()
		for cur.Next() {
			e := cur.Entry()
			if e.Value == 0 {
				continue
			}
			for j = 0; j < outCols; j++ {
				out[e.Row*outCols+j] += e.Value * matAt(b, e.Col, j, transposeB)
			}
		}
	default:
		// per-element accessor loops, as the storage-format dot helpers do
		for i = 0; i < outRows; i++ {
			for j = 0; j < outCols; j++ {
				var sum float64
				for k = 0; k < inner; k++ {
					sum += matAt(a, i, k, transposeA) * matAt(b, k, j, transposeB)
				}
				out[i*outCols+j] = sum
			}
		}
	}

	return &DenseMatrix{rows: outRows, cols: outCols, data: out}, nil
}

// Transpose returns a new dense matrix holding Aᵀ.
//
// Errors: ErrNilOperand.
func Transpose(m Matrix) (*DenseMatrix, error) {
	if err := ValidateMatrixNotNil(m); err != nil {
		return nil, laErrorf("Transpose", err)
	}
	out := make([]float64, m.Rows()*m.Cols())
	cur := m.Cursor()
	for cur.Next() {
		e := cur.Entry()
		out[e.Col*m.Rows()+e.Row] = e.Value
	}

	return &DenseMatrix{rows: m.Cols(), cols: m.Rows(), data: out}, nil
}

// matAt reads (i, j) with an optional implicit transpose; bounds were
// validated by the caller.
func matAt(m Matrix, i, j int, transposed bool) float64 {
	if transposed {
		i, j = j, i
	}
	value, _ := m.At(i, j)

	return value
}

// denseMatMul runs the flat-storage kernels for the four transpose
// combinations. The untransposed case uses the i→k→j ordering with a zero
// skip on the left factor; the others use plain dot loops.
func denseMatMul(out []float64, a, b *DenseMatrix, transposeA, transposeB bool, outRows, outCols, inner int) {
	var i, j, k int
	var sum, aik float64
	switch {
	case !transposeA && !transposeB:
		for i = 0; i < outRows; i++ {
			for k = 0; k < inner; k++ {
				aik = a.data[i*a.cols+k]
				if aik == 0 {
					continue // zero row entry contributes nothing
				}
				bRow := b.data[k*b.cols : (k+1)*b.cols]
				outRow := out[i*outCols : (i+1)*outCols]
				for j = 0; j < outCols; j++ {
					outRow[j] += aik * bRow[j]
				}
			}
		}
	case !transposeA && transposeB:
		for i = 0; i < outRows; i++ {
			aRow := a.data[i*a.cols : (i+1)*a.cols]
			for j = 0; j < outCols; j++ {
				bRow := b.data[j*b.cols : (j+1)*b.cols]
				sum = 0
				for k = 0; k < inner; k++ {
					sum += aRow[k] * bRow[k]
				}
				out[i*outCols+j] = sum
			}
		}
	case transposeA && !transposeB:
		for k = 0; k < inner; k++ {
			aRow := a.data[k*a.cols : (k+1)*a.cols]
			bRow := b.data[k*b.cols : (k+1)*b.cols]
			for i = 0; i < outRows; i++ {
				aik = aRow[i]
				if aik == 0 {
					continue
				}
				outRow := out[i*outCols : (i+1)*outCols]
				for j = 0; j < outCols; j++ {
					outRow[j] += aik * bRow[j]
				}
			}
		}
	default: // both transposed
		for i = 0; i < outRows; i++ {
			for j = 0; j < outCols; j++ {
				bRow := b.data[j*b.cols : (j+1)*b.cols]
				sum = 0
				for k = 0; k < inner; k++ {
					sum += a.data[k*a.cols+i] * bRow[k]
				}
				out[i*outCols+j] = sum
			}
		}
	}
}
