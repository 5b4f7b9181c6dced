// SPDX-License-Identifier: MIT
// Package linalg: rank-2 support kernels (Mul, Transpose, MatVec, Det3).
// These exist so pipeline code can compose rotations, apply them to
// direction vectors and verify proper-rotation properties without reaching
// for a general linear-algebra engine. All kernels validate fail-fast,
// never mutate their operands and return freshly allocated results.

package linalg

import (
	"github.com/phaseline/phaseline/argcheck"
	"github.com/phaseline/phaseline/tensor"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opDet3      = "Det3"
)

// validateRealRank2 runs the shared operand guard: real element kind (which
// also rejects nil) and rank 2. Returns nil or a wrapped ErrInvalidArgument.
func validateRealRank2(op string, m tensor.Tensor) error {
	if !argcheck.HasFloats(m) {
		return opErrorf(op, invalidArg(msgOperandNotReal))
	}
	if !argcheck.HasRank(m, 2) {
		return opErrorf(op, invalidArg(msgOperandNotRank2))
	}

	return nil
}

// Mul computes the matrix product C = A × B for rank-2 real tensors.
//
// Contract: both operands real-valued rank-2; A.Dim(1) == B.Dim(0).
// Fast-path: both *Dense → row-major triple loop over flat slices with
// zero-skip on A[i,k]. Fallback: fixed i→j→k order via At/Set.
// Determinism: fixed loop orders; inputs never mutated.
// Complexity: Time O(r*n*c), Space O(r*c) for the fresh Float64 result.
func Mul(a, b tensor.Tensor) (tensor.Tensor, error) {
	if err := validateRealRank2(opMul, a); err != nil {
		return nil, err
	}
	if err := validateRealRank2(opMul, b); err != nil {
		return nil, err
	}
	if a.Dim(1) != b.Dim(0) {
		return nil, opErrorf(opMul, invalidArg(msgInnerMismatch))
	}

	aRows, aCols, bCols := a.Dim(0), a.Dim(1), b.Dim(1)
	res, err := tensor.NewDense(tensor.Float64, aRows, bCols)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	// Fast-path: flat row-major accumulation over backing slices.
	if fa, okA := tensor.RawFloats(a); okA {
		if fb, okB := tensor.RawFloats(b); okB {
			fr, _ := tensor.RawFloats(res)
			var av float64
			for i := 0; i < aRows; i++ {
				for k := 0; k < aCols; k++ {
					av = fa[i*aCols+k]
					if av == 0 {
						continue // skip zero for performance
					}
					for j := 0; j < bCols; j++ {
						fr[i*bCols+j] += av * fb[k*bCols+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i→j→k). At/Set cannot fail
	// after the shape validation above.
	var sum, av, bv float64
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			sum = 0
			for k := 0; k < aCols; k++ {
				av, _ = a.At(i, k)
				bv, _ = b.At(k, j)
				sum += av * bv
			}
			_ = res.Set(sum, i, j)
		}
	}

	return res, nil
}

// Transpose returns a new rank-2 tensor with rows and columns swapped (mᵀ).
//
// Contract: operand real-valued rank-2; never mutated.
// Fast-path: *Dense copies via flat indexing; fallback uses At/Set.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m tensor.Tensor) (tensor.Tensor, error) {
	if err := validateRealRank2(opTranspose, m); err != nil {
		return nil, err
	}

	rows, cols := m.Dim(0), m.Dim(1)
	res, err := tensor.NewDense(tensor.Float64, cols, rows) // dims flipped
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	// Fast-path: data[i*cols+j] → res[j*rows+i].
	if fm, ok := tensor.RawFloats(m); ok {
		fr, _ := tensor.RawFloats(res)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				fr[j*rows+i] = fm[i*cols+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ = m.At(i, j)
			_ = res.Set(v, j, i)
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m real-valued rank-2; len(x) == m.Dim(1).
// Fast-path: *Dense performs one flat pass per row with zero-skip on x[j].
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m tensor.Tensor, x []float64) ([]float64, error) {
	if err := validateRealRank2(opMatVec, m); err != nil {
		return nil, err
	}
	if len(x) != m.Dim(1) {
		return nil, opErrorf(opMatVec, invalidArg(msgVecLenMismatch))
	}

	rows, cols := m.Dim(0), m.Dim(1)
	y := make([]float64, rows) // allocate exactly rows outputs

	// Fast-path: flat row-major dot products.
	if fm, ok := tensor.RawFloats(m); ok {
		var acc, xv float64
		for i := 0; i < rows; i++ {
			acc = 0
			base := i * cols
			for j := 0; j < cols; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += fm[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot products via At.
	var mv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			mv, _ = m.At(i, j)
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Det3 computes the determinant of a 3×3 real matrix in closed form
// (cofactor expansion along the first row). A proper rotation matrix has
// determinant +1 within floating-point error.
//
// Contract: operand real-valued with shape exactly (3, 3).
// Complexity: Time O(1), Space O(1).
func Det3(m tensor.Tensor) (float64, error) {
	if !argcheck.HasFloats(m) {
		return 0, opErrorf(opDet3, invalidArg(msgOperandNotReal))
	}
	if !argcheck.HasShape(m, 3, 3) {
		return 0, opErrorf(opDet3, invalidArg(msgNotShape33))
	}

	// Nine O(1) reads; At cannot fail after shape validation.
	m00, _ := m.At(0, 0)
	m01, _ := m.At(0, 1)
	m02, _ := m.At(0, 2)
	m10, _ := m.At(1, 0)
	m11, _ := m.At(1, 1)
	m12, _ := m.At(1, 2)
	m20, _ := m.At(2, 0)
	m21, _ := m.At(2, 1)
	m22, _ := m.At(2, 2)

	return m00*(m11*m22-m12*m21) -
		m01*(m10*m22-m12*m20) +
		m02*(m10*m21-m11*m20), nil
}
