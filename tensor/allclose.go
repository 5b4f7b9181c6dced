// SPDX-License-Identifier: MIT

// Package tensor: approximate-equality comparisons and their numeric policy.
// This file defines:
//   - documented default tolerances (constants, single source of truth),
//   - CloseOption functional options (WithRelTol / WithAbsTol),
//   - AllClose and AllCloseScalar kernels with a *Dense fast path.
//
// The predicate for a single element pair is the conventional "allclose"
// test: |a - b| ≤ atol + rtol*|b|. NaN never compares close; equal
// infinities do. The asymmetry in b is deliberate and matches the
// convention of numeric array libraries.
package tensor

import (
	"math"
	"math/cmplx"
)

// Default tolerances — single source of truth for every allclose comparison
// in this library. They are fixed, documented constants, not configuration.
const (
	// DefaultRelTol is the default relative tolerance.
	DefaultRelTol = 1e-5

	// DefaultAbsTol is the default absolute tolerance.
	DefaultAbsTol = 1e-8
)

// closeOptions carries the resolved comparison tolerances.
type closeOptions struct {
	rtol float64 // relative tolerance, scaled by |b|
	atol float64 // absolute tolerance floor
}

// CloseOption adjusts the tolerances of a single comparison call.
type CloseOption func(*closeOptions)

// WithRelTol overrides the relative tolerance for one comparison.
func WithRelTol(rtol float64) CloseOption {
	return func(o *closeOptions) { o.rtol = rtol }
}

// WithAbsTol overrides the absolute tolerance for one comparison.
func WithAbsTol(atol float64) CloseOption {
	return func(o *closeOptions) { o.atol = atol }
}

// gatherCloseOptions applies opts over the defaults and validates the result.
// Tolerances must be finite and non-negative; anything else is rejected with
// ErrBadTolerance. Complexity: O(len(opts)).
func gatherCloseOptions(opts []CloseOption) (closeOptions, error) {
	o := closeOptions{rtol: DefaultRelTol, atol: DefaultAbsTol}
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.rtol) || math.IsInf(o.rtol, 0) || o.rtol < 0 {
		return o, ErrBadTolerance
	}
	if math.IsNaN(o.atol) || math.IsInf(o.atol, 0) || o.atol < 0 {
		return o, ErrBadTolerance
	}

	return o, nil
}

// close64 is the elementwise predicate for real values.
func close64(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false // NaN is never close to anything, itself included
	}
	if a == b {
		return true // covers equal infinities and exact matches
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false // one-sided infinity cannot be within any tolerance
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// close128 is the elementwise predicate for complex values.
func close128(a, b complex128, rtol, atol float64) bool {
	if cmplx.IsNaN(a) || cmplx.IsNaN(b) {
		return false
	}
	if a == b {
		return true
	}
	if cmplx.IsInf(a) || cmplx.IsInf(b) {
		return false
	}

	return cmplx.Abs(a-b) <= atol+rtol*cmplx.Abs(b)
}

// AllClose reports whether every element of a is approximately equal to the
// corresponding element of b.
//
// Contract: both tensors non-nil, same kind category (real with real,
// complex with complex — Int64 and the float kinds inter-compare), same
// shape. Tolerances default to DefaultRelTol/DefaultAbsTol and can be
// overridden per call.
//
// Fast-path: two real-kind *Dense values compare over their flat backing
// slices in a single loop. Fallback: fixed row-major multi-index order via
// At/AtComplex.
//
// Errors: ErrNilTensor, ErrKindMismatch, ErrShapeMismatch, ErrBadTolerance.
// Determinism: fixed traversal order; short-circuits on the first far pair.
// Complexity: Time O(size), Space O(rank) for the fallback index.
func AllClose(a, b Tensor, opts ...CloseOption) (bool, error) {
	// Guard nils first to avoid dereferencing inside introspection.
	if a == nil || b == nil {
		return false, ErrNilTensor
	}
	// Real and complex categories never inter-compare.
	if a.Kind().IsComplex() != b.Kind().IsComplex() {
		return false, ErrKindMismatch
	}
	// Shapes must match exactly — same rank, same extent per dimension.
	if !sameShape(a, b) {
		return false, ErrShapeMismatch
	}
	o, err := gatherCloseOptions(opts)
	if err != nil {
		return false, err
	}

	// Fast-path: both real *Dense → single flat loop over backing slices.
	if fa, okA := RawFloats(a); okA {
		if fb, okB := RawFloats(b); okB {
			for i := range fa { // deterministic 0..n-1
				if !close64(fa[i], fb[i], o.rtol, o.atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Fallback: walk every multi-index in row-major order.
	shape := a.Shape()
	ix := make([]int, len(shape))
	complexKind := a.Kind().IsComplex()
	for {
		if complexKind {
			av, _ := a.AtComplex(ix...) // bounds already guaranteed by sameShape
			bv, _ := b.AtComplex(ix...)
			if !close128(av, bv, o.rtol, o.atol) {
				return false, nil
			}
		} else {
			av, _ := a.At(ix...)
			bv, _ := b.At(ix...)
			if !close64(av, bv, o.rtol, o.atol) {
				return false, nil
			}
		}
		if !nextIndex(ix, shape) {
			break
		}
	}

	return true, nil
}

// AllCloseScalar reports whether every element of t is approximately equal
// to the scalar v. Only real-kind tensors are accepted; comparing a complex
// tensor against a real scalar fails with ErrKindMismatch.
//
// Errors: ErrNilTensor, ErrKindMismatch, ErrBadTolerance.
// Complexity: Time O(size), Space O(rank).
func AllCloseScalar(t Tensor, v float64, opts ...CloseOption) (bool, error) {
	if t == nil {
		return false, ErrNilTensor
	}
	if t.Kind().IsComplex() {
		return false, ErrKindMismatch
	}
	o, err := gatherCloseOptions(opts)
	if err != nil {
		return false, err
	}

	// Fast-path: real *Dense → flat loop.
	if fs, ok := RawFloats(t); ok {
		for i := range fs {
			if !close64(fs[i], v, o.rtol, o.atol) {
				return false, nil
			}
		}

		return true, nil
	}

	// Fallback: row-major multi-index walk.
	shape := t.Shape()
	ix := make([]int, len(shape))
	for {
		tv, _ := t.At(ix...)
		if !close64(tv, v, o.rtol, o.atol) {
			return false, nil
		}
		if !nextIndex(ix, shape) {
			break
		}
	}

	return true, nil
}

// sameShape reports whether a and b agree on rank and every extent.
func sameShape(a, b Tensor) bool {
	if a.Rank() != b.Rank() {
		return false
	}
	for d := 0; d < a.Rank(); d++ {
		if a.Dim(d) != b.Dim(d) {
			return false
		}
	}

	return true
}

// nextIndex advances ix one step in row-major order.
// Returns false once the final index has been consumed.
func nextIndex(ix, shape []int) bool {
	for d := len(ix) - 1; d >= 0; d-- {
		ix[d]++
		if ix[d] < shape[d] {
			return true
		}
		ix[d] = 0
	}

	return false
}
