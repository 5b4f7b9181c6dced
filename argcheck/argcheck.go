// SPDX-License-Identifier: MIT
// Package argcheck: a single, canonical source of truth for the argument
// predicates shared by numeric routines. Keeping them here eliminates
// inconsistent guard logic across kernels: a routine asks one question and
// decides its own failure mode.
//
// Determinism & Performance:
//   - All predicates are pure, deterministic and allocate nothing.
//   - Every check is O(rank) or better; none touches element data.

package argcheck

import "github.com/phaseline/phaseline/tensor"

// HasRank reports whether x has exactly the given number of dimensions.
// A nil tensor has no rank and always answers false.
//
//	x := tensor 3×3 → HasRank(x, 1) == false, HasRank(x, 2) == true
//
// Complexity: O(1).
func HasRank(x tensor.Tensor, rank int) bool {
	if x == nil {
		return false
	}

	return x.Rank() == rank
}

// HasShape reports whether x has exactly the given shape: the rank must
// equal len(shape) AND every dimension's extent must match the
// corresponding entry. Containers of equal total size but different shape
// answer false.
//
//	x := tensor 3×3 → HasShape(x, 3, 3) == true, HasShape(x, 3) == false
//
// Complexity: O(rank).
func HasShape(x tensor.Tensor, shape ...int) bool {
	if x == nil || x.Rank() != len(shape) {
		return false
	}
	for d, want := range shape {
		if x.Dim(d) != want {
			return false
		}
	}

	return true
}

// HasFloats reports whether x holds real floating-point elements
// (tensor.Float32 or tensor.Float64). False for integer and complex kinds,
// and for nil. Complexity: O(1).
func HasFloats(x tensor.Tensor) bool {
	if x == nil {
		return false
	}

	return x.Kind().IsFloat()
}

// HasComplex reports whether x holds complex floating-point elements
// (tensor.Complex64 or tensor.Complex128). False otherwise, and for nil.
// HasFloats and HasComplex are mutually exclusive for every kind.
// Complexity: O(1).
func HasComplex(x tensor.Tensor) bool {
	if x == nil {
		return false
	}

	return x.Kind().IsComplex()
}
