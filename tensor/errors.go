// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the tensor
// package. All routines MUST return these sentinels and tests MUST check them
// via errors.Is. No routine panics on user-triggered error conditions.

package tensor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tensor: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilTensor indicates that a nil Tensor (receiver or argument) was used.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrBadShape is returned when a requested shape is invalid
	// (zero rank, or any extent < 1, or a ragged row set).
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrBadKind signals an unknown element-kind tag.
	ErrBadKind = errors.New("tensor: unknown element kind")

	// ErrOutOfRange indicates that an index is outside valid bounds along
	// some dimension. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrBadIndex indicates that the number of indices supplied to At/Set
	// does not equal the tensor's rank.
	ErrBadIndex = errors.New("tensor: index arity does not match rank")

	// ErrKindMismatch signals that a real-valued accessor was used on a
	// complex tensor (or vice versa), or that two tensors of incompatible
	// kind categories were compared.
	ErrKindMismatch = errors.New("tensor: element kind mismatch")

	// ErrShapeMismatch indicates incompatible shapes between two tensors
	// handed to a comparison.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrNotIntegral is returned by Set on an Int64 tensor when the supplied
	// value carries a fractional part.
	ErrNotIntegral = errors.New("tensor: value is not integral")

	// ErrBadTolerance signals a NaN, infinite or negative tolerance handed
	// to AllClose/AllCloseScalar.
	ErrBadTolerance = errors.New("tensor: invalid tolerance")
)
