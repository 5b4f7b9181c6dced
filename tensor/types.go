// SPDX-License-Identifier: MIT

// Package tensor: the public container contract.
// This file intentionally contains ONLY the Tensor interface; the concrete
// Dense implementation, errors and comparison options live in dedicated
// files (dense.go, errors.go, allclose.go) per the package conventions.
package tensor

// Tensor represents an n-dimensional immutable-shape container of numeric
// values with a runtime element-kind tag. It is the "numeric container"
// collaborator every validation predicate and kernel in this library
// operates on.
//
// Complexity notes: all methods are expected O(1) except Shape and Clone.
type Tensor interface {
	// Rank returns the number of dimensions.
	// Complexity: O(1).
	Rank() int

	// Shape returns a defensive copy of the per-dimension extents.
	// Complexity: O(rank).
	Shape() []int

	// Dim returns the extent of dimension i, or 0 when i is outside
	// [0, Rank()). Complexity: O(1).
	Dim(i int) int

	// Kind returns the runtime element-kind tag.
	// Complexity: O(1).
	Kind() Kind

	// At retrieves the real-valued element at the given multi-index.
	// Returns ErrBadIndex on wrong arity, ErrOutOfRange on bad indices and
	// ErrKindMismatch when the tensor holds complex values.
	// Complexity: O(1).
	At(ix ...int) (float64, error)

	// AtComplex retrieves the complex-valued element at the given
	// multi-index. Returns ErrKindMismatch when the tensor holds real
	// values. Complexity: O(1).
	AtComplex(ix ...int) (complex128, error)

	// Set assigns a real value at the given multi-index. On Int64 tensors
	// the value must be integral (ErrNotIntegral otherwise).
	// Complexity: O(1).
	Set(v float64, ix ...int) error

	// SetComplex assigns a complex value at the given multi-index.
	// Returns ErrKindMismatch when the tensor holds real values.
	// Complexity: O(1).
	SetComplex(v complex128, ix ...int) error

	// Clone returns a deep copy of the tensor.
	// The returned Tensor is independent of the original.
	// Complexity: O(product of extents).
	Clone() Tensor
}
