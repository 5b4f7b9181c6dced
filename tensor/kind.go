// SPDX-License-Identifier: MIT

// Package tensor: runtime element-kind tag.
// The kind tag is how this library answers "what does the container hold?"
// without generics: predicates (argcheck.HasFloats/HasComplex) and kernels
// dispatch on it at runtime, which keeps every check a pure O(1) query.
package tensor

// Kind identifies the element type a tensor stores.
//
//   - Int64      — signed integers (held as integral float64 values).
//   - Float32    — single-precision reals (widened to float64 in storage).
//   - Float64    — double-precision reals.
//   - Complex64  — single-precision complex (widened to complex128 in storage).
//   - Complex128 — double-precision complex.
//
// Go has no extended-precision (long double) type; Float64 and Complex128
// are the widest kinds this tag can name.
type Kind int

const (
	// Int64 tags integer-valued tensors.
	Int64 Kind = iota

	// Float32 tags single-precision real tensors.
	Float32

	// Float64 tags double-precision real tensors.
	Float64

	// Complex64 tags single-precision complex tensors.
	Complex64

	// Complex128 tags double-precision complex tensors.
	Complex128
)

// IsFloat reports whether k names a real floating-point kind
// (Float32 or Float64). False for integer and complex kinds.
// Complexity: O(1).
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// IsComplex reports whether k names a complex floating-point kind
// (Complex64 or Complex128). False otherwise.
// Complexity: O(1).
func (k Kind) IsComplex() bool {
	return k == Complex64 || k == Complex128
}

// valid reports whether k names a known kind.
func (k Kind) valid() bool {
	return k >= Int64 && k <= Complex128
}

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}
