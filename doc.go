// Package phaseline bundles the small numeric utilities shared by a
// phased-array imaging pipeline: an explicit dense tensor container,
// argument-checking predicates, and fixed-size 3D rotation math.
//
// What lives here?
//
//	A compact, thread-safe-by-purity library that brings together:
//		• Tensor container: rank/shape/kind introspection, multi-index access
//		• Approximate equality: allclose with documented default tolerances
//		• Argument checks: HasRank, HasShape, HasFloats, HasComplex
//		• Rotation math: Z-axis angle extraction, Rodrigues axis-angle matrices
//		• Support kernels: rank-2 Mul, Transpose, MatVec, Det3
//
// Why this shape?
//
//   - Minimal API, clear naming — every routine is a pure function
//   - Strict fail-fast validation — sentinel errors matched via errors.Is
//   - Pure Go — no cgo, no hidden deps outside test tooling
//
// Everything is organized under three subpackages:
//
//	tensor/   — Dense n-dimensional container + AllClose comparisons
//	argcheck/ — boolean predicates guarding numeric routines
//	linalg/   — ZRot2Angle, Rot and small supporting kernels
//
// Quick sketch:
//
//	axis, _ := tensor.NewVector(tensor.Float64, 0, 0, 1)
//	R, _ := linalg.Rot(axis, math.Pi/2)
//	angle, _ := linalg.ZRot2Angle(R) // ≈ π/2
//
// Every operation runs to completion on the calling goroutine, acquires no
// locks and mutates no shared state, so concurrent callers need no
// coordination as long as they operate on independent tensors.
//
//	go get github.com/phaseline/phaseline
package phaseline
