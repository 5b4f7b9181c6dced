// Package linalg offers the fixed-size rotation math and supporting rank-2
// kernels used by a phased-array imaging pipeline.
//
// The linalg package provides:
//
//   - ZRot2Angle — extract the signed rotation angle from a 3×3 matrix known
//     to rotate only about the Z axis (verified at runtime, not assumed).
//   - Rot — build a 3×3 rotation matrix from an arbitrary non-null axis and
//     a signed angle via Rodrigues' rotation formula.
//   - Mul, Transpose, MatVec, Det3 — the small kernel set needed to compose
//     rotations, apply them to direction vectors and verify that a result is
//     a proper rotation.
//
// Every routine validates its arguments first (through argcheck predicates)
// and fails fast with an error wrapping ErrInvalidArgument before any
// numeric work begins; once preconditions pass, the arithmetic itself
// cannot fail. All functions are pure: no shared state, no goroutines, no
// locks, O(1) runtime on the fixed-size inputs.
package linalg
