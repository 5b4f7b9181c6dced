// SPDX-License-Identifier: MIT

// Package linalg: Z-axis angle extraction and Rodrigues axis-angle
// construction. Both routines follow the package's strict fail-fast policy:
// argcheck predicates first, numerics second, no partial results.

package linalg

import (
	"math"

	"github.com/phaseline/phaseline/argcheck"
	"github.com/phaseline/phaseline/tensor"
)

// trigUnit bounds the clamped cosine/sine domain handed to math.Acos.
const trigUnit = 1.0

// ZRot2Angle determines the signed rotation angle encoded by a 3×3 rotation
// matrix around the Z-axis.
//
// Implementation:
//   - Stage 1: validate — R real-valued, shape (3, 3), and its five border
//     cells R[0,2], R[1,2], R[2,2], R[2,0], R[2,1] allclose to 0, 0, 1, 0, 0
//     (default tolerances). The Z-axis property is verified, never assumed.
//   - Stage 2: clamp cos = R[0,0] and sin = R[1,0] into [-1, 1] to absorb
//     floating-point drift, then recover the signed angle from the quadrant.
//
// Behavior highlights:
//   - acos alone cannot distinguish quadrant II from III; the sign of the
//     sine term (R[1,0]) recovers it without a two-argument arctangent.
//   - sin ≥ 0 → quadrant I/II → angle = acos(cos) ∈ [0, π];
//     sin <  0 → quadrant III/IV → angle = -acos(cos) ∈ (-π, 0).
//
// Inputs:
//   - r: (3, 3) real-valued rotation matrix around the Z-axis.
//
// Returns:
//   - float64: signed rotation angle in radians, range (-π, π].
//
// Errors:
//   - ErrInvalidArgument, wrapped with one of:
//     "R must contain real values", "R must have shape (3, 3)",
//     "R is not a rotation matrix around the Z-axis".
//
// Determinism:
//   - Pure function of r; fixed validation order.
//
// Complexity:
//   - Time O(1), Space O(1) (fixed 3×3 input).
func ZRot2Angle(r tensor.Tensor) (float64, error) {
	// Element kind first: an integer or complex matrix is never a rotation.
	if !argcheck.HasFloats(r) {
		return 0, invalidArg(msgRNotReal)
	}
	// Exact (3, 3) shape.
	if !argcheck.HasShape(r, 3, 3) {
		return 0, invalidArg(msgRNotShape33)
	}

	// Border cells must match the Z-axis rotation pattern within tolerance.
	// At cannot fail here: the shape and kind were just validated.
	r02, _ := r.At(0, 2)
	r12, _ := r.At(1, 2)
	r22, _ := r.At(2, 2)
	r20, _ := r.At(2, 0)
	r21, _ := r.At(2, 1)
	border, err := tensor.NewVector(tensor.Float64, r02, r12, r22, r20, r21)
	if err != nil {
		return 0, err
	}
	validBorder, err := tensor.NewVector(tensor.Float64, 0, 0, 1, 0, 0)
	if err != nil {
		return 0, err
	}
	ok, err := tensor.AllClose(border, validBorder)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, invalidArg(msgRNotZRot)
	}

	// Clamp against drift pushing cos/sin fractionally outside [-1, 1],
	// which would take acos out of its domain.
	r00, _ := r.At(0, 0)
	r10, _ := r.At(1, 0)
	cosAngle := clamp(r00, -trigUnit, trigUnit)
	sinAngle := clamp(r10, -trigUnit, trigUnit)

	if sinAngle >= 0 { // quadrants I or II
		return math.Acos(cosAngle), nil
	}

	// Quadrants III or IV: mirror the acos branch below the axis.
	return -math.Acos(cosAngle), nil
}

// Rot builds the 3×3 rotation matrix for a signed angle around an arbitrary
// axis (right-hand rule), via the closed-form Rodrigues rotation formula.
//
// Implementation:
//   - Stage 1: validate — axis real-valued, shape (3,), not allclose to the
//     null vector (a null axis defines no rotation plane).
//   - Stage 2: normalize the axis to unit components (a, b, c), take
//     ca = cos(angle), sa = sin(angle), and assemble the nine entries.
//
// Behavior highlights:
//   - Each off-diagonal pair (i,j)/(j,i) differs by a ±sa term — the
//     antisymmetric cross-product contribution.
//   - The result is orthonormal with determinant +1 (a proper rotation)
//     for every non-null axis and every real angle, within float error.
//
// Inputs:
//   - axis:  (3,) real-valued rotation axis; need not be unit length.
//   - angle: signed rotation angle [rad].
//
// Returns:
//   - tensor.Tensor: freshly allocated Float64 (3, 3) rotation matrix.
//
// Errors:
//   - ErrInvalidArgument, wrapped with one of:
//     "axis must contain real values", "axis must have shape (3,)",
//     "Cannot rotate around null-vector".
//
// Determinism:
//   - Pure function of (axis, angle); fixed validation order.
//
// Complexity:
//   - Time O(1), Space O(1) beyond the returned 3×3 matrix.
func Rot(axis tensor.Tensor, angle float64) (tensor.Tensor, error) {
	// Element kind first, mirroring ZRot2Angle's validation order.
	if !argcheck.HasFloats(axis) {
		return nil, invalidArg(msgAxisNotReal)
	}
	// Exactly three components.
	if !argcheck.HasShape(axis, 3) {
		return nil, invalidArg(msgAxisNotShape)
	}
	// A null axis cannot be normalized; reject before dividing.
	null, err := tensor.AllCloseScalar(axis, 0)
	if err != nil {
		return nil, err
	}
	if null {
		return nil, invalidArg(msgAxisNull)
	}

	// Normalize to unit components. At cannot fail after shape validation.
	x, _ := axis.At(0)
	y, _ := axis.At(1)
	z, _ := axis.At(2)
	norm := math.Sqrt(x*x + y*y + z*z)
	a, b, c := x/norm, y/norm, z/norm

	ca := math.Cos(angle)
	sa := math.Sin(angle)

	// Rodrigues closed form: symmetric (1-ca) terms plus the ±sa
	// antisymmetric contribution on each off-diagonal pair.
	return tensor.NewMatrix(tensor.Float64, [][]float64{
		{a*a + (b*b+c*c)*ca, a*b*(1-ca) - c*sa, a*c*(1-ca) + b*sa},
		{a*b*(1-ca) + c*sa, b*b + (a*a+c*c)*ca, b*c*(1-ca) - a*sa},
		{a*c*(1-ca) - b*sa, b*c*(1-ca) + a*sa, c*c + (a*a+b*b)*ca},
	})
}

// clamp restricts v to the closed interval [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
