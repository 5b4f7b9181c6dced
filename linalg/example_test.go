package linalg_test

import (
	"fmt"
	"math"

	"github.com/phaseline/phaseline/linalg"
	"github.com/phaseline/phaseline/tensor"
)

// ExampleZRot2Angle recovers the signed angle from the canonical +90°
// rotation around the Z-axis.
func ExampleZRot2Angle() {
	r, _ := tensor.NewMatrix(tensor.Float64, [][]float64{
		{0, -1, 0},
		{1, 0, 0},
		{0, 0, 1},
	})

	angle, _ := linalg.ZRot2Angle(r)
	fmt.Printf("angle=%.4f rad\n", angle)
	// Output:
	// angle=1.5708 rad
}

// ExampleRot builds a rotation about the diagonal (1,1,1) axis and verifies
// it is a proper rotation (determinant +1).
func ExampleRot() {
	axis, _ := tensor.NewVector(tensor.Float64, 1, 1, 1)

	r, _ := linalg.Rot(axis, math.Pi/2)
	det, _ := linalg.Det3(r)
	fmt.Printf("det=%.0f\n", det)
	// Output:
	// det=1
}

// ExampleRot_roundTrip composes Rot with ZRot2Angle on the Z-axis subfamily.
func ExampleRot_roundTrip() {
	zAxis, _ := tensor.NewVector(tensor.Float64, 0, 0, 1)

	r, _ := linalg.Rot(zAxis, -2.5)
	angle, _ := linalg.ZRot2Angle(r)
	fmt.Printf("angle=%.4f rad\n", angle)
	// Output:
	// angle=-2.5000 rad
}
