package linalg_test

import (
	"math"
	"testing"

	"github.com/phaseline/phaseline/linalg"
	"github.com/phaseline/phaseline/tensor"
)

// BenchmarkRot measures the Rodrigues construction for a fixed axis/angle.
func BenchmarkRot(b *testing.B) {
	axis, err := tensor.NewVector(tensor.Float64, 1, 1, 1)
	if err != nil {
		b.Fatalf("NewVector failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = linalg.Rot(axis, math.Pi/3); err != nil {
			b.Fatalf("Rot failed: %v", err)
		}
	}
}

// BenchmarkZRot2Angle measures angle extraction including border validation.
func BenchmarkZRot2Angle(b *testing.B) {
	zAxis, err := tensor.NewVector(tensor.Float64, 0, 0, 1)
	if err != nil {
		b.Fatalf("NewVector failed: %v", err)
	}
	r, err := linalg.Rot(zAxis, 1.0)
	if err != nil {
		b.Fatalf("Rot failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = linalg.ZRot2Angle(r); err != nil {
			b.Fatalf("ZRot2Angle failed: %v", err)
		}
	}
}

// BenchmarkMul3x3 measures the 3×3 fast-path product used by the
// orthonormality checks.
func BenchmarkMul3x3(b *testing.B) {
	zAxis, err := tensor.NewVector(tensor.Float64, 0, 0, 1)
	if err != nil {
		b.Fatalf("NewVector failed: %v", err)
	}
	r, err := linalg.Rot(zAxis, 0.75)
	if err != nil {
		b.Fatalf("Rot failed: %v", err)
	}
	rt, err := linalg.Transpose(r)
	if err != nil {
		b.Fatalf("Transpose failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = linalg.Mul(r, rt); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}
