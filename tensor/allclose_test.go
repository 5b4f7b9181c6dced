// SPDX-License-Identifier: MIT
// Package tensor_test contains unit tests for AllClose / AllCloseScalar.
package tensor_test

import (
	"math"
	"testing"

	"github.com/phaseline/phaseline/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// opaque hides the concrete *Dense behind the interface so comparisons take
// the generic At/AtComplex fallback instead of the flat fast path.
type opaque struct{ tensor.Tensor }

// vec is a test helper constructing a Float64 vector.
func vec(t *testing.T, data ...float64) *tensor.Dense {
	t.Helper()
	v, err := tensor.NewVector(tensor.Float64, data...)
	require.NoError(t, err)

	return v
}

// TestAllClose_Defaults verifies the default-tolerance predicate.
func TestAllClose_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b *tensor.Dense
		want bool
	}{
		{"identical", vec(t, 1, 2, 3), vec(t, 1, 2, 3), true},
		{"within atol", vec(t, 0, 0, 1), vec(t, 5e-9, 0, 1), true},
		{"within rtol", vec(t, 1e6 + 1, 0, 0), vec(t, 1e6, 0, 0), true},
		{"beyond tolerance", vec(t, 0.5, 0, 0), vec(t, 0, 0, 0), false},
		{"NaN never close", vec(t, math.NaN()), vec(t, math.NaN()), false},
		{"equal infinities", vec(t, math.Inf(1)), vec(t, math.Inf(1)), true},
		{"opposite infinities", vec(t, math.Inf(1)), vec(t, math.Inf(-1)), false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := tensor.AllClose(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestAllClose_Errors covers the structural failure modes.
func TestAllClose_Errors(t *testing.T) {
	t.Parallel()

	f3 := vec(t, 1, 2, 3)
	c3, err := tensor.NewDense(tensor.Complex128, 3)
	require.NoError(t, err)

	_, err = tensor.AllClose(nil, f3)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)

	_, err = tensor.AllClose(f3, c3)
	assert.ErrorIs(t, err, tensor.ErrKindMismatch)

	// Same total size, different shape: (3,) vs (3, 1).
	m31, err := tensor.NewDense(tensor.Float64, 3, 1)
	require.NoError(t, err)
	_, err = tensor.AllClose(f3, m31)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = tensor.AllClose(f3, f3, tensor.WithRelTol(-1))
	assert.ErrorIs(t, err, tensor.ErrBadTolerance)
	_, err = tensor.AllClose(f3, f3, tensor.WithAbsTol(math.NaN()))
	assert.ErrorIs(t, err, tensor.ErrBadTolerance)
}

// TestAllClose_ToleranceOverride verifies per-call tolerance widening.
func TestAllClose_ToleranceOverride(t *testing.T) {
	t.Parallel()

	a := vec(t, 1.0)
	b := vec(t, 1.01)

	got, err := tensor.AllClose(a, b)
	require.NoError(t, err)
	assert.False(t, got, "a one-percent deviation exceeds the defaults")

	got, err = tensor.AllClose(a, b, tensor.WithRelTol(0.05))
	require.NoError(t, err)
	assert.True(t, got, "widened rtol must accept the same pair")
}

// TestAllClose_GenericFallback drives the interface path via a wrapper that
// hides the *Dense fast path, and checks complex comparison as well.
func TestAllClose_GenericFallback(t *testing.T) {
	t.Parallel()

	a := vec(t, 1, 2, 3)
	b := vec(t, 1, 2, 3.000001)

	got, err := tensor.AllClose(opaque{a}, opaque{b})
	require.NoError(t, err)
	assert.True(t, got, "fallback path must agree with the fast path")

	// Complex tensors always take the generic path.
	ca, err := tensor.NewDense(tensor.Complex128, 2)
	require.NoError(t, err)
	cb, err := tensor.NewDense(tensor.Complex128, 2)
	require.NoError(t, err)
	require.NoError(t, ca.SetComplex(1+2i, 0))
	require.NoError(t, cb.SetComplex(1+2i, 0))

	got, err = tensor.AllClose(ca, cb)
	require.NoError(t, err)
	assert.True(t, got)

	require.NoError(t, cb.SetComplex(1+2.5i, 0))
	got, err = tensor.AllClose(ca, cb)
	require.NoError(t, err)
	assert.False(t, got)
}

// TestAllCloseScalar covers the scalar comparison and its failure modes.
func TestAllCloseScalar(t *testing.T) {
	t.Parallel()

	zeroish := vec(t, 0, 1e-9, -1e-9)
	got, err := tensor.AllCloseScalar(zeroish, 0)
	require.NoError(t, err)
	assert.True(t, got, "sub-atol deviations from zero count as zero")

	unit := vec(t, 0, 0, 1)
	got, err = tensor.AllCloseScalar(unit, 0)
	require.NoError(t, err)
	assert.False(t, got)

	_, err = tensor.AllCloseScalar(nil, 0)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)

	c3, err := tensor.NewDense(tensor.Complex128, 3)
	require.NoError(t, err)
	_, err = tensor.AllCloseScalar(c3, 0)
	assert.ErrorIs(t, err, tensor.ErrKindMismatch)

	// The generic fallback agrees with the fast path.
	got, err = tensor.AllCloseScalar(opaque{zeroish}, 0)
	require.NoError(t, err)
	assert.True(t, got)
}
