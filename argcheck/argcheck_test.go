// SPDX-License-Identifier: MIT
// Package argcheck_test contains unit tests for the argument predicates.
package argcheck_test

import (
	"testing"

	"github.com/phaseline/phaseline/argcheck"
	"github.com/phaseline/phaseline/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mk is a test helper constructing a zero-filled Dense.
func mk(t *testing.T, k tensor.Kind, shape ...int) *tensor.Dense {
	t.Helper()
	d, err := tensor.NewDense(k, shape...)
	require.NoError(t, err)

	return d
}

// TestHasRank covers rank matches, mismatches and the nil container.
func TestHasRank(t *testing.T) {
	t.Parallel()

	m33 := mk(t, tensor.Float64, 3, 3)

	tests := []struct {
		name string
		x    tensor.Tensor
		rank int
		want bool
	}{
		{"matrix is not rank 1", m33, 1, false},
		{"matrix is rank 2", m33, 2, true},
		{"vector is rank 1", mk(t, tensor.Float64, 3), 1, true},
		{"rank-3 container", mk(t, tensor.Float64, 2, 2, 2), 3, true},
		{"nil container", nil, 0, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, argcheck.HasRank(tc.x, tc.rank))
		})
	}
}

// TestHasShape requires both dimensionality and every extent to match.
func TestHasShape(t *testing.T) {
	t.Parallel()

	m33 := mk(t, tensor.Float64, 3, 3)

	tests := []struct {
		name  string
		x     tensor.Tensor
		shape []int
		want  bool
	}{
		{"exact match", m33, []int{3, 3}, true},
		{"rank mismatch", m33, []int{3}, false},
		{"extent mismatch", m33, []int{3, 4}, false},
		{"same size different shape", mk(t, tensor.Float64, 9), []int{3, 3}, false},
		{"same size transposed shape", mk(t, tensor.Float64, 1, 9), []int{9, 1}, false},
		{"vector shape", mk(t, tensor.Float64, 3), []int{3}, true},
		{"nil container", nil, []int{3}, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, argcheck.HasShape(tc.x, tc.shape...))
		})
	}
}

// TestHasFloatsHasComplex walks every kind and checks both predicates,
// including their mutual exclusivity.
func TestHasFloatsHasComplex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind        tensor.Kind
		wantFloats  bool
		wantComplex bool
	}{
		{tensor.Int64, false, false},
		{tensor.Float32, true, false},
		{tensor.Float64, true, false},
		{tensor.Complex64, false, true},
		{tensor.Complex128, false, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.kind.String(), func(t *testing.T) {
			x := mk(t, tc.kind, 3, 3)
			assert.Equal(t, tc.wantFloats, argcheck.HasFloats(x))
			assert.Equal(t, tc.wantComplex, argcheck.HasComplex(x))
			assert.False(t, argcheck.HasFloats(x) && argcheck.HasComplex(x),
				"predicates must be mutually exclusive for every kind")
		})
	}

	assert.False(t, argcheck.HasFloats(nil))
	assert.False(t, argcheck.HasComplex(nil))
}
