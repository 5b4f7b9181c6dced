// Package tensor provides core container primitives for array-based numerics.
// Dense is a concrete, row-major implementation of the Tensor interface,
// storing elements in a flat slice for performance and cache friendliness.
package tensor

import (
	"fmt"
	"math"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, ix []int, err error) error {
	return fmt.Errorf("Dense.%s(%v): %w", method, ix, err)
}

// Dense is a row-major n-dimensional tensor with a runtime kind tag.
// Real kinds (Int64, Float32, Float64) back onto fdata; complex kinds
// (Complex64, Complex128) back onto cdata. Exactly one backing slice is
// non-nil for any valid Dense.
type Dense struct {
	kind    Kind         // runtime element-kind tag
	shape   []int        // per-dimension extents, rank == len(shape) ≥ 1
	strides []int        // row-major strides, strides[rank-1] == 1
	fdata   []float64    // backing storage for real kinds
	cdata   []complex128 // backing storage for complex kinds
}

// NewDense creates a zero-filled Dense of the given kind and shape.
// Stage 1 (Validate): kind must be known; rank ≥ 1; every extent ≥ 1.
// Stage 2 (Prepare): compute row-major strides and allocate flat storage.
// Stage 3 (Finalize): return the container or a sentinel error.
// Complexity: O(product of extents) time and memory.
func NewDense(k Kind, shape ...int) (*Dense, error) {
	// Validate kind tag
	if !k.valid() {
		return nil, ErrBadKind
	}
	// Validate rank and extents
	if len(shape) == 0 {
		return nil, ErrBadShape
	}
	size := 1
	for _, n := range shape {
		if n < 1 {
			return nil, ErrBadShape
		}
		size *= n
	}

	// Copy the shape so callers cannot mutate the container afterwards
	dims := make([]int, len(shape))
	copy(dims, shape)

	// Row-major strides: last dimension is contiguous
	strides := make([]int, len(dims))
	stride := 1
	for d := len(dims) - 1; d >= 0; d-- {
		strides[d] = stride
		stride *= dims[d]
	}

	// Allocate the backing slice matching the kind category
	d := &Dense{kind: k, shape: dims, strides: strides}
	if k.IsComplex() {
		d.cdata = make([]complex128, size)
	} else {
		d.fdata = make([]float64, size)
	}

	return d, nil
}

// NewVector creates a rank-1 Dense of a real kind from the given values.
// Complex kinds are rejected with ErrKindMismatch; build those via NewDense
// and SetComplex. On Int64 every value must be integral.
// Complexity: O(len(data)).
func NewVector(k Kind, data ...float64) (*Dense, error) {
	if k.IsComplex() {
		return nil, ErrKindMismatch
	}
	v, err := NewDense(k, len(data))
	if err != nil {
		return nil, err
	}
	for i, x := range data {
		// Set enforces the Int64 integrality policy
		if err = v.Set(x, i); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// NewMatrix creates a rank-2 Dense of a real kind from row slices.
// Rows must be non-empty and rectangular; ragged input fails with
// ErrBadShape. Complexity: O(rows*cols).
func NewMatrix(k Kind, rows [][]float64) (*Dense, error) {
	if k.IsComplex() {
		return nil, ErrKindMismatch
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrBadShape // ragged rows are not a shape
		}
	}
	m, err := NewDense(k, len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, x := range row {
			if err = m.Set(x, i, j); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Eye creates the n×n Float64 identity matrix.
// Complexity: O(n²).
func Eye(n int) (*Dense, error) {
	m, err := NewDense(Float64, n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.fdata[i*n+i] = 1
	}

	return m, nil
}

// Rank returns the number of dimensions.
// Complexity: O(1).
func (d *Dense) Rank() int {
	return len(d.shape)
}

// Shape returns a defensive copy of the per-dimension extents.
// Complexity: O(rank).
func (d *Dense) Shape() []int {
	s := make([]int, len(d.shape))
	copy(s, d.shape)

	return s
}

// Dim returns the extent of dimension i, or 0 when i is out of range.
// Complexity: O(1).
func (d *Dense) Dim(i int) int {
	if i < 0 || i >= len(d.shape) {
		return 0
	}

	return d.shape[i]
}

// Kind returns the runtime element-kind tag.
// Complexity: O(1).
func (d *Dense) Kind() Kind {
	return d.kind
}

// Size returns the total number of elements.
// Complexity: O(1).
func (d *Dense) Size() int {
	if d.kind.IsComplex() {
		return len(d.cdata)
	}

	return len(d.fdata)
}

// offsetOf computes the flat index for a multi-index, or a sentinel error.
// Stage 1 (Validate): arity must equal rank; 0 ≤ ix[d] < shape[d] for all d.
// Stage 2 (Execute): accumulate the stride-weighted offset.
// Complexity: O(rank).
func (d *Dense) offsetOf(method string, ix []int) (int, error) {
	// Validate arity against rank
	if len(ix) != len(d.shape) {
		return 0, denseErrorf(method, ix, ErrBadIndex)
	}
	// Validate bounds and accumulate the offset in one pass
	off := 0
	for dim, i := range ix {
		if i < 0 || i >= d.shape[dim] {
			return 0, denseErrorf(method, ix, ErrOutOfRange)
		}
		off += i * d.strides[dim]
	}

	return off, nil
}

// At retrieves the real-valued element at the given multi-index.
// Stage 1 (Validate): kind must be a real category; bounds via offsetOf.
// Stage 2 (Execute): read from the flat slice.
// Complexity: O(rank).
func (d *Dense) At(ix ...int) (float64, error) {
	// Real accessor on a complex container is a contract violation
	if d.kind.IsComplex() {
		return 0, denseErrorf("At", ix, ErrKindMismatch)
	}
	off, err := d.offsetOf("At", ix)
	if err != nil {
		return 0, err
	}

	return d.fdata[off], nil
}

// AtComplex retrieves the complex-valued element at the given multi-index.
// Mirror of At for the complex kind category.
// Complexity: O(rank).
func (d *Dense) AtComplex(ix ...int) (complex128, error) {
	if !d.kind.IsComplex() {
		return 0, denseErrorf("AtComplex", ix, ErrKindMismatch)
	}
	off, err := d.offsetOf("AtComplex", ix)
	if err != nil {
		return 0, err
	}

	return d.cdata[off], nil
}

// Set assigns a real value at the given multi-index.
// Stage 1 (Validate): real kind category; bounds; Int64 integrality.
// Stage 2 (Execute): write into the flat slice.
// Complexity: O(rank).
func (d *Dense) Set(v float64, ix ...int) error {
	if d.kind.IsComplex() {
		return denseErrorf("Set", ix, ErrKindMismatch)
	}
	off, err := d.offsetOf("Set", ix)
	if err != nil {
		return err
	}
	// Integer tensors only hold exactly representable integral values
	if d.kind == Int64 && (math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v) {
		return denseErrorf("Set", ix, ErrNotIntegral)
	}
	d.fdata[off] = v

	return nil
}

// SetComplex assigns a complex value at the given multi-index.
// Mirror of Set for the complex kind category.
// Complexity: O(rank).
func (d *Dense) SetComplex(v complex128, ix ...int) error {
	if !d.kind.IsComplex() {
		return denseErrorf("SetComplex", ix, ErrKindMismatch)
	}
	off, err := d.offsetOf("SetComplex", ix)
	if err != nil {
		return err
	}
	d.cdata[off] = v

	return nil
}

// Clone returns a deep copy of the Dense tensor.
// Complexity: O(size) time and memory.
func (d *Dense) Clone() Tensor {
	out := &Dense{kind: d.kind}
	out.shape = make([]int, len(d.shape))
	copy(out.shape, d.shape)
	out.strides = make([]int, len(d.strides))
	copy(out.strides, d.strides)
	if d.kind.IsComplex() {
		out.cdata = make([]complex128, len(d.cdata))
		copy(out.cdata, d.cdata)
	} else {
		out.fdata = make([]float64, len(d.fdata))
		copy(out.fdata, d.fdata)
	}

	return out
}

// RawFloats exposes the row-major backing slice of a real-kind *Dense.
// Returns (nil, false) for non-Dense tensors and for complex kinds.
// The slice aliases live storage — kernels use it as a fast path and must
// not resize it. Complexity: O(1).
func RawFloats(t Tensor) ([]float64, bool) {
	d, ok := t.(*Dense)
	if !ok || d == nil || d.kind.IsComplex() {
		return nil, false
	}

	return d.fdata, true
}

// String implements fmt.Stringer for easy debugging.
// Rank-1 and rank-2 tensors render as bracketed rows; higher ranks render
// as a compact summary. Complexity: O(size).
func (d *Dense) String() string {
	var sb strings.Builder
	switch len(d.shape) {
	case 1:
		sb.WriteString("[")
		for i := 0; i < d.shape[0]; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(d.formatAt(i))
		}
		sb.WriteString("]")
	case 2:
		for i := 0; i < d.shape[0]; i++ {
			sb.WriteString("[")
			for j := 0; j < d.shape[1]; j++ {
				if j > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(d.formatAt(i*d.strides[0] + j))
			}
			sb.WriteString("]\n")
		}
	default:
		fmt.Fprintf(&sb, "Dense(kind=%s, shape=%v)", d.kind, d.shape)
	}

	return sb.String()
}

// formatAt renders the element at flat offset off for String.
func (d *Dense) formatAt(off int) string {
	if d.kind.IsComplex() {
		return fmt.Sprintf("%g", d.cdata[off])
	}

	return fmt.Sprintf("%g", d.fdata[off])
}
