package tensor_test

import (
	"fmt"

	"github.com/phaseline/phaseline/tensor"
)

// ExampleNewDense builds a 2×3 container and round-trips a value.
func ExampleNewDense() {
	m, _ := tensor.NewDense(tensor.Float64, 2, 3)
	_ = m.Set(4.5, 1, 2)

	v, _ := m.At(1, 2)
	fmt.Println(m.Rank(), m.Shape(), m.Kind(), v)
	// Output:
	// 2 [2 3] float64 4.5
}

// ExampleAllClose compares two vectors under the default tolerances.
func ExampleAllClose() {
	a, _ := tensor.NewVector(tensor.Float64, 1, 2, 3)
	b, _ := tensor.NewVector(tensor.Float64, 1, 2, 3.0000001)

	ok, _ := tensor.AllClose(a, b)
	fmt.Println(ok)
	// Output:
	// true
}
