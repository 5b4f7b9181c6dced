// Package tensor provides the explicit numeric container this library is
// built around.
//
// The tensor package provides:
//
//   - Dense, a row-major n-dimensional container of numeric values with a
//     runtime element-kind tag (Int64, Float32, Float64, Complex64,
//     Complex128) and O(1) multi-index access.
//   - Rank, shape and kind introspection used by argcheck predicates and by
//     any numeric routine that needs defensive input checks.
//   - AllClose / AllCloseScalar, approximate-equality comparisons with
//     documented default tolerances (DefaultRelTol, DefaultAbsTol).
//
// Dense is deliberately small: all consumers in this library operate on
// rank ≤ 2 containers of extent 3, so no broadcasting, views or lazy
// expression machinery is offered. Values never escape the container except
// by explicit At/Clone calls; every operation is pure and reentrant.
//
// See the examples in this package and linalg for usage patterns.
package tensor
