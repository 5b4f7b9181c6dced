// Package argcheck provides boolean predicates that ease argument checking
// in numeric routines.
//
// The argcheck package provides:
//
//   - HasRank / HasShape — structural checks over a tensor's dimensionality
//     and per-dimension extents.
//   - HasFloats / HasComplex — element-kind category checks, mutually
//     exclusive for every kind.
//
// All predicates are pure queries: they inspect but never mutate their
// argument, return plain booleans (never errors), allocate nothing and are
// safe to call concurrently from any number of goroutines. Callers that
// need an error on violation wrap the predicate themselves — see the
// linalg package for the fail-fast pattern.
package argcheck
