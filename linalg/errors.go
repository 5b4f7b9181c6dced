// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// The error taxonomy here is a single kind: every precondition violation —
// wrong element kind, wrong shape, null axis, matrix not a Z-axis rotation —
// wraps ErrInvalidArgument with a distinct message naming the offending
// parameter and constraint. Tests match the sentinel via errors.Is and the
// message via assert.ErrorContains.

package linalg

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single sentinel for all precondition violations.
// Violations are detected synchronously before any numeric work begins;
// there is no partial computation to roll back and no local recovery.
var ErrInvalidArgument = errors.New("linalg: invalid argument")

// Violation messages — one distinct constant per parameter/constraint pair,
// kept verbatim across the codebase so callers and logs stay greppable.
const (
	msgRNotReal     = "R must contain real values"
	msgRNotShape33  = "R must have shape (3, 3)"
	msgRNotZRot     = "R is not a rotation matrix around the Z-axis"
	msgAxisNotReal  = "axis must contain real values"
	msgAxisNotShape = "axis must have shape (3,)"
	msgAxisNull     = "Cannot rotate around null-vector"

	msgOperandNotReal  = "operand must contain real values"
	msgOperandNotRank2 = "operand must have rank 2"
	msgInnerMismatch   = "inner dimensions must agree"
	msgVecLenMismatch  = "vector length must equal the number of columns"
	msgNotShape33      = "operand must have shape (3, 3)"
)

// invalidArg builds "<msg>: linalg: invalid argument" so that errors.Is
// still matches the sentinel while the message pinpoints the violation.
func invalidArg(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInvalidArgument)
}

// opErrorf prefixes an underlying error with the operation tag, preserving
// the original error via %w for errors.Is/errors.As.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
