// Package intmath: sentinel error set.
// All helpers return these sentinels; callers match them via errors.Is.
// No routine panics on user-supplied values.

package intmath

import "errors"

var (
	// ErrNonPositive is returned by GCD and LCM when an operand is zero or
	// negative. Both are defined for strictly positive integers only.
	ErrNonPositive = errors.New("intmath: operand must be positive")

	// ErrOverflow is returned when the exact mathematical result does not
	// fit the operand type.
	ErrOverflow = errors.New("intmath: integer overflow")
)
