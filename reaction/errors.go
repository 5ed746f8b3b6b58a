// Package reaction: sentinel error set.
// All solver and equation entry points return these sentinels, wrapped
// with context where useful; callers and tests match them via errors.Is.
// No routine panics on user-supplied equations — degenerate arithmetic
// states are reported, never asserted.

package reaction

import "errors"

var (
	// ErrMissingEquals is returned by ParseEquation when the input lacks
	// the '=' separating reagents from products.
	ErrMissingEquals = errors.New("reaction: equation lacks '=' separator")

	// ErrEmptyChemical is returned by ParseEquation when splitting on '='
	// and '+' produces a blank chemical.
	ErrEmptyChemical = errors.New("reaction: empty chemical in equation")

	// ErrUnbalancedElements is returned when a product references an
	// element absent from every reagent.
	ErrUnbalancedElements = errors.New("reaction: product element missing from reagents")

	// ErrInfiniteSolution is returned when the system is under-determined:
	// fewer element rows than needed to pin a unique coefficient vector.
	ErrInfiniteSolution = errors.New("reaction: under-determined system has no unique solution")

	// ErrDegenerateSystem is returned when elimination or back-substitution
	// reaches a state the algorithm cannot solve (a zero LCM operand, e.g.
	// from a rank-deficient matrix).
	ErrDegenerateSystem = errors.New("reaction: degenerate coefficient system")

	// ErrCoefficientOverflow is returned when an intermediate or final
	// coefficient no longer fits int64.
	ErrCoefficientOverflow = errors.New("reaction: coefficient overflow")

	// ErrBadCoefficients is returned by Verify when the vector length does
	// not match the equation's chemical count.
	ErrBadCoefficients = errors.New("reaction: coefficient vector length mismatch")

	// ErrNotBalanced is returned by Verify when a coefficient vector fails
	// the per-element balance check.
	ErrNotBalanced = errors.New("reaction: coefficients do not balance equation")
)
