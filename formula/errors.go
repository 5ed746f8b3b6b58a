// Package formula: sentinel error set.
// Parse wraps these with the offending input text via fmt.Errorf("%q: %w");
// callers and tests match them with errors.Is. No positional detail beyond
// the input itself is reported.

package formula

import "errors"

var (
	// ErrInvalidCharacter is returned for any byte outside [A-Za-z0-9()].
	ErrInvalidCharacter = errors.New("formula: invalid character")

	// ErrDanglingCount is returned when a digit appears before any element
	// symbol or group it could count, e.g. "2H" or "(2O)".
	ErrDanglingCount = errors.New("formula: count with no preceding element")

	// ErrUnexpectedCharacter is returned when a character from the valid
	// alphabet appears where the grammar does not allow it: a lowercase
	// letter starting a symbol, a leading zero in a count, an empty group.
	ErrUnexpectedCharacter = errors.New("formula: unexpected character")

	// ErrUnmatchedClose is returned when ')' appears with no open group.
	ErrUnmatchedClose = errors.New("formula: unmatched closing parenthesis")

	// ErrUnexpectedEnd is returned when input ends while a group is still
	// open.
	ErrUnexpectedEnd = errors.New("formula: unexpected end of formula")

	// ErrCountTooLarge is returned when an atom count, a group multiplier,
	// or a merged total does not fit int64.
	ErrCountTooLarge = errors.New("formula: atom count too large")
)
