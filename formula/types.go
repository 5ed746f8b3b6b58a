// Package formula: public value type and parser state definitions.
package formula

import "sort"

// Formula is an immutable parsed chemical formula: a mapping from element
// symbol to atom count plus the original source text. The zero value is a
// valid, empty Formula.
//
// Invariants:
//   - every stored count is ≥ 1 (absent symbols are simply not stored)
//   - the internal map is owned outright; accessors return copies
type Formula struct {
	counts map[string]int64
	source string
}

// Count returns the atom count for symbol, or 0 if the element does not
// occur in the formula.
func (f Formula) Count(symbol string) int64 {
	return f.counts[symbol]
}

// Counts returns a copy of the element → atom-count mapping.
func (f Formula) Counts() map[string]int64 {
	out := make(map[string]int64, len(f.counts))
	for sym, n := range f.counts {
		out[sym] = n
	}

	return out
}

// Elements returns the element symbols in sorted order.
func (f Formula) Elements() []string {
	out := make([]string, 0, len(f.counts))
	for sym := range f.counts {
		out = append(out, sym)
	}
	sort.Strings(out)

	return out
}

// Source returns the original formula text, verbatim.
func (f Formula) Source() string {
	return f.source
}

// String implements fmt.Stringer; it returns the source text.
func (f Formula) String() string {
	return f.source
}

// parseState enumerates what kind of token the parser is reading.
// "group" states are the in-parentheses twins of the top-level ones; the
// distinction matters because ')' and end-of-input are legal only in some
// of them.
type parseState int

const (
	// stateStart — no token yet (initial state, also after a merge back to
	// top level).
	stateStart parseState = iota

	// stateSymbol — reading an element name at top level.
	stateSymbol

	// stateCount — reading an element count at top level.
	stateCount

	// stateGroupStart — just opened '(' and read nothing inside yet.
	stateGroupStart

	// stateGroupSymbol — reading an element name inside a group.
	stateGroupSymbol

	// stateGroupCount — reading an element count inside a group.
	stateGroupCount

	// stateGroupClosed — just read ')'; deciding whether a multiplier
	// follows.
	stateGroupClosed

	// stateMultiplier — reading a group's trailing multiplier digits.
	stateMultiplier
)
