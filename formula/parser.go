package formula

import (
	"fmt"

	"github.com/katalvlaran/stoich/intmath"
)

// Parse converts a chemical formula string into a Formula.
//
// Description:
//
//	Parse runs an explicit character state machine over the input. Element
//	terms are committed into the current scope accumulator; every '('
//	pushes the accumulator onto a stack and opens a fresh one; every ')'
//	(plus its optional decimal multiplier) scales the closed scope and
//	merges it additively into the popped parent. Repeated symbols merge
//	additively at every level.
//
// Algorithm Outline:
//  1. Start in stateStart with an empty accumulator and empty stack.
//  2. Uppercase letter: begin (or, if a term is pending, commit it and
//     begin) an element name; lowercase letters extend the name; digits
//     after a name begin its count (no leading zero, default 1).
//  3. '(': commit any pending term, push the accumulator, open a scope.
//  4. ')': commit any pending term, enter stateGroupClosed; digits there
//     form the group multiplier (default 1). The first non-digit ends the
//     multiplier: the scope is scaled, merged into the popped parent, and
//     that character is re-dispatched at the parent's level.
//  5. End-of-input finalizes any pending term or multiplier the same way
//     a terminating character would.
//
// Counts use checked int64 arithmetic throughout; an overflowing count or
// merge is reported, never wrapped.
//
// Complexity: O(len(input) + total committed terms); nesting depth is
// bounded only by available memory (explicit stack, no recursion).
//
// Errors (each wrapped with the offending input, match via errors.Is):
//   - ErrInvalidCharacter    — byte outside [A-Za-z0-9()].
//   - ErrDanglingCount       — digit before any element or group.
//   - ErrUnexpectedCharacter — valid byte in an impossible position
//     (lowercase starting a symbol, leading zero, empty group, ...).
//   - ErrUnmatchedClose      — ')' with no open group.
//   - ErrUnexpectedEnd       — input ends inside an open group.
//   - ErrCountTooLarge       — a count or merged total exceeds int64.
func Parse(input string) (Formula, error) {
	p := parser{current: make(accumulator)}

	for i := 0; i < len(input); i++ {
		b := input[i]
		if !validByte(b) {
			return fail(input, ErrInvalidCharacter)
		}
		if err := p.step(b); err != nil {
			return fail(input, err)
		}
	}
	if err := p.finish(); err != nil {
		return fail(input, err)
	}

	return Formula{counts: p.current, source: input}, nil
}

// accumulator is one scope's running element → count mapping.
type accumulator map[string]int64

// parser holds the state machine's mutable state for a single Parse call.
type parser struct {
	current accumulator
	stack   []accumulator
	name    []byte
	count   int64
	mult    int64
	state   parseState
}

// step consumes one byte from the valid alphabet and advances the machine.
func (p *parser) step(b byte) error {
	switch p.state {
	case stateStart:
		return p.stepStart(b)
	case stateSymbol, stateGroupSymbol:
		return p.stepSymbol(b)
	case stateCount, stateGroupCount:
		return p.stepCount(b)
	case stateGroupStart:
		return p.stepGroupStart(b)
	case stateGroupClosed:
		return p.stepGroupClosed(b)
	case stateMultiplier:
		return p.stepMultiplier(b)
	default:
		return ErrUnexpectedCharacter
	}
}

// stepStart handles the initial state: only an element or a group may
// begin a formula.
func (p *parser) stepStart(b byte) error {
	switch {
	case isUpper(b):
		p.name = append(p.name, b)
		p.state = stateSymbol
	case b == '(':
		p.pushScope()
	case isDigit(b):
		return ErrDanglingCount
	case b == ')':
		return ErrUnmatchedClose
	default: // lowercase
		return ErrUnexpectedCharacter
	}

	return nil
}

// stepSymbol handles name-reading, both at top level and inside a group.
func (p *parser) stepSymbol(b byte) error {
	inGroup := p.state == stateGroupSymbol
	switch {
	case isLower(b):
		p.name = append(p.name, b)
	case isUpper(b):
		if err := p.commit(1); err != nil {
			return err
		}
		p.name = append(p.name, b)
	case b >= '1' && b <= '9':
		p.count = int64(b - '0')
		if inGroup {
			p.state = stateGroupCount
		} else {
			p.state = stateCount
		}
	case b == '(':
		if err := p.commit(1); err != nil {
			return err
		}
		p.pushScope()
	case b == ')':
		if !inGroup {
			return ErrUnmatchedClose
		}
		if err := p.commit(1); err != nil {
			return err
		}
		p.state = stateGroupClosed
	default: // '0' — a count cannot start with a leading zero
		return ErrUnexpectedCharacter
	}

	return nil
}

// stepCount handles count-reading, both at top level and inside a group.
func (p *parser) stepCount(b byte) error {
	inGroup := p.state == stateGroupCount
	switch {
	case isDigit(b):
		return appendDigit(&p.count, b)
	case isUpper(b):
		if err := p.commit(p.count); err != nil {
			return err
		}
		p.name = append(p.name, b)
		if inGroup {
			p.state = stateGroupSymbol
		} else {
			p.state = stateSymbol
		}
	case b == '(':
		if err := p.commit(p.count); err != nil {
			return err
		}
		p.pushScope()
	case b == ')':
		if !inGroup {
			return ErrUnmatchedClose
		}
		if err := p.commit(p.count); err != nil {
			return err
		}
		p.state = stateGroupClosed
	default: // lowercase after a digit
		return ErrUnexpectedCharacter
	}

	return nil
}

// stepGroupStart handles the position right after '(' where the scope is
// still empty.
func (p *parser) stepGroupStart(b byte) error {
	switch {
	case isUpper(b):
		p.name = append(p.name, b)
		p.state = stateGroupSymbol
	case b == '(':
		p.pushScope()
	case isDigit(b):
		return ErrDanglingCount
	default: // lowercase, or ')' closing an empty group
		return ErrUnexpectedCharacter
	}

	return nil
}

// stepGroupClosed handles the position right after ')': digits begin the
// multiplier, anything else merges with the default multiplier 1 and is
// re-dispatched at the parent level.
func (p *parser) stepGroupClosed(b byte) error {
	if b >= '1' && b <= '9' {
		p.mult = int64(b - '0')
		p.state = stateMultiplier

		return nil
	}
	if b == '0' {
		return ErrUnexpectedCharacter
	}
	if err := p.mergeScope(1); err != nil {
		return err
	}

	return p.resume(b)
}

// stepMultiplier accumulates multiplier digits; the first non-digit
// triggers the scaled merge and is re-dispatched at the parent level.
func (p *parser) stepMultiplier(b byte) error {
	if isDigit(b) {
		return appendDigit(&p.mult, b)
	}
	if err := p.mergeScope(p.mult); err != nil {
		return err
	}

	return p.resume(b)
}

// resume re-dispatches the character that terminated a group merge at the
// level the merge landed on.
func (p *parser) resume(b byte) error {
	switch {
	case isUpper(b):
		p.name = append(p.name, b)
		if len(p.stack) == 0 {
			p.state = stateSymbol
		} else {
			p.state = stateGroupSymbol
		}
	case b == ')':
		if len(p.stack) == 0 {
			return ErrUnmatchedClose
		}
		p.state = stateGroupClosed
	case b == '(':
		p.pushScope()
	default: // lowercase cannot continue a merged group
		return ErrUnexpectedCharacter
	}

	return nil
}

// finish finalizes the machine at end-of-input exactly as a terminating
// character would.
func (p *parser) finish() error {
	switch p.state {
	case stateStart:
		return nil
	case stateSymbol:
		return p.commit(1)
	case stateCount:
		return p.commit(p.count)
	case stateGroupClosed:
		if err := p.mergeScope(1); err != nil {
			return err
		}
	case stateMultiplier:
		if err := p.mergeScope(p.mult); err != nil {
			return err
		}
	default: // stateGroupStart, stateGroupSymbol, stateGroupCount
		return ErrUnexpectedEnd
	}
	if len(p.stack) != 0 {
		return ErrUnexpectedEnd
	}

	return nil
}

// commit adds the pending element name with count n into the current
// scope and clears the name buffer. The state keeps its level; callers
// set the follow-up state.
func (p *parser) commit(n int64) error {
	sym := string(p.name)
	total, err := intmath.AddChecked(p.current[sym], n)
	if err != nil {
		return ErrCountTooLarge
	}
	p.current[sym] = total
	p.name = p.name[:0]

	return nil
}

// pushScope opens a nested group: the current accumulator is saved and a
// fresh one becomes current.
func (p *parser) pushScope() {
	p.stack = append(p.stack, p.current)
	p.current = make(accumulator)
	p.state = stateGroupStart
}

// mergeScope multiplies the closed scope by mult and merges it additively
// into the popped parent, which becomes current again.
func (p *parser) mergeScope(mult int64) error {
	parent := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	for sym, n := range p.current {
		scaled, err := intmath.MulChecked(n, mult)
		if err != nil {
			return ErrCountTooLarge
		}
		total, err := intmath.AddChecked(parent[sym], scaled)
		if err != nil {
			return ErrCountTooLarge
		}
		parent[sym] = total
	}
	p.current = parent
	p.mult = 0

	return nil
}

// appendDigit folds one decimal digit into *dst with overflow checking.
func appendDigit(dst *int64, b byte) error {
	shifted, err := intmath.MulChecked(*dst, 10)
	if err != nil {
		return ErrCountTooLarge
	}
	total, err := intmath.AddChecked(shifted, int64(b-'0'))
	if err != nil {
		return ErrCountTooLarge
	}
	*dst = total

	return nil
}

// fail wraps a sentinel with the offending input text.
func fail(input string, sentinel error) (Formula, error) {
	return Formula{}, fmt.Errorf("%q: %w", input, sentinel)
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// validByte reports whether b belongs to the formula alphabet.
func validByte(b byte) bool {
	return isUpper(b) || isLower(b) || isDigit(b) || b == '(' || b == ')'
}
