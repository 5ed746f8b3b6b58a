// Package reaction: equation front door — splitting an equation string
// into parsed chemicals, the Equation value, and the Verify self-check.

package reaction

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/stoich/formula"
	"github.com/katalvlaran/stoich/intmath"
)

// Equation holds the parsed chemicals of one reaction: reagents on the
// left of '=', products on the right, both in source order.
type Equation struct {
	Reagents []formula.Formula
	Products []formula.Formula
}

// ParseEquation splits input on the first '=' and then on '+', trims each
// chemical substring, and parses every formula.
//
// Errors:
//   - ErrMissingEquals — no '=' separator in the input.
//   - ErrEmptyChemical — a trimmed chemical substring is blank.
//   - formula sentinels — a chemical fails to parse (wrapped, match via
//     errors.Is against the formula package's errors).
func ParseEquation(input string) (Equation, error) {
	idx := strings.IndexByte(input, '=')
	if idx < 0 {
		return Equation{}, fmt.Errorf("%q: %w", input, ErrMissingEquals)
	}

	reagents, err := parseSide(input[:idx])
	if err != nil {
		return Equation{}, err
	}
	products, err := parseSide(input[idx+1:])
	if err != nil {
		return Equation{}, err
	}

	return Equation{Reagents: reagents, Products: products}, nil
}

// parseSide splits one side of the equation on '+' and parses each
// trimmed chemical.
func parseSide(side string) ([]formula.Formula, error) {
	parts := strings.Split(side, "+")
	out := make([]formula.Formula, 0, len(parts))
	for _, raw := range parts {
		text := strings.TrimSpace(raw)
		if text == "" {
			return nil, fmt.Errorf("%q: %w", side, ErrEmptyChemical)
		}
		f, err := formula.Parse(text)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}

// Balance computes the minimal positive coefficient vector for the
// equation; see the package-level Balance for semantics and errors.
func (eq Equation) Balance() ([]int64, error) {
	return Balance(eq.Reagents, eq.Products)
}

// String renders the equation from the chemicals' source texts.
func (eq Equation) String() string {
	return sideString(eq.Reagents) + " = " + sideString(eq.Products)
}

func sideString(side []formula.Formula) string {
	sources := make([]string, len(side))
	for i, f := range side {
		sources[i] = f.Source()
	}

	return strings.Join(sources, " + ")
}

// Verify checks a coefficient vector against the equation: for every
// element, the coefficient-weighted atom totals of reagents and products
// must cancel exactly. It is cheap (one pass over the counts) and used by
// the tests as the round-trip oracle for Balance.
//
// Errors:
//   - ErrBadCoefficients    — len(coeffs) ≠ reagent count + product count.
//   - ErrNotBalanced        — some element's signed total is nonzero.
//   - ErrCoefficientOverflow — a weighted total exceeds int64.
func Verify(eq Equation, coeffs []int64) error {
	if len(coeffs) != len(eq.Reagents)+len(eq.Products) {
		return fmt.Errorf("%d coefficients for %d chemicals: %w",
			len(coeffs), len(eq.Reagents)+len(eq.Products), ErrBadCoefficients)
	}

	totals := make(map[string]int64)
	if err := accumulate(totals, eq.Reagents, coeffs[:len(eq.Reagents)], 1); err != nil {
		return err
	}
	if err := accumulate(totals, eq.Products, coeffs[len(eq.Reagents):], -1); err != nil {
		return err
	}

	// Sorted iteration keeps the reported element deterministic.
	symbols := make([]string, 0, len(totals))
	for sym := range totals {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	for _, sym := range symbols {
		if totals[sym] != 0 {
			return fmt.Errorf("element %q off by %d: %w", sym, totals[sym], ErrNotBalanced)
		}
	}

	return nil
}

// accumulate folds sign·coeff·count for each element of each chemical
// into totals, with checked arithmetic.
func accumulate(totals map[string]int64, side []formula.Formula, coeffs []int64, sign int64) error {
	for i, f := range side {
		for _, sym := range f.Elements() {
			term, err := intmath.MulChecked(coeffs[i], f.Count(sym))
			if err != nil {
				return arithmeticErr(err)
			}
			var total int64
			if sign > 0 {
				total, err = intmath.AddChecked(totals[sym], term)
			} else {
				total, err = intmath.SubChecked(totals[sym], term)
			}
			if err != nil {
				return arithmeticErr(err)
			}
			totals[sym] = total
		}
	}

	return nil
}
