package reaction

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/stoich/formula"
	"github.com/katalvlaran/stoich/intmath"
	"github.com/katalvlaran/stoich/logger"
	"github.com/rs/zerolog"
)

// Balance — minimal positive integer coefficients for a chemical equation.
//
// Description:
//
//	Balance finds the unique smallest vector of positive integers, one
//	per chemical (reagents first, then products, in input order), such
//	that for every element the coefficient-weighted atom totals agree on
//	both sides.
//
// Algorithm Outline:
//  1. Collect the element set of the reagents; fail with
//     ErrUnbalancedElements if a product uses an element outside it.
//     (One-directional on purpose: a reagent-only element proceeds into
//     elimination and is caught by the residual check in step 6 if the
//     system cannot absorb it.)
//  2. Build the signed element×chemical matrix in sorted element order:
//     +count for reagents, -count for products.
//  3. Require at least columns-1 element rows; otherwise the system is
//     under-determined → ErrInfiniteSolution.
//  4. Fraction-free forward elimination: for each pivot column, swap up a
//     row with a nonzero pivot if needed, then cancel every lower row by
//     scaling both rows to the LCM of their pivot-column entries and
//     subtracting. The pivot row itself is never mutated, and every
//     intermediate value stays an exact integer.
//  5. Back-substitution from an anchor of 1 for the last chemical: each
//     pivot row yields one new coefficient via an LCM step that also
//     rescales all previously solved values, keeping the vector integral
//     and minimal. Reverse at the end to restore column order.
//  6. Residual check: back-substitution only consults the first
//     columns-1 pivot rows, so the vector is re-checked against every
//     element's weighted totals. A nonzero residual (e.g. a reagent-only
//     element no product can absorb, as in H2O = H2) means the system
//     has no exact solution → ErrDegenerateSystem.
//
// Complexity: O(rows · columns²).
//
// Errors:
//   - ErrUnbalancedElements  — product element absent from all reagents.
//   - ErrInfiniteSolution    — fewer element rows than columns-1.
//   - ErrDegenerateSystem    — zero LCM operand, or a nonzero residual
//     left by a row outside the pivot range (rank-deficient or
//     unbalanceable system).
//   - ErrCoefficientOverflow — an intermediate value no longer fits int64.
func Balance(reagents, products []formula.Formula) ([]int64, error) {
	elements, err := elementsInvolved(reagents, products)
	if err != nil {
		return nil, err
	}

	s := solver{
		g:   newGrid(elements, reagents, products),
		log: logger.Logger().With().Str("component", "reaction").Logger(),
	}
	s.log.Debug().
		Int("rows", s.g.rows).
		Int("cols", s.g.cols).
		Strs("elements", elements).
		Msg("coefficient matrix built")

	if err = s.eliminate(); err != nil {
		return nil, err
	}
	coeffs, err := s.backSubstitute()
	if err != nil {
		return nil, err
	}
	if err = checkResiduals(reagents, products, coeffs); err != nil {
		return nil, err
	}
	s.log.Debug().Ints64("coefficients", coeffs).Msg("equation balanced")

	return coeffs, nil
}

// checkResiduals confirms the solved vector actually balances every
// element. Back-substitution reads only the cols-1 pivot rows, so a row
// below the pivot range — typically a reagent-only element — can survive
// elimination with a nonzero residual and must not become a silent
// "success".
func checkResiduals(reagents, products []formula.Formula, coeffs []int64) error {
	totals := make(map[string]int64)
	if err := accumulate(totals, reagents, coeffs[:len(reagents)], 1); err != nil {
		return err
	}
	if err := accumulate(totals, products, coeffs[len(reagents):], -1); err != nil {
		return err
	}

	symbols := make([]string, 0, len(totals))
	for sym := range totals {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	for _, sym := range symbols {
		if totals[sym] != 0 {
			return fmt.Errorf("element %q left unbalanced: %w", sym, ErrDegenerateSystem)
		}
	}

	return nil
}

// solver bundles the working grid with the debug logger for one request.
type solver struct {
	g   *grid
	log zerolog.Logger
}

// eliminate performs fraction-free forward elimination over the first
// cols-1 pivot columns.
func (s *solver) eliminate() error {
	pivots := s.g.cols - 1
	if s.g.rows < pivots || s.g.cols == 0 {
		return ErrInfiniteSolution
	}

	for k := 0; k < pivots; k++ {
		if s.g.at(k, k) == 0 {
			for j := k + 1; j < s.g.rows; j++ {
				if s.g.at(j, k) != 0 {
					s.g.swapRows(k, j)
					s.log.Debug().Int("pivot", k).Int("row", j).Msg("pivot swap")
					break
				}
			}
		}
		for j := k + 1; j < s.g.rows; j++ {
			if err := s.cancelRow(k, j); err != nil {
				return err
			}
		}
	}

	return nil
}

// cancelRow zeroes column k of row j by scaling the pivot row k and row j
// to the LCM of their column-k entries and replacing row j with the
// difference. Row k is left untouched.
func (s *solver) cancelRow(k, j int) error {
	if s.g.at(j, k) == 0 {
		return nil
	}

	l, err := intmath.LCM(abs(s.g.at(k, k)), abs(s.g.at(j, k)))
	if err != nil {
		return arithmeticErr(err)
	}
	fk := l / s.g.at(k, k)
	fj := l / s.g.at(j, k)

	for c := k; c < s.g.cols; c++ {
		tk, err := intmath.MulChecked(s.g.at(k, c), fk)
		if err != nil {
			return arithmeticErr(err)
		}
		tj, err := intmath.MulChecked(s.g.at(j, c), fj)
		if err != nil {
			return arithmeticErr(err)
		}
		v, err := intmath.SubChecked(tk, tj)
		if err != nil {
			return arithmeticErr(err)
		}
		s.g.set(j, c, v)
	}

	return nil
}

// backSubstitute solves the triangular system bottom-up. The last
// chemical is anchored at 1; each pivot row contributes one coefficient
// and an LCM rescale of everything solved so far, so the result is the
// minimal all-positive integer vector.
func (s *solver) backSubstitute() ([]int64, error) {
	solved := make([]int64, 1, s.g.cols)
	solved[0] = 1

	for row := s.g.cols - 2; row >= 0; row-- {
		// Weighted sum over already-solved columns, nearest column first;
		// solved[i] corresponds to column cols-1-i.
		var sum int64
		for i, col := 0, s.g.cols-1; col > row; i, col = i+1, col-1 {
			term, err := intmath.MulChecked(s.g.at(row, col), solved[i])
			if err != nil {
				return nil, arithmeticErr(err)
			}
			if sum, err = intmath.AddChecked(sum, term); err != nil {
				return nil, arithmeticErr(err)
			}
		}

		// Homogeneous row equation a·x + sum = 0, solved over the integers.
		l, err := intmath.LCM(abs(s.g.at(row, row)), abs(sum))
		if err != nil {
			return nil, arithmeticErr(err)
		}
		x := l / abs(s.g.at(row, row))
		factor := l / abs(sum)
		if factor != 1 {
			for i := range solved {
				if solved[i], err = intmath.MulChecked(solved[i], factor); err != nil {
					return nil, arithmeticErr(err)
				}
			}
		}
		solved = append(solved, x)
	}

	// Restore reagent-then-product column order.
	for l, r := 0, len(solved)-1; l < r; l, r = l+1, r-1 {
		solved[l], solved[r] = solved[r], solved[l]
	}

	return solved, nil
}

// arithmeticErr maps intmath sentinels onto the solver's failure modes: a
// zero LCM operand means the happy-path algorithm hit a degenerate
// system; an overflow means the exact coefficients outgrew int64.
func arithmeticErr(err error) error {
	switch {
	case errors.Is(err, intmath.ErrNonPositive):
		return ErrDegenerateSystem
	case errors.Is(err, intmath.ErrOverflow):
		return ErrCoefficientOverflow
	default:
		return err
	}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
