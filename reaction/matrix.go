// Package reaction: element×chemical coefficient grid.
// The grid is a transient, row-major flat slice built fresh per balance
// request, mutated in place during elimination, and discarded afterwards.

package reaction

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stoich/formula"
)

// grid is a row-major signed integer matrix: one row per element, one
// column per chemical (reagents first, then products).
type grid struct {
	data []int64
	rows int
	cols int
}

func (g *grid) at(r, c int) int64 {
	return g.data[r*g.cols+c]
}

func (g *grid) set(r, c int, v int64) {
	g.data[r*g.cols+c] = v
}

// swapRows exchanges rows r1 and r2 in place.
func (g *grid) swapRows(r1, r2 int) {
	a, b := r1*g.cols, r2*g.cols
	for c := 0; c < g.cols; c++ {
		g.data[a+c], g.data[b+c] = g.data[b+c], g.data[a+c]
	}
}

// elementsInvolved returns the union of element symbols across all
// chemicals in sorted order, failing with ErrUnbalancedElements when a
// product references an element no reagent provides. The check is
// deliberately one-directional: a reagent-only element proceeds to
// elimination and surfaces there if the system cannot absorb it.
func elementsInvolved(reagents, products []formula.Formula) ([]string, error) {
	seen := make(map[string]struct{})
	for _, r := range reagents {
		for _, sym := range r.Elements() {
			seen[sym] = struct{}{}
		}
	}
	for _, p := range products {
		for _, sym := range p.Elements() {
			if _, ok := seen[sym]; !ok {
				return nil, fmt.Errorf("element %q: %w", sym, ErrUnbalancedElements)
			}
		}
	}

	out := make([]string, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	sort.Strings(out)

	return out, nil
}

// newGrid builds the signed coefficient matrix: +count for reagents,
// -count for products, 0 where an element is absent. Row order follows
// the sorted element list so pivoting is reproducible.
func newGrid(elements []string, reagents, products []formula.Formula) *grid {
	cols := len(reagents) + len(products)
	g := &grid{
		data: make([]int64, len(elements)*cols),
		rows: len(elements),
		cols: cols,
	}
	for r, sym := range elements {
		for c, reagent := range reagents {
			g.set(r, c, reagent.Count(sym))
		}
		for c, product := range products {
			g.set(r, len(reagents)+c, -product.Count(sym))
		}
	}

	return g
}
