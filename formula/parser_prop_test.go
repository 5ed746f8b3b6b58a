package formula_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/stoich/formula"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestParse_Properties generates formulas of the shape
// Na{p}Cl{q}(NaCl){m} and checks the accumulated totals, plus the
// idempotence contract: re-parsing a Formula's own Source always yields
// the same counts.
func TestParse_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("counts accumulate across terms and groups", prop.ForAll(
		func(p, q, m int64) bool {
			in := fmt.Sprintf("Na%dCl%d(NaCl)%d", p, q, m)
			f, err := formula.Parse(in)
			if err != nil {
				return false
			}
			return f.Count("Na") == p+m && f.Count("Cl") == q+m
		},
		gen.Int64Range(1, 50),
		gen.Int64Range(1, 50),
		gen.Int64Range(1, 50),
	))

	properties.Property("re-parsing Source reproduces counts", prop.ForAll(
		func(p, q, m int64) bool {
			in := fmt.Sprintf("H%dO%d(HO)%d", p, q, m)
			first, err := formula.Parse(in)
			if err != nil {
				return false
			}
			second, err := formula.Parse(first.Source())
			if err != nil {
				return false
			}
			for _, sym := range first.Elements() {
				if first.Count(sym) != second.Count(sym) {
					return false
				}
			}
			return len(first.Elements()) == len(second.Elements())
		},
		gen.Int64Range(1, 99),
		gen.Int64Range(1, 99),
		gen.Int64Range(1, 99),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
