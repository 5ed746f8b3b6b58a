// Package reaction balances chemical equations: given parsed reagent and
// product formulas it computes the smallest positive integer coefficients
// that equalize every element's atom total on both sides.
//
// 🚀 How does it work?
//
//	The balance condition is a homogeneous integer linear system:
//	  • one row per distinct element (sorted symbol order, deterministic)
//	  • one column per chemical — reagent counts positive, product counts
//	    negated
//	The solver runs fraction-free Gaussian elimination (rows are scaled by
//	least common multiples instead of divided, so every intermediate stays
//	an exact integer), then back-substitutes from an anchor value of 1,
//	LCM-rescaling previously solved values so the final vector is the
//	minimal all-positive integer solution.
//
// ✨ Guarantees:
//
//   - Deterministic – same input, same pivoting, same coefficients
//   - Exact – checked int64 arithmetic; overflow is an error, not a wrap
//   - Minimal – returned coefficients share no common divisor > 1
//   - No panics – degenerate systems surface as sentinel errors
//
// ⚙️ Usage:
//
//	eq, err := reaction.ParseEquation("Fe + O2 = Fe2O3")
//	coeffs, err := eq.Balance()   // [4 3 2] → 4Fe + 3O2 = 2Fe2O3
//
//	// Or with formulas parsed individually:
//	coeffs, err := reaction.Balance(reagents, products)
//
// Complexity: O(rows · columns²) with column-count-bounded vector work in
// back-substitution.
//
// Errors are sentinels in errors.go, matched via errors.Is. Debug tracing
// of matrix shape, pivot swaps and the final vector goes through the
// stoich/logger package and is off by default.
package reaction
