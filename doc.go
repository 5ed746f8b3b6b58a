// Package stoich balances chemical equations with exact integer
// arithmetic — from formula parsing to minimal positive coefficients.
//
// 🚀 What is stoich?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Formula parsing: nested groups, multipliers, multi-letter symbols
//		• Balancing: fraction-free Gaussian elimination over the integers
//		• Minimality: LCM-scaled back-substitution, no common divisor left
//		• Exactness: checked int64 arithmetic, overflow reported not wrapped
//
// ✨ Why choose stoich?
//
//   - Deterministic – sorted element ordering, reproducible pivoting
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure computation – no I/O, no shared state, safe for concurrent use
//   - Exact – every intermediate value stays an integer
//
// Everything is organized under four subpackages:
//
//	formula/  — formula string → element/atom-count map (state machine)
//	reaction/ — equation splitting, coefficient matrix, integer solver
//	intmath/  — binary GCD, checked LCM and multiplication
//	logger/   — global zerolog logger for optional debug tracing
//
// Quick example:
//
//	eq, _ := reaction.ParseEquation("Fe + O2 = Fe2O3")
//	coeffs, _ := eq.Balance()
//	// coeffs = [4 3 2]  →  4Fe + 3O2 = 2Fe2O3
//
// See each subpackage's doc.go and example_test.go for details.
package stoich
