// Package intmath provides exact integer helpers for fraction-free
// linear algebra: binary GCD, overflow-checked LCM, and overflow-checked
// multiplication/addition over any signed integer type.
//
// 🚀 Why a dedicated package?
//
//	Fraction-free elimination trades division for repeated LCM scaling,
//	so intermediate values can grow multiplicatively. Every routine here
//	either returns an exact result or an explicit error — silent
//	wraparound is never an outcome:
//	  • GCD — binary (Stein) algorithm, strictly positive operands
//	  • LCM — a/gcd(a,b)·b, overflow-checked
//	  • MulChecked / AddChecked — report ErrOverflow instead of wrapping
//
// All functions are pure and safe for concurrent use.
//
// Errors:
//   - ErrNonPositive — GCD/LCM called with an operand ≤ 0.
//   - ErrOverflow    — the exact result does not fit the operand type.
package intmath
