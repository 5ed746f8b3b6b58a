package intmath

import "golang.org/x/exp/constraints"

// GCD — greatest common divisor, binary (Stein) variant.
//
// Description:
//
//	Computes gcd(a, b) for strictly positive a and b without division:
//	common factors of two are stripped from both operands, remaining
//	factors of two are stripped from each operand individually, and the
//	smaller value is repeatedly subtracted from the larger until one
//	reaches zero.
//
// Algorithm Outline:
//  1. If a == b, the answer is a.
//  2. While both are even: halve both, remember the shift.
//  3. While a is even: halve a.
//  4. Loop: halve b while even; ensure a ≤ b; b -= a; stop when b == 0.
//  5. Result is a << shift.
//
// Complexity: O(log(max(a, b))) subtractions and shifts.
//
// Errors:
//   - ErrNonPositive — a ≤ 0 or b ≤ 0.
func GCD[T constraints.Signed](a, b T) (T, error) {
	if a <= 0 || b <= 0 {
		return 0, ErrNonPositive
	}
	if a == b {
		return a, nil
	}

	var shift uint
	for (a|b)&1 == 0 {
		shift++
		a >>= 1
		b >>= 1
	}
	for a&1 == 0 {
		a >>= 1
	}
	for {
		for b&1 == 0 {
			b >>= 1
		}
		if a > b {
			a, b = b, a
		}
		b -= a
		if b == 0 {
			break
		}
	}

	return a << shift, nil
}

// LCM returns the least common multiple of strictly positive a and b,
// computed as (a / gcd(a, b)) · b so the intermediate product stays as
// small as possible.
//
// Errors:
//   - ErrNonPositive — a ≤ 0 or b ≤ 0.
//   - ErrOverflow    — the exact LCM does not fit T.
func LCM[T constraints.Signed](a, b T) (T, error) {
	g, err := GCD(a, b)
	if err != nil {
		return 0, err
	}

	return MulChecked(a/g, b)
}

// MulChecked returns a·b, or ErrOverflow if the exact product does not
// fit T. The zero-product and minimum-value·(-1) corners are handled
// before the division-based verification to keep it panic-free.
func MulChecked[T constraints.Signed](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if m := minOf[T](); (a == -1 && b == m) || (b == -1 && a == m) {
		return 0, ErrOverflow
	}
	p := a * b
	if p/b != a {
		return 0, ErrOverflow
	}

	return p, nil
}

// AddChecked returns a+b, or ErrOverflow if the exact sum does not fit T.
func AddChecked[T constraints.Signed](a, b T) (T, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, ErrOverflow
	}

	return s, nil
}

// SubChecked returns a-b, or ErrOverflow if the exact difference does not
// fit T.
func SubChecked[T constraints.Signed](a, b T) (T, error) {
	s := a - b
	if (b < 0 && s < a) || (b > 0 && s > a) {
		return 0, ErrOverflow
	}

	return s, nil
}

// minOf computes the minimum value of T. Left-shifting -1 keeps the sign
// bit and clears one low bit per step; the shift preceding zero is the
// type's minimum.
func minOf[T constraints.Signed]() T {
	m := T(-1)
	for m<<1 != 0 {
		m <<= 1
	}

	return m
}
