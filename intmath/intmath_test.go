package intmath_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/stoich/intmath"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGCD_Known verifies the binary GCD against hand-checked pairs.
func TestGCD_Known(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{1, 1, 1},
		{2, 3, 1},
		{4, 6, 2},
		{12, 18, 6},
		{48, 180, 12},
		{17, 17, 17},
		{1, 999, 1},
		{1071, 462, 21},
	}
	for _, tc := range cases {
		g, err := intmath.GCD(tc.a, tc.b)
		require.NoError(t, err, "GCD(%d,%d)", tc.a, tc.b)
		assert.Equal(t, tc.want, g, "GCD(%d,%d)", tc.a, tc.b)
	}
}

// TestGCD_NonPositive ensures zero or negative operands error out
// instead of looping or panicking.
func TestGCD_NonPositive(t *testing.T) {
	_, err := intmath.GCD[int64](0, 5)
	assert.ErrorIs(t, err, intmath.ErrNonPositive, "zero first operand")

	_, err = intmath.GCD[int64](5, 0)
	assert.ErrorIs(t, err, intmath.ErrNonPositive, "zero second operand")

	_, err = intmath.GCD[int64](-4, 6)
	assert.ErrorIs(t, err, intmath.ErrNonPositive, "negative operand")
}

// TestLCM_Known verifies LCM values and the positive-operand contract.
func TestLCM_Known(t *testing.T) {
	l, err := intmath.LCM[int64](4, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(12), l)

	l, err = intmath.LCM[int64](7, 13)
	require.NoError(t, err)
	assert.Equal(t, int64(91), l)

	_, err = intmath.LCM[int64](0, 3)
	assert.ErrorIs(t, err, intmath.ErrNonPositive, "LCM with zero operand")
}

// TestLCM_Overflow checks that an LCM exceeding int64 reports ErrOverflow.
func TestLCM_Overflow(t *testing.T) {
	// Two large coprime values whose product exceeds int64.
	_, err := intmath.LCM[int64](math.MaxInt64-1, math.MaxInt64-2)
	assert.ErrorIs(t, err, intmath.ErrOverflow)
}

// TestMulChecked_Bounds exercises products on both sides of the int64 range.
func TestMulChecked_Bounds(t *testing.T) {
	p, err := intmath.MulChecked[int64](1<<31, 1<<31)
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<62, p)

	_, err = intmath.MulChecked[int64](1<<32, 1<<32)
	assert.ErrorIs(t, err, intmath.ErrOverflow, "positive overflow")

	_, err = intmath.MulChecked[int64](math.MinInt64, -1)
	assert.ErrorIs(t, err, intmath.ErrOverflow, "MinInt64·(-1)")

	_, err = intmath.MulChecked[int64](-1, math.MinInt64)
	assert.ErrorIs(t, err, intmath.ErrOverflow, "(-1)·MinInt64")

	p, err = intmath.MulChecked[int64](0, math.MinInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(0), p, "zero product short-circuits")
}

// TestAddChecked_Bounds exercises sums at the int64 boundaries.
func TestAddChecked_Bounds(t *testing.T) {
	s, err := intmath.AddChecked[int64](math.MaxInt64-1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), s)

	_, err = intmath.AddChecked[int64](math.MaxInt64, 1)
	assert.ErrorIs(t, err, intmath.ErrOverflow, "positive overflow")

	_, err = intmath.AddChecked[int64](math.MinInt64, -1)
	assert.ErrorIs(t, err, intmath.ErrOverflow, "negative overflow")
}

// TestSubChecked_Bounds exercises differences at the int64 boundaries.
func TestSubChecked_Bounds(t *testing.T) {
	d, err := intmath.SubChecked[int64](math.MinInt64+1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), d)

	_, err = intmath.SubChecked[int64](math.MinInt64, 1)
	assert.ErrorIs(t, err, intmath.ErrOverflow, "negative overflow")

	_, err = intmath.SubChecked[int64](math.MaxInt64, -1)
	assert.ErrorIs(t, err, intmath.ErrOverflow, "positive overflow")
}

// TestGCDLCM_Laws property-checks the classic identities on random
// positive operands: the GCD divides both operands, the LCM is a
// multiple of both, and gcd·lcm == a·b.
func TestGCDLCM_Laws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("gcd divides both operands", prop.ForAll(
		func(a, b int64) bool {
			g, err := intmath.GCD(a, b)
			return err == nil && a%g == 0 && b%g == 0
		},
		gen.Int64Range(1, 1<<30),
		gen.Int64Range(1, 1<<30),
	))

	properties.Property("lcm is a common multiple", prop.ForAll(
		func(a, b int64) bool {
			l, err := intmath.LCM(a, b)
			return err == nil && l%a == 0 && l%b == 0
		},
		gen.Int64Range(1, 1<<30),
		gen.Int64Range(1, 1<<30),
	))

	properties.Property("gcd·lcm == a·b", prop.ForAll(
		func(a, b int64) bool {
			g, err := intmath.GCD(a, b)
			if err != nil {
				return false
			}
			l, err := intmath.LCM(a, b)
			if err != nil {
				return false
			}
			return g*l == a*b
		},
		gen.Int64Range(1, 1<<30),
		gen.Int64Range(1, 1<<30),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
