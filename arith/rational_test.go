// SPDX-License-Identifier: MIT
package arith_test

import (
	"errors"
	"math"
	"math/big"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/denota/arith"
	"github.com/katalvlaran/denota/numtheory"
)

// rat builds n/d or fails the test.
func rat(t *testing.T, n, d int64) arith.Rational {
	t.Helper()
	r, err := arith.NewRational(n, d)
	require.NoError(t, err)

	return r
}

func TestNewRational_Reduced(t *testing.T) {
	cases := [][2]int64{{6, 8}, {-6, 8}, {6, -8}, {-6, -8}, {0, 5}, {0, -5}, {7, 1}, {100, 25}}
	for _, c := range cases {
		r := rat(t, c[0], c[1])
		assert.Greaterf(t, r.Den(), int64(0), "den of %v", c)
		assert.Equalf(t, int64(1), numtheory.Gcd(r.Num(), r.Den()), "gcd of %v", c)
	}
	assert.Equal(t, "-3/4", rat(t, 6, -8).String())
	assert.Equal(t, "0", rat(t, 0, -5).String())

	_, err := arith.NewRational(1, 0)
	assert.ErrorIs(t, err, arith.ErrZeroDenominator)
}

func TestRational_ZeroValue(t *testing.T) {
	var z arith.Rational
	assert.True(t, z.IsZero())
	assert.Equal(t, int64(1), z.Den())
	assert.True(t, z.Equal(arith.RationalZero))
	assert.Equal(t, "0", z.String())
}

func TestRational_Arithmetic(t *testing.T) {
	half, third := rat(t, 1, 2), rat(t, 1, 3)

	assert.True(t, half.Add(third).Equal(rat(t, 5, 6)))
	assert.True(t, half.Sub(third).Equal(rat(t, 1, 6)))
	assert.True(t, half.Mul(third).Equal(rat(t, 1, 6)))
	q, err := half.Quo(third)
	require.NoError(t, err)
	assert.True(t, q.Equal(rat(t, 3, 2)))
	assert.True(t, half.Neg().Equal(rat(t, -1, 2)))
	assert.True(t, half.Neg().Abs().Equal(half))
	inv, err := third.Inv()
	require.NoError(t, err)
	assert.True(t, inv.Equal(arith.FromInt(3)))
	assert.True(t, rat(t, -2, 3).MulInt(3).Equal(arith.FromInt(-2)))
	assert.True(t, third.AddInt(1).Equal(rat(t, 4, 3)))
}

func TestRational_DivisionByZero(t *testing.T) {
	_, err := arith.RationalOne.Quo(arith.RationalZero)
	assert.ErrorIs(t, err, arith.ErrDivisionByZero)

	_, err = arith.RationalOne.QuoInt(0)
	assert.ErrorIs(t, err, arith.ErrDivisionByZero)

	_, err = arith.RationalZero.Inv()
	assert.ErrorIs(t, err, arith.ErrDivisionByZero)
}

func TestRational_CompareAndRounding(t *testing.T) {
	assert.Equal(t, -1, rat(t, 1, 3).Compare(rat(t, 1, 2)))
	assert.Equal(t, 0, rat(t, 2, 4).Compare(rat(t, 1, 2)))
	assert.Equal(t, 1, rat(t, -1, 3).Compare(rat(t, -1, 2)))

	assert.Equal(t, int64(-2), rat(t, -3, 2).Floor())
	assert.Equal(t, int64(-1), rat(t, -3, 2).Ceil())
	assert.Equal(t, int64(2), rat(t, 3, 2).Ceil())
	assert.Equal(t, int64(2), rat(t, 3, 2).Round())
	assert.Equal(t, int64(-2), rat(t, -3, 2).Round())
	assert.Equal(t, int64(0), rat(t, -1, 3).Round())
	assert.InDelta(t, 0.75, rat(t, 3, 4).Float64(), 1e-15)
}

func TestQuantize(t *testing.T) {
	r, err := arith.Quantize(0.333, 4)
	require.NoError(t, err)
	assert.Equal(t, "1/4", r.String())

	r, err = arith.Quantize(2.5, 2)
	require.NoError(t, err)
	assert.Equal(t, "5/2", r.String())

	_, err = arith.Quantize(1, 0)
	assert.ErrorIs(t, err, arith.ErrZeroDenominator)
}

func TestParseRational(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"3", "3", nil},
		{" -4/6 ", "-2/3", nil},
		{"4/-6", "-2/3", nil},
		{"10/5", "2", nil},
		{"", "", arith.ErrFormat},
		{"1/", "", arith.ErrFormat},
		{"a/2", "", arith.ErrFormat},
		{"1/2/3", "", arith.ErrFormat},
		{"1/0", "", arith.ErrZeroDenominator},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			r, err := arith.ParseRational(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.String())

			back, err := arith.ParseRational(r.String())
			require.NoError(t, err)
			assert.True(t, back.Equal(r))
		})
	}
}

// overflows reports whether f panics with an error wrapping ErrOverflow.
func overflows(f func()) (hit bool) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			hit = ok && errors.Is(err, arith.ErrOverflow)
		}
	}()
	f()

	return false
}

func TestRational_CompareNearLimits(t *testing.T) {
	const top = math.MaxInt64
	huge := arith.FromInt(1 << 62)

	assert.Equal(t, 1, huge.Compare(huge.Neg()))
	assert.Equal(t, -1, huge.Neg().Compare(huge))
	assert.Equal(t, 1, arith.FromInt(top).Compare(arith.FromInt(-1)))
	assert.Equal(t, -1, arith.FromInt(-top).Compare(arith.FromInt(top)))
	assert.Equal(t, 1, rat(t, top, top-1).Compare(arith.RationalOne))
	assert.Equal(t, -1, rat(t, top, top-1).Compare(rat(t, top-1, top-2)))
	assert.Equal(t, 1, rat(t, 1, top).Compare(rat(t, -1, top)))
	assert.Equal(t, 0, rat(t, top, 1).Compare(arith.FromInt(top)))
}

func TestRational_Overflow(t *testing.T) {
	const top = math.MaxInt64

	_, err := arith.NewRational(math.MinInt64, -1)
	assert.ErrorIs(t, err, arith.ErrOverflow)
	_, err = arith.NewRational(1, math.MinInt64)
	assert.ErrorIs(t, err, arith.ErrOverflow)
	assert.Equal(t, "-4611686018427387904", rat(t, math.MinInt64, 2).String())
	assert.Equal(t, "1", rat(t, math.MinInt64, math.MinInt64).String())
	assert.Equal(t, "-1/4611686018427387904", rat(t, 2, math.MinInt64).String())

	assert.True(t, overflows(func() { arith.FromInt(math.MinInt64) }))
	assert.True(t, overflows(func() { arith.FromInt(top).Add(arith.RationalOne) }))
	assert.True(t, overflows(func() { arith.FromInt(-top).Sub(arith.RationalOne) }))
	assert.True(t, overflows(func() { arith.FromInt(1 << 32).Mul(arith.FromInt(1 << 31)) }))
	assert.True(t, overflows(func() { rat(t, 1, top).Add(rat(t, 1, top-1)) }))

	// exact results that fit after reduction survive overflowing intermediates
	assert.True(t, rat(t, top, 2).Add(rat(t, top, 2)).Equal(arith.FromInt(top)))
	assert.True(t, arith.FromInt(1<<31).Mul(arith.FromInt(1<<31)).Equal(arith.FromInt(1<<62)))
	assert.Equal(t, int64(top), arith.FromInt(top).Round())
	assert.Equal(t, int64(1<<62), rat(t, top, 2).Round())
	assert.Equal(t, int64(-(1 << 62)), rat(t, -top, 2).Round())

	_, err = arith.ParseRational("-9223372036854775808")
	assert.ErrorIs(t, err, arith.ErrOverflow)
	r, err := arith.ParseRational("-9223372036854775808/4")
	require.NoError(t, err)
	assert.Equal(t, "-2305843009213693952", r.String())

	_, err = arith.Quantize(1e19, 1)
	assert.ErrorIs(t, err, arith.ErrOverflow)
	_, err = arith.Quantize(math.NaN(), 2)
	assert.ErrorIs(t, err, arith.ErrOverflow)
}

// samples spans small values, both int64 limits and random magnitudes.
func samples(t *testing.T) []arith.Rational {
	t.Helper()
	const top = math.MaxInt64
	pairs := [][2]int64{
		{0, 1}, {1, 1}, {-1, 1}, {1, 2}, {-1, 2}, {2, 4},
		{1 << 62, 1}, {-(1 << 62), 1}, {top, 1}, {-top, 1},
		{top, top - 1}, {top - 1, top}, {-(top - 1), top}, {1, top}, {-1, top},
		{1 << 62, 3}, {-(1 << 62), 3}, {math.MinInt64, 2}, {math.MinInt64 + 1, top - 2},
	}
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 64; i++ {
		n := rng.Int64() >> rng.IntN(63)
		d := rng.Int64N(top)>>rng.IntN(63) + 1
		if rng.IntN(2) == 0 {
			n = -n
		}
		pairs = append(pairs, [2]int64{n, d})
	}

	out := make([]arith.Rational, len(pairs))
	for i, p := range pairs {
		out[i] = rat(t, p[0], p[1])
	}

	return out
}

func exact(r arith.Rational) *big.Rat { return big.NewRat(r.Num(), r.Den()) }

// fits reports whether x is representable as a Rational.
func fits(x *big.Rat) bool {
	return x.Num().IsInt64() && x.Denom().IsInt64() && x.Num().Int64() != math.MinInt64
}

func TestRational_Properties(t *testing.T) {
	vals := samples(t)

	for _, a := range vals {
		assert.Greaterf(t, a.Den(), int64(0), "den of %s", a)
		assert.Equalf(t, int64(1), numtheory.Gcd(a.Num(), a.Den()), "gcd of %s", a)
		assert.NotEqualf(t, int64(math.MinInt64), a.Num(), "num of %s", a)
	}

	for _, a := range vals {
		for _, b := range vals {
			c := a.Compare(b)
			assert.Equalf(t, -c, b.Compare(a), "antisymmetry of %s, %s", a, b)
			assert.Equalf(t, exact(a).Cmp(exact(b)), c, "order of %s, %s", a, b)
			assert.Equalf(t, c == 0, a.Equal(b), "equality of %s, %s", a, b)

			if sum := new(big.Rat).Add(exact(a), exact(b)); fits(sum) {
				assert.Equalf(t, sum.RatString(), a.Add(b).String(), "%s + %s", a, b)
			} else {
				assert.Truef(t, overflows(func() { a.Add(b) }), "%s + %s overflows", a, b)
			}
			if prod := new(big.Rat).Mul(exact(a), exact(b)); fits(prod) {
				assert.Equalf(t, prod.RatString(), a.Mul(b).String(), "%s * %s", a, b)
			} else {
				assert.Truef(t, overflows(func() { a.Mul(b) }), "%s * %s overflows", a, b)
			}
		}
	}

	sorted := slices.Clone(vals)
	slices.SortFunc(sorted, arith.Rational.Compare)
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqualf(t, exact(sorted[i-1]).Cmp(exact(sorted[i])), 0, "%s before %s", sorted[i-1], sorted[i])
	}
}
