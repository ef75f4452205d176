// SPDX-License-Identifier: MIT
package numtheory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/denota/numtheory"
)

func TestGcd(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{48, 18, 6},
		{18, 48, 6},
		{-48, 18, 6},
		{0, 7, 7},
		{0, 0, 0},
		{17, 5, 1},
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.want, numtheory.Gcd(tc.a, tc.b), "Gcd(%d,%d)", tc.a, tc.b)
	}
}

func TestExtendedGcd_Bezout(t *testing.T) {
	pairs := [][2]int64{{240, 46}, {46, 240}, {-35, 15}, {7, 0}, {0, 9}, {1, 1}, {99991, 65537}}
	for _, p := range pairs {
		g, x, y := numtheory.ExtendedGcd(p[0], p[1])
		assert.Equal(t, numtheory.Gcd(p[0], p[1]), g)
		assert.Equalf(t, g, p[0]*x+p[1]*y, "bezout for %v", p)
	}
}

func TestLcm(t *testing.T) {
	assert.Equal(t, int64(36), numtheory.Lcm(12, 18))
	assert.Equal(t, int64(0), numtheory.Lcm(0, 18))
	assert.Equal(t, int64(36), numtheory.Lcm(-12, 18))
}

func TestMod(t *testing.T) {
	r, err := numtheory.Mod(-7, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), r)

	r, err = numtheory.Mod(7, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), r)

	_, err = numtheory.Mod(3, 0)
	assert.ErrorIs(t, err, numtheory.ErrBadModulus)
}

func TestInverseMod(t *testing.T) {
	inv, err := numtheory.InverseMod(3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5), inv)

	inv, err = numtheory.InverseMod(-3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inv)

	_, err = numtheory.InverseMod(4, 8)
	assert.ErrorIs(t, err, numtheory.ErrZeroDivisor)
}

func TestDivideMod(t *testing.T) {
	q, err := numtheory.DivideMod(4, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(6), q) // 3*6 = 18 = 4 mod 7

	_, err = numtheory.DivideMod(1, 6, 9)
	assert.ErrorIs(t, err, numtheory.ErrZeroDivisor)
}

func TestPowerMod(t *testing.T) {
	tests := []struct {
		name      string
		a, e, n   int64
		want      int64
		wantErrIs error
	}{
		{"small", 2, 10, 1000, 24, nil},
		{"zero exponent", 5, 0, 13, 1, nil},
		{"modulus one", 5, 3, 1, 0, nil},
		{"negative exponent", 3, -1, 7, 5, nil},
		{"negative exponent squared", 3, -2, 7, 4, nil},
		{"large modulus", 2, 62, 9223372036854775783, 4611686018427387904, nil},
		{"not invertible", 2, -1, 8, 0, numtheory.ErrZeroDivisor},
		{"bad modulus", 2, 1, 0, 0, numtheory.ErrBadModulus},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := numtheory.PowerMod(tc.a, tc.e, tc.n)
			if tc.wantErrIs != nil {
				require.ErrorIs(t, err, tc.wantErrIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsPrime(t *testing.T) {
	assert.True(t, numtheory.IsPrime(97))
	assert.False(t, numtheory.IsPrime(91))
	assert.True(t, numtheory.IsPrime(2))
	assert.False(t, numtheory.IsPrime(1))
	assert.False(t, numtheory.IsPrime(0))
	assert.False(t, numtheory.IsPrime(-7))
	assert.True(t, numtheory.IsPrime(65521)) // largest prime in the table
	assert.True(t, numtheory.IsPrime(65537)) // first prime beyond the table
	assert.False(t, numtheory.IsPrime(65539*65537))
	assert.True(t, numtheory.IsPrime(2147483647))  // 2^31-1
	assert.False(t, numtheory.IsPrime(4294967297)) // 641 * 6700417
	assert.True(t, numtheory.IsPrime(4294967311))  // first prime above 2^32
}

func TestPrimes_TableIsCopy(t *testing.T) {
	ps := numtheory.Primes()
	require.Len(t, ps, 6542)
	assert.Equal(t, int64(2), ps[0])
	assert.Equal(t, int64(65521), ps[len(ps)-1])

	ps[0] = 4
	assert.True(t, numtheory.IsPrime(2))
}
