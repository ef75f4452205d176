// SPDX-License-Identifier: MIT
package arith_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/denota/arith"
)

const eps = 1e-12

func assertComplexNear(t *testing.T, want, got arith.Complex) {
	t.Helper()
	assert.InDeltaf(t, want.Re(), got.Re(), eps, "re of %s", got)
	assert.InDeltaf(t, want.Im(), got.Im(), eps, "im of %s", got)
}

func TestComplex_RingOps(t *testing.T) {
	a := arith.NewComplex(1, 2)
	b := arith.NewComplex(3, -1)

	assert.Equal(t, arith.NewComplex(4, 1), a.Add(b))
	assert.Equal(t, arith.NewComplex(-2, 3), a.Sub(b))
	assert.Equal(t, arith.NewComplex(5, 5), a.Mul(b))
	q, err := a.Mul(b).Quo(b)
	require.NoError(t, err)
	assertComplexNear(t, a, q)
	assert.Equal(t, arith.NewComplex(1, -2), a.Conj())
	assert.Equal(t, arith.NewComplex(-1, -2), a.Neg())

	_, err = a.Quo(arith.ComplexZero)
	assert.ErrorIs(t, err, arith.ErrDivisionByZero)
	_, err = arith.ComplexZero.Inv()
	assert.ErrorIs(t, err, arith.ErrDivisionByZero)
	_, err = arith.ComplexZero.Log()
	assert.ErrorIs(t, err, arith.ErrDivisionByZero)
}

func TestComplex_Polar(t *testing.T) {
	z := arith.NewComplex(0, 2)
	r, theta := z.Polar()
	assert.InDelta(t, 2, r, eps)
	assert.InDelta(t, math.Pi/2, theta, eps)
	assertComplexNear(t, z, arith.FromPolar(r, theta))
}

func TestComplex_Transcendental(t *testing.T) {
	// e^(iπ) = -1
	assertComplexNear(t, arith.NewComplex(-1, 0), arith.NewComplex(0, math.Pi).Exp())

	// sqrt(-4) = 2i
	assertComplexNear(t, arith.NewComplex(0, 2), arith.NewComplex(-4, 0).Sqrt())

	// log(e) = 1
	l, err := arith.NewComplex(math.E, 0).Log()
	require.NoError(t, err)
	assertComplexNear(t, arith.ComplexOne, l)

	// sin² + cos² = 1
	z := arith.NewComplex(0.3, 0.7)
	s, c := z.Sin(), z.Cos()
	assertComplexNear(t, arith.ComplexOne, s.Mul(s).Add(c.Mul(c)))

	// cosh² - sinh² = 1
	sh, ch := z.Sinh(), z.Cosh()
	assertComplexNear(t, arith.ComplexOne, ch.Mul(ch).Sub(sh.Mul(sh)))

	// tan = sin/cos
	ratio, err := s.Quo(c)
	require.NoError(t, err)
	assertComplexNear(t, ratio, z.Tan())

	// i^2 = -1
	assertComplexNear(t, arith.NewComplex(-1, 0), arith.ComplexI.Pow(arith.NewComplex(2, 0)))
}

func TestComplex_CompareLexicographic(t *testing.T) {
	assert.Equal(t, -1, arith.NewComplex(1, 100).Compare(arith.NewComplex(2, -100)))
	assert.Equal(t, -1, arith.NewComplex(1, -1).Compare(arith.NewComplex(1, 0)))
	assert.Equal(t, 0, arith.NewComplex(1, 1).Compare(arith.NewComplex(1, 1)))
	// Larger modulus but smaller real part still sorts first.
	assert.Equal(t, -1, arith.NewComplex(-10, 0).Compare(arith.NewComplex(0, 0)))
}

func TestComplex_StringRoundTrip(t *testing.T) {
	values := []arith.Complex{
		arith.NewComplex(1, 2),
		arith.NewComplex(1, -2),
		arith.NewComplex(-0.5, 0),
		arith.NewComplex(0, math.Copysign(0, -1)),
		arith.NewComplex(1e6, 2.5e-7),
	}
	for _, z := range values {
		back, err := arith.ParseComplex(z.String())
		require.NoErrorf(t, err, "parse %q", z.String())
		assert.Truef(t, back.Equal(z), "%s != %s", back, z)
	}
	assert.Equal(t, "1-2i", arith.NewComplex(1, -2).String())

	z, err := arith.ParseComplex("3i")
	require.NoError(t, err)
	assert.Equal(t, arith.NewComplex(0, 3), z)

	_, err = arith.ParseComplex("1+")
	assert.ErrorIs(t, err, arith.ErrFormat)
}
