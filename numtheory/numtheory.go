// SPDX-License-Identifier: MIT
//
// File: numtheory.go
// Role: gcd family and modular arithmetic on int64.
// Policy:
//   - Results are always normalised (gcd >= 0, mod in [0, n)).
//   - Modular products go through 128-bit intermediates (math/bits), so
//     moduli up to MaxInt64 never overflow.

package numtheory

import (
	"fmt"
	"math/bits"
)

// Gcd returns the greatest common divisor of a and b, always >= 0.
// Gcd(0, 0) is 0.
func Gcd(a, b int64) int64 {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// ExtendedGcd returns g = Gcd(a, b) together with Bézout coefficients x, y
// such that a*x + b*y = g.
//
// Complexity: O(log min(|a|, |b|)).
func ExtendedGcd(a, b int64) (g, x, y int64) {
	// Iterative form keeps the stack flat for large inputs.
	oldR, r := a, b
	oldS, s := int64(1), int64(0)
	oldT, t := int64(0), int64(1)
	var q int64
	for r != 0 {
		q = oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	if oldR < 0 {
		oldR, oldS, oldT = -oldR, -oldS, -oldT
	}

	return oldR, oldS, oldT
}

// Lcm returns the least common multiple of a and b, 0 if either is 0.
func Lcm(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}

	return abs(a/Gcd(a, b)) * abs(b)
}

// Mod returns a mod n in [0, n).
// Returns ErrBadModulus when n <= 0.
func Mod(a, n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("Mod(%d, %d): %w", a, n, ErrBadModulus)
	}

	return mod(a, n), nil
}

// InverseMod returns b in [0, n) with a*b ≡ 1 (mod n).
// Returns ErrZeroDivisor when gcd(a, n) != 1 and ErrBadModulus when n <= 0.
func InverseMod(a, n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("InverseMod(%d, %d): %w", a, n, ErrBadModulus)
	}
	g, x, _ := ExtendedGcd(mod(a, n), n)
	if g != 1 {
		return 0, fmt.Errorf("InverseMod(%d, %d): %w", a, n, ErrZeroDivisor)
	}

	return mod(x, n), nil
}

// DivideMod returns a/b modulo n, that is a * InverseMod(b, n) mod n.
func DivideMod(a, b, n int64) (int64, error) {
	inv, err := InverseMod(b, n)
	if err != nil {
		return 0, fmt.Errorf("DivideMod: %w", err)
	}

	return MulMod(mod(a, n), inv, n), nil
}

// PowerMod returns a^e mod n by square-and-multiply.
// A negative exponent computes InverseMod(a, n)^(-e) and therefore fails with
// ErrZeroDivisor when a is not invertible.
//
// Complexity: O(log |e|).
func PowerMod(a, e, n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("PowerMod(%d, %d, %d): %w", a, e, n, ErrBadModulus)
	}
	base := mod(a, n)
	if e < 0 {
		inv, err := InverseMod(base, n)
		if err != nil {
			return 0, fmt.Errorf("PowerMod: %w", err)
		}
		base = inv
		e = -e
	}
	result := mod(1, n) // 0 when n == 1
	for e > 0 {
		if e&1 == 1 {
			result = MulMod(result, base, n)
		}
		base = MulMod(base, base, n)
		e >>= 1
	}

	return result, nil
}

// MulMod returns a*b mod n for a, b already reduced into [0, n) and n > 0.
func MulMod(a, b, n int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))

	return int64(bits.Rem64(hi, lo, uint64(n)))
}

// mod assumes n > 0.
func mod(a, n int64) int64 {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}

	return a
}
