// SPDX-License-Identifier: MIT
//
// File: overflow.go
// Role: checked int64 primitives behind Rational.
// Policy:
//   - Fast paths use 128-bit products from math/bits.
//   - Results that do not fit are recomputed exactly with math/big and either
//     narrowed back or reported as ErrOverflow.

package arith

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// mul128 returns the signed 128-bit product a*b as (hi, lo).
func mul128(a, b int64) (hi int64, lo uint64) {
	h, l := bits.Mul64(uint64(a), uint64(b))
	// two's complement correction for negative factors
	hi = int64(h) - (a>>63)&b - (b>>63)&a

	return hi, l
}

// cmp128 compares two signed 128-bit values.
func cmp128(ahi int64, alo uint64, bhi int64, blo uint64) int {
	switch {
	case ahi < bhi:
		return -1
	case ahi > bhi:
		return 1
	case alo < blo:
		return -1
	case alo > blo:
		return 1
	}

	return 0
}

// mulInt64 returns a*b and whether the product fits in int64.
func mulInt64(a, b int64) (int64, bool) {
	hi, lo := mul128(a, b)

	return int64(lo), hi == int64(lo)>>63
}

// addInt64 returns a+b and whether the sum fits in int64.
func addInt64(a, b int64) (int64, bool) {
	c := a + b

	return c, (a^c)&(b^c) >= 0
}

// toBig returns r as an exact big.Rat.
func (r Rational) toBig() *big.Rat {
	return big.NewRat(r.num, r.Den())
}

// fromBig narrows an exact value back to a Rational.
// Returns ErrOverflow when either part leaves the representable range.
func fromBig(x *big.Rat) (Rational, error) {
	n, d := x.Num(), x.Denom()
	if !n.IsInt64() || !d.IsInt64() || n.Int64() == math.MinInt64 {
		return Rational{}, fmt.Errorf("%s: %w", x.RatString(), ErrOverflow)
	}

	return Rational{num: n.Int64(), den: d.Int64()}, nil
}

// must unwraps a result whose only failure mode is overflow.
func must(r Rational, err error) Rational {
	if err != nil {
		panic(err)
	}

	return r
}
