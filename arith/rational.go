// SPDX-License-Identifier: MIT
//
// File: rational.go
// Role: Rational value type, always reduced.
// Policy:
//   - Every constructor and operation returns a reduced value (reduce()).
//   - The zero value of Rational is 0/1.
//   - Division by zero is reported, never panics.
//   - Numerators lie in [-MaxInt64, MaxInt64], so Neg and Abs are total.
//   - Constructors report values outside that range as ErrOverflow;
//     Add, Sub and Mul panic with an error wrapping ErrOverflow.
//   - Compare is exact for every pair of values.

package arith

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/denota/numtheory"
)

// Rational is an exact fraction num/den with den > 0 and gcd(|num|, den) = 1.
type Rational struct {
	num int64
	den int64 // 0 only in the zero value, read as 1
}

// Common constants.
var (
	RationalZero = Rational{num: 0, den: 1}
	RationalOne  = Rational{num: 1, den: 1}
)

// NewRational returns n/d reduced.
// Returns ErrZeroDenominator if d == 0.
func NewRational(n, d int64) (Rational, error) {
	if d == 0 {
		return Rational{}, fmt.Errorf("NewRational(%d, 0): %w", n, ErrZeroDenominator)
	}

	r, err := reduce(n, d)
	if err != nil {
		return Rational{}, fmt.Errorf("NewRational(%d, %d): %w", n, d, err)
	}

	return r, nil
}

// FromInt returns n/1.
// Panics with ErrOverflow for math.MinInt64, whose negation is not representable.
func FromInt(n int64) Rational {
	if n == math.MinInt64 {
		panic(fmt.Errorf("FromInt(%d): %w", n, ErrOverflow))
	}

	return Rational{num: n, den: 1}
}

// Quantize rounds v to the nearest multiple of 1/quant:
// round(v*quant)/quant, reduced.
// Returns ErrZeroDenominator if quant == 0.
func Quantize(v float64, quant int64) (Rational, error) {
	if quant == 0 {
		return Rational{}, fmt.Errorf("Quantize(%g, 0): %w", v, ErrZeroDenominator)
	}

	x := math.Round(v * float64(quant))
	if !(x > math.MinInt64 && x < math.MaxInt64) {
		return Rational{}, fmt.Errorf("Quantize(%g, %d): %w", v, quant, ErrOverflow)
	}
	r, err := reduce(int64(x), quant)
	if err != nil {
		return Rational{}, fmt.Errorf("Quantize(%g, %d): %w", v, quant, err)
	}

	return r, nil
}

// reduce normalises n/d, d != 0.
// Returns ErrOverflow when the reduced value is not representable.
func reduce(n, d int64) (Rational, error) {
	if n == math.MinInt64 || d == math.MinInt64 {
		return fromBig(big.NewRat(n, d))
	}
	if d < 0 {
		n, d = -n, -d
	}
	if g := numtheory.Gcd(n, d); g > 1 {
		n, d = n/g, d/g
	}

	return Rational{num: n, den: d}, nil
}

// Num returns the numerator.
func (r Rational) Num() int64 { return r.num }

// Den returns the denominator, always > 0.
func (r Rational) Den() int64 {
	if r.den == 0 {
		return 1
	}

	return r.den
}

// Add returns r + s.
// Panics with ErrOverflow if the reduced sum is not representable.
func (r Rational) Add(s Rational) Rational {
	rd, sd := r.Den(), s.Den()
	g := numtheory.Gcd(rd, sd)
	x, ok1 := mulInt64(r.num, sd/g)
	y, ok2 := mulInt64(s.num, rd/g)
	n, ok3 := addInt64(x, y)
	d, ok4 := mulInt64(rd/g, sd)
	if ok1 && ok2 && ok3 && ok4 {
		return must(reduce(n, d))
	}

	return must(fromBig(new(big.Rat).Add(r.toBig(), s.toBig())))
}

// AddInt returns r + n.
func (r Rational) AddInt(n int64) Rational {
	return r.Add(FromInt(n))
}

// Sub returns r - s.
func (r Rational) Sub(s Rational) Rational {
	return r.Add(s.Neg())
}

// Mul returns r * s. Factors are cross-reduced first.
// Panics with ErrOverflow if the product is not representable.
func (r Rational) Mul(s Rational) Rational {
	g1 := numtheory.Gcd(r.num, s.Den())
	g2 := numtheory.Gcd(s.num, r.Den())
	n, ok1 := mulInt64(r.num/g1, s.num/g2)
	d, ok2 := mulInt64(r.Den()/g2, s.Den()/g1)
	if ok1 && ok2 {
		return must(reduce(n, d))
	}

	return must(fromBig(new(big.Rat).Mul(r.toBig(), s.toBig())))
}

// MulInt returns r * n.
func (r Rational) MulInt(n int64) Rational {
	return r.Mul(FromInt(n))
}

// Quo returns r / s.
// Returns ErrDivisionByZero if s is zero.
func (r Rational) Quo(s Rational) (Rational, error) {
	inv, err := s.Inv()
	if err != nil {
		return Rational{}, fmt.Errorf("Quo(%s, %s): %w", r, s, ErrDivisionByZero)
	}

	return r.Mul(inv), nil
}

// QuoInt returns r / n.
// Returns ErrDivisionByZero if n == 0.
func (r Rational) QuoInt(n int64) (Rational, error) {
	return r.Quo(FromInt(n))
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: -r.num, den: r.Den()}
}

// Inv returns 1/r.
// Returns ErrDivisionByZero if r is zero.
func (r Rational) Inv() (Rational, error) {
	if r.num == 0 {
		return Rational{}, fmt.Errorf("Inv(0): %w", ErrDivisionByZero)
	}

	return must(reduce(r.Den(), r.num)), nil
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	if r.num < 0 {
		return r.Neg()
	}

	return Rational{num: r.num, den: r.Den()}
}

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	}

	return 0
}

// IsZero reports r == 0.
func (r Rational) IsZero() bool { return r.num == 0 }

// IsOne reports r == 1.
func (r Rational) IsOne() bool { return r.num == 1 && r.Den() == 1 }

// IsInt reports whether r has denominator 1.
func (r Rational) IsInt() bool { return r.Den() == 1 }

// Compare returns -1, 0 or +1 as r is less than, equal to or greater than s.
// The cross products are formed in 128 bits, so the order is exact and total.
func (r Rational) Compare(s Rational) int {
	if r.Den() == s.Den() {
		return compareInt(r.num, s.num)
	}
	ahi, alo := mul128(r.num, s.Den())
	bhi, blo := mul128(s.num, r.Den())

	return cmp128(ahi, alo, bhi, blo)
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// Equal reports r == s. Reduced form makes this a field comparison.
func (r Rational) Equal(s Rational) bool {
	return r.num == s.num && r.Den() == s.Den()
}

// Float64 returns the nearest float64.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

// Floor returns the greatest integer <= r.
func (r Rational) Floor() int64 {
	q := r.num / r.Den()
	if r.num < 0 && r.num%r.Den() != 0 {
		q--
	}

	return q
}

// Ceil returns the least integer >= r.
func (r Rational) Ceil() int64 {
	q := r.num / r.Den()
	if r.num > 0 && r.num%r.Den() != 0 {
		q++
	}

	return q
}

// Round returns the nearest integer, halves rounded away from zero.
func (r Rational) Round() int64 {
	if r.num < 0 {
		return -r.Neg().Round()
	}
	d := r.Den()
	q, rem := r.num/d, r.num%d
	if rem >= d-rem && rem != 0 {
		q++
	}

	return q
}

// String renders "n" for integers and "n/d" otherwise.
func (r Rational) String() string {
	if r.Den() == 1 {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den, 10)
}

// ParseRational parses "n" or "n/d" (surrounding whitespace allowed).
// Returns ErrFormat for malformed text and ErrZeroDenominator for "n/0".
func ParseRational(s string) (Rational, error) {
	t := strings.TrimSpace(s)
	numText, denText, hasSlash := strings.Cut(t, "/")
	n, err := strconv.ParseInt(strings.TrimSpace(numText), 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("ParseRational(%q): %w", s, ErrFormat)
	}
	d := int64(1)
	if hasSlash {
		if d, err = strconv.ParseInt(strings.TrimSpace(denText), 10, 64); err != nil {
			return Rational{}, fmt.Errorf("ParseRational(%q): %w", s, ErrFormat)
		}
	}
	if d == 0 {
		return Rational{}, fmt.Errorf("ParseRational(%q): %w", s, ErrZeroDenominator)
	}
	r, err := reduce(n, d)
	if err != nil {
		return Rational{}, fmt.Errorf("ParseRational(%q): %w", s, err)
	}

	return r, nil
}
