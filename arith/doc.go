// Package arith implements the exact numeric value types that back simple
// coordinates: reduced rationals over int64 and rectangular complex numbers.
//
// Rational keeps the invariant den > 0 and gcd(|num|, den) = 1 after every
// operation. Both numerator and denominator are int64, so values are exact but
// bounded: the numerator never equals math.MinInt64. Intermediate sums and
// products are formed with overflow checks and fall back to math/big, so a
// result that fits after reduction is always exact. A result that does not
// fit is an error from the constructors and a panic wrapping ErrOverflow from
// Add, Sub and Mul. Compare uses 128-bit cross products and never overflows.
//
// Complex offers the ring operations, polar conversion and the usual
// transcendental functions. Its Compare is lexicographic (real part, then
// imaginary part). That order is not compatible with the field structure and
// is only meant for canonical ordering of values inside sets.
//
// Errors:
//
//	ErrZeroDenominator - a rational was built with denominator 0.
//	ErrDivisionByZero  - quotient or inverse of a zero value.
//	ErrFormat          - malformed textual input.
//	ErrOverflow        - a reduced rational does not fit in int64.
package arith
