// SPDX-License-Identifier: MIT
//
// File: complex.go
// Role: Complex value type in rectangular form.
// Policy:
//   - Transcendental functions go through math/cmplx (complex-exponential identities).
//   - Compare is lexicographic (re, then im) and exists for canonical ordering only.

package arith

import (
	"cmp"
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

// Complex is re + im·i.
type Complex struct {
	re, im float64
}

// Common constants.
var (
	ComplexZero = Complex{}
	ComplexOne  = Complex{re: 1}
	ComplexI    = Complex{im: 1}
)

// NewComplex returns re + im·i.
func NewComplex(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// FromPolar returns r·e^(iθ).
func FromPolar(r, theta float64) Complex {
	return fromC128(cmplx.Rect(r, theta))
}

func fromC128(c complex128) Complex {
	return Complex{re: real(c), im: imag(c)}
}

// C128 returns the value as a complex128.
func (z Complex) C128() complex128 { return complex(z.re, z.im) }

// Re returns the real part.
func (z Complex) Re() float64 { return z.re }

// Im returns the imaginary part.
func (z Complex) Im() float64 { return z.im }

// Add returns z + w.
func (z Complex) Add(w Complex) Complex { return Complex{re: z.re + w.re, im: z.im + w.im} }

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex { return Complex{re: z.re - w.re, im: z.im - w.im} }

// Mul returns z * w.
func (z Complex) Mul(w Complex) Complex {
	return Complex{re: z.re*w.re - z.im*w.im, im: z.re*w.im + z.im*w.re}
}

// Quo returns z / w.
// Returns ErrDivisionByZero if w is zero.
func (z Complex) Quo(w Complex) (Complex, error) {
	if w.IsZero() {
		return Complex{}, fmt.Errorf("Quo(%s, 0): %w", z, ErrDivisionByZero)
	}

	return fromC128(z.C128() / w.C128()), nil
}

// Inv returns 1/z.
// Returns ErrDivisionByZero if z is zero.
func (z Complex) Inv() (Complex, error) {
	return ComplexOne.Quo(z)
}

// Neg returns -z.
func (z Complex) Neg() Complex { return Complex{re: -z.re, im: -z.im} }

// Conj returns the complex conjugate.
func (z Complex) Conj() Complex { return Complex{re: z.re, im: -z.im} }

// Abs returns the modulus |z|.
func (z Complex) Abs() float64 { return math.Hypot(z.re, z.im) }

// Arg returns the argument in (-π, π].
func (z Complex) Arg() float64 { return math.Atan2(z.im, z.re) }

// Polar returns (|z|, arg z).
func (z Complex) Polar() (r, theta float64) { return z.Abs(), z.Arg() }

// Sqrt returns the principal square root.
func (z Complex) Sqrt() Complex { return fromC128(cmplx.Sqrt(z.C128())) }

// Exp returns e^z.
func (z Complex) Exp() Complex { return fromC128(cmplx.Exp(z.C128())) }

// Log returns the principal natural logarithm.
// Returns ErrDivisionByZero for z == 0.
func (z Complex) Log() (Complex, error) {
	if z.IsZero() {
		return Complex{}, fmt.Errorf("Log(0): %w", ErrDivisionByZero)
	}

	return fromC128(cmplx.Log(z.C128())), nil
}

// Pow returns z^w (principal branch); 0^w is 0 for w != 0 and 1 for w == 0.
func (z Complex) Pow(w Complex) Complex { return fromC128(cmplx.Pow(z.C128(), w.C128())) }

// Sin returns sin z.
func (z Complex) Sin() Complex { return fromC128(cmplx.Sin(z.C128())) }

// Cos returns cos z.
func (z Complex) Cos() Complex { return fromC128(cmplx.Cos(z.C128())) }

// Tan returns tan z.
func (z Complex) Tan() Complex { return fromC128(cmplx.Tan(z.C128())) }

// Sinh returns sinh z.
func (z Complex) Sinh() Complex { return fromC128(cmplx.Sinh(z.C128())) }

// Cosh returns cosh z.
func (z Complex) Cosh() Complex { return fromC128(cmplx.Cosh(z.C128())) }

// IsZero reports z == 0.
func (z Complex) IsZero() bool { return z.re == 0 && z.im == 0 }

// IsOne reports z == 1.
func (z Complex) IsOne() bool { return z.re == 1 && z.im == 0 }

// Equal reports exact equality of both parts, with NaN equal to NaN so that
// Equal agrees with Compare.
func (z Complex) Equal(w Complex) bool { return z.Compare(w) == 0 }

// Compare orders lexicographically by real part, then imaginary part.
// Not compatible with the field structure.
func (z Complex) Compare(w Complex) int {
	if c := compareFloat(z.re, w.re); c != 0 {
		return c
	}

	return compareFloat(z.im, w.im)
}

// compareFloat orders NaN before every number; NaN equals only NaN.
func compareFloat(a, b float64) int { return cmp.Compare(a, b) }

// String renders "a+bi" or "a-bi".
func (z Complex) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(z.re, 'g', -1, 64))
	if !math.Signbit(z.im) || math.IsNaN(z.im) {
		b.WriteByte('+')
	}
	b.WriteString(strconv.FormatFloat(z.im, 'g', -1, 64))
	b.WriteByte('i')

	return b.String()
}

// ParseComplex parses the output of String, and also plain reals ("2.5")
// and pure imaginaries ("3i").
// Returns ErrFormat for malformed text.
func ParseComplex(s string) (Complex, error) {
	c, err := strconv.ParseComplex(strings.TrimSpace(s), 128)
	if err != nil {
		return Complex{}, fmt.Errorf("ParseComplex(%q): %w", s, ErrFormat)
	}

	return fromC128(c), nil
}
