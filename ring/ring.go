// SPDX-License-Identifier: MIT
//
// File: ring.go
// Role: Ring[T] capability interface and the concrete coefficient rings.

package ring

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/denota/arith"
	"github.com/katalvlaran/denota/numtheory"
)

// Ring is the capability set a coefficient domain T must provide.
// Implementations are immutable values; every method is pure.
type Ring[T any] interface {
	// Name identifies the ring, e.g. "Z", "Q", "Z7".
	Name() string

	Zero() T
	One() T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Neg(a T) T

	Equal(a, b T) bool
	// Compare returns -1, 0, +1; it is a total order used for canonical
	// sorting, not necessarily compatible with the ring structure.
	Compare(a, b T) int
	IsZero(a T) bool
	IsOne(a T) bool

	// ToReal projects a coefficient onto the real line.
	ToReal(a T) float64

	// Format and Parse are exact inverses.
	Format(a T) string
	Parse(s string) (T, error)
}

// Integers is the ring Z over int64.
// Add, Sub, Mul and Neg panic with an error wrapping arith.ErrOverflow
// instead of wrapping around.
type Integers struct{}

var _ Ring[int64] = Integers{}

func (Integers) Name() string                  { return "Z" }
func (Integers) Zero() int64                   { return 0 }
func (Integers) One() int64                    { return 1 }
func (Integers) Add(a, b int64) int64          { return addZ(a, b) }
func (Integers) Sub(a, b int64) int64          { return subZ(a, b) }
func (Integers) Mul(a, b int64) int64          { return mulZ(a, b) }
func (Integers) Neg(a int64) int64             { return subZ(0, a) }
func (Integers) Equal(a, b int64) bool         { return a == b }
func (Integers) Compare(a, b int64) int        { return compareInt(a, b) }
func (Integers) IsZero(a int64) bool           { return a == 0 }
func (Integers) IsOne(a int64) bool            { return a == 1 }
func (Integers) ToReal(a int64) float64        { return float64(a) }
func (Integers) Format(a int64) string         { return strconv.FormatInt(a, 10) }
func (Integers) Parse(s string) (int64, error) { return parseInt(s) }

// Rationals is the field Q over arith.Rational.
type Rationals struct{}

var _ Ring[arith.Rational] = Rationals{}

func (Rationals) Name() string                           { return "Q" }
func (Rationals) Zero() arith.Rational                   { return arith.RationalZero }
func (Rationals) One() arith.Rational                    { return arith.RationalOne }
func (Rationals) Add(a, b arith.Rational) arith.Rational { return a.Add(b) }
func (Rationals) Sub(a, b arith.Rational) arith.Rational { return a.Sub(b) }
func (Rationals) Mul(a, b arith.Rational) arith.Rational { return a.Mul(b) }
func (Rationals) Neg(a arith.Rational) arith.Rational    { return a.Neg() }
func (Rationals) Equal(a, b arith.Rational) bool         { return a.Equal(b) }
func (Rationals) Compare(a, b arith.Rational) int        { return a.Compare(b) }
func (Rationals) IsZero(a arith.Rational) bool           { return a.IsZero() }
func (Rationals) IsOne(a arith.Rational) bool            { return a.IsOne() }
func (Rationals) ToReal(a arith.Rational) float64        { return a.Float64() }
func (Rationals) Format(a arith.Rational) string         { return a.String() }

func (Rationals) Parse(s string) (arith.Rational, error) {
	r, err := arith.ParseRational(s)
	if err != nil {
		return arith.Rational{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return r, nil
}

// Reals is the field R over float64.
type Reals struct{}

var _ Ring[float64] = Reals{}

func (Reals) Name() string             { return "R" }
func (Reals) Zero() float64            { return 0 }
func (Reals) One() float64             { return 1 }
func (Reals) Add(a, b float64) float64 { return a + b }
func (Reals) Sub(a, b float64) float64 { return a - b }
func (Reals) Mul(a, b float64) float64 { return a * b }
func (Reals) Neg(a float64) float64    { return -a }
func (Reals) Equal(a, b float64) bool  { return compareFloat(a, b) == 0 }
func (Reals) Compare(a, b float64) int { return compareFloat(a, b) }
func (Reals) IsZero(a float64) bool    { return a == 0 }
func (Reals) IsOne(a float64) bool     { return a == 1 }
func (Reals) ToReal(a float64) float64 { return a }
func (Reals) Format(a float64) string  { return strconv.FormatFloat(a, 'g', -1, 64) }

func (Reals) Parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("Reals.Parse(%q): %w", s, ErrFormat)
	}

	return v, nil
}

// Complexes is the field C over arith.Complex. ToReal projects onto the real
// part; Compare is the lexicographic order of arith.Complex.
type Complexes struct{}

var _ Ring[arith.Complex] = Complexes{}

func (Complexes) Name() string                         { return "C" }
func (Complexes) Zero() arith.Complex                  { return arith.ComplexZero }
func (Complexes) One() arith.Complex                   { return arith.ComplexOne }
func (Complexes) Add(a, b arith.Complex) arith.Complex { return a.Add(b) }
func (Complexes) Sub(a, b arith.Complex) arith.Complex { return a.Sub(b) }
func (Complexes) Mul(a, b arith.Complex) arith.Complex { return a.Mul(b) }
func (Complexes) Neg(a arith.Complex) arith.Complex    { return a.Neg() }
func (Complexes) Equal(a, b arith.Complex) bool        { return a.Equal(b) }
func (Complexes) Compare(a, b arith.Complex) int       { return a.Compare(b) }
func (Complexes) IsZero(a arith.Complex) bool          { return a.IsZero() }
func (Complexes) IsOne(a arith.Complex) bool           { return a.IsOne() }
func (Complexes) ToReal(a arith.Complex) float64       { return a.Re() }
func (Complexes) Format(a arith.Complex) string        { return a.String() }

func (Complexes) Parse(s string) (arith.Complex, error) {
	c, err := arith.ParseComplex(s)
	if err != nil {
		return arith.Complex{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return c, nil
}

// Modular is the ring Z/nZ with representatives in [0, n).
type Modular struct {
	n int64
}

var _ Ring[int64] = Modular{}

// NewModular returns Z/nZ.
// Returns ErrBadModulus if n < 2.
func NewModular(n int64) (Modular, error) {
	if n < 2 {
		return Modular{}, fmt.Errorf("NewModular(%d): %w", n, ErrBadModulus)
	}

	return Modular{n: n}, nil
}

// Modulus returns n.
func (m Modular) Modulus() int64 { return m.n }

func (m Modular) Name() string { return "Z" + strconv.FormatInt(m.n, 10) }
func (m Modular) Zero() int64  { return 0 }
func (m Modular) One() int64   { return 1 % m.n }

// Reduce maps any integer to its representative in [0, n).
func (m Modular) Reduce(a int64) int64 {
	r, _ := numtheory.Mod(a, m.n) // n >= 2 by construction

	return r
}

func (m Modular) Add(a, b int64) int64 {
	return int64((uint64(m.Reduce(a)) + uint64(m.Reduce(b))) % uint64(m.n))
}

func (m Modular) Sub(a, b int64) int64 {
	return m.Add(a, m.Neg(b))
}

func (m Modular) Mul(a, b int64) int64 {
	return numtheory.MulMod(m.Reduce(a), m.Reduce(b), m.n)
}

func (m Modular) Neg(a int64) int64 {
	r := m.Reduce(a)
	if r == 0 {
		return 0
	}

	return m.n - r
}

func (m Modular) Equal(a, b int64) bool  { return m.Reduce(a) == m.Reduce(b) }
func (m Modular) Compare(a, b int64) int { return compareInt(m.Reduce(a), m.Reduce(b)) }
func (m Modular) IsZero(a int64) bool    { return m.Reduce(a) == 0 }
func (m Modular) IsOne(a int64) bool     { return m.Reduce(a) == 1 }
func (m Modular) ToReal(a int64) float64 { return float64(m.Reduce(a)) }
func (m Modular) Format(a int64) string  { return strconv.FormatInt(m.Reduce(a), 10) }

func (m Modular) Parse(s string) (int64, error) {
	v, err := parseInt(s)
	if err != nil {
		return 0, err
	}

	return m.Reduce(v), nil
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse integer %q: %w", s, ErrFormat)
	}

	return v, nil
}

func addZ(a, b int64) int64 {
	c := a + b
	if (a^c)&(b^c) < 0 {
		panic(fmt.Errorf("Z: %d + %d: %w", a, b, arith.ErrOverflow))
	}

	return c
}

func subZ(a, b int64) int64 {
	c := a - b
	if (a^b)&(a^c) < 0 {
		panic(fmt.Errorf("Z: %d - %d: %w", a, b, arith.ErrOverflow))
	}

	return c
}

func mulZ(a, b int64) int64 {
	c := a * b
	if a != 0 && (c/a != b || (a == -1 && b == math.MinInt64)) {
		panic(fmt.Errorf("Z: %d * %d: %w", a, b, arith.ErrOverflow))
	}

	return c
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

// compareFloat is a total order: NaN sorts before every number and equals
// only NaN; -0 and +0 are equal.
func compareFloat(a, b float64) int { return cmp.Compare(a, b) }
