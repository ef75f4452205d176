// SPDX-License-Identifier: MIT
//
// File: number.go
// Role: NumberModule[T], a ring regarded as a module over itself.

package module

import (
	"fmt"
	"math"

	"github.com/katalvlaran/denota/arith"
	"github.com/katalvlaran/denota/ring"
)

// NumberModule is the module of a coefficient ring over itself.
type NumberModule[T any] struct {
	name string
	ring ring.Ring[T]
	pos  position
}

// Built-in number modules.
var (
	Z = &NumberModule[int64]{name: "Z", ring: ring.Integers{}, pos: position{family: numberFamily, level: levelZ}}
	Q = &NumberModule[arith.Rational]{name: "Q", ring: ring.Rationals{}, pos: position{family: numberFamily, level: levelQ}}
	R = &NumberModule[float64]{name: "R", ring: ring.Reals{}, pos: position{family: numberFamily, level: levelR}}
	C = &NumberModule[arith.Complex]{name: "C", ring: ring.Complexes{}, pos: position{family: numberFamily, level: levelC}}
)

// Null is the default address of denotators built without an explicit one.
var Null Module = Z

// Zn returns the module Z/nZ.
// Returns ring.ErrBadModulus for n < 2.
func Zn(n int64) (*NumberModule[int64], error) {
	r, err := ring.NewModular(n)
	if err != nil {
		return nil, fmt.Errorf("Zn: %w", err)
	}

	return &NumberModule[int64]{name: r.Name(), ring: r, pos: position{family: numberFamily, level: levelZ, modulus: n}}, nil
}

// Name returns the module name.
func (m *NumberModule[T]) Name() string { return m.name }

// String returns the module name.
func (m *NumberModule[T]) String() string { return m.name }

// Ring returns the coefficient ring.
func (m *NumberModule[T]) Ring() ring.Ring[T] { return m.ring }

// Equal reports whether o is the same module.
func (m *NumberModule[T]) Equal(o Module) bool { return o != nil && o.Name() == m.name }

func (m *NumberModule[T]) position() position { return m.pos }

// Zero returns the zero element.
func (m *NumberModule[T]) Zero() Element { return m.Element(m.ring.Zero()) }

// Element wraps v as an element of m.
func (m *NumberModule[T]) Element(v T) *NumberElement[T] {
	return &NumberElement[T]{mod: m, v: m.ring.Add(m.ring.Zero(), v)}
}

// Parse reads an element in the ring's text form.
func (m *NumberModule[T]) Parse(text string) (Element, error) {
	v, err := m.ring.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s.Parse(%q): %w: %v", m.name, text, ErrParse, err)
	}

	return m.Element(v), nil
}

// Cast embeds e along the number tower (Z ⊂ Q ⊂ R ⊂ C, or Zn into itself).
func (m *NumberModule[T]) Cast(e Element) (Element, bool) {
	if e == nil {
		return nil, false
	}
	if m.Equal(e.Module()) {
		return e, true
	}
	src, ok := e.(scalar)
	if !ok {
		return nil, false
	}
	p, v := src.scalar()
	if p.family != numberFamily || !p.embeds(m.pos) {
		return nil, false
	}
	lifted, ok := lift(v, p.level, m.pos.level)
	if !ok {
		return nil, false
	}
	t, ok := lifted.(T)
	if !ok {
		return nil, false
	}

	return m.Element(t), true
}

// NumberElement is an element of a NumberModule.
type NumberElement[T any] struct {
	mod *NumberModule[T]
	v   T
}

// Module returns the owning module.
func (e *NumberElement[T]) Module() Module { return e.mod }

// Value returns the wrapped ring value.
func (e *NumberElement[T]) Value() T { return e.v }

// Real projects the value onto the real line.
func (e *NumberElement[T]) Real() float64 { return e.mod.ring.ToReal(e.v) }

// Compare orders by module first, then by the ring's Compare.
func (e *NumberElement[T]) Compare(o Element) int {
	if c, across := compareAcross(e, o); across {
		return c
	}
	other, ok := o.(*NumberElement[T])
	if !ok {
		return CompareModules(e.mod, o.Module())
	}

	return e.mod.ring.Compare(e.v, other.v)
}

// Equal reports Compare(o) == 0.
func (e *NumberElement[T]) Equal(o Element) bool {
	return o != nil && e.Compare(o) == 0
}

// String renders the value in the ring's text form.
func (e *NumberElement[T]) String() string { return e.mod.ring.Format(e.v) }

func (e *NumberElement[T]) scalar() (position, any) { return e.mod.pos, e.v }

// scalar is implemented by built-in number elements.
type scalar interface {
	scalar() (position, any)
}

// lift converts a number-tower value from one level up to another.
func lift(v any, from, to int) (any, bool) {
	var ok bool
	for l := from; l < to; l++ {
		switch l {
		case levelZ:
			var n int64
			if n, ok = v.(int64); !ok || n == math.MinInt64 {
				return nil, false
			}
			v = arith.FromInt(n)
		case levelQ:
			var r arith.Rational
			if r, ok = v.(arith.Rational); !ok {
				return nil, false
			}
			v = r.Float64()
		case levelR:
			var x float64
			if x, ok = v.(float64); !ok {
				return nil, false
			}
			v = arith.NewComplex(x, 0)
		}
	}

	return v, true
}

// Int returns n as an element of Z.
func Int(n int64) Element { return Z.Element(n) }

// Rat returns r as an element of Q.
func Rat(r arith.Rational) Element { return Q.Element(r) }

// Real returns x as an element of R.
func Real(x float64) Element { return R.Element(x) }

// Cplx returns z as an element of C.
func Cplx(z arith.Complex) Element { return C.Element(z) }
