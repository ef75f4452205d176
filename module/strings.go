// SPDX-License-Identifier: MIT
//
// File: strings.go
// Role: StringModule[T], the free module of RingStrings over a coefficient ring.

package module

import (
	"fmt"

	"github.com/katalvlaran/denota/arith"
	"github.com/katalvlaran/denota/ring"
)

// StringModule is the module of RingString values over a coefficient ring.
type StringModule[T any] struct {
	name string
	ring ring.Ring[T]
	pos  position
}

// Built-in string modules.
var (
	ZString = &StringModule[int64]{name: "ZString", ring: ring.Integers{}, pos: position{family: stringFamily, level: levelZ}}
	QString = &StringModule[arith.Rational]{name: "QString", ring: ring.Rationals{}, pos: position{family: stringFamily, level: levelQ}}
	RString = &StringModule[float64]{name: "RString", ring: ring.Reals{}, pos: position{family: stringFamily, level: levelR}}
	CString = &StringModule[arith.Complex]{name: "CString", ring: ring.Complexes{}, pos: position{family: stringFamily, level: levelC}}
)

// ZnString returns the string module over Z/nZ.
// Returns ring.ErrBadModulus for n < 2.
func ZnString(n int64) (*StringModule[int64], error) {
	r, err := ring.NewModular(n)
	if err != nil {
		return nil, fmt.Errorf("ZnString: %w", err)
	}

	return &StringModule[int64]{name: r.Name() + "String", ring: r, pos: position{family: stringFamily, level: levelZ, modulus: n}}, nil
}

// Name returns the module name.
func (m *StringModule[T]) Name() string { return m.name }

// String returns the module name.
func (m *StringModule[T]) String() string { return m.name }

// Ring returns the coefficient ring.
func (m *StringModule[T]) Ring() ring.Ring[T] { return m.ring }

// Equal reports whether o is the same module.
func (m *StringModule[T]) Equal(o Module) bool { return o != nil && o.Name() == m.name }

func (m *StringModule[T]) position() position { return m.pos }

// Zero returns the zero RingString.
func (m *StringModule[T]) Zero() Element { return &StringElement[T]{mod: m, v: ring.New(m.ring)} }

// Element wraps a copy of s.
// Returns ErrWrongModule if s is over a different ring.
func (m *StringModule[T]) Element(s *ring.RingString[T]) (*StringElement[T], error) {
	if s == nil || s.Ring().Name() != m.ring.Name() {
		return nil, fmt.Errorf("%s.Element: %w", m.name, ErrWrongModule)
	}

	return &StringElement[T]{mod: m, v: s.Clone()}, nil
}

// Word returns the element c*word.
func (m *StringModule[T]) Word(word string, c T) *StringElement[T] {
	return &StringElement[T]{mod: m, v: ring.Term(m.ring, word, c)}
}

// Parse reads an element in RingString text form.
func (m *StringModule[T]) Parse(text string) (Element, error) {
	s, err := ring.Parse(m.ring, text)
	if err != nil {
		return nil, fmt.Errorf("%s.Parse(%q): %w: %v", m.name, text, ErrParse, err)
	}

	return &StringElement[T]{mod: m, v: s}, nil
}

// Cast embeds e: number elements of a level <= m's become coefficients of the
// empty word, string elements of a level <= m's have every coefficient lifted.
func (m *StringModule[T]) Cast(e Element) (Element, bool) {
	if e == nil {
		return nil, false
	}
	if m.Equal(e.Module()) {
		return e, true
	}
	switch src := e.(type) {
	case scalar:
		p, v := src.scalar()
		if !p.embeds(m.pos) {
			return nil, false
		}
		c, ok := m.liftCoefficient(v, p.level)
		if !ok {
			return nil, false
		}

		return m.Word("", c), true
	case terms:
		p, words, coefs := src.terms()
		if !p.embeds(m.pos) {
			return nil, false
		}
		out := ring.New(m.ring)
		for i, w := range words {
			c, ok := m.liftCoefficient(coefs[i], p.level)
			if !ok {
				return nil, false
			}
			out.Add(w, c)
		}

		return &StringElement[T]{mod: m, v: out}, true
	}

	return nil, false
}

func (m *StringModule[T]) liftCoefficient(v any, from int) (T, bool) {
	var zero T
	lifted, ok := lift(v, from, m.pos.level)
	if !ok {
		return zero, false
	}
	t, ok := lifted.(T)

	return t, ok
}

// fold projects elements of m to reals with ring.Fold.
func (m *StringModule[T]) fold(elems []Element) ([]float64, error) {
	values := make([]*ring.RingString[T], len(elems))
	for i, e := range elems {
		se, ok := e.(*StringElement[T])
		if !ok || !m.Equal(e.Module()) {
			return nil, fmt.Errorf("fold element %d: %w", i, ErrWrongModule)
		}
		values[i] = se.v
	}

	return ring.Fold(values), nil
}

// StringElement is an element of a StringModule. It is immutable: Value
// returns a copy.
type StringElement[T any] struct {
	mod *StringModule[T]
	v   *ring.RingString[T]
}

// Module returns the owning module.
func (e *StringElement[T]) Module() Module { return e.mod }

// Value returns a copy of the RingString.
func (e *StringElement[T]) Value() *ring.RingString[T] { return e.v.Clone() }

// Compare orders by module first, then by RingString.Compare.
func (e *StringElement[T]) Compare(o Element) int {
	if c, across := compareAcross(e, o); across {
		return c
	}
	other, ok := o.(*StringElement[T])
	if !ok {
		return CompareModules(e.mod, o.Module())
	}

	return e.v.Compare(other.v)
}

// Equal reports Compare(o) == 0.
func (e *StringElement[T]) Equal(o Element) bool {
	return o != nil && e.Compare(o) == 0
}

// String renders the RingString text form.
func (e *StringElement[T]) String() string { return e.v.String() }

func (e *StringElement[T]) terms() (position, []string, []any) {
	words := e.v.Words()
	coefs := make([]any, len(words))
	for i, w := range words {
		coefs[i] = e.v.Coefficient(w)
	}

	return e.mod.pos, words, coefs
}

// terms is implemented by built-in string elements.
type terms interface {
	terms() (position, []string, []any)
}

// folder is implemented by the built-in string modules.
type folder interface {
	fold(elems []Element) ([]float64, error)
}

// Fold projects string elements of one module onto the real line (see
// ring.Fold). Returns ErrNotFoldable for a module that is not a string
// module, and ErrWrongModule for mixed modules.
func Fold(elems []Element) ([]float64, error) {
	if len(elems) == 0 {
		return []float64{}, nil
	}
	if elems[0] == nil {
		return nil, fmt.Errorf("Fold: %w", ErrNotFoldable)
	}
	f, ok := elems[0].Module().(folder)
	if !ok {
		return nil, fmt.Errorf("Fold(%s): %w", elems[0].Module().Name(), ErrNotFoldable)
	}

	return f.fold(elems)
}
