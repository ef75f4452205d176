// SPDX-License-Identifier: MIT
//
// File: factory.go
// Role: Validating denotator constructors.
// Policy:
//   - Validate first, construct last: a factory either returns a complete,
//     valid Denotator or an error wrapping ErrDomain (or ErrNilForm /
//     ErrNilDenotator), never a partial value.
//   - Inputs are copied; the caller keeps ownership of its slices.
//   - All factors must share one address, which becomes the result's address.

package yoneda

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/denota/module"
)

// Option configures a denotator factory.
type Option func(*options)

type options struct {
	address module.Module // nil: inferred from factors, else module.Null
}

// WithAddress sets the address of the new denotator. Factors must carry the
// same address. A nil module is ignored.
func WithAddress(m module.Module) Option {
	return func(o *options) {
		if m != nil {
			o.address = m
		}
	}
}

func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// NewSimple returns a Simple denotator holding e.
// Returns ErrDomain if e is nil or not an element of form's module.
func NewSimple(name string, form *SimpleForm, e module.Element, opts ...Option) (*Denotator, error) {
	if form == nil {
		return nil, fmt.Errorf("NewSimple(%q): %w", name, ErrNilForm)
	}
	if err := validateElement(form, e); err != nil {
		return nil, fmt.Errorf("NewSimple(%q): %w", name, err)
	}
	o := gatherOptions(opts)
	addr := o.address
	if addr == nil {
		addr = module.Null
	}

	return &Denotator{name: name, form: form, address: addr, element: e, index: -1}, nil
}

// ParseSimple parses text with the form's module and returns a Simple denotator.
func ParseSimple(name string, form *SimpleForm, text string, opts ...Option) (*Denotator, error) {
	if form == nil {
		return nil, fmt.Errorf("ParseSimple(%q): %w", name, ErrNilForm)
	}
	e, err := form.mod.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("ParseSimple(%q): %w: %w", name, ErrDomain, err)
	}

	return NewSimple(name, form, e, opts...)
}

// NewLimit returns a Limit denotator; factor i must be of form.Factor(i).
// Returns ErrDomain on arity, sub-form or address mismatch.
func NewLimit(name string, form *LimitForm, factors []*Denotator, opts ...Option) (*Denotator, error) {
	if form == nil {
		return nil, fmt.Errorf("NewLimit(%q): %w", name, ErrNilForm)
	}
	if len(factors) != len(form.factors) {
		return nil, fmt.Errorf("NewLimit(%q): %d factors for %s: %w", name, len(factors), form, ErrDomain)
	}
	for i, f := range factors {
		if err := validateFactor(form.factors[i], f); err != nil {
			return nil, fmt.Errorf("NewLimit(%q): factor %d: %w", name, i, err)
		}
	}
	addr, err := commonAddress(gatherOptions(opts), factors)
	if err != nil {
		return nil, fmt.Errorf("NewLimit(%q): %w", name, err)
	}

	return &Denotator{name: name, form: form, address: addr, factors: copyFactors(factors), index: -1}, nil
}

// NewColimit returns a Colimit denotator injecting factor at index.
// Returns ErrDomain if index is out of range or factor is not of form.Factor(index).
func NewColimit(name string, form *ColimitForm, index int, factor *Denotator, opts ...Option) (*Denotator, error) {
	if form == nil {
		return nil, fmt.Errorf("NewColimit(%q): %w", name, ErrNilForm)
	}
	if index < 0 || index >= len(form.factors) {
		return nil, fmt.Errorf("NewColimit(%q): index %d of %s: %w: %w", name, index, form, ErrDomain, ErrOutOfRange)
	}
	if err := validateFactor(form.factors[index], factor); err != nil {
		return nil, fmt.Errorf("NewColimit(%q): %w", name, err)
	}
	factors := []*Denotator{factor}
	addr, err := commonAddress(gatherOptions(opts), factors)
	if err != nil {
		return nil, fmt.Errorf("NewColimit(%q): %w", name, err)
	}

	return &Denotator{name: name, form: form, address: addr, factors: factors, index: index}, nil
}

// NewPower returns a Power denotator. Elements are sorted by Compare and
// duplicates are removed (the first in sorted order is kept).
// Returns ErrDomain if an element is not of form.Element().
func NewPower(name string, form *PowerForm, elements []*Denotator, opts ...Option) (*Denotator, error) {
	if form == nil {
		return nil, fmt.Errorf("NewPower(%q): %w", name, ErrNilForm)
	}
	for i, e := range elements {
		if err := validateFactor(form.elem, e); err != nil {
			return nil, fmt.Errorf("NewPower(%q): element %d: %w", name, i, err)
		}
	}
	addr, err := commonAddress(gatherOptions(opts), elements)
	if err != nil {
		return nil, fmt.Errorf("NewPower(%q): %w", name, err)
	}

	return &Denotator{name: name, form: form, address: addr, factors: canonical(copyFactors(elements)), index: -1}, nil
}

// NewList returns a List denotator preserving element order and duplicates.
// Returns ErrDomain if an element is not of form.Element().
func NewList(name string, form *ListForm, elements []*Denotator, opts ...Option) (*Denotator, error) {
	if form == nil {
		return nil, fmt.Errorf("NewList(%q): %w", name, ErrNilForm)
	}
	for i, e := range elements {
		if err := validateFactor(form.elem, e); err != nil {
			return nil, fmt.Errorf("NewList(%q): element %d: %w", name, i, err)
		}
	}
	addr, err := commonAddress(gatherOptions(opts), elements)
	if err != nil {
		return nil, fmt.Errorf("NewList(%q): %w", name, err)
	}

	return &Denotator{name: name, form: form, address: addr, factors: copyFactors(elements), index: -1}, nil
}

// WithFactors returns a denotator with d's name, form and address and the
// given factors, validated like the kind's factory. For a Colimit the single
// factor is injected at d's index. Simple denotators have no factors.
func (d *Denotator) WithFactors(factors []*Denotator) (*Denotator, error) {
	opt := WithAddress(d.address)
	switch f := d.form.(type) {
	case *SimpleForm:
		return nil, fmt.Errorf("WithFactors on simple %s: %w", f.name, ErrDomain)
	case *LimitForm:
		return NewLimit(d.name, f, factors, opt)
	case *ColimitForm:
		if len(factors) != 1 {
			return nil, fmt.Errorf("WithFactors on colimit %s: %d factors: %w", f.name, len(factors), ErrDomain)
		}
		return NewColimit(d.name, f, d.index, factors[0], opt)
	case *PowerForm:
		return NewPower(d.name, f, factors, opt)
	case *ListForm:
		return NewList(d.name, f, factors, opt)
	default:
		panic(fmt.Sprintf("yoneda: unknown form type %T", d.form))
	}
}

// WithElement returns a Simple denotator with d's name, form and address
// holding e.
func (d *Denotator) WithElement(e module.Element) (*Denotator, error) {
	f, ok := d.form.(*SimpleForm)
	if !ok {
		return nil, fmt.Errorf("WithElement on %s %s: %w", d.Kind(), d.form.Name(), ErrDomain)
	}

	return NewSimple(d.name, f, e, WithAddress(d.address))
}

// canonical sorts factors by Compare and drops duplicates in place.
func canonical(factors []*Denotator) []*Denotator {
	sort.SliceStable(factors, func(i, j int) bool { return Compare(factors[i], factors[j]) < 0 })
	if len(factors) < 2 {
		return factors
	}
	out := factors[:1]
	for _, f := range factors[1:] {
		if Compare(out[len(out)-1], f) != 0 {
			out = append(out, f)
		}
	}
	// clear the tail so dropped duplicates can be collected
	for i := len(out); i < len(factors); i++ {
		factors[i] = nil
	}

	return out
}

func copyFactors(factors []*Denotator) []*Denotator {
	out := make([]*Denotator, len(factors))
	copy(out, factors)

	return out
}
