// SPDX-License-Identifier: MIT
//
// File: form.go
// Role: The sealed Form sum and its five variants.
// Policy:
//   - Forms are immutable after construction; accessors return copies of slices.
//   - Only this package implements Form (unexported sealed method).
//   - Type switches over Form list all five variants; the default branch is
//     unreachable and panics.

package yoneda

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/denota/module"
)

// Form is a named structural type descriptor. Its dynamic type is exactly one
// of *SimpleForm, *LimitForm, *ColimitForm, *PowerForm or *ListForm.
type Form interface {
	Name() string
	Kind() Kind
	String() string
	sealed()
}

// SimpleForm wraps a module: its denotators hold one element of that module.
type SimpleForm struct {
	name string
	mod  module.Module
}

// LimitForm is a product of factor forms, optionally labeled.
type LimitForm struct {
	compound
}

// ColimitForm is a tagged union of factor forms, optionally labeled.
type ColimitForm struct {
	compound
}

// PowerForm is the form of finite sets of one element form.
type PowerForm struct {
	name string
	elem Form
}

// ListForm is the form of finite sequences of one element form.
type ListForm struct {
	name string
	elem Form
}

// compound holds the factor list shared by Limit and Colimit forms.
type compound struct {
	name    string
	factors []Form
	labels  []string       // nil or len(factors)
	byLabel map[string]int // label -> factor index
}

func (*SimpleForm) sealed()  {}
func (*LimitForm) sealed()   {}
func (*ColimitForm) sealed() {}
func (*PowerForm) sealed()   {}
func (*ListForm) sealed()    {}

func (*SimpleForm) Kind() Kind  { return Simple }
func (*LimitForm) Kind() Kind   { return Limit }
func (*ColimitForm) Kind() Kind { return Colimit }
func (*PowerForm) Kind() Kind   { return Power }
func (*ListForm) Kind() Kind    { return List }

func (f *SimpleForm) Name() string { return f.name }
func (f *compound) Name() string   { return f.name }
func (f *PowerForm) Name() string  { return f.name }
func (f *ListForm) Name() string   { return f.name }

// Module returns the value domain of the form.
func (f *SimpleForm) Module() module.Module { return f.mod }

// Len returns the number of factor forms.
func (f *compound) Len() int { return len(f.factors) }

// Factor returns factor form i.
// Returns ErrOutOfRange if i is outside [0, Len()).
func (f *compound) Factor(i int) (Form, error) {
	if i < 0 || i >= len(f.factors) {
		return nil, fmt.Errorf("%s.Factor(%d): %w", f.name, i, ErrOutOfRange)
	}

	return f.factors[i], nil
}

// Factors returns a copy of the factor forms.
func (f *compound) Factors() []Form {
	out := make([]Form, len(f.factors))
	copy(out, f.factors)

	return out
}

// Labels returns a copy of the labels, nil when the form is unlabeled.
func (f *compound) Labels() []string {
	if f.labels == nil {
		return nil
	}
	out := make([]string, len(f.labels))
	copy(out, f.labels)

	return out
}

// LabelIndex returns the factor index of label.
func (f *compound) LabelIndex(label string) (int, bool) {
	i, ok := f.byLabel[label]

	return i, ok
}

// Element returns the element form.
func (f *PowerForm) Element() Form { return f.elem }

// Element returns the element form.
func (f *ListForm) Element() Form { return f.elem }

func (f *SimpleForm) String() string  { return f.name + ":.Simple(" + f.mod.Name() + ")" }
func (f *LimitForm) String() string   { return f.name + ":.Limit(" + f.factorNames() + ")" }
func (f *ColimitForm) String() string { return f.name + ":.Colimit(" + f.factorNames() + ")" }
func (f *PowerForm) String() string   { return f.name + ":.Power(" + f.elem.Name() + ")" }
func (f *ListForm) String() string    { return f.name + ":.List(" + f.elem.Name() + ")" }

func (f *compound) factorNames() string {
	parts := make([]string, len(f.factors))
	for i, ff := range f.factors {
		if f.labels != nil {
			parts[i] = f.labels[i] + ":" + ff.Name()
		} else {
			parts[i] = ff.Name()
		}
	}

	return strings.Join(parts, ",")
}

// MakeSimpleForm returns a simple form over mod without registering it.
// Returns ErrDomain for an empty name or nil module.
func MakeSimpleForm(name string, mod module.Module) (*SimpleForm, error) {
	if name == "" {
		return nil, fmt.Errorf("MakeSimpleForm: empty name: %w", ErrDomain)
	}
	if mod == nil {
		return nil, fmt.Errorf("MakeSimpleForm(%q): nil module: %w", name, ErrDomain)
	}

	return &SimpleForm{name: name, mod: mod}, nil
}

// MakeLimitForm returns a limit form without registering it. labels is
// either empty or one unique, non-empty label per factor.
// Returns ErrDomain for an empty name, nil factor or bad labels.
func MakeLimitForm(name string, factors []Form, labels ...string) (*LimitForm, error) {
	c, err := makeCompound("MakeLimitForm", name, factors, labels)
	if err != nil {
		return nil, err
	}

	return &LimitForm{compound: c}, nil
}

// MakeColimitForm returns a colimit form without registering it. A colimit
// needs at least one factor.
// Returns ErrDomain for an empty name, no or nil factors, or bad labels.
func MakeColimitForm(name string, factors []Form, labels ...string) (*ColimitForm, error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("MakeColimitForm(%q): no factors: %w", name, ErrDomain)
	}
	c, err := makeCompound("MakeColimitForm", name, factors, labels)
	if err != nil {
		return nil, err
	}

	return &ColimitForm{compound: c}, nil
}

// MakePowerForm returns a power form over elem without registering it.
func MakePowerForm(name string, elem Form) (*PowerForm, error) {
	if err := validateFormHeader("MakePowerForm", name, elem); err != nil {
		return nil, err
	}

	return &PowerForm{name: name, elem: elem}, nil
}

// MakeListForm returns a list form over elem without registering it.
func MakeListForm(name string, elem Form) (*ListForm, error) {
	if err := validateFormHeader("MakeListForm", name, elem); err != nil {
		return nil, err
	}

	return &ListForm{name: name, elem: elem}, nil
}

func makeCompound(op, name string, factors []Form, labels []string) (compound, error) {
	if name == "" {
		return compound{}, fmt.Errorf("%s: empty name: %w", op, ErrDomain)
	}
	for i, f := range factors {
		if f == nil {
			return compound{}, fmt.Errorf("%s(%q): factor %d: %w: %w", op, name, i, ErrDomain, ErrNilForm)
		}
	}
	c := compound{name: name, factors: make([]Form, len(factors))}
	copy(c.factors, factors)
	if len(labels) == 0 {
		return c, nil
	}
	if len(labels) != len(factors) {
		return compound{}, fmt.Errorf("%s(%q): %d labels for %d factors: %w", op, name, len(labels), len(factors), ErrDomain)
	}
	c.labels = make([]string, len(labels))
	c.byLabel = make(map[string]int, len(labels))
	for i, l := range labels {
		if l == "" {
			return compound{}, fmt.Errorf("%s(%q): empty label %d: %w", op, name, i, ErrDomain)
		}
		if _, dup := c.byLabel[l]; dup {
			return compound{}, fmt.Errorf("%s(%q): duplicate label %q: %w", op, name, l, ErrDomain)
		}
		c.labels[i] = l
		c.byLabel[l] = i
	}

	return c, nil
}

func validateFormHeader(op, name string, elem Form) error {
	if name == "" {
		return fmt.Errorf("%s: empty name: %w", op, ErrDomain)
	}
	if elem == nil {
		return fmt.Errorf("%s(%q): %w: %w", op, name, ErrDomain, ErrNilForm)
	}

	return nil
}

// subForms returns the direct sub-forms of f.
func subForms(f Form) []Form {
	switch ff := f.(type) {
	case *SimpleForm:
		return nil
	case *LimitForm:
		return ff.factors
	case *ColimitForm:
		return ff.factors
	case *PowerForm:
		return []Form{ff.elem}
	case *ListForm:
		return []Form{ff.elem}
	default:
		panic(fmt.Sprintf("yoneda: unknown form type %T", f))
	}
}
