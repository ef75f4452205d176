// SPDX-License-Identifier: MIT
//
// File: denotator.go
// Role: Denotator type and its side-effect-free accessors.
// Policy:
//   - factors is owned exclusively by its Denotator; accessors hand out copies.
//   - Every Denotator reachable from a factory satisfies the well-typedness
//     invariant of its Form.

package yoneda

import (
	"fmt"

	"github.com/katalvlaran/denota/module"
)

// Denotator is an addressed instance of a Form: (name, form, address, coordinate).
//
// The coordinate is held in element (Simple) or factors (Limit, Power, List,
// and Colimit with exactly one factor at injection index).
type Denotator struct {
	name    string
	form    Form
	address module.Module
	element module.Element // Simple only
	factors []*Denotator   // Limit, Colimit (len 1), Power (sorted), List
	index   int            // Colimit injection index, -1 otherwise
}

// Name returns the denotator name; anonymous denotators have "".
func (d *Denotator) Name() string { return d.name }

// Form returns the form.
func (d *Denotator) Form() Form { return d.form }

// Kind returns the form's kind.
func (d *Denotator) Kind() Kind { return d.form.Kind() }

// Address returns the address module.
func (d *Denotator) Address() module.Module { return d.address }

// Element returns the module element of a Simple denotator, nil otherwise.
func (d *Denotator) Element() module.Element { return d.element }

// Index returns the injection index of a Colimit denotator, -1 otherwise.
func (d *Denotator) Index() int { return d.index }

// Len returns the number of factors (0 for Simple, 1 for Colimit).
func (d *Denotator) Len() int { return len(d.factors) }

// Factor returns factor i.
// Returns ErrOutOfRange if i is outside [0, Len()).
func (d *Denotator) Factor(i int) (*Denotator, error) {
	if i < 0 || i >= len(d.factors) {
		return nil, fmt.Errorf("Factor(%d) of %d: %w", i, len(d.factors), ErrOutOfRange)
	}

	return d.factors[i], nil
}

// Factors returns a copy of the factor slice.
func (d *Denotator) Factors() []*Denotator {
	out := make([]*Denotator, len(d.factors))
	copy(out, d.factors)

	return out
}

// FactorByLabel returns the factor at a labeled position of a Limit, or the
// active factor of a Colimit when label names the active injection.
// Returns ErrUnknownLabel if no such factor exists.
func (d *Denotator) FactorByLabel(label string) (*Denotator, error) {
	switch f := d.form.(type) {
	case *LimitForm:
		if i, ok := f.LabelIndex(label); ok {
			return d.factors[i], nil
		}
	case *ColimitForm:
		if i, ok := f.LabelIndex(label); ok && i == d.index {
			return d.factors[0], nil
		}
	}

	return nil, fmt.Errorf("FactorByLabel(%q) on %s: %w", label, d.form.Name(), ErrUnknownLabel)
}
