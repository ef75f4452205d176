// SPDX-License-Identifier: MIT
//
// File: mutate.go
// Role: Destructive mutators.
// Policy:
//   - Every mutator changes its receiver IN PLACE. Parents sharing the
//     receiver observe the change.
//   - Validation happens before any write: on error the receiver is unchanged.
//   - Power receivers stay sorted and duplicate-free.

package yoneda

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/denota/module"
)

// SetName renames d in place.
func (d *Denotator) SetName(name string) { d.name = name }

// SetElement replaces the element of a Simple denotator in place.
// Returns ErrDomain if d is not Simple or e is not of the form's module.
func (d *Denotator) SetElement(e module.Element) error {
	f, ok := d.form.(*SimpleForm)
	if !ok {
		return fmt.Errorf("SetElement on %s %s: %w", d.Kind(), d.form.Name(), ErrDomain)
	}
	if err := validateElement(f, e); err != nil {
		return fmt.Errorf("SetElement: %w", err)
	}
	d.element = e

	return nil
}

// SetFactor replaces factor i in place.
//
//   - Limit, List: position i must exist; f must be of the form at i.
//   - Colimit: i is the new injection index; f must be of that factor form.
//   - Power: factor i is replaced and the set re-canonicalized, so f may move
//     or merge with an equal element.
//
// The factor must carry d's address.
func (d *Denotator) SetFactor(i int, f *Denotator) error {
	want, err := d.factorForm(i)
	if err != nil {
		return fmt.Errorf("SetFactor(%d): %w", i, err)
	}
	if err = d.acceptFactor(want, f); err != nil {
		return fmt.Errorf("SetFactor(%d): %w", i, err)
	}

	switch d.form.(type) {
	case *ColimitForm:
		d.index = i
		d.factors[0] = f
	case *PowerForm:
		d.factors[i] = f
		d.factors = canonical(d.factors)
	default:
		d.factors[i] = f
	}

	return nil
}

// AppendFactor adds f at the end of a List, or inserts it at its sorted
// position in a Power (an element equal to one already present is dropped).
// Returns ErrDomain for other kinds.
func (d *Denotator) AppendFactor(f *Denotator) error {
	want, err := d.collectionElement("AppendFactor")
	if err != nil {
		return err
	}
	if err = d.acceptFactor(want, f); err != nil {
		return fmt.Errorf("AppendFactor: %w", err)
	}
	if d.Kind() == List {
		d.factors = append(d.factors, f)
		return nil
	}

	i := sort.Search(len(d.factors), func(k int) bool { return Compare(d.factors[k], f) >= 0 })
	if i < len(d.factors) && Compare(d.factors[i], f) == 0 {
		return nil
	}
	d.factors = append(d.factors, nil)
	copy(d.factors[i+1:], d.factors[i:])
	d.factors[i] = f

	return nil
}

// PrependFactor adds f at the front of a List.
// Returns ErrDomain for other kinds.
func (d *Denotator) PrependFactor(f *Denotator) error {
	lf, ok := d.form.(*ListForm)
	if !ok {
		return fmt.Errorf("PrependFactor on %s %s: %w", d.Kind(), d.form.Name(), ErrDomain)
	}
	if err := d.acceptFactor(lf.elem, f); err != nil {
		return fmt.Errorf("PrependFactor: %w", err)
	}
	d.factors = append([]*Denotator{f}, d.factors...)

	return nil
}

// RemoveFactor deletes element i of a List or Power.
func (d *Denotator) RemoveFactor(i int) error {
	if _, err := d.collectionElement("RemoveFactor"); err != nil {
		return err
	}
	if i < 0 || i >= len(d.factors) {
		return fmt.Errorf("RemoveFactor(%d) of %d: %w", i, len(d.factors), ErrOutOfRange)
	}
	copy(d.factors[i:], d.factors[i+1:])
	d.factors[len(d.factors)-1] = nil
	d.factors = d.factors[:len(d.factors)-1]

	return nil
}

// Canonicalize restores sorted, duplicate-free order of a Power whose
// factors were mutated through shared pointers. Other kinds are untouched.
func (d *Denotator) Canonicalize() {
	if d.Kind() == Power {
		d.factors = canonical(d.factors)
	}
}

// factorForm returns the form a factor at position i must have.
func (d *Denotator) factorForm(i int) (Form, error) {
	switch f := d.form.(type) {
	case *SimpleForm:
		return nil, fmt.Errorf("simple %s has no factors: %w", f.name, ErrDomain)
	case *LimitForm:
		return f.Factor(i)
	case *ColimitForm:
		ff, err := f.Factor(i)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDomain, err)
		}
		return ff, nil
	case *PowerForm, *ListForm:
		if i < 0 || i >= len(d.factors) {
			return nil, fmt.Errorf("index %d of %d: %w", i, len(d.factors), ErrOutOfRange)
		}
		return subForms(f)[0], nil
	default:
		panic(fmt.Sprintf("yoneda: unknown form type %T", d.form))
	}
}

func (d *Denotator) collectionElement(op string) (Form, error) {
	switch f := d.form.(type) {
	case *PowerForm:
		return f.elem, nil
	case *ListForm:
		return f.elem, nil
	}

	return nil, fmt.Errorf("%s on %s %s: %w", op, d.Kind(), d.form.Name(), ErrDomain)
}

// acceptFactor checks f against form want and d's address.
func (d *Denotator) acceptFactor(want Form, f *Denotator) error {
	if err := validateFactor(want, f); err != nil {
		return err
	}
	if !d.address.Equal(f.address) {
		return fmt.Errorf("factor addressed at %s, expected %s: %w", f.address.Name(), d.address.Name(), ErrDomain)
	}

	return nil
}
