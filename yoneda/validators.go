// SPDX-License-Identifier: MIT
//
// File: validators.go
// Role: Single source of truth for well-typedness checks used by the
// factories and the destructive mutators.

package yoneda

import (
	"fmt"

	"github.com/katalvlaran/denota/module"
)

// validateElement checks that e is an element of the simple form's module.
func validateElement(form *SimpleForm, e module.Element) error {
	if e == nil {
		return fmt.Errorf("nil element for %s: %w", form.name, ErrDomain)
	}
	if !form.mod.Equal(e.Module()) {
		return fmt.Errorf("element of %s for %s: %w", e.Module().Name(), form, ErrDomain)
	}

	return nil
}

// validateFactor checks that d is a non-nil denotator of form want.
func validateFactor(want Form, d *Denotator) error {
	if d == nil {
		return fmt.Errorf("%w: %w", ErrDomain, ErrNilDenotator)
	}
	if !FormsEqual(want, d.form) {
		return fmt.Errorf("form %s where %s expected: %w", d.form.Name(), want.Name(), ErrDomain)
	}

	return nil
}

// commonAddress returns the address all factors share (or the configured
// one). With no factors and no option the address is module.Null.
func commonAddress(o options, factors []*Denotator) (module.Module, error) {
	addr := o.address
	for i, f := range factors {
		if addr == nil {
			addr = f.address
			continue
		}
		if !addr.Equal(f.address) {
			return nil, fmt.Errorf("factor %d addressed at %s, expected %s: %w", i, f.address.Name(), addr.Name(), ErrDomain)
		}
	}
	if addr == nil {
		addr = module.Null
	}

	return addr, nil
}
