// SPDX-License-Identifier: MIT
//
// File: address.go
// Role: Non-destructive copying and readdressing.

package yoneda

import "github.com/katalvlaran/denota/module"

// Clone returns a deep copy of d. Forms and module elements are immutable and
// stay shared.
func (d *Denotator) Clone() *Denotator {
	if d == nil {
		return nil
	}
	out := *d
	if d.factors != nil {
		out.factors = make([]*Denotator, len(d.factors))
		for i, f := range d.factors {
			out.factors[i] = f.Clone()
		}
	}

	return &out
}

// WithAddress returns d re-addressed at m, recursively through every factor.
// When d is already addressed at m (or m is nil) d itself is returned.
// Power factors keep their order since the address is uniform across them.
func (d *Denotator) WithAddress(m module.Module) *Denotator {
	if m == nil || d.address.Equal(m) {
		return d
	}
	out := *d
	out.address = m
	if d.factors != nil {
		out.factors = make([]*Denotator, len(d.factors))
		for i, f := range d.factors {
			out.factors[i] = f.WithAddress(m)
		}
	}

	return &out
}
