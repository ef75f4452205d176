// SPDX-License-Identifier: MIT

package sets

import (
	"fmt"

	"github.com/katalvlaran/denota/yoneda"
)

// Reconcile returns a and b re-addressed into a common address. Operands
// already sharing an address are returned as they are.
// Returns ErrNoCommonAddress if the lookup finds no common module.
func Reconcile(a, b *yoneda.Denotator, opts ...Option) (*yoneda.Denotator, *yoneda.Denotator, error) {
	if a == nil || b == nil {
		return nil, nil, fmt.Errorf("Reconcile: %w", ErrNilDenotator)
	}

	return reconcile(a, b, gather(opts))
}

func reconcile(a, b *yoneda.Denotator, o Options) (*yoneda.Denotator, *yoneda.Denotator, error) {
	if a.Address().Equal(b.Address()) {
		return a, b, nil
	}
	m, ok := o.Common(a.Address(), b.Address())
	if !ok {
		return nil, nil, fmt.Errorf("%s and %s: %w", a.Address().Name(), b.Address().Name(), ErrNoCommonAddress)
	}

	return a.WithAddress(m), b.WithAddress(m), nil
}

// prepare validates two operands of one collection kind and form and
// reconciles their addresses.
func prepare(op string, kind yoneda.Kind, a, b *yoneda.Denotator, o Options) (*yoneda.Denotator, *yoneda.Denotator, error) {
	if a == nil || b == nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrNilDenotator)
	}
	if a.Kind() != kind {
		return nil, nil, fmt.Errorf("%s: %s operand %s: %w", op, a.Kind(), a.Form().Name(), ErrStructure)
	}
	if !yoneda.FormsEqual(a.Form(), b.Form()) {
		return nil, nil, fmt.Errorf("%s: forms %s and %s: %w", op, a.Form().Name(), b.Form().Name(), ErrStructure)
	}
	ra, rb, err := reconcile(a, b, o)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return ra, rb, nil
}

// prepareElement validates a collection and a single element of its element
// form, reconciling their addresses.
func prepareElement(op string, coll, e *yoneda.Denotator, o Options, kinds ...yoneda.Kind) (*yoneda.Denotator, *yoneda.Denotator, error) {
	if coll == nil || e == nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrNilDenotator)
	}
	elem, ok := elementForm(coll.Form())
	if !ok || !kindIn(coll.Kind(), kinds) {
		return nil, nil, fmt.Errorf("%s: %s operand %s: %w", op, coll.Kind(), coll.Form().Name(), ErrStructure)
	}
	if !yoneda.FormsEqual(elem, e.Form()) {
		return nil, nil, fmt.Errorf("%s: element %s for %s: %w", op, e.Form().Name(), coll.Form().Name(), ErrStructure)
	}
	rc, re, err := reconcile(coll, e, o)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return rc, re, nil
}

func elementForm(f yoneda.Form) (yoneda.Form, bool) {
	switch ff := f.(type) {
	case *yoneda.PowerForm:
		return ff.Element(), true
	case *yoneda.ListForm:
		return ff.Element(), true
	}

	return nil, false
}

func kindIn(k yoneda.Kind, kinds []yoneda.Kind) bool {
	for _, x := range kinds {
		if x == k {
			return true
		}
	}

	return false
}
