// SPDX-License-Identifier: MIT
//
// File: flat.go
// Role: One-level Map, Filter, Reduce and Zip over Power and List denotators.
// Policy:
//   - Arity is checked before any element is visited; no partial work is
//     done on ErrArity.
//   - Only the direct factors are visited; use package traverse for
//     recursive walks.

package sets

import (
	"fmt"

	"github.com/katalvlaran/denota/yoneda"
)

// Fn is a denotator-valued function of declared arity.
type Fn struct {
	arity int
	call  func(args []*yoneda.Denotator) (*yoneda.Denotator, error)
}

// Unary wraps a one-argument function.
func Unary(fn func(*yoneda.Denotator) (*yoneda.Denotator, error)) Fn {
	return Fn{arity: 1, call: func(args []*yoneda.Denotator) (*yoneda.Denotator, error) { return fn(args[0]) }}
}

// Binary wraps a two-argument function.
func Binary(fn func(a, b *yoneda.Denotator) (*yoneda.Denotator, error)) Fn {
	return Fn{arity: 2, call: func(args []*yoneda.Denotator) (*yoneda.Denotator, error) { return fn(args[0], args[1]) }}
}

// NAry wraps a function of n arguments; args always has length n.
func NAry(n int, fn func(args []*yoneda.Denotator) (*yoneda.Denotator, error)) Fn {
	return Fn{arity: n, call: fn}
}

// Arity returns the declared number of arguments.
func (f Fn) Arity() int { return f.arity }

func (f Fn) check(op string, want int) error {
	if f.call == nil || f.arity != want {
		return fmt.Errorf("%s: function of arity %d, need %d: %w", op, f.arity, want, ErrArity)
	}

	return nil
}

func (f Fn) apply(op string, args ...*yoneda.Denotator) (*yoneda.Denotator, error) {
	out, err := f.call(args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%s: function result: %w", op, ErrNilDenotator)
	}

	return out, nil
}

// Pred is a predicate of declared arity.
type Pred struct {
	arity int
	test  func(args []*yoneda.Denotator) bool
}

// UnaryPred wraps a one-argument predicate.
func UnaryPred(fn func(*yoneda.Denotator) bool) Pred {
	return Pred{arity: 1, test: func(args []*yoneda.Denotator) bool { return fn(args[0]) }}
}

// NAryPred wraps a predicate of n arguments.
func NAryPred(n int, fn func(args []*yoneda.Denotator) bool) Pred {
	return Pred{arity: n, test: fn}
}

// Arity returns the declared number of arguments.
func (p Pred) Arity() int { return p.arity }

// Map applies fn to each factor of the Power or List d and collects the
// results into a collection of d's form, or of WithResultForm. A Power
// result is re-sorted and deduplicated.
func Map(d *yoneda.Denotator, fn Fn, opts ...Option) (*yoneda.Denotator, error) {
	if err := fn.check("Map", 1); err != nil {
		return nil, err
	}
	if err := requireCollection("Map", d); err != nil {
		return nil, err
	}
	o := gather(opts)
	form := d.Form()
	if o.ResultForm != nil {
		form = o.ResultForm
	}

	in := d.Factors()
	out := make([]*yoneda.Denotator, len(in))
	for i, f := range in {
		r, err := fn.apply("Map", f)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return collect("Map", d.Name(), form, out, d)
}

// Filter returns the factors of d for which pred holds, in a collection of
// d's form.
func Filter(d *yoneda.Denotator, pred Pred) (*yoneda.Denotator, error) {
	if pred.test == nil || pred.arity != 1 {
		return nil, fmt.Errorf("Filter: predicate of arity %d, need 1: %w", pred.arity, ErrArity)
	}
	if err := requireCollection("Filter", d); err != nil {
		return nil, err
	}
	var keep []*yoneda.Denotator
	for _, f := range d.Factors() {
		if pred.test([]*yoneda.Denotator{f}) {
			keep = append(keep, f)
		}
	}

	return rebuild("Filter", d, keep)
}

// Reduce folds the factors of d from the left: acc = fn(acc, factor),
// starting from init. An empty collection returns init.
func Reduce(d *yoneda.Denotator, fn Fn, init *yoneda.Denotator) (*yoneda.Denotator, error) {
	if err := fn.check("Reduce", 2); err != nil {
		return nil, err
	}
	if err := requireCollection("Reduce", d); err != nil {
		return nil, err
	}
	if init == nil {
		return nil, fmt.Errorf("Reduce: init: %w", ErrNilDenotator)
	}
	acc := init
	for _, f := range d.Factors() {
		var err error
		if acc, err = fn.apply("Reduce", acc, f); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// Zip calls fn with the i-th factor of every collection and gathers the
// results into a collection of form (a Power or List form). fn's arity must
// equal the number of collections, and all collections must have one length.
func Zip(form yoneda.Form, fn Fn, colls ...*yoneda.Denotator) (*yoneda.Denotator, error) {
	if len(colls) == 0 {
		return nil, fmt.Errorf("Zip: no collections: %w", ErrArity)
	}
	if err := fn.check("Zip", len(colls)); err != nil {
		return nil, err
	}
	n := -1
	for i, c := range colls {
		if err := requireCollection("Zip", c); err != nil {
			return nil, err
		}
		if n >= 0 && c.Len() != n {
			return nil, fmt.Errorf("Zip: collection %d has %d factors, want %d: %w", i, c.Len(), n, ErrStructure)
		}
		n = c.Len()
	}

	out := make([]*yoneda.Denotator, n)
	args := make([]*yoneda.Denotator, len(colls))
	for i := 0; i < n; i++ {
		for k, c := range colls {
			args[k], _ = c.Factor(i)
		}
		r, err := fn.apply("Zip", args...)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return collect("Zip", "", form, out, colls[0])
}

func requireCollection(op string, d *yoneda.Denotator) error {
	if d == nil {
		return fmt.Errorf("%s: %w", op, ErrNilDenotator)
	}
	if k := d.Kind(); k != yoneda.Power && k != yoneda.List {
		return fmt.Errorf("%s: %s operand %s: %w", op, k, d.Form().Name(), ErrStructure)
	}

	return nil
}

// collect builds a Power or List of form from factors, inferring the
// address from the factors (or from like when there are none).
func collect(op, name string, form yoneda.Form, factors []*yoneda.Denotator, like *yoneda.Denotator) (*yoneda.Denotator, error) {
	var opts []yoneda.Option
	if len(factors) == 0 {
		opts = append(opts, yoneda.WithAddress(like.Address()))
	}
	var (
		out *yoneda.Denotator
		err error
	)
	switch f := form.(type) {
	case *yoneda.PowerForm:
		out, err = yoneda.NewPower(name, f, factors, opts...)
	case *yoneda.ListForm:
		out, err = yoneda.NewList(name, f, factors, opts...)
	default:
		return nil, fmt.Errorf("%s: result form %v is not a collection: %w", op, form, ErrStructure)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
