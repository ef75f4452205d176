// SPDX-License-Identifier: MIT

package traverse

import (
	"fmt"

	"github.com/katalvlaran/denota/yoneda"
)

// walker holds the state of one walk.
type walker struct {
	opts    Options
	pred    Predicate
	visited int
	matched int
}

func newWalker(pred Predicate, opts []Option) *walker {
	return &walker{opts: gather(opts), pred: pred}
}

// enter checks cancellation and depth before a node is visited.
func (w *walker) enter(d *yoneda.Denotator, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return fmt.Errorf("%s at depth %d: %w", d.Form().Name(), depth, ErrDepthExceeded)
	}
	w.visited++

	return nil
}

func (w *walker) match(d *yoneda.Denotator) bool {
	if w.opts.Form != nil && !yoneda.FormsEqual(d.Form(), w.opts.Form) {
		return false
	}
	if w.pred != nil && !w.pred(d) {
		return false
	}
	w.matched++

	return true
}

// children returns the factors a walk descends into: every factor, except
// for a Colimit whose single factor is the active one anyway.
func children(d *yoneda.Denotator) []*yoneda.Denotator {
	if d.Kind() == yoneda.Simple {
		return nil
	}

	return d.Factors()
}

func (w *walker) done(op string, err error) {
	w.opts.Logger.Debug("traverse: walk finished",
		"op", op, "visited", w.visited, "matched", w.matched, "err", err)
}

// Apply calls fn on every node of d matching pred, in pre-order. fn may
// mutate its argument in place (see the yoneda mutators); children are read
// after fn returns, so a replaced factor is the one descended into. Power
// nodes are re-canonicalized after their children have been visited.
func Apply(d *yoneda.Denotator, pred Predicate, fn func(*yoneda.Denotator) error, opts ...Option) error {
	if d == nil {
		return fmt.Errorf("Apply: %w", ErrNilDenotator)
	}
	if fn == nil {
		return fmt.Errorf("Apply: %w", ErrNilFunc)
	}
	w := newWalker(pred, opts)
	err := w.apply(d, fn, 0)
	w.done("apply", err)

	return err
}

func (w *walker) apply(d *yoneda.Denotator, fn func(*yoneda.Denotator) error, depth int) error {
	if err := w.enter(d, depth); err != nil {
		return err
	}
	if w.match(d) {
		if err := fn(d); err != nil {
			return fmt.Errorf("Apply at %s depth %d: %w", d.Form().Name(), depth, err)
		}
	}
	for _, c := range children(d) {
		if err := w.apply(c, fn, depth+1); err != nil {
			return err
		}
	}
	d.Canonicalize()

	return nil
}

// Map rebuilds d bottom-up: children are mapped first, a node whose
// children changed is rebuilt through the validating factories, and then fn
// replaces the node if it matches pred. Nodes where nothing changed keep
// their identity, so Map returns d itself when no node was replaced.
//
// d is never mutated.
func Map(d *yoneda.Denotator, pred Predicate, fn func(*yoneda.Denotator) (*yoneda.Denotator, error), opts ...Option) (*yoneda.Denotator, error) {
	if d == nil {
		return nil, fmt.Errorf("Map: %w", ErrNilDenotator)
	}
	if fn == nil {
		return nil, fmt.Errorf("Map: %w", ErrNilFunc)
	}
	w := newWalker(pred, opts)
	out, err := w.mapNode(d, fn, 0)
	w.done("map", err)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (w *walker) mapNode(d *yoneda.Denotator, fn func(*yoneda.Denotator) (*yoneda.Denotator, error), depth int) (*yoneda.Denotator, error) {
	if err := w.enter(d, depth); err != nil {
		return nil, err
	}

	node := d
	kids := children(d)
	changed := false
	for i, c := range kids {
		mc, err := w.mapNode(c, fn, depth+1)
		if err != nil {
			return nil, err
		}
		if mc != c {
			kids[i] = mc
			changed = true
		}
	}
	if changed {
		rebuilt, err := d.WithFactors(kids)
		if err != nil {
			return nil, fmt.Errorf("Map rebuild of %s depth %d: %w", d.Form().Name(), depth, err)
		}
		node = rebuilt
	}

	if !w.match(node) {
		return node, nil
	}
	out, err := fn(node)
	if err != nil {
		return nil, fmt.Errorf("Map at %s depth %d: %w", node.Form().Name(), depth, err)
	}
	if out == nil {
		return nil, fmt.Errorf("Map at %s depth %d: %w", node.Form().Name(), depth, ErrNilDenotator)
	}

	return out, nil
}

// Select returns the matching nodes of d in pre-order. The subtree below a
// matching node is not searched.
func Select(d *yoneda.Denotator, pred Predicate, opts ...Option) ([]*yoneda.Denotator, error) {
	if d == nil {
		return nil, fmt.Errorf("Select: %w", ErrNilDenotator)
	}
	w := newWalker(pred, opts)
	var out []*yoneda.Denotator
	err := w.sel(d, 0, &out)
	w.done("select", err)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (w *walker) sel(d *yoneda.Denotator, depth int, out *[]*yoneda.Denotator) error {
	if err := w.enter(d, depth); err != nil {
		return err
	}
	if w.match(d) {
		*out = append(*out, d)
		return nil
	}
	for _, c := range children(d) {
		if err := w.sel(c, depth+1, out); err != nil {
			return err
		}
	}

	return nil
}
