// SPDX-License-Identifier: MIT
//
// File: power.go
// Role: Set algebra over Power denotators.
// Determinism:
//   - Inputs are canonically sorted and duplicate-free; every merge walks
//     both factor lists once with two cursors, so results are sorted and
//     duplicate-free by construction.
// Complexity:
//   - Time O(n+m) comparisons, Memory O(n+m).

package sets

import (
	"fmt"

	"github.com/katalvlaran/denota/yoneda"
)

// mergeMode selects which elements a merge keeps.
type mergeMode struct {
	onlyA, both, onlyB bool
}

var (
	union        = mergeMode{onlyA: true, both: true, onlyB: true}
	intersection = mergeMode{both: true}
	difference   = mergeMode{onlyA: true}
	symmetric    = mergeMode{onlyA: true, onlyB: true}
)

// Union returns the Power holding every element of a or b.
func Union(a, b *yoneda.Denotator, opts ...Option) (*yoneda.Denotator, error) {
	return merge("Union", a, b, union, opts)
}

// Intersection returns the Power holding the elements of both a and b.
func Intersection(a, b *yoneda.Denotator, opts ...Option) (*yoneda.Denotator, error) {
	return merge("Intersection", a, b, intersection, opts)
}

// Difference returns the Power holding the elements of a not in b.
func Difference(a, b *yoneda.Denotator, opts ...Option) (*yoneda.Denotator, error) {
	return merge("Difference", a, b, difference, opts)
}

// SymmetricDifference returns the Power holding the elements of exactly one
// of a and b.
func SymmetricDifference(a, b *yoneda.Denotator, opts ...Option) (*yoneda.Denotator, error) {
	return merge("SymmetricDifference", a, b, symmetric, opts)
}

// merge runs the two-pointer walk. The result takes a's name.
func merge(op string, a, b *yoneda.Denotator, mode mergeMode, opts []Option) (*yoneda.Denotator, error) {
	ra, rb, err := prepare(op, yoneda.Power, a, b, gather(opts))
	if err != nil {
		return nil, err
	}
	fa, fb := ra.Factors(), rb.Factors()
	out := make([]*yoneda.Denotator, 0, len(fa)+len(fb))

	i, j := 0, 0
	for i < len(fa) && j < len(fb) {
		switch c := yoneda.Compare(fa[i], fb[j]); {
		case c < 0:
			if mode.onlyA {
				out = append(out, fa[i])
			}
			i++
		case c > 0:
			if mode.onlyB {
				out = append(out, fb[j])
			}
			j++
		default:
			if mode.both {
				out = append(out, fa[i])
			}
			i++
			j++
		}
	}
	if mode.onlyA {
		out = append(out, fa[i:]...)
	}
	if mode.onlyB {
		out = append(out, fb[j:]...)
	}

	return rebuild(op, ra, out)
}

// Insert returns p with e added.
func Insert(p, e *yoneda.Denotator, opts ...Option) (*yoneda.Denotator, error) {
	rp, re, err := prepareElement("Insert", p, e, gather(opts), yoneda.Power)
	if err != nil {
		return nil, err
	}

	return rebuild("Insert", rp, append(rp.Factors(), re))
}

// Remove returns p without e. Removing an absent element returns p.
func Remove(p, e *yoneda.Denotator, opts ...Option) (*yoneda.Denotator, error) {
	rp, re, err := prepareElement("Remove", p, e, gather(opts), yoneda.Power)
	if err != nil {
		return nil, err
	}
	i := IndexOf(rp, re)
	if i < 0 {
		return rp, nil
	}
	fs := rp.Factors()

	return rebuild("Remove", rp, append(fs[:i], fs[i+1:]...))
}

// rebuild constructs a collection of like's form and address from factors.
func rebuild(op string, like *yoneda.Denotator, factors []*yoneda.Denotator) (*yoneda.Denotator, error) {
	out, err := like.WithFactors(factors)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
