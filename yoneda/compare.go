// SPDX-License-Identifier: MIT
//
// File: compare.go
// Role: Total order and equality over Denotators.
// Determinism:
//   - Names never take part in the order.
//   - nil sorts before every non-nil denotator.

package yoneda

import "github.com/katalvlaran/denota/module"

// Compare returns -1, 0 or +1 ordering a and b by form, then address, then
// coordinate. Simple coordinates compare by element; Limit, List and Power
// compare their factors lexicographically (shorter first on a common prefix);
// Colimit compares the injection index, then the active factor.
func Compare(a, b *Denotator) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := CompareForms(a.form, b.form); c != 0 {
		return c
	}
	if c := module.CompareModules(a.address, b.address); c != 0 {
		return c
	}

	switch a.form.(type) {
	case *SimpleForm:
		return a.element.Compare(b.element)
	case *ColimitForm:
		if c := cmpInt(a.index, b.index); c != 0 {
			return c
		}
		return Compare(a.factors[0], b.factors[0])
	case *LimitForm, *PowerForm, *ListForm:
		return compareFactors(a.factors, b.factors)
	default:
		panic("yoneda: unknown form type in Compare")
	}
}

// Equal reports whether Compare(a, b) == 0.
func Equal(a, b *Denotator) bool { return Compare(a, b) == 0 }

func compareFactors(a, b []*Denotator) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmpInt(len(a), len(b))
}
