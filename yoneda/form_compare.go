// SPDX-License-Identifier: MIT

package yoneda

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/denota/module"
)

// CompareForms orders forms by kind, then name, then structure.
// Identical pointers compare equal without descending.
func CompareForms(a, b Form) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmpInt(int(a.Kind()), int(b.Kind())); c != 0 {
		return c
	}
	if c := strings.Compare(a.Name(), b.Name()); c != 0 {
		return c
	}
	switch fa := a.(type) {
	case *SimpleForm:
		fb := b.(*SimpleForm)
		if fa.mod.Equal(fb.mod) {
			return 0
		}
		return module.CompareModules(fa.mod, fb.mod)
	case *LimitForm:
		return compareCompound(&fa.compound, &b.(*LimitForm).compound)
	case *ColimitForm:
		return compareCompound(&fa.compound, &b.(*ColimitForm).compound)
	case *PowerForm:
		return CompareForms(fa.elem, b.(*PowerForm).elem)
	case *ListForm:
		return CompareForms(fa.elem, b.(*ListForm).elem)
	default:
		panic(fmt.Sprintf("yoneda: unknown form type %T", a))
	}
}

func compareCompound(a, b *compound) int {
	if c := cmpInt(len(a.factors), len(b.factors)); c != 0 {
		return c
	}
	for i := range a.factors {
		if c := CompareForms(a.factors[i], b.factors[i]); c != 0 {
			return c
		}
	}
	switch {
	case a.labels == nil && b.labels == nil:
		return 0
	case a.labels == nil:
		return -1
	case b.labels == nil:
		return 1
	}
	for i := range a.labels {
		if c := strings.Compare(a.labels[i], b.labels[i]); c != 0 {
			return c
		}
	}

	return 0
}

// FormsEqual reports CompareForms(a, b) == 0.
func FormsEqual(a, b Form) bool {
	return CompareForms(a, b) == 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
