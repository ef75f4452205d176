// SPDX-License-Identifier: MIT
//
// File: module.go
// Role: Module / Element contract and the shared module ordering.

package module

import "strings"

// Module is an algebraic value domain.
type Module interface {
	// Name is unique per module, e.g. "Z", "Q", "Z7", "RString".
	Name() string
	Equal(other Module) bool
	Zero() Element
	// Parse reads an element from its String form.
	Parse(text string) (Element, error)
	// Cast embeds e into this module; false if no embedding exists.
	Cast(e Element) (Element, bool)
}

// Element is a member of a Module.
type Element interface {
	Module() Module
	// Compare is a total order: elements of different modules order by
	// module (see CompareModules), elements of one module by value.
	Compare(other Element) int
	Equal(other Element) bool
	String() string
}

// family separates number modules from string modules.
type family int

const (
	numberFamily family = iota
	stringFamily
)

// Levels of the number tower.
const (
	levelZ = iota
	levelQ
	levelR
	levelC
)

// position locates a built-in module in the embedding lattice.
// modulus > 0 marks the Zn branch, which sits outside the tower.
type position struct {
	family  family
	level   int
	modulus int64
}

// positioned is implemented by the built-in modules.
type positioned interface {
	position() position
}

// embeds reports whether a module at p embeds into one at q.
func (p position) embeds(q position) bool {
	if p.modulus != q.modulus {
		return false
	}

	return p.family <= q.family && p.level <= q.level
}

// CompareModules orders modules: built-in modules by (modulus, family,
// level), foreign modules after them, ties by name.
func CompareModules(a, b Module) int {
	pa, aok := a.(positioned)
	pb, bok := b.(positioned)
	switch {
	case aok && !bok:
		return -1
	case !aok && bok:
		return 1
	case aok && bok:
		if c := comparePosition(pa.position(), pb.position()); c != 0 {
			return c
		}
	}

	return strings.Compare(a.Name(), b.Name())
}

func comparePosition(p, q position) int {
	switch {
	case p.modulus != q.modulus:
		return cmpInt64(p.modulus, q.modulus)
	case p.family != q.family:
		return cmpInt64(int64(p.family), int64(q.family))
	}

	return cmpInt64(int64(p.level), int64(q.level))
}

// compareAcross orders two elements of different modules, or returns
// (0, false) when they share a module.
func compareAcross(a, b Element) (int, bool) {
	if a.Module().Equal(b.Module()) {
		return 0, false
	}

	return CompareModules(a.Module(), b.Module()), true
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
