// SPDX-License-Identifier: MIT
//
// File: common.go
// Role: Common-module lookup and name resolution for the built-in modules.

package module

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	numberTower = [...]Module{levelZ: Z, levelQ: Q, levelR: R, levelC: C}
	stringTower = [...]Module{levelZ: ZString, levelQ: QString, levelR: RString, levelC: CString}
)

// Common returns the smallest built-in module both a and b embed into.
//
// Behavior:
//   - Equal modules unify to a.
//   - Built-in modules unify at (max family, max level) of the tower; the Zn
//     branch only unifies with the same modulus.
//   - Foreign modules only unify when Equal.
//
// Returns (nil, false) when no common module exists.
func Common(a, b Module) (Module, bool) {
	if a == nil || b == nil {
		return nil, false
	}
	if a.Equal(b) {
		return a, true
	}
	pa, aok := a.(positioned)
	pb, bok := b.(positioned)
	if !aok || !bok {
		return nil, false
	}
	p, q := pa.position(), pb.position()
	if p.modulus != q.modulus {
		return nil, false
	}
	fam := p.family
	if q.family > fam {
		fam = q.family
	}
	if p.modulus > 0 {
		// Zn and ZnString of one modulus: the string module is the common one.
		if fam == stringFamily {
			m, err := ZnString(p.modulus)
			if err != nil {
				return nil, false
			}

			return m, true
		}

		return a, true
	}
	level := p.level
	if q.level > level {
		level = q.level
	}
	if fam == stringFamily {
		return stringTower[level], true
	}

	return numberTower[level], true
}

// ByName resolves a built-in module name: Z, Q, R, C, Zn (n >= 2),
// ZString, QString, RString, CString, ZnString.
// Returns ErrUnknownModule otherwise.
func ByName(name string) (Module, error) {
	for _, m := range numberTower {
		if m.Name() == name {
			return m, nil
		}
	}
	for _, m := range stringTower {
		if m.Name() == name {
			return m, nil
		}
	}
	if rest, ok := strings.CutPrefix(name, "Z"); ok {
		digits, isString := strings.CutSuffix(rest, "String")
		n, err := strconv.ParseInt(digits, 10, 64)
		if err == nil && n >= 2 && strconv.FormatInt(n, 10) == digits {
			if isString {
				return ZnString(n)
			}

			return Zn(n)
		}
	}

	return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownModule)
}
