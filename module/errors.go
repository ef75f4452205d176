// SPDX-License-Identifier: MIT

package module

import "errors"

var (
	// ErrUnknownModule is returned by ByName for an unrecognised module name.
	ErrUnknownModule = errors.New("module: unknown module")

	// ErrWrongModule indicates an element that does not belong to the module.
	ErrWrongModule = errors.New("module: element of wrong module")

	// ErrParse indicates text that is not an element of the module.
	ErrParse = errors.New("module: cannot parse element")

	// ErrNotFoldable indicates elements that cannot be folded to reals.
	ErrNotFoldable = errors.New("module: elements not foldable")
)
