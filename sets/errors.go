// SPDX-License-Identifier: MIT

package sets

import (
	"errors"
	"fmt"
)

var (
	// ErrStructure indicates operands that cannot be combined.
	ErrStructure = errors.New("sets: structural mismatch")

	// ErrNoCommonAddress indicates operand addresses without a common module.
	ErrNoCommonAddress = fmt.Errorf("%w: no common address", ErrStructure)

	// ErrArity indicates a function of the wrong arity.
	ErrArity = errors.New("sets: wrong function arity")

	// ErrNilDenotator indicates a nil operand.
	ErrNilDenotator = errors.New("sets: denotator is nil")
)
