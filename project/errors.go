// SPDX-License-Identifier: MIT

package project

import "errors"

var (
	// ErrInvalid indicates a malformed project document.
	ErrInvalid = errors.New("project: invalid document")

	// ErrTooLarge indicates input above the configured size limit.
	ErrTooLarge = errors.New("project: input too large")

	// ErrUnknownForm indicates a reference to an undeclared form.
	ErrUnknownForm = errors.New("project: unknown form")

	// ErrCyclicForm indicates forms that reference each other in a cycle.
	ErrCyclicForm = errors.New("project: cyclic form definition")

	// ErrUnknownDenotator indicates a reference to an undeclared denotator.
	ErrUnknownDenotator = errors.New("project: unknown denotator")

	// ErrDuplicateName indicates a form or denotator declared twice.
	ErrDuplicateName = errors.New("project: duplicate name")
)
