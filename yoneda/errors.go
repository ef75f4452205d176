// SPDX-License-Identifier: MIT

package yoneda

import "errors"

var (
	// ErrDomain is the well-typedness error: a coordinate, factor, module or
	// injection index that does not match its Form.
	ErrDomain = errors.New("yoneda: domain error")

	// ErrNilForm indicates a nil Form argument.
	ErrNilForm = errors.New("yoneda: form is nil")

	// ErrNilDenotator indicates a nil *Denotator argument.
	ErrNilDenotator = errors.New("yoneda: denotator is nil")

	// ErrOutOfRange indicates a factor index outside [0, Len()).
	ErrOutOfRange = errors.New("yoneda: factor index out of range")

	// ErrUnknownLabel indicates a label that the form does not declare.
	ErrUnknownLabel = errors.New("yoneda: unknown label")

	// ErrDuplicateForm indicates a different form registered under a taken name.
	ErrDuplicateForm = errors.New("yoneda: form name already registered")

	// ErrUnknownForm indicates a lookup of an unregistered form name.
	ErrUnknownForm = errors.New("yoneda: unknown form")
)
