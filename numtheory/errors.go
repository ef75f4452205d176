// SPDX-License-Identifier: MIT

package numtheory

import "errors"

var (
	// ErrZeroDivisor is returned when an operand has no inverse modulo n.
	ErrZeroDivisor = errors.New("numtheory: zero divisor")

	// ErrBadModulus is returned for a modulus n <= 0.
	ErrBadModulus = errors.New("numtheory: modulus must be positive")
)
