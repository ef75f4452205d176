// SPDX-License-Identifier: MIT

package ring

import "errors"

var (
	// ErrFormat indicates text that is not a valid coefficient or RingString.
	ErrFormat = errors.New("ring: invalid format")

	// ErrBadModulus indicates a modular ring with modulus < 2.
	ErrBadModulus = errors.New("ring: modulus must be >= 2")
)
