// SPDX-License-Identifier: MIT

package arith

import "errors"

var (
	// ErrZeroDenominator indicates a rational constructed with denominator 0.
	ErrZeroDenominator = errors.New("arith: zero denominator")

	// ErrDivisionByZero indicates a quotient, inverse or logarithm of zero.
	ErrDivisionByZero = errors.New("arith: division by zero")

	// ErrFormat indicates text that does not parse as the requested number.
	ErrFormat = errors.New("arith: invalid number format")

	// ErrOverflow indicates a rational whose reduced parts leave the int64 range.
	ErrOverflow = errors.New("arith: int64 overflow")
)
