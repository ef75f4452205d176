// Package ring provides the coefficient rings and the formal symbol ring
// ("ring of strings") used by string-valued simple forms.
//
// What:
//
//   - Ring[T]:       a small capability interface (zero, one, add, sub, mul,
//     neg, compare, zero-test, real projection, text codec) instantiated at
//     compile time for each concrete coefficient domain.
//   - Integers, Rationals, Reals, Complexes, Modular(n): the concrete rings.
//   - RingString[T]: finite formal linear combinations of text words over a
//     Ring[T]. Terms with a zero coefficient are never stored.
//   - Fold:          deterministic projection of a slice of RingStrings to
//     real numbers for ordering and display.
//
// Text form:
//
//	3*"c" + -1*"e"     // Integers
//	1/2*"" + 2*"g"     // Rationals, "" is the empty word
//	0                  // the zero RingString
//
// Parse is the exact inverse of String for every ring in this package.
//
// Order and overflow:
//
//   - Every Compare is a total order. Reals and Complexes place NaN before
//     every number and treat it as equal only to itself.
//   - Integers panics with an error wrapping arith.ErrOverflow rather than
//     wrapping around; Rationals inherits the same policy from arith.
//
// Concurrency:
//
//   - Rings are immutable values. RingString is not safe for concurrent
//     mutation; Add/Subtract mutate the receiver, everything else returns a
//     fresh value.
package ring
