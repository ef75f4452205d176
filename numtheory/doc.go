// Package numtheory provides the integer primitives used by the exact numeric
// types and by the modular coefficient rings: gcd and its extended (Bézout)
// form, lcm, a non-negative mod, modular inverse, division and power, and a
// primality test backed by a lazily built prime table.
//
// What:
//
//   - Gcd, ExtendedGcd, Lcm: classic Euclid on int64, results non-negative.
//   - Mod: remainder in [0, n) for any sign of the dividend.
//   - InverseMod, DivideMod: fail with ErrZeroDivisor when gcd(a, n) != 1.
//   - PowerMod: square-and-multiply; negative exponents go through InverseMod.
//   - IsPrime: binary search in a cached sieve table for small candidates,
//     trial division by the cached primes up to √n for larger ones.
//
// Complexity:
//
//   - Gcd/ExtendedGcd/InverseMod: O(log min(a, b)).
//   - PowerMod:                   O(log |e|) modular multiplications.
//   - IsPrime:                    O(log P) in range, O(√n / ln √n) beyond.
//
// Concurrency:
//
//   - All functions are pure. The prime table is built once under sync.Once
//     and read-only afterwards.
package numtheory
