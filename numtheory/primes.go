// SPDX-License-Identifier: MIT

package numtheory

import (
	"sort"
	"sync"
)

// SieveLimit is the exclusive upper bound of the cached prime table.
const SieveLimit = 1 << 16

var (
	primesOnce sync.Once
	primes     []int64 // sorted, all primes < SieveLimit
)

// table returns the shared prime table, building it on first use.
func table() []int64 {
	primesOnce.Do(func() {
		composite := make([]bool, SieveLimit)
		primes = make([]int64, 0, 6542) // π(65536) = 6542
		var i, j int
		for i = 2; i < SieveLimit; i++ {
			if composite[i] {
				continue
			}
			primes = append(primes, int64(i))
			for j = i * i; j < SieveLimit; j += i {
				composite[j] = true
			}
		}
	})

	return primes
}

// IsPrime reports whether n is prime.
//
// Behavior:
//   - n < 2 is never prime.
//   - n < SieveLimit: binary search in the cached table.
//   - otherwise trial division by the cached primes up to √n, then by odd
//     numbers past the table if √n exceeds it.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	ps := table()
	if n < SieveLimit {
		k := sort.Search(len(ps), func(i int) bool { return ps[i] >= n })

		return k < len(ps) && ps[k] == n
	}
	for _, p := range ps {
		if p > n/p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	// √n is beyond the table: continue with odd candidates.
	for d := int64(SieveLimit + 1); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// Primes returns a copy of the cached prime table (all primes < SieveLimit).
func Primes() []int64 {
	ps := table()
	out := make([]int64, len(ps))
	copy(out, ps)

	return out
}
