// SPDX-License-Identifier: MIT
//
// File: fold.go
// Role: Folding of RingStrings onto the real line.
// Determinism:
//   - Output depends only on the words and ToReal(coefficients), never on map
//     iteration order.
//   - Words are folded pairwise right to left in word order.

package ring

import (
	"math"
	"slices"
	"sort"
)

// keyBytes is the number of leading word bytes encoded by wordKey. Six bytes
// are the longest prefix whose base-256 fraction a float64 holds exactly, so
// keys order words strictly up to that prefix and tie beyond it.
const keyBytes = 6

// keyScale is 256^keyBytes.
const keyScale = 1 << (8 * keyBytes)

// degenerateHalfWidth is the half window used when all words share one key value.
const degenerateHalfWidth = 0.5

// window is the interval assigned to one distinct key value.
type window struct {
	low, high float64
}

// Fold projects each RingString onto one real number.
//
// Implementation:
//   - Stage 1: collect every (word, wordKey(word), ToReal(coefficient)) triple.
//   - Stage 2: sort the distinct key values and give each a window bounded by
//     the midpoints to its neighbours; the outer windows are mirrored. A single
//     distinct key value gets [v-0.5, v+0.5].
//   - Stage 3: each word maps to remap(coefficient, window).
//   - Stage 4: the word values of one input are folded pairwise from the right
//     with pair(a, b) = remap(unmap(a) + unmap(b)) over the global window.
//
// Behavior highlights:
//   - Inputs without terms fold to 0.
//   - Words sharing their first keyBytes bytes share a key and a window.
//   - Within one key value, a larger coefficient always folds higher.
//
// Complexity: O(N log N) for N terms in total.
func Fold[T any](values []*RingString[T]) []float64 {
	out := make([]float64, len(values))

	// Stage 1: distinct keys across all inputs.
	keys := make([]uint64, 0)
	for _, s := range values {
		if s == nil {
			continue
		}
		for w := range s.terms {
			keys = append(keys, wordKey(w))
		}
	}
	if len(keys) == 0 {
		return out
	}
	slices.Sort(keys)
	distinct := keys[:1]
	for _, k := range keys[1:] {
		if k != distinct[len(distinct)-1] {
			distinct = append(distinct, k)
		}
	}

	// Stage 2: windows.
	windows := windowsFor(distinct)
	lo, hi := windows[distinct[0]].low, windows[distinct[len(distinct)-1]].high

	// Stage 3 and 4.
	var (
		words []string
		acc   float64
		w     window
		i     int
	)
	for idx, s := range values {
		if s == nil || len(s.terms) == 0 {
			continue
		}
		words = s.Words()
		sort.SliceStable(words, func(a, b int) bool { return wordKey(words[a]) < wordKey(words[b]) })
		vals := make([]float64, len(words))
		for i = range words {
			w = windows[wordKey(words[i])]
			vals[i] = remap(s.ring.ToReal(s.terms[words[i]]), w.low, w.high)
		}
		acc = vals[len(vals)-1]
		for i = len(vals) - 2; i >= 0; i-- {
			acc = remap(unmap(vals[i], lo, hi)+unmap(acc, lo, hi), lo, hi)
		}
		out[idx] = acc
	}

	return out
}

// windowsFor assigns a window to every sorted distinct key.
func windowsFor(distinct []uint64) map[uint64]window {
	ws := make(map[uint64]window, len(distinct))
	k := len(distinct)
	if k == 1 {
		v := keyValue(distinct[0])
		ws[distinct[0]] = window{low: v - degenerateHalfWidth, high: v + degenerateHalfWidth}

		return ws
	}
	var low, high float64
	for j, key := range distinct {
		v := keyValue(key)
		if j == 0 {
			low = v - (keyValue(distinct[1])-v)/2
		} else {
			low = (keyValue(distinct[j-1]) + v) / 2
		}
		if j == k-1 {
			high = v + (v-keyValue(distinct[j-1]))/2
		} else {
			high = (v + keyValue(distinct[j+1])) / 2
		}
		ws[key] = window{low: low, high: high}
	}

	return ws
}

// wordKey reads the first keyBytes bytes of word as a big-endian integer,
// padding short words with zero bytes. It is monotone in byte-lexicographic
// order and strictly so on the first keyBytes bytes.
func wordKey(word string) uint64 {
	var key uint64
	for i := 0; i < keyBytes; i++ {
		key <<= 8
		if i < len(word) {
			key |= uint64(word[i])
		}
	}

	return key
}

// keyValue places a key in [0, 1) as base-256 digits after the radix point.
// The conversion is exact because keys are below 2^53.
func keyValue(key uint64) float64 {
	return float64(key) / keyScale
}

// remap maps x ∈ ℝ into the open interval (low, high); remap(0) is the midpoint.
func remap(x, low, high float64) float64 {
	return low + (high-low)*(0.5+math.Atan(x)/math.Pi)
}

// unmap is the inverse of remap over [low, high].
func unmap(y, low, high float64) float64 {
	return math.Tan(math.Pi * ((y-low)/(high-low) - 0.5))
}
