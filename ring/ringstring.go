// SPDX-License-Identifier: MIT
//
// File: ringstring.go
// Role: RingString[T], finite formal linear combinations of words over Ring[T].
// Policy:
//   - Zero coefficients are pruned on every update; terms never holds a zero.
//   - Add/Subtract are the only mutators; all other operations allocate.
//   - Binary operations assume both operands share one ring instance.

package ring

import (
	"sort"
	"strconv"
	"strings"
)

// RingString is a mapping word → nonzero coefficient in a Ring[T].
type RingString[T any] struct {
	ring  Ring[T]
	terms map[string]T
}

// New returns the zero RingString over r.
func New[T any](r Ring[T]) *RingString[T] {
	return &RingString[T]{ring: r, terms: make(map[string]T)}
}

// Term returns c*word over r (the zero value if c is zero).
func Term[T any](r Ring[T], word string, c T) *RingString[T] {
	s := New(r)
	s.Add(word, c)

	return s
}

// One returns the unit 1*"" over r.
func One[T any](r Ring[T]) *RingString[T] {
	return Term(r, "", r.One())
}

// Ring returns the coefficient ring.
func (s *RingString[T]) Ring() Ring[T] { return s.ring }

// Add adds c to the coefficient of word, removing the term if the result is
// zero. Add mutates s.
func (s *RingString[T]) Add(word string, c T) {
	if s.ring.IsZero(c) {
		return
	}
	// Going through the ring normalises representatives (Z/nZ).
	if old, ok := s.terms[word]; ok {
		c = s.ring.Add(old, c)
	} else {
		c = s.ring.Add(s.ring.Zero(), c)
	}
	if s.ring.IsZero(c) {
		delete(s.terms, word)
		return
	}
	s.terms[word] = c
}

// Subtract subtracts c from the coefficient of word. Subtract mutates s.
func (s *RingString[T]) Subtract(word string, c T) {
	s.Add(word, s.ring.Neg(c))
}

// Coefficient returns the coefficient of word, zero if absent.
func (s *RingString[T]) Coefficient(word string) T {
	if c, ok := s.terms[word]; ok {
		return c
	}

	return s.ring.Zero()
}

// Has reports whether word carries a nonzero coefficient.
func (s *RingString[T]) Has(word string) bool {
	_, ok := s.terms[word]

	return ok
}

// Words returns the words with nonzero coefficients in ascending order.
func (s *RingString[T]) Words() []string {
	words := make([]string, 0, len(s.terms))
	for w := range s.terms {
		words = append(words, w)
	}
	sort.Strings(words)

	return words
}

// Len returns the number of stored terms.
func (s *RingString[T]) Len() int { return len(s.terms) }

// IsZero reports whether s has no terms.
func (s *RingString[T]) IsZero() bool { return len(s.terms) == 0 }

// IsOne reports whether s is exactly 1*"".
func (s *RingString[T]) IsOne() bool {
	c, ok := s.terms[""]

	return ok && len(s.terms) == 1 && s.ring.IsOne(c)
}

// Clone returns an independent copy.
func (s *RingString[T]) Clone() *RingString[T] {
	out := &RingString[T]{ring: s.ring, terms: make(map[string]T, len(s.terms))}
	for w, c := range s.terms {
		out.terms[w] = c
	}

	return out
}

// Sum returns s + t.
func (s *RingString[T]) Sum(t *RingString[T]) *RingString[T] {
	out := s.Clone()
	for w, c := range t.terms {
		out.Add(w, c)
	}

	return out
}

// Difference returns s - t.
func (s *RingString[T]) Difference(t *RingString[T]) *RingString[T] {
	out := s.Clone()
	for w, c := range t.terms {
		out.Subtract(w, c)
	}

	return out
}

// Product returns the convolution s * t: every pair of terms (w1, c1),
// (w2, c2) contributes c1*c2 to the word w1+w2.
//
// Complexity: O(|s|·|t|).
func (s *RingString[T]) Product(t *RingString[T]) *RingString[T] {
	out := New(s.ring)
	for w1, c1 := range s.terms {
		for w2, c2 := range t.terms {
			out.Add(w1+w2, s.ring.Mul(c1, c2))
		}
	}

	return out
}

// Neg returns -s.
func (s *RingString[T]) Neg() *RingString[T] {
	out := &RingString[T]{ring: s.ring, terms: make(map[string]T, len(s.terms))}
	for w, c := range s.terms {
		out.terms[w] = s.ring.Neg(c)
	}

	return out
}

// Scale returns c*s.
func (s *RingString[T]) Scale(c T) *RingString[T] {
	out := New(s.ring)
	for w, v := range s.terms {
		out.Add(w, s.ring.Mul(c, v))
	}

	return out
}

// Compare sorts both key sets and compares them pairwise: first the words
// lexicographically, then the coefficients with the ring's Compare. If one
// side runs out of keys first it sorts first.
func (s *RingString[T]) Compare(t *RingString[T]) int {
	sw, tw := s.Words(), t.Words()
	n := len(sw)
	if len(tw) < n {
		n = len(tw)
	}
	for i := 0; i < n; i++ {
		if c := strings.Compare(sw[i], tw[i]); c != 0 {
			return c
		}
		if c := s.ring.Compare(s.terms[sw[i]], t.terms[tw[i]]); c != 0 {
			return c
		}
	}

	return compareInt(int64(len(sw)), int64(len(tw)))
}

// Equal reports Compare(t) == 0.
func (s *RingString[T]) Equal(t *RingString[T]) bool {
	if len(s.terms) != len(t.terms) {
		return false
	}

	return s.Compare(t) == 0
}

// String renders the terms as c*"word" joined by " + " in word order; the zero
// value renders as "0".
func (s *RingString[T]) String() string {
	if len(s.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, w := range s.Words() {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(s.ring.Format(s.terms[w]))
		b.WriteByte('*')
		b.WriteString(strconv.Quote(w))
	}

	return b.String()
}
