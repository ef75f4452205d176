// SPDX-License-Identifier: MIT
package traverse_test

import (
	"testing"

	"github.com/katalvlaran/denota/module"
	"github.com/katalvlaran/denota/traverse"
	"github.com/katalvlaran/denota/yoneda"
)

// benchScore builds a Score of n notes, one per onset.
func benchScore(b *testing.B, f *fixture, n int) *yoneda.Denotator {
	notes := make([]*yoneda.Denotator, n)
	for i := range notes {
		notes[i] = f.n(b, float64(i), int64(48+i%24))
	}

	return f.scoreOf(b, notes...)
}

// BenchmarkMap_Transpose1000 rebuilds every pitch of a 1000-note score.
func BenchmarkMap_Transpose1000(b *testing.B) {
	f := newFixture(b)
	s := benchScore(b, f, 1000)
	up := func(d *yoneda.Denotator) (*yoneda.Denotator, error) {
		return d.WithElement(module.Int(pitchOf(d) + 12))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.Map(s, traverse.FormIs(f.pitch), up); err != nil {
			b.Fatalf("Map failed: %v", err)
		}
	}
}

// BenchmarkMap_Identity1000 walks the same score without replacing any node.
func BenchmarkMap_Identity1000(b *testing.B) {
	f := newFixture(b)
	s := benchScore(b, f, 1000)
	identity := func(d *yoneda.Denotator) (*yoneda.Denotator, error) { return d, nil }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.Map(s, nil, identity); err != nil {
			b.Fatalf("Map failed: %v", err)
		}
	}
}

// BenchmarkSelect_1000 collects the pitches of a 1000-note score.
func BenchmarkSelect_1000(b *testing.B) {
	f := newFixture(b)
	s := benchScore(b, f, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.Select(s, traverse.FormIs(f.pitch)); err != nil {
			b.Fatalf("Select failed: %v", err)
		}
	}
}
