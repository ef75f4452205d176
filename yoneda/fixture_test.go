// SPDX-License-Identifier: MIT
package yoneda_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/denota/module"
	"github.com/katalvlaran/denota/yoneda"
)

// score is the shared fixture: notes with a real onset and an integer pitch.
type score struct {
	reg    *yoneda.Registry
	onset  *yoneda.SimpleForm
	pitch  *yoneda.SimpleForm
	note   *yoneda.LimitForm
	score  *yoneda.PowerForm
	voice  *yoneda.ListForm
	choice *yoneda.ColimitForm
}

func newScore(t testing.TB) *score {
	t.Helper()
	s := &score{reg: yoneda.NewRegistry()}
	var err error
	s.onset, err = s.reg.NewSimpleForm("Onset", module.R)
	require.NoError(t, err)
	s.pitch, err = s.reg.NewSimpleForm("Pitch", module.Z)
	require.NoError(t, err)
	s.note, err = s.reg.NewLimitForm("Note", []yoneda.Form{s.onset, s.pitch}, "onset", "pitch")
	require.NoError(t, err)
	s.score, err = s.reg.NewPowerForm("Score", s.note)
	require.NoError(t, err)
	s.voice, err = s.reg.NewListForm("Voice", s.pitch)
	require.NoError(t, err)
	s.choice, err = s.reg.NewColimitForm("Choice", []yoneda.Form{s.pitch, s.onset}, "p", "o")
	require.NoError(t, err)

	return s
}

func (s *score) p(t testing.TB, n int64) *yoneda.Denotator {
	t.Helper()
	d, err := yoneda.NewSimple("", s.pitch, module.Int(n))
	require.NoError(t, err)

	return d
}

func (s *score) o(t testing.TB, x float64) *yoneda.Denotator {
	t.Helper()
	d, err := yoneda.NewSimple("", s.onset, module.Real(x))
	require.NoError(t, err)

	return d
}

func (s *score) n(t testing.TB, onset float64, pitch int64) *yoneda.Denotator {
	t.Helper()
	d, err := yoneda.NewLimit("", s.note, []*yoneda.Denotator{s.o(t, onset), s.p(t, pitch)})
	require.NoError(t, err)

	return d
}

func (s *score) list(t testing.TB, pitches ...int64) *yoneda.Denotator {
	t.Helper()
	elems := make([]*yoneda.Denotator, len(pitches))
	for i, p := range pitches {
		elems[i] = s.p(t, p)
	}
	d, err := yoneda.NewList("", s.voice, elems)
	require.NoError(t, err)

	return d
}

// pitches flattens a Voice or a Power of Pitch-bearing notes into ints.
func pitches(t testing.TB, d *yoneda.Denotator) []int64 {
	t.Helper()
	var out []int64
	for _, f := range d.Factors() {
		e := f.Element()
		if e == nil {
			pf, err := f.FactorByLabel("pitch")
			require.NoError(t, err)
			e = pf.Element()
		}
		out = append(out, e.(*module.NumberElement[int64]).Value())
	}

	return out
}
