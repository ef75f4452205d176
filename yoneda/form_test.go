// SPDX-License-Identifier: MIT
package yoneda_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/denota/module"
	"github.com/katalvlaran/denota/yoneda"
)

func TestMakeForms_Errors(t *testing.T) {
	pitch, err := yoneda.MakeSimpleForm("Pitch", module.Z)
	require.NoError(t, err)

	_, err = yoneda.MakeSimpleForm("", module.Z)
	assert.ErrorIs(t, err, yoneda.ErrDomain)
	_, err = yoneda.MakeSimpleForm("X", nil)
	assert.ErrorIs(t, err, yoneda.ErrDomain)
	_, err = yoneda.MakeLimitForm("L", []yoneda.Form{pitch, nil})
	assert.ErrorIs(t, err, yoneda.ErrNilForm)
	_, err = yoneda.MakeLimitForm("L", []yoneda.Form{pitch, pitch}, "a")
	assert.ErrorIs(t, err, yoneda.ErrDomain)
	_, err = yoneda.MakeLimitForm("L", []yoneda.Form{pitch, pitch}, "a", "a")
	assert.ErrorIs(t, err, yoneda.ErrDomain)
	_, err = yoneda.MakeColimitForm("C", nil)
	assert.ErrorIs(t, err, yoneda.ErrDomain)
	_, err = yoneda.MakePowerForm("P", nil)
	assert.ErrorIs(t, err, yoneda.ErrNilForm)
	_, err = yoneda.MakeListForm("", pitch)
	assert.ErrorIs(t, err, yoneda.ErrDomain)

	// the empty product is a valid form
	unit, err := yoneda.MakeLimitForm("Unit", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, unit.Len())
}

func TestForm_Accessors(t *testing.T) {
	s := newScore(t)

	assert.Equal(t, yoneda.Limit, s.note.Kind())
	assert.Equal(t, "Note:.Limit(onset:Onset,pitch:Pitch)", s.note.String())
	assert.Equal(t, "Score:.Power(Note)", s.score.String())
	assert.Equal(t, "Pitch:.Simple(Z)", s.pitch.String())
	assert.Equal(t, []string{"onset", "pitch"}, s.note.Labels())

	f, err := s.note.Factor(1)
	require.NoError(t, err)
	assert.Same(t, s.pitch, f)
	_, err = s.note.Factor(2)
	assert.ErrorIs(t, err, yoneda.ErrOutOfRange)

	// Factors hands out a copy
	fs := s.note.Factors()
	fs[0] = nil
	f, _ = s.note.Factor(0)
	assert.NotNil(t, f)

	i, ok := s.choice.LabelIndex("o")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = s.choice.LabelIndex("x")
	assert.False(t, ok)
}

func TestCompareForms(t *testing.T) {
	s := newScore(t)
	pitchQ, err := yoneda.MakeSimpleForm("Pitch", module.Q)
	require.NoError(t, err)
	pitchZ, err := yoneda.MakeSimpleForm("Pitch", module.Z)
	require.NoError(t, err)

	assert.True(t, yoneda.FormsEqual(s.pitch, pitchZ), "structural equality")
	assert.False(t, yoneda.FormsEqual(s.pitch, pitchQ))
	assert.Equal(t, -1, yoneda.CompareForms(s.pitch, pitchQ), "Z before Q")
	assert.Equal(t, -1, yoneda.CompareForms(s.pitch, s.note), "Simple before Limit")
	assert.Equal(t, -1, yoneda.CompareForms(s.onset, s.pitch), "by name within kind")
	assert.Equal(t, 1, yoneda.CompareForms(s.note, nil))
}

func TestKind_String(t *testing.T) {
	for _, k := range []yoneda.Kind{yoneda.Simple, yoneda.Limit, yoneda.Colimit, yoneda.Power, yoneda.List} {
		back, ok := yoneda.ParseKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, back)
	}
	_, ok := yoneda.ParseKind("Cone")
	assert.False(t, ok)
	assert.Equal(t, "Kind(?)", yoneda.Kind(9).String())
}
