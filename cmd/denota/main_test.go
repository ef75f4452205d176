// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chords = "testdata/chords.yaml"

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestForms(t *testing.T) {
	code, out, _ := runCLI("-p", chords, "forms")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "Chord:.Power(Pitch)\nPitch:.Simple(Z)\nWord:.Simple(ZString)\nWords:.List(Word)\n", out)
}

func TestShow(t *testing.T) {
	code, out, _ := runCLI("-p", chords, "show", "a")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "a:@Z:Chord(@Z:Pitch(1), @Z:Pitch(3), @Z:Pitch(5))\n", out)

	code, _, errOut := runCLI("-p", chords, "show", "zz")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "unknown denotator")
}

func TestSet(t *testing.T) {
	tests := []struct {
		op   string
		want string
	}{
		{"union", "a:@Z:Chord(@Z:Pitch(1), @Z:Pitch(2), @Z:Pitch(3), @Z:Pitch(4), @Z:Pitch(5))\n"},
		{"intersection", "a:@Z:Chord(@Z:Pitch(3))\n"},
		{"difference", "a:@Z:Chord(@Z:Pitch(1), @Z:Pitch(5))\n"},
		{"symmetric", "a:@Z:Chord(@Z:Pitch(1), @Z:Pitch(2), @Z:Pitch(4), @Z:Pitch(5))\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.op, func(t *testing.T) {
			code, out, _ := runCLI("-p", chords, "set", tc.op, "a", "b")
			require.Equal(t, exitOK, code)
			assert.Equal(t, tc.want, out)
		})
	}

	code, _, _ := runCLI("-p", chords, "set", "xor", "a", "b")
	assert.Equal(t, exitUsage, code)
	code, _, errOut := runCLI("-p", chords, "set", "union", "a", "lyrics")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "structural mismatch")
}

func TestSelect(t *testing.T) {
	code, out, _ := runCLI("-p", chords, "select", "b", "--form", "Pitch")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "@Z:Pitch(2)\n@Z:Pitch(3)\n@Z:Pitch(4)\n", out)

	code, _, _ = runCLI("-p", chords, "select", "b")
	assert.Equal(t, exitUsage, code, "--form is required")

	code, _, errOut := runCLI("-p", chords, "select", "b", "--form", "Pitch", "--max-depth", "0")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "maximum depth exceeded")
}

func TestFold(t *testing.T) {
	code, out, _ := runCLI("-p", chords, "fold", "lyrics")
	require.Equal(t, exitOK, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	var prev float64
	for i, l := range lines {
		fields := strings.Split(l, "\t")
		require.Len(t, fields, 2)
		x, err := strconv.ParseFloat(fields[1], 64)
		require.NoError(t, err)
		if i > 0 {
			assert.Greater(t, x, prev, "words in byte order fold in increasing order")
		}
		prev = x
	}

	code, _, _ = runCLI("-p", chords, "fold", "a")
	assert.Equal(t, exitFailure, code, "Z is not foldable")
}

func TestPrime(t *testing.T) {
	code, out, _ := runCLI("prime", "65537")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "65537 prime\n", out)

	_, out, _ = runCLI("prime", "91")
	assert.Equal(t, "91 not prime\n", out)

	code, _, _ = runCLI("prime", "x")
	assert.Equal(t, exitUsage, code)
}

func TestUsage(t *testing.T) {
	code, _, errOut := runCLI("forms")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "--project")

	code, _, _ = runCLI("-p", chords, "show")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI("nope")
	assert.Equal(t, exitUsage, code)
}

func TestVerbose(t *testing.T) {
	code, _, errOut := runCLI("-v", "-p", chords, "forms")
	require.Equal(t, exitOK, code)
	assert.Contains(t, errOut, "project loaded")
}
