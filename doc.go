// Package denota is a categorical data algebra for music-theoretic data:
// structural types (Forms), their addressed instances (Denotators), the
// exact arithmetic behind simple values, and generic traversal and set
// algebra over denotator trees.
//
// Under the hood, everything is organized in subpackages:
//
//	numtheory/  gcd, modular arithmetic, primality
//	arith/      exact Rational and rectangular/polar Complex numbers
//	ring/       coefficient rings and RingString, formal word sums + folding
//	module/     value modules Z, Q, R, C, Zn and their string counterparts
//	yoneda/     Form, Denotator, validating factories, Registry
//	traverse/   Apply, Map and Select over denotator trees
//	sets/       union/intersection/difference, concat, flat map/filter/reduce/zip
//	project/    YAML project files into a Registry of named denotators
//	cmd/denota  command-line front end
//
// Quick example:
//
//	reg := yoneda.NewRegistry()
//	pitch, _ := reg.NewSimpleForm("Pitch", module.Z)
//	chord, _ := reg.NewPowerForm("Chord", pitch)
//
//	c, _ := reg.Make("c", "Pitch", 60)
//	e, _ := reg.Make("e", "Pitch", 64)
//	triad, _ := yoneda.NewPower("triad", chord, []*yoneda.Denotator{c, e})
//
//	u, _ := sets.Union(triad, other)
//
// Every package reports failures as wrapped sentinel errors; match them with
// errors.Is. No package keeps global mutable state.
package denota
