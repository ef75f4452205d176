// Package yoneda implements the categorical data model: Forms, the structural
// type descriptors, and Denotators, their addressed instances.
//
// What:
//
//   - Form is a sealed sum of exactly five variants: *SimpleForm (wraps a
//     module), *LimitForm (product), *ColimitForm (tagged union), *PowerForm
//     (finite sets) and *ListForm (finite sequences). Forms are immutable and
//     shared by every Denotator built on them.
//   - Denotator is (name, form, address, coordinate). The coordinate is a
//     module.Element for Simple forms and a list of factor Denotators for the
//     other kinds; a Colimit holds exactly one factor plus its injection index.
//   - Compare is a total order over Denotators: form, then address, then the
//     kind-specific coordinate order (lexicographic for Limit, List and Power,
//     index then payload for Colimit). Power factors are kept sorted by it and
//     free of duplicates.
//   - Registry is an explicit, caller-owned catalogue of Forms by name. There
//     is no process-wide registry.
//
// Construction:
//
//	reg := yoneda.NewRegistry()
//	pitch, _ := reg.NewSimpleForm("Pitch", module.Q)
//	onset, _ := reg.NewSimpleForm("Onset", module.R)
//	note, _ := reg.NewLimitForm("Note", []yoneda.Form{onset, pitch}, "onset", "pitch")
//	score, _ := reg.NewPowerForm("Score", note)
//
// Every factory validates its input and returns either a complete, valid
// value or an error wrapping ErrDomain. Factories copy their slice inputs.
//
// Ownership:
//
//   - Functions named New*, With* and Clone never mutate their inputs.
//   - SetElement, SetFactor, AppendFactor, PrependFactor, RemoveFactor, SetName
//     and Canonicalize are destructive: they mutate the receiver in place.
//     Factor pointers are shared between every parent built from them, so a
//     destructive change to a factor is visible through all of those parents.
//     Call Clone first when the old value must stay intact.
//
// Limits:
//
//   - All recursive algorithms (Compare, Clone, WithAddress, String) recurse
//     once per nesting level with no built-in bound; pathological nesting can
//     exhaust the goroutine stack.
package yoneda
