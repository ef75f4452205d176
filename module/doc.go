// Package module defines the Module / Element contract consumed by the form
// and denotator model, together with the concrete modules it ships with:
// the number tower Z ⊂ Q ⊂ R ⊂ C, the modular rings Zn, and the string rings
// ZString, QString, RString, CString and ZnString built on package ring.
//
// Modules play two roles:
//
//   - value domains of simple forms (a simple denotator holds an Element of
//     its form's module);
//   - addresses of denotators. Two denotators with different addresses can be
//     combined only through Common, which embeds both into a shared module.
//
// Common follows the embeddings Z ⊂ Q ⊂ R ⊂ C, number ring ⊂ string ring of
// the same level (a number becomes the coefficient of the empty word), and
// Zn ⊂ ZnString. Any other pair has no common module.
//
// Modules defined outside this package can implement Module and Element; they
// unify only with modules they are Equal to.
package module
