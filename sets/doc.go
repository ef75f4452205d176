// Package sets implements the canonical set and list algebra over Power and
// List denotators.
//
// What:
//
//   - Power: Union, Intersection, Difference, SymmetricDifference as sorted
//     two-pointer merges over the canonical factor order, plus Insert and
//     Remove for single elements.
//   - List: Concat, AppendElement, PrependElement.
//   - Flat operations over one level of a Power or List: Map, Filter,
//     Reduce, Zip. Each takes a function of declared arity (Fn, Pred); a
//     wrong arity fails with ErrArity before any element is touched.
//   - Queries: Contains, IndexOf, Subset.
//
// Addresses:
//
//	Operands with different addresses are reconciled first: a common module
//	is looked up (module.Common, or WithCommonModule) and both operands are
//	re-addressed into it. Without a common module the operation fails with
//	ErrNoCommonAddress; data is never dropped and no address is guessed.
//
// Ownership:
//
//	Every function here is non-destructive: operands are never mutated and
//	results share unchanged factor pointers with them. The destructive
//	counterparts live on yoneda.Denotator (AppendFactor, PrependFactor, ...).
//
// Errors:
//
//   - ErrStructure        operands of different forms, or of the wrong kind.
//   - ErrNoCommonAddress  no common address (also matches ErrStructure).
//   - ErrArity            function arity does not fit the operation.
//   - ErrNilDenotator     nil operand.
package sets
