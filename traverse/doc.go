// Package traverse walks Denotator trees: Apply mutates matching nodes in
// place, Map rebuilds a tree bottom-up, Select collects matching nodes.
//
// Walk order:
//
//   - Pre-order for Apply and Select, bottom-up for Map.
//   - Limit, Power and List nodes visit every factor in order; a Colimit
//     visits only its active factor, so inactive injections are never seen.
//   - Select does not search below a matching node.
//
// Matching:
//
//   - A Predicate decides which nodes match; a nil Predicate matches every
//     node. FormIs(f) matches nodes of exactly form f (structural equality).
//   - WithForm(f) additionally restricts matches to form f.
//
// Options:
//
//   - WithContext(ctx)    allows cancellation via context.Context.
//   - WithMaxDepth(n)     fails with ErrDepthExceeded below depth n (root is 0).
//   - WithLogger(l)       debug-level summary of each walk.
//
// Limits:
//
//   - Without WithMaxDepth the recursion is unbounded: one Go stack frame per
//     nesting level. Pathological nesting can exhaust the goroutine stack.
//
// Errors:
//
//   - ErrNilDenotator   if the root is nil or Map's callback returns nil.
//   - ErrNilFunc        if the callback is nil.
//   - ErrDepthExceeded  if WithMaxDepth is exceeded.
//   - context.Canceled  if ctx is done.
//   - callback errors, wrapped with the form and depth of the failing node.
package traverse
