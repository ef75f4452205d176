// Package project loads project files: YAML documents declaring Forms and
// named Denotators, turned into a yoneda.Registry and a name index.
//
// Format:
//
//	forms:
//	  - {name: Onset, kind: simple, module: R}
//	  - {name: Pitch, kind: simple, module: Z}
//	  - {name: Note, kind: limit, factors: [Onset, Pitch], labels: [onset, pitch]}
//	  - {name: Score, kind: power, element: Note}
//	denotators:
//	  - name: c
//	    form: Note
//	    value: {onset: "0", pitch: "60"}
//	  - name: s
//	    form: Score
//	    value: [{ref: c}, ["1", "64"]]
//
// Forms may reference each other in any order; they are built in dependency
// order and a cycle fails with ErrCyclicForm. Denotator values are trees:
//
//   - Simple: a scalar in the module's text form.
//   - Limit: a sequence with one value per factor, or a mapping by label.
//   - Colimit: {index: i, value: v} or {label: l, value: v}.
//   - Power, List: a sequence of element values.
//   - Anywhere: {ref: name} reuses an earlier denotator of the file.
//
// An optional address (a module name such as "Q") applies to the whole tree.
//
// Errors carry the YAML line of the offending node.
package project
