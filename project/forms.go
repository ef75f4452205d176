// SPDX-License-Identifier: MIT
//
// File: forms.go
// Role: Build declared forms in dependency order.
// Algorithm:
//   - Depth-first over form references with three states: white (unseen),
//     gray (on the stack), black (built). Reaching a gray form is a cycle.
// Complexity:
//   - Time O(F + R) for F forms and R references, Memory O(F).

package project

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/denota/module"
	"github.com/katalvlaran/denota/yoneda"
)

const (
	white = iota
	gray
	black
)

// formBuilder resolves formYAML declarations into registered forms.
type formBuilder struct {
	reg   *yoneda.Registry
	decls map[string]*formYAML
	state map[string]int
	built map[string]yoneda.Form
	path  []string // gray stack, for cycle reports
}

func buildForms(reg *yoneda.Registry, decls []formYAML) error {
	b := &formBuilder{
		reg:   reg,
		decls: make(map[string]*formYAML, len(decls)),
		state: make(map[string]int, len(decls)),
		built: make(map[string]yoneda.Form, len(decls)),
	}
	for i := range decls {
		d := &decls[i]
		if d.Name == "" {
			return fmt.Errorf("line %d: form without name: %w", d.line, ErrInvalid)
		}
		if _, dup := b.decls[d.Name]; dup {
			return fmt.Errorf("line %d: form %q: %w", d.line, d.Name, ErrDuplicateName)
		}
		b.decls[d.Name] = d
	}
	// declaration order keeps error reports deterministic
	for i := range decls {
		if _, err := b.resolve(decls[i].Name, decls[i].line); err != nil {
			return err
		}
	}

	return nil
}

// resolve returns the form called name, building its dependencies first.
// line is the line of the referring declaration.
func (b *formBuilder) resolve(name string, line int) (yoneda.Form, error) {
	decl, declared := b.decls[name]
	if !declared {
		if f, ok := b.reg.Lookup(name); ok {
			return f, nil
		}
		return nil, fmt.Errorf("line %d: %q: %w", line, name, ErrUnknownForm)
	}

	switch b.state[name] {
	case black:
		return b.built[name], nil
	case gray:
		cycle := append(b.path[indexOf(b.path, name):], name)
		return nil, fmt.Errorf("line %d: %s: %w", decl.line, strings.Join(cycle, " -> "), ErrCyclicForm)
	}

	b.state[name] = gray
	b.path = append(b.path, name)
	deps := make([]yoneda.Form, 0, len(decl.deps()))
	for _, dep := range decl.deps() {
		f, err := b.resolve(dep, decl.line)
		if err != nil {
			return nil, err
		}
		deps = append(deps, f)
	}
	f, err := b.construct(decl, deps)
	if err != nil {
		return nil, fmt.Errorf("line %d: form %q: %w", decl.line, name, err)
	}
	b.path = b.path[:len(b.path)-1]
	b.state[name] = black
	b.built[name] = f

	return f, nil
}

func (b *formBuilder) construct(decl *formYAML, deps []yoneda.Form) (yoneda.Form, error) {
	kind, ok := parseKind(decl.Kind)
	if !ok {
		return nil, fmt.Errorf("kind %q: %w", decl.Kind, ErrInvalid)
	}

	switch kind {
	case yoneda.Simple:
		m, err := module.ByName(decl.Module)
		if err != nil {
			return nil, err
		}
		return b.reg.NewSimpleForm(decl.Name, m)
	case yoneda.Limit:
		return b.reg.NewLimitForm(decl.Name, deps, decl.Labels...)
	case yoneda.Colimit:
		return b.reg.NewColimitForm(decl.Name, deps, decl.Labels...)
	case yoneda.Power, yoneda.List:
		if decl.Element == "" {
			return nil, fmt.Errorf("%s form without element: %w", kind, ErrInvalid)
		}
		if kind == yoneda.Power {
			return b.reg.NewPowerForm(decl.Name, deps[0])
		}
		return b.reg.NewListForm(decl.Name, deps[0])
	default:
		panic(fmt.Sprintf("project: unhandled kind %v", kind))
	}
}

// parseKind accepts kind names in any letter case.
func parseKind(s string) (yoneda.Kind, bool) {
	for _, k := range []yoneda.Kind{yoneda.Simple, yoneda.Limit, yoneda.Colimit, yoneda.Power, yoneda.List} {
		if strings.EqualFold(s, k.String()) {
			return k, true
		}
	}

	return 0, false
}

func indexOf(xs []string, x string) int {
	for i, s := range xs {
		if s == x {
			return i
		}
	}

	return 0
}
