// SPDX-License-Identifier: MIT
//
// File: registry.go
// Role: Explicit, caller-owned catalogue of Forms by name.
// Concurrency:
//   - Registry is safe for concurrent use; reads take a shared lock.
// Policy:
//   - Register walks sub-forms first so every form reachable from a
//     registered form is itself registered.
//   - Re-registering a structurally equal form is a no-op.

package yoneda

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/katalvlaran/denota/arith"
	"github.com/katalvlaran/denota/module"
)

// Registry maps form names to Forms.
type Registry struct {
	mu     sync.RWMutex
	forms  map[string]Form
	logger *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for registration events (debug level).
// A nil logger is ignored.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry returns an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		forms:  make(map[string]Form),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds f and all its sub-forms.
// Returns ErrDuplicateForm if a different form already holds one of the names;
// in that case nothing is added.
func (r *Registry) Register(f Form) error {
	if f == nil {
		return fmt.Errorf("Register: %w", ErrNilForm)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := make(map[string]Form)
	if err := r.collect(f, pending); err != nil {
		return fmt.Errorf("Register(%s): %w", f.Name(), err)
	}
	for name, g := range pending {
		r.forms[name] = g
		r.logger.Debug("form registered", "form", name, "kind", g.Kind().String())
	}

	return nil
}

// collect gathers the not yet registered forms reachable from f.
func (r *Registry) collect(f Form, pending map[string]Form) error {
	for _, known := range []map[string]Form{r.forms, pending} {
		if g, ok := known[f.Name()]; ok {
			if g == f || FormsEqual(g, f) {
				return nil
			}
			return fmt.Errorf("%q: %w", f.Name(), ErrDuplicateForm)
		}
	}
	pending[f.Name()] = f
	for _, sub := range subForms(f) {
		if err := r.collect(sub, pending); err != nil {
			delete(pending, f.Name())
			return err
		}
	}

	return nil
}

// Form returns the form registered under name.
// Returns ErrUnknownForm if there is none.
func (r *Registry) Form(name string) (Form, error) {
	f, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("Form(%q): %w", name, ErrUnknownForm)
	}

	return f, nil
}

// Lookup returns the form registered under name and whether it exists.
func (r *Registry) Lookup(name string) (Form, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.forms[name]

	return f, ok
}

// Forms returns all registered forms sorted by name.
func (r *Registry) Forms() []Form {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Form, 0, len(r.forms))
	for _, f := range r.forms {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })

	return out
}

// Len returns the number of registered forms.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.forms)
}

// NewSimpleForm creates and registers a SimpleForm.
func (r *Registry) NewSimpleForm(name string, mod module.Module) (*SimpleForm, error) {
	f, err := MakeSimpleForm(name, mod)
	if err != nil {
		return nil, err
	}

	if err = r.Register(f); err != nil {
		return nil, err
	}

	return f, nil
}

// NewLimitForm creates and registers a LimitForm.
func (r *Registry) NewLimitForm(name string, factors []Form, labels ...string) (*LimitForm, error) {
	f, err := MakeLimitForm(name, factors, labels...)
	if err != nil {
		return nil, err
	}

	if err = r.Register(f); err != nil {
		return nil, err
	}

	return f, nil
}

// NewColimitForm creates and registers a ColimitForm.
func (r *Registry) NewColimitForm(name string, factors []Form, labels ...string) (*ColimitForm, error) {
	f, err := MakeColimitForm(name, factors, labels...)
	if err != nil {
		return nil, err
	}

	if err = r.Register(f); err != nil {
		return nil, err
	}

	return f, nil
}

// NewPowerForm creates and registers a PowerForm.
func (r *Registry) NewPowerForm(name string, elem Form) (*PowerForm, error) {
	f, err := MakePowerForm(name, elem)
	if err != nil {
		return nil, err
	}

	if err = r.Register(f); err != nil {
		return nil, err
	}

	return f, nil
}

// NewListForm creates and registers a ListForm.
func (r *Registry) NewListForm(name string, elem Form) (*ListForm, error) {
	f, err := MakeListForm(name, elem)
	if err != nil {
		return nil, err
	}

	if err = r.Register(f); err != nil {
		return nil, err
	}

	return f, nil
}

// Make builds a denotator of the registered form formName from loosely typed
// values, addressed at module.Null.
//
//   - Simple: one value; a module.Element (cast into the form's module), a
//     string (parsed), an int, int64, float64, arith.Rational or arith.Complex.
//   - Limit, Power, List: one *Denotator per factor or element.
//   - Colimit: an int injection index followed by one *Denotator.
//
// Returns ErrUnknownForm for an unregistered name and ErrDomain for values
// that do not fit.
func (r *Registry) Make(name, formName string, values ...any) (*Denotator, error) {
	form, err := r.Form(formName)
	if err != nil {
		return nil, fmt.Errorf("Make(%q): %w", name, err)
	}

	switch f := form.(type) {
	case *SimpleForm:
		if len(values) != 1 {
			return nil, fmt.Errorf("Make(%q): simple form takes 1 value, got %d: %w", name, len(values), ErrDomain)
		}
		e, err := coerce(f.mod, values[0])
		if err != nil {
			return nil, fmt.Errorf("Make(%q): %w", name, err)
		}
		return NewSimple(name, f, e)
	case *ColimitForm:
		if len(values) != 2 {
			return nil, fmt.Errorf("Make(%q): colimit takes index and factor, got %d values: %w", name, len(values), ErrDomain)
		}
		idx, ok := values[0].(int)
		if !ok {
			return nil, fmt.Errorf("Make(%q): colimit index %T: %w", name, values[0], ErrDomain)
		}
		factor, ok := values[1].(*Denotator)
		if !ok {
			return nil, fmt.Errorf("Make(%q): colimit factor %T: %w", name, values[1], ErrDomain)
		}
		return NewColimit(name, f, idx, factor)
	case *LimitForm, *PowerForm, *ListForm:
		factors := make([]*Denotator, len(values))
		for i, v := range values {
			d, ok := v.(*Denotator)
			if !ok {
				return nil, fmt.Errorf("Make(%q): value %d is %T: %w", name, i, v, ErrDomain)
			}
			factors[i] = d
		}
		switch ff := f.(type) {
		case *LimitForm:
			return NewLimit(name, ff, factors)
		case *PowerForm:
			return NewPower(name, ff, factors)
		default:
			return NewList(name, ff.(*ListForm), factors)
		}
	default:
		panic(fmt.Sprintf("yoneda: unknown form type %T", form))
	}
}

// coerce turns v into an element of mod.
func coerce(mod module.Module, v any) (module.Element, error) {
	var e module.Element
	switch x := v.(type) {
	case module.Element:
		e = x
	case string:
		parsed, err := mod.Parse(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDomain, err)
		}
		return parsed, nil
	case int:
		return coerceInt(mod, int64(x))
	case int64:
		return coerceInt(mod, x)
	case float64:
		e = module.Real(x)
	case arith.Rational:
		e = module.Rat(x)
	case arith.Complex:
		e = module.Cplx(x)
	default:
		return nil, fmt.Errorf("value of type %T: %w", v, ErrDomain)
	}
	if e == nil {
		return nil, fmt.Errorf("nil element: %w", ErrDomain)
	}
	if mod.Equal(e.Module()) {
		return e, nil
	}
	cast, ok := mod.Cast(e)
	if !ok {
		return nil, fmt.Errorf("%s does not embed into %s: %w", e.Module().Name(), mod.Name(), ErrDomain)
	}

	return cast, nil
}

// coerceInt reduces n directly into Z or Zn; other modules go through Cast.
func coerceInt(mod module.Module, n int64) (module.Element, error) {
	if zm, ok := mod.(*module.NumberModule[int64]); ok {
		return zm.Element(n), nil
	}

	return coerce(mod, module.Int(n))
}
