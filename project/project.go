// SPDX-License-Identifier: MIT

package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/denota/module"
	"github.com/katalvlaran/denota/yoneda"
)

// Project is a loaded project file.
type Project struct {
	reg   *yoneda.Registry
	named map[string]*yoneda.Denotator
	names []string // declaration order
}

// Registry returns the registry holding the project's forms.
func (p *Project) Registry() *yoneda.Registry { return p.reg }

// Denotator returns the denotator declared as name.
// Returns ErrUnknownDenotator if there is none.
func (p *Project) Denotator(name string) (*yoneda.Denotator, error) {
	d, ok := p.named[name]
	if !ok {
		return nil, fmt.Errorf("Denotator(%q): %w", name, ErrUnknownDenotator)
	}

	return d, nil
}

// Names returns the denotator names in declaration order.
func (p *Project) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)

	return out
}

// LoadFile reads the project file at path.
func LoadFile(path string, opts ...Option) (*Project, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	if info.Size() > o.maxSize {
		return nil, fmt.Errorf("LoadFile(%s): %d bytes (max %d): %w", path, info.Size(), o.maxSize, ErrTooLarge)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	p, err := load(f, o)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}

	return p, nil
}

// Load reads a project document from r.
func Load(r io.Reader, opts ...Option) (*Project, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return load(r, o)
}

func load(r io.Reader, o options) (*Project, error) {
	data, err := io.ReadAll(io.LimitReader(r, o.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if int64(len(data)) > o.maxSize {
		return nil, fmt.Errorf("more than %d bytes: %w", o.maxSize, ErrTooLarge)
	}

	var doc documentYAML
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	reg := o.reg
	if reg == nil {
		reg = yoneda.NewRegistry(yoneda.WithLogger(o.logger))
	}
	if err = buildForms(reg, doc.Forms); err != nil {
		return nil, err
	}

	p := &Project{reg: reg, named: make(map[string]*yoneda.Denotator, len(doc.Denotators))}
	for i := range doc.Denotators {
		if err = p.add(&doc.Denotators[i]); err != nil {
			return nil, err
		}
	}
	o.logger.Info("project loaded", "forms", len(doc.Forms), "denotators", len(p.names))

	return p, nil
}

// add builds one declaration; earlier declarations may be referenced.
func (p *Project) add(decl *denotatorYAML) error {
	if decl.Name == "" {
		return fmt.Errorf("line %d: denotator without name: %w", decl.line, ErrInvalid)
	}
	if _, dup := p.named[decl.Name]; dup {
		return fmt.Errorf("line %d: denotator %q: %w", decl.line, decl.Name, ErrDuplicateName)
	}
	form, ok := p.reg.Lookup(decl.Form)
	if !ok {
		return fmt.Errorf("line %d: denotator %q: form %q: %w", decl.line, decl.Name, decl.Form, ErrUnknownForm)
	}
	addr := module.Null
	if decl.Address != "" {
		m, err := module.ByName(decl.Address)
		if err != nil {
			return fmt.Errorf("line %d: denotator %q: %w", decl.line, decl.Name, err)
		}
		addr = m
	}
	if decl.Value.Kind == 0 {
		return fmt.Errorf("line %d: denotator %q without value: %w", decl.line, decl.Name, ErrInvalid)
	}

	b := &valueBuilder{addr: addr, named: p.named}
	d, err := b.build(decl.Name, form, &decl.Value)
	if err != nil {
		return fmt.Errorf("denotator %q: %w", decl.Name, err)
	}
	p.named[decl.Name] = d
	p.names = append(p.names, decl.Name)

	return nil
}
