// SPDX-License-Identifier: MIT
//
// File: values.go
// Role: Turn YAML value trees into Denotators through the yoneda factories.

package project

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/denota/module"
	"github.com/katalvlaran/denota/yoneda"
)

// valueBuilder builds the value tree of one declaration.
type valueBuilder struct {
	addr  module.Module
	named map[string]*yoneda.Denotator
}

func (b *valueBuilder) build(name string, form yoneda.Form, n *yaml.Node) (*yoneda.Denotator, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if ref, ok := refOf(n); ok {
		return b.ref(name, form, ref, n)
	}

	opt := yoneda.WithAddress(b.addr)
	switch f := form.(type) {
	case *yoneda.SimpleForm:
		if n.Kind != yaml.ScalarNode {
			return nil, nodeErr(n, "simple %s needs a scalar", f.Name())
		}
		d, err := yoneda.ParseSimple(name, f, n.Value, opt)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return d, nil
	case *yoneda.LimitForm:
		factors, err := b.limitFactors(f, n)
		if err != nil {
			return nil, err
		}
		return wrapLine(n)(yoneda.NewLimit(name, f, factors, opt))
	case *yoneda.ColimitForm:
		idx, payload, err := colimitValue(f, n)
		if err != nil {
			return nil, err
		}
		ff, err := f.Factor(idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		factor, err := b.build("", ff, payload)
		if err != nil {
			return nil, err
		}
		return wrapLine(n)(yoneda.NewColimit(name, f, idx, factor, opt))
	case *yoneda.PowerForm:
		elems, err := b.sequence(f.Element(), n)
		if err != nil {
			return nil, err
		}
		return wrapLine(n)(yoneda.NewPower(name, f, elems, opt))
	case *yoneda.ListForm:
		elems, err := b.sequence(f.Element(), n)
		if err != nil {
			return nil, err
		}
		return wrapLine(n)(yoneda.NewList(name, f, elems, opt))
	default:
		panic(fmt.Sprintf("project: unknown form type %T", form))
	}
}

// ref resolves {ref: name}. The referenced denotator is re-addressed into
// the tree's address, which must be the common module of both, and at the
// top level renamed.
func (b *valueBuilder) ref(name string, form yoneda.Form, ref string, n *yaml.Node) (*yoneda.Denotator, error) {
	d, ok := b.named[ref]
	if !ok {
		return nil, fmt.Errorf("line %d: %q: %w", n.Line, ref, ErrUnknownDenotator)
	}
	if !yoneda.FormsEqual(d.Form(), form) {
		return nil, fmt.Errorf("line %d: %q is a %s, %s expected: %w", n.Line, ref, d.Form().Name(), form.Name(), yoneda.ErrDomain)
	}
	if c, ok := module.Common(d.Address(), b.addr); !ok || !c.Equal(b.addr) {
		return nil, fmt.Errorf("line %d: %q at @%s does not embed into @%s: %w",
			n.Line, ref, d.Address().Name(), b.addr.Name(), yoneda.ErrDomain)
	}
	d = d.WithAddress(b.addr)
	if name != "" && d.Name() != name {
		d = d.Clone()
		d.SetName(name)
	}

	return d, nil
}

func (b *valueBuilder) limitFactors(f *yoneda.LimitForm, n *yaml.Node) ([]*yoneda.Denotator, error) {
	forms := f.Factors()
	var nodes []*yaml.Node
	switch n.Kind {
	case yaml.SequenceNode:
		if len(n.Content) != len(forms) {
			return nil, nodeErr(n, "limit %s needs %d values, got %d", f.Name(), len(forms), len(n.Content))
		}
		nodes = n.Content
	case yaml.MappingNode:
		if f.Labels() == nil {
			return nil, nodeErr(n, "limit %s has no labels", f.Name())
		}
		nodes = make([]*yaml.Node, len(forms))
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			idx, ok := f.LabelIndex(key)
			if !ok {
				return nil, fmt.Errorf("line %d: %q: %w", n.Content[i].Line, key, yoneda.ErrUnknownLabel)
			}
			nodes[idx] = n.Content[i+1]
		}
		for i, node := range nodes {
			if node == nil {
				return nil, nodeErr(n, "limit %s: missing %q", f.Name(), f.Labels()[i])
			}
		}
	default:
		return nil, nodeErr(n, "limit %s needs a sequence or mapping", f.Name())
	}

	out := make([]*yoneda.Denotator, len(nodes))
	for i, node := range nodes {
		d, err := b.build("", forms[i], node)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}

	return out, nil
}

func (b *valueBuilder) sequence(elem yoneda.Form, n *yaml.Node) ([]*yoneda.Denotator, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, nodeErr(n, "collection of %s needs a sequence", elem.Name())
	}
	out := make([]*yoneda.Denotator, len(n.Content))
	for i, node := range n.Content {
		d, err := b.build("", elem, node)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}

	return out, nil
}

// colimitValue reads {index: i, value: v} or {label: l, value: v}.
func colimitValue(f *yoneda.ColimitForm, n *yaml.Node) (int, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return 0, nil, nodeErr(n, "colimit %s needs {index, value}", f.Name())
	}
	idx := -1
	var payload *yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		switch key {
		case "index":
			v, err := strconv.Atoi(val.Value)
			if err != nil {
				return 0, nil, nodeErr(val, "index %q", val.Value)
			}
			idx = v
		case "label":
			v, ok := f.LabelIndex(val.Value)
			if !ok {
				return 0, nil, fmt.Errorf("line %d: %q: %w", val.Line, val.Value, yoneda.ErrUnknownLabel)
			}
			idx = v
		case "value":
			payload = val
		default:
			return 0, nil, nodeErr(n.Content[i], "unexpected key %q", key)
		}
	}
	if idx < 0 || payload == nil {
		return 0, nil, nodeErr(n, "colimit %s needs an index or label and a value", f.Name())
	}

	return idx, payload, nil
}

// refOf reports whether n is a {ref: name} mapping.
func refOf(n *yaml.Node) (string, bool) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 || n.Content[0].Value != "ref" {
		return "", false
	}

	return n.Content[1].Value, true
}

func nodeErr(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", n.Line, fmt.Sprintf(format, args...), ErrInvalid)
}

// wrapLine adds the node's line to a factory error.
func wrapLine(n *yaml.Node) func(*yoneda.Denotator, error) (*yoneda.Denotator, error) {
	return func(d *yoneda.Denotator, err error) (*yoneda.Denotator, error) {
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return d, nil
	}
}
