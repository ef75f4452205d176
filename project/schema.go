// SPDX-License-Identifier: MIT

package project

import "gopkg.in/yaml.v3"

// documentYAML is the root of a project file.
type documentYAML struct {
	Forms      []formYAML      `yaml:"forms"`
	Denotators []denotatorYAML `yaml:"denotators"`
}

// formYAML declares one form. Which fields apply depends on Kind:
// module (simple), factors and labels (limit, colimit), element (power, list).
type formYAML struct {
	Name    string   `yaml:"name"`
	Kind    string   `yaml:"kind"`
	Module  string   `yaml:"module,omitempty"`
	Factors []string `yaml:"factors,omitempty"`
	Labels  []string `yaml:"labels,omitempty"`
	Element string   `yaml:"element,omitempty"`

	line int
}

// denotatorYAML declares one named denotator.
type denotatorYAML struct {
	Name    string    `yaml:"name"`
	Form    string    `yaml:"form"`
	Address string    `yaml:"address,omitempty"`
	Value   yaml.Node `yaml:"value"`

	line int
}

// UnmarshalYAML records the line of the declaration.
func (f *formYAML) UnmarshalYAML(n *yaml.Node) error {
	type plain formYAML
	if err := n.Decode((*plain)(f)); err != nil {
		return err
	}
	f.line = n.Line

	return nil
}

// UnmarshalYAML records the line of the declaration.
func (d *denotatorYAML) UnmarshalYAML(n *yaml.Node) error {
	type plain denotatorYAML
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.line = n.Line

	return nil
}

// deps returns the names of the forms f refers to.
func (f *formYAML) deps() []string {
	if f.Element != "" {
		return []string{f.Element}
	}

	return f.Factors
}
