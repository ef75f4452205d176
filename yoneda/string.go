// SPDX-License-Identifier: MIT

package yoneda

import (
	"strconv"
	"strings"
)

// String renders d as name:@address:form(coordinate), e.g.
//
//	n:@Z:Note(o:@Z:Onset(0.5), p:@Z:Pitch(60))
//
// Anonymous denotators print without the leading "name:". Colimit
// coordinates are prefixed with the injection index.
func (d *Denotator) String() string {
	if d == nil {
		return "<nil>"
	}
	var sb strings.Builder
	d.write(&sb)

	return sb.String()
}

func (d *Denotator) write(sb *strings.Builder) {
	if d.name != "" {
		sb.WriteString(d.name)
		sb.WriteByte(':')
	}
	sb.WriteString("@")
	sb.WriteString(d.address.Name())
	sb.WriteByte(':')
	sb.WriteString(d.form.Name())
	sb.WriteByte('(')
	switch d.form.(type) {
	case *SimpleForm:
		sb.WriteString(d.element.String())
	case *ColimitForm:
		sb.WriteString(strconv.Itoa(d.index))
		sb.WriteString(": ")
		d.factors[0].write(sb)
	case *LimitForm, *PowerForm, *ListForm:
		for i, f := range d.factors {
			if i > 0 {
				sb.WriteString(", ")
			}
			f.write(sb)
		}
	default:
		panic("yoneda: unknown form type in String")
	}
	sb.WriteByte(')')
}
