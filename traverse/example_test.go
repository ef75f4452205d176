// SPDX-License-Identifier: MIT
package traverse_test

import (
	"fmt"

	"github.com/katalvlaran/denota/module"
	"github.com/katalvlaran/denota/traverse"
	"github.com/katalvlaran/denota/yoneda"
)

func ExampleSelect() {
	reg := yoneda.NewRegistry()
	pitch, _ := reg.NewSimpleForm("Pitch", module.Z)
	melody, _ := reg.NewListForm("Melody", pitch)

	var ps []*yoneda.Denotator
	for _, n := range []int64{60, 67, 64} {
		d, _ := yoneda.NewSimple("", pitch, module.Int(n))
		ps = append(ps, d)
	}
	m, _ := yoneda.NewList("", melody, ps)

	high, _ := traverse.Select(m, func(d *yoneda.Denotator) bool {
		return d.Kind() == yoneda.Simple && d.Element().Compare(module.Int(62)) > 0
	})
	for _, d := range high {
		fmt.Println(d.Element())
	}
	// Output:
	// 67
	// 64
}
