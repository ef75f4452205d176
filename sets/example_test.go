// SPDX-License-Identifier: MIT
package sets_test

import (
	"fmt"

	"github.com/katalvlaran/denota/module"
	"github.com/katalvlaran/denota/sets"
	"github.com/katalvlaran/denota/yoneda"
)

func ExampleUnion() {
	reg := yoneda.NewRegistry()
	pitch, _ := reg.NewSimpleForm("Pitch", module.Z)
	chord, _ := reg.NewPowerForm("Chord", pitch)

	mk := func(ns ...int64) *yoneda.Denotator {
		var ps []*yoneda.Denotator
		for _, n := range ns {
			p, _ := yoneda.NewSimple("", pitch, module.Int(n))
			ps = append(ps, p)
		}
		c, _ := yoneda.NewPower("", chord, ps)
		return c
	}

	u, _ := sets.Union(mk(60, 64, 67), mk(62, 64))
	fmt.Println(u)
	// Output:
	// @Z:Chord(@Z:Pitch(60), @Z:Pitch(62), @Z:Pitch(64), @Z:Pitch(67))
}
