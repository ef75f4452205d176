// SPDX-License-Identifier: MIT
package yoneda_test

import (
	"fmt"

	"github.com/katalvlaran/denota/module"
	"github.com/katalvlaran/denota/yoneda"
)

func Example() {
	reg := yoneda.NewRegistry()
	onset, _ := reg.NewSimpleForm("Onset", module.R)
	pitch, _ := reg.NewSimpleForm("Pitch", module.Z)
	note, _ := reg.NewLimitForm("Note", []yoneda.Form{onset, pitch}, "onset", "pitch")
	chord, _ := reg.NewPowerForm("Chord", note)

	mk := func(o float64, p int64) *yoneda.Denotator {
		od, _ := yoneda.NewSimple("", onset, module.Real(o))
		pd, _ := yoneda.NewSimple("", pitch, module.Int(p))
		n, _ := yoneda.NewLimit("", note, []*yoneda.Denotator{od, pd})
		return n
	}
	c, _ := yoneda.NewPower("c", chord, []*yoneda.Denotator{mk(0, 67), mk(0, 60), mk(0, 64), mk(0, 60)})

	fmt.Println(c.Len())
	fmt.Println(c)
	// Output:
	// 3
	// c:@Z:Chord(@Z:Note(@Z:Onset(0), @Z:Pitch(60)), @Z:Note(@Z:Onset(0), @Z:Pitch(64)), @Z:Note(@Z:Onset(0), @Z:Pitch(67)))
}

func ExampleRegistry_Make() {
	reg := yoneda.NewRegistry()
	_, _ = reg.NewSimpleForm("Pitch", module.Z)
	_, _ = reg.NewListForm("Melody", mustForm(reg, "Pitch"))

	a, _ := reg.Make("", "Pitch", 60)
	b, _ := reg.Make("", "Pitch", "62")
	m, _ := reg.Make("m", "Melody", a, b, a)
	fmt.Println(m)
	// Output:
	// m:@Z:Melody(@Z:Pitch(60), @Z:Pitch(62), @Z:Pitch(60))
}

func mustForm(reg *yoneda.Registry, name string) yoneda.Form {
	f, err := reg.Form(name)
	if err != nil {
		panic(err)
	}

	return f
}
