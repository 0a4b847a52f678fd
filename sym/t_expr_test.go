// Copyright 2026 The Pdesys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func verbose() {
	chk.Verbose = true
}

func Test_expr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expr01. arithmetic rendering")

	x := Var("x")
	y := Var("y")
	chk.String(tst, Add(x, y, Nm(2)).String(), "x + y + 2")
	chk.String(tst, Sub(x, Nm(0.3)).String(), "x - 0.3")
	chk.String(tst, Mul(Nm(2), Add(x, y)).String(), "2*(x + y)")
	chk.String(tst, Div(x, Add(y, Nm(1))).String(), "x/(y + 1)")
	chk.String(tst, Pow(Mul(y, Sub(Nm(1), y)), Nm(1.5)).String(), "(y*(1 - y))^1.5")
	chk.String(tst, Neg(Mul(x, y)).String(), "-(x*y)")
	chk.String(tst, Sub(x, Add(y, Nm(1))).String(), "x - (y + 1)")
}

func Test_expr02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expr02. indicator expressions")

	x := Var("x")
	y := Var("y")
	t := Var("t")
	disc := Add(
		Pow(Sub(x, Nm(0.3)), Nm(2)),
		Pow(Sub(y, Nm(0.6)), Nm(2)),
	)
	forcing := Mul(Nm(5), Le(disc, Nm(0.01)), Ge(t, Nm(1.1)))
	chk.String(tst, forcing.String(), "5*((x - 0.3)^2 + (y - 0.6)^2 <= 0.01)*(t >= 1.1)")
	chk.String(tst, Lt(x, y).String(), "x < y")
	chk.String(tst, Gt(x, y).String(), "x > y")
	chk.String(tst, Equal(x, Nm(0)).String(), "x == 0")
}

func Test_expr03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expr03. field applications")

	x := Var("x")
	y := Var("y")
	t := Var("t")
	u := Fld("u", x, y, t)
	chk.String(tst, u.Of(x, y, t).String(), "u(x, y, t)")
	chk.String(tst, u.Of(Nm(0), y, t).String(), "u(0, y, t)")
	chk.String(tst, u.Of(x, y, Nm(0)).String(), "u(x, y, 0)")
	chk.IntAssert(len(u.Deps), 3)
}

func Test_expr04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expr04. symbol collection")

	x := Var("x")
	y := Var("y")
	t := Var("t")
	u := Fld("u", x, y, t)
	e := Add(Mul(Prm("kap"), D(x, 2).Apply(u.Of(x, y, t))), Mul(y, y))
	vars := Vars(e)
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}
	chk.Strings(tst, "vars", names, []string{"x", "u", "y", "t"})
	prms := Params(e)
	chk.IntAssert(len(prms), 1)
	chk.String(tst, prms[0].Name, "kap")
}

func Test_expr05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("expr05. additive terms flattening")

	x := Var("x")
	y := Var("y")
	e := Add(x, Mul(Nm(2), y), Nm(3))
	terms := Terms(e)
	chk.IntAssert(len(terms), 3)
	chk.String(tst, terms[0].String(), "x")
	chk.String(tst, terms[1].String(), "2*y")
	chk.String(tst, terms[2].String(), "3")

	// subtraction is one term, not flattened
	chk.IntAssert(len(Terms(Sub(x, y))), 1)
}
