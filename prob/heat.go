// Copyright 2026 The Pdesys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/pdesys/pde"
	"github.com/cpmech/pdesys/reg"
	"github.com/cpmech/pdesys/sym"
)

// add problem to catalog
func init() {
	Set("heat_2d", []string{reg.AllSystems}, Heat2D)
}

// Heat2D builds the linear heat equation ∂u/∂t = kap ∇²u on the periodic
// unit square with a polynomial bump as initial profile. The diffusivity is
// the named parameter "kap" so that harnesses can sweep it.
func Heat2D() (*pde.System, error) {

	// variables
	x := sym.Var("x")
	y := sym.Var("y")
	t := sym.Var("t")
	u := sym.Fld("u", x, y, t)
	U := u.Of(x, y, t)

	// domains
	ix, err := pde.NewInterval(x, 0, 1)
	if err != nil {
		return nil, err
	}
	iy, err := pde.NewInterval(y, 0, 1)
	if err != nil {
		return nil, err
	}
	it, err := pde.NewInterval(t, 0, 1)
	if err != nil {
		return nil, err
	}

	// governing equation
	dt := sym.D(t, 1)
	eq := pde.NewEquation(dt.Apply(U), sym.Mul(sym.Prm("kap"), sym.Laplacian(U, x, y)))

	// initial profile and periodic pairs
	uini := sym.Mul(x, sym.Sub(sym.Nm(1), x), y, sym.Sub(sym.Nm(1), y))
	bcs := []*pde.Equation{
		pde.Initial(u, it, uini),
		pde.Periodic(u, ix),
		pde.Periodic(u, iy),
	}

	prms := dbf.Params{&dbf.P{N: "kap", V: 0.01}}
	return pde.NewSystem("heat_2d", []*pde.Equation{eq}, bcs,
		[]*pde.Interval{ix, iy, it},
		[]*sym.Variable{x, y, t},
		[]*sym.Variable{u}, prms)
}
