// Copyright 2026 The Pdesys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import (
	"github.com/cpmech/pdesys/pde"
	"github.com/cpmech/pdesys/reg"
	"github.com/cpmech/pdesys/sym"
)

// add problem to catalog
func init() {
	Set("brusselator_2d", []string{reg.AllSystems, reg.NonlinearSystems}, Brusselator2D)
}

// Brusselator2D builds the two-dimensional Brusselator reaction-diffusion
// problem on the periodic unit square:
//
//	∂u/∂t = 1 + u²v - 4.4 u + α ∇²u + f(x,y,t)
//	∂v/∂t = 3.4 u - u²v + α ∇²v
//
// with α = 10 and a forcing term of magnitude 5 active only inside the disc
// (x-0.3)² + (y-0.6)² <= 0.01 once t >= 1.1
func Brusselator2D() (*pde.System, error) {

	// variables
	x := sym.Var("x")
	y := sym.Var("y")
	t := sym.Var("t")
	u := sym.Fld("u", x, y, t)
	v := sym.Fld("v", x, y, t)
	U := u.Of(x, y, t)
	V := v.Of(x, y, t)

	// domains
	ix, err := pde.NewInterval(x, 0, 1)
	if err != nil {
		return nil, err
	}
	iy, err := pde.NewInterval(y, 0, 1)
	if err != nil {
		return nil, err
	}
	it, err := pde.NewInterval(t, 0, 11.5)
	if err != nil {
		return nil, err
	}

	// space-time forcing: indicator products keep the piecewise definition
	// symbolic for downstream transformers
	α := 10.0
	disc := sym.Add(
		sym.Pow(sym.Sub(x, sym.Nm(0.3)), sym.Nm(2)),
		sym.Pow(sym.Sub(y, sym.Nm(0.6)), sym.Nm(2)),
	)
	forcing := sym.Mul(sym.Nm(5), sym.Le(disc, sym.Nm(0.01)), sym.Ge(t, sym.Nm(1.1)))

	// governing equations
	dt := sym.D(t, 1)
	rhsU := sym.Add(sym.Nm(1), sym.Mul(V, sym.Pow(U, sym.Nm(2))))
	rhsU = sym.Sub(rhsU, sym.Mul(sym.Nm(4.4), U))
	rhsU = sym.Add(rhsU, sym.Mul(sym.Nm(α), sym.Laplacian(U, x, y)), forcing)
	rhsV := sym.Sub(sym.Mul(sym.Nm(3.4), U), sym.Mul(V, sym.Pow(U, sym.Nm(2))))
	rhsV = sym.Add(rhsV, sym.Mul(sym.Nm(α), sym.Laplacian(V, x, y)))
	eqs := []*pde.Equation{
		pde.NewEquation(dt.Apply(U), rhsU),
		pde.NewEquation(dt.Apply(V), rhsV),
	}

	// initial profiles and periodic pairs
	uini := sym.Mul(sym.Nm(22), sym.Pow(sym.Mul(y, sym.Sub(sym.Nm(1), y)), sym.Nm(1.5)))
	vini := sym.Mul(sym.Nm(27), sym.Pow(sym.Mul(x, sym.Sub(sym.Nm(1), x)), sym.Nm(1.5)))
	bcs := []*pde.Equation{
		pde.Initial(u, it, uini),
		pde.Initial(v, it, vini),
		pde.Periodic(u, ix),
		pde.Periodic(u, iy),
		pde.Periodic(v, ix),
		pde.Periodic(v, iy),
	}

	return pde.NewSystem("brusselator_2d", eqs, bcs,
		[]*pde.Interval{ix, iy, it},
		[]*sym.Variable{x, y, t},
		[]*sym.Variable{u, v}, nil)
}
