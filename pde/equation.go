// Copyright 2026 The Pdesys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pde

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/pdesys/sym"
)

// Equation asserts the symbolic equality of two expressions. It serves both
// governing equations (time derivative of a field = right-hand side) and
// boundary/initial conditions (field at a fixed coordinate = expression).
type Equation struct {
	Lhs sym.Expr
	Rhs sym.Expr
}

// NewEquation returns the equation lhs = rhs
func NewEquation(lhs, rhs sym.Expr) *Equation {
	return &Equation{Lhs: lhs, Rhs: rhs}
}

// String returns the rendered equation
func (o *Equation) String() string { return o.Lhs.String() + " = " + o.Rhs.String() }

// At applies field f with its own independent variables, except that v is
// replaced by the fixed coordinate value
func At(f *sym.Variable, v *sym.Variable, value float64) *sym.App {
	args := make([]sym.Expr, len(f.Deps))
	found := false
	for i, d := range f.Deps {
		if d.Name == v.Name {
			args[i] = sym.Nm(value)
			found = true
		} else {
			args[i] = d
		}
	}
	if !found {
		chk.Panic("field %q does not depend on %q", f.Name, v.Name)
	}
	return f.Of(args...)
}

// Initial returns the initial-condition equation for field f: f evaluated at
// the minimum of the time domain equals the given profile
func Initial(f *sym.Variable, time *Interval, profile sym.Expr) *Equation {
	return NewEquation(At(f, time.V, time.Min), profile)
}

// Periodic returns the periodic-pair equation for field f along the given
// spatial domain: f at the minimum edge equals f at the maximum edge
func Periodic(f *sym.Variable, dom *Interval) *Equation {
	return NewEquation(At(f, dom.V, dom.Min), At(f, dom.V, dom.Max))
}
