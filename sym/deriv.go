// Copyright 2026 The Pdesys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Deriv is the symbolic derivative of Arg, of the given order, with respect
// to one independent variable. The order is explicit so that a second
// derivative is always one node, never two nested first-order nodes.
type Deriv struct {
	Wrt   *Variable
	Order int
	Arg   Expr
}

// String returns the rendered derivative
func (o *Deriv) String() string {
	a := o.Arg.String()
	switch o.Arg.(type) {
	case *Num, *Param, *Variable, *App:
	default:
		a = "(" + a + ")"
	}
	switch o.Order {
	case 1:
		return "∂" + a + "/∂" + o.Wrt.Name
	case 2:
		return "∂²" + a + "/∂" + o.Wrt.Name + "²"
	}
	return io.Sf("∂^%d%s/∂%s^%d", o.Order, a, o.Wrt.Name, o.Order)
}

// Derivative is the differential operator of given order with respect to one
// independent variable. It is a value: applying it builds a new expression
// and never mutates its operand.
type Derivative struct {
	Wrt   *Variable
	Order int
}

// D returns the derivative operator of given order with respect to v
func D(v *Variable, order int) Derivative {
	if order < 1 {
		chk.Panic("derivative order must be at least 1 (%d is invalid)", order)
	}
	if len(v.Deps) > 0 {
		chk.Panic("cannot differentiate with respect to field %q", v.Name)
	}
	return Derivative{Wrt: v, Order: order}
}

// Compose merges two operators taken with respect to the same variable into
// one operator of summed order
func Compose(a, b Derivative) Derivative {
	if a.Wrt.Name != b.Wrt.Name {
		chk.Panic("cannot compose derivatives with respect to %q and %q", a.Wrt.Name, b.Wrt.Name)
	}
	return Derivative{Wrt: a.Wrt, Order: a.Order + b.Order}
}

// Apply returns the derivative of e as a new expression. Applying to a
// derivative taken with respect to the same variable merges the orders into
// a single canonical node.
func (o Derivative) Apply(e Expr) Expr {
	if d, ok := e.(*Deriv); ok && d.Wrt.Name == o.Wrt.Name {
		return &Deriv{Wrt: d.Wrt, Order: d.Order + o.Order, Arg: d.Arg}
	}
	return &Deriv{Wrt: o.Wrt, Order: o.Order, Arg: e}
}

// Laplacian returns the sum of the pure second derivatives of e with respect
// to the given spatial variables; the result has exactly one second-order
// term per variable
func Laplacian(e Expr, spatial ...*Variable) Expr {
	if len(spatial) == 0 {
		chk.Panic("Laplacian requires at least one spatial variable")
	}
	terms := make([]Expr, len(spatial))
	for i, v := range spatial {
		terms[i] = D(v, 2).Apply(e)
	}
	return Add(terms...)
}
