// Copyright 2026 The Pdesys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sym implements a small symbolic expression kernel for writing
// partial differential equations as data. Expressions are immutable trees
// over variables, parameters, numbers, arithmetic/comparison operators, and
// derivative applications. Constructing an expression performs no numeric
// evaluation and no simplification; consumers (discretisers, transformers)
// decide what to do with the tree.
package sym

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Expr is a node in a symbolic expression tree
type Expr interface {
	String() string
}

// Op defines operator kinds for Unary and Binary nodes
type Op int

// operator kinds
const (
	OpAdd Op = iota + 1 // a + b
	OpSub               // a - b
	OpMul               // a * b
	OpDiv               // a / b
	OpPow               // a ^ b
	OpNeg               // -a
	OpLe                // a <= b  (boolean-valued: 1 if true, 0 otherwise)
	OpGe                // a >= b
	OpLt                // a < b
	OpGt                // a > b
	OpEq                // a == b
)

// String returns the operator symbol
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub, OpNeg:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	case OpLe:
		return "<="
	case OpGe:
		return ">="
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpEq:
		return "=="
	}
	chk.Panic("operator kind %d is invalid", op)
	return ""
}

// Num is a numeric literal
type Num struct {
	V float64
}

// Nm returns a numeric literal
func Nm(v float64) *Num { return &Num{V: v} }

// String returns the literal value
func (o *Num) String() string { return io.Sf("%g", o.V) }

// Param is a reference to a named parameter (a free constant). Parameters
// are declared on the PDE system record; references are checked there.
type Param struct {
	Name string
}

// Prm returns a parameter reference
func Prm(name string) *Param { return &Param{Name: name} }

// String returns the parameter name
func (o *Param) String() string { return o.Name }

// Variable is a named symbol. An independent variable (a coordinate) has no
// dependencies; a dependent variable (a field) lists the independent
// variables it is a function of.
type Variable struct {
	Name string
	Deps []*Variable // empty for independent variables
}

// Var returns an independent variable
func Var(name string) *Variable { return &Variable{Name: name} }

// Fld returns a dependent variable (a field) as a function of the given
// independent variables
func Fld(name string, deps ...*Variable) *Variable {
	if len(deps) == 0 {
		chk.Panic("field %q must depend on at least one independent variable", name)
	}
	for _, d := range deps {
		if len(d.Deps) > 0 {
			chk.Panic("field %q cannot depend on field %q", name, d.Name)
		}
	}
	return &Variable{Name: name, Deps: deps}
}

// String returns the variable name
func (o *Variable) String() string { return o.Name }

// Of applies a field to argument expressions. Interior uses pass the field's
// own independent variables; boundary/initial uses fix one of them to a
// coordinate value.
func (o *Variable) Of(args ...Expr) *App {
	if len(o.Deps) == 0 {
		chk.Panic("cannot apply independent variable %q to arguments", o.Name)
	}
	return &App{F: o, Args: args}
}

// App is the application of a field to argument expressions, e.g. u(x, y, t)
// or u(0, y, t)
type App struct {
	F    *Variable
	Args []Expr
}

// String returns the rendered application
func (o *App) String() string {
	parts := make([]string, len(o.Args))
	for i, a := range o.Args {
		parts[i] = a.String()
	}
	return o.F.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Unary is a unary operator application
type Unary struct {
	Op Op
	A  Expr
}

// Neg returns -a
func Neg(a Expr) Expr { return &Unary{Op: OpNeg, A: a} }

// String returns the rendered negation
func (o *Unary) String() string { return "-" + wrap(o.A, 4) }

// Binary is a binary operator application
type Binary struct {
	Op   Op
	A, B Expr
}

// Add returns the sum of the given terms, folded left
func Add(terms ...Expr) Expr { return fold(OpAdd, terms) }

// Mul returns the product of the given factors, folded left
func Mul(factors ...Expr) Expr { return fold(OpMul, factors) }

// Sub returns a - b
func Sub(a, b Expr) Expr { return &Binary{Op: OpSub, A: a, B: b} }

// Div returns a / b
func Div(a, b Expr) Expr { return &Binary{Op: OpDiv, A: a, B: b} }

// Pow returns a ^ b
func Pow(a, b Expr) Expr { return &Binary{Op: OpPow, A: a, B: b} }

// Le returns the boolean-valued expression a <= b. Boolean expressions take
// value 1 when the relation holds and 0 otherwise, so multiplying by them
// encodes piecewise/indicator behaviour symbolically.
func Le(a, b Expr) Expr { return &Binary{Op: OpLe, A: a, B: b} }

// Ge returns a >= b
func Ge(a, b Expr) Expr { return &Binary{Op: OpGe, A: a, B: b} }

// Lt returns a < b
func Lt(a, b Expr) Expr { return &Binary{Op: OpLt, A: a, B: b} }

// Gt returns a > b
func Gt(a, b Expr) Expr { return &Binary{Op: OpGt, A: a, B: b} }

// Equal returns the boolean-valued expression a == b
func Equal(a, b Expr) Expr { return &Binary{Op: OpEq, A: a, B: b} }

func fold(op Op, list []Expr) Expr {
	if len(list) == 0 {
		chk.Panic("operator %q requires at least one operand", op)
	}
	res := list[0]
	for _, e := range list[1:] {
		res = &Binary{Op: op, A: res, B: e}
	}
	return res
}

// String returns the rendered binary operation with minimal parentheses
func (o *Binary) String() string {
	switch o.Op {
	case OpAdd:
		return wrap(o.A, 2) + " + " + wrap(o.B, 2)
	case OpSub:
		return wrap(o.A, 2) + " - " + wrap(o.B, 3)
	case OpMul:
		return wrap(o.A, 3) + "*" + wrap(o.B, 3)
	case OpDiv:
		return wrap(o.A, 3) + "/" + wrap(o.B, 4)
	case OpPow:
		return wrap(o.A, 6) + "^" + wrap(o.B, 5)
	}
	return wrap(o.A, 2) + " " + o.Op.String() + " " + wrap(o.B, 2)
}

// Terms flattens nested additions and returns the additive terms of e
func Terms(e Expr) []Expr {
	if b, ok := e.(*Binary); ok && b.Op == OpAdd {
		return append(Terms(b.A), Terms(b.B)...)
	}
	return []Expr{e}
}

// prec returns the precedence level used for rendering
func prec(e Expr) int {
	switch v := e.(type) {
	case *Binary:
		switch v.Op {
		case OpLe, OpGe, OpLt, OpGt, OpEq:
			return 1
		case OpAdd, OpSub:
			return 2
		case OpMul, OpDiv:
			return 3
		case OpPow:
			return 5
		}
	case *Unary:
		return 4
	}
	return 6
}

// wrap renders e, parenthesised if its precedence is below min
func wrap(e Expr, min int) string {
	s := e.String()
	if prec(e) < min {
		return "(" + s + ")"
	}
	return s
}
