// Copyright 2026 The Pdesys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

// Walk visits e and all its children in depth-first pre-order. For field
// applications and derivatives, the argument expressions are visited but the
// field symbol and the differentiation variable are not visited as
// standalone nodes; they remain available on the App and Deriv nodes.
func Walk(e Expr, fn func(Expr)) {
	fn(e)
	switch v := e.(type) {
	case *Unary:
		Walk(v.A, fn)
	case *Binary:
		Walk(v.A, fn)
		Walk(v.B, fn)
	case *App:
		for _, a := range v.Args {
			Walk(a, fn)
		}
	case *Deriv:
		Walk(v.Arg, fn)
	}
}

// Vars returns the variables referenced in e, in first-appearance order and
// without repetition. Field symbols and differentiation variables count as
// references.
func Vars(e Expr) (res []*Variable) {
	seen := make(map[string]bool)
	add := func(v *Variable) {
		if !seen[v.Name] {
			seen[v.Name] = true
			res = append(res, v)
		}
	}
	Walk(e, func(n Expr) {
		switch v := n.(type) {
		case *Variable:
			add(v)
		case *App:
			add(v.F)
		case *Deriv:
			add(v.Wrt)
		}
	})
	return
}

// Params returns the parameters referenced in e, in first-appearance order
// and without repetition
func Params(e Expr) (res []*Param) {
	seen := make(map[string]bool)
	Walk(e, func(n Expr) {
		if p, ok := n.(*Param); ok {
			if !seen[p.Name] {
				seen[p.Name] = true
				res = append(res, p)
			}
		}
	})
	return
}
