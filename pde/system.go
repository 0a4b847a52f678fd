// Copyright 2026 The Pdesys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pde

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/pdesys/sym"
)

// System is one named, validated PDE problem. The field layout is the
// contract read by external harnesses: governing equations are ordered to
// match the declaration order of the fields, and domains are looked up by
// variable name. A System is read-only after construction.
type System struct {
	Name    string          // problem identifier
	Eqs     []*Equation     // governing equations, one per field, in field order
	Bcs     []*Equation     // initial conditions and periodic pairs
	Domains []*Interval     // one interval per independent variable
	Indep   []*sym.Variable // independent variables, ordered
	Dep     []*sym.Variable // dependent variables (fields), ordered
	Prms    dbf.Params      // named parameters with default values (may be nil)

	// derived
	timeVar *sym.Variable
}

// NewSystem validates and returns a PDE system. Validation is atomic: either
// the full record passes all checks or an Error (UndefinedSymbol,
// IncompleteSystem, SignatureMismatch, MissingBoundaryCondition) is returned
// and nothing else happens. Registration into shared collections is a
// separate, explicit step (package reg).
func NewSystem(name string, eqs, bcs []*Equation, domains []*Interval, indep, dep []*sym.Variable, prms dbf.Params) (*System, error) {
	o := &System{
		Name:    name,
		Eqs:     append([]*Equation{}, eqs...),
		Bcs:     append([]*Equation{}, bcs...),
		Domains: append([]*Interval{}, domains...),
		Indep:   append([]*sym.Variable{}, indep...),
		Dep:     append([]*sym.Variable{}, dep...),
		Prms:    prms,
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Domain returns the interval of the named independent variable, or nil
func (o *System) Domain(name string) *Interval {
	for _, d := range o.Domains {
		if d.V.Name == name {
			return d
		}
	}
	return nil
}

// TimeVar returns the time variable, i.e. the variable the governing
// equations take their left-hand-side derivative with respect to
func (o *System) TimeVar() *sym.Variable { return o.timeVar }

// SpatialVars returns the independent variables other than time, in
// declaration order
func (o *System) SpatialVars() (res []*sym.Variable) {
	for _, v := range o.Indep {
		if v.Name != o.timeVar.Name {
			res = append(res, v)
		}
	}
	return
}

// validate checks all invariants of the record
func (o *System) validate() error {

	// declarations
	doms := make(map[string]*Interval)
	for _, d := range o.Domains {
		doms[d.V.Name] = d
	}
	indep := make(map[string]bool)
	for _, v := range o.Indep {
		if len(v.Deps) > 0 {
			return newErr(SignatureMismatch, "variable %q is declared independent but depends on other variables", v.Name)
		}
		indep[v.Name] = true
		if doms[v.Name] == nil {
			return newErr(IncompleteSystem, "independent variable %q has no domain", v.Name)
		}
	}
	for name := range doms {
		if !indep[name] {
			return newErr(IncompleteSystem, "domain bound to %q but %q is not declared independent", name, name)
		}
	}
	if len(o.Dep) == 0 {
		return newErr(SignatureMismatch, "a system requires at least one field")
	}
	depIdx := make(map[string]int)
	for i, f := range o.Dep {
		if len(f.Deps) == 0 {
			return newErr(SignatureMismatch, "variable %q is declared as a field but has no dependencies", f.Name)
		}
		for _, d := range f.Deps {
			if doms[d.Name] == nil {
				return newErr(IncompleteSystem, "field %q depends on %q which has no domain", f.Name, d.Name)
			}
		}
		depIdx[f.Name] = i
	}
	prms := make(map[string]bool)
	for _, p := range o.Prms {
		prms[p.N] = true
	}

	// references and signatures
	for _, eq := range o.Eqs {
		if err := o.checkRefs(eq, doms, depIdx, prms); err != nil {
			return err
		}
	}
	for _, bc := range o.Bcs {
		if err := o.checkRefs(bc, doms, depIdx, prms); err != nil {
			return err
		}
	}

	// governing equations
	if len(o.Eqs) != len(o.Dep) {
		return newErr(SignatureMismatch, "%d equations given for %d fields", len(o.Eqs), len(o.Dep))
	}
	for i, eq := range o.Eqs {
		d, ok := eq.Lhs.(*sym.Deriv)
		if !ok || d.Order != 1 {
			return newErr(SignatureMismatch, "left side of equation %d must be a first-order time derivative of a field", i)
		}
		a, ok := d.Arg.(*sym.App)
		if !ok {
			return newErr(SignatureMismatch, "left side of equation %d must differentiate a field application", i)
		}
		f := o.Dep[i]
		if a.F.Name != f.Name {
			return newErr(SignatureMismatch, "equation %d must govern field %q to follow the declaration order", i, f.Name)
		}
		for j, arg := range a.Args {
			v, ok := arg.(*sym.Variable)
			if !ok || v.Name != f.Deps[j].Name {
				return newErr(SignatureMismatch, "field %q on the left side of equation %d must be applied to its own independent variables", f.Name, i)
			}
		}
		if o.timeVar == nil {
			o.timeVar = d.Wrt
		} else if o.timeVar.Name != d.Wrt.Name {
			return newErr(SignatureMismatch, "equations differentiate with respect to both %q and %q; one time variable is required", o.timeVar.Name, d.Wrt.Name)
		}
		if !dependsOn(f, d.Wrt.Name) {
			return newErr(SignatureMismatch, "field %q does not depend on time variable %q", f.Name, d.Wrt.Name)
		}
	}

	// boundary and initial conditions
	tdom := doms[o.timeVar.Name]
	hasInit := make(map[string]bool)
	hasPer := make(map[string]map[string]bool)
	for _, bc := range o.Bcs {
		la, ok := bc.Lhs.(*sym.App)
		if !ok {
			continue
		}
		j, lo, ok := fixedArg(la)
		if !ok {
			continue
		}
		dim := la.F.Deps[j]
		if dim.Name == o.timeVar.Name {
			if lo == tdom.Min {
				hasInit[la.F.Name] = true
			}
			continue
		}
		ra, ok := bc.Rhs.(*sym.App)
		if !ok || ra.F.Name != la.F.Name {
			continue
		}
		k, hi, ok := fixedArg(ra)
		if !ok || k != j {
			continue
		}
		sdom := doms[dim.Name]
		if (lo == sdom.Min && hi == sdom.Max) || (lo == sdom.Max && hi == sdom.Min) {
			if hasPer[la.F.Name] == nil {
				hasPer[la.F.Name] = make(map[string]bool)
			}
			hasPer[la.F.Name][dim.Name] = true
		}
	}
	for _, f := range o.Dep {
		if !hasInit[f.Name] {
			return newErr(MissingBoundaryCondition, "field %q lacks an initial condition at %s = %g", f.Name, o.timeVar.Name, tdom.Min)
		}
		for _, s := range o.SpatialVars() {
			if !hasPer[f.Name][s.Name] {
				return newErr(MissingBoundaryCondition, "field %q lacks a periodic pair along %q", f.Name, s.Name)
			}
		}
	}
	return nil
}

// checkRefs verifies that every symbol referenced by eq is declared with a
// consistent signature
func (o *System) checkRefs(eq *Equation, doms map[string]*Interval, depIdx map[string]int, prms map[string]bool) (err error) {
	check := func(e sym.Expr) {
		if err != nil {
			return
		}
		switch v := e.(type) {
		case *sym.Variable:
			if len(v.Deps) > 0 {
				if _, ok := depIdx[v.Name]; ok {
					err = newErr(SignatureMismatch, "field %q must be applied to arguments", v.Name)
				} else {
					err = newErr(UndefinedSymbol, "field %q is not declared", v.Name)
				}
				return
			}
			if doms[v.Name] == nil {
				err = newErr(IncompleteSystem, "independent variable %q has no domain", v.Name)
			}
		case *sym.App:
			i, ok := depIdx[v.F.Name]
			if !ok {
				err = newErr(UndefinedSymbol, "field %q is not declared", v.F.Name)
				return
			}
			decl := o.Dep[i]
			if len(v.F.Deps) != len(decl.Deps) {
				err = newErr(SignatureMismatch, "field %q is used with %d dependencies but is declared with %d", v.F.Name, len(v.F.Deps), len(decl.Deps))
				return
			}
			for j, d := range v.F.Deps {
				if d.Name != decl.Deps[j].Name {
					err = newErr(SignatureMismatch, "field %q is used with dependency %q where %q is declared", v.F.Name, d.Name, decl.Deps[j].Name)
					return
				}
			}
			if len(v.Args) != len(decl.Deps) {
				err = newErr(SignatureMismatch, "field %q takes %d arguments but is applied to %d", v.F.Name, len(decl.Deps), len(v.Args))
			}
		case *sym.Deriv:
			if doms[v.Wrt.Name] == nil {
				err = newErr(IncompleteSystem, "independent variable %q has no domain", v.Wrt.Name)
			}
		case *sym.Param:
			if !prms[v.Name] {
				err = newErr(UndefinedSymbol, "parameter %q is not declared", v.Name)
			}
		}
	}
	sym.Walk(eq.Lhs, check)
	sym.Walk(eq.Rhs, check)
	return
}

// fixedArg finds the single argument of a fixed numeric value in a field
// application whose remaining arguments are the field's own dependencies.
// Returns the position and value of the fixed coordinate.
func fixedArg(a *sym.App) (pos int, value float64, ok bool) {
	pos = -1
	for i, arg := range a.Args {
		switch v := arg.(type) {
		case *sym.Num:
			if pos >= 0 {
				return -1, 0, false
			}
			pos = i
			value = v.V
		case *sym.Variable:
			if i >= len(a.F.Deps) || v.Name != a.F.Deps[i].Name {
				return -1, 0, false
			}
		default:
			return -1, 0, false
		}
	}
	if pos < 0 {
		return -1, 0, false
	}
	return pos, value, true
}

// dependsOn tells whether field f depends on the named variable
func dependsOn(f *sym.Variable, name string) bool {
	for _, d := range f.Deps {
		if d.Name == name {
			return true
		}
	}
	return false
}
