// Copyright 2026 The Pdesys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pde defines validated records for symbolic PDE problems: domain
// intervals, equations, boundary conditions, and the aggregate System that a
// solver or benchmarking harness consumes. Records are built once and read
// thereafter; construction either succeeds completely or fails with an
// Error identifying the offending symbol, variable, or dimension.
//
// Symbol checking is lazy: expressions (package sym) are built freely and
// all declaration, signature, and domain checks run in NewSystem.
package pde

import "github.com/cpmech/pdesys/sym"

// Interval is the closed domain [Min, Max] of one independent variable
type Interval struct {
	V   *sym.Variable
	Min float64
	Max float64
}

// NewInterval returns the domain of an independent variable. Fails with
// InvalidDomain unless min < max and v is independent.
func NewInterval(v *sym.Variable, min, max float64) (*Interval, error) {
	if len(v.Deps) > 0 {
		return nil, newErr(InvalidDomain, "cannot bind domain to field %q", v.Name)
	}
	if min >= max {
		return nil, newErr(InvalidDomain, "domain of %q has min=%g >= max=%g", v.Name, min, max)
	}
	return &Interval{V: v, Min: min, Max: max}, nil
}
