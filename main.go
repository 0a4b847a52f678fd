// Copyright 2026 The Pdesys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/pdesys/prob"
	"github.com/cpmech/pdesys/reg"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\nPdesys -- Library of Symbolic PDE Problems\n\n")

	// populate registry
	r := reg.New()
	if err := prob.Populate(r); err != nil {
		chk.Panic("cannot populate registry: %v", err)
	}

	// report collections
	for _, cname := range r.Collections() {
		io.PfYel("%s (%d systems)\n", cname, r.Len(cname))
		for _, s := range r.Systems(cname) {
			io.Pf("  %s\n", s.Name)
			for _, eq := range s.Eqs {
				io.Pf("    %v\n", eq)
			}
			for _, d := range s.Domains {
				io.Pf("    %s ∈ [%g, %g]\n", d.V.Name, d.Min, d.Max)
			}
			io.Pf("    %d boundary conditions, %d parameters\n", len(s.Bcs), len(s.Prms))
		}
		io.Pf("\n")
	}
}
