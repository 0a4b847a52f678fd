// Copyright 2026 The Pdesys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pde

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/pdesys/sym"
)

func verbose() {
	chk.Verbose = true
}

func Test_interval01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interval01. valid domain round-trips")

	x := sym.Var("x")
	ix, err := NewInterval(x, 0, 1)
	if err != nil {
		tst.Errorf("NewInterval failed: %v\n", err)
		return
	}
	chk.Float64(tst, "min", 1e-17, ix.Min, 0)
	chk.Float64(tst, "max", 1e-17, ix.Max, 1)
	chk.String(tst, ix.V.Name, "x")
}

func Test_interval02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interval02. degenerate domains fail")

	x := sym.Var("x")
	if _, err := NewInterval(x, 1, 1); err == nil || Kind(err) != InvalidDomain {
		tst.Errorf("min == max must fail with InvalidDomain (got %v)\n", err)
		return
	}
	if _, err := NewInterval(x, 2, 1); err == nil || Kind(err) != InvalidDomain {
		tst.Errorf("min > max must fail with InvalidDomain (got %v)\n", err)
		return
	}

	// fields cannot carry a domain
	u := sym.Fld("u", x)
	if _, err := NewInterval(u, 0, 1); err == nil || Kind(err) != InvalidDomain {
		tst.Errorf("domain bound to a field must fail with InvalidDomain (got %v)\n", err)
	}
}
