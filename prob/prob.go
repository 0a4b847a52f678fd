// Copyright 2026 The Pdesys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prob holds the library of PDE problem definitions. Each problem
// file adds its builder to the catalog at load time; Populate then builds
// every problem and registers the validated systems into a given registry.
package prob

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/pdesys/pde"
	"github.com/cpmech/pdesys/reg"
)

// DefineFunc builds one PDE system
type DefineFunc func() (*pde.System, error)

// entry pairs a problem builder with its target collections
type entry struct {
	name string
	into []string
	fcn  DefineFunc
}

// catalog holds all problem definitions in registration order
var catalog []entry

// Set adds a problem definition to the catalog
func Set(name string, into []string, fcn DefineFunc) {
	for _, e := range catalog {
		if e.name == name {
			chk.Panic("cannot set problem %q because it exists already", name)
		}
	}
	catalog = append(catalog, entry{name: name, into: into, fcn: fcn})
}

// Get returns the builder of a cataloged problem
func Get(name string) DefineFunc {
	for _, e := range catalog {
		if e.name == name {
			return e.fcn
		}
	}
	chk.Panic("problem %q is not available in catalog", name)
	return nil
}

// Names returns the cataloged problem names in registration order
func Names() (res []string) {
	for _, e := range catalog {
		res = append(res, e.name)
	}
	return
}

// Populate builds every cataloged problem and registers it into r. A system
// is registered only after it validates, so a malformed problem never
// becomes visible in the collections; the first failure aborts.
func Populate(r *reg.Registry) error {
	for _, e := range catalog {
		s, err := e.fcn()
		if err != nil {
			return chk.Err("cannot build problem %q: %v", e.name, err)
		}
		r.Register(s, e.into...)
	}
	return nil
}
