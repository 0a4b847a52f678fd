// Copyright 2026 The Pdesys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reg implements the ordered, append-only collections that
// accumulate PDE systems for an external solver or benchmarking harness.
// One Registry is created at harness start, handed to each problem
// definition, and read after all registrations complete. Entries are never
// deduplicated, removed, or reordered.
package reg

import (
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/pdesys/pde"
)

// canonical collection names read by external harnesses
const (
	// AllSystems collects every registered system
	AllSystems = "all_systems"

	// NonlinearSystems collects the systems with nonlinear terms
	NonlinearSystems = "nonlinear_systems"
)

// Registry accumulates systems into named ordered collections. Appends are
// serialised so that independently loaded problem modules may register
// concurrently.
type Registry struct {
	mu    sync.Mutex
	names []string
	cols  map[string][]*pde.System
}

// New returns an empty registry
func New() *Registry {
	return &Registry{cols: make(map[string][]*pde.System)}
}

// Register appends s to each named collection, in call order. Registering
// the same system twice appends it twice; callers own the once-only
// discipline.
func (o *Registry) Register(s *pde.System, into ...string) {
	if len(into) == 0 {
		chk.Panic("cannot register system %q without collection names", s.Name)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, name := range into {
		if _, ok := o.cols[name]; !ok {
			o.names = append(o.names, name)
		}
		o.cols[name] = append(o.cols[name], s)
	}
}

// Systems returns the entries of the named collection, in registration order
func (o *Registry) Systems(name string) []*pde.System {
	o.mu.Lock()
	defer o.mu.Unlock()
	res := make([]*pde.System, len(o.cols[name]))
	copy(res, o.cols[name])
	return res
}

// Len returns the number of entries in the named collection
func (o *Registry) Len(name string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.cols[name])
}

// Collections returns the collection names in first-use order
func (o *Registry) Collections() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	res := make([]string, len(o.names))
	copy(res, o.names)
	return res
}
