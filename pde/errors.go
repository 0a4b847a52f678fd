// Copyright 2026 The Pdesys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pde

import "github.com/cpmech/gosl/io"

// ErrKind classifies construction failures. All failures are detected
// synchronously while building a record; none are recoverable in place.
type ErrKind int

// construction failure kinds
const (
	// UndefinedSymbol means an expression references a parameter or field
	// that was never declared
	UndefinedSymbol ErrKind = iota + 1

	// InvalidDomain means an interval with min >= max
	InvalidDomain

	// IncompleteSystem means an independent variable used in equations or
	// boundary conditions has no domain entry
	IncompleteSystem

	// SignatureMismatch means a field is applied with wrong or inconsistent
	// independent-variable arguments, or a governing equation has the wrong
	// shape
	SignatureMismatch

	// MissingBoundaryCondition means a field lacks its initial condition or
	// a periodic pair for a declared spatial dimension
	MissingBoundaryCondition
)

// String returns the kind name
func (k ErrKind) String() string {
	switch k {
	case UndefinedSymbol:
		return "UndefinedSymbol"
	case InvalidDomain:
		return "InvalidDomain"
	case IncompleteSystem:
		return "IncompleteSystem"
	case SignatureMismatch:
		return "SignatureMismatch"
	case MissingBoundaryCondition:
		return "MissingBoundaryCondition"
	}
	return "Unknown"
}

// Error is a construction error carrying its kind
type Error struct {
	kind ErrKind
	msg  string
}

// Error returns the message prefixed by the kind name
func (o *Error) Error() string { return o.kind.String() + ": " + o.msg }

// newErr returns a construction error of given kind with formatted message
func newErr(kind ErrKind, format string, prm ...interface{}) *Error {
	return &Error{kind: kind, msg: io.Sf(format, prm...)}
}

// Kind returns the kind of a construction error, or 0 for foreign errors
func Kind(err error) ErrKind {
	if e, ok := err.(*Error); ok {
		return e.kind
	}
	return 0
}
