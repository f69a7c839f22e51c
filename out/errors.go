// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
)

// Kind classifies errors returned by this package
type Kind int

// error kinds
const (
	Unknown         Kind = iota // not classified
	DataUnavailable             // source missing, unreadable or empty
	MalformedRecord             // row does not parse into the expected columns
	IrregularGrid               // instants do not share the same position axis
	EmptyInstant                // non-empty slice required but instant has no samples
	EmptySeries                 // statistics requested on an empty series
)

var kindNames = map[Kind]string{
	Unknown:         "Unknown",
	DataUnavailable: "DataUnavailable",
	MalformedRecord: "MalformedRecord",
	IrregularGrid:   "IrregularGrid",
	EmptyInstant:    "EmptyInstant",
	EmptySeries:     "EmptySeries",
}

// String returns the name of the kind
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Error holds a classified error
type Error struct {
	Kind Kind  // classification
	Err  error // underlying message
}

// sentinel errors for errors.Is
var (
	ErrDataUnavailable = &Error{Kind: DataUnavailable}
	ErrMalformedRecord = &Error{Kind: MalformedRecord}
	ErrIrregularGrid   = &Error{Kind: IrregularGrid}
	ErrEmptyInstant    = &Error{Kind: EmptyInstant}
	ErrEmptySeries     = &Error{Kind: EmptySeries}
)

// Error implements the error interface
func (o *Error) Error() string {
	if o.Err == nil {
		return o.Kind.String()
	}
	return o.Kind.String() + ": " + o.Err.Error()
}

// Unwrap returns the underlying error
func (o *Error) Unwrap() error {
	return o.Err
}

// Is reports whether target is an *Error of the same kind
func (o *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == o.Kind
}

// KindOf returns the kind of err or Unknown if err was not produced by this package
func KindOf(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return Unknown
}

func newErr(kind Kind, msg string, prm ...interface{}) *Error {
	return &Error{Kind: kind, Err: chk.Err(msg, prm...)}
}
