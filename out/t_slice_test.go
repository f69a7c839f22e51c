// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_slice01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("slice01. sorting keeps fields aligned")

	store := readStore(tst, beach6)
	s := NewSlice(store, 0.5)
	io.Pforan("x = %v\n", s.X)
	io.Pforan("h = %v\n", s.H)
	chk.Float64(tst, "t", 1e-17, s.T, 0.5)
	chk.Array(tst, "x", 1e-17, s.X, []float64{0, 1, 2, 3})
	chk.Array(tst, "h", 1e-17, s.H, []float64{0, 0.3, 0.7, 0.9})
	chk.Array(tst, "u", 1e-17, s.U, []float64{0, 0.6, 0.4, 0.05})
	chk.Array(tst, "zb", 1e-17, s.Zb, []float64{0.4, 0.1, 0, -0.1})
	chk.Array(tst, "H", 1e-17, s.Eta, []float64{0.4, 0.4, 0.7, 0.8})
	chk.Int(tst, "len", s.Len(), 4)
	if err := s.Require(); err != nil {
		tst.Errorf("slice must not be empty: %v\n", err)
	}
}

func Test_slice02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("slice02. ties keep source order")

	samples := []Sample{
		{T: 0, X: 1, H: 10}, {T: 0, X: 0, H: 20}, {T: 0, X: 1, H: 30}, {T: 0, X: 0, H: 40},
	}
	store, err := NewStore(samples, 4)
	if err != nil {
		tst.Errorf("NewStore failed:\n%v", err)
		return
	}
	s := NewSlice(store, 0)
	chk.Array(tst, "x", 1e-17, s.X, []float64{0, 0, 1, 1})
	chk.Array(tst, "h", 1e-17, s.H, []float64{20, 40, 10, 30})
	if s.Zb != nil || s.Eta != nil {
		tst.Errorf("bed and surface must be nil without bed data\n")
	}
	chk.Array(tst, "bed fallback", 1e-17, s.Get(FieldBed), []float64{0, 0, 0, 0})
	chk.Array(tst, "surface fallback", 1e-17, s.Get(FieldSurface), s.H)
}

func Test_slice03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("slice03. idempotence")

	store := readStore(tst, beach6)
	for _, t := range store.Instants() {
		a := NewSlice(store, t)
		b := NewSlice(store, t)
		chk.Array(tst, io.Sf("x @ %g", t), 1e-17, a.X, b.X)
		chk.Array(tst, io.Sf("h @ %g", t), 1e-17, a.H, b.H)
		chk.Array(tst, io.Sf("u @ %g", t), 1e-17, a.U, b.U)
		chk.Array(tst, io.Sf("zb @ %g", t), 1e-17, a.Zb, b.Zb)
		chk.Array(tst, io.Sf("H @ %g", t), 1e-17, a.Eta, b.Eta)
	}
}

func Test_slice04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("slice04. empty instant")

	store := readStore(tst, beach6)
	s := NewSlice(store, 0.25)
	chk.Int(tst, "len", s.Len(), 0)
	if !errors.Is(s.Require(), ErrEmptyInstant) {
		tst.Errorf("EmptyInstant expected\n")
	}
	rec := Reduce(s)
	if rec != (Record{}) {
		tst.Errorf("empty instant must give zero record. got %+v\n", rec)
	}

	// profile returns copies
	s = SliceAt(store, 2)
	x, y := s.Profile(FieldSurface)
	x[0], y[0] = -1, -1
	chk.Float64(tst, "x[0]", 1e-17, s.X[0], 0)
	chk.Float64(tst, "H[0]", 1e-17, s.Eta[0], 0.5)
}
