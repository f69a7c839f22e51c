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

func Test_store01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("store01. unique instants")

	samples := []Sample{
		{T: 2, X: 0}, {T: 0, X: 0}, {T: 1, X: 0},
		{T: 2, X: 1}, {T: 0, X: 1}, {T: 1, X: 1}, {T: 1, X: 2},
	}
	store, err := NewStore(samples, 4)
	if err != nil {
		tst.Errorf("NewStore failed:\n%v", err)
		return
	}
	chk.Array(tst, "instants", 1e-17, store.Instants(), []float64{0, 1, 2})
	chk.Int(tst, "ninstants", store.Ninstants(), 3)

	// samples at instant; in source order
	res := store.SamplesAt(1)
	io.Pforan("samples at t=1: %v\n", res)
	chk.Int(tst, "len(samples at 1)", len(res), 3)
	chk.Array(tst, "x at 1", 1e-17, []float64{res[0].X, res[1].X, res[2].X}, []float64{0, 1, 2})

	// unknown instant is not an error
	if len(store.SamplesAt(0.5)) != 0 {
		tst.Errorf("there should be no samples at t=0.5\n")
	}
	chk.Int(tst, "index of t=0.5", store.InstantIndex(0.5), -1)
	chk.Int(tst, "index of t=2", store.InstantIndex(2), 2)

	// instants returns a copy
	ins := store.Instants()
	ins[0] = 123
	chk.Float64(tst, "first instant", 1e-17, store.Instants()[0], 0)
}

func Test_store02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("store02. exact versus tolerance grouping")

	a, b := 0.1, 0.2
	t1 := a + b // 0.30000000000000004 at run time
	samples := []Sample{
		{T: 0.3, X: 0}, {T: t1, X: 1}, {T: 0.6, X: 0}, {T: 0.6, X: 1},
	}

	// exact: 0.3 and 0.1+0.2 are different instants
	exact, err := NewStore(samples, 4)
	if err != nil {
		tst.Errorf("NewStore failed:\n%v", err)
		return
	}
	chk.Int(tst, "exact: ninstants", exact.Ninstants(), 3)

	// tolerance: they are merged into the first one
	loose, err := NewStoreTol(samples, 4, 1e-9)
	if err != nil {
		tst.Errorf("NewStoreTol failed:\n%v", err)
		return
	}
	chk.Int(tst, "tol: ninstants", loose.Ninstants(), 2)
	chk.Array(tst, "tol: instants", 1e-17, loose.Instants(), []float64{0.3, 0.6})
	chk.Int(tst, "tol: len(samples at 0.3)", len(loose.SamplesAt(0.3)), 2)
	chk.Int(tst, "tol: len(samples at t1)", len(loose.SamplesAt(t1)), 2)
}

func Test_store03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("store03. invalid input")

	_, err := NewStore(nil, 4)
	if !errors.Is(err, ErrDataUnavailable) {
		tst.Errorf("DataUnavailable expected. got %v\n", err)
	}
	_, err = NewStore([]Sample{{}}, 5)
	if !errors.Is(err, ErrMalformedRecord) {
		tst.Errorf("MalformedRecord expected. got %v\n", err)
	}
	_, err = NewStoreTol([]Sample{{}}, 4, -1)
	if err == nil {
		tst.Errorf("negative tolerance must fail\n")
	}
}

func Test_store04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("store04. limits")

	store := readStore(tst, beach6)
	xmin, xmax, zmin, zmax := store.Limits()
	chk.Array(tst, "limits", 1e-15, []float64{xmin, xmax, zmin, zmax}, []float64{0, 3, -0.1, 0.8})
}
