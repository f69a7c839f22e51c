// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func checkRecord(tst *testing.T, msg string, rec Record, hmax, etamax, umax, ucrest, xcrest float64, nwet int) {
	chk.Float64(tst, msg+": hmax", 1e-15, rec.Hmax, hmax)
	chk.Float64(tst, msg+": etamax", 1e-15, rec.EtaMax, etamax)
	chk.Float64(tst, msg+": umaxabs", 1e-15, rec.UmaxAbs, umax)
	chk.Float64(tst, msg+": ucrest", 1e-15, rec.Ucrest, ucrest)
	chk.Float64(tst, msg+": xcrest", 1e-15, rec.Xcrest, xcrest)
	chk.Int(tst, msg+": nwet", rec.Nwet, nwet)
}

func Test_diag01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diag01. crest velocity is not the max velocity")

	s := &Slice{
		X:      []float64{0, 1},
		H:      []float64{1, 2},
		U:      []float64{5, 0.1},
		Zb:     []float64{0, 0},
		Eta:    []float64{1, 2},
		HasBed: true,
	}
	rec := Reduce(s)
	io.Pforan("rec = %+v\n", rec)
	checkRecord(tst, "two wet points", rec, 2, 2, 5, 0.1, 1, 2)
	chk.Float64(tst, "two wet points: hcrest", 1e-15, rec.Hcrest, 2)
}

func Test_diag02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diag02. dry instant")

	s := &Slice{
		X:      []float64{0, 1, 2},
		H:      []float64{0, 1e-5, 1e-4},
		U:      []float64{3, -4, math.NaN()},
		Zb:     []float64{1, 2, 3},
		Eta:    []float64{1, 2, 3},
		HasBed: true,
	}
	rec := Reduce(s)
	if rec != (Record{}) {
		tst.Errorf("dry instant must give the zero record. got %+v\n", rec)
	}
	if !rec.Dry() {
		tst.Errorf("record must be dry\n")
	}
	for i, w := range WetMask(s.H) {
		if w {
			tst.Errorf("point %d must be dry\n", i)
		}
	}
}

func Test_diag03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diag03. dry points are ignored")

	// the highest surface is on a dry point (bed at 5)
	s := &Slice{
		X:      []float64{0, 1, 2, 3},
		H:      []float64{0, 0.5, 0.5, 0.4},
		U:      []float64{-9, -0.3, 0.2, 0.7},
		Zb:     []float64{5, 0, 0, 0.1},
		Eta:    []float64{5, 0.5, 0.5, 0.5},
		HasBed: true,
	}
	rec := Reduce(s)
	io.Pforan("rec = %+v\n", rec)

	// ties are resolved by the first wet point
	checkRecord(tst, "beach", rec, 0.5, 0.5, 0.7, 0.3, 1, 3)
}

func Test_diag04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diag04. without bed data")

	s := &Slice{
		X: []float64{0, 1, 2},
		H: []float64{0.2, 0.9, 0.4},
		U: []float64{-2, -0.5, 1},
	}
	rec := Reduce(s)
	checkRecord(tst, "no bed", rec, 0.9, 0.9, 2, 0.5, 1, 3)
}

func Test_diag05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diag05. beach instants")

	store := readStore(tst, beach6)
	checkRecord(tst, "t=0", Reduce(SliceAt(store, 0)), 0.8, 0.7, 0.3, 0.2, 3, 3)
	checkRecord(tst, "t=0.5", Reduce(SliceAt(store, 1)), 0.9, 0.8, 0.6, 0.05, 3, 3)
	checkRecord(tst, "t=1", Reduce(SliceAt(store, 2)), 0.85, 0.75, 1.5, 0.01, 3, 4)
}

func Test_diag06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diag06. depth at the crest over a sloping bed")

	s := &Slice{
		X:      []float64{0, 1, 2},
		H:      []float64{1.2, 0.6, 0.2},
		U:      []float64{0.1, 0.3, -0.8},
		Zb:     []float64{-1, 0, 0.5},
		Eta:    []float64{0.2, 0.6, 0.7},
		HasBed: true,
	}
	rec := Reduce(s)
	io.Pforan("rec = %+v\n", rec)
	checkRecord(tst, "sloping bed", rec, 1.2, 0.7, 0.8, 0.8, 2, 3)
	chk.Float64(tst, "sloping bed: hcrest", 1e-15, rec.Hcrest, 0.2)
}
