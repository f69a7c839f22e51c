// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_load01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("load01. six columns")

	store := readStore(tst, beach6)
	io.Pforan("instants = %v\n", store.Instants())
	chk.Int(tst, "ncols", store.Ncols, 6)
	chk.Int(tst, "nsamples", len(store.Samples), 12)
	if !store.HasBed() {
		tst.Errorf("store must have bed data\n")
	}
	s := store.Samples[3]
	chk.Array(tst, "sample 3", 1e-15, []float64{s.T, s.X, s.H, s.U, s.Zb, s.Eta}, []float64{0, 3, 0.8, -0.2, -0.1, 0.7})
}

func Test_load02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("load02. four columns")

	store := readStore(tst, "0 0 1 2\n0 1 3 4\n\n1 0 5 6\n1 1 7 8\n")
	chk.Int(tst, "ncols", store.Ncols, 4)
	if store.HasBed() {
		tst.Errorf("store must not have bed data\n")
	}
	chk.Array(tst, "instants", 1e-15, store.Instants(), []float64{0, 1})
	s := store.Samples[2]
	chk.Array(tst, "sample 2", 1e-15, []float64{s.T, s.X, s.H, s.U, s.Zb, s.Eta}, []float64{1, 0, 5, 6, 0, 0})
}

func Test_load03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("load03. malformed records")

	for i, txt := range []string{
		"0 0 1\n",                          // too few columns in first row
		"0 0 1 2 3\n",                      // five columns
		"0 0 1 2\n0 1 1 2 3 4\n",           // arity changes
		"0 0 1 2 3 4\n0 1 1 2\n",           // arity changes
		"0 0 one 2\n",                      // not a number
		"NaN 0 1 2\n",                      // time is not finite
		"0 Inf 1 2\n",                      // position is not finite
		"0 0 NaN 2\n",                      // depth is not finite
		"0 0 1 NaN\n",                      // velocity is not finite
		"0 0 1 -Inf\n",                     // velocity is not finite
		"0 0 1 0.2 NaN 1\n",                // bed is not finite
		"0 0 1 0.2 0 NaN\n0 1 2 0.5 0 2\n", // free surface is not finite
	} {
		_, err := Read(strings.NewReader(txt), "test", 0)
		if !errors.Is(err, ErrMalformedRecord) {
			tst.Errorf("case %d: MalformedRecord error expected. got: %v\n", i, err)
			continue
		}
		io.Pforan("case %d: %v\n", i, err)
	}
}

func Test_load04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("load04. data unavailable")

	// empty source
	for _, txt := range []string{"", "\n\n", "# only a comment\n"} {
		_, err := Read(strings.NewReader(txt), "test", 0)
		if !errors.Is(err, ErrDataUnavailable) {
			tst.Errorf("DataUnavailable error expected for %q. got: %v\n", txt, err)
		}
	}

	// missing file
	_, err := Load(filepath.Join(tst.TempDir(), "missing.txt"), 0)
	if !errors.Is(err, ErrDataUnavailable) {
		tst.Errorf("DataUnavailable error expected for missing file. got: %v\n", err)
	}
	if KindOf(err) != DataUnavailable {
		tst.Errorf("KindOf failed: %v\n", KindOf(err))
	}
}

func Test_load05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("load05. file")

	fn := filepath.Join(tst.TempDir(), "solution.txt")
	err := os.WriteFile(fn, []byte(beach6), 0644)
	if err != nil {
		tst.Fatalf("cannot write file: %v", err)
	}
	store, err := Load(fn, 0)
	if err != nil {
		tst.Errorf("Load failed:\n%v", err)
		return
	}
	chk.Int(tst, "ninstants", store.Ninstants(), 3)
}
