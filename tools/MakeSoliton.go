// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"bytes"
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// MakeSoliton writes a six-column data file (t x h u zb H) with a solitary wave translating
// towards a linear beach. The profile is analytic (no run-up); it is meant for demonstrations
func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	fnout := io.ArgToString(0, "/tmp/svpost/soliton.txt")
	nx := io.ArgToInt(1, 201)
	nt := io.ArgToInt(2, 120)
	amp := io.ArgToFloat(3, 0.2)
	io.Pf("output file      (fnout) = %s\n", fnout)
	io.Pf("number of points (nx)    = %d\n", nx)
	io.Pf("number of times  (nt)    = %d\n", nt)
	io.Pf("wave amplitude   (amp)   = %g\n", amp)

	// constants
	g, d := 9.81, 1.0 // gravity and still-water depth
	L, xtoe, slope := 40.0, 25.0, 1.0/15.0
	c := math.Sqrt(g * (d + amp)) // celerity
	k := math.Sqrt(3 * amp / (4 * d * d * d))
	x0, tf := 5.0, 15.0/c

	// bed
	X := utl.LinSpace(0, L, nx)
	zb := make([]float64, nx)
	for i, x := range X {
		zb[i] = -d
		if x > xtoe {
			zb[i] = -d + slope*(x-xtoe)
		}
	}

	// samples
	var buf bytes.Buffer
	io.Ff(&buf, "# t x h u zb H\n")
	for j, t := range utl.LinSpace(0, tf, nt) {
		if j > 0 {
			io.Ff(&buf, "\n")
		}
		for i, x := range X {
			s := 1.0 / math.Cosh(k*(x-x0-c*t))
			eta := amp * s * s
			H := math.Max(eta, zb[i])
			h := H - zb[i]
			u := 0.0
			if h > 1e-4 {
				u = c * eta / h
			}
			io.Ff(&buf, "%g %g %g %g %g %g\n", t, x, h, u, zb[i], H)
		}
	}
	io.WriteFileVD(filepath.Dir(fnout), filepath.Base(fnout), &buf)
}
