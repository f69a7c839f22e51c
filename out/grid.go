// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"gonum.org/v1/gonum/mat"
)

// Grid holds the values of one field on the rectangular instant × position grid
type Grid struct {
	Field Field      // field stored in Z
	T     []float64  // [nrows] times of selected instants; ascending
	Idx   []int      // [nrows] instant indices of rows
	X     []float64  // [ncols] positions shared by every instant; ascending
	Z     *mat.Dense // [nrows][ncols] values
}

// PivotOpts holds options to decimate the rows of a grid
//
//	Rows are decimated (every Every-th instant is kept, starting with the first) only if the
//	number of instants is greater than Threshold. Threshold <= 0 or Every <= 1 disable decimation
type PivotOpts struct {
	Threshold int // number of instants above which decimation happens
	Every     int // keep one row in Every
}

// Pivot builds the space-time grid of a field
//
//	Note: every instant must have exactly the same positions as the first instant. Otherwise, an
//	IrregularGrid error is returned and no grid is built
func Pivot(store *Store, field Field, opts PivotOpts) (o *Grid, err error) {

	// slices; checking all axes before any row is stored
	n := store.Ninstants()
	slices := make([]*Slice, n)
	for i := 0; i < n; i++ {
		slices[i] = SliceAt(store, i)
		if i == 0 {
			continue
		}
		if err = sameAxis(slices[0], slices[i]); err != nil {
			return nil, err
		}
	}
	x := slices[0].X
	if len(x) == 0 {
		return nil, newErr(IrregularGrid, "first instant has no positions")
	}

	// selected rows
	rows := RowSelection(n, opts)

	// grid
	o = &Grid{Field: field, X: make([]float64, len(x))}
	copy(o.X, x)
	o.Z = mat.NewDense(len(rows), len(x), nil)
	for r, i := range rows {
		o.T = append(o.T, slices[i].T)
		o.Idx = append(o.Idx, i)
		o.Z.SetRow(r, slices[i].Get(field))
	}
	return
}

// RowSelection returns the instant indices kept by Pivot
func RowSelection(ninstants int, opts PivotOpts) (rows []int) {
	every := 1
	if opts.Threshold > 0 && opts.Every > 1 && ninstants > opts.Threshold {
		every = opts.Every
	}
	for i := 0; i < ninstants; i += every {
		rows = append(rows, i)
	}
	return
}

// Dims returns the number of rows (instants) and columns (positions)
func (o *Grid) Dims() (nrows, ncols int) {
	return o.Z.Dims()
}

// Row returns a copy of the values of row r
func (o *Grid) Row(r int) []float64 {
	return mat.Row(nil, r, o.Z)
}

// Mesh returns the matrices of positions, times and values used for surface or contour plots
//
//	X[r][c] = X[c],  Y[r][c] = T[r],  Z[r][c] = values
func (o *Grid) Mesh() (X, Y, Z [][]float64) {
	nr, nc := o.Z.Dims()
	X = make([][]float64, nr)
	Y = make([][]float64, nr)
	Z = make([][]float64, nr)
	for r := 0; r < nr; r++ {
		X[r] = make([]float64, nc)
		Y[r] = make([]float64, nc)
		Z[r] = mat.Row(nil, r, o.Z)
		for c := 0; c < nc; c++ {
			X[r][c] = o.X[c]
			Y[r][c] = o.T[r]
		}
	}
	return
}

func sameAxis(first, other *Slice) error {
	if len(first.X) != len(other.X) {
		return newErr(IrregularGrid, "instant t=%g has %d positions but instant t=%g has %d", other.T, len(other.X), first.T, len(first.X))
	}
	for j, x := range first.X {
		if other.X[j] != x {
			return newErr(IrregularGrid, "instant t=%g has position x=%g at index %d but instant t=%g has x=%g", other.T, other.X[j], j, first.T, x)
		}
	}
	return nil
}
