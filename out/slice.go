// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"gonum.org/v1/gonum/floats"
)

// Slice holds the samples of one instant sorted by position
//
//	Note: all slices have the same length; index i of every slice refers to the same sample
type Slice struct {
	T      float64   // time of instant
	X      []float64 // positions; ascending
	H      []float64 // water depths
	U      []float64 // velocities
	Zb     []float64 // bed elevations; nil if not available
	Eta    []float64 // free-surface elevations; nil if not available
	HasBed bool      // Zb and Eta are available
}

// NewSlice returns the slice of the instant t
//
//	Note: an instant without samples results in an empty (but valid) slice
func NewSlice(store *Store, t float64) *Slice {
	return newSlice(store, t, store.SamplesAt(t))
}

// SliceAt returns the slice of the instant with index idx
func SliceAt(store *Store, idx int) *Slice {
	var t float64
	if idx >= 0 && idx < len(store.times) {
		t = store.times[idx]
	}
	return newSlice(store, t, store.SamplesAtIndex(idx))
}

// Len returns the number of points
func (o *Slice) Len() int {
	return len(o.X)
}

// Require returns an EmptyInstant error if the slice has no points
func (o *Slice) Require() error {
	if len(o.X) == 0 {
		return newErr(EmptyInstant, "instant t=%g has no samples", o.T)
	}
	return nil
}

// Get returns the values of a field
//
//	Note: bed and surface fields fall back to zero bed and depth, respectively, if not available
func (o *Slice) Get(f Field) []float64 {
	switch f {
	case FieldDepth:
		return o.H
	case FieldVelocity:
		return o.U
	case FieldBed:
		if o.HasBed {
			return o.Zb
		}
		return make([]float64, len(o.X))
	case FieldSurface:
		if o.HasBed {
			return o.Eta
		}
		return o.H
	}
	return nil
}

// Profile returns copies of the positions and the values of a field, ready for plotting
func (o *Slice) Profile(f Field) (x, y []float64) {
	x = make([]float64, len(o.X))
	y = make([]float64, len(o.X))
	copy(x, o.X)
	copy(y, o.Get(f))
	return
}

func newSlice(store *Store, t float64, samples []Sample) (o *Slice) {

	// new slice
	n := len(samples)
	o = &Slice{T: t, HasBed: store.HasBed()}
	o.X = make([]float64, n)
	o.H = make([]float64, n)
	o.U = make([]float64, n)
	if o.HasBed {
		o.Zb = make([]float64, n)
		o.Eta = make([]float64, n)
	}

	// stable sort by position; the same permutation is applied to every field
	inds := make([]int, n)
	for i, s := range samples {
		o.X[i] = s.X
		inds[i] = i
	}
	floats.ArgsortStable(o.X, inds)
	for i, j := range inds {
		s := samples[j]
		o.H[i] = s.H
		o.U[i] = s.U
		if o.HasBed {
			o.Zb[i] = s.Zb
			o.Eta[i] = s.Eta
		}
	}
	return
}
