// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"sort"
)

// Sample holds one row of simulation output
//
//	Note: Zb and Eta are zero when the producer writes only 4 columns
type Sample struct {
	T   float64 // simulation time
	X   float64 // spatial coordinate
	H   float64 // water depth h
	U   float64 // flow velocity u
	Zb  float64 // bed elevation zb
	Eta float64 // free-surface elevation H = h + zb
}

// Store holds all samples of a simulation and their grouping into instants
//
//	Note: the store is never modified after NewStore returns; concurrent readers are safe
type Store struct {
	Samples []Sample // all samples in source order
	Ncols   int      // number of columns in source: 4 {t,x,h,u} or 6 {t,x,h,u,zb,H}
	Tol     float64  // tolerance used to group times; 0 means exact equality

	times  []float64 // [ninstants] unique times; ascending
	groups [][]int   // [ninstants] indices in Samples belonging to each instant; source order
}

// NewStore groups samples into instants by exact equality of their times
//
//	Note: producers write the same time value for every row of one instant
func NewStore(samples []Sample, ncols int) (*Store, error) {
	return NewStoreTol(samples, ncols, 0)
}

// NewStoreTol groups samples into instants. Times within tol of the first (smallest) time of a
// group belong to that group. Use tol = 0 for exact grouping
func NewStoreTol(samples []Sample, ncols int, tol float64) (o *Store, err error) {

	// check
	if len(samples) == 0 {
		return nil, newErr(DataUnavailable, "there are no samples")
	}
	if ncols != 4 && ncols != 6 {
		return nil, newErr(MalformedRecord, "number of columns must be 4 or 6. ncols=%d is invalid", ncols)
	}
	if tol < 0 || math.IsNaN(tol) {
		return nil, newErr(Unknown, "tolerance to group times must be non-negative. tol=%g is invalid", tol)
	}

	// new store
	o = &Store{Samples: samples, Ncols: ncols, Tol: tol}

	// distinct times
	distinct := make([]float64, 0)
	seen := make(map[float64]bool)
	for _, s := range samples {
		if !seen[s.T] {
			seen[s.T] = true
			distinct = append(distinct, s.T)
		}
	}
	sort.Float64s(distinct)

	// groups of distinct times
	tid := make(map[float64]int) // maps distinct time to instant index
	for _, t := range distinct {
		n := len(o.times)
		if n > 0 && t-o.times[n-1] <= tol {
			tid[t] = n - 1
			continue
		}
		o.times = append(o.times, t)
		tid[t] = n
	}

	// indices of samples
	o.groups = make([][]int, len(o.times))
	for i, s := range samples {
		k := tid[s.T]
		o.groups[k] = append(o.groups[k], i)
	}
	return
}

// HasBed tells whether bed elevation and free-surface elevation are available
func (o *Store) HasBed() bool {
	return o.Ncols == 6
}

// Ninstants returns the number of unique instants
func (o *Store) Ninstants() int {
	return len(o.times)
}

// Instants returns a copy of the unique times in ascending order
func (o *Store) Instants() []float64 {
	res := make([]float64, len(o.times))
	copy(res, o.times)
	return res
}

// InstantIndex returns the index of the instant corresponding to t or -1 if not found
func (o *Store) InstantIndex(t float64) int {
	n := len(o.times)
	k := sort.SearchFloat64s(o.times, t)
	if o.Tol == 0 {
		if k < n && o.times[k] == t {
			return k
		}
		return -1
	}
	// with tolerance, t belongs to the last group starting at or before t
	if k < n && o.times[k] == t {
		return k
	}
	if k > 0 && t-o.times[k-1] <= o.Tol {
		return k - 1
	}
	return -1
}

// SamplesAt returns all samples belonging to the instant t, in source order
//
//	Note: an empty result means that t is not an instant of this store
func (o *Store) SamplesAt(t float64) []Sample {
	k := o.InstantIndex(t)
	if k < 0 {
		return nil
	}
	return o.SamplesAtIndex(k)
}

// SamplesAtIndex returns all samples of the instant with index idx, in source order
func (o *Store) SamplesAtIndex(idx int) []Sample {
	if idx < 0 || idx >= len(o.groups) {
		return nil
	}
	res := make([]Sample, len(o.groups[idx]))
	for i, j := range o.groups[idx] {
		res[i] = o.Samples[j]
	}
	return res
}

// Limits returns the extent of positions and elevations among all samples
//
//	Note: elevations are the free surface and bed if available; otherwise depth
func (o *Store) Limits() (xmin, xmax, zmin, zmax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	zmin, zmax = math.Inf(1), math.Inf(-1)
	for _, s := range o.Samples {
		xmin = math.Min(xmin, s.X)
		xmax = math.Max(xmax, s.X)
		if o.HasBed() {
			zmin = math.Min(zmin, math.Min(s.Zb, s.Eta))
			zmax = math.Max(zmax, math.Max(s.Zb, s.Eta))
		} else {
			zmin = math.Min(zmin, s.H)
			zmax = math.Max(zmax, s.H)
		}
	}
	return
}
