// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Maybe holds a value that may be undefined; e.g. a percentage variation with zero initial value
type Maybe struct {
	Value   float64 `json:"value" msgpack:"value"`
	Defined bool    `json:"defined" msgpack:"defined"`
}

// String returns the formatted value or "undefined"
func (o Maybe) String() string {
	if !o.Defined {
		return "undefined"
	}
	return io.Sf("%g", o.Value)
}

// Fmt formats the value with a verb such as "%.2f" or returns "undefined"
func (o Maybe) Fmt(verb string) string {
	if !o.Defined {
		return "undefined"
	}
	return io.Sf(verb, o.Value)
}

// Summary holds statistics of a time series
type Summary struct {
	Initial   float64 `json:"initial" msgpack:"initial"`
	Final     float64 `json:"final" msgpack:"final"`
	Max       float64 `json:"max" msgpack:"max"`
	Min       float64 `json:"min" msgpack:"min"`
	Mean      float64 `json:"mean" msgpack:"mean"`
	Variation Maybe   `json:"variation" msgpack:"variation"` // (final - initial) / initial * 100
}

// Summarize computes the statistics of a time series
//
//	Note: the variation is undefined if the initial value is zero
func Summarize(v []float64) (o Summary, err error) {
	if len(v) == 0 {
		return o, newErr(EmptySeries, "cannot summarize an empty series")
	}
	o.Initial = v[0]
	o.Final = v[len(v)-1]
	o.Max = floats.Max(v)
	o.Min = floats.Min(v)
	o.Mean = stat.Mean(v, nil)
	if o.Initial != 0 {
		o.Variation = Maybe{(o.Final - o.Initial) / o.Initial * 100, true}
	}
	return
}

// SummarizeAll summarizes every diagnostic of a series
func SummarizeAll(series *Series) (res map[string]Summary, err error) {
	res = make(map[string]Summary)
	for _, key := range DiagnosticKeys {
		v, err := series.Values(key)
		if err != nil {
			return nil, err
		}
		res[key], err = Summarize(v)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Travel holds the motion of the crest between the first and the last instants
type Travel struct {
	Xinitial float64 `json:"xinitial" msgpack:"xinitial"` // crest position at first instant
	Xfinal   float64 `json:"xfinal" msgpack:"xfinal"`     // crest position at last instant
	Dx       float64 `json:"dx" msgpack:"dx"`             // displacement
	Speed    Maybe   `json:"speed" msgpack:"speed"`       // mean speed dx / tfinal
}

// CrestTravel computes the displacement and mean propagation speed of the crest
//
//	Note: the speed is undefined if the final time is zero or if the first or last instants are dry
func CrestTravel(series *Series) (o Travel, err error) {
	n := series.Len()
	if n == 0 {
		return o, newErr(EmptySeries, "cannot compute crest travel of an empty series")
	}
	first, last := series.Recs[0], series.Recs[n-1]
	o.Xinitial = first.Xcrest
	o.Xfinal = last.Xcrest
	o.Dx = o.Xfinal - o.Xinitial
	tf := series.Times[n-1]
	if tf != 0 && !first.Dry() && !last.Dry() {
		o.Speed = Maybe{o.Dx / tf, true}
	}
	return
}

// BedExtent returns the min and max bed elevations of a slice
//
//	ok -- false if bed data is not available or the slice is empty
func BedExtent(s *Slice) (zmin, zmax float64, ok bool) {
	if !s.HasBed || len(s.Zb) == 0 {
		return
	}
	return floats.Min(s.Zb), floats.Max(s.Zb), true
}
