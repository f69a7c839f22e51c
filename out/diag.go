// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
)

// Record holds the diagnostics of one instant
//
//	Note: all values are zero if the instant has no wet point
type Record struct {
	Hmax    float64 `json:"hmax" msgpack:"hmax"`       // max depth among wet points
	EtaMax  float64 `json:"etamax" msgpack:"etamax"`   // max free-surface elevation among wet points
	UmaxAbs float64 `json:"umaxabs" msgpack:"umaxabs"` // max |u| among wet points
	Ucrest  float64 `json:"ucrest" msgpack:"ucrest"`   // |u| at the crest
	Hcrest  float64 `json:"hcrest" msgpack:"hcrest"`   // depth at the crest
	Xcrest  float64 `json:"xcrest" msgpack:"xcrest"`   // position of the crest
	Nwet    int     `json:"nwet" msgpack:"nwet"`       // number of wet points
}

// Dry tells whether the record corresponds to an instant without wet points
func (o Record) Dry() bool {
	return o.Nwet == 0
}

// WetMask returns wet[i] = h[i] > WetTol
func WetMask(h []float64) (wet []bool) {
	wet = make([]bool, len(h))
	for i, v := range h {
		wet[i] = v > WetTol
	}
	return
}

// Reduce computes the diagnostics of one instant
//
//	The crest is the first wet point where the free surface (or depth, without bed data)
//	attains its maximum. Ucrest is measured there and is not the max |u|
func Reduce(s *Slice) (rec Record) {

	// wet points
	wet := WetMask(s.H)
	crestKey := s.H
	if s.HasBed {
		crestKey = s.Eta
	}

	// extrema
	k := -1
	for i, ok := range wet {
		if !ok {
			continue
		}
		if k < 0 {
			rec.Hmax = s.H[i]
			rec.UmaxAbs = math.Abs(s.U[i])
			k = i
		} else {
			rec.Hmax = math.Max(rec.Hmax, s.H[i])
			rec.UmaxAbs = math.Max(rec.UmaxAbs, math.Abs(s.U[i]))
			if crestKey[i] > crestKey[k] {
				k = i
			}
		}
		rec.Nwet++
	}

	// dry instant
	if k < 0 {
		return Record{}
	}

	// crest
	rec.Ucrest = math.Abs(s.U[k])
	rec.Hcrest = s.H[k]
	rec.Xcrest = s.X[k]
	if s.HasBed {
		rec.EtaMax = s.Eta[k]
	} else {
		rec.EtaMax = rec.Hmax
	}
	return
}
