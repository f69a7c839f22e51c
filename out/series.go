// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"golang.org/x/sync/errgroup"
)

// Series holds the diagnostics of all instants
//
//	Note: Times[i] and Recs[i] refer to the i-th instant of the store (the canonical instant index)
type Series struct {
	Times []float64 `json:"times" msgpack:"times"` // [ninstants] times; ascending
	Recs  []Record  `json:"recs" msgpack:"recs"`   // [ninstants] diagnostics
}

// Assemble computes the diagnostics of every instant in ascending order of time
func Assemble(store *Store) (o *Series) {
	n := store.Ninstants()
	o = &Series{Times: store.Instants(), Recs: make([]Record, n)}
	for i := 0; i < n; i++ {
		o.Recs[i] = Reduce(SliceAt(store, i))
	}
	return
}

// AssembleParallel is the same as Assemble but instants are reduced by nworkers goroutines
//
//	Note: nworkers < 2 falls back to Assemble. The result is identical to Assemble's
func AssembleParallel(store *Store, nworkers int) (o *Series) {
	if nworkers < 2 {
		return Assemble(store)
	}
	n := store.Ninstants()
	o = &Series{Times: store.Instants(), Recs: make([]Record, n)}
	var g errgroup.Group
	g.SetLimit(nworkers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			o.Recs[i] = Reduce(SliceAt(store, i))
			return nil
		})
	}
	g.Wait()
	return
}

// Len returns the number of instants
func (o *Series) Len() int {
	return len(o.Recs)
}

// Values returns one diagnostic as a time series
//
//	key -- "hmax", "etamax", "umaxabs", "ucrest", "hcrest", "xcrest" or "nwet"
func (o *Series) Values(key string) ([]float64, error) {
	res := make([]float64, len(o.Recs))
	for i, r := range o.Recs {
		switch key {
		case "hmax":
			res[i] = r.Hmax
		case "etamax":
			res[i] = r.EtaMax
		case "umaxabs":
			res[i] = r.UmaxAbs
		case "ucrest":
			res[i] = r.Ucrest
		case "hcrest":
			res[i] = r.Hcrest
		case "xcrest":
			res[i] = r.Xcrest
		case "nwet":
			res[i] = float64(r.Nwet)
		default:
			return nil, newErr(Unknown, "invalid diagnostic key %q", key)
		}
	}
	return res, nil
}

// DiagnosticKeys lists the keys accepted by Series.Values
var DiagnosticKeys = []string{"hmax", "etamax", "umaxabs", "ucrest", "hcrest", "xcrest", "nwet"}
