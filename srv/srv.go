// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package srv serves the results of an analysis over HTTP (read-only)
package srv

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/svflow/svpost/internal/log"
	"github.com/svflow/svpost/out"
	"github.com/svflow/svpost/plot"
	"github.com/svflow/svpost/post"
	"go.uber.org/zap"
)

// Server serves the data of a prepared analysis
type Server struct {
	ana    *post.Analysis
	router *mux.Router
}

// New returns a new server
//
//	Note: ana must have been prepared; see post.Analysis.Prepare
func New(ana *post.Analysis) (o *Server) {
	o = &Server{ana: ana, router: mux.NewRouter()}
	o.router.Use(o.logging)
	o.router.HandleFunc("/instants", o.instants).Methods("GET")
	o.router.HandleFunc("/series", o.series).Methods("GET")
	o.router.HandleFunc("/summary", o.summary).Methods("GET")
	o.router.HandleFunc("/slice/{idx:[0-9]+}", o.slice).Methods("GET")
	o.router.HandleFunc("/grid", o.grid).Methods("GET")
	o.router.HandleFunc("/frames", o.frames).Methods("GET")
	return
}

// ServeHTTP implements http.Handler
func (o *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	o.router.ServeHTTP(w, req)
}

// ListenAndServe serves requests until ctx is cancelled
func (o *Server) ListenAndServe(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: o, ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() {
		log.Infow("serving", "addr", addr)
		errc <- hs.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	}
}

// handlers ////////////////////////////////////////////////////////////////////////////////////////

type instantsResponse struct {
	Ninstants int       `json:"ninstants"`
	Times     []float64 `json:"times"`
	HasBed    bool      `json:"hasbed"`
}

func (o *Server) instants(w http.ResponseWriter, req *http.Request) {
	st := o.ana.Store
	writeResponse(w, req, http.StatusOK, instantsResponse{st.Ninstants(), st.Instants(), st.HasBed()})
}

func (o *Server) series(w http.ResponseWriter, req *http.Request) {
	writeResponse(w, req, http.StatusOK, o.ana.Series)
}

type summaryResponse struct {
	Stats   map[string]out.Summary `json:"stats"`
	Travel  out.Travel             `json:"travel"`
	GridErr string                 `json:"griderr,omitempty"`
	Cached  bool                   `json:"cached"`
}

func (o *Server) summary(w http.ResponseWriter, req *http.Request) {
	res := summaryResponse{Stats: o.ana.Stats, Travel: o.ana.Travel, Cached: o.ana.Cached}
	if o.ana.GridErr != nil {
		res.GridErr = o.ana.GridErr.Error()
	}
	writeResponse(w, req, http.StatusOK, res)
}

type sliceResponse struct {
	T          float64         `json:"t"`
	X          []float64       `json:"x"`
	H          []float64       `json:"h"`
	U          []float64       `json:"u"`
	Zb         []float64       `json:"zb,omitempty"`
	Eta        []float64       `json:"eta,omitempty"`
	Record     out.Record      `json:"record"`
	Annotation plot.Annotation `json:"annotation"`
}

func (o *Server) slice(w http.ResponseWriter, req *http.Request) {
	idx, err := strconv.Atoi(mux.Vars(req)["idx"])
	if err != nil || idx < 0 || idx >= o.ana.Store.Ninstants() {
		writeError(w, req, http.StatusNotFound, errors.New("instant index is out of range"))
		return
	}
	s := out.SliceAt(o.ana.Store, idx)
	rec := o.ana.Series.Recs[idx]
	writeResponse(w, req, http.StatusOK, sliceResponse{
		T:          s.T,
		X:          s.X,
		H:          s.H,
		U:          s.U,
		Zb:         s.Zb,
		Eta:        s.Eta,
		Record:     rec,
		Annotation: plot.Annotate(s.T, rec, s.HasBed),
	})
}

type gridResponse struct {
	Field string      `json:"field"`
	T     []float64   `json:"t"`
	X     []float64   `json:"x"`
	Z     [][]float64 `json:"z"`
}

func (o *Server) grid(w http.ResponseWriter, req *http.Request) {
	key := req.URL.Query().Get("field")
	if key == "" {
		key = o.ana.Cfg.Grid.Field
	}
	field, err := out.ParseField(key)
	if err != nil {
		writeError(w, req, http.StatusBadRequest, err)
		return
	}
	g := o.ana.Grid
	if g == nil || g.Field != field {
		g, err = out.Pivot(o.ana.Store, field, out.PivotOpts{Threshold: o.ana.Cfg.Grid.Threshold, Every: o.ana.Cfg.Grid.Every})
		if err != nil {
			writeError(w, req, http.StatusUnprocessableEntity, err)
			return
		}
	}
	nr, _ := g.Dims()
	res := gridResponse{Field: g.Field.String(), T: g.T, X: g.X, Z: make([][]float64, nr)}
	for r := 0; r < nr; r++ {
		res.Z[r] = g.Row(r)
	}
	writeResponse(w, req, http.StatusOK, res)
}

type framesResponse struct {
	Total  int       `json:"total"`
	Frames []int     `json:"frames"`
	Times  []float64 `json:"times"`
}

func (o *Server) frames(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	maxFrames := o.ana.Cfg.Anim.MaxFrames
	if s := q.Get("max"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			writeError(w, req, http.StatusBadRequest, errors.New("max must be a positive integer"))
			return
		}
		maxFrames = v
	}
	terminal := o.ana.Cfg.Anim.Last
	if s := q.Get("terminal"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			writeError(w, req, http.StatusBadRequest, errors.New("terminal must be a boolean"))
			return
		}
		terminal = v
	}
	n := o.ana.Store.Ninstants()
	idx := out.SelectFrames(n, maxFrames)
	if terminal {
		idx = out.WithLast(idx, n)
	}
	times := make([]float64, len(idx))
	for i, k := range idx {
		times[i] = o.ana.Series.Times[k]
	}
	writeResponse(w, req, http.StatusOK, framesResponse{n, idx, times})
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func writeError(w http.ResponseWriter, req *http.Request, status int, err error) {
	res := errorResponse{Error: err.Error()}
	if k := out.KindOf(err); k != out.Unknown {
		res.Kind = k.String()
	}
	writeResponse(w, req, status, res)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (o *statusWriter) WriteHeader(status int) {
	o.status = status
	o.ResponseWriter.WriteHeader(status)
}

func (o *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		sw := &statusWriter{w, http.StatusOK}
		next.ServeHTTP(sw, req)
		log.GetZapLogger().Info("request",
			zap.String("method", req.Method),
			zap.String("uri", req.URL.RequestURI()),
			zap.Int("status", sw.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
