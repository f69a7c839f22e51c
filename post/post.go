// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package post runs the complete post-processing of one simulation: loading, reduction,
// statistics, space-time grid, figures, animation and export
package post

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/svflow/svpost/cache"
	"github.com/svflow/svpost/export"
	"github.com/svflow/svpost/inp"
	"github.com/svflow/svpost/internal/log"
	"github.com/svflow/svpost/out"
	"github.com/svflow/svpost/plot"
)

// ReportKeys lists the diagnostics shown in the console report
var ReportKeys = []string{"etamax", "hmax", "ucrest", "umaxabs"}

// Analysis holds all data of a post-processing run
type Analysis struct {
	Cfg     *inp.Config              // configuration
	Store   *out.Store               // samples
	Series  *out.Series              // diagnostics of all instants
	Stats   map[string]out.Summary   // statistics by diagnostic key
	Travel  out.Travel               // motion of the crest
	Grid    *out.Grid                // space-time grid; nil if the positions are irregular
	GridErr error                    // reason why Grid is nil
	Frames  []int                    // instant indices of animation frames
	Fig     *plot.Figure             // rendering context
	Files   []string                 // generated figures and frames
	RunID   string                   // id of exported run
	Verbose bool                     // show messages
	Cached  bool                     // diagnostics were read from cache
	Timings map[string]time.Duration // duration of each stage
}

// New returns a new Analysis
//
//	canvas -- rendering backend; nil disables figures and animations
func New(cfg *inp.Config, canvas plot.Canvas, verbose bool) (o *Analysis) {
	o = &Analysis{Cfg: cfg, Verbose: verbose, Timings: make(map[string]time.Duration)}
	if canvas != nil {
		o.Fig = plot.NewFigure(canvas, cfg.DirOut, cfg.Key)
		o.Fig.WidthPt = cfg.Plot.WidthPt
		o.Fig.Prop = cfg.Plot.Prop
		o.Fig.Dpi = cfg.Plot.Dpi
		o.Fig.Eps = cfg.Plot.Eps
		o.Fig.Ymin = cfg.Plot.Ymin
		o.Fig.Verbose = verbose
	}
	return
}

// Run runs all stages
//
//	Note: errors while loading or reducing data are fatal; an irregular grid only skips the
//	space-time figure
func (o *Analysis) Run(ctx context.Context) (err error) {

	cputime := time.Now()
	if err = os.MkdirAll(o.Cfg.DirOut, 0777); err != nil {
		return chk.Err("cannot create output directory %q:\n%v", o.Cfg.DirOut, err)
	}

	// data
	if err = o.Prepare(); err != nil {
		return
	}
	if o.Verbose {
		io.Pf("%s", o.Report())
	}

	// figures
	if err = o.Render(); err != nil {
		return
	}
	if err = o.Animate(); err != nil {
		return
	}

	// export
	if err = o.Export(ctx); err != nil {
		return
	}

	// message
	if o.Verbose {
		io.Pflmag("cpu time   = %v\n", time.Now().Sub(cputime))
	}
	log.Infow("finished", "key", o.Cfg.Key, "files", len(o.Files), "elapsed", time.Since(cputime).String())
	return
}

// Prepare loads data, computes diagnostics, statistics, animation frames and the space-time grid
func (o *Analysis) Prepare() (err error) {
	if err = o.Load(); err != nil {
		return
	}
	if err = o.Reduce(); err != nil {
		return
	}
	o.SelectFrames()
	o.Pivot()
	return
}

// Load reads the samples
func (o *Analysis) Load() (err error) {
	defer o.timing("load", time.Now())
	o.Store, err = out.Load(o.Cfg.Source, o.Cfg.Reduce.InstantTol)
	if err != nil {
		log.Errorw("cannot load samples", "source", o.Cfg.Source, "kind", out.KindOf(err).String(), "error", err)
		return
	}
	log.Infow("samples loaded", "source", o.Cfg.Source, "samples", len(o.Store.Samples), "instants", o.Store.Ninstants(), "ncols", o.Store.Ncols)
	return
}

// Reduce computes (or reads from cache) the diagnostics and their statistics
func (o *Analysis) Reduce() (err error) {
	defer o.timing("reduce", time.Now())

	// cached series
	var hdr cache.Header
	useCache := !o.Cfg.Data.NoCache
	if useCache {
		hdr, err = cache.Stamp(o.Cfg.Source, o.Cfg.Reduce.InstantTol)
		if err != nil {
			log.Warnw("cache disabled", "error", err)
			useCache, err = false, nil
		}
	}
	if useCache {
		series, ok, e := cache.Read(o.Cfg.DirOut, o.Cfg.Key, o.Cfg.EncType, hdr)
		switch {
		case e != nil:
			log.Warnw("corrupt cache file; diagnostics will be recomputed", "error", e)
		case ok && series.Len() == o.Store.Ninstants():
			o.Series, o.Cached = series, true
			log.Infow("diagnostics read from cache", "file", cache.Path(o.Cfg.DirOut, o.Cfg.Key, o.Cfg.EncType))
		case ok:
			log.Warnw("cache does not match samples; diagnostics will be recomputed", "cached", series.Len(), "instants", o.Store.Ninstants())
		}
	}

	// compute
	if o.Series == nil {
		o.Series = out.AssembleParallel(o.Store, o.Cfg.Reduce.Workers)
		log.Infow("diagnostics computed", "instants", o.Series.Len(), "workers", o.Cfg.Reduce.Workers)
		if useCache {
			if e := cache.Save(o.Cfg.DirOut, o.Cfg.Key, o.Cfg.EncType, hdr, o.Series, o.Verbose); e != nil {
				log.Warnw("cannot save cache file", "error", e)
			}
		}
	}

	// statistics
	o.Stats, err = out.SummarizeAll(o.Series)
	if err != nil {
		return
	}
	o.Travel, err = out.CrestTravel(o.Series)
	return
}

// SelectFrames selects the instants of the animation
func (o *Analysis) SelectFrames() {
	n := o.Store.Ninstants()
	o.Frames = out.SelectFrames(n, o.Cfg.Anim.MaxFrames)
	if o.Cfg.Anim.Last {
		o.Frames = out.WithLast(o.Frames, n)
	}
	log.Debugw("frames selected", "total", n, "frames", len(o.Frames))
}

// Pivot builds the space-time grid
//
//	Note: on failure, Grid is nil and GridErr holds the reason
func (o *Analysis) Pivot() {
	defer o.timing("pivot", time.Now())
	field, err := out.ParseField(o.Cfg.Grid.Field)
	if err == nil {
		o.Grid, err = out.Pivot(o.Store, field, out.PivotOpts{Threshold: o.Cfg.Grid.Threshold, Every: o.Cfg.Grid.Every})
	}
	o.GridErr = err
	if err != nil {
		log.Warnw("space-time grid skipped", "kind", out.KindOf(err).String(), "error", err)
		return
	}
	nr, nc := o.Grid.Dims()
	log.Infow("space-time grid built", "field", o.Grid.Field.String(), "rows", nr, "cols", nc)
}

// Render draws the final state, snapshots, evolution and space-time figures
func (o *Analysis) Render() (err error) {
	if o.Fig == nil || o.Cfg.Plot.Skip {
		return
	}
	defer o.timing("render", time.Now())
	n := o.Store.Ninstants()
	last := out.SliceAt(o.Store, n-1)
	if last.Len() > 0 {
		if err = o.save(plot.FinalState(o.Fig, last, o.Series.Recs[n-1])); err != nil {
			return
		}
	}
	if err = o.save(plot.Snapshots(o.Fig, o.Store, out.SelectSnapshots(n, o.Cfg.Plot.Snapshots))); err != nil {
		return
	}
	if err = o.save(plot.Evolution(o.Fig, o.Series, o.Stats)); err != nil {
		return
	}
	if o.Grid != nil {
		if nr, nc := o.Grid.Dims(); nr > 1 && nc > 1 {
			err = o.save(plot.Spacetime(o.Fig, o.Grid))
		}
	}
	return
}

// Animate draws the frames of the animation and, optionally, assembles them into a gif
func (o *Analysis) Animate() (err error) {
	if o.Fig == nil || o.Cfg.Anim.Skip {
		return
	}
	defer o.timing("animate", time.Now())
	files, err := plot.Animate(o.Fig, o.Frames, plot.Frame(o.Store, o.Series))
	o.Files = append(o.Files, files...)
	if err != nil {
		return
	}
	log.Infow("animation frames saved", "frames", len(files))
	if o.Cfg.Anim.Gif && !o.Cfg.Plot.Eps {
		fn := filepath.Join(o.Cfg.DirOut, o.Cfg.Key+".gif")
		if err = plot.MakeGif(fn, files, o.Cfg.Anim.Delay); err != nil {
			return
		}
		o.Files = append(o.Files, fn)
		if o.Verbose {
			io.Pfblue2("file <%s> written\n", fn)
		}
	}
	return
}

// Export saves the diagnostics into the SQLite database, if given
func (o *Analysis) Export(ctx context.Context) (err error) {
	fn := o.Cfg.Export.Sqlite
	if fn == "" {
		return
	}
	defer o.timing("export", time.Now())
	if !filepath.IsAbs(fn) {
		fn = filepath.Join(o.Cfg.DirOut, fn)
	}
	db, err := export.Open(ctx, fn)
	if err != nil {
		return
	}
	defer db.Close()
	run, err := db.Save(ctx, o.Cfg.Source, o.Cfg.Key, o.Store.Ncols, o.Series)
	if err != nil {
		return
	}
	o.RunID = run.ID
	log.Infow("diagnostics exported", "database", fn, "run", run.ID)
	if o.Verbose {
		io.Pfblue2("run <%s> saved in <%s>\n", run.ID, fn)
	}
	return
}

// Report returns the console report with statistics
func (o *Analysis) Report() string {
	var b strings.Builder
	n := o.Store.Ninstants()
	b.WriteString(io.Sf("\n%s\n", o.Cfg.Key))
	b.WriteString(io.Sf("number of instants   = %d\n", n))
	b.WriteString(io.Sf("number of samples    = %d\n", len(o.Store.Samples)))
	b.WriteString(io.Sf("time interval        = [%g, %g]\n", o.Series.Times[0], o.Series.Times[n-1]))
	if zmin, zmax, ok := out.BedExtent(out.SliceAt(o.Store, n-1)); ok {
		b.WriteString(io.Sf("bed elevation        = [%.4f, %.4f]\n", zmin, zmax))
	}
	b.WriteString(io.Sf("crest position       = %.4f => %.4f (dx = %.4f)\n", o.Travel.Xinitial, o.Travel.Xfinal, o.Travel.Dx))
	b.WriteString(io.Sf("crest mean speed     = %s\n", o.Travel.Speed.Fmt("%.4f")))
	for _, key := range ReportKeys {
		s := o.Stats[key]
		b.WriteString(io.Sf("%-8s initial = %10.4f  final = %10.4f  max = %10.4f  min = %10.4f  mean = %10.4f  variation = %s%%\n",
			key, s.Initial, s.Final, s.Max, s.Min, s.Mean, s.Variation.Fmt("%.2f")))
	}
	if o.GridErr != nil {
		b.WriteString(io.Sf("space-time grid      = skipped (%v)\n", out.KindOf(o.GridErr)))
	}
	return b.String()
}

func (o *Analysis) save(fn string, err error) error {
	if err != nil {
		return err
	}
	o.Files = append(o.Files, fn)
	return nil
}

func (o *Analysis) timing(stage string, start time.Time) {
	o.Timings[stage] = time.Since(start)
	log.Debugw("stage finished", "stage", stage, "elapsed", o.Timings[stage].String())
}
