// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/svflow/svpost/inp"
	"github.com/svflow/svpost/out"
	"github.com/svflow/svpost/plot"
)

func init() {
	io.Verbose = false
}

// canvas implements plot.Canvas without drawing anything
type canvas struct {
	nsaved int
}

func (o *canvas) Reset(widthPt, prop float64, dpi int, eps bool) {}
func (o *canvas) Subplot(nrow, ncol, k int)                      {}
func (o *canvas) Curve(x, y []float64, sty *plot.Style)          {}
func (o *canvas) Area(x, ylow, yupp []float64, sty *plot.Style)  {}
func (o *canvas) Text(x, y float64, txt string, sty *plot.Style) {}
func (o *canvas) Contour(X, Y, Z [][]float64, label string)      {}
func (o *canvas) Labels(title, xlabel, ylabel string)            {}
func (o *canvas) Range(xmin, xmax, ymin, ymax float64)           {}
func (o *canvas) Save(dirout, fnkey string) (string, error) {
	o.nsaved++
	return filepath.Join(dirout, fnkey+".png"), nil
}

// wave writes nt instants of a crest moving to the right over a flat bed
func wave(tst *testing.T, dir string, nt int, irregular bool) string {
	var b strings.Builder
	for i := 0; i < nt; i++ {
		t := float64(i) * 0.5
		nx := 5
		if irregular && i == nt-1 {
			nx = 4
		}
		for j := 0; j < nx; j++ {
			x := float64(j)
			h := 1.0
			if j == i%nx {
				h = 2
			}
			b.WriteString(io.Sf("%g %g %g %g %g %g\n", t, x, h, 0.5*h, -1.0, h-1))
		}
		b.WriteString("\n")
	}
	fn := filepath.Join(dir, "solution.txt")
	if err := os.WriteFile(fn, []byte(b.String()), 0644); err != nil {
		tst.Fatalf("cannot write source: %v", err)
	}
	return fn
}

func config(tst *testing.T, source, dirout string) *inp.Config {
	cfg, err := inp.NewConfig(source, dirout)
	if err != nil {
		tst.Fatalf("NewConfig failed:\n%v", err)
	}
	cfg.Export.Sqlite = "diag.db"
	cfg.Reduce.Workers = 2
	cfg.Anim.Last = true
	return cfg
}

func Test_post01(tst *testing.T) {

	chk.PrintTitle("post01. complete run")

	dir := tst.TempDir()
	cfg := config(tst, wave(tst, dir, 4, false), filepath.Join(dir, "out"))
	cv := &canvas{}
	ana := New(cfg, cv, chk.Verbose)
	if err := ana.Run(context.Background()); err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	chk.Int(tst, "instants", ana.Store.Ninstants(), 4)
	chk.Int(tst, "series", ana.Series.Len(), 4)
	chk.Ints(tst, "frames", ana.Frames, []int{0, 1, 2, 3})
	if ana.Grid == nil {
		tst.Errorf("grid must be built. err=%v\n", ana.GridErr)
		return
	}
	nr, nc := ana.Grid.Dims()
	chk.Int(tst, "grid rows", nr, 4)
	chk.Int(tst, "grid cols", nc, 5)

	// final, snapshots, evolution, space-time and 4 frames
	chk.Int(tst, "saved figures", cv.nsaved, 8)
	chk.Int(tst, "files", len(ana.Files), 8)

	// crest moves one unit per half second
	chk.Float64(tst, "dx", 1e-15, ana.Travel.Dx, 3)
	chk.Float64(tst, "speed", 1e-15, ana.Travel.Speed.Value, 2)
	if ana.RunID == "" {
		tst.Errorf("run must be exported\n")
	}
	if ana.Cached {
		tst.Errorf("first run cannot use the cache\n")
	}

	report := ana.Report()
	for _, key := range ReportKeys {
		if !strings.Contains(report, key) {
			tst.Errorf("report must contain %q:\n%s\n", key, report)
		}
	}

	// second run reads the cache
	ana2 := New(cfg, nil, false)
	if err := ana2.Prepare(); err != nil {
		tst.Errorf("Prepare failed:\n%v", err)
		return
	}
	if !ana2.Cached {
		tst.Errorf("second run must read the cache\n")
	}
	for i := range ana.Series.Recs {
		if ana.Series.Recs[i] != ana2.Series.Recs[i] {
			tst.Errorf("cached record %d differs\n", i)
		}
	}
}

func Test_post02(tst *testing.T) {

	chk.PrintTitle("post02. irregular grid and missing data")

	dir := tst.TempDir()
	cfg := config(tst, wave(tst, dir, 3, true), filepath.Join(dir, "out"))
	cfg.Data.NoCache = true
	cfg.Export.Sqlite = ""
	cv := &canvas{}
	ana := New(cfg, cv, false)
	if err := ana.Run(context.Background()); err != nil {
		tst.Errorf("Run must not fail with irregular grid:\n%v", err)
		return
	}
	if ana.Grid != nil || !errors.Is(ana.GridErr, out.ErrIrregularGrid) {
		tst.Errorf("grid must be skipped with IrregularGrid. err=%v\n", ana.GridErr)
	}
	chk.Int(tst, "saved figures: final, snapshots, evolution and 3 frames", cv.nsaved, 6)
	if !strings.Contains(ana.Report(), "skipped") {
		tst.Errorf("report must mention the skipped grid\n")
	}

	// missing source
	cfg, err := inp.NewConfig(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out"))
	if err != nil {
		tst.Errorf("NewConfig failed:\n%v", err)
		return
	}
	err = New(cfg, nil, false).Run(context.Background())
	if !errors.Is(err, out.ErrDataUnavailable) {
		tst.Errorf("missing source must fail with DataUnavailable. err=%v\n", err)
	}
}
