// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/svflow/svpost/out"
)

// Colors holds the colors of curves in evolution figures
var Colors = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"}

var (
	bedArea    = &Style{Fc: "#a0522d", Ec: "none", Z: 1}
	waterArea  = &Style{Fc: "#00ffff", Ec: "none", Z: 0}
	bedLine    = &Style{C: "#5c3317", Lw: 1.5, L: "bed", Z: 3}
	surfLine   = &Style{C: "b", Lw: 2, L: "free surface", Z: 4}
	depthLine  = &Style{C: "g", Lw: 2, L: "depth", Z: 4}
	velLine    = &Style{C: "r", Lw: 2, L: "velocity", Z: 4}
	annotStyle = &Style{Fsz: 8, Ha: "left", Va: "top", Z: 10}
)

// colorOf returns the i-th color, cycling
func colorOf(i int) string {
	return Colors[i%len(Colors)]
}

// drawElevations draws bed and water areas, the bed and the free surface
func drawElevations(fig *Figure, s *out.Slice, bottom float64) {
	x := s.X
	if s.HasBed {
		low := make([]float64, len(x))
		top := make([]float64, len(x))
		for i := range x {
			low[i] = bottom
			top[i] = math.Max(s.Eta[i], s.Zb[i])
		}
		fig.Canvas.Area(x, low, s.Zb, bedArea)
		fig.Canvas.Area(x, s.Zb, top, waterArea)
		fig.Canvas.Curve(x, s.Zb, bedLine)
		fig.Canvas.Curve(x, s.Eta, surfLine)
		return
	}
	fig.Canvas.Area(x, make([]float64, len(x)), s.H, waterArea)
	fig.Canvas.Curve(x, s.H, surfLine)
}

// FinalState draws free surface, depth and velocity profiles of one instant
func FinalState(fig *Figure, s *out.Slice, rec out.Record) (path string, err error) {
	if err = s.Require(); err != nil {
		return
	}
	ann := Annotate(s.T, rec, s.HasBed)
	fig.Begin(1.2)

	// free surface
	fig.Canvas.Subplot(3, 1, 1)
	bottom := 0.0
	if zmin, _, ok := out.BedExtent(s); ok {
		bottom = math.Min(zmin, fig.Ymin)
	}
	drawElevations(fig, s, bottom)
	fig.Canvas.Text(s.X[0], topOf(s), ann.Text, annotStyle)
	fig.Canvas.Labels("final state: "+ann.Title, "$x$ [m]", "elevation [m]")

	// depth
	fig.Canvas.Subplot(3, 1, 2)
	fig.Canvas.Curve(s.X, s.H, depthLine)
	fig.Canvas.Labels("", "$x$ [m]", "$h$ [m]")

	// velocity
	fig.Canvas.Subplot(3, 1, 3)
	fig.Canvas.Curve(s.X, s.U, velLine)
	fig.Canvas.Labels("", "$x$ [m]", "$u$ [m/s]")
	return fig.Save("final")
}

// Snapshots draws the free surface and depth profiles of selected instants
//
//	idx -- instant indices; e.g. from out.SelectSnapshots
func Snapshots(fig *Figure, store *out.Store, idx []int) (path string, err error) {
	if len(idx) == 0 {
		return "", out.ErrEmptySeries
	}
	fig.Begin(0.9)
	for k, i := range idx {
		s := out.SliceAt(store, i)
		if s.Len() == 0 {
			continue
		}
		lbl := io.Sf("t=%.2f", s.T)
		fig.Canvas.Subplot(2, 1, 1)
		if k == 0 && s.HasBed {
			fig.Canvas.Curve(s.X, s.Zb, bedLine)
		}
		fig.Canvas.Curve(s.X, s.Get(out.FieldSurface), &Style{C: colorOf(k), Lw: 1.5, L: lbl})
		fig.Canvas.Subplot(2, 1, 2)
		fig.Canvas.Curve(s.X, s.H, &Style{C: colorOf(k), Lw: 1.5, L: lbl})
	}
	fig.Canvas.Subplot(2, 1, 1)
	fig.Canvas.Labels("evolution of free surface", "$x$ [m]", "$H$ [m]")
	fig.Canvas.Subplot(2, 1, 2)
	fig.Canvas.Labels("evolution of depth", "$x$ [m]", "$h$ [m]")
	return fig.Save("snapshots")
}

// Evolution draws the time evolution of the diagnostics
//
//	stats -- summaries by diagnostic key (see out.SummarizeAll); may be nil
func Evolution(fig *Figure, series *out.Series, stats map[string]out.Summary) (path string, err error) {
	if series.Len() == 0 {
		return "", out.ErrEmptySeries
	}
	t := series.Times
	get := func(key string) []float64 {
		v, _ := series.Values(key)
		return v
	}
	annotate := func(keys ...string) {
		if stats == nil {
			return
		}
		txt := ""
		for i, key := range keys {
			if i > 0 {
				txt += "\n"
			}
			txt += SummaryText(key, stats[key])
		}
		ymax := math.Inf(-1)
		for _, key := range keys {
			for _, v := range get(key) {
				ymax = math.Max(ymax, v)
			}
		}
		fig.Canvas.Text(t[0], ymax, txt, annotStyle)
	}
	fig.Begin(0.9)

	// heights
	fig.Canvas.Subplot(2, 1, 1)
	fig.Canvas.Curve(t, get("etamax"), &Style{C: "b", Lw: 2, L: "$H_{max}$"})
	fig.Canvas.Curve(t, get("hmax"), &Style{C: "g", Lw: 2, Ls: "--", L: "$h_{max}$"})
	annotate("etamax", "hmax")
	fig.Canvas.Labels("maximum heights", "$t$ [s]", "[m]")

	// velocities
	fig.Canvas.Subplot(2, 1, 2)
	fig.Canvas.Curve(t, get("ucrest"), &Style{C: "r", Lw: 2, L: "$u_{crest}$"})
	fig.Canvas.Curve(t, get("umaxabs"), &Style{C: "m", Lw: 2, Ls: "--", L: "$|u|_{max}$"})
	annotate("ucrest", "umaxabs")
	fig.Canvas.Labels("velocities", "$t$ [s]", "[m/s]")
	return fig.Save("evolution")
}

// Spacetime draws filled contours of a space-time grid
func Spacetime(fig *Figure, grid *out.Grid) (path string, err error) {
	nr, nc := grid.Dims()
	if nr < 2 || nc < 2 {
		return "", out.ErrIrregularGrid
	}
	X, Y, Z := grid.Mesh()
	fig.Begin(0.8)
	fig.Canvas.Contour(X, Y, Z, grid.Field.String())
	fig.Canvas.Labels(io.Sf("space-time evolution of %s", grid.Field), "$x$ [m]", "$t$ [s]")
	return fig.Save("spacetime_" + grid.Field.String())
}

// Frame returns the function that draws the animation frame of one instant
//
//	Note: axes limits are the same for all frames
func Frame(store *out.Store, series *out.Series) DrawFunc {
	xmin, xmax, zmin, zmax := store.Limits()
	return func(fig *Figure, idx int) error {
		s := out.SliceAt(store, idx)
		if err := s.Require(); err != nil {
			return err
		}
		bottom := zmin
		if store.HasBed() {
			bottom = math.Min(zmin, fig.Ymin)
		}
		top := zmax + 0.1*math.Max(zmax-bottom, 1e-3)
		ann := Annotate(s.T, series.Recs[idx], s.HasBed)
		drawElevations(fig, s, bottom)
		fig.Canvas.Text(xmin, top, ann.Text, annotStyle)
		fig.Canvas.Labels(ann.Title, "$x$ [m]", "elevation [m]")
		fig.Canvas.Range(xmin, xmax, bottom, top)
		return nil
	}
}

func topOf(s *out.Slice) float64 {
	v := s.Get(out.FieldSurface)
	top := math.Inf(-1)
	for _, y := range v {
		top = math.Max(top, y)
	}
	return top
}
