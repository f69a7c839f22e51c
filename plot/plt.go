// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

// Plt implements Canvas with gosl/plt (python/matplotlib)
//
//	Note: gosl/plt buffers commands globally; thus only one Plt figure can be drawn at a time
type Plt struct {
	eps bool
}

// Reset starts a new figure
func (o *Plt) Reset(widthPt, prop float64, dpi int, eps bool) {
	o.eps = eps
	plt.Reset(true, &plt.A{WidthPt: widthPt, Prop: prop, Dpi: dpi, Eps: eps})
}

// Subplot selects axes
func (o *Plt) Subplot(nrow, ncol, k int) {
	plt.Subplot(nrow, ncol, k)
}

// Curve draws a curve
func (o *Plt) Curve(x, y []float64, sty *Style) {
	plt.Plot(x, y, args(sty))
}

// Area fills the area between ylow and yupp
func (o *Plt) Area(x, ylow, yupp []float64, sty *Style) {
	n := len(x)
	if n < 2 {
		return
	}
	P := make([][]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		P = append(P, []float64{x[i], yupp[i]})
	}
	for i := n - 1; i >= 0; i-- {
		P = append(P, []float64{x[i], ylow[i]})
	}
	a := args(sty)
	a.Closed = true
	plt.Polyline(P, a)
}

// Text draws text
func (o *Plt) Text(x, y float64, txt string, sty *Style) {
	plt.Text(x, y, txt, args(sty))
}

// Contour draws filled contours
func (o *Plt) Contour(X, Y, Z [][]float64, label string) {
	plt.ContourF(X, Y, Z, &plt.A{CbarLbl: label})
}

// Labels sets title and labels
func (o *Plt) Labels(title, xlabel, ylabel string) {
	if title != "" {
		plt.Title(title, &plt.A{Fsz: 9})
	}
	plt.Gll(xlabel, ylabel, nil)
}

// Range sets limits
func (o *Plt) Range(xmin, xmax, ymin, ymax float64) {
	plt.AxisRange(xmin, xmax, ymin, ymax)
}

// Save saves figure
func (o *Plt) Save(dirout, fnkey string) (path string, err error) {
	defer func() {
		if e := recover(); e != nil {
			err = chk.Err("cannot save figure %q:\n%v", fnkey, e)
		}
	}()
	plt.Save(dirout, fnkey)
	ext := ".png"
	if o.eps {
		ext = ".eps"
	}
	return filepath.Join(dirout, fnkey+ext), nil
}

func args(sty *Style) *plt.A {
	if sty == nil {
		return nil
	}
	return &plt.A{
		C:   sty.C,
		Ls:  sty.Ls,
		Lw:  sty.Lw,
		M:   sty.M,
		L:   sty.L,
		Fc:  sty.Fc,
		Ec:  sty.Ec,
		Z:   sty.Z,
		Fsz: sty.Fsz,
		Ha:  sty.Ha,
		Va:  sty.Va,
	}
}
