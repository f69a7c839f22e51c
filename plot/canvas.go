// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package plot renders profiles, time series, space-time grids and animation frames of
// shallow-water results
package plot

// Style holds formatting options of curves, areas and texts
type Style struct {
	C   string  // color
	Ls  string  // line style
	Lw  float64 // line width
	M   string  // marker
	L   string  // label
	Fc  string  // face color of areas
	Ec  string  // edge color of areas
	Z   int     // z-order
	Fsz float64 // font size of texts
	Ha  string  // horizontal alignment of texts
	Va  string  // vertical alignment of texts
}

// Canvas defines the drawing backend. A Canvas holds the state of one figure at a time:
// Reset starts a new figure and Save writes and discards it
type Canvas interface {
	Reset(widthPt, prop float64, dpi int, eps bool)     // starts a new figure
	Subplot(nrow, ncol, k int)                          // selects the k-th (1-based) axes of a nrow×ncol layout
	Curve(x, y []float64, sty *Style)                   // draws a curve
	Area(x, ylow, yupp []float64, sty *Style)           // fills the area between ylow and yupp
	Text(x, y float64, txt string, sty *Style)          // draws text in data coordinates
	Contour(X, Y, Z [][]float64, label string)          // draws filled contours with a colorbar
	Labels(title, xlabel, ylabel string)                // sets title and axes labels of current axes
	Range(xmin, xmax, ymin, ymax float64)               // sets limits of current axes
	Save(dirout, fnkey string) (path string, err error) // saves figure
}
