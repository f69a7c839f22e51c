// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/cpmech/gosl/io"
)

// Figure holds the context of rendering calls: the canvas and where and how figures are saved
type Figure struct {
	Canvas  Canvas   // backend
	DirOut  string   // output directory
	Key     string   // prefix of file names
	WidthPt float64  // width in points
	Prop    float64  // default proportion height/width
	Dpi     int      // resolution
	Eps     bool     // save .eps instead of .png
	Ymin    float64  // lower limit of elevations in animation frames (used if below the lowest bed)
	Files   []string // files saved so far
	Verbose bool     // print names of saved files
}

// NewFigure returns a new rendering context with default options
func NewFigure(canvas Canvas, dirout, key string) *Figure {
	return &Figure{
		Canvas:  canvas,
		DirOut:  dirout,
		Key:     key,
		WidthPt: 500,
		Prop:    0.5,
		Dpi:     150,
		Ymin:    -0.2,
	}
}

// Begin starts a new figure
//
//	prop -- proportion height/width; <= 0 means the default one
func (o *Figure) Begin(prop float64) {
	if prop <= 0 {
		prop = o.Prop
	}
	o.Canvas.Reset(o.WidthPt, prop, o.Dpi, o.Eps)
}

// Save saves the current figure as <dirout>/<key>_<name>.(png|eps)
func (o *Figure) Save(name string) (path string, err error) {
	path, err = o.Canvas.Save(o.DirOut, o.Key+"_"+name)
	if err != nil {
		return
	}
	o.Files = append(o.Files, path)
	if o.Verbose {
		io.Pfblue2("file <%s> written\n", path)
	}
	return
}
