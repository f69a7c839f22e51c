// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	goio "io"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DrawFunc draws the instant idx on a freshly started figure
type DrawFunc func(fig *Figure, idx int) error

// Animate draws and saves one figure per frame
//
//	frames -- instant indices; e.g. from out.SelectFrames
//	files  -- saved files in the order of frames: <key>_frame_0000, <key>_frame_0001, ...
//	Note: the figure is started anew before each frame; i.e. nothing from a previous frame remains
func Animate(fig *Figure, frames []int, draw DrawFunc) (files []string, err error) {
	for k, idx := range frames {
		fig.Begin(0)
		if err = draw(fig, idx); err != nil {
			return files, chk.Err("cannot draw frame %d (instant %d):\n%v", k, idx, err)
		}
		fn, err := fig.Save(io.Sf("frame_%04d", k))
		if err != nil {
			return files, err
		}
		files = append(files, fn)
	}
	return
}

// MakeGif assembles png frames into an animated gif file
//
//	delay -- delay between frames in 100ths of a second
func MakeGif(filename string, frames []string, delay int) (err error) {
	if len(frames) == 0 {
		return chk.Err("cannot make gif %q without frames", filename)
	}
	anim := &gif.GIF{}
	for _, fn := range frames {
		img, err := readPng(fn)
		if err != nil {
			return err
		}
		b := img.Bounds()
		pal := image.NewPaletted(b, palette.Plan9)
		draw.FloydSteinberg.Draw(pal, b, img, b.Min)
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, delay)
	}
	fil, err := os.Create(filename)
	if err != nil {
		return chk.Err("cannot create gif file %q:\n%v", filename, err)
	}
	return writeGif(fil, filename, anim)
}

// writeGif encodes anim into w and closes w
func writeGif(w goio.WriteCloser, filename string, anim *gif.GIF) (err error) {
	defer func() {
		if e := w.Close(); err == nil && e != nil {
			err = chk.Err("cannot close gif file %q:\n%v", filename, e)
		}
	}()
	if err = gif.EncodeAll(w, anim); err != nil {
		return chk.Err("cannot encode gif file %q:\n%v", filename, err)
	}
	return
}

func readPng(filename string) (img image.Image, err error) {
	fil, err := os.Open(filename)
	if err != nil {
		return nil, chk.Err("cannot open frame %q:\n%v", filename, err)
	}
	defer fil.Close()
	img, err = png.Decode(fil)
	if err != nil {
		return nil, chk.Err("cannot decode frame %q:\n%v", filename, err)
	}
	return
}
