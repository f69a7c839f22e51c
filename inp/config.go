// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a configuration (.json or .yaml) file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Data holds global data for the post-processing
type Data struct {
	Desc    string `json:"desc" yaml:"desc"`       // description of simulation
	Source  string `json:"source" yaml:"source"`   // file with samples; e.g. solution.txt
	AbsPath bool   `json:"abspath" yaml:"abspath"` // source is given in absolute path; otherwise relative to config file
	DirOut  string `json:"dirout" yaml:"dirout"`   // directory for output; e.g. /tmp/svpost
	Encoder string `json:"encoder" yaml:"encoder"` // encoder of cache files: "msgpack", "json" or "gob"
	NoCache bool   `json:"nocache" yaml:"nocache"` // do not read nor write cache files
}

// ReduceData holds data for the computation of diagnostics
type ReduceData struct {
	Workers    int     `json:"workers" yaml:"workers"`       // number of goroutines; 0 or 1 => serial
	InstantTol float64 `json:"instanttol" yaml:"instanttol"` // tolerance to group times; 0 => exact equality
}

// GridData holds data for the space-time grid
type GridData struct {
	Field     string `json:"field" yaml:"field"`         // field: "H", "h", "u" or "zb"
	Threshold int    `json:"threshold" yaml:"threshold"` // number of instants above which rows are decimated; 0 => never
	Every     int    `json:"every" yaml:"every"`         // keep one row in every; used with threshold
}

// AnimData holds data for animations
type AnimData struct {
	Skip      bool `json:"skip" yaml:"skip"`           // do not generate frames
	MaxFrames int  `json:"maxframes" yaml:"maxframes"` // maximum number of frames
	Last      bool `json:"last" yaml:"last"`           // always include the last instant
	Gif       bool `json:"gif" yaml:"gif"`             // assemble frames into a gif file
	Delay     int  `json:"delay" yaml:"delay"`         // delay between gif frames in 100ths of a second
}

// PlotData holds data for figures
type PlotData struct {
	Skip      bool    `json:"skip" yaml:"skip"`           // do not generate figures
	Snapshots int     `json:"snapshots" yaml:"snapshots"` // number of instants in evolution figures
	Dpi       int     `json:"dpi" yaml:"dpi"`             // resolution
	WidthPt   float64 `json:"widthpt" yaml:"widthpt"`     // figure width in points
	Prop      float64 `json:"prop" yaml:"prop"`           // proportion height/width
	Eps       bool    `json:"eps" yaml:"eps"`             // save figures as .eps instead of .png
	Ymin      float64 `json:"ymin" yaml:"ymin"`           // lower limit of elevations in figures with bed
}

// ExportData holds data for exporting diagnostics
type ExportData struct {
	Sqlite string `json:"sqlite" yaml:"sqlite"` // database file; empty => no export
}

// ServeData holds data for the http service
type ServeData struct {
	Addr string `json:"addr" yaml:"addr"` // address; e.g. ":8080"
}

// LogData holds data for the log file
type LogData struct {
	File    string `json:"file" yaml:"file"`       // log file; empty => <dirout>/<key>.log
	Debug   bool   `json:"debug" yaml:"debug"`     // debug level
	MaxSize int    `json:"maxsize" yaml:"maxsize"` // max size in megabytes before rotation
}

// Config holds all configuration data
type Config struct {

	// input
	Data   Data       `json:"data" yaml:"data"`
	Reduce ReduceData `json:"reduce" yaml:"reduce"`
	Grid   GridData   `json:"grid" yaml:"grid"`
	Anim   AnimData   `json:"anim" yaml:"anim"`
	Plot   PlotData   `json:"plot" yaml:"plot"`
	Export ExportData `json:"export" yaml:"export"`
	Serve  ServeData  `json:"serve" yaml:"serve"`
	Log    LogData    `json:"log" yaml:"log"`

	// derived
	Key     string `json:"-" yaml:"-"` // configuration key; e.g. beach.json => beach or beach-alias
	Source  string `json:"-" yaml:"-"` // full path of source
	DirOut  string `json:"-" yaml:"-"` // directory to save results
	EncType string `json:"-" yaml:"-"` // encoder type
}

// SetDefault sets defaults values
func (o *Config) SetDefault() {
	o.Data.Source = "solution.txt"
	o.Data.Encoder = "msgpack"
	o.Grid.Field = "H"
	o.Anim.MaxFrames = 100
	o.Anim.Delay = 10
	o.Plot.Snapshots = 8
	o.Plot.Dpi = 150
	o.Plot.WidthPt = 500
	o.Plot.Prop = 0.5
	o.Plot.Ymin = -0.2
	o.Serve.Addr = ":8080"
	o.Log.MaxSize = 10
}

// NewConfig returns a configuration with default values for a source file
//
//	Note: this is useful to run without a configuration file
func NewConfig(source, dirout string) (o *Config, err error) {
	o = new(Config)
	o.SetDefault()
	o.Data.Source = source
	o.Data.AbsPath = true
	o.Data.DirOut = dirout
	err = o.PostProcess("", io.FnKey(filepath.Base(source)), "")
	return
}

// ReadConfig reads all configuration data from a .json or .yaml file
//
//	alias -- word to be appended to the configuration key
func ReadConfig(cfgfilepath, alias string) (o *Config, err error) {

	// read file
	b, err := os.ReadFile(cfgfilepath)
	if err != nil {
		return nil, chk.Err("ReadConfig: cannot read configuration file %q:\n%v", cfgfilepath, err)
	}

	// decode
	o = new(Config)
	o.SetDefault()
	switch strings.ToLower(filepath.Ext(cfgfilepath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("ReadConfig: cannot unmarshal configuration file %q:\n%v", cfgfilepath, err)
	}

	// derived
	dir := os.ExpandEnv(filepath.Dir(cfgfilepath))
	err = o.PostProcess(dir, io.FnKey(filepath.Base(cfgfilepath)), alias)
	if err != nil {
		return nil, err
	}
	return
}

// PostProcess checks input data and sets derived values
//
//	dir -- directory of configuration file used to find the source
func (o *Config) PostProcess(dir, fnkey, alias string) (err error) {

	// key
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// source
	if o.Data.Source == "" {
		return chk.Err("source file must be given")
	}
	o.Source = os.ExpandEnv(o.Data.Source)
	if !o.Data.AbsPath && !filepath.IsAbs(o.Source) {
		o.Source = filepath.Join(dir, o.Source)
	}

	// output directory
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = "/tmp/svpost/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "msgpack" && o.EncType != "json" && o.EncType != "gob" {
		o.EncType = "msgpack"
	}

	// check values
	if o.Reduce.InstantTol < 0 {
		return chk.Err("tolerance to group times must be non-negative. instanttol=%g is invalid", o.Reduce.InstantTol)
	}
	if o.Reduce.Workers < 0 {
		return chk.Err("number of workers must be non-negative. workers=%d is invalid", o.Reduce.Workers)
	}
	switch o.Grid.Field {
	case "H", "h", "u", "zb":
	default:
		return chk.Err("grid field must be one of H, h, u or zb. field=%q is invalid", o.Grid.Field)
	}
	if o.Grid.Threshold < 0 || o.Grid.Every < 0 {
		return chk.Err("grid decimation parameters must be non-negative. threshold=%d every=%d", o.Grid.Threshold, o.Grid.Every)
	}
	if o.Anim.MaxFrames < 1 {
		return chk.Err("maximum number of frames must be positive. maxframes=%d is invalid", o.Anim.MaxFrames)
	}
	if o.Plot.Snapshots < 1 {
		o.Plot.Snapshots = 1
	}
	if o.Log.File == "" {
		o.Log.File = filepath.Join(o.DirOut, o.Key+".log")
	}
	return
}

// GetInfo returns formatted information
func (o *Config) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
