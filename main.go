// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/svflow/svpost/inp"
	"github.com/svflow/svpost/internal/log"
	"github.com/svflow/svpost/plot"
	"github.com/svflow/svpost/post"
	"github.com/svflow/svpost/srv"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			log.Sync()
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)
	serve := io.ArgToBool(2, false)
	alias := io.ArgToString(3, "")

	// message
	if verbose {
		io.PfWhite("\nsvpost -- post-processing of shallow-water simulations\n\n")
		io.Pf("Copyright 2026 The svpost Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
		io.Pf("configuration or data file (fnamepath) = %v\n", fnamepath)
		io.Pf("show messages (verbose)                = %v\n", verbose)
		io.Pf("serve results over http (serve)        = %v\n", serve)
		io.Pf("word to add to results (alias)         = %q\n\n", alias)
	}

	// configuration; a data file may be given directly
	var cfg *inp.Config
	var err error
	switch filepath.Ext(fnamepath) {
	case ".json", ".yaml", ".yml":
		cfg, err = inp.ReadConfig(fnamepath, alias)
	default:
		cfg, err = inp.NewConfig(fnamepath, "")
	}
	if err != nil {
		chk.Panic("cannot read configuration:\n%v", err)
	}

	// log file
	if err = os.MkdirAll(cfg.DirOut, 0777); err != nil {
		chk.Panic("cannot create output directory:\n%v", err)
	}
	if err = log.Init(cfg.Log.File, cfg.Log.Debug, cfg.Log.MaxSize); err != nil {
		chk.Panic("cannot initialise log:\n%v", err)
	}
	defer log.Sync()

	// context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// serve results
	if serve {
		analysis := post.New(cfg, nil, verbose)
		if err = analysis.Prepare(); err != nil {
			chk.Panic("Prepare failed:\n%v", err)
		}
		if verbose {
			io.Pf("%s", analysis.Report())
			io.Pfgreen("\nserving at %s\n", cfg.Serve.Addr)
		}
		if err = srv.New(analysis).ListenAndServe(ctx, cfg.Serve.Addr); err != nil {
			chk.Panic("ListenAndServe failed:\n%v", err)
		}
		return
	}

	// run post-processing
	analysis := post.New(cfg, &plot.Plt{}, verbose)
	if err = analysis.Run(ctx); err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
}
