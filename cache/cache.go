// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cache saves and reads back the diagnostics of a simulation so that they are not
// recomputed while the source file does not change
package cache

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/svflow/svpost/out"
	"github.com/vmihailenco/msgpack/v5"
)

// Version of the cache format
const Version = 2

// Encoder defines encoders; e.g. msgpack, gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. msgpack, gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	switch enctype {
	case "json":
		return json.NewEncoder(w)
	case "gob":
		return gob.NewEncoder(w)
	}
	return msgpack.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	switch enctype {
	case "json":
		return json.NewDecoder(r)
	case "gob":
		return gob.NewDecoder(r)
	}
	return msgpack.NewDecoder(r)
}

// Header identifies the source of cached data
type Header struct {
	Version int     `json:"version" msgpack:"version"` // cache format
	Source  string  `json:"source" msgpack:"source"`   // full path of source file
	Size    int64   `json:"size" msgpack:"size"`       // size of source file
	ModTime int64   `json:"modtime" msgpack:"modtime"` // modification time of source file (unix nanoseconds)
	Tol     float64 `json:"tol" msgpack:"tol"`         // tolerance used to group times
}

// Stamp returns the header corresponding to the current state of a source file
func Stamp(source string, tol float64) (hdr Header, err error) {
	info, err := os.Stat(source)
	if err != nil {
		return hdr, chk.Err("cannot stat source file %q:\n%v", source, err)
	}
	return Header{Version, source, info.Size(), info.ModTime().UnixNano(), tol}, nil
}

// Path returns the path of the cache file
func Path(dirout, key, enctype string) string {
	return filepath.Join(dirout, io.Sf("%s_series.%s", key, enctype))
}

// Save saves the series to the cache file
func Save(dirout, key, enctype string, hdr Header, series *out.Series, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)

	// encode header and series
	err = enc.Encode(hdr)
	if err != nil {
		return chk.Err("cannot encode cache header\n%v", err)
	}
	err = enc.Encode(series)
	if err != nil {
		return chk.Err("cannot encode series\n%v", err)
	}

	// save file
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create directory %q\n%v", dirout, err)
	}
	return save_file(Path(dirout, key, enctype), &buf, verbose)
}

// Read reads the series from the cache file
//
//	ok -- false if the cache file does not exist or if it was written for a different source
//	Note: err != nil means that the file exists but is corrupt
func Read(dirout, key, enctype string, want Header) (series *out.Series, ok bool, err error) {

	// open file
	fn := Path(dirout, key, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, chk.Err("cannot open cache file %q\n%v", fn, err)
	}
	defer fil.Close()

	// decode header
	dec := GetDecoder(fil, enctype)
	var hdr Header
	err = dec.Decode(&hdr)
	if err != nil {
		return nil, false, chk.Err("cannot decode header of cache file %q\n%v", fn, err)
	}
	if hdr != want {
		return nil, false, nil
	}

	// decode series
	series = new(out.Series)
	err = dec.Decode(series)
	if err != nil {
		return nil, false, chk.Err("cannot decode series in cache file %q\n%v", fn, err)
	}
	if len(series.Times) != len(series.Recs) {
		return nil, false, chk.Err("cache file %q is inconsistent: %d times and %d records", fn, len(series.Times), len(series.Recs))
	}
	return series, true, nil
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
