// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bufio"
	"bytes"
	goio "io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Load reads the samples stored in a text file and returns a new Store
//
//	The file has one sample per row with columns "t x h u" or "t x h u zb H" separated by
//	white spaces. Empty lines and lines starting with '#' are ignored
//	tol -- tolerance to group times; use 0 to group by exact equality
func Load(filename string, tol float64) (*Store, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, newErr(DataUnavailable, "cannot read file %q:\n%v", filename, err)
	}
	return Read(bytes.NewReader(b), filename, tol)
}

// Read reads samples from r and returns a new Store
//
//	name -- name of source used in error messages
func Read(r goio.Reader, name string, tol float64) (*Store, error) {
	samples, ncols, err := ParseSamples(r, name)
	if err != nil {
		return nil, err
	}
	return NewStoreTol(samples, ncols, tol)
}

// ParseSamples parses all rows in r. The number of columns is detected from the first row
// and every other row must have the same number of columns
func ParseSamples(r goio.Reader, name string) (samples []Sample, ncols int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	vals := make([]float64, 6)
	lnum := 0
	for sc.Scan() {
		lnum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		words := strings.Fields(line)
		if ncols == 0 {
			if len(words) != 4 && len(words) != 6 {
				return nil, 0, newErr(MalformedRecord, "%s:%d: first row must have 4 or 6 columns; it has %d", name, lnum, len(words))
			}
			ncols = len(words)
		}
		if len(words) != ncols {
			return nil, 0, newErr(MalformedRecord, "%s:%d: row has %d columns; expected %d", name, lnum, len(words), ncols)
		}
		for j, w := range words {
			vals[j], err = strconv.ParseFloat(w, 64)
			if err != nil {
				return nil, 0, newErr(MalformedRecord, "%s:%d: column %d: cannot parse %q", name, lnum, j+1, w)
			}
			if math.IsNaN(vals[j]) || math.IsInf(vals[j], 0) {
				return nil, 0, newErr(MalformedRecord, "%s:%d: column %d: value %q is not finite", name, lnum, j+1, w)
			}
		}
		s := Sample{T: vals[0], X: vals[1], H: vals[2], U: vals[3]}
		if ncols == 6 {
			s.Zb, s.Eta = vals[4], vals[5]
		}
		samples = append(samples, s)
	}
	if err = sc.Err(); err != nil {
		return nil, 0, newErr(DataUnavailable, "%s: cannot read rows:\n%v", name, err)
	}
	if len(samples) == 0 {
		return nil, 0, newErr(DataUnavailable, "%s: there are no samples", name)
	}
	return
}
