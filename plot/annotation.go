// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/svflow/svpost/out"
)

// Annotation holds the title and the text block drawn next to an instant
type Annotation struct {
	Title string `json:"title" msgpack:"title"`
	Text  string `json:"text" msgpack:"text"`
}

// Annotate formats the diagnostics of one instant as labeled physical quantities
func Annotate(t float64, rec out.Record, hasBed bool) (o Annotation) {
	o.Title = io.Sf("t = %.3f s", t)
	if rec.Dry() {
		o.Text = "dry"
		return
	}
	lines := make([]string, 0, 7)
	if hasBed {
		lines = append(lines, io.Sf("H max = %.3f m", rec.EtaMax))
	}
	lines = append(lines,
		io.Sf("h max = %.3f m", rec.Hmax),
		io.Sf("h crest = %.3f m", rec.Hcrest),
		io.Sf("u crest = %.3f m/s", rec.Ucrest),
		io.Sf("|u| max = %.3f m/s", rec.UmaxAbs),
		io.Sf("x crest = %.3f m", rec.Xcrest),
	)
	o.Text = strings.Join(lines, "\n")
	return
}

// SummaryText formats the statistics of one diagnostic
func SummaryText(name string, s out.Summary) string {
	return io.Sf("%s: initial = %.4f, final = %.4f, max = %.4f, variation = %s%%", name, s.Initial, s.Final, s.Max, s.Variation.Fmt("%.2f"))
}
