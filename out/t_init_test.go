// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// a small beach: three instants with four points each, written in scrambled order
const beach6 = `# t x h u zb H
0.0 2.0 0.50 0.10 0.0 0.50
0.0 0.0 0.00 0.00 0.4 0.40
0.0 1.0 0.20 0.30 0.1 0.30
0.0 3.0 0.80 -0.20 -0.1 0.70

0.5 0.0 0.00 0.00 0.4 0.40
0.5 3.0 0.90 0.05 -0.1 0.80
0.5 2.0 0.70 0.40 0.0 0.70
0.5 1.0 0.30 0.60 0.1 0.40

1.0 3.0 0.85 0.01 -0.1 0.75
1.0 1.0 0.50 0.90 0.1 0.60
1.0 2.0 0.60 0.20 0.0 0.60
1.0 0.0 0.10 1.50 0.4 0.50
`

func readStore(tst *testing.T, txt string) *Store {
	store, err := Read(strings.NewReader(txt), "test", 0)
	if err != nil {
		tst.Fatalf("Read failed:\n%v", err)
	}
	return store
}
