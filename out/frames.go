// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/utl"
)

// SelectFrames returns the instant indices used as animation frames
//
//	stride = max(1, total / maxFrames); indices are 0, stride, 2*stride, ... < total
//	Note: the last instant is not necessarily selected; see WithLast
//	maxFrames <= 0 means MaxFrames
func SelectFrames(total, maxFrames int) (idx []int) {
	if total < 1 {
		return
	}
	if maxFrames <= 0 {
		maxFrames = MaxFrames
	}
	stride := utl.Imax(1, total/maxFrames)
	idx = make([]int, 0, total/stride+1)
	for i := 0; i < total; i += stride {
		idx = append(idx, i)
	}
	return
}

// WithLast appends the index of the last instant to idx unless it is already there
func WithLast(idx []int, total int) []int {
	if total < 1 {
		return idx
	}
	last := total - 1
	n := len(idx)
	if n > 0 && idx[n-1] >= last {
		return idx
	}
	res := make([]int, n, n+1)
	copy(res, idx)
	return append(res, last)
}

// SelectSnapshots returns up to k indices evenly spread between the first and the last instants
//
//	Note: duplicated indices (when k > total) are removed
func SelectSnapshots(total, k int) (idx []int) {
	if total < 1 || k < 1 {
		return
	}
	if k == 1 {
		return []int{0}
	}
	for _, v := range utl.LinSpace(0, float64(total-1), k) {
		i := int(v)
		if len(idx) > 0 && idx[len(idx)-1] == i {
			continue
		}
		idx = append(idx, i)
	}
	return
}
