// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the handling of shallow-water simulation output: grouping of samples
// into instants, per-instant diagnostics, time series, space-time grids and frame selection
package out

// constants
const (
	WetTol    = 1e-4 // minimum depth for a point to be considered wet
	MaxFrames = 100  // default maximum number of animation frames
)

// Field identifies one per-position quantity of an instant
type Field int

// fields
const (
	FieldDepth    Field = iota // h: water depth
	FieldVelocity              // u: flow velocity
	FieldBed                   // zb: bed elevation
	FieldSurface               // H: free-surface elevation
)

// String returns the key of the field as used in configuration files
func (f Field) String() string {
	switch f {
	case FieldDepth:
		return "h"
	case FieldVelocity:
		return "u"
	case FieldBed:
		return "zb"
	case FieldSurface:
		return "H"
	}
	return "unknown"
}

// ParseField converts a key such as "H" or "zb" into a Field
func ParseField(key string) (Field, error) {
	switch key {
	case "h", "depth":
		return FieldDepth, nil
	case "u", "velocity":
		return FieldVelocity, nil
	case "zb", "bed":
		return FieldBed, nil
	case "H", "eta", "surface":
		return FieldSurface, nil
	}
	return 0, newErr(Unknown, "invalid field key %q", key)
}
