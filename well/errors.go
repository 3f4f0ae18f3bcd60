// Copyright 2026 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package well

import "github.com/cpmech/gosl/io"

// ErrKind classifies the fatal, non-retryable failures of well-index
// computations. The computation is deterministic geometry/algebra: a retry
// would reproduce the same error, so callers must treat all kinds as final.
type ErrKind int

const (
	// DataError means missing or malformed permeability data
	DataError ErrKind = iota + 1

	// GeometryError means an unusable cell geometry, e.g. a non-hexahedral
	// cell in face-area extraction mode or an unsupported 3D fracture case
	GeometryError

	// WellRadiusError means the equivalent drainage radius came out smaller
	// than the wellbore radius
	WellRadiusError

	// SkinError means a skin factor negative enough to make the well index
	// non-positive despite valid geometry
	SkinError

	// ConfigError means an unknown inner-product scheme or direction code
	ConfigError

	// ShapeError means mismatched lengths among the per-perforation
	// sequences after broadcasting
	ShapeError
)

// String returns the kind name
func (o ErrKind) String() string {
	switch o {
	case DataError:
		return "data error"
	case GeometryError:
		return "geometry error"
	case WellRadiusError:
		return "well-radius error"
	case SkinError:
		return "skin error"
	case ConfigError:
		return "config error"
	case ShapeError:
		return "shape error"
	}
	return "unknown error"
}

// Error carries the failure kind and, where applicable, the offending
// perforation index
type Error struct {
	Kind ErrKind // failure classification
	Perf int     // offending perforation index; -1 when not tied to one
	Msg  string  // diagnostic message
}

// Error returns the diagnostic message
func (o *Error) Error() string {
	if o.Perf >= 0 {
		return io.Sf("%v (perforation %d): %s", o.Kind, o.Perf, o.Msg)
	}
	return io.Sf("%v: %s", o.Kind, o.Msg)
}

// newErr builds an Error with a formatted message
func newErr(kind ErrKind, perf int, msg string, prm ...interface{}) *Error {
	return &Error{Kind: kind, Perf: perf, Msg: io.Sf(msg, prm...)}
}

// wrapErr converts an error from a collaborator (grid, rock) into a kinded
// Error, keeping the original message
func wrapErr(kind ErrKind, err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Kind: kind, Perf: -1, Msg: err.Error()}
}
