package docshape

import (
	"errors"

	"github.com/signadot/docshape/dpath"
)

var (
	ErrMalformedPath = dpath.ErrMalformedPath
	ErrPathKind      = dpath.ErrPathKind

	// ErrWildcard is returned when a backend handle is requested for a
	// path containing wildcard segments: a wildcard denotes many nodes,
	// a handle exactly one.
	ErrWildcard = errors.New("wildcard path has no handle")

	// ErrNoBackend is returned from I/O-adjacent methods of a Store
	// constructed without a backend.
	ErrNoBackend = errors.New("store has no backend")
)
