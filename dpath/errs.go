package dpath

import "errors"

var (
	// ErrMalformedPath is returned when a path or pre-split segment is
	// syntactically invalid, e.g. a literal segment containing '/'.
	ErrMalformedPath = errors.New("malformed path")

	// ErrPathKind is returned when a document-kind path is used where a
	// collection is required, or vice versa.
	ErrPathKind = errors.New("path kind mismatch")
)
