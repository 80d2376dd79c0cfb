package rdf

import "errors"

// Failure classes for a single generation run. Every one of them aborts the
// run that hit it; none of them is retried.
var (
	// ErrNotFound means the requested user has no row.
	ErrNotFound = errors.New("usuario not found")

	// ErrMalformedInput means a row is missing a field required for a typed
	// literal, or carries a date value that cannot be normalized.
	ErrMalformedInput = errors.New("malformed input row")

	// ErrSerialization means the emitted Turtle failed to re-parse, so the
	// RDF/XML conversion was aborted.
	ErrSerialization = errors.New("serialization failed")

	// ErrPersistence means directory creation or a file write failed.
	ErrPersistence = errors.New("persistence failed")
)
