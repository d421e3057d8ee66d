package store

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrMetadataMissing indicates a record references a metadata hash with
	// no stored payload.
	ErrMetadataMissing = errors.New("store: metadata payload missing")
)
