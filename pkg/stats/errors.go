package stats

import "errors"

var (
	// ErrRegisterFailed indicates a bulk observation write was rejected by
	// the index.
	ErrRegisterFailed = errors.New("stats: observation registration failed")

	// ErrDeleteFailed indicates snapshot observation cleanup was rejected
	// by the index.
	ErrDeleteFailed = errors.New("stats: observation deletion failed")
)
