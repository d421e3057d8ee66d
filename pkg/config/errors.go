package config

import "errors"

var (
	// ErrParsingConfig wraps an env.Parse failure.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigNotLoaded is returned when a cached config vanished between
	// the parse and the read, which indicates a misuse of ResetCache.
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
