package redis

import "errors"

var (
	// ErrFailedToParseRedisConnString reports a malformed REDIS_URL value.
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")

	// ErrRedisNotReady reports that the server never answered a ping within
	// the configured retries.
	ErrRedisNotReady = errors.New("redis did not become ready in time")

	// ErrHealthcheckFailed reports a failed liveness ping.
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
