package opensearch

import "errors"

var (
	// ErrConnectionFailed reports that the client could not be constructed.
	ErrConnectionFailed = errors.New("opensearch connection failed")

	// ErrHealthcheckFailed reports an unreachable or unhealthy cluster.
	// Returned by New during startup and by Healthcheck probes afterwards.
	ErrHealthcheckFailed = errors.New("opensearch healthcheck failed")
)
