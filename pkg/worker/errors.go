package worker

import "errors"

var (
	// ErrAlreadyRunning is returned when Run is invoked more than once on a
	// single-use worker instance.
	ErrAlreadyRunning = errors.New("worker: already running or already ran")

	// ErrPreRun wraps a failure in the PreRun hook.
	ErrPreRun = errors.New("worker: pre-run failed")

	// ErrPageFetch wraps a paginator failure while fetching the next page.
	ErrPageFetch = errors.New("worker: page fetch failed")

	// ErrPageProcessing wraps a failure in the PrePage or PostPage hooks.
	ErrPageProcessing = errors.New("worker: page processing failed")

	// ErrItemProcessing wraps a ProcessItem failure. Item failures are fatal
	// to the entire run: the run stops and remaining pages stay unprocessed.
	ErrItemProcessing = errors.New("worker: item processing failed")

	// ErrPostRun wraps a failure in the PostRun hook.
	ErrPostRun = errors.New("worker: post-run failed")

	// ErrCommit wraps an index resource commit failure.
	ErrCommit = errors.New("worker: index commit failed")

	// ErrLaneSaturated is returned by Acquire when a lane already holds its
	// maximum number of concurrent permits.
	ErrLaneSaturated = errors.New("worker: lane saturated")
)
