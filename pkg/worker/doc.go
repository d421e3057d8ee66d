// Package worker provides a generic paginated batch execution engine used to
// drive record processing across harvesting networks.
//
// The package is organised around three main components:
//
//   - BatchWorker  — single-use state machine walking pages of items through
//     a hook lifecycle (PreRun, PrePage, ProcessItem, PostPage, PostRun)
//   - Paginator    — forward-only page source with a fixed page count
//   - LaneController — admission control capping how many workers run
//     concurrently within a named lane
//
// A worker is constructed per run, handed a RunningContext describing the
// target network, and discarded afterwards. Cancellation is cooperative:
// Stop is honored at page and item boundaries, never mid-item.
//
// # Usage
//
//	import (
//	    "context"
//
//	    "github.com/lareferencia/harvester/pkg/worker"
//	)
//
//	func example(ctx context.Context, hooks worker.Hooks[string], rc *worker.RunningContext) error {
//	    w := worker.New(rc, hooks)
//	    if err := w.Run(ctx); err != nil {
//	        return err
//	    }
//	    _ = w.CompletionRate()
//	    return nil
//	}
//
// The IndexWorker variant wraps the same state machine with commit-on-success
// and best-effort rollback semantics around a search-index resource.
package worker
