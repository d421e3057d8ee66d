// Package stats records per-record validation observations in a search
// index for diagnostics and reporting.
//
// An Observation captures the outcome of validating and transforming one
// record within a snapshot: which rules passed, which failed, and under
// detailed diagnose mode the offending occurrence values per rule. The
// Service buffers nothing itself; workers accumulate observations per page
// and flush them in one bulk request.
//
// # Usage
//
//	import (
//	    "context"
//
//	    "github.com/lareferencia/harvester/pkg/stats"
//	)
//
//	func example(ctx context.Context, svc *stats.Service, obs []stats.Observation) error {
//	    if !svc.IsAvailable(ctx) {
//	        return nil
//	    }
//	    return svc.RegisterObservations(ctx, obs)
//	}
package stats
