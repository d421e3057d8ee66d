// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// All harvester components log through *slog.Logger instances built by the
// New factory. Options select the output format (text or json), the minimum
// level, default attributes applied to every record, and ContextExtractor
// callbacks that pull request-scoped values out of a context on every Handle
// call.
//
// Helper constructors in attr.go keep attribute naming consistent across the
// codebase: network, snapshot and record identity always land under the same
// keys no matter which worker emits them.
//
// # Usage
//
//	import "github.com/lareferencia/harvester/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithProduction("harvester"),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.Info("validation started",
//	        logger.Network(7, "LRX"),
//	        logger.Snapshot(100),
//	    )
//	}
package logger
