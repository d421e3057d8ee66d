// Package opensearch provides a lightweight wrapper around the official
// OpenSearch Go client adding type-safe configuration, automatic cluster
// health checking, and standardized error values.
//
// The harvester uses OpenSearch as its statistics backend: validation
// observations are bulk-indexed per page and queried by reporting tools.
// This package owns only connectivity; indexing lives in pkg/stats.
//
//   - Config – declarative connection settings populated from environment
//     variables via github.com/lareferencia/harvester/pkg/config.
//   - New – constructs a ready-to-use *opensearch.Client and performs an
//     initial Healthcheck ensuring the cluster is reachable.
//   - Healthcheck – returns a function suitable for liveness probes.
//
// Connectivity errors are exposed as ErrConnectionFailed and
// ErrHealthcheckFailed for errors.Is classification.
//
// # Usage
//
//	import (
//	    "context"
//
//	    "github.com/lareferencia/harvester/pkg/config"
//	    "github.com/lareferencia/harvester/pkg/opensearch"
//	)
//
//	func example(ctx context.Context) error {
//	    var cfg opensearch.Config
//	    config.MustLoad(&cfg)
//
//	    client, err := opensearch.New(ctx, cfg)
//	    if err != nil {
//	        return err
//	    }
//	    _ = client
//	    return nil
//	}
package opensearch
