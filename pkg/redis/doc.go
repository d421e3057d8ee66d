// Package redis provides helpers for connecting the harvester to a Redis
// server.
//
// Redis backs the distributed lane admission control that caps how many
// worker runs execute concurrently per lane across processes. This package
// only owns connectivity:
//
//   - Connect retries the connection according to Config until the server
//     becomes ready.
//   - Healthcheck integrates the connection into liveness probes.
//
// Configuration is described by the Config struct whose fields are populated
// from environment variables via github.com/caarlos0/env.
//
// # Usage
//
//	import (
//	    "context"
//
//	    "github.com/lareferencia/harvester/pkg/config"
//	    "github.com/lareferencia/harvester/pkg/redis"
//	    "github.com/lareferencia/harvester/pkg/worker"
//	)
//
//	func example(ctx context.Context) (worker.LaneController, error) {
//	    var cfg redis.Config
//	    config.MustLoad(&cfg)
//
//	    client, err := redis.Connect(ctx, cfg)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return worker.NewRedisLaneController(client, 4), nil
//	}
package redis
