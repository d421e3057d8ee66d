// Package pg provides utilities for interacting with PostgreSQL using the
// pgx/v5 driver: connection pooling, goose migrations, health checks and
// common error helpers.
//
// PostgreSQL is the harvester's system of record: networks, snapshots,
// harvested records and rule definitions all live there (see pkg/store).
// This package owns only the plumbing beneath that layer.
//
//   - Config – declarative pool settings populated from environment
//     variables via github.com/lareferencia/harvester/pkg/config.
//   - Connect – opens a *pgxpool.Pool, retrying with backoff until the
//     database becomes available.
//   - Migrate – runs goose migrations against the same pool so the schema
//     is current before workers start.
//
// # Usage
//
//	import (
//	    "context"
//	    "log/slog"
//
//	    "github.com/lareferencia/harvester/pkg/config"
//	    "github.com/lareferencia/harvester/pkg/pg"
//	)
//
//	func main() {
//	    var cfg pg.Config
//	    config.MustLoad(&cfg)
//
//	    ctx := context.Background()
//	    pool, err := pg.Connect(ctx, cfg)
//	    if err != nil {
//	        panic(err)
//	    }
//	    defer pool.Close()
//
//	    if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	        panic(err)
//	    }
//	}
//
// # Error Handling
//
// Helpers such as [pg.IsNotFoundError] and [pg.IsDuplicateKeyError] unwrap
// pgx and *pgconn.PgError values so callers can classify failures without
// driver-specific code.
package pg
