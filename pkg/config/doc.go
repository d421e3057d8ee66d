// Package config loads typed configuration structs from environment
// variables, with optional .env file support and per-type caching.
//
// Every infrastructure package of the harvester (pg, redis, opensearch,
// logger) declares its own Config struct with `env` tags; this package turns
// those declarations into populated values. Parsing is delegated to
// github.com/caarlos0/env and .env loading to github.com/joho/godotenv.
//
// A configuration type is parsed at most once per process: concurrent and
// repeated Load calls for the same type return the cached copy, so the many
// workers of a deployment share one view of the environment.
//
// # Usage
//
//	import (
//	    "github.com/lareferencia/harvester/pkg/config"
//	    "github.com/lareferencia/harvester/pkg/pg"
//	)
//
//	func main() {
//	    var dbConfig pg.Config
//	    config.MustLoad(&dbConfig)
//	    // dbConfig.ConnectionString etc. are now populated
//	}
//
// Tests that need to re-read the environment after mutating it can call
// ResetCache between loads.
package config
