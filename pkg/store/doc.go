// Package store persists networks, snapshots, harvested records and rule
// definitions in PostgreSQL via pgx.
//
// The Store satisfies the persistence contracts the validation worker
// consumes: snapshot resolution, record paginators, metadata access, status
// updates and rule row loading. Record pagination is keyset-based: the page
// count is fixed when the paginator is built and pages are served in
// ascending record id order, so a run observes a stable workload even while
// other writers touch the same snapshot.
//
// Metadata payloads are content-addressed: the records table carries hashes
// and the payloads live in a shared metadata table keyed by hash, so
// identical documents across snapshots are stored once.
package store
