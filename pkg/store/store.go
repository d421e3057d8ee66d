package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lareferencia/harvester/pkg/domain"
)

// Store is the PostgreSQL persistence layer.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger overrides the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New builds a store over an established connection pool.
func New(pool *pgxpool.Pool, opts ...Option) *Store {
	s := &Store{
		pool:   pool,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Networks returns every configured network.
func (s *Store) Networks(ctx context.Context) ([]domain.Network, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, acronym, institution_name, institution_acronym,
		       validator_id, transformer_id, secondary_transformer_id, properties
		FROM networks
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying networks: %w", err)
	}
	defer rows.Close()

	var networks []domain.Network
	for rows.Next() {
		var n domain.Network
		if err := rows.Scan(&n.ID, &n.Name, &n.Acronym, &n.InstitutionName, &n.InstitutionAcronym,
			&n.ValidatorID, &n.TransformerID, &n.SecondaryTransformerID, &n.Properties); err != nil {
			return nil, fmt.Errorf("scanning network: %w", err)
		}
		networks = append(networks, n)
	}
	return networks, rows.Err()
}

// NetworkByAcronym returns one network or ErrNotFound.
func (s *Store) NetworkByAcronym(ctx context.Context, acronym string) (*domain.Network, error) {
	var n domain.Network
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, acronym, institution_name, institution_acronym,
		       validator_id, transformer_id, secondary_transformer_id, properties
		FROM networks
		WHERE acronym = $1`, acronym).
		Scan(&n.ID, &n.Name, &n.Acronym, &n.InstitutionName, &n.InstitutionAcronym,
			&n.ValidatorID, &n.TransformerID, &n.SecondaryTransformerID, &n.Properties)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: network %q", ErrNotFound, acronym)
	}
	if err != nil {
		return nil, fmt.Errorf("querying network %q: %w", acronym, err)
	}
	return &n, nil
}

// FindLastGoodKnownSnapshot returns the most recent snapshot of the network
// whose harvest finished cleanly, or nil when the network has none.
func (s *Store) FindLastGoodKnownSnapshot(ctx context.Context, networkID int64) (*domain.Snapshot, error) {
	return s.findSnapshot(ctx, `
		SELECT id, network_id, status, start_time, end_time, size, valid_size, transformed_size
		FROM snapshots
		WHERE network_id = $1 AND status = $2
		ORDER BY start_time DESC
		LIMIT 1`, networkID, domain.SnapshotStatusHarvested)
}

// FindLastHarvestingSnapshot returns the most recent non-deleted snapshot of
// the network, or nil when the network has none.
func (s *Store) FindLastHarvestingSnapshot(ctx context.Context, networkID int64) (*domain.Snapshot, error) {
	return s.findSnapshot(ctx, `
		SELECT id, network_id, status, start_time, end_time, size, valid_size, transformed_size
		FROM snapshots
		WHERE network_id = $1 AND status <> $2
		ORDER BY start_time DESC
		LIMIT 1`, networkID, domain.SnapshotStatusDeleted)
}

func (s *Store) findSnapshot(ctx context.Context, query string, args ...any) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	err := s.pool.QueryRow(ctx, query, args...).
		Scan(&snap.ID, &snap.NetworkID, &snap.Status, &snap.StartTime, &snap.EndTime,
			&snap.Size, &snap.ValidSize, &snap.TransformedSize)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying snapshot: %w", err)
	}
	return &snap, nil
}

// ResetSnapshotValidationCounts zeroes the counters maintained by the
// validation pass.
func (s *Store) ResetSnapshotValidationCounts(ctx context.Context, snapshotID int64) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE snapshots SET valid_size = 0, transformed_size = 0 WHERE id = $1`, snapshotID)
	if err != nil {
		return fmt.Errorf("resetting snapshot %d counts: %w", snapshotID, err)
	}
	return nil
}

// UpdateSnapshotStatus moves a snapshot through its lifecycle.
func (s *Store) UpdateSnapshotStatus(ctx context.Context, snapshotID int64, status domain.SnapshotStatus) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE snapshots SET status = $1 WHERE id = $2`, status, snapshotID)
	if err != nil {
		return fmt.Errorf("updating snapshot %d status: %w", snapshotID, err)
	}
	return nil
}

// SaveSnapshot persists a snapshot's status and counters.
func (s *Store) SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE snapshots
		SET status = $1, end_time = $2, size = $3, valid_size = $4, transformed_size = $5
		WHERE id = $6`,
		snapshot.Status, snapshot.EndTime, snapshot.Size,
		snapshot.ValidSize, snapshot.TransformedSize, snapshot.ID)
	if err != nil {
		return fmt.Errorf("saving snapshot %d: %w", snapshot.ID, err)
	}
	return nil
}
