package store

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lareferencia/harvester/pkg/domain"
	"github.com/lareferencia/harvester/pkg/worker"
)

const recordColumns = `id, snapshot_id, identifier, datestamp, status,
	original_metadata_hash, COALESCE(published_metadata_hash, ''), transformed`

// UntestedRecordsPaginator pages through the snapshot's records still
// awaiting validation, in ascending id order.
func (s *Store) UntestedRecordsPaginator(ctx context.Context, snapshotID int64, pageSize int) (worker.Paginator[domain.Record], error) {
	return s.recordPaginator(ctx, snapshotID, pageSize,
		`status = '`+string(domain.RecordStatusUntested)+`'`)
}

// NotDeletedRecordsPaginator pages through every live record of the
// snapshot, in ascending id order.
func (s *Store) NotDeletedRecordsPaginator(ctx context.Context, snapshotID int64, pageSize int) (worker.Paginator[domain.Record], error) {
	return s.recordPaginator(ctx, snapshotID, pageSize,
		`status <> '`+string(domain.RecordStatusDeleted)+`'`)
}

func (s *Store) recordPaginator(ctx context.Context, snapshotID int64, pageSize int, predicate string) (worker.Paginator[domain.Record], error) {
	if pageSize < 1 {
		pageSize = 1
	}

	var total int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM records WHERE snapshot_id = $1 AND `+predicate, snapshotID).
		Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("counting records: %w", err)
	}

	return &recordPaginator{
		store:      s,
		snapshotID: snapshotID,
		predicate:  predicate,
		pageSize:   pageSize,
		totalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

// recordPaginator serves snapshot records with keyset pagination. The page
// count is fixed at construction so the driving worker sees a stable
// workload; records inserted afterwards belong to the next run.
type recordPaginator struct {
	store      *Store
	snapshotID int64
	predicate  string
	pageSize   int
	totalPages int

	page   int
	lastID int64
}

func (p *recordPaginator) TotalPages() int { return p.totalPages }

func (p *recordPaginator) NextPage(ctx context.Context) (worker.Page[domain.Record], error) {
	p.page++
	page := worker.Page[domain.Record]{Number: p.page}

	rows, err := p.store.pool.Query(ctx, `
		SELECT `+recordColumns+`
		FROM records
		WHERE snapshot_id = $1 AND id > $2 AND `+p.predicate+`
		ORDER BY id
		LIMIT $3`, p.snapshotID, p.lastID, p.pageSize)
	if err != nil {
		return page, fmt.Errorf("querying records page %d: %w", p.page, err)
	}
	defer rows.Close()

	for rows.Next() {
		var r domain.Record
		if err := rows.Scan(&r.ID, &r.SnapshotID, &r.Identifier, &r.Datestamp, &r.Status,
			&r.OriginalMetadataHash, &r.PublishedMetadataHash, &r.Transformed); err != nil {
			return page, fmt.Errorf("scanning record: %w", err)
		}
		page.Items = append(page.Items, r)
		p.lastID = r.ID
	}
	return page, rows.Err()
}

// OriginalMetadata returns the record's harvested metadata payload.
func (s *Store) OriginalMetadata(ctx context.Context, record *domain.Record) (string, error) {
	var content string
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM metadata WHERE hash = $1`, record.OriginalMetadataHash).
		Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("%w: hash %s", ErrMetadataMissing, record.OriginalMetadataHash)
	}
	if err != nil {
		return "", fmt.Errorf("loading metadata %s: %w", record.OriginalMetadataHash, err)
	}
	return content, nil
}

// UpdatePublishedMetadata stores the transformed payload content-addressed
// and points the record at it.
func (s *Store) UpdatePublishedMetadata(ctx context.Context, record *domain.Record, xml string) error {
	hash := metadataHash(xml)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("storing published metadata: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO metadata (hash, content) VALUES ($1, $2) ON CONFLICT (hash) DO NOTHING`,
		hash, xml); err != nil {
		return fmt.Errorf("storing published metadata: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE records SET published_metadata_hash = $1 WHERE id = $2`,
		hash, record.ID); err != nil {
		return fmt.Errorf("storing published metadata: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("storing published metadata: %w", err)
	}

	record.PublishedMetadataHash = hash
	return nil
}

// UpdateRecordStatus persists the validation outcome of one record.
func (s *Store) UpdateRecordStatus(ctx context.Context, record *domain.Record, status domain.RecordStatus, transformed bool) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE records SET status = $1, transformed = $2 WHERE id = $3`,
		status, transformed, record.ID)
	if err != nil {
		return fmt.Errorf("updating record %d status: %w", record.ID, err)
	}
	record.Status = status
	record.Transformed = transformed
	return nil
}

func metadataHash(content string) string {
	sum := sha1.Sum([]byte(content))
	return hex.EncodeToString(sum[:])
}
