package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
)

// DefaultIndex is the statistics index name used when none is configured.
const DefaultIndex = "validation-observations"

// Service writes observations to an OpenSearch index.
type Service struct {
	client *opensearch.Client
	index  string
	logger *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithIndex overrides the target index name.
func WithIndex(index string) ServiceOption {
	return func(s *Service) {
		if index != "" {
			s.index = index
		}
	}
}

// WithServiceLogger overrides the logger.
func WithServiceLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService builds a statistics service over the given client.
func NewService(client *opensearch.Client, opts ...ServiceOption) *Service {
	s := &Service{
		client: client,
		index:  DefaultIndex,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsAvailable reports whether the statistics index is reachable. Workers
// use it to decide whether to collect observations at all for a run.
func (s *Service) IsAvailable(ctx context.Context) bool {
	res, err := s.client.Info(s.client.Info.WithContext(ctx))
	if err != nil {
		s.logger.Warn("statistics index unavailable", slog.Any("error", err))
		return false
	}
	defer res.Body.Close()
	return !res.IsError()
}

// RegisterObservations indexes a page worth of observations in one bulk
// request. An empty batch is a no-op.
func (s *Service) RegisterObservations(ctx context.Context, observations []Observation) error {
	if len(observations) == 0 {
		return nil
	}

	var body bytes.Buffer
	for _, obs := range observations {
		meta := fmt.Sprintf(`{"index":{"_index":%q,"_id":%q}}`, s.index, obs.ID)
		body.WriteString(meta)
		body.WriteByte('\n')

		doc, err := json.Marshal(obs)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRegisterFailed, err)
		}
		body.Write(doc)
		body.WriteByte('\n')
	}

	req := opensearchapi.BulkRequest{
		Index: s.index,
		Body:  &body,
	}
	res, err := req.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrRegisterFailed, res.String())
	}

	s.logger.Debug("registered observations", slog.Int("count", len(observations)))
	return nil
}

// DeleteSnapshotObservations removes every observation belonging to a
// snapshot, typically before re-running diagnostics over it.
func (s *Service) DeleteSnapshotObservations(ctx context.Context, snapshotID int64) error {
	query := fmt.Sprintf(`{"query":{"term":{"snapshot_id":%d}}}`, snapshotID)

	req := opensearchapi.DeleteByQueryRequest{
		Index: []string{s.index},
		Body:  strings.NewReader(query),
	}
	res, err := req.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrDeleteFailed, res.String())
	}

	s.logger.Debug("deleted snapshot observations", slog.Int64("snapshot_id", snapshotID))
	return nil
}
