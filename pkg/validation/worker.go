package validation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lareferencia/harvester/pkg/domain"
	"github.com/lareferencia/harvester/pkg/metadata"
	"github.com/lareferencia/harvester/pkg/stats"
	"github.com/lareferencia/harvester/pkg/worker"
)

// RecordStore is the persistence contract the validation worker consumes.
type RecordStore interface {
	FindLastGoodKnownSnapshot(ctx context.Context, networkID int64) (*domain.Snapshot, error)
	FindLastHarvestingSnapshot(ctx context.Context, networkID int64) (*domain.Snapshot, error)

	UntestedRecordsPaginator(ctx context.Context, snapshotID int64, pageSize int) (worker.Paginator[domain.Record], error)
	NotDeletedRecordsPaginator(ctx context.Context, snapshotID int64, pageSize int) (worker.Paginator[domain.Record], error)

	OriginalMetadata(ctx context.Context, record *domain.Record) (string, error)
	UpdatePublishedMetadata(ctx context.Context, record *domain.Record, xml string) error
	UpdateRecordStatus(ctx context.Context, record *domain.Record, status domain.RecordStatus, transformed bool) error

	ResetSnapshotValidationCounts(ctx context.Context, snapshotID int64) error
	UpdateSnapshotStatus(ctx context.Context, snapshotID int64, status domain.SnapshotStatus) error
	SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) error
}

// RuleStore loads persisted rule definitions.
type RuleStore interface {
	ValidatorRules(ctx context.Context, validatorID int64) ([]ValidatorRuleRow, error)
	TransformerRules(ctx context.Context, transformerID int64) ([]TransformerRuleRow, error)
}

// ObservationSink receives diagnostic observations. Sink failures never
// abort a run; availability is probed once per run.
type ObservationSink interface {
	IsAvailable(ctx context.Context) bool
	RegisterObservations(ctx context.Context, observations []stats.Observation) error
	DeleteSnapshotObservations(ctx context.Context, snapshotID int64) error
}

// defaultPageSize is the record page size when none is configured.
const defaultPageSize = 1000

// Worker validates and transforms every eligible record of a network's
// snapshot. It implements worker.Hooks and is driven by a
// worker.BatchWorker; like the engine itself, instances are single-use.
type Worker struct {
	rctx   *worker.RunningContext
	store  RecordStore
	rules  RuleStore
	sink   ObservationSink
	logger *slog.Logger

	pageSize int

	// Resolved by PreRun for the duration of one run.
	snapshot         *domain.Snapshot
	validator        *Validator
	transformer      *Transformer
	secondary        *Transformer
	diagnose         bool
	detailedDiagnose bool

	// Reused across records and pages.
	result       ValidatorResult
	observations []stats.Observation
}

// WorkerOption configures a validation Worker.
type WorkerOption func(*Worker)

// WithPageSize overrides the record page size.
func WithPageSize(size int) WorkerOption {
	return func(w *Worker) {
		if size > 0 {
			w.pageSize = size
		}
	}
}

// WithWorkerLogger overrides the logger.
func WithWorkerLogger(l *slog.Logger) WorkerOption {
	return func(w *Worker) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWorker builds a validation worker for one run. A nil sink disables
// diagnostics regardless of network switches.
func NewWorker(rctx *worker.RunningContext, store RecordStore, rules RuleStore, sink ObservationSink, opts ...WorkerOption) *Worker {
	w := &Worker{
		rctx:     rctx,
		store:    store,
		rules:    rules,
		sink:     sink,
		logger:   slog.Default(),
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// PreRun resolves the target snapshot, builds the rule aggregates the
// network's switches call for and assigns the record paginator. A network
// with no eligible snapshot stops the run without error.
func (w *Worker) PreRun(ctx context.Context, bw *worker.BatchWorker[domain.Record]) error {
	network := w.rctx.Network

	snapshot, err := w.resolveSnapshot(ctx)
	if err != nil {
		return err
	}
	if snapshot == nil {
		w.logger.Warn("no eligible snapshot, nothing to validate",
			slog.String("network", w.rctx.String()))
		bw.Stop()
		return nil
	}
	w.snapshot = snapshot

	if network.BooleanProperty(domain.PropValidate) && network.ValidatorID != nil {
		rows, err := w.rules.ValidatorRules(ctx, *network.ValidatorID)
		if err != nil {
			return fmt.Errorf("loading validator %d: %w", *network.ValidatorID, err)
		}
		if w.validator, err = BuildValidator(rows, WithValidatorLogger(w.logger)); err != nil {
			return err
		}
	}

	if network.BooleanProperty(domain.PropTransform) {
		if w.transformer, err = w.buildTransformer(ctx, network.TransformerID); err != nil {
			return err
		}
		if w.secondary, err = w.buildTransformer(ctx, network.SecondaryTransformerID); err != nil {
			return err
		}
	}

	w.diagnose = network.BooleanProperty(domain.PropDiagnose) && w.sink != nil && w.sink.IsAvailable(ctx)
	w.detailedDiagnose = network.BooleanProperty(domain.PropDetailedDiagnose)

	if w.diagnose {
		if err := w.sink.DeleteSnapshotObservations(ctx, snapshot.ID); err != nil {
			w.logger.Warn("could not clear previous observations",
				slog.Int64("snapshot_id", snapshot.ID),
				slog.Any("error", err))
		}
	}

	if err := w.store.ResetSnapshotValidationCounts(ctx, snapshot.ID); err != nil {
		return fmt.Errorf("resetting snapshot counts: %w", err)
	}
	snapshot.ValidSize = 0
	snapshot.TransformedSize = 0

	if err := w.store.UpdateSnapshotStatus(ctx, snapshot.ID, domain.SnapshotStatusValidating); err != nil {
		return fmt.Errorf("updating snapshot status: %w", err)
	}
	snapshot.Status = domain.SnapshotStatusValidating

	paginator, err := w.recordPaginator(ctx, snapshot.ID)
	if err != nil {
		return err
	}
	bw.SetPaginator(paginator)

	w.logger.Info("validation run prepared",
		slog.String("network", w.rctx.String()),
		slog.Int64("snapshot_id", snapshot.ID),
		slog.Bool("validate", w.validator != nil),
		slog.Bool("transform", w.transformer != nil || w.secondary != nil),
		slog.Bool("diagnose", w.diagnose))
	return nil
}

func (w *Worker) resolveSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	networkID := w.rctx.Network.ID
	if w.rctx.Incremental {
		snapshot, err := w.store.FindLastHarvestingSnapshot(ctx, networkID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoSnapshot, err)
		}
		return snapshot, nil
	}
	snapshot, err := w.store.FindLastGoodKnownSnapshot(ctx, networkID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoSnapshot, err)
	}
	return snapshot, nil
}

func (w *Worker) buildTransformer(ctx context.Context, transformerID *int64) (*Transformer, error) {
	if transformerID == nil {
		return nil, nil
	}
	rows, err := w.rules.TransformerRules(ctx, *transformerID)
	if err != nil {
		return nil, fmt.Errorf("loading transformer %d: %w", *transformerID, err)
	}
	return BuildTransformer(rows, WithTransformerLogger(w.logger))
}

func (w *Worker) recordPaginator(ctx context.Context, snapshotID int64) (worker.Paginator[domain.Record], error) {
	if w.rctx.Incremental {
		p, err := w.store.UntestedRecordsPaginator(ctx, snapshotID, w.pageSize)
		if err != nil {
			return nil, fmt.Errorf("building record paginator: %w", err)
		}
		return p, nil
	}
	p, err := w.store.NotDeletedRecordsPaginator(ctx, snapshotID, w.pageSize)
	if err != nil {
		return nil, fmt.Errorf("building record paginator: %w", err)
	}
	return p, nil
}

// PrePage clears the per-page observation buffer.
func (w *Worker) PrePage(_ context.Context) error {
	w.observations = w.observations[:0]
	return nil
}

// ProcessItem runs one record through the transform and validate passes and
// persists the outcome. Every error here is fatal to the run.
func (w *Worker) ProcessItem(ctx context.Context, record domain.Record) error {
	raw, err := w.store.OriginalMetadata(ctx, &record)
	if err != nil {
		return fmt.Errorf("record %d (%s): loading metadata: %w", record.ID, record.Identifier, err)
	}
	doc, err := metadata.Parse(record.Identifier, raw)
	if err != nil {
		return fmt.Errorf("record %d (%s): %w", record.ID, record.Identifier, err)
	}

	transformed := false
	for _, t := range []*Transformer{w.transformer, w.secondary} {
		if t == nil {
			continue
		}
		mutated, err := t.Transform(w.rctx.Network, &record, doc)
		if err != nil {
			return err
		}
		transformed = transformed || mutated
	}

	w.result.Reset()
	if w.validator != nil {
		if err := w.validator.Validate(doc, &w.result); err != nil {
			return err
		}
	} else {
		// No validator configured means every record is publishable.
		w.result.Valid = true
	}
	w.result.Transformed = transformed

	if transformed {
		if err := w.store.UpdatePublishedMetadata(ctx, &record, doc.String()); err != nil {
			return fmt.Errorf("record %d (%s): storing metadata: %w", record.ID, record.Identifier, err)
		}
	}

	status := domain.RecordStatusInvalid
	if w.result.Valid {
		status = domain.RecordStatusValid
	}
	if err := w.store.UpdateRecordStatus(ctx, &record, status, transformed); err != nil {
		return fmt.Errorf("record %d (%s): updating status: %w", record.ID, record.Identifier, err)
	}

	if w.result.Valid {
		w.snapshot.ValidSize++
	}
	if transformed {
		w.snapshot.TransformedSize++
	}

	if w.diagnose {
		w.observations = append(w.observations, w.buildObservation(&record))
	}
	return nil
}

// PostPage flushes buffered observations. Sink failures are logged and do
// not abort the run.
func (w *Worker) PostPage(ctx context.Context) error {
	if !w.diagnose || len(w.observations) == 0 {
		return nil
	}
	if err := w.sink.RegisterObservations(ctx, w.observations); err != nil {
		w.logger.Warn("could not register observations",
			slog.Int64("snapshot_id", w.snapshot.ID),
			slog.Int("count", len(w.observations)),
			slog.Any("error", err))
	}
	return nil
}

// PostRun finalizes the snapshot.
func (w *Worker) PostRun(ctx context.Context) error {
	w.snapshot.Status = domain.SnapshotStatusValid
	if err := w.store.SaveSnapshot(ctx, w.snapshot); err != nil {
		return fmt.Errorf("saving snapshot %d: %w", w.snapshot.ID, err)
	}

	w.logger.Info("validation run finalized",
		slog.Int64("snapshot_id", w.snapshot.ID),
		slog.Int("valid", w.snapshot.ValidSize),
		slog.Int("transformed", w.snapshot.TransformedSize))
	return nil
}

func (w *Worker) buildObservation(record *domain.Record) stats.Observation {
	obs := stats.NewObservation()
	obs.SnapshotID = w.snapshot.ID
	obs.NetworkAcronym = w.rctx.Network.Acronym
	obs.RecordID = record.ID
	obs.Identifier = record.Identifier
	obs.Datestamp = record.Datestamp
	obs.HarvestedAt = w.snapshot.StartTime
	obs.IsValid = w.result.Valid
	obs.IsTransformed = w.result.Transformed

	for _, rr := range w.result.RulesResults {
		if rr.Valid {
			obs.ValidRuleIDs = append(obs.ValidRuleIDs, rr.Rule.RuleID())
			continue
		}
		obs.InvalidRuleIDs = append(obs.InvalidRuleIDs, rr.Rule.RuleID())

		if w.detailedDiagnose {
			if obs.InvalidOccurrences == nil {
				obs.InvalidOccurrences = make(map[string][]string)
			}
			key := ruleIDString(rr.Rule)
			for _, cr := range rr.Results {
				if !cr.Valid {
					obs.InvalidOccurrences[key] = append(obs.InvalidOccurrences[key], cr.ReceivedValue)
				}
			}
		}
	}
	return obs
}
