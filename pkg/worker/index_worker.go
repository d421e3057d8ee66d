package worker

import (
	"context"
	"fmt"
	"log/slog"
)

// IndexResource is a mutable search-index target with transactional
// semantics at run granularity.
type IndexResource interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// IndexWorker wraps a BatchWorker with commit-on-success and
// rollback-on-stop-or-error around an index resource. Rollback is best
// effort: its failures are logged, never propagated past the stop path.
type IndexWorker[I any] struct {
	*BatchWorker[I]
	resource IndexResource
	logger   *slog.Logger
}

// NewIndexWorker builds an index-backed worker for one run.
func NewIndexWorker[I any](rctx *RunningContext, hooks Hooks[I], resource IndexResource, opts ...Option[I]) *IndexWorker[I] {
	inner := New(rctx, hooks, opts...)
	return &IndexWorker[I]{
		BatchWorker: inner,
		resource:    resource,
		logger:      inner.logger,
	}
}

// Run executes the wrapped lifecycle. A clean completion commits the index
// mutations; a stop or any error rolls them back.
func (w *IndexWorker[I]) Run(ctx context.Context) error {
	err := w.BatchWorker.Run(ctx)

	if err != nil || w.Stopped() {
		if rbErr := w.resource.Rollback(ctx); rbErr != nil {
			w.logger.Error("index rollback failed",
				slog.String("worker_id", w.ID().String()),
				slog.Any("error", rbErr))
		}
		return err
	}

	if commitErr := w.resource.Commit(ctx); commitErr != nil {
		return fmt.Errorf("%w: %w", ErrCommit, commitErr)
	}
	return nil
}
