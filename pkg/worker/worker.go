package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
)

// Hooks is the processing contract a concrete worker implements. The engine
// owns the page loop; hooks own the semantics.
type Hooks[I any] interface {
	// PreRun resolves run preconditions: typically it locates the target
	// snapshot, builds rule aggregates and assigns the paginator via
	// w.SetPaginator. It may call w.Stop to abort the run without error
	// when there is nothing to do.
	PreRun(ctx context.Context, w *BatchWorker[I]) error

	// PrePage runs before each page is fetched, typically clearing a
	// per-page buffer.
	PrePage(ctx context.Context) error

	// ProcessItem handles one item. Any error is fatal to the whole run.
	ProcessItem(ctx context.Context, item I) error

	// PostPage runs after a fully processed page, typically flushing the
	// per-page buffer. It is skipped when the run stopped mid-page.
	PostPage(ctx context.Context) error

	// PostRun finalizes the run. It is skipped when the run stopped.
	PostRun(ctx context.Context) error
}

// BatchWorker drives a Hooks implementation through the page lifecycle
// exactly once. Instances are single-use: construct, Run, discard.
type BatchWorker[I any] struct {
	id     uuid.UUID
	rctx   *RunningContext
	hooks  Hooks[I]
	logger *slog.Logger
	laneID string

	paginator  Paginator[I]
	totalPages int
	actualPage int

	started atomic.Bool
	stopped atomic.Bool
}

// Option configures a BatchWorker.
type Option[I any] func(*BatchWorker[I])

// WithLogger overrides the worker logger.
func WithLogger[I any](l *slog.Logger) Option[I] {
	return func(w *BatchWorker[I]) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithLane assigns the worker to a named concurrency lane.
func WithLane[I any](laneID string) Option[I] {
	return func(w *BatchWorker[I]) {
		if laneID != "" {
			w.laneID = laneID
		}
	}
}

// New builds a worker for one run over the given context.
func New[I any](rctx *RunningContext, hooks Hooks[I], opts ...Option[I]) *BatchWorker[I] {
	w := &BatchWorker[I]{
		id:     uuid.New(),
		rctx:   rctx,
		hooks:  hooks,
		logger: slog.Default(),
		laneID: DefaultLaneID,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// ID returns the unique id of this worker instance.
func (w *BatchWorker[I]) ID() uuid.UUID { return w.id }

// RunningContext returns the run parameters.
func (w *BatchWorker[I]) RunningContext() *RunningContext { return w.rctx }

// SerialLaneID returns the lane this worker is scheduled on.
func (w *BatchWorker[I]) SerialLaneID() string { return w.laneID }

// SetPaginator assigns the page source. Meant to be called from PreRun;
// leaving it unset makes the run complete trivially.
func (w *BatchWorker[I]) SetPaginator(p Paginator[I]) { w.paginator = p }

// Stop requests cooperative cancellation. The flag is honored before each
// page and before each item, never mid-item. After Stop no further PrePage,
// PostPage or PostRun hooks fire.
func (w *BatchWorker[I]) Stop() { w.stopped.Store(true) }

// Stopped reports whether the run was stopped before completing.
func (w *BatchWorker[I]) Stopped() bool { return w.stopped.Load() }

// CompletionRate reports run progress as processed pages over total pages.
// A run with no pages counts as fully complete.
func (w *BatchWorker[I]) CompletionRate() float64 {
	if w.totalPages == 0 {
		return 1.0
	}
	return float64(w.actualPage) / float64(w.totalPages)
}

// Run executes the page lifecycle. Item processing errors are fatal: the run
// stops, the error propagates and remaining pages stay unprocessed. Context
// cancellation is treated as a Stop at the next page or item boundary.
func (w *BatchWorker[I]) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	w.logger.Info("worker run started",
		slog.String("worker_id", w.id.String()),
		slog.String("network", w.rctx.String()),
		slog.Bool("incremental", w.rctx.Incremental),
		slog.String("lane", w.laneID))

	if err := w.hooks.PreRun(ctx, w); err != nil {
		w.Stop()
		return fmt.Errorf("%w: %w", ErrPreRun, err)
	}

	if w.paginator != nil {
		w.totalPages = w.paginator.TotalPages()
		if err := w.runPages(ctx); err != nil {
			return err
		}
	}

	if w.Stopped() {
		w.logger.Warn("worker run stopped",
			slog.String("worker_id", w.id.String()),
			slog.Float64("completion_rate", w.CompletionRate()))
		return nil
	}

	if err := w.hooks.PostRun(ctx); err != nil {
		w.Stop()
		return fmt.Errorf("%w: %w", ErrPostRun, err)
	}

	w.logger.Info("worker run completed",
		slog.String("worker_id", w.id.String()),
		slog.Int("pages", w.totalPages))
	return nil
}

func (w *BatchWorker[I]) runPages(ctx context.Context) error {
	for pageNumber := 1; pageNumber <= w.totalPages; pageNumber++ {
		if ctx.Err() != nil {
			w.Stop()
		}
		if w.Stopped() {
			return nil
		}
		w.actualPage = pageNumber

		if err := w.hooks.PrePage(ctx); err != nil {
			w.Stop()
			return fmt.Errorf("%w: page %d: %w", ErrPageProcessing, pageNumber, err)
		}

		page, err := w.paginator.NextPage(ctx)
		if err != nil {
			w.Stop()
			return fmt.Errorf("%w: page %d: %w", ErrPageFetch, pageNumber, err)
		}

		w.logger.Debug("processing page",
			slog.String("worker_id", w.id.String()),
			slog.Int("page", pageNumber),
			slog.Int("of", w.totalPages),
			slog.Int("items", len(page.Items)))

		for _, item := range page.Items {
			if ctx.Err() != nil {
				w.Stop()
			}
			if w.Stopped() {
				return nil
			}
			if err := w.hooks.ProcessItem(ctx, item); err != nil {
				w.Stop()
				return fmt.Errorf("%w: page %d: %w", ErrItemProcessing, pageNumber, err)
			}
		}

		if w.Stopped() {
			return nil
		}
		if err := w.hooks.PostPage(ctx); err != nil {
			w.Stop()
			return fmt.Errorf("%w: page %d: %w", ErrPageProcessing, pageNumber, err)
		}
	}
	return nil
}
