package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"catalog/config"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	"catalog/internal/infra/metrics"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// RefresherParams holds the dependencies of the refresher.
type RefresherParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Catalog  usecase.CatalogUsecase
	Source   service.FeedSource
	Recorder *metrics.Recorder `optional:"true"`
}

// refresher runs download → ingest → persist, daily and on demand. At most one run is in
// flight; callers arriving during a run share its result.
type refresher struct {
	cfg      *config.RefreshConfig
	logger   *slog.Logger
	catalog  usecase.CatalogUsecase
	source   service.FeedSource
	recorder *metrics.Recorder
	now      func() time.Time
	newID    func() string

	group singleflight.Group

	mu     sync.RWMutex
	status usecase.RefreshStatus

	runCtx    context.Context
	cancelRun context.CancelFunc
	stopLoop  chan struct{}
	loopDone  chan struct{}
}

// NewRefresher creates the refresher and registers its scheduler with the lifecycle.
func NewRefresher(params RefresherParams) usecase.RefreshUsecase {
	refreshCfg := &config.RefreshConfig{}
	if params.Config != nil && params.Config.Refresh != nil {
		refreshCfg = params.Config.Refresh
	}

	runCtx, cancel := context.WithCancel(context.Background())
	r := &refresher{
		cfg:       refreshCfg,
		logger:    params.Logger,
		catalog:   params.Catalog,
		source:    params.Source,
		recorder:  params.Recorder,
		now:       time.Now,
		newID:     uuid.NewString,
		runCtx:    runCtx,
		cancelRun: cancel,
	}

	if params.Lifecycle != nil {
		params.Append(fx.Hook{
			OnStart: r.start,
			OnStop:  r.stop,
		})
	}

	return r
}

// Refresh joins the run in progress or starts one, and waits for it.
func (r *refresher) Refresh(ctx context.Context) (usecase.RefreshStatus, error) {
	r.mu.Lock()
	id := r.status.RunID
	if !r.status.Running {
		id = r.begin()
	}
	ch := r.group.DoChan(id, r.execute(id))
	r.mu.Unlock()

	select {
	case res := <-ch:
		status, _ := res.Val.(usecase.RefreshStatus)

		return status, res.Err
	case <-ctx.Done():
		return r.Status(), errors.WithStack(ctx.Err())
	}
}

// Trigger starts a run in the background.
func (r *refresher) Trigger() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status.Running {
		return r.status.RunID, domainerrors.ErrRefreshInProgress
	}

	id := r.begin()
	r.group.DoChan(id, r.execute(id))

	return id, nil
}

// Status returns a copy of the latest run state.
func (r *refresher) Status() usecase.RefreshStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.status
}

// begin marks a new run as started. Callers hold r.mu.
func (r *refresher) begin() string {
	id := r.newID()
	r.status = usecase.RefreshStatus{
		RunID:     id,
		Running:   true,
		StartedAt: r.now(),
	}

	return id
}

func (r *refresher) execute(id string) func() (any, error) {
	return func() (any, error) {
		ctx := r.runCtx
		logger := r.logger.With(slog.String("run_id", id))
		logger.InfoContext(ctx, "Catalog refresh started")

		products, err := r.run(ctx)
		r.recorder.ObserveRefresh(err)

		r.mu.Lock()
		r.status.Running = false
		r.status.FinishedAt = r.now()
		r.status.Products = products
		if err != nil {
			r.status.Error = err.Error()
		}
		status := r.status
		r.mu.Unlock()

		if err != nil {
			logger.ErrorContext(ctx, "Catalog refresh failed", slog.Any("error", err))

			return status, err
		}

		logger.InfoContext(ctx, "Catalog refresh finished",
			slog.Int("products", products),
			slog.Duration("duration", status.FinishedAt.Sub(status.StartedAt)),
		)

		return status, nil
	}
}

func (r *refresher) run(ctx context.Context) (int, error) {
	path, err := r.source.Fetch(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to fetch feed")
	}

	products, err := r.catalog.IngestFeed(ctx, path)
	if err != nil {
		return 0, errors.Wrap(err, "failed to ingest feed")
	}

	if _, err := r.catalog.Persist(ctx); err != nil {
		return len(products), err
	}

	return len(products), nil
}

// nextRun is the next occurrence of the configured hour strictly after now.
func (r *refresher) nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), r.cfg.Hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}

func (r *refresher) start(context.Context) error {
	if r.cfg.Enabled {
		r.stopLoop = make(chan struct{})
		r.loopDone = make(chan struct{})
		go r.loop()
	}

	if r.cfg.RunOnStart {
		if _, err := r.Trigger(); err != nil {
			r.logger.Warn("Initial refresh not started", slog.Any("error", err))
		}
	}

	return nil
}

func (r *refresher) stop(ctx context.Context) error {
	r.cancelRun()

	if r.stopLoop == nil {
		return nil
	}
	close(r.stopLoop)

	select {
	case <-r.loopDone:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func (r *refresher) loop() {
	defer close(r.loopDone)

	for {
		next := r.nextRun(r.now())
		r.logger.Info("Next catalog refresh scheduled", slog.Time("at", next))

		timer := time.NewTimer(next.Sub(r.now()))
		select {
		case <-r.stopLoop:
			timer.Stop()

			return
		case <-timer.C:
			if _, err := r.Refresh(r.runCtx); err != nil {
				r.logger.Error("Scheduled refresh failed", slog.Any("error", err))
			}
		}
	}
}
