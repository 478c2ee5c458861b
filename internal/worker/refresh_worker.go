package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/roster-service/internal/domain"
)

// Loader reloads the roster from its source.
type Loader interface {
	LoadAll(ctx context.Context) ([]domain.Employee, error)
}

// RefreshWorker periodically reloads the roster until its context ends.
type RefreshWorker struct {
	loader   Loader
	interval time.Duration
	logger   *zap.Logger
}

// NewRefreshWorker constructs a worker reloading every interval.
func NewRefreshWorker(loader Loader, interval time.Duration, logger *zap.Logger) *RefreshWorker {
	return &RefreshWorker{loader: loader, interval: interval, logger: logger}
}

// Run blocks, reloading on each tick. A non-positive interval returns at once.
// Failed reloads are logged; the roster keeps its previous contents.
func (w *RefreshWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		return
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("roster refresh worker started", zap.Duration("interval", w.interval))
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("roster refresh worker stopped")
			return
		case <-ticker.C:
			employees, err := w.loader.LoadAll(ctx)
			if err != nil {
				w.logger.Warn("roster refresh failed", zap.Error(err))
				continue
			}
			w.logger.Debug("roster refreshed", zap.Int("count", len(employees)))
		}
	}
}
