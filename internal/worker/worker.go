// Package worker runs periodic maintenance: expired admin sessions
// are deleted on an interval so the sessions table does not grow
// without bound.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nirmaan-labs/nirmaan/internal/metrics"
	"github.com/nirmaan-labs/nirmaan/internal/service"
)

// Worker sweeps expired sessions on a fixed interval.
type Worker struct {
	users  service.UserService
	config Config
	logger *slog.Logger

	wg     sync.WaitGroup
	stopCh chan struct{}
}

// New creates a Worker. Start it with Start() and stop it with Stop().
func New(users service.UserService, config Config, logger *slog.Logger) (*Worker, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Worker{
		users:  users,
		config: config,
		logger: logger,
		stopCh: make(chan struct{}),
	}, nil
}

// Start begins the sweep loop. An initial sweep runs immediately so a
// restarted server cleans up promptly.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)

	w.logger.Info("maintenance worker started", "interval", w.config.Interval)
}

// Stop signals the loop to exit and waits for any in-flight sweep,
// bounded by ShutdownTimeout.
func (w *Worker) Stop() {
	close(w.stopCh)

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("maintenance worker stopped")
	case <-time.After(w.config.ShutdownTimeout):
		w.logger.Warn("maintenance worker shutdown timeout exceeded")
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Worker) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, w.config.SweepTimeout)
	defer cancel()

	deleted, err := w.users.DeleteExpiredSessions(sweepCtx)
	if err != nil {
		metrics.MaintenanceRuns.WithLabelValues("failure").Inc()
		w.logger.Error("session sweep failed", "error", err)
		return
	}

	metrics.MaintenanceRuns.WithLabelValues("success").Inc()
	if deleted > 0 {
		metrics.SessionsSwept.Add(float64(deleted))
		w.logger.Info("swept expired sessions", "deleted", deleted)
	}
}
