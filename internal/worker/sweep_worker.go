package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
)

type SweepRunner interface {
	RunSweep(ctx context.Context) (*commands.SweepResult, error)
}

// SweepWorker runs the archival sweep on a fixed interval.
type SweepWorker struct {
	runner   SweepRunner
	logger   *slog.Logger
	interval time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSweepWorker(runner SweepRunner, logger *slog.Logger, interval time.Duration) *SweepWorker {
	return &SweepWorker{
		runner:   runner,
		logger:   logger,
		interval: interval,
	}
}

// Start launches the loop in the background; Stop waits for it to finish.
func (w *SweepWorker) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.Run(ctx)
	}()
}

func (w *SweepWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

// Run blocks until ctx is done.
func (w *SweepWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("sweep worker started", "interval", w.interval.String())

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("sweep worker stopped")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *SweepWorker) tick(ctx context.Context) {
	res, err := w.runner.RunSweep(ctx)
	if err != nil {
		if errs.Is(err, commands.ErrSweepInProgress) {
			w.logger.Debug("sweep skipped, another instance holds the lock")
			return
		}
		w.logger.Error("sweep failed", "error", err.Error())
		return
	}
	w.logger.Info("sweep finished",
		"flights_archived", res.FlightsArchived,
		"bookings_archived", res.BookingsArchived,
		"bookings_expired", res.BookingsExpired,
		"users_purged", res.UsersPurged,
		"failures", res.Failures)
}
