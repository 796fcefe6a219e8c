package bootstrap

import (
	"context"
	"log/slog"

	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/worker"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, sweep commands.SweepCommands, logger *slog.Logger) {
	if !cfg.Sweep.Enabled {
		logger.Info("scheduled sweep disabled")
		return
	}

	w := worker.NewSweepWorker(sweep, logger, cfg.Sweep.Interval)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// The start context ends with OnStart; the loop needs its own
			w.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			w.Stop()
			return nil
		},
	})
}
