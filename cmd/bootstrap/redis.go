package bootstrap

import (
	"context"
	"log/slog"

	"travel-booking/internal/infra/lock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewSweepLock,
	),
)

// NewSweepLock elects the sweeper through Redis when enabled. A single
// instance deployment falls back to an in-process lock.
func NewSweepLock(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.SweepLock, error) {
	if !cfg.Redis.Enabled {
		logger.Info("redis disabled, sweep lock is process local")
		return lock.NewLocalLock(), nil
	}

	client, err := lock.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("sweep lock backed by redis", "addr", cfg.Redis.Addr)
	return lock.NewSweepLock(client, cfg.Sweep), nil
}
