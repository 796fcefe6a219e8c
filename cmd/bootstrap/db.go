package bootstrap

import (
	"context"
	"log/slog"

	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB opens the pool eagerly so a bad DSN fails application start rather
// than the first booking.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "database", cfg.DB.DBName)

	lc.Append(fx.StopHook(func() {
		stat := pool.Stat()
		logger.Info("closing database pool",
			"acquired", stat.AcquiredConns(),
			"total", stat.TotalConns())
		closePool()
	}))
	return pool, nil
}
