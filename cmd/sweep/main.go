// Command sweep runs one archival sweep and exits, for cron or batch
// schedulers that replace the in-process worker.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"travel-booking/cmd/bootstrap"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

func main() {
	var (
		userFlag = flag.String("user", "", "sweep only this user's bookings")
		timeout  = flag.Duration("timeout", 15*time.Minute, "overall deadline")
	)
	flag.Parse()

	var userID uuid.UUID
	if *userFlag != "" {
		id, err := uuid.Parse(*userFlag)
		if err != nil {
			slog.Error("invalid -user", "error", err)
			os.Exit(2)
		}
		userID = id
	}

	var sweep commands.SweepCommands
	var logger *slog.Logger
	app := fx.New(
		bootstrap.CoreModule,
		fx.Populate(&sweep, &logger),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	code := run(ctx, sweep, logger, userID)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.Error("failed to stop", "error", err)
	}
	os.Exit(code)
}

func run(ctx context.Context, sweep commands.SweepCommands, logger *slog.Logger, userID uuid.UUID) int {
	var (
		res *commands.SweepResult
		err error
	)
	if userID != uuid.Nil {
		res, err = sweep.SweepUser(ctx, userID)
	} else {
		res, err = sweep.RunSweep(ctx)
	}
	if err != nil {
		if errs.Is(err, commands.ErrSweepInProgress) {
			logger.Info("another sweep holds the lock, nothing to do")
			return 0
		}
		logger.Error("sweep failed", "error", err)
		return 1
	}

	logger.Info("sweep finished",
		"flights_updated", res.FlightsUpdated,
		"flights_archived", res.FlightsArchived,
		"bookings_archived", res.BookingsArchived,
		"bookings_expired", res.BookingsExpired,
		"users_purged", res.UsersPurged,
		"failures", res.Failures,
		"took", res.FinishedAt.Sub(res.StartedAt).String())
	if res.Failures > 0 {
		return 3
	}
	return 0
}
