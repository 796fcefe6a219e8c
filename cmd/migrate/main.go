// Command migrate applies the versioned schema in migrations/ through Atlas.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/config"
	"travel-booking/migrations"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	var (
		atlasBin = flag.String("atlas", "atlas", "path to the atlas binary")
		dryRun   = flag.Bool("dry-run", false, "print pending migrations without applying them")
		status   = flag.Bool("status", false, "report the current revision and exit")
		timeout  = flag.Duration("timeout", 5*time.Minute, "overall deadline")
	)
	flag.Parse()

	var logCfg config.LogConfig
	var dbCfg config.DBConfig
	if err := envconfig.Process("", &logCfg); err != nil {
		slog.Error("failed to load log config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(logCfg).GetSlogLogger()
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("failed to load db config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, logger, *atlasBin, dbCfg.BuildDSN(), *dryRun, *status); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, atlasBin, dsn string, dryRun, statusOnly bool) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(migrations.FS()))
	if err != nil {
		return err
	}
	defer func() { _ = workdir.Close() }()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return err
	}

	if statusOnly {
		st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: dsn})
		if err != nil {
			return err
		}
		logger.Info("migration status",
			"status", st.Status,
			"current", st.Current,
			"next", st.Next,
			"pending", len(st.Pending))
		return nil
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dsn,
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}
	for _, f := range res.Applied {
		logger.Info("applied", "version", f.Version, "name", f.Name)
	}
	logger.Info("migrations complete",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
		"dry_run", dryRun)
	return nil
}
