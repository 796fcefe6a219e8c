// Package migrations embeds the SQL schema and applies it in filename
// order. cmd/migrate drives the same files through Atlas.
package migrations

import (
	"context"
	"embed"
	"io/fs"
	"sort"
	"strings"

	"travel-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed *.sql atlas.sum
var migrationFiles embed.FS

// FS exposes the migration directory, atlas.sum included, for Atlas.
func FS() fs.FS {
	return migrationFiles
}

const advisoryLockID int64 = 720260601

// Apply runs embedded SQL migrations in filename order.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	names, err := Names()
	if err != nil {
		return err
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return errs.Wrap(err, "acquire conn")
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, advisoryLockID); err != nil {
		return errs.Wrap(err, "acquire migration lock")
	}
	defer func() {
		_, _ = conn.Exec(context.WithoutCancel(ctx), `SELECT pg_advisory_unlock($1)`, advisoryLockID)
	}()

	if _, err := conn.Exec(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	name TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`); err != nil {
		return errs.Wrap(err, "ensure schema_migrations")
	}

	for _, name := range names {
		var applied bool
		if err := conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name).Scan(&applied); err != nil {
			return errs.Wrapf(err, "check migration %s", name)
		}
		if applied {
			continue
		}

		sqlBytes, err := migrationFiles.ReadFile(name)
		if err != nil {
			return errs.Wrapf(err, "read migration %s", name)
		}
		sql := strings.TrimSpace(string(sqlBytes))
		if sql == "" {
			continue
		}
		if _, err := conn.Exec(ctx, sql); err != nil {
			return errs.Wrapf(err, "exec migration %s", name)
		}
		if _, err := conn.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name); err != nil {
			return errs.Wrapf(err, "record migration %s", name)
		}
	}
	return nil
}

// Names lists the embedded migration files in apply order.
func Names() ([]string, error) {
	entries, err := migrationFiles.ReadDir(".")
	if err != nil {
		return nil, errs.Wrap(err, "read migrations")
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
