package readstore

import (
	"context"

	"travel-booking/internal/infra/db"
	"travel-booking/internal/usecase/queries"
)

type ArchiveStatsReadStore struct {
	db db.DBTX
}

func NewArchiveStatsReadStore(dbtx db.DBTX) *ArchiveStatsReadStore {
	return &ArchiveStatsReadStore{db: dbtx}
}

type kindStatsRow struct {
	Total     int `db:"total"`
	Archived  int `db:"archived"`
	Active    int `db:"active"`
	Completed int `db:"completed"`
}

func (r *ArchiveStatsReadStore) FlightStats(ctx context.Context) (queries.KindStats, error) {
	return r.stats(ctx, "flight stats", `
SELECT COUNT(*) AS total,
	COUNT(*) FILTER (WHERE archived) AS archived,
	COUNT(*) FILTER (WHERE NOT archived) AS active,
	COUNT(*) FILTER (WHERE status = 'completed') AS completed
FROM flights`)
}

func (r *ArchiveStatsReadStore) BookingStats(ctx context.Context) (queries.KindStats, error) {
	return r.stats(ctx, "booking stats", `
SELECT COUNT(*) AS total,
	COUNT(*) FILTER (WHERE archived) AS archived,
	COUNT(*) FILTER (WHERE NOT archived) AS active,
	COUNT(*) FILTER (WHERE archive_reason = 'completed') AS completed
FROM bookings`)
}

func (r *ArchiveStatsReadStore) PackageStats(ctx context.Context) (queries.KindStats, error) {
	return r.stats(ctx, "package stats", `
SELECT COUNT(*) AS total,
	COUNT(*) FILTER (WHERE archived) AS archived,
	COUNT(*) FILTER (WHERE NOT archived) AS active,
	COUNT(*) FILTER (WHERE archive_reason = 'completed') AS completed
FROM package_offers`)
}

func (r *ArchiveStatsReadStore) stats(ctx context.Context, what, sql string) (queries.KindStats, error) {
	row, err := queryOne[kindStatsRow](ctx, r.db, what, sql)
	if err != nil {
		return queries.KindStats{}, err
	}
	return queries.KindStats(row), nil
}
