package readstore

import (
	"context"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
)

// queryOne scans exactly one row into T; no row is reported as not found.
func queryOne[T any](ctx context.Context, dbtx db.DBTX, what, sql string, args ...any) (T, error) {
	var zero T
	rows, err := dbtx.Query(ctx, sql, args...)
	if err != nil {
		return zero, infra.WrapRepoErr("failed to find "+what, err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return zero, infra.WrapRepoErr(what+" not found", err, infra.KindNotFound)
		}
		return zero, infra.WrapRepoErr("failed to find "+what, err)
	}
	return row, nil
}

func queryAll[T any](ctx context.Context, dbtx db.DBTX, what, sql string, args ...any) ([]T, error) {
	rows, err := dbtx.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list "+what, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list "+what, err)
	}
	return out, nil
}
