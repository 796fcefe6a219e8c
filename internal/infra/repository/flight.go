package repository

import (
	"context"
	"time"

	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/converter"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type FlightRepository struct {
	db db.DBTX
}

func NewFlightRepository(dbtx db.DBTX) *FlightRepository {
	return &FlightRepository{db: dbtx}
}

func (r *FlightRepository) Create(ctx context.Context, f *inventory.Flight) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO flights (`+converter.FlightColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		f.ID(), f.FlightNumber(), f.Origin(), f.Destination(), f.DepartureTime(), f.ArrivalTime(),
		f.Capacity().Total(), f.Capacity().Available(), f.PriceCents(), f.Status().String(),
		f.Archive().IsArchived(), f.Archive().At(), f.Archive().ReasonPtr(), f.BookedSeats(), f.RevenueCents(),
		f.CreatedAt(), f.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create flight", err)
	}
	return nil
}

func (r *FlightRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+converter.FlightColumns+` FROM flights WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock flight", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[converter.FlightRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("flight not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock flight", err)
	}
	return converter.FlightToDomain(row)
}

// Save writes everything except available_seats.
func (r *FlightRepository) Save(ctx context.Context, f *inventory.Flight) error {
	tag, err := r.db.Exec(ctx, `
UPDATE flights SET
	flight_number = $2, origin = $3, destination = $4, departure_time = $5, arrival_time = $6,
	price_cents = $7, status = $8, archived = $9, archived_at = $10, archive_reason = $11,
	booked_seats = $12, revenue_cents = $13, updated_at = $14
WHERE id = $1`,
		f.ID(), f.FlightNumber(), f.Origin(), f.Destination(), f.DepartureTime(), f.ArrivalTime(),
		f.PriceCents(), f.Status().String(), f.Archive().IsArchived(), f.Archive().At(), f.Archive().ReasonPtr(),
		f.BookedSeats(), f.RevenueCents(), f.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save flight", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("flight not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *FlightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete flight", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("flight not found", nil, infra.KindNotFound)
	}
	return nil
}

// ReserveSeats debits seats in one conditional update and returns what is left.
func (r *FlightRepository) ReserveSeats(ctx context.Context, id uuid.UUID, quantity int, now time.Time) (int, error) {
	var remaining int
	err := r.db.QueryRow(ctx, `
UPDATE flights
SET available_seats = available_seats - $2, updated_at = $3
WHERE id = $1 AND available_seats >= $2
RETURNING available_seats`, id, quantity, now).Scan(&remaining)
	if err == nil {
		return remaining, nil
	}
	if !pgconv.IsNoRows(err) {
		return 0, infra.WrapRepoErr("failed to reserve seats", err)
	}

	exists, err := r.exists(ctx, id)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, infra.WrapRepoErr("flight not found", nil, infra.KindNotFound)
	}
	return 0, errs.Wrapf(inventory.ErrNotEnoughSeats, "flight %s has fewer than %d seats", id, quantity)
}

// ReleaseSeats credits seats back, never beyond the total.
func (r *FlightRepository) ReleaseSeats(ctx context.Context, id uuid.UUID, quantity int, now time.Time) (int, error) {
	var available int
	err := r.db.QueryRow(ctx, `
UPDATE flights
SET available_seats = LEAST(total_seats, available_seats + $2), updated_at = $3
WHERE id = $1
RETURNING available_seats`, id, quantity, now).Scan(&available)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("flight not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to release seats", err)
	}
	return available, nil
}

func (r *FlightRepository) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM flights WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check flight", err)
	}
	return exists, nil
}
