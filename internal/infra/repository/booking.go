package repository

import (
	"context"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/converter"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	passengers, err := converter.PassengersToJSON(b.Passengers())
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `
INSERT INTO bookings (
	id, reference, ticket_code, user_id, kind, flight_id, offer_id,
	quantity, passengers, seat_numbers, total_cents, status,
	archived, archived_at, archive_reason, confirmed_at, cancelled_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
ON CONFLICT (reference) DO NOTHING`,
		b.ID(), b.Reference(), b.TicketCode(), b.UserID(), b.Kind().String(), b.FlightID(), b.OfferID(),
		b.Quantity(), passengers, pgconv.TextArray(b.Seats().Values()), b.TotalCents(), b.Status().String(),
		b.Archive().IsArchived(), b.Archive().At(), b.Archive().ReasonPtr(), b.ConfirmedAt(), b.CancelledAt(),
		b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.Wrapf(booking.ErrDuplicateReference, "reference %s", b.Reference())
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+converter.BookingColumns+` FROM bookings b WHERE b.id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[converter.BookingRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return converter.BookingToDomain(row)
}

// Save writes the mutable part of a booking: lifecycle and archive state.
func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, `
UPDATE bookings SET
	ticket_code = $2, status = $3, archived = $4, archived_at = $5, archive_reason = $6,
	confirmed_at = $7, cancelled_at = $8, updated_at = $9
WHERE id = $1`,
		b.ID(), b.TicketCode(), b.Status().String(), b.Archive().IsArchived(), b.Archive().At(), b.Archive().ReasonPtr(),
		b.ConfirmedAt(), b.CancelledAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) TakenSeats(ctx context.Context, flightID uuid.UUID, seats []string) ([]string, error) {
	if len(seats) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, `
SELECT DISTINCT seat
FROM bookings b, unnest(b.seat_numbers) AS seat
WHERE b.flight_id = $1
  AND b.status IN ('pending', 'confirmed')
  AND b.seat_numbers && $2
  AND seat = ANY($2)
ORDER BY seat`, flightID, seats)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read taken seats", err)
	}
	taken, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read taken seats", err)
	}
	return taken, nil
}

// CountActive counts bookings that still hold the inventory: not cancelled and not archived.
func (r *BookingRepository) CountActive(ctx context.Context, ref shared.InventoryRef) (int, error) {
	column := "flight_id"
	if ref.Kind == booking.KindPackage {
		column = "offer_id"
	}
	var n int
	err := r.db.QueryRow(ctx, `
SELECT COUNT(*) FROM bookings
WHERE `+column+` = $1 AND status <> 'cancelled' AND NOT archived`, ref.ID).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active bookings", err)
	}
	return n, nil
}
