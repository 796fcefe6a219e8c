package readstore

import (
	"context"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra/converter"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const bookingViewSelect = `
SELECT ` + converter.BookingColumns + `,
	f.flight_number, f.departure_time, o.title AS offer_title
FROM bookings b
LEFT JOIN flights f ON f.id = b.flight_id
LEFT JOIN package_offers o ON o.id = b.offer_id`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := queryOne[converter.BookingViewRow](ctx, r.db, "booking", bookingViewSelect+` WHERE b.id = $1`, id)
	if err != nil {
		return nil, err
	}
	return converter.BookingToView(row)
}

// List pages newest first on (created_at, id).
func (r *BookingReadStore) List(ctx context.Context, q queries.BookingPageQuery) ([]*queries.BookingView, error) {
	rows, err := queryAll[converter.BookingViewRow](ctx, r.db, "bookings", bookingViewSelect+`
WHERE ($1::uuid IS NULL OR b.user_id = $1)
  AND ($2::boolean IS NULL OR b.archived = $2)
  AND ($3::timestamptz IS NULL OR (b.created_at, b.id) < ($3, $4::uuid))
ORDER BY b.created_at DESC, b.id DESC
LIMIT $5`, q.UserID, q.Archived, q.AfterTime, q.AfterID, q.Limit)
	if err != nil {
		return nil, err
	}
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := converter.BookingToView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// BookingByID loads the aggregate without locking.
func (r *BookingReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := queryOne[converter.BookingRow](ctx, r.db, "booking",
		`SELECT `+converter.BookingColumns+` FROM bookings b WHERE b.id = $1`, id)
	if err != nil {
		return nil, err
	}
	return converter.BookingToDomain(row)
}
