package commands

import (
	"context"
	"log/slog"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Allocator debits and credits inventory capacity inside a caller's
// transaction. Debits are single conditional updates so concurrent
// requests can never oversell. now stamps the touched inventory row.
type Allocator struct{}

func NewAllocator() *Allocator {
	return &Allocator{}
}

// ReserveSeats debits quantity seats. With explicit seats the caller must
// already hold the flight row lock so the conflict check and the insert
// serialise with other requests for the same flight.
func (a *Allocator) ReserveSeats(ctx context.Context, tx shared.Tx, flightID uuid.UUID, quantity int, seats booking.SeatNumbers, now time.Time) error {
	if !seats.IsEmpty() {
		taken, err := tx.Bookings().TakenSeats(ctx, flightID, seats.Values())
		if err != nil {
			return err
		}
		if overlap := seats.Overlap(taken); len(overlap) > 0 {
			return errs.NewSeatConflict(overlap)
		}
	}

	remaining, err := tx.Flights().ReserveSeats(ctx, flightID, quantity, now)
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "seats reserved", "flight_id", flightID, "quantity", quantity, "remaining", remaining)
	return nil
}

func (a *Allocator) ReserveSlot(ctx context.Context, tx shared.Tx, offerID uuid.UUID, now time.Time) error {
	current, err := tx.Offers().TakeSlot(ctx, offerID, now)
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "package slot taken", "offer_id", offerID, "current_bookings", current)
	return nil
}

// Release credits back whatever b was holding.
func (a *Allocator) Release(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
	switch b.Kind() {
	case booking.KindFlight:
		if _, err := tx.Flights().ReleaseSeats(ctx, *b.FlightID(), b.Quantity(), now); err != nil {
			return errs.Wrapf(err, "release seats for booking %s", b.ID())
		}
	case booking.KindPackage:
		if _, err := tx.Offers().ReturnSlot(ctx, *b.OfferID(), now); err != nil {
			return errs.Wrapf(err, "return slot for booking %s", b.ID())
		}
	}
	return nil
}
