package commands

import (
	"context"
	"log/slog"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type FlightBookingInput struct {
	UserID      uuid.UUID
	FlightID    uuid.UUID
	Quantity    int
	Passengers  []booking.Passenger
	SeatNumbers []string
}

type PackageBookingInput struct {
	UserID     uuid.UUID
	OfferID    uuid.UUID
	Persons    int
	Passengers []booking.Passenger
}

type BookingResult struct {
	BookingID uuid.UUID
	Reference string
	Status    booking.Status
}

type BookingCommands interface {
	CreateFlightBooking(ctx context.Context, in FlightBookingInput) (*BookingResult, error)
	CreatePackageBooking(ctx context.Context, in PackageBookingInput) (*BookingResult, error)
	CancelBooking(ctx context.Context, bookingID, actingUserID uuid.UUID, isOperator bool) (*BookingResult, error)
	ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*BookingResult, error)
	DeleteBooking(ctx context.Context, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow         shared.UnitOfWork
	allocator   *Allocator
	notifier    Notifier
	clock       clock.Clock
	codes       booking.CodeGenerator
	autoConfirm bool
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	allocator *Allocator,
	notifier Notifier,
	clk clock.Clock,
	codes booking.CodeGenerator,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:         uow,
		allocator:   allocator,
		notifier:    notifier,
		clock:       clk,
		codes:       codes,
		autoConfirm: cfg.AutoConfirm,
	}
}

func (uc *bookingCommandsImpl) CreateFlightBooking(ctx context.Context, in FlightBookingInput) (*BookingResult, error) {
	req := booking.FlightRequest{
		UserID:      in.UserID,
		FlightID:    in.FlightID,
		Quantity:    in.Quantity,
		Passengers:  in.Passengers,
		SeatNumbers: in.SeatNumbers,
	}
	if _, _, err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (*booking.Booking, error) {
		now := uc.clock.Now()

		var flight *inventory.Flight
		var err error
		if len(in.SeatNumbers) > 0 {
			flight, err = tx.Flights().FindByIDForUpdate(ctx, in.FlightID)
		} else {
			flight, err = tx.Reads().FlightByID(ctx, in.FlightID)
		}
		if err != nil {
			return nil, err
		}

		b, err := booking.NewFlightBooking(req, flight, uc.codes.Reference(), now)
		if err != nil {
			return nil, err
		}
		if err = uc.allocator.ReserveSeats(ctx, tx, flight.ID(), b.Quantity(), b.Seats(), now); err != nil {
			return nil, err
		}
		return uc.persistNew(ctx, tx, b, now)
	})
	if err != nil {
		return nil, err
	}

	uc.announceCreated(ctx, created)
	return toResult(created), nil
}

func (uc *bookingCommandsImpl) CreatePackageBooking(ctx context.Context, in PackageBookingInput) (*BookingResult, error) {
	req := booking.PackageRequest{
		UserID:     in.UserID,
		OfferID:    in.OfferID,
		Persons:    in.Persons,
		Passengers: in.Passengers,
	}
	if _, err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (*booking.Booking, error) {
		now := uc.clock.Now()

		offer, err := tx.Reads().OfferByID(ctx, in.OfferID)
		if err != nil {
			return nil, err
		}
		b, err := booking.NewPackageBooking(req, offer, uc.codes.Reference(), now)
		if err != nil {
			return nil, err
		}
		if err = uc.allocator.ReserveSlot(ctx, tx, offer.ID(), now); err != nil {
			return nil, err
		}
		return uc.persistNew(ctx, tx, b, now)
	})
	if err != nil {
		return nil, err
	}

	uc.announceCreated(ctx, created)
	return toResult(created), nil
}

// maxReferenceAttempts bounds how often a colliding reference is redrawn.
const maxReferenceAttempts = 3

// persistNew applies the auto-confirm policy before the first insert.
func (uc *bookingCommandsImpl) persistNew(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) (*booking.Booking, error) {
	if uc.autoConfirm {
		if err := b.Confirm(now, uc.codes.Ticket()); err != nil {
			return nil, err
		}
	}
	for attempt := 1; ; attempt++ {
		err := tx.Bookings().Create(ctx, b)
		if err == nil {
			return b, nil
		}
		if !errs.Is(err, booking.ErrDuplicateReference) || attempt == maxReferenceAttempts {
			return nil, err
		}
		slog.WarnContext(ctx, "booking reference collided, drawing a new one",
			"reference", b.Reference(),
			"attempt", attempt)
		b.ReissueReference(uc.codes.Reference())
	}
}

func (uc *bookingCommandsImpl) announceCreated(ctx context.Context, b *booking.Booking) {
	slog.InfoContext(ctx, "booking created",
		"booking_id", b.ID(),
		"reference", b.Reference(),
		"kind", b.Kind().String(),
		"status", b.Status().String())

	events := []notification{{booking: b, event: booking.EventCreated}}
	if b.Status() == booking.StatusConfirmed {
		events = append(events, notification{booking: b, event: booking.EventConfirmed})
	}
	dispatch(ctx, uc.notifier, events)
}

func (uc *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, actingUserID uuid.UUID, isOperator bool) (*BookingResult, error) {
	actor := booking.Actor{UserID: actingUserID, IsOperator: isOperator}

	cancelled, err := shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (*booking.Booking, error) {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		now := uc.clock.Now()
		if err = b.Cancel(now, actor); err != nil {
			return nil, err
		}
		if err = uc.allocator.Release(ctx, tx, b, now); err != nil {
			return nil, err
		}
		if err = tx.Bookings().Save(ctx, b); err != nil {
			return nil, err
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking cancelled", "booking_id", bookingID, "actor_id", actingUserID, "operator", isOperator)
	dispatch(ctx, uc.notifier, []notification{{booking: cancelled, event: booking.EventCancelled}})
	return toResult(cancelled), nil
}

func (uc *bookingCommandsImpl) ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*BookingResult, error) {
	confirmed, err := shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (*booking.Booking, error) {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if err = b.Confirm(uc.clock.Now(), uc.codes.Ticket()); err != nil {
			return nil, err
		}
		if err = tx.Bookings().Save(ctx, b); err != nil {
			return nil, err
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking confirmed", "booking_id", bookingID)
	dispatch(ctx, uc.notifier, []notification{{booking: confirmed, event: booking.EventConfirmed}})
	return toResult(confirmed), nil
}

// DeleteBooking removes the row permanently, crediting capacity first when
// the booking still held any.
func (uc *bookingCommandsImpl) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.HoldsCapacity() {
			if err = uc.allocator.Release(ctx, tx, b, uc.clock.Now()); err != nil {
				return err
			}
		}
		return tx.Bookings().Delete(ctx, bookingID)
	})
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "booking deleted", "booking_id", bookingID)
	return nil
}

func toResult(b *booking.Booking) *BookingResult {
	return &BookingResult{
		BookingID: b.ID(),
		Reference: b.Reference(),
		Status:    b.Status(),
	}
}
