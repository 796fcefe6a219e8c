package shared

import (
	"context"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx hands out repositories bound to one transaction.
type Tx interface {
	Flights() FlightRepository
	Offers() OfferRepository
	Bookings() BookingRepository
	Users() UserRepository
	Reads() CommandReads
}

type CommandReads interface {
	FlightByID(ctx context.Context, id uuid.UUID) (*inventory.Flight, error)
	OfferByID(ctx context.Context, id uuid.UUID) (*inventory.PackageOffer, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	FlightSweepCandidates(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	BookingSweepCandidates(ctx context.Context, f BookingSweepFilter) ([]uuid.UUID, error)
	UserPurgeCandidates(ctx context.Context, archivedBefore time.Time) ([]uuid.UUID, error)
}

// FlightRepository writes flights. Save never touches available seats;
// those move only through ReserveSeats and ReleaseSeats.
type FlightRepository interface {
	Create(ctx context.Context, f *inventory.Flight) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.Flight, error)
	Save(ctx context.Context, f *inventory.Flight) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReserveSeats(ctx context.Context, id uuid.UUID, quantity int, now time.Time) (int, error)
	ReleaseSeats(ctx context.Context, id uuid.UUID, quantity int, now time.Time) (int, error)
}

// OfferRepository writes package offers. The booking counter moves only
// through TakeSlot and ReturnSlot.
type OfferRepository interface {
	Create(ctx context.Context, o *inventory.PackageOffer) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.PackageOffer, error)
	Save(ctx context.Context, o *inventory.PackageOffer) error
	Delete(ctx context.Context, id uuid.UUID) error
	TakeSlot(ctx context.Context, id uuid.UUID, now time.Time) (int, error)
	ReturnSlot(ctx context.Context, id uuid.UUID, now time.Time) (int, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Save(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	// TakenSeats returns which of seats are held by pending or confirmed bookings on the flight.
	TakenSeats(ctx context.Context, flightID uuid.UUID, seats []string) ([]string, error)
	CountActive(ctx context.Context, ref InventoryRef) (int, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*user.User, error)
	Save(ctx context.Context, u *user.User) error
}
