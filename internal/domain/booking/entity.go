package booking

import (
	"time"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/ids"

	"github.com/google/uuid"
)

var (
	ErrSeatsNotAllowed     = errs.NewKind("seat numbers apply to flight bookings only", errs.ErrValidation)
	ErrInventoryMismatch   = errs.NewKind("booking does not reference the given inventory", errs.ErrValidation)
	ErrNotPending          = errs.NewKind("only pending bookings can be confirmed", errs.ErrIllegalTransition)
	ErrAlreadyCancelled    = errs.NewKind("booking is already cancelled", errs.ErrIllegalTransition)
	ErrArchivedBooking     = errs.NewKind("archived bookings cannot be confirmed", errs.ErrIllegalTransition)
	ErrCannotExpire        = errs.NewKind("only pending bookings can expire", errs.ErrIllegalTransition)
	ErrNotOwner            = errs.NewKind("only the owner or an operator may cancel", errs.ErrUnauthorized)
	ErrInvalidSweepReason  = errs.NewKind("sweep cannot archive with manual reason", errs.ErrValidation)
	ErrMissingInventoryRef = errs.NewKind("booking must reference exactly one inventory record", errs.ErrValidation)
)

// Actor is whoever requests a transition.
type Actor struct {
	UserID     uuid.UUID
	IsOperator bool
}

type FlightRequest struct {
	UserID      uuid.UUID
	FlightID    uuid.UUID
	Quantity    int
	Passengers  []Passenger
	SeatNumbers []string
}

type PackageRequest struct {
	UserID     uuid.UUID
	OfferID    uuid.UUID
	Persons    int
	Passengers []Passenger
}

// Validate checks the request shape before any inventory is touched.
func (r FlightRequest) Validate() ([]Passenger, SeatNumbers, error) {
	if r.Quantity < 1 || r.Quantity > MaxSeatsPerBooking {
		return nil, SeatNumbers{}, ErrInvalidSeatCount
	}
	passengers, err := validatePassengers(r.Passengers, r.Quantity)
	if err != nil {
		return nil, SeatNumbers{}, err
	}
	seats, err := NewSeatNumbers(r.SeatNumbers, r.Quantity)
	if err != nil {
		return nil, SeatNumbers{}, err
	}
	return passengers, seats, nil
}

func (r PackageRequest) Validate() ([]Passenger, error) {
	if r.Persons < 1 || r.Persons > MaxPersonsPerPackage {
		return nil, ErrInvalidPersonCount
	}
	return validatePassengers(r.Passengers, r.Persons)
}

type Booking struct {
	id          uuid.UUID
	reference   string
	ticketCode  *string
	userID      uuid.UUID
	kind        Kind
	flightID    *uuid.UUID
	offerID     *uuid.UUID
	quantity    int
	passengers  []Passenger
	seats       SeatNumbers
	totalCents  int64
	status      Status
	archive     archive.State
	confirmedAt *time.Time
	cancelledAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewFlightBooking builds a pending booking priced from the flight.
func NewFlightBooking(r FlightRequest, f *inventory.Flight, reference string, now time.Time) (*Booking, error) {
	passengers, seats, err := r.Validate()
	if err != nil {
		return nil, err
	}
	if f.ID() != r.FlightID {
		return nil, ErrInventoryMismatch
	}
	if err := f.CheckBookable(now); err != nil {
		return nil, err
	}

	flightID := f.ID()
	return &Booking{
		id:         ids.New(),
		reference:  reference,
		userID:     r.UserID,
		kind:       KindFlight,
		flightID:   &flightID,
		quantity:   r.Quantity,
		passengers: passengers,
		seats:      seats,
		totalCents: f.PriceFor(r.Quantity),
		status:     StatusPending,
		archive:    archive.Active(),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func NewPackageBooking(r PackageRequest, o *inventory.PackageOffer, reference string, now time.Time) (*Booking, error) {
	passengers, err := r.Validate()
	if err != nil {
		return nil, err
	}
	if o.ID() != r.OfferID {
		return nil, ErrInventoryMismatch
	}
	if err := o.CheckBookable(now); err != nil {
		return nil, err
	}

	offerID := o.ID()
	return &Booking{
		id:         ids.New(),
		reference:  reference,
		userID:     r.UserID,
		kind:       KindPackage,
		offerID:    &offerID,
		quantity:   r.Persons,
		passengers: passengers,
		totalCents: o.PriceFor(r.Persons),
		status:     StatusPending,
		archive:    archive.Active(),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

type Snapshot struct {
	ID          uuid.UUID
	Reference   string
	TicketCode  *string
	UserID      uuid.UUID
	Kind        Kind
	FlightID    *uuid.UUID
	OfferID     *uuid.UUID
	Quantity    int
	Passengers  []Passenger
	SeatNumbers []string
	TotalCents  int64
	Status      Status
	Archive     archive.State
	ConfirmedAt *time.Time
	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Reconstruct rebuilds a booking from storage without running creation rules.
func Reconstruct(s Snapshot) (*Booking, error) {
	if (s.Kind == KindFlight) != (s.FlightID != nil) || (s.Kind == KindPackage) != (s.OfferID != nil) {
		return nil, ErrMissingInventoryRef
	}
	if !s.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	var seats SeatNumbers
	if len(s.SeatNumbers) > 0 {
		seats = SeatNumbers{values: append([]string(nil), s.SeatNumbers...)}
	}
	return &Booking{
		id:          s.ID,
		reference:   s.Reference,
		ticketCode:  s.TicketCode,
		userID:      s.UserID,
		kind:        s.Kind,
		flightID:    s.FlightID,
		offerID:     s.OfferID,
		quantity:    s.Quantity,
		passengers:  append([]Passenger(nil), s.Passengers...),
		seats:       seats,
		totalCents:  s.TotalCents,
		status:      s.Status,
		archive:     s.Archive,
		confirmedAt: s.ConfirmedAt,
		cancelledAt: s.CancelledAt,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}, nil
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) Reference() string        { return b.reference }
func (b *Booking) TicketCode() *string      { return b.ticketCode }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) Kind() Kind               { return b.kind }
func (b *Booking) FlightID() *uuid.UUID     { return b.flightID }
func (b *Booking) OfferID() *uuid.UUID      { return b.offerID }
func (b *Booking) Quantity() int            { return b.quantity }
func (b *Booking) Passengers() []Passenger  { return append([]Passenger(nil), b.passengers...) }
func (b *Booking) Seats() SeatNumbers       { return b.seats }
func (b *Booking) TotalCents() int64        { return b.totalCents }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) Archive() archive.State   { return b.archive }
func (b *Booking) ConfirmedAt() *time.Time  { return b.confirmedAt }
func (b *Booking) CancelledAt() *time.Time  { return b.cancelledAt }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
func (b *Booking) HoldsCapacity() bool      { return b.status.HoldsCapacity() }

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

// Confirm issues a ticket code unless one was already assigned.
// ReissueReference swaps the reference of a booking that has not been
// stored yet after its first one collided.
func (b *Booking) ReissueReference(reference string) {
	b.reference = reference
}

func (b *Booking) Confirm(now time.Time, ticketCode string) error {
	if b.archive.IsArchived() {
		return ErrArchivedBooking
	}
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusConfirmed
	if b.ticketCode == nil {
		b.ticketCode = &ticketCode
	}
	b.confirmedAt = &now
	b.updatedAt = now
	return nil
}

// Cancel ends the booking and archives it as cancelled, replacing any
// earlier archive reason. The caller releases capacity.
func (b *Booking) Cancel(now time.Time, actor Actor) error {
	if !b.IsOwnedBy(actor.UserID) && !actor.IsOperator {
		return ErrNotOwner
	}
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	b.cancelledAt = &now
	b.archive = archive.Archived(archive.ReasonCancelled, now)
	b.updatedAt = now
	return nil
}

// Expire force-cancels a stale pending booking.
func (b *Booking) Expire(now time.Time) error {
	if b.status != StatusPending {
		return ErrCannotExpire
	}
	b.status = StatusCancelled
	b.cancelledAt = &now
	b.archive = archive.Archived(archive.ReasonExpired, now)
	b.updatedAt = now
	return nil
}

func (b *Booking) ArchiveBySweep(now time.Time, reason archive.Reason) error {
	if reason == archive.ReasonManual {
		return ErrInvalidSweepReason
	}
	next, err := b.archive.Archive(reason, now)
	if err != nil {
		return err
	}
	b.archive = next
	b.updatedAt = now
	return nil
}

func (b *Booking) ArchiveManually(now time.Time) error {
	next, err := b.archive.Archive(archive.ReasonManual, now)
	if err != nil {
		return err
	}
	b.archive = next
	b.updatedAt = now
	return nil
}

// Restore clears the archive flag only; status is never reverted.
func (b *Booking) Restore(now time.Time) error {
	next, err := b.archive.Restore()
	if err != nil {
		return err
	}
	b.archive = next
	b.updatedAt = now
	return nil
}
