//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/domain/booking"
	reqdto "travel-booking/internal/handler/dto/request"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	Reference   string
	UserID      uuid.UUID
	Kind        booking.Kind
	FlightID    *uuid.UUID
	OfferID     *uuid.UUID
	Quantity    int
	Passengers  []booking.Passenger
	SeatNumbers []string
	TotalCents  int64
	Status      booking.Status
	Archive     archive.State
	CreatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	flightID := uuid.New()
	return &BookingBuilder{
		ID:         uuid.New(),
		Reference:  "TRV-TEST0001",
		UserID:     uuid.New(),
		Kind:       booking.KindFlight,
		FlightID:   &flightID,
		Quantity:   2,
		Passengers: Passengers(2),
		TotalCents: 24000,
		Status:     booking.StatusPending,
		Archive:    archive.Active(),
		CreatedAt:  BaseTime.Add(-time.Hour),
	}
}

// Passengers returns n distinct valid passengers.
func Passengers(n int) []booking.Passenger {
	out := make([]booking.Passenger, n)
	for i := range out {
		out[i] = booking.Passenger{
			Name:  fmt.Sprintf("Passenger %d", i+1),
			Email: fmt.Sprintf("p%d@example.com", i+1),
		}
	}
	return out
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	bk, err := booking.Reconstruct(b.Snapshot())
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) Snapshot() booking.Snapshot {
	var confirmedAt, cancelledAt *time.Time
	var ticket *string
	switch b.Status {
	case booking.StatusConfirmed:
		at := b.CreatedAt
		confirmedAt = &at
		code := "TKT-TEST000001"
		ticket = &code
	case booking.StatusCancelled:
		at := b.CreatedAt
		cancelledAt = &at
	}
	return booking.Snapshot{
		ID:          b.ID,
		Reference:   b.Reference,
		TicketCode:  ticket,
		UserID:      b.UserID,
		Kind:        b.Kind,
		FlightID:    b.FlightID,
		OfferID:     b.OfferID,
		Quantity:    b.Quantity,
		Passengers:  b.Passengers,
		SeatNumbers: b.SeatNumbers,
		TotalCents:  b.TotalCents,
		Status:      b.Status,
		Archive:     b.Archive,
		ConfirmedAt: confirmedAt,
		CancelledAt: cancelledAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *BookingBuilder) ForFlight(id uuid.UUID) *BookingBuilder {
	b.Kind = booking.KindFlight
	b.FlightID = &id
	b.OfferID = nil
	return b
}

func (b *BookingBuilder) ForOffer(id uuid.UUID) *BookingBuilder {
	b.Kind = booking.KindPackage
	b.OfferID = &id
	b.FlightID = nil
	b.SeatNumbers = nil
	return b
}

func (b *BookingBuilder) OwnedBy(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithQuantity(q int) *BookingBuilder {
	b.Quantity = q
	b.Passengers = Passengers(q)
	return b
}

func (b *BookingBuilder) WithSeats(seats ...string) *BookingBuilder {
	b.SeatNumbers = seats
	return b
}

func (b *BookingBuilder) CreatedAgo(d time.Duration) *BookingBuilder {
	b.CreatedAt = BaseTime.Add(-d)
	return b
}

func (b *BookingBuilder) Archived(reason archive.Reason) *BookingBuilder {
	b.Archive = archive.Archived(reason, b.CreatedAt)
	return b
}

func (b *BookingBuilder) BuildFlightDTO() reqdto.CreateFlightBookingRequest {
	return reqdto.CreateFlightBookingRequest{
		FlightID:    *b.FlightID,
		Quantity:    b.Quantity,
		Passengers:  passengerDTOs(b.Passengers),
		SeatNumbers: b.SeatNumbers,
	}
}

func (b *BookingBuilder) BuildPackageDTO() reqdto.CreatePackageBookingRequest {
	return reqdto.CreatePackageBookingRequest{
		OfferID:    *b.OfferID,
		Persons:    b.Quantity,
		Passengers: passengerDTOs(b.Passengers),
	}
}

func passengerDTOs(ps []booking.Passenger) []reqdto.PassengerRequest {
	out := make([]reqdto.PassengerRequest, len(ps))
	for i, p := range ps {
		out[i] = reqdto.PassengerRequest{Name: p.Name, Email: p.Email, PassportNumber: p.PassportNumber}
	}
	return out
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	passengers := make([]queries.PassengerView, len(b.Passengers))
	for i, p := range b.Passengers {
		passengers[i] = queries.PassengerView{Name: p.Name, Email: p.Email, PassportNumber: p.PassportNumber}
	}
	seats := b.SeatNumbers
	if seats == nil {
		seats = []string{}
	}
	return &queries.BookingView{
		ID:          b.ID,
		Reference:   b.Reference,
		UserID:      b.UserID,
		Kind:        b.Kind.String(),
		FlightID:    b.FlightID,
		OfferID:     b.OfferID,
		Quantity:    b.Quantity,
		Passengers:  passengers,
		SeatNumbers: seats,
		TotalCents:  b.TotalCents,
		Status:      b.Status.String(),
		Archived:    b.Archive.IsArchived(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}
