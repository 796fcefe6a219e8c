package notify

import (
	"time"

	"travel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Message is the JSON body published for every lifecycle event.
type Message struct {
	Event      string     `json:"event"`
	BookingID  uuid.UUID  `json:"booking_id"`
	Reference  string     `json:"reference"`
	UserID     uuid.UUID  `json:"user_id"`
	Kind       string     `json:"kind"`
	Status     string     `json:"status"`
	TicketCode *string    `json:"ticket_code,omitempty"`
	TotalCents int64      `json:"total_cents"`
	FlightID   *uuid.UUID `json:"flight_id,omitempty"`
	OfferID    *uuid.UUID `json:"offer_id,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

func NewMessage(userID uuid.UUID, b *booking.Booking, event booking.Event, at time.Time) Message {
	return Message{
		Event:      event.String(),
		BookingID:  b.ID(),
		Reference:  b.Reference(),
		UserID:     userID,
		Kind:       b.Kind().String(),
		Status:     b.Status().String(),
		TicketCode: b.TicketCode(),
		TotalCents: b.TotalCents(),
		FlightID:   b.FlightID(),
		OfferID:    b.OfferID(),
		OccurredAt: at,
	}
}
