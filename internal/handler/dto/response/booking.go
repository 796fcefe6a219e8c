package response

import (
	"time"

	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PassengerResponse struct {
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	PassportNumber string `json:"passportNumber,omitempty"`
}

type BookingResponse struct {
	ID            uuid.UUID           `json:"id"`
	Reference     string              `json:"reference"`
	TicketCode    *string             `json:"ticketCode,omitempty"`
	UserID        uuid.UUID           `json:"userId"`
	Kind          string              `json:"kind"`
	FlightID      *uuid.UUID          `json:"flightId,omitempty"`
	FlightNumber  *string             `json:"flightNumber,omitempty"`
	DepartureTime *time.Time          `json:"departureTime,omitempty"`
	OfferID       *uuid.UUID          `json:"offerId,omitempty"`
	OfferTitle    *string             `json:"offerTitle,omitempty"`
	Quantity      int                 `json:"quantity"`
	Passengers    []PassengerResponse `json:"passengers"`
	SeatNumbers   []string            `json:"seatNumbers"`
	TotalCents    int64               `json:"totalCents"`
	Status        string              `json:"status"`
	Archived      bool                `json:"archived"`
	ArchiveReason *string             `json:"archiveReason,omitempty"`
	ArchivedAt    *time.Time          `json:"archivedAt,omitempty"`
	ConfirmedAt   *time.Time          `json:"confirmedAt,omitempty"`
	CancelledAt   *time.Time          `json:"cancelledAt,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor *string            `json:"nextCursor,omitempty"`
}

// BookingStatusResponse answers writes: create, cancel, confirm.
type BookingStatusResponse struct {
	ID        uuid.UUID `json:"id"`
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	out, err := copyInto[BookingResponse](v)
	if err != nil {
		return nil, err
	}
	if out.SeatNumbers == nil {
		out.SeatNumbers = []string{}
	}
	return out, nil
}

func FromBookingPage(p *queries.BookingPage) (*BookingListResponse, error) {
	items := make([]*BookingResponse, 0, len(p.Items))
	for _, v := range p.Items {
		item, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &BookingListResponse{Items: items, NextCursor: p.NextCursor}, nil
}

func FromBookingResult(r *commands.BookingResult) *BookingStatusResponse {
	return &BookingStatusResponse{
		ID:        r.BookingID,
		Reference: r.Reference,
		Status:    r.Status.String(),
	}
}
