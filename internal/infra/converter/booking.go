package converter

import (
	"encoding/json"
	"time"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const BookingColumns = `b.id, b.reference, b.ticket_code, b.user_id, b.kind, b.flight_id, b.offer_id,
	b.quantity, b.passengers, b.seat_numbers, b.total_cents, b.status,
	b.archived, b.archived_at, b.archive_reason, b.confirmed_at, b.cancelled_at, b.created_at, b.updated_at`

type BookingRow struct {
	ID            uuid.UUID  `db:"id"`
	Reference     string     `db:"reference"`
	TicketCode    *string    `db:"ticket_code"`
	UserID        uuid.UUID  `db:"user_id"`
	Kind          string     `db:"kind"`
	FlightID      *uuid.UUID `db:"flight_id"`
	OfferID       *uuid.UUID `db:"offer_id"`
	Quantity      int        `db:"quantity"`
	Passengers    []byte     `db:"passengers"`
	SeatNumbers   []string   `db:"seat_numbers"`
	TotalCents    int64      `db:"total_cents"`
	Status        string     `db:"status"`
	Archived      bool       `db:"archived"`
	ArchivedAt    *time.Time `db:"archived_at"`
	ArchiveReason *string    `db:"archive_reason"`
	ConfirmedAt   *time.Time `db:"confirmed_at"`
	CancelledAt   *time.Time `db:"cancelled_at"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// BookingViewRow is a booking joined with the labels of its inventory.
type BookingViewRow struct {
	BookingRow
	FlightNumber  *string    `db:"flight_number"`
	DepartureTime *time.Time `db:"departure_time"`
	OfferTitle    *string    `db:"offer_title"`
}

// PassengersToJSON encodes passengers for the JSONB column.
func PassengersToJSON(passengers []booking.Passenger) ([]byte, error) {
	if passengers == nil {
		passengers = []booking.Passenger{}
	}
	b, err := json.Marshal(passengers)
	if err != nil {
		return nil, errs.Wrap(err, "encode passengers")
	}
	return b, nil
}

func passengersFromJSON(raw []byte) ([]booking.Passenger, error) {
	var out []booking.Passenger
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errs.Wrap(err, "decode passengers")
	}
	return out, nil
}

func BookingToDomain(row BookingRow) (*booking.Booking, error) {
	kind, err := booking.NewKind(row.Kind)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	state, err := archive.Reconstruct(row.Archived, row.ArchiveReason, row.ArchivedAt)
	if err != nil {
		return nil, err
	}
	passengers, err := passengersFromJSON(row.Passengers)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(booking.Snapshot{
		ID:          row.ID,
		Reference:   row.Reference,
		TicketCode:  row.TicketCode,
		UserID:      row.UserID,
		Kind:        kind,
		FlightID:    row.FlightID,
		OfferID:     row.OfferID,
		Quantity:    row.Quantity,
		Passengers:  passengers,
		SeatNumbers: row.SeatNumbers,
		TotalCents:  row.TotalCents,
		Status:      status,
		Archive:     state,
		ConfirmedAt: utcPtr(row.ConfirmedAt),
		CancelledAt: utcPtr(row.CancelledAt),
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	})
}

func BookingToView(row BookingViewRow) (*queries.BookingView, error) {
	passengers, err := passengersFromJSON(row.Passengers)
	if err != nil {
		return nil, err
	}
	views := make([]queries.PassengerView, 0, len(passengers))
	for _, p := range passengers {
		views = append(views, queries.PassengerView{
			Name:           p.Name,
			Email:          p.Email,
			PassportNumber: p.PassportNumber,
		})
	}
	seats := row.SeatNumbers
	if seats == nil {
		seats = []string{}
	}

	return &queries.BookingView{
		ID:            row.ID,
		Reference:     row.Reference,
		TicketCode:    row.TicketCode,
		UserID:        row.UserID,
		Kind:          row.Kind,
		FlightID:      row.FlightID,
		FlightNumber:  row.FlightNumber,
		DepartureTime: utcPtr(row.DepartureTime),
		OfferID:       row.OfferID,
		OfferTitle:    row.OfferTitle,
		Quantity:      row.Quantity,
		Passengers:    views,
		SeatNumbers:   seats,
		TotalCents:    row.TotalCents,
		Status:        row.Status,
		Archived:      row.Archived,
		ArchiveReason: row.ArchiveReason,
		ArchivedAt:    utcPtr(row.ArchivedAt),
		ConfirmedAt:   utcPtr(row.ConfirmedAt),
		CancelledAt:   utcPtr(row.CancelledAt),
		CreatedAt:     row.CreatedAt.UTC(),
		UpdatedAt:     row.UpdatedAt.UTC(),
	}, nil
}
