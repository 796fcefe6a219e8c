package converter

import (
	"time"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const FlightColumns = `id, flight_number, origin, destination, departure_time, arrival_time,
	total_seats, available_seats, price_cents, status,
	archived, archived_at, archive_reason, booked_seats, revenue_cents, created_at, updated_at`

type FlightRow struct {
	ID             uuid.UUID  `db:"id"`
	FlightNumber   string     `db:"flight_number"`
	Origin         string     `db:"origin"`
	Destination    string     `db:"destination"`
	DepartureTime  time.Time  `db:"departure_time"`
	ArrivalTime    time.Time  `db:"arrival_time"`
	TotalSeats     int        `db:"total_seats"`
	AvailableSeats int        `db:"available_seats"`
	PriceCents     int64      `db:"price_cents"`
	Status         string     `db:"status"`
	Archived       bool       `db:"archived"`
	ArchivedAt     *time.Time `db:"archived_at"`
	ArchiveReason  *string    `db:"archive_reason"`
	BookedSeats    *int       `db:"booked_seats"`
	RevenueCents   *int64     `db:"revenue_cents"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func FlightToDomain(row FlightRow) (*inventory.Flight, error) {
	status, err := inventory.NewFlightStatus(row.Status)
	if err != nil {
		return nil, err
	}
	state, err := archive.Reconstruct(row.Archived, row.ArchiveReason, row.ArchivedAt)
	if err != nil {
		return nil, err
	}
	return inventory.ReconstructFlight(
		row.ID,
		inventory.FlightParams{
			FlightNumber:  row.FlightNumber,
			Origin:        row.Origin,
			Destination:   row.Destination,
			DepartureTime: row.DepartureTime.UTC(),
			ArrivalTime:   row.ArrivalTime.UTC(),
			TotalSeats:    row.TotalSeats,
			PriceCents:    row.PriceCents,
		},
		row.AvailableSeats,
		status,
		state,
		row.BookedSeats,
		row.RevenueCents,
		row.CreatedAt.UTC(),
		row.UpdatedAt.UTC(),
	)
}

func FlightToView(row FlightRow) *queries.FlightView {
	return &queries.FlightView{
		ID:             row.ID,
		FlightNumber:   row.FlightNumber,
		Origin:         row.Origin,
		Destination:    row.Destination,
		DepartureTime:  row.DepartureTime.UTC(),
		ArrivalTime:    row.ArrivalTime.UTC(),
		TotalSeats:     row.TotalSeats,
		AvailableSeats: row.AvailableSeats,
		PriceCents:     row.PriceCents,
		Status:         row.Status,
		Archived:       row.Archived,
		ArchiveReason:  row.ArchiveReason,
		ArchivedAt:     utcPtr(row.ArchivedAt),
		BookedSeats:    row.BookedSeats,
		RevenueCents:   row.RevenueCents,
		CreatedAt:      row.CreatedAt.UTC(),
		UpdatedAt:      row.UpdatedAt.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
