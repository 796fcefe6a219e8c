package queries

//go:generate mockgen -destination=../../../tests/mock/queries/mock_queries.go -package=queriesmock travel-booking/internal/usecase/queries ArchiveQueries,BookingQueries,InventoryQueries,UserQueries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	Archived  bool       `json:"archived"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type PassengerView struct {
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	PassportNumber string `json:"passport_number,omitempty"`
}

// BookingView represents a booking joined with its inventory labels
type BookingView struct {
	ID            uuid.UUID       `json:"id"`
	Reference     string          `json:"reference"`
	TicketCode    *string         `json:"ticket_code,omitempty"`
	UserID        uuid.UUID       `json:"user_id"`
	Kind          string          `json:"kind"`
	FlightID      *uuid.UUID      `json:"flight_id,omitempty"`
	FlightNumber  *string         `json:"flight_number,omitempty"`
	DepartureTime *time.Time      `json:"departure_time,omitempty"`
	OfferID       *uuid.UUID      `json:"offer_id,omitempty"`
	OfferTitle    *string         `json:"offer_title,omitempty"`
	Quantity      int             `json:"quantity"`
	Passengers    []PassengerView `json:"passengers"`
	SeatNumbers   []string        `json:"seat_numbers"`
	TotalCents    int64           `json:"total_cents"`
	Status        string          `json:"status"`
	Archived      bool            `json:"archived"`
	ArchiveReason *string         `json:"archive_reason,omitempty"`
	ArchivedAt    *time.Time      `json:"archived_at,omitempty"`
	ConfirmedAt   *time.Time      `json:"confirmed_at,omitempty"`
	CancelledAt   *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type FlightView struct {
	ID             uuid.UUID  `json:"id"`
	FlightNumber   string     `json:"flight_number"`
	Origin         string     `json:"origin"`
	Destination    string     `json:"destination"`
	DepartureTime  time.Time  `json:"departure_time"`
	ArrivalTime    time.Time  `json:"arrival_time"`
	TotalSeats     int        `json:"total_seats"`
	AvailableSeats int        `json:"available_seats"`
	PriceCents     int64      `json:"price_cents"`
	Status         string     `json:"status"`
	Archived       bool       `json:"archived"`
	ArchiveReason  *string    `json:"archive_reason,omitempty"`
	ArchivedAt     *time.Time `json:"archived_at,omitempty"`
	BookedSeats    *int       `json:"booked_seats,omitempty"`
	RevenueCents   *int64     `json:"revenue_cents,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type OfferView struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Destination     string     `json:"destination"`
	PriceCents      int64      `json:"price_cents"`
	PricingUnit     string     `json:"pricing_unit"`
	ValidFrom       time.Time  `json:"valid_from"`
	ValidTo         time.Time  `json:"valid_to"`
	Visible         bool       `json:"visible"`
	Bookable        bool       `json:"bookable"`
	MaxBookings     *int       `json:"max_bookings,omitempty"`
	CurrentBookings int        `json:"current_bookings"`
	Archived        bool       `json:"archived"`
	ArchiveReason   *string    `json:"archive_reason,omitempty"`
	ArchivedAt      *time.Time `json:"archived_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// KindStats counts records of one kind by archive state
type KindStats struct {
	Total     int `json:"total"`
	Archived  int `json:"archived"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

type ArchiveStats struct {
	Flights  KindStats `json:"flights"`
	Bookings KindStats `json:"bookings"`
	Packages KindStats `json:"packages"`
}
