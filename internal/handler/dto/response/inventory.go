package response

import (
	"time"

	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type FlightResponse struct {
	ID             uuid.UUID  `json:"id"`
	FlightNumber   string     `json:"flightNumber"`
	Origin         string     `json:"origin"`
	Destination    string     `json:"destination"`
	DepartureTime  time.Time  `json:"departureTime"`
	ArrivalTime    time.Time  `json:"arrivalTime"`
	TotalSeats     int        `json:"totalSeats"`
	AvailableSeats int        `json:"availableSeats"`
	PriceCents     int64      `json:"priceCents"`
	Status         string     `json:"status"`
	Archived       bool       `json:"archived"`
	ArchiveReason  *string    `json:"archiveReason,omitempty"`
	ArchivedAt     *time.Time `json:"archivedAt,omitempty"`
	BookedSeats    *int       `json:"bookedSeats,omitempty"`
	RevenueCents   *int64     `json:"revenueCents,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type OfferResponse struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Destination     string     `json:"destination"`
	PriceCents      int64      `json:"priceCents"`
	PricingUnit     string     `json:"pricingUnit"`
	ValidFrom       time.Time  `json:"validFrom"`
	ValidTo         time.Time  `json:"validTo"`
	Visible         bool       `json:"visible"`
	Bookable        bool       `json:"bookable"`
	MaxBookings     *int       `json:"maxBookings,omitempty"`
	CurrentBookings int        `json:"currentBookings"`
	Archived        bool       `json:"archived"`
	ArchiveReason   *string    `json:"archiveReason,omitempty"`
	ArchivedAt      *time.Time `json:"archivedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromFlightView(v *queries.FlightView) (*FlightResponse, error) {
	return copyInto[FlightResponse](v)
}

func FromFlightViews(vs []*queries.FlightView) ([]*FlightResponse, error) {
	return copyAll[FlightResponse](vs)
}

func FromOfferView(v *queries.OfferView) (*OfferResponse, error) {
	return copyInto[OfferResponse](v)
}

func FromOfferViews(vs []*queries.OfferView) ([]*OfferResponse, error) {
	return copyAll[OfferResponse](vs)
}
