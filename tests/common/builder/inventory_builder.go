//go:build unit || e2e

package builder

import (
	"time"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/domain/inventory"

	"github.com/google/uuid"
)

// BaseTime anchors builder defaults so tests stay deterministic.
var BaseTime = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

type FlightBuilder struct {
	ID             uuid.UUID
	FlightNumber   string
	Origin         string
	Destination    string
	DepartureTime  time.Time
	ArrivalTime    time.Time
	TotalSeats     int
	AvailableSeats int
	PriceCents     int64
	Status         inventory.FlightStatus
	Archive        archive.State
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewFlightBuilder() *FlightBuilder {
	return &FlightBuilder{
		ID:             uuid.New(),
		FlightNumber:   "TB101",
		Origin:         "NRT",
		Destination:    "CTS",
		DepartureTime:  BaseTime.Add(72 * time.Hour),
		ArrivalTime:    BaseTime.Add(74 * time.Hour),
		TotalSeats:     10,
		AvailableSeats: 10,
		PriceCents:     12000,
		Status:         inventory.FlightScheduled,
		Archive:        archive.Active(),
		CreatedAt:      BaseTime.Add(-24 * time.Hour),
		UpdatedAt:      BaseTime.Add(-24 * time.Hour),
	}
}

func (f *FlightBuilder) With(mutate func(*FlightBuilder)) *FlightBuilder {
	mutate(f)
	return f
}

func (f *FlightBuilder) Params() inventory.FlightParams {
	return inventory.FlightParams{
		FlightNumber:  f.FlightNumber,
		Origin:        f.Origin,
		Destination:   f.Destination,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		TotalSeats:    f.TotalSeats,
		PriceCents:    f.PriceCents,
	}
}

func (f *FlightBuilder) BuildDomain() *inventory.Flight {
	fl, err := inventory.ReconstructFlight(f.ID, f.Params(), f.AvailableSeats, f.Status, f.Archive,
		nil, nil, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		panic(err)
	}
	return fl
}

func (f *FlightBuilder) WithSeats(total, available int) *FlightBuilder {
	f.TotalSeats = total
	f.AvailableSeats = available
	return f
}

// Departed moves departure into the past relative to BaseTime.
func (f *FlightBuilder) Departed(ago time.Duration) *FlightBuilder {
	f.DepartureTime = BaseTime.Add(-ago)
	f.ArrivalTime = f.DepartureTime.Add(2 * time.Hour)
	return f
}

func (f *FlightBuilder) WithStatus(s inventory.FlightStatus) *FlightBuilder {
	f.Status = s
	return f
}

type OfferBuilder struct {
	ID              uuid.UUID
	Title           string
	Destination     string
	PriceCents      int64
	PricingUnit     inventory.PricingUnit
	ValidFrom       time.Time
	ValidTo         time.Time
	Visible         bool
	Bookable        bool
	MaxBookings     *int
	CurrentBookings int
	Archive         archive.State
	CreatedAt       time.Time
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		ID:          uuid.New(),
		Title:       "Okinawa Beach 3 Nights",
		Destination: "OKA",
		PriceCents:  80000,
		PricingUnit: inventory.PricePerPerson,
		ValidFrom:   BaseTime.Add(-7 * 24 * time.Hour),
		ValidTo:     BaseTime.Add(60 * 24 * time.Hour),
		Visible:     true,
		Bookable:    true,
		Archive:     archive.Active(),
		CreatedAt:   BaseTime.Add(-7 * 24 * time.Hour),
	}
}

func (o *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(o)
	return o
}

func (o *OfferBuilder) Params() inventory.OfferParams {
	return inventory.OfferParams{
		Title:       o.Title,
		Destination: o.Destination,
		PriceCents:  o.PriceCents,
		PricingUnit: o.PricingUnit,
		ValidFrom:   o.ValidFrom,
		ValidTo:     o.ValidTo,
		Visible:     o.Visible,
		Bookable:    o.Bookable,
		MaxBookings: o.MaxBookings,
	}
}

func (o *OfferBuilder) BuildDomain() *inventory.PackageOffer {
	offer, err := inventory.ReconstructPackageOffer(o.ID, o.Params(), o.CurrentBookings, o.Archive, o.CreatedAt, o.CreatedAt)
	if err != nil {
		panic(err)
	}
	return offer
}

func (o *OfferBuilder) WithSlots(max, current int) *OfferBuilder {
	o.MaxBookings = &max
	o.CurrentBookings = current
	return o
}

func (o *OfferBuilder) Flat() *OfferBuilder {
	o.PricingUnit = inventory.PriceFlat
	return o
}
