package request

import (
	"time"

	"travel-booking/internal/domain/inventory"
)

type CreateFlightRequest struct {
	FlightNumber  string    `json:"flightNumber" binding:"required"`
	Origin        string    `json:"origin" binding:"required"`
	Destination   string    `json:"destination" binding:"required"`
	DepartureTime time.Time `json:"departureTime" binding:"required"`
	ArrivalTime   time.Time `json:"arrivalTime" binding:"required"`
	TotalSeats    int       `json:"totalSeats" binding:"required,min=1"`
	PriceCents    int64     `json:"priceCents" binding:"min=0"`
}

func (r *CreateFlightRequest) ToParams() inventory.FlightParams {
	return inventory.FlightParams{
		FlightNumber:  r.FlightNumber,
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureTime: r.DepartureTime,
		ArrivalTime:   r.ArrivalTime,
		TotalSeats:    r.TotalSeats,
		PriceCents:    r.PriceCents,
	}
}

type ChangeFlightStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *ChangeFlightStatusRequest) ToStatus() (inventory.FlightStatus, error) {
	return inventory.NewFlightStatus(r.Status)
}

type CreateOfferRequest struct {
	Title       string    `json:"title" binding:"required"`
	Destination string    `json:"destination" binding:"required"`
	PriceCents  int64     `json:"priceCents" binding:"min=0"`
	PricingUnit string    `json:"pricingUnit" binding:"required"`
	ValidFrom   time.Time `json:"validFrom" binding:"required"`
	ValidTo     time.Time `json:"validTo" binding:"required"`
	Visible     *bool     `json:"visible"`
	Bookable    *bool     `json:"bookable"`
	MaxBookings *int      `json:"maxBookings,omitempty"`
}

// ToParams defaults Visible and Bookable to true when omitted.
func (r *CreateOfferRequest) ToParams() (inventory.OfferParams, error) {
	unit, err := inventory.NewPricingUnit(r.PricingUnit)
	if err != nil {
		return inventory.OfferParams{}, err
	}
	return inventory.OfferParams{
		Title:       r.Title,
		Destination: r.Destination,
		PriceCents:  r.PriceCents,
		PricingUnit: unit,
		ValidFrom:   r.ValidFrom,
		ValidTo:     r.ValidTo,
		Visible:     r.Visible == nil || *r.Visible,
		Bookable:    r.Bookable == nil || *r.Bookable,
		MaxBookings: r.MaxBookings,
	}, nil
}
