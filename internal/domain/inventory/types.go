package inventory

import "travel-booking/internal/pkg/errs"

var (
	ErrInvalidFlightStatus = errs.NewKind("invalid flight status", errs.ErrValidation)
	ErrInvalidPricingUnit  = errs.NewKind("invalid pricing unit", errs.ErrValidation)
)

type FlightStatus string

const (
	FlightScheduled FlightStatus = "scheduled"
	FlightActive    FlightStatus = "active"
	FlightDelayed   FlightStatus = "delayed"
	FlightCancelled FlightStatus = "cancelled"
	FlightCompleted FlightStatus = "completed"
)

func (s FlightStatus) String() string {
	return string(s)
}

func (s FlightStatus) IsValid() bool {
	switch s {
	case FlightScheduled, FlightActive, FlightDelayed, FlightCancelled, FlightCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal is true once a flight can no longer take bookings.
func (s FlightStatus) IsTerminal() bool {
	return s == FlightCancelled || s == FlightCompleted
}

func NewFlightStatus(s string) (FlightStatus, error) {
	st := FlightStatus(s)
	if !st.IsValid() {
		return "", ErrInvalidFlightStatus
	}
	return st, nil
}

type PricingUnit string

const (
	PricePerPerson PricingUnit = "per_person"
	PriceFlat      PricingUnit = "flat"
)

func (u PricingUnit) String() string {
	return string(u)
}

func NewPricingUnit(s string) (PricingUnit, error) {
	u := PricingUnit(s)
	switch u {
	case PricePerPerson, PriceFlat:
		return u, nil
	default:
		return "", ErrInvalidPricingUnit
	}
}
