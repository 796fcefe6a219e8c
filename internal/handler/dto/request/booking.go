package request

import (
	"strings"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type PassengerRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email,omitempty"`
	PassportNumber string `json:"passportNumber,omitempty"`
}

// Count limits are enforced by the domain so the error carries its kind.
type CreateFlightBookingRequest struct {
	FlightID    uuid.UUID          `json:"flightId" binding:"required"`
	Quantity    int                `json:"quantity" binding:"required"`
	Passengers  []PassengerRequest `json:"passengers" binding:"required,dive"`
	SeatNumbers []string           `json:"seatNumbers,omitempty"`
}

func (r *CreateFlightBookingRequest) ToInput(userID uuid.UUID) commands.FlightBookingInput {
	var seats []string
	for _, s := range r.SeatNumbers {
		seats = append(seats, strings.TrimSpace(s))
	}
	return commands.FlightBookingInput{
		UserID:      userID,
		FlightID:    r.FlightID,
		Quantity:    r.Quantity,
		Passengers:  toPassengers(r.Passengers),
		SeatNumbers: seats,
	}
}

type CreatePackageBookingRequest struct {
	OfferID    uuid.UUID          `json:"offerId" binding:"required"`
	Persons    int                `json:"persons" binding:"required"`
	Passengers []PassengerRequest `json:"passengers" binding:"required,dive"`
}

func (r *CreatePackageBookingRequest) ToInput(userID uuid.UUID) commands.PackageBookingInput {
	return commands.PackageBookingInput{
		UserID:     userID,
		OfferID:    r.OfferID,
		Persons:    r.Persons,
		Passengers: toPassengers(r.Passengers),
	}
}

func toPassengers(in []PassengerRequest) []booking.Passenger {
	out := make([]booking.Passenger, 0, len(in))
	for _, p := range in {
		out = append(out, booking.Passenger{
			Name:           strings.TrimSpace(p.Name),
			Email:          strings.TrimSpace(p.Email),
			PassportNumber: strings.TrimSpace(p.PassportNumber),
		})
	}
	return out
}

// ListBookingsQuery binds the listing query string. Archived is tri-state:
// absent lists both.
type ListBookingsQuery struct {
	Archived *bool  `form:"archived"`
	Refresh  bool   `form:"refresh"`
	After    string `form:"after"`
	Limit    int    `form:"limit"`
}
