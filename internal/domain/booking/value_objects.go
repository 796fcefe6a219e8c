package booking

import (
	"net/mail"
	"strings"

	"travel-booking/internal/pkg/errs"
)

var (
	ErrInvalidSeatCount       = errs.NewKind("seat count must be between 1 and 10", errs.ErrValidation)
	ErrInvalidPersonCount     = errs.NewKind("person count must be between 1 and 20", errs.ErrValidation)
	ErrPassengerCountMismatch = errs.NewKind("passenger count must match quantity", errs.ErrValidation)
	ErrPassengerNameRequired  = errs.NewKind("passenger name is required", errs.ErrValidation)
	ErrInvalidPassengerEmail  = errs.NewKind("invalid passenger email", errs.ErrValidation)
	ErrSeatCountMismatch      = errs.NewKind("seat numbers must match quantity", errs.ErrValidation)
	ErrDuplicateSeat          = errs.NewKind("seat numbers must be unique", errs.ErrValidation)
	ErrInvalidSeatNumber      = errs.NewKind("seat number cannot be empty", errs.ErrValidation)
)

type Passenger struct {
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	PassportNumber string `json:"passport_number,omitempty"`
}

func (p Passenger) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrPassengerNameRequired
	}
	if p.Email != "" {
		if _, err := mail.ParseAddress(p.Email); err != nil {
			return errs.Wrapf(ErrInvalidPassengerEmail, "passenger %q", p.Name)
		}
	}
	return nil
}

func validatePassengers(passengers []Passenger, quantity int) ([]Passenger, error) {
	if len(passengers) != quantity {
		return nil, ErrPassengerCountMismatch
	}
	out := make([]Passenger, len(passengers))
	for i, p := range passengers {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		out[i] = Passenger{
			Name:           strings.TrimSpace(p.Name),
			Email:          strings.TrimSpace(p.Email),
			PassportNumber: strings.ToUpper(strings.TrimSpace(p.PassportNumber)),
		}
	}
	return out, nil
}

// SeatNumbers is an explicit seat selection; the zero value means none.
type SeatNumbers struct {
	values []string
}

func NewSeatNumbers(raw []string, quantity int) (SeatNumbers, error) {
	if len(raw) == 0 {
		return SeatNumbers{}, nil
	}
	if len(raw) != quantity {
		return SeatNumbers{}, ErrSeatCountMismatch
	}
	seen := make(map[string]struct{}, len(raw))
	values := make([]string, 0, len(raw))
	for _, s := range raw {
		seat := strings.ToUpper(strings.TrimSpace(s))
		if seat == "" {
			return SeatNumbers{}, ErrInvalidSeatNumber
		}
		if _, dup := seen[seat]; dup {
			return SeatNumbers{}, errs.Wrapf(ErrDuplicateSeat, "seat %s", seat)
		}
		seen[seat] = struct{}{}
		values = append(values, seat)
	}
	return SeatNumbers{values: values}, nil
}

func (s SeatNumbers) IsEmpty() bool { return len(s.values) == 0 }

func (s SeatNumbers) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// Overlap returns the seats present in both selections, in s order.
func (s SeatNumbers) Overlap(taken []string) []string {
	set := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		set[t] = struct{}{}
	}
	var out []string
	for _, v := range s.values {
		if _, ok := set[v]; ok {
			out = append(out, v)
		}
	}
	return out
}
