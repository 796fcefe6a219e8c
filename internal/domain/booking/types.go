package booking

import "travel-booking/internal/pkg/errs"

var (
	ErrInvalidKind   = errs.NewKind("invalid booking kind", errs.ErrValidation)
	ErrInvalidStatus = errs.NewKind("invalid booking status", errs.ErrValidation)
)

type Kind string

const (
	KindFlight  Kind = "flight"
	KindPackage Kind = "package"
)

func (k Kind) String() string {
	return string(k)
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	switch k {
	case KindFlight, KindPackage:
		return k, nil
	default:
		return "", ErrInvalidKind
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// HoldsCapacity is true while the booking still occupies seats or a slot.
func (s Status) HoldsCapacity() bool {
	return s == StatusPending || s == StatusConfirmed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Event names the notifications emitted on lifecycle transitions.
type Event string

const (
	EventCreated   Event = "booking.created"
	EventConfirmed Event = "booking.confirmed"
	EventCancelled Event = "booking.cancelled"
	EventExpired   Event = "booking.expired"
)

func (e Event) String() string {
	return string(e)
}

const (
	MaxSeatsPerBooking   = 10
	MaxPersonsPerPackage = 20
)
