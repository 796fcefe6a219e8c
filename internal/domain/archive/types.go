package archive

import (
	"travel-booking/internal/pkg/errs"
)

var (
	ErrInvalidReason = errs.NewKind("invalid archive reason", errs.ErrValidation)
	ErrInvalidKind   = errs.NewKind("invalid archive kind", errs.ErrValidation)
)

type Reason string

const (
	ReasonCompleted Reason = "completed"
	ReasonCancelled Reason = "cancelled"
	ReasonExpired   Reason = "expired"
	ReasonManual    Reason = "manual"
)

func (r Reason) String() string {
	return string(r)
}

func (r Reason) IsValid() bool {
	switch r {
	case ReasonCompleted, ReasonCancelled, ReasonExpired, ReasonManual:
		return true
	default:
		return false
	}
}

func NewReason(s string) (Reason, error) {
	r := Reason(s)
	if !r.IsValid() {
		return "", ErrInvalidReason
	}
	return r, nil
}

// Kind names the record families that carry an archive state.
type Kind string

const (
	KindFlight  Kind = "flight"
	KindPackage Kind = "package"
	KindBooking Kind = "booking"
	KindUser    Kind = "user"
)

func (k Kind) String() string {
	return string(k)
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	switch k {
	case KindFlight, KindPackage, KindBooking, KindUser:
		return k, nil
	default:
		return "", ErrInvalidKind
	}
}
