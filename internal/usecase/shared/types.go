package shared

import (
	"time"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// InventoryRef points at a flight or a package offer.
type InventoryRef struct {
	Kind booking.Kind
	ID   uuid.UUID
}

func FlightRef(id uuid.UUID) InventoryRef {
	return InventoryRef{Kind: booking.KindFlight, ID: id}
}

func OfferRef(id uuid.UUID) InventoryRef {
	return InventoryRef{Kind: booking.KindPackage, ID: id}
}

// BookingSweepFilter narrows candidate bookings; the domain rules make the
// final decision on each one.
type BookingSweepFilter struct {
	Now    time.Time
	Policy archive.Policy
	UserID *uuid.UUID
}
