package errs

import (
	"errors"
	"strings"
)

// Error kinds shared by the domain and usecase layers.
// Handlers classify with Is and never inspect messages.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrSeatConflict         = errors.New("seat conflict")
	ErrValidation           = errors.New("validation error")
	ErrIllegalTransition    = errors.New("illegal transition")
	ErrUnauthorized         = errors.New("not allowed to act on this record")
	ErrInventoryUnavailable = errors.New("inventory unavailable")
	ErrInventoryInUse       = errors.New("inventory has active bookings")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// SeatConflictError names the requested seats that are already held.
type SeatConflictError struct {
	Seats []string
}

func (e *SeatConflictError) Error() string {
	return "seats already taken: " + strings.Join(e.Seats, ", ")
}

func NewSeatConflict(seats []string) error {
	return Mark(&SeatConflictError{Seats: seats}, ErrSeatConflict)
}

// ConflictingSeats returns the seats carried by a seat conflict, if any.
func ConflictingSeats(err error) ([]string, bool) {
	var sc *SeatConflictError
	if As(err, &sc) {
		return sc.Seats, true
	}
	return nil, false
}

var kindCodes = []struct {
	kind error
	code string
}{
	{ErrNotFound, "not_found"},
	{ErrInsufficientCapacity, "insufficient_capacity"},
	{ErrSeatConflict, "seat_conflict"},
	{ErrValidation, "validation"},
	{ErrIllegalTransition, "illegal_transition"},
	{ErrUnauthorized, "unauthorized"},
	{ErrInventoryUnavailable, "inventory_unavailable"},
	{ErrInventoryInUse, "inventory_in_use"},
}

// Code names the taxonomy kind of err, or "internal" when it has none.
func Code(err error) string {
	for _, k := range kindCodes {
		if Is(err, k.kind) {
			return k.code
		}
	}
	return "internal"
}
