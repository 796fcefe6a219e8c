package inventory

import (
	"travel-booking/internal/pkg/errs"
)

var (
	ErrInvalidCapacity  = errs.NewKind("total capacity must be at least 1", errs.ErrValidation)
	ErrCapacityRange    = errs.NewKind("available capacity out of range", errs.ErrValidation)
	ErrInvalidQuantity  = errs.NewKind("quantity must be at least 1", errs.ErrValidation)
	ErrNotEnoughSeats   = errs.NewKind("not enough seats available", errs.ErrInsufficientCapacity)
	ErrNoAvailableSlots = errs.NewKind("no available slots", errs.ErrInsufficientCapacity)
)

// Capacity is a seat counter with 0 <= available <= total.
type Capacity struct {
	total     int
	available int
}

func NewCapacity(total int) (Capacity, error) {
	if total < 1 {
		return Capacity{}, ErrInvalidCapacity
	}
	return Capacity{total: total, available: total}, nil
}

func ReconstructCapacity(total, available int) (Capacity, error) {
	if total < 1 {
		return Capacity{}, ErrInvalidCapacity
	}
	if available < 0 || available > total {
		return Capacity{}, ErrCapacityRange
	}
	return Capacity{total: total, available: available}, nil
}

func (c Capacity) Total() int     { return c.total }
func (c Capacity) Available() int { return c.available }
func (c Capacity) Booked() int    { return c.total - c.available }

// Reserve debits q units or fails without partial allocation.
func (c Capacity) Reserve(q int) (Capacity, error) {
	if q < 1 {
		return c, ErrInvalidQuantity
	}
	if c.available < q {
		return c, ErrNotEnoughSeats
	}
	c.available -= q
	return c, nil
}

// Release credits q units, clamped at total so a double release cannot overflow.
func (c Capacity) Release(q int) Capacity {
	if q < 1 {
		return c
	}
	c.available = min(c.total, c.available+q)
	return c
}

// SlotPool counts bookings against an optional ceiling. A nil max means unlimited.
type SlotPool struct {
	max     *int
	current int
}

func NewSlotPool(max *int) (SlotPool, error) {
	if max != nil && *max < 1 {
		return SlotPool{}, ErrInvalidCapacity
	}
	return SlotPool{max: copyInt(max)}, nil
}

func ReconstructSlotPool(max *int, current int) (SlotPool, error) {
	if current < 0 || (max != nil && current > *max) {
		return SlotPool{}, ErrCapacityRange
	}
	return SlotPool{max: copyInt(max), current: current}, nil
}

func (p SlotPool) Max() *int        { return copyInt(p.max) }
func (p SlotPool) Current() int     { return p.current }
func (p SlotPool) IsUnlimited() bool { return p.max == nil }

func (p SlotPool) HasFreeSlot() bool {
	return p.max == nil || p.current < *p.max
}

func (p SlotPool) Take() (SlotPool, error) {
	if !p.HasFreeSlot() {
		return p, ErrNoAvailableSlots
	}
	p.current++
	return p, nil
}

// Return gives a slot back, floored at zero.
func (p SlotPool) Return() SlotPool {
	if p.current > 0 {
		p.current--
	}
	return p
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
