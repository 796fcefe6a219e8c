package inventory

import (
	"strings"
	"time"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/ids"

	"github.com/google/uuid"
)

var (
	ErrFlightNumberRequired = errs.NewKind("flight number is required", errs.ErrValidation)
	ErrInvalidRoute         = errs.NewKind("origin and destination must differ", errs.ErrValidation)
	ErrInvalidSchedule      = errs.NewKind("arrival must be after departure", errs.ErrValidation)
	ErrNegativePrice        = errs.NewKind("price cannot be negative", errs.ErrValidation)
	ErrFlightDeparted       = errs.NewKind("flight has already departed", errs.ErrInventoryUnavailable)
	ErrFlightNotBookable    = errs.NewKind("flight is not open for booking", errs.ErrInventoryUnavailable)
	ErrInventoryArchived    = errs.NewKind("inventory is archived", errs.ErrInventoryUnavailable)
	ErrFlightStatusFrozen   = errs.NewKind("flight status can no longer change", errs.ErrIllegalTransition)
)

type FlightParams struct {
	FlightNumber  string
	Origin        string
	Destination   string
	DepartureTime time.Time
	ArrivalTime   time.Time
	TotalSeats    int
	PriceCents    int64
}

type Flight struct {
	id            uuid.UUID
	flightNumber  string
	origin        string
	destination   string
	departureTime time.Time
	arrivalTime   time.Time
	capacity      Capacity
	priceCents    int64
	status        FlightStatus
	archive       archive.State
	bookedSeats   *int
	revenueCents  *int64
	createdAt     time.Time
	updatedAt     time.Time
}

func NewFlight(p FlightParams, now time.Time) (*Flight, error) {
	number := strings.ToUpper(strings.TrimSpace(p.FlightNumber))
	if number == "" {
		return nil, ErrFlightNumberRequired
	}
	origin := strings.ToUpper(strings.TrimSpace(p.Origin))
	destination := strings.ToUpper(strings.TrimSpace(p.Destination))
	if origin == "" || destination == "" || origin == destination {
		return nil, ErrInvalidRoute
	}
	if !p.ArrivalTime.After(p.DepartureTime) {
		return nil, ErrInvalidSchedule
	}
	if p.PriceCents < 0 {
		return nil, ErrNegativePrice
	}
	capacity, err := NewCapacity(p.TotalSeats)
	if err != nil {
		return nil, err
	}

	return &Flight{
		id:            ids.New(),
		flightNumber:  number,
		origin:        origin,
		destination:   destination,
		departureTime: p.DepartureTime,
		arrivalTime:   p.ArrivalTime,
		capacity:      capacity,
		priceCents:    p.PriceCents,
		status:        FlightScheduled,
		archive:       archive.Active(),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructFlight(
	id uuid.UUID,
	p FlightParams,
	available int,
	status FlightStatus,
	archiveState archive.State,
	bookedSeats *int,
	revenueCents *int64,
	createdAt, updatedAt time.Time,
) (*Flight, error) {
	capacity, err := ReconstructCapacity(p.TotalSeats, available)
	if err != nil {
		return nil, err
	}
	return &Flight{
		id:            id,
		flightNumber:  p.FlightNumber,
		origin:        p.Origin,
		destination:   p.Destination,
		departureTime: p.DepartureTime,
		arrivalTime:   p.ArrivalTime,
		capacity:      capacity,
		priceCents:    p.PriceCents,
		status:        status,
		archive:       archiveState,
		bookedSeats:   bookedSeats,
		revenueCents:  revenueCents,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (f *Flight) ID() uuid.UUID            { return f.id }
func (f *Flight) FlightNumber() string     { return f.flightNumber }
func (f *Flight) Origin() string           { return f.origin }
func (f *Flight) Destination() string      { return f.destination }
func (f *Flight) DepartureTime() time.Time { return f.departureTime }
func (f *Flight) ArrivalTime() time.Time   { return f.arrivalTime }
func (f *Flight) Capacity() Capacity       { return f.capacity }
func (f *Flight) PriceCents() int64        { return f.priceCents }
func (f *Flight) Status() FlightStatus     { return f.status }
func (f *Flight) Archive() archive.State   { return f.archive }
func (f *Flight) BookedSeats() *int        { return f.bookedSeats }
func (f *Flight) RevenueCents() *int64     { return f.revenueCents }
func (f *Flight) CreatedAt() time.Time     { return f.createdAt }
func (f *Flight) UpdatedAt() time.Time     { return f.updatedAt }

func (f *Flight) HasDeparted(now time.Time) bool {
	return f.departureTime.Before(now)
}

// CheckBookable rejects archived, terminal and departed flights.
func (f *Flight) CheckBookable(now time.Time) error {
	switch {
	case f.archive.IsArchived():
		return ErrInventoryArchived
	case f.status.IsTerminal():
		return ErrFlightNotBookable
	case !f.departureTime.After(now):
		return ErrFlightDeparted
	}
	return nil
}

func (f *Flight) PriceFor(seats int) int64 {
	return f.priceCents * int64(seats)
}

// ChangeStatus is the operator path; completion belongs to the sweep.
func (f *Flight) ChangeStatus(status FlightStatus, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidFlightStatus
	}
	if status == FlightCompleted || f.status.IsTerminal() || f.archive.IsArchived() {
		return ErrFlightStatusFrozen
	}
	f.status = status
	f.updatedAt = now
	return nil
}

func (f *Flight) ArchiveManually(now time.Time) error {
	next, err := f.archive.Archive(archive.ReasonManual, now)
	if err != nil {
		return err
	}
	f.archive = next
	f.updatedAt = now
	return nil
}

func (f *Flight) Restore(now time.Time) error {
	next, err := f.archive.Restore()
	if err != nil {
		return err
	}
	f.archive = next
	f.updatedAt = now
	return nil
}

// FlightSweep reports what a sweep changed on one flight.
type FlightSweep struct {
	StatusChanged bool
	Archived      bool
	Reason        archive.Reason
}

type flightRule struct {
	matches func(f *Flight, now time.Time, p archive.Policy) bool
	reason  func(f *Flight) archive.Reason
}

// Evaluated in order; the first match wins.
var flightRules = []flightRule{
	{
		matches: func(f *Flight, now time.Time, _ archive.Policy) bool { return f.HasDeparted(now) },
		reason: func(f *Flight) archive.Reason {
			if f.status == FlightCancelled {
				return archive.ReasonCancelled
			}
			return archive.ReasonCompleted
		},
	},
	{
		matches: func(f *Flight, now time.Time, p archive.Policy) bool {
			return f.status == FlightCancelled && archive.OlderThan(f.updatedAt, now, p.CancelledFlightAfter)
		},
		reason: func(*Flight) archive.Reason { return archive.ReasonCancelled },
	},
	{
		matches: func(f *Flight, now time.Time, p archive.Policy) bool {
			return f.status == FlightCompleted && archive.OlderThan(f.departureTime, now, p.CompletedFlightAfter)
		},
		reason: func(*Flight) archive.Reason { return archive.ReasonCompleted },
	},
}

// Sweep applies the flight archival rules. Archived flights are left untouched.
func (f *Flight) Sweep(now time.Time, p archive.Policy) FlightSweep {
	if f.archive.IsArchived() {
		return FlightSweep{}
	}
	for _, rule := range flightRules {
		if !rule.matches(f, now, p) {
			continue
		}
		out := FlightSweep{Archived: true, Reason: rule.reason(f)}
		if out.Reason == archive.ReasonCompleted {
			if f.status != FlightCompleted {
				f.status = FlightCompleted
				out.StatusChanged = true
			}
			f.snapshotSales()
		}
		f.archive = archive.Archived(out.Reason, now)
		f.updatedAt = now
		return out
	}
	return FlightSweep{}
}

// snapshotSales records seats sold and revenue once; later sweeps keep the first values.
func (f *Flight) snapshotSales() {
	if f.bookedSeats != nil {
		return
	}
	booked := f.capacity.Booked()
	revenue := int64(booked) * f.priceCents
	f.bookedSeats = &booked
	f.revenueCents = &revenue
}
