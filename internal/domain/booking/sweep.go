package booking

import (
	"time"

	"travel-booking/internal/domain/archive"
)

type SweepAction int

const (
	SweepNone SweepAction = iota
	SweepArchive
	SweepExpire
)

// SweepOutcome is the action the sweeper should apply to one booking.
type SweepOutcome struct {
	Action SweepAction
	Reason archive.Reason
}

// SweepInput carries what the rules need beyond the booking itself.
// FlightDeparture is nil for package bookings.
type SweepInput struct {
	Now             time.Time
	FlightDeparture *time.Time
	Policy          archive.Policy
}

type bookingRule func(b *Booking, in SweepInput) (SweepOutcome, bool)

// Evaluated in order; the first match wins.
var bookingRules = []bookingRule{
	departedFlightRule,
	cancelledPackageRule,
	agedPackageRule,
	stalePendingRule,
}

// SweepDecision never mutates the booking. Archived bookings yield SweepNone.
func (b *Booking) SweepDecision(in SweepInput) SweepOutcome {
	if b.archive.IsArchived() {
		return SweepOutcome{}
	}
	for _, rule := range bookingRules {
		if out, ok := rule(b, in); ok {
			return out
		}
	}
	return SweepOutcome{}
}

// Apply performs a previously decided outcome.
func (b *Booking) Apply(out SweepOutcome, now time.Time) error {
	switch out.Action {
	case SweepArchive:
		return b.ArchiveBySweep(now, out.Reason)
	case SweepExpire:
		return b.Expire(now)
	}
	return nil
}

func departedFlightRule(b *Booking, in SweepInput) (SweepOutcome, bool) {
	if b.kind != KindFlight || in.FlightDeparture == nil || !in.FlightDeparture.Before(in.Now) {
		return SweepOutcome{}, false
	}
	return byStatus(b), true
}

func cancelledPackageRule(b *Booking, _ SweepInput) (SweepOutcome, bool) {
	if b.kind != KindPackage || b.status != StatusCancelled {
		return SweepOutcome{}, false
	}
	return SweepOutcome{Action: SweepArchive, Reason: archive.ReasonCancelled}, true
}

func agedPackageRule(b *Booking, in SweepInput) (SweepOutcome, bool) {
	if b.kind != KindPackage || !archive.OlderThan(b.createdAt, in.Now, in.Policy.PackageBookingAfter) {
		return SweepOutcome{}, false
	}
	return byStatus(b), true
}

func stalePendingRule(b *Booking, in SweepInput) (SweepOutcome, bool) {
	if b.status != StatusPending || !archive.OlderThan(b.createdAt, in.Now, in.Policy.PendingExpiresAfter) {
		return SweepOutcome{}, false
	}
	return SweepOutcome{Action: SweepExpire, Reason: archive.ReasonExpired}, true
}

// byStatus maps a finished booking to its archive outcome. Pending ones
// expire so their capacity is released.
func byStatus(b *Booking) SweepOutcome {
	switch b.status {
	case StatusConfirmed:
		return SweepOutcome{Action: SweepArchive, Reason: archive.ReasonCompleted}
	case StatusCancelled:
		return SweepOutcome{Action: SweepArchive, Reason: archive.ReasonCancelled}
	default:
		return SweepOutcome{Action: SweepExpire, Reason: archive.ReasonExpired}
	}
}
