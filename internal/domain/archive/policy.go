package archive

import "time"

// Policy carries the age thresholds used by the sweep rules.
type Policy struct {
	CancelledFlightAfter time.Duration
	CompletedFlightAfter time.Duration
	PackageBookingAfter  time.Duration
	PendingExpiresAfter  time.Duration
	UserRestoreGrace     time.Duration
}

const day = 24 * time.Hour

func DefaultPolicy() Policy {
	return Policy{
		CancelledFlightAfter: 7 * day,
		CompletedFlightAfter: 30 * day,
		PackageBookingAfter:  90 * day,
		PendingExpiresAfter:  3 * day,
		UserRestoreGrace:     30 * day,
	}
}

// OlderThan reports whether t lies more than d before now.
func OlderThan(t, now time.Time, d time.Duration) bool {
	return t.Before(now.Add(-d))
}
