package commands

import (
	"context"
	"log/slog"
	"time"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSweepInProgress = errs.NewKind("another sweep is already running", errs.ErrIllegalTransition)

type SweepResult struct {
	FlightsUpdated   int       `json:"flights_updated"`
	FlightsArchived  int       `json:"flights_archived"`
	BookingsArchived int       `json:"bookings_archived"`
	BookingsExpired  int       `json:"bookings_expired"`
	UsersPurged      int       `json:"users_purged"`
	Failures         int       `json:"failures"`
	StartedAt        time.Time `json:"started_at"`
	FinishedAt       time.Time `json:"finished_at"`
}

type SweepCommands interface {
	RunSweep(ctx context.Context) (*SweepResult, error)
	SweepUser(ctx context.Context, userID uuid.UUID) (*SweepResult, error)
}

type sweeper struct {
	uow       shared.UnitOfWork
	allocator *Allocator
	notifier  Notifier
	clock     clock.Clock
	lock      SweepLock
	policy    archive.Policy
}

func NewSweepCommands(
	uow shared.UnitOfWork,
	allocator *Allocator,
	notifier Notifier,
	clk clock.Clock,
	lock SweepLock,
	cfg config.SweepConfig,
) SweepCommands {
	return &sweeper{
		uow:       uow,
		allocator: allocator,
		notifier:  notifier,
		clock:     clk,
		lock:      lock,
		policy:    cfg.Policy(),
	}
}

// RunSweep applies every archival rule once. Only one instance sweeps at a
// time; a second caller gets ErrSweepInProgress.
func (s *sweeper) RunSweep(ctx context.Context) (*SweepResult, error) {
	unlock, acquired, err := s.lock.TryLock(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "acquire sweep lock")
	}
	if !acquired {
		return nil, ErrSweepInProgress
	}
	defer func() {
		if uerr := unlock(context.WithoutCancel(ctx)); uerr != nil {
			slog.WarnContext(ctx, "failed to release sweep lock", "error", uerr.Error())
		}
	}()

	res := &SweepResult{StartedAt: s.clock.Now()}
	now := res.StartedAt
	reads := s.uow.CommandReads()

	flightIDs, err := reads.FlightSweepCandidates(ctx, now)
	if err != nil {
		return nil, err
	}
	for _, id := range flightIDs {
		if ferr := s.sweepFlight(ctx, id, now, res); ferr != nil {
			s.recordFailure(ctx, res, "flight", id, ferr)
		}
	}

	if err = s.sweepBookings(ctx, shared.BookingSweepFilter{Now: now, Policy: s.policy}, res); err != nil {
		return nil, err
	}

	userIDs, err := reads.UserPurgeCandidates(ctx, now.Add(-s.policy.UserRestoreGrace))
	if err != nil {
		return nil, err
	}
	for _, id := range userIDs {
		if uerr := s.purgeUser(ctx, id, now, res); uerr != nil {
			s.recordFailure(ctx, res, "user", id, uerr)
		}
	}

	res.FinishedAt = s.clock.Now()
	slog.InfoContext(ctx, "sweep finished",
		"flights_updated", res.FlightsUpdated,
		"flights_archived", res.FlightsArchived,
		"bookings_archived", res.BookingsArchived,
		"bookings_expired", res.BookingsExpired,
		"users_purged", res.UsersPurged,
		"failures", res.Failures,
		"duration_ms", res.FinishedAt.Sub(res.StartedAt).Milliseconds())
	return res, nil
}

// SweepUser applies the booking rules to one user's bookings only.
func (s *sweeper) SweepUser(ctx context.Context, userID uuid.UUID) (*SweepResult, error) {
	res := &SweepResult{StartedAt: s.clock.Now()}
	filter := shared.BookingSweepFilter{Now: res.StartedAt, Policy: s.policy, UserID: &userID}
	if err := s.sweepBookings(ctx, filter, res); err != nil {
		return nil, err
	}
	res.FinishedAt = s.clock.Now()
	return res, nil
}

func (s *sweeper) sweepBookings(ctx context.Context, filter shared.BookingSweepFilter, res *SweepResult) error {
	ids, err := s.uow.CommandReads().BookingSweepCandidates(ctx, filter)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if berr := s.sweepBooking(ctx, id, filter.Now, res); berr != nil {
			s.recordFailure(ctx, res, "booking", id, berr)
		}
	}
	return nil
}

func (s *sweeper) sweepFlight(ctx context.Context, id uuid.UUID, now time.Time, res *SweepResult) error {
	var out inventory.FlightSweep
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out = inventory.FlightSweep{}
		f, err := tx.Flights().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		out = f.Sweep(now, s.policy)
		if !out.Archived {
			return nil
		}
		return tx.Flights().Save(ctx, f)
	})
	if err != nil {
		return err
	}

	if out.StatusChanged {
		res.FlightsUpdated++
	}
	if out.Archived {
		res.FlightsArchived++
		slog.DebugContext(ctx, "flight archived", "flight_id", id, "reason", out.Reason.String())
	}
	return nil
}

// sweepBooking re-reads the booking under lock so a concurrent cancel is
// observed and the rules are decided on current state.
func (s *sweeper) sweepBooking(ctx context.Context, id uuid.UUID, now time.Time, res *SweepResult) error {
	var expired *booking.Booking
	var outcome booking.SweepOutcome

	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outcome, expired = booking.SweepOutcome{}, nil
		b, err := tx.Bookings().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		in := booking.SweepInput{Now: now, Policy: s.policy}
		if b.Kind() == booking.KindFlight {
			f, ferr := tx.Reads().FlightByID(ctx, *b.FlightID())
			if ferr != nil {
				return ferr
			}
			departure := f.DepartureTime()
			in.FlightDeparture = &departure
		}

		outcome = b.SweepDecision(in)
		if outcome.Action == booking.SweepNone {
			return nil
		}
		if outcome.Action == booking.SweepExpire {
			if err = s.allocator.Release(ctx, tx, b, now); err != nil {
				return err
			}
		}
		if err = b.Apply(outcome, now); err != nil {
			return err
		}
		if err = tx.Bookings().Save(ctx, b); err != nil {
			return err
		}
		if outcome.Action == booking.SweepExpire {
			expired = b
		}
		return nil
	})
	if err != nil {
		return err
	}

	switch outcome.Action {
	case booking.SweepArchive:
		res.BookingsArchived++
	case booking.SweepExpire:
		res.BookingsExpired++
		dispatch(ctx, s.notifier, []notification{{booking: expired, event: booking.EventExpired}})
	}
	return nil
}

func (s *sweeper) purgeUser(ctx context.Context, id uuid.UUID, now time.Time, res *SweepResult) error {
	purged := false
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		purged = false
		u, err := tx.Users().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !u.PurgeDue(now, s.policy) {
			return nil
		}
		if err = u.Purge(now, s.policy); err != nil {
			return err
		}
		if err = tx.Users().Save(ctx, u); err != nil {
			return err
		}
		purged = true
		return nil
	})
	if err != nil {
		return err
	}
	if purged {
		res.UsersPurged++
		slog.InfoContext(ctx, "user purged", "user_id", id)
	}
	return nil
}

func (s *sweeper) recordFailure(ctx context.Context, res *SweepResult, kind string, id uuid.UUID, err error) {
	res.Failures++
	slog.ErrorContext(ctx, "sweep record failed", "kind", kind, "id", id, "error", err.Error())
}
