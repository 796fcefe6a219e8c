package commands

import (
	"context"
	"log/slog"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const MaxBulkArchive = 500

var ErrBulkTooLarge = errs.NewKind("too many ids in one bulk archive", errs.ErrValidation)

type BulkFailure struct {
	ID     uuid.UUID `json:"id"`
	Reason string    `json:"reason"`
}

type BulkArchiveResult struct {
	Archived int           `json:"archived"`
	Failed   []BulkFailure `json:"failed"`
}

// ArchiveCommands is the operator path. It always records reason manual
// and skips the sweep rules.
type ArchiveCommands interface {
	ArchiveManually(ctx context.Context, kind archive.Kind, id uuid.UUID) error
	Restore(ctx context.Context, kind archive.Kind, id uuid.UUID) error
	BulkArchive(ctx context.Context, kind archive.Kind, ids []uuid.UUID) (*BulkArchiveResult, error)
}

type archiveCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy archive.Policy
}

func NewArchiveCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.SweepConfig) ArchiveCommands {
	return &archiveCommandsImpl{uow: uow, clock: clk, policy: cfg.Policy()}
}

func (uc *archiveCommandsImpl) ArchiveManually(ctx context.Context, kind archive.Kind, id uuid.UUID) error {
	if err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return uc.archiveOne(ctx, tx, kind, id)
	}); err != nil {
		return err
	}
	slog.InfoContext(ctx, "record archived", "kind", kind.String(), "id", id)
	return nil
}

func (uc *archiveCommandsImpl) Restore(ctx context.Context, kind archive.Kind, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		switch kind {
		case archive.KindFlight:
			f, err := tx.Flights().FindByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if err = f.Restore(now); err != nil {
				return err
			}
			return tx.Flights().Save(ctx, f)
		case archive.KindPackage:
			o, err := tx.Offers().FindByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if err = o.Restore(now); err != nil {
				return err
			}
			return tx.Offers().Save(ctx, o)
		case archive.KindBooking:
			b, err := tx.Bookings().FindByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if err = b.Restore(now); err != nil {
				return err
			}
			return tx.Bookings().Save(ctx, b)
		case archive.KindUser:
			u, err := tx.Users().FindByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if err = u.Restore(now, uc.policy); err != nil {
				return err
			}
			return tx.Users().Save(ctx, u)
		}
		return archive.ErrInvalidKind
	})
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "record restored", "kind", kind.String(), "id", id)
	return nil
}

// BulkArchive archives each id in its own transaction and reports the
// ones that could not be archived.
func (uc *archiveCommandsImpl) BulkArchive(ctx context.Context, kind archive.Kind, ids []uuid.UUID) (*BulkArchiveResult, error) {
	if len(ids) > MaxBulkArchive {
		return nil, ErrBulkTooLarge
	}
	if _, err := archive.NewKind(kind.String()); err != nil {
		return nil, err
	}

	res := &BulkArchiveResult{Failed: []BulkFailure{}}
	for _, id := range ids {
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return uc.archiveOne(ctx, tx, kind, id)
		})
		if err != nil {
			slog.WarnContext(ctx, "bulk archive item failed", "kind", kind.String(), "id", id, "error", err.Error())
			res.Failed = append(res.Failed, BulkFailure{ID: id, Reason: errs.Code(err)})
			continue
		}
		res.Archived++
	}
	slog.InfoContext(ctx, "bulk archive finished", "kind", kind.String(), "archived", res.Archived, "failed", len(res.Failed))
	return res, nil
}

func (uc *archiveCommandsImpl) archiveOne(ctx context.Context, tx shared.Tx, kind archive.Kind, id uuid.UUID) error {
	now := uc.clock.Now()
	switch kind {
	case archive.KindFlight:
		f, err := tx.Flights().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err = f.ArchiveManually(now); err != nil {
			return err
		}
		return tx.Flights().Save(ctx, f)
	case archive.KindPackage:
		o, err := tx.Offers().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err = o.ArchiveManually(now); err != nil {
			return err
		}
		return tx.Offers().Save(ctx, o)
	case archive.KindBooking:
		b, err := tx.Bookings().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err = b.ArchiveManually(now); err != nil {
			return err
		}
		return tx.Bookings().Save(ctx, b)
	case archive.KindUser:
		u, err := tx.Users().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err = u.ArchiveManually(now); err != nil {
			return err
		}
		return tx.Users().Save(ctx, u)
	}
	return archive.ErrInvalidKind
}
