package commands

import (
	"context"
	"log/slog"

	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInventoryInUse = errs.NewKind("inventory still has active bookings", errs.ErrInventoryInUse)

type InventoryCommands interface {
	CreateFlight(ctx context.Context, p inventory.FlightParams) (uuid.UUID, error)
	ChangeFlightStatus(ctx context.Context, id uuid.UUID, status inventory.FlightStatus) error
	DeleteFlight(ctx context.Context, id uuid.UUID) error
	CreateOffer(ctx context.Context, p inventory.OfferParams) (uuid.UUID, error)
	DeleteOffer(ctx context.Context, id uuid.UUID) error
}

type inventoryCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewInventoryCommands(uow shared.UnitOfWork, clk clock.Clock) InventoryCommands {
	return &inventoryCommandsImpl{uow: uow, clock: clk}
}

func (uc *inventoryCommandsImpl) CreateFlight(ctx context.Context, p inventory.FlightParams) (uuid.UUID, error) {
	f, err := inventory.NewFlight(p, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	if err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Flights().Create(ctx, f)
	}); err != nil {
		return uuid.Nil, err
	}
	slog.InfoContext(ctx, "flight created", "flight_id", f.ID(), "flight_number", f.FlightNumber())
	return f.ID(), nil
}

func (uc *inventoryCommandsImpl) ChangeFlightStatus(ctx context.Context, id uuid.UUID, status inventory.FlightStatus) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, err := tx.Flights().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err = f.ChangeStatus(status, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Flights().Save(ctx, f)
	})
}

// DeleteFlight refuses while active bookings reference the flight; the
// remaining finished bookings go with it.
func (uc *inventoryCommandsImpl) DeleteFlight(ctx context.Context, id uuid.UUID) error {
	return uc.deleteInventory(ctx, shared.FlightRef(id), func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Flights().FindByIDForUpdate(ctx, id); err != nil {
			return err
		}
		return nil
	}, func(ctx context.Context, tx shared.Tx) error {
		return tx.Flights().Delete(ctx, id)
	})
}

func (uc *inventoryCommandsImpl) CreateOffer(ctx context.Context, p inventory.OfferParams) (uuid.UUID, error) {
	o, err := inventory.NewPackageOffer(p, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	if err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().Create(ctx, o)
	}); err != nil {
		return uuid.Nil, err
	}
	slog.InfoContext(ctx, "package offer created", "offer_id", o.ID(), "title", o.Title())
	return o.ID(), nil
}

func (uc *inventoryCommandsImpl) DeleteOffer(ctx context.Context, id uuid.UUID) error {
	return uc.deleteInventory(ctx, shared.OfferRef(id), func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Offers().FindByIDForUpdate(ctx, id); err != nil {
			return err
		}
		return nil
	}, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().Delete(ctx, id)
	})
}

// deleteInventory locks the row first so no booking can slip in between
// the count and the delete.
func (uc *inventoryCommandsImpl) deleteInventory(ctx context.Context, ref shared.InventoryRef, lock, del func(context.Context, shared.Tx) error) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := lock(ctx, tx); err != nil {
			return err
		}
		active, err := tx.Bookings().CountActive(ctx, ref)
		if err != nil {
			return err
		}
		if active > 0 {
			return errs.Wrapf(ErrInventoryInUse, "%d active bookings", active)
		}
		return del(ctx, tx)
	})
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "inventory deleted", "kind", ref.Kind.String(), "id", ref.ID)
	return nil
}
