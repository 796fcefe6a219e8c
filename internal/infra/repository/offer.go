package repository

import (
	"context"
	"time"

	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/converter"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OfferRepository struct {
	db db.DBTX
}

func NewOfferRepository(dbtx db.DBTX) *OfferRepository {
	return &OfferRepository{db: dbtx}
}

func (r *OfferRepository) Create(ctx context.Context, o *inventory.PackageOffer) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO package_offers (`+converter.OfferColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		o.ID(), o.Title(), o.Destination(), o.PriceCents(), o.PricingUnit().String(), o.ValidFrom(), o.ValidTo(),
		o.IsVisible(), o.IsBookable(), o.Slots().Max(), o.Slots().Current(),
		o.Archive().IsArchived(), o.Archive().At(), o.Archive().ReasonPtr(), o.CreatedAt(), o.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create package offer", err)
	}
	return nil
}

func (r *OfferRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.PackageOffer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+converter.OfferColumns+` FROM package_offers WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock package offer", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[converter.OfferRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock package offer", err)
	}
	return converter.OfferToDomain(row)
}

// Save writes everything except current_bookings.
func (r *OfferRepository) Save(ctx context.Context, o *inventory.PackageOffer) error {
	tag, err := r.db.Exec(ctx, `
UPDATE package_offers SET
	title = $2, destination = $3, price_cents = $4, pricing_unit = $5, valid_from = $6, valid_to = $7,
	visible = $8, bookable = $9, max_bookings = $10,
	archived = $11, archived_at = $12, archive_reason = $13, updated_at = $14
WHERE id = $1`,
		o.ID(), o.Title(), o.Destination(), o.PriceCents(), o.PricingUnit().String(), o.ValidFrom(), o.ValidTo(),
		o.IsVisible(), o.IsBookable(), o.Slots().Max(),
		o.Archive().IsArchived(), o.Archive().At(), o.Archive().ReasonPtr(), o.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save package offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("package offer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM package_offers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete package offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("package offer not found", nil, infra.KindNotFound)
	}
	return nil
}

// TakeSlot increments the booking counter unless the offer is full.
func (r *OfferRepository) TakeSlot(ctx context.Context, id uuid.UUID, now time.Time) (int, error) {
	var current int
	err := r.db.QueryRow(ctx, `
UPDATE package_offers
SET current_bookings = current_bookings + 1, updated_at = $2
WHERE id = $1 AND (max_bookings IS NULL OR current_bookings < max_bookings)
RETURNING current_bookings`, id, now).Scan(&current)
	if err == nil {
		return current, nil
	}
	if !pgconv.IsNoRows(err) {
		return 0, infra.WrapRepoErr("failed to take package slot", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM package_offers WHERE id = $1)`, id).Scan(&exists); err != nil {
		return 0, infra.WrapRepoErr("failed to check package offer", err)
	}
	if !exists {
		return 0, infra.WrapRepoErr("package offer not found", nil, infra.KindNotFound)
	}
	return 0, errs.Wrapf(inventory.ErrNoAvailableSlots, "package offer %s", id)
}

// ReturnSlot decrements the counter, floored at zero.
func (r *OfferRepository) ReturnSlot(ctx context.Context, id uuid.UUID, now time.Time) (int, error) {
	var current int
	err := r.db.QueryRow(ctx, `
UPDATE package_offers
SET current_bookings = GREATEST(0, current_bookings - 1), updated_at = $2
WHERE id = $1
RETURNING current_bookings`, id, now).Scan(&current)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("package offer not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to return package slot", err)
	}
	return current, nil
}
