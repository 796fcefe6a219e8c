package converter

import (
	"time"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const OfferColumns = `id, title, destination, price_cents, pricing_unit, valid_from, valid_to,
	visible, bookable, max_bookings, current_bookings,
	archived, archived_at, archive_reason, created_at, updated_at`

type OfferRow struct {
	ID              uuid.UUID  `db:"id"`
	Title           string     `db:"title"`
	Destination     string     `db:"destination"`
	PriceCents      int64      `db:"price_cents"`
	PricingUnit     string     `db:"pricing_unit"`
	ValidFrom       time.Time  `db:"valid_from"`
	ValidTo         time.Time  `db:"valid_to"`
	Visible         bool       `db:"visible"`
	Bookable        bool       `db:"bookable"`
	MaxBookings     *int       `db:"max_bookings"`
	CurrentBookings int        `db:"current_bookings"`
	Archived        bool       `db:"archived"`
	ArchivedAt      *time.Time `db:"archived_at"`
	ArchiveReason   *string    `db:"archive_reason"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func OfferToDomain(row OfferRow) (*inventory.PackageOffer, error) {
	unit, err := inventory.NewPricingUnit(row.PricingUnit)
	if err != nil {
		return nil, err
	}
	state, err := archive.Reconstruct(row.Archived, row.ArchiveReason, row.ArchivedAt)
	if err != nil {
		return nil, err
	}
	return inventory.ReconstructPackageOffer(
		row.ID,
		inventory.OfferParams{
			Title:       row.Title,
			Destination: row.Destination,
			PriceCents:  row.PriceCents,
			PricingUnit: unit,
			ValidFrom:   row.ValidFrom.UTC(),
			ValidTo:     row.ValidTo.UTC(),
			Visible:     row.Visible,
			Bookable:    row.Bookable,
			MaxBookings: row.MaxBookings,
		},
		row.CurrentBookings,
		state,
		row.CreatedAt.UTC(),
		row.UpdatedAt.UTC(),
	)
}

func OfferToView(row OfferRow) *queries.OfferView {
	return &queries.OfferView{
		ID:              row.ID,
		Title:           row.Title,
		Destination:     row.Destination,
		PriceCents:      row.PriceCents,
		PricingUnit:     row.PricingUnit,
		ValidFrom:       row.ValidFrom.UTC(),
		ValidTo:         row.ValidTo.UTC(),
		Visible:         row.Visible,
		Bookable:        row.Bookable,
		MaxBookings:     row.MaxBookings,
		CurrentBookings: row.CurrentBookings,
		Archived:        row.Archived,
		ArchiveReason:   row.ArchiveReason,
		ArchivedAt:      utcPtr(row.ArchivedAt),
		CreatedAt:       row.CreatedAt.UTC(),
		UpdatedAt:       row.UpdatedAt.UTC(),
	}
}
