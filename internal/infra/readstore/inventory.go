package readstore

import (
	"context"

	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/infra/converter"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(dbtx db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: dbtx}
}

func (r *InventoryReadStore) ListFlights(ctx context.Context, f queries.InventoryListFilter) ([]*queries.FlightView, error) {
	rows, err := queryAll[converter.FlightRow](ctx, r.db, "flights", `
SELECT `+converter.FlightColumns+`
FROM flights
WHERE ($1 OR NOT archived)
ORDER BY departure_time, id`, f.IncludeArchived)
	if err != nil {
		return nil, err
	}
	views := make([]*queries.FlightView, 0, len(rows))
	for _, row := range rows {
		views = append(views, converter.FlightToView(row))
	}
	return views, nil
}

func (r *InventoryReadStore) FindFlightByID(ctx context.Context, id uuid.UUID) (*queries.FlightView, error) {
	row, err := queryOne[converter.FlightRow](ctx, r.db, "flight",
		`SELECT `+converter.FlightColumns+` FROM flights WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return converter.FlightToView(row), nil
}

func (r *InventoryReadStore) ListOffers(ctx context.Context, f queries.InventoryListFilter) ([]*queries.OfferView, error) {
	rows, err := queryAll[converter.OfferRow](ctx, r.db, "package offers", `
SELECT `+converter.OfferColumns+`
FROM package_offers
WHERE ($1 OR NOT archived) AND ($2 OR visible)
ORDER BY valid_from, id`, f.IncludeArchived, f.IncludeHidden)
	if err != nil {
		return nil, err
	}
	views := make([]*queries.OfferView, 0, len(rows))
	for _, row := range rows {
		views = append(views, converter.OfferToView(row))
	}
	return views, nil
}

func (r *InventoryReadStore) FindOfferByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	row, err := queryOne[converter.OfferRow](ctx, r.db, "package offer",
		`SELECT `+converter.OfferColumns+` FROM package_offers WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return converter.OfferToView(row), nil
}

// FlightByID loads the aggregate without locking, for validation reads.
func (r *InventoryReadStore) FlightByID(ctx context.Context, id uuid.UUID) (*inventory.Flight, error) {
	row, err := queryOne[converter.FlightRow](ctx, r.db, "flight",
		`SELECT `+converter.FlightColumns+` FROM flights WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return converter.FlightToDomain(row)
}

func (r *InventoryReadStore) OfferByID(ctx context.Context, id uuid.UUID) (*inventory.PackageOffer, error) {
	row, err := queryOne[converter.OfferRow](ctx, r.db, "package offer",
		`SELECT `+converter.OfferColumns+` FROM package_offers WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return converter.OfferToDomain(row)
}
