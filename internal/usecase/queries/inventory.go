package queries

import (
	"context"

	"github.com/google/uuid"
)

// InventoryListFilter hides archived, and for offers hidden, records
// unless the caller is an operator.
type InventoryListFilter struct {
	IncludeArchived bool
	IncludeHidden   bool
}

type InventoryQueries interface {
	ListFlights(ctx context.Context, isOperator bool) ([]*FlightView, error)
	GetFlight(ctx context.Context, id uuid.UUID) (*FlightView, error)
	ListOffers(ctx context.Context, isOperator bool) ([]*OfferView, error)
	GetOffer(ctx context.Context, id uuid.UUID) (*OfferView, error)
}

type InventoryReadStore interface {
	ListFlights(ctx context.Context, f InventoryListFilter) ([]*FlightView, error)
	FindFlightByID(ctx context.Context, id uuid.UUID) (*FlightView, error)
	ListOffers(ctx context.Context, f InventoryListFilter) ([]*OfferView, error)
	FindOfferByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
}

type inventoryQueriesImpl struct {
	readStore InventoryReadStore
}

func NewInventoryQueries(readStore InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{readStore: readStore}
}

func (q *inventoryQueriesImpl) ListFlights(ctx context.Context, isOperator bool) ([]*FlightView, error) {
	return q.readStore.ListFlights(ctx, InventoryListFilter{IncludeArchived: isOperator, IncludeHidden: isOperator})
}

func (q *inventoryQueriesImpl) GetFlight(ctx context.Context, id uuid.UUID) (*FlightView, error) {
	return q.readStore.FindFlightByID(ctx, id)
}

func (q *inventoryQueriesImpl) ListOffers(ctx context.Context, isOperator bool) ([]*OfferView, error) {
	return q.readStore.ListOffers(ctx, InventoryListFilter{IncludeArchived: isOperator, IncludeHidden: isOperator})
}

func (q *inventoryQueriesImpl) GetOffer(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	return q.readStore.FindOfferByID(ctx, id)
}
