package queries

import (
	"context"
	"time"

	"travel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingAccess = errs.NewKind("booking belongs to another user", errs.ErrUnauthorized)
	ErrInvalidCursor = errs.NewKind("invalid cursor", errs.ErrValidation)
)

// BookingListFilter narrows a listing. A nil Archived returns both.
type BookingListFilter struct {
	UserID   *uuid.UUID
	Archived *bool
	After    string
	Limit    int
}

type BookingPage struct {
	Items      []*BookingView `json:"items"`
	NextCursor *string        `json:"next_cursor,omitempty"`
}

type BookingQueries interface {
	GetByID(ctx context.Context, id, viewerID uuid.UUID, isOperator bool) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, archived *bool, after string, limit int) (*BookingPage, error)
	ListAll(ctx context.Context, archived *bool, after string, limit int) (*BookingPage, error)
}

// BookingPageQuery is the decoded keyset position handed to the read store.
type BookingPageQuery struct {
	UserID    *uuid.UUID
	Archived  *bool
	AfterTime *time.Time
	AfterID   *uuid.UUID
	Limit     int
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, q BookingPageQuery) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id, viewerID uuid.UUID, isOperator bool) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isOperator && view.UserID != viewerID {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, archived *bool, after string, limit int) (*BookingPage, error) {
	return q.list(ctx, BookingListFilter{UserID: &userID, Archived: archived, After: after, Limit: limit})
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, archived *bool, after string, limit int) (*BookingPage, error) {
	return q.list(ctx, BookingListFilter{Archived: archived, After: after, Limit: limit})
}

// list pages newest first on (created_at, id).
func (q *bookingQueriesImpl) list(ctx context.Context, f BookingListFilter) (*BookingPage, error) {
	pq := BookingPageQuery{
		UserID:   f.UserID,
		Archived: f.Archived,
		Limit:    clampPageSize(f.Limit),
	}
	if f.After != "" {
		cur, err := decodeCursor(f.After)
		if err != nil {
			return nil, err
		}
		pq.AfterTime, pq.AfterID = &cur.createdAt, &cur.id
	}

	// One extra row tells whether another page exists
	fetch := pq
	fetch.Limit = pq.Limit + 1
	items, err := q.readStore.List(ctx, fetch)
	if err != nil {
		return nil, err
	}

	page := &BookingPage{Items: items}
	if len(items) > pq.Limit {
		page.Items = items[:pq.Limit]
		last := page.Items[len(page.Items)-1]
		next := pageCursor{createdAt: last.CreatedAt, id: last.ID}.encode()
		page.NextCursor = &next
	}
	if page.Items == nil {
		page.Items = []*BookingView{}
	}
	return page, nil
}
