package queries

import (
	"context"

	"travel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.NewKind("user not found", errs.ErrNotFound)
	ErrUserInactive = errs.NewKind("user inactive", errs.ErrUnauthorized)
)

type UserQueries interface {
	// GetCurrentUser resolves the token subject. Inactive and archived
	// accounts are refused even while their token is still valid.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueries struct {
	users UserReadStore
}

func NewUserQueries(users UserReadStore) UserQueries {
	return &userQueries{users: users}
}

func (q *userQueries) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.users.FindByID(ctx, userID)
	switch {
	case errs.Is(err, errs.ErrNotFound):
		return nil, errs.Mark(err, ErrUserNotFound)
	case err != nil:
		return nil, err
	case !view.IsActive || view.Archived:
		return nil, ErrUserInactive
	}
	return view, nil
}
