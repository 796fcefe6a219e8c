package readstore

import (
	"context"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra/converter"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := queryOne[converter.UserRow](ctx, r.db, "user",
		`SELECT `+converter.UserColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return converter.UserToView(row), nil
}

// FindByEmail returns the aggregate, password hash included, for login.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := queryOne[converter.UserRow](ctx, r.db, "user",
		`SELECT `+converter.UserColumns+` FROM users WHERE email = $1`, email)
	if err != nil {
		return nil, err
	}
	return converter.UserToDomain(row)
}
