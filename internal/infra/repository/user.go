package repository

import (
	"context"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/converter"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO users (`+converter.UserColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsActive(), u.LastLogin(),
		u.Archive().IsArchived(), u.Archive().At(), u.Archive().ReasonPtr(), u.PurgedAt(), u.CreatedAt(), u.UpdatedAt(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return errs.Mark(errs.Wrap(err, "create user"), user.ErrEmailTaken)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+converter.UserColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock user", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[converter.UserRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock user", err)
	}
	return converter.UserToDomain(row)
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx, `
UPDATE users SET
	email = $2, password_hash = $3, role = $4, is_active = $5, last_login = $6,
	archived = $7, archived_at = $8, archive_reason = $9, purged_at = $10, updated_at = $11
WHERE id = $1`,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsActive(), u.LastLogin(),
		u.Archive().IsArchived(), u.Archive().At(), u.Archive().ReasonPtr(), u.PurgedAt(), u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
