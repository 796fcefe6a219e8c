package converter

import (
	"time"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const UserColumns = `id, email, password_hash, role, is_active, last_login,
	archived, archived_at, archive_reason, purged_at, created_at, updated_at`

type UserRow struct {
	ID            uuid.UUID  `db:"id"`
	Email         string     `db:"email"`
	PasswordHash  string     `db:"password_hash"`
	Role          string     `db:"role"`
	IsActive      bool       `db:"is_active"`
	LastLogin     *time.Time `db:"last_login"`
	Archived      bool       `db:"archived"`
	ArchivedAt    *time.Time `db:"archived_at"`
	ArchiveReason *string    `db:"archive_reason"`
	PurgedAt      *time.Time `db:"purged_at"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

func UserToDomain(row UserRow) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	state, err := archive.Reconstruct(row.Archived, row.ArchiveReason, row.ArchivedAt)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		row.ID,
		email,
		row.PasswordHash,
		role,
		utcPtr(row.LastLogin),
		row.IsActive,
		state,
		utcPtr(row.PurgedAt),
		row.CreatedAt.UTC(),
		row.UpdatedAt.UTC(),
	), nil
}

func UserToView(row UserRow) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		IsActive:  row.IsActive,
		Archived:  row.Archived,
		LastLogin: utcPtr(row.LastLogin),
	}
}
