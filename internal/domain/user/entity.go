package user

import (
	"fmt"
	"time"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/ids"

	"github.com/google/uuid"
)

var (
	ErrAccountArchived     = errs.NewKind("account is archived", errs.ErrUnauthorized)
	ErrAccountInactive     = errs.NewKind("account is inactive", errs.ErrUnauthorized)
	ErrRestoreWindowClosed = errs.NewKind("account restore window has closed", errs.ErrIllegalTransition)
	ErrAlreadyPurged       = errs.NewKind("account has been purged", errs.ErrIllegalTransition)
	ErrPurgeNotDue         = errs.NewKind("account is still inside its restore window", errs.ErrIllegalTransition)
)

// purgedEmailDomain keeps scrubbed addresses unique and syntactically valid.
const purgedEmailDomain = "purged.invalid"

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	archive      archive.State
	purgedAt     *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           ids.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		archive:      archive.Active(),
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	archiveState archive.State,
	purgedAt *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		archive:      archiveState,
		purgedAt:     purgedAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Email() Email           { return u.email }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) Role() Role             { return u.role }
func (u *User) LastLogin() *time.Time  { return u.lastLogin }
func (u *User) IsActive() bool         { return u.isActive }
func (u *User) Archive() archive.State { return u.archive }
func (u *User) PurgedAt() *time.Time   { return u.purgedAt }
func (u *User) IsPurged() bool         { return u.purgedAt != nil }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }

// CanLogin rejects archived and deactivated accounts.
func (u *User) CanLogin() error {
	if u.archive.IsArchived() {
		return ErrAccountArchived
	}
	if !u.isActive {
		return ErrAccountInactive
	}
	return nil
}

func (u *User) RecordLogin(now time.Time) {
	u.lastLogin = &now
	u.updatedAt = now
}

func (u *User) ArchiveManually(now time.Time) error {
	next, err := u.archive.Archive(archive.ReasonManual, now)
	if err != nil {
		return err
	}
	u.archive = next
	u.updatedAt = now
	return nil
}

// Restore is allowed only while the grace period since archiving is open.
func (u *User) Restore(now time.Time, p archive.Policy) error {
	if u.IsPurged() {
		return ErrAlreadyPurged
	}
	if u.archive.IsArchived() && u.archive.ArchivedBefore(now.Add(-p.UserRestoreGrace)) {
		return ErrRestoreWindowClosed
	}
	next, err := u.archive.Restore()
	if err != nil {
		return err
	}
	u.archive = next
	u.updatedAt = now
	return nil
}

func (u *User) PurgeDue(now time.Time, p archive.Policy) bool {
	return !u.IsPurged() && u.archive.ArchivedBefore(now.Add(-p.UserRestoreGrace))
}

// Purge anonymises the account. The row stays so bookings keep their owner.
func (u *User) Purge(now time.Time, p archive.Policy) error {
	if u.IsPurged() {
		return ErrAlreadyPurged
	}
	if !u.PurgeDue(now, p) {
		return ErrPurgeNotDue
	}
	u.email = Email{value: fmt.Sprintf("deleted-%s@%s", u.id, purgedEmailDomain)}
	u.passwordHash = ""
	u.isActive = false
	u.purgedAt = &now
	u.updatedAt = now
	return nil
}
