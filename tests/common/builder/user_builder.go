//go:build unit || e2e

package builder

import (
	"travel-booking/internal/domain/user"
	reqdto "travel-booking/internal/handler/dto/request"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// UserBuilder defaults to an active admin. Password is the plain text that
// matches PasswordHash when a test hashes it itself.
type UserBuilder struct {
	Email        string
	Password     string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Role:         user.RoleAdmin.String(),
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

// BuildDomain validates email and role the same way registration does.
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	created := user.NewUser(email, u.PasswordHash, role, BaseTime)
	if u.IsActive {
		return created, nil
	}
	return user.ReconstructUser(created.ID(), email, u.PasswordHash, role, nil, false,
		created.Archive(), nil, BaseTime, BaseTime), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: u.Email, Password: u.Password}
}
