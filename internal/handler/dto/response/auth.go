package response

import (
	"time"

	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	Archived  bool       `json:"archived"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	ExpiresAt   time.Time     `json:"expiresAt"`
	User        *UserResponse `json:"user"`
}

func FromUserView(v *queries.AuthorizedUserView) (*UserResponse, error) {
	return copyInto[UserResponse](v)
}
