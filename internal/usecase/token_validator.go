package usecase

//go:generate mockgen -destination=../../tests/mock/usecase/mock_usecase.go -package=usecasemock travel-booking/internal/usecase TokenValidator

import (
	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrInvalidAccessToken = errs.New("invalid access token")

// Principal is the caller identity carried by a verified access token.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

func (p Principal) IsOperator() bool {
	return p.Role.IsOperator()
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Principal{}, errs.Mark(err, ErrInvalidAccessToken)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Principal{}, errs.Mark(errs.Wrap(err, "token carries unknown role"), ErrInvalidAccessToken)
	}
	if claims.UserID == uuid.Nil {
		return Principal{}, errs.Wrap(ErrInvalidAccessToken, "token has no subject")
	}

	return Principal{UserID: claims.UserID, Role: role}, nil
}
