package commands

import (
	"context"
	"log/slog"
	"time"

	"travel-booking/internal/domain/auth"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/jwt"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
	ExpiresAt   time.Time
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	u, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			// Same error as a password mismatch so accounts cannot be enumerated
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err = credentials.Authenticate(u); err != nil {
		if errs.Is(err, auth.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrUserInactive)
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	now := a.clock.Now()
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, ferr := tx.Users().FindByIDForUpdate(ctx, u.ID())
		if ferr != nil {
			return ferr
		}
		locked.RecordLogin(now)
		return tx.Users().Save(ctx, locked)
	})
	if err != nil {
		// Login already succeeded; only last_login is lost
		slog.WarnContext(ctx, "failed to update last login", "user_id", u.ID(), "error", err.Error())
	}

	return &LoginResult{
		UserID:      u.ID(),
		AccessToken: token,
		ExpiresAt:   now.Add(a.jwtService.TokenDuration()),
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
