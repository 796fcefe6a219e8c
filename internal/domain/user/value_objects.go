package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"travel-booking/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.NewKind("invalid email format", errs.ErrValidation)
	ErrInvalidRole     = errs.NewKind("invalid role", errs.ErrValidation)
	ErrPasswordTooWeak = errs.NewKind("password must be at least 8 characters long", errs.ErrValidation)
	ErrPasswordTooLong = errs.NewKind("password must be at most 72 bytes", errs.ErrValidation)
	ErrEmailTaken      = errs.NewKind("email already registered", errs.ErrValidation)
)

const (
	maxEmailLength    = 254
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes
	maxPasswordBytes = 72
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > maxEmailLength || !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	switch {
	case utf8.RuneCountInString(s) < minPasswordLength:
		return Password{}, ErrPasswordTooWeak
	case len(s) > maxPasswordBytes:
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
