package auth

import (
	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/password"
)

var ErrPasswordMismatch = errs.New("password mismatch")

// Credentials is a syntactically valid email and password pair. It says
// nothing about whether an account exists.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}
	pw, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: email, password: pw}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

// Authenticate checks the password before the account state, so whether an
// account is inactive or archived is only visible to its password holder.
func (c Credentials) Authenticate(u *user.User) error {
	if err := password.Verify(u.PasswordHash(), c.password.Value()); err != nil {
		return errs.Mark(err, ErrPasswordMismatch)
	}
	return u.CanLogin()
}
