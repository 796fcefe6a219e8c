// Package password wraps bcrypt for account credentials.
package password

import (
	"travel-booking/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errs.New("password or hash is empty")
	ErrMismatch = errs.New("password does not match hash")
)

// Hash uses bcrypt.DefaultCost unless a lower cost is passed, which only tests do.
func Hash(plain string, cost ...int) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	c := bcrypt.DefaultCost
	if len(cost) > 0 {
		c = cost[0]
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), c)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

// Verify treats an empty stored hash as a mismatch so accounts without a
// password can never log in.
func Verify(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrEmpty
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "verify password")
	}
}
