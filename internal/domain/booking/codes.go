package booking

import (
	"crypto/rand"

	"travel-booking/internal/pkg/errs"
)

const (
	referencePrefix = "TRV-"
	ticketPrefix    = "TKT-"
)

// ErrDuplicateReference reports a generated reference that another booking
// already carries. Callers draw a new one; it never reaches a client.
var ErrDuplicateReference = errs.New("booking reference already issued")

// CodeGenerator issues human-facing booking references and ticket codes.
type CodeGenerator interface {
	Reference() string
	Ticket() string
}

type RandomCodes struct{}

func (RandomCodes) Reference() string {
	return referencePrefix + rand.Text()[:8]
}

func (RandomCodes) Ticket() string {
	return ticketPrefix + rand.Text()[:10]
}
