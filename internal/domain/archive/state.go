package archive

import (
	"time"

	"travel-booking/internal/pkg/errs"
)

var (
	ErrAlreadyArchived = errs.NewKind("record is already archived", errs.ErrIllegalTransition)
	ErrNotArchived     = errs.NewKind("record is not archived", errs.ErrIllegalTransition)
)

// State is the archive flag with its reason and timestamp.
// The zero value is an active record.
type State struct {
	archived bool
	reason   Reason
	at       time.Time
}

func Active() State {
	return State{}
}

func Archived(reason Reason, at time.Time) State {
	return State{archived: true, reason: reason, at: at}
}

// Reconstruct rebuilds a State from persisted columns.
func Reconstruct(archived bool, reason *string, at *time.Time) (State, error) {
	if !archived {
		return Active(), nil
	}
	if reason == nil || at == nil {
		return State{}, errs.Wrap(ErrInvalidReason, "archived record without reason or timestamp")
	}
	r, err := NewReason(*reason)
	if err != nil {
		return State{}, err
	}
	return Archived(r, *at), nil
}

func (s State) IsArchived() bool { return s.archived }
func (s State) Reason() Reason   { return s.reason }

func (s State) At() *time.Time {
	if !s.archived {
		return nil
	}
	at := s.at
	return &at
}

// ReasonPtr is the nullable form used by persistence and views.
func (s State) ReasonPtr() *string {
	if !s.archived {
		return nil
	}
	r := s.reason.String()
	return &r
}

// Archive moves an active record into the archive.
func (s State) Archive(reason Reason, at time.Time) (State, error) {
	if s.archived {
		return s, ErrAlreadyArchived
	}
	if !reason.IsValid() {
		return s, ErrInvalidReason
	}
	return Archived(reason, at), nil
}

func (s State) Restore() (State, error) {
	if !s.archived {
		return s, ErrNotArchived
	}
	return Active(), nil
}

// ArchivedBefore reports whether the record was archived strictly before t.
func (s State) ArchivedBefore(t time.Time) bool {
	return s.archived && s.at.Before(t)
}
