package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark makes err match markErr under Is. Marking with a NewKind sentinel
// also marks the sentinel's kind.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	var k *kindError
	if cr.As(markErr, &k) {
		return &markedError{cause: cr.Mark(cr.Mark(err, k.kind), markErr), sentinel: k}
	}
	return cr.Mark(err, markErr)
}

// markedError keeps the sentinel reachable after Mark so its message can
// be shown in place of the cause.
type markedError struct {
	cause    error
	sentinel *kindError
}

func (e *markedError) Error() string { return e.cause.Error() }

func (e *markedError) Unwrap() error { return e.cause }

func (e *markedError) Format(s fmt.State, verb rune) { cr.FormatError(e, s, verb) }

// Public returns the message of the outermost taxonomy sentinel in err's
// chain. Errors that never met a sentinel have nothing safe to show.
func Public(err error) (string, bool) {
	for e := err; e != nil; e = cr.UnwrapOnce(e) {
		switch v := e.(type) {
		case *kindError:
			return v.msg, true
		case *markedError:
			return v.sentinel.msg, true
		}
	}
	return "", false
}

// kindError is a sentinel that belongs to one of the taxonomy kinds.
// Each sentinel keeps its own identity, two sentinels of the same kind
// never match each other.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// NewKind creates a sentinel that also matches kind under Is.
func NewKind(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

// Is understands both wrapped chains and marks.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
