package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"travel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
	cursorPrefix    = "b1."
)

// pageCursor marks the last row of a page in (created_at DESC, id DESC) order.
// Timestamps keep microseconds to match PostgreSQL.
type pageCursor struct {
	createdAt time.Time
	id        uuid.UUID
}

func (c pageCursor) encode() string {
	raw := strconv.FormatInt(c.createdAt.UnixMicro(), 36) + "." + c.id.String()
	return cursorPrefix + base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(s string) (pageCursor, error) {
	body, ok := strings.CutPrefix(s, cursorPrefix)
	if !ok {
		return pageCursor{}, errs.Mark(errs.Newf("unknown cursor version in %q", s), ErrInvalidCursor)
	}
	raw, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return pageCursor{}, errs.Mark(err, ErrInvalidCursor)
	}
	micros, idStr, ok := strings.Cut(string(raw), ".")
	if !ok {
		return pageCursor{}, errs.Mark(errs.New("cursor has no id"), ErrInvalidCursor)
	}
	us, err := strconv.ParseInt(micros, 36, 64)
	if err != nil {
		return pageCursor{}, errs.Mark(err, ErrInvalidCursor)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return pageCursor{}, errs.Mark(err, ErrInvalidCursor)
	}
	return pageCursor{createdAt: time.UnixMicro(us).UTC(), id: id}, nil
}

func clampPageSize(limit int) int {
	switch {
	case limit <= 0:
		return defaultPageSize
	case limit > maxPageSize:
		return maxPageSize
	default:
		return limit
	}
}
