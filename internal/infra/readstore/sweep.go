package readstore

import (
	"context"
	"time"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SweepCandidateStore selects rows the archival rules might act on. The
// filters are a superset; the domain rules decide per record.
type SweepCandidateStore struct {
	db db.DBTX
}

func NewSweepCandidateStore(dbtx db.DBTX) *SweepCandidateStore {
	return &SweepCandidateStore{db: dbtx}
}

func (s *SweepCandidateStore) FlightSweepCandidates(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	return s.ids(ctx, "flight sweep candidates", `
SELECT id FROM flights
WHERE NOT archived
  AND (departure_time < $1 OR status IN ('cancelled', 'completed'))
ORDER BY departure_time, id`, now)
}

func (s *SweepCandidateStore) BookingSweepCandidates(ctx context.Context, f shared.BookingSweepFilter) ([]uuid.UUID, error) {
	packageCutoff := f.Now.Add(-f.Policy.PackageBookingAfter)
	pendingCutoff := f.Now.Add(-f.Policy.PendingExpiresAfter)
	return s.ids(ctx, "booking sweep candidates", `
SELECT b.id
FROM bookings b
LEFT JOIN flights f ON f.id = b.flight_id
WHERE NOT b.archived
  AND ($4::uuid IS NULL OR b.user_id = $4)
  AND (
	(b.kind = 'flight' AND f.departure_time < $1)
	OR (b.kind = 'package' AND b.status = 'cancelled')
	OR (b.kind = 'package' AND b.created_at < $2)
	OR (b.status = 'pending' AND b.created_at < $3)
  )
ORDER BY b.created_at, b.id`, f.Now, packageCutoff, pendingCutoff, f.UserID)
}

func (s *SweepCandidateStore) UserPurgeCandidates(ctx context.Context, archivedBefore time.Time) ([]uuid.UUID, error) {
	return s.ids(ctx, "user purge candidates", `
SELECT id FROM users
WHERE archived AND purged_at IS NULL AND archived_at < $1
ORDER BY archived_at, id`, archivedBefore)
}

func (s *SweepCandidateStore) ids(ctx context.Context, what, sql string, args ...any) ([]uuid.UUID, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list "+what, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list "+what, err)
	}
	return out, nil
}
