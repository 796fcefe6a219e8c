//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by the pool and by a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Every fixture user logs in with "password123".
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

type FlightFixture struct {
	FlightNumber   string
	DepartureTime  time.Time
	TotalSeats     int
	AvailableSeats int
	PriceCents     int64
	Status         string
}

// CreateTestFlight inserts a flight departing in a week unless the fixture
// says otherwise. AvailableSeats defaults to TotalSeats.
func CreateTestFlight(t *testing.T, db DBLike, f FlightFixture) uuid.UUID {
	t.Helper()

	if f.FlightNumber == "" {
		f.FlightNumber = "TB101"
	}
	if f.DepartureTime.IsZero() {
		f.DepartureTime = time.Now().Add(7 * 24 * time.Hour).UTC().Truncate(time.Second)
	}
	if f.TotalSeats == 0 {
		f.TotalSeats = 10
	}
	if f.AvailableSeats == 0 {
		f.AvailableSeats = f.TotalSeats
	}
	if f.PriceCents == 0 {
		f.PriceCents = 12000
	}
	if f.Status == "" {
		f.Status = "scheduled"
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO flights (id, flight_number, origin, destination, departure_time, arrival_time,
		                     total_seats, available_seats, price_cents, status)
		VALUES ($1, $2, 'HND', 'CTS', $3, $4, $5, $6, $7, $8)`,
		id, f.FlightNumber, f.DepartureTime, f.DepartureTime.Add(90*time.Minute),
		f.TotalSeats, f.AvailableSeats, f.PriceCents, f.Status)
	require.NoError(t, err)
	return id
}

type OfferFixture struct {
	Title       string
	PriceCents  int64
	PricingUnit string
	MaxBookings *int
	Hidden      bool
}

// CreateTestOffer inserts an offer valid from a day ago for thirty days.
func CreateTestOffer(t *testing.T, db DBLike, o OfferFixture) uuid.UUID {
	t.Helper()

	if o.Title == "" {
		o.Title = "Hokkaido Winter"
	}
	if o.PriceCents == 0 {
		o.PriceCents = 80000
	}
	if o.PricingUnit == "" {
		o.PricingUnit = "per_person"
	}

	now := time.Now().UTC().Truncate(time.Second)
	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO package_offers (id, title, destination, price_cents, pricing_unit,
		                            valid_from, valid_to, visible, bookable, max_bookings)
		VALUES ($1, $2, 'Sapporo', $3, $4, $5, $6, $7, true, $8)`,
		id, o.Title, o.PriceCents, o.PricingUnit, now.Add(-24*time.Hour), now.Add(30*24*time.Hour),
		!o.Hidden, o.MaxBookings)
	require.NoError(t, err)
	return id
}

func AvailableSeats(t *testing.T, db DBLike, flightID uuid.UUID) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT available_seats FROM flights WHERE id = $1", flightID).Scan(&n))
	return n
}

func CurrentBookings(t *testing.T, db DBLike, offerID uuid.UUID) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT current_bookings FROM package_offers WHERE id = $1", offerID).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration ledger
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
