//go:build e2e

package repository_test

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra/uow"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/dbtest"
	"travel-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type repositorySuite struct {
	e2e.SharedSuite
	uow shared.UnitOfWork
}

func TestRepositorySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(repositorySuite))
}

func (s *repositorySuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.uow = uow.NewPostgresUoW(s.DB)
}

// stamp is the clock reading handed to counter updates.
var stamp = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func (s *repositorySuite) TestSeatCounter() {
	s.Run("残席が足りる間だけ減算される", func() {
		t := s.T()
		flightID := dbtest.CreateTestFlight(t, s.DB, dbtest.FlightFixture{TotalSeats: 5})

		err := s.uow.Within(t.Context(), func(ctx context.Context, tx shared.Tx) error {
			left, err := tx.Flights().ReserveSeats(ctx, flightID, 3, stamp)
			require.NoError(t, err)
			require.Equal(t, 2, left)

			_, err = tx.Flights().ReserveSeats(ctx, flightID, 3, stamp)
			require.True(t, errs.Is(err, errs.ErrInsufficientCapacity), "got %v", err)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 2, dbtest.AvailableSeats(t, s.DB, flightID))

		var updatedAt time.Time
		require.NoError(t, s.DB.QueryRow(t.Context(), `SELECT updated_at FROM flights WHERE id = $1`, flightID).Scan(&updatedAt))
		require.True(t, stamp.Equal(updatedAt), "updated_at %v", updatedAt)
	})

	s.Run("返却は総席数を超えない", func() {
		t := s.T()
		flightID := dbtest.CreateTestFlight(t, s.DB, dbtest.FlightFixture{TotalSeats: 5, AvailableSeats: 4})

		err := s.uow.Within(t.Context(), func(ctx context.Context, tx shared.Tx) error {
			available, err := tx.Flights().ReleaseSeats(ctx, flightID, 3, stamp)
			require.NoError(t, err)
			require.Equal(t, 5, available)
			return nil
		})
		require.NoError(t, err)
	})

	s.Run("存在しない便はnot_found", func() {
		t := s.T()
		err := s.uow.Within(t.Context(), func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Flights().ReserveSeats(ctx, uuid.New(), 1, stamp)
			return err
		})
		require.True(t, errs.Is(err, errs.ErrNotFound), "got %v", err)
	})

	s.Run("エラーで抜けると減算は取り消される", func() {
		t := s.T()
		flightID := dbtest.CreateTestFlight(t, s.DB, dbtest.FlightFixture{TotalSeats: 5})

		err := s.uow.Within(t.Context(), func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Flights().ReserveSeats(ctx, flightID, 2, stamp); err != nil {
				return err
			}
			return errs.ErrValidation
		})
		require.True(t, errs.Is(err, errs.ErrValidation))
		require.Equal(t, 5, dbtest.AvailableSeats(t, s.DB, flightID))
	})
}

func (s *repositorySuite) TestSlotCounter() {
	s.Run("上限まで確保し返却はゼロで止まる", func() {
		t := s.T()
		limit := 2
		offerID := dbtest.CreateTestOffer(t, s.DB, dbtest.OfferFixture{MaxBookings: &limit})

		err := s.uow.Within(t.Context(), func(ctx context.Context, tx shared.Tx) error {
			for want := 1; want <= limit; want++ {
				current, err := tx.Offers().TakeSlot(ctx, offerID, stamp)
				require.NoError(t, err)
				require.Equal(t, want, current)
			}
			_, err := tx.Offers().TakeSlot(ctx, offerID, stamp)
			require.True(t, errs.Is(err, errs.ErrInsufficientCapacity), "got %v", err)

			for range limit + 1 {
				_, err := tx.Offers().ReturnSlot(ctx, offerID, stamp)
				require.NoError(t, err)
			}
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 0, dbtest.CurrentBookings(t, s.DB, offerID))

		var updatedAt time.Time
		require.NoError(t, s.DB.QueryRow(t.Context(), `SELECT updated_at FROM package_offers WHERE id = $1`, offerID).Scan(&updatedAt))
		require.True(t, stamp.Equal(updatedAt), "updated_at %v", updatedAt)
	})
}

func (s *repositorySuite) TestBookingReference() {
	s.Run("参照番号の重複は番兵で返りトランザクションは続行できる", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "reference@example.com", user.RoleViewer.String())
		flightID := dbtest.CreateTestFlight(t, s.DB, dbtest.FlightFixture{TotalSeats: 10})
		newBooking := func(ref string) *booking.Booking {
			return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.ID = uuid.New()
				b.Reference = ref
				b.UserID = userID
				b.FlightID = &flightID
			}).BuildDomain()
		}

		err := s.uow.Within(t.Context(), func(ctx context.Context, tx shared.Tx) error {
			require.NoError(t, tx.Bookings().Create(ctx, newBooking("TRV-DUPE0001")))

			err := tx.Bookings().Create(ctx, newBooking("TRV-DUPE0001"))
			require.True(t, errs.Is(err, booking.ErrDuplicateReference), "got %v", err)

			return tx.Bookings().Create(ctx, newBooking("TRV-DUPE0002"))
		})
		require.NoError(t, err)

		var n int
		require.NoError(t, s.DB.QueryRow(t.Context(), `SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID).Scan(&n))
		require.Equal(t, 2, n)
	})
}

func (s *repositorySuite) TestTakenSeats() {
	s.Run("有効な予約の座席だけが衝突する", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "seats@example.com", user.RoleViewer.String())
		flightID := dbtest.CreateTestFlight(t, s.DB, dbtest.FlightFixture{TotalSeats: 10, AvailableSeats: 8})

		_, err := s.DB.Exec(t.Context(), `
			INSERT INTO bookings (id, reference, user_id, kind, flight_id, quantity, passengers, seat_numbers, total_cents, status)
			VALUES
			  ($1, 'TRV-SEAT0001', $3, 'flight', $4, 2, '[{"name":"A"},{"name":"B"}]', '{1A,1B}', 24000, 'confirmed'),
			  ($2, 'TRV-SEAT0002', $3, 'flight', $4, 1, '[{"name":"C"}]', '{2A}', 12000, 'cancelled')`,
			uuid.New(), uuid.New(), userID, flightID)
		require.NoError(t, err)

		err = s.uow.Within(t.Context(), func(ctx context.Context, tx shared.Tx) error {
			taken, err := tx.Bookings().TakenSeats(ctx, flightID, []string{"1B", "2A", "3C"})
			require.NoError(t, err)
			require.Equal(t, []string{"1B"}, taken)

			n, err := tx.Bookings().CountActive(ctx, shared.FlightRef(flightID))
			require.NoError(t, err)
			require.Equal(t, 1, n)
			return nil
		})
		require.NoError(t, err)
	})
}
