//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFlightBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("座席を確保して保留で作成", func(t *testing.T) {
		e := newEnv(t)
		flight := builder.NewFlightBuilder().WithSeats(10, 10).BuildDomain()
		e.store.PutFlight(flight)

		res, err := e.bookings.CreateFlightBooking(ctx, e.flightInput(flight.ID(), 3))
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, res.Status)
		assert.Equal(t, 7, e.store.Flight(flight.ID()).Capacity().Available())
		assert.Equal(t, builder.BaseTime, e.store.Flight(flight.ID()).UpdatedAt())

		stored := e.store.Booking(res.BookingID)
		require.NotNil(t, stored)
		assert.Equal(t, int64(36000), stored.TotalCents())
		assert.Nil(t, stored.TicketCode())
		assert.Equal(t, []booking.Event{booking.EventCreated}, e.notifier.events())
	})

	t.Run("自動確定ならチケット発行", func(t *testing.T) {
		e := newEnv(t, withAutoConfirm())
		flight := builder.NewFlightBuilder().BuildDomain()
		e.store.PutFlight(flight)

		res, err := e.bookings.CreateFlightBooking(ctx, e.flightInput(flight.ID(), 1))
		require.NoError(t, err)

		assert.Equal(t, booking.StatusConfirmed, res.Status)
		stored := e.store.Booking(res.BookingID)
		require.NotNil(t, stored.TicketCode())
		assert.Equal(t, "TKT-FIXED00001", *stored.TicketCode())
		assert.Equal(t, []booking.Event{booking.EventCreated, booking.EventConfirmed}, e.notifier.events())
	})

	t.Run("残席不足は何も残さない", func(t *testing.T) {
		e := newEnv(t)
		flight := builder.NewFlightBuilder().WithSeats(10, 2).BuildDomain()
		e.store.PutFlight(flight)

		_, err := e.bookings.CreateFlightBooking(ctx, e.flightInput(flight.ID(), 3))
		require.Error(t, err)

		assert.True(t, errs.Is(err, errs.ErrInsufficientCapacity))
		assert.Equal(t, 2, e.store.Flight(flight.ID()).Capacity().Available())
		assert.Empty(t, e.store.Bookings())
		assert.Empty(t, e.notifier.events())
	})

	t.Run("指定座席の重複は衝突座席を返す", func(t *testing.T) {
		e := newEnv(t)
		flight := builder.NewFlightBuilder().BuildDomain()
		e.store.PutFlight(flight)

		_, err := e.bookings.CreateFlightBooking(ctx, e.flightInput(flight.ID(), 2, "12A", "12B"))
		require.NoError(t, err)

		_, err = e.bookings.CreateFlightBooking(ctx, e.flightInput(flight.ID(), 2, "12b", "14C"))
		require.Error(t, err)

		seats, ok := errs.ConflictingSeats(err)
		require.True(t, ok)
		assert.Equal(t, []string{"12B"}, seats)
		assert.Equal(t, 8, e.store.Flight(flight.ID()).Capacity().Available())
	})

	t.Run("取消済み予約の座席は再利用できる", func(t *testing.T) {
		e := newEnv(t)
		flight := builder.NewFlightBuilder().BuildDomain()
		e.store.PutFlight(flight)

		in := e.flightInput(flight.ID(), 1, "1A")
		first, err := e.bookings.CreateFlightBooking(ctx, in)
		require.NoError(t, err)
		_, err = e.bookings.CancelBooking(ctx, first.BookingID, in.UserID, false)
		require.NoError(t, err)

		_, err = e.bookings.CreateFlightBooking(ctx, e.flightInput(flight.ID(), 1, "1A"))
		assert.NoError(t, err)
	})

	t.Run("存在しない便はNotFound", func(t *testing.T) {
		e := newEnv(t)

		_, err := e.bookings.CreateFlightBooking(ctx, e.flightInput(uuid.New(), 1))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("出発済みの便は予約不可", func(t *testing.T) {
		e := newEnv(t)
		flight := builder.NewFlightBuilder().Departed(time.Hour).BuildDomain()
		e.store.PutFlight(flight)

		_, err := e.bookings.CreateFlightBooking(ctx, e.flightInput(flight.ID(), 1))
		assert.True(t, errs.Is(err, inventory.ErrFlightDeparted))
		assert.Equal(t, "inventory_unavailable", errs.Code(err))
	})

	t.Run("入力検証は在庫に触れる前", func(t *testing.T) {
		e := newEnv(t)
		flight := builder.NewFlightBuilder().BuildDomain()
		e.store.PutFlight(flight)

		in := e.flightInput(flight.ID(), 2)
		in.Passengers = in.Passengers[:1]
		_, err := e.bookings.CreateFlightBooking(ctx, in)

		assert.True(t, errs.Is(err, booking.ErrPassengerCountMismatch))
		assert.Equal(t, 0, e.store.Commits())
	})
}

func TestCreateFlightBooking_NoOversell(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	flight := builder.NewFlightBuilder().WithSeats(5, 5).BuildDomain()
	e.store.PutFlight(flight)

	const workers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.bookings.CreateFlightBooking(ctx, e.flightInput(flight.ID(), 1))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
				return
			}
			if errs.Is(err, errs.ErrInsufficientCapacity) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, succeeded)
	assert.Equal(t, workers-5, rejected)
	assert.Equal(t, 0, e.store.Flight(flight.ID()).Capacity().Available())
	assert.Len(t, e.store.Bookings(), 5)
}

func TestCreatePackageBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("人数分の料金で枠を1つ消費", func(t *testing.T) {
		e := newEnv(t)
		offer := builder.NewOfferBuilder().WithSlots(3, 0).BuildDomain()
		e.store.PutOffer(offer)

		res, err := e.bookings.CreatePackageBooking(ctx, e.packageInput(offer.ID(), 2))
		require.NoError(t, err)

		assert.Equal(t, 1, e.store.Offer(offer.ID()).Slots().Current())
		assert.Equal(t, int64(160000), e.store.Booking(res.BookingID).TotalCents())
	})

	t.Run("定額なら人数に関係なく同額", func(t *testing.T) {
		e := newEnv(t)
		offer := builder.NewOfferBuilder().Flat().BuildDomain()
		e.store.PutOffer(offer)

		res, err := e.bookings.CreatePackageBooking(ctx, e.packageInput(offer.ID(), 4))
		require.NoError(t, err)

		assert.Equal(t, int64(80000), e.store.Booking(res.BookingID).TotalCents())
	})

	t.Run("満枠は容量不足", func(t *testing.T) {
		e := newEnv(t)
		offer := builder.NewOfferBuilder().WithSlots(1, 1).BuildDomain()
		e.store.PutOffer(offer)

		_, err := e.bookings.CreatePackageBooking(ctx, e.packageInput(offer.ID(), 1))
		assert.True(t, errs.Is(err, errs.ErrInsufficientCapacity))
		assert.Empty(t, e.store.Bookings())
	})

	t.Run("上限なしは何件でも受け付ける", func(t *testing.T) {
		e := newEnv(t)
		offer := builder.NewOfferBuilder().BuildDomain()
		e.store.PutOffer(offer)

		for range 5 {
			_, err := e.bookings.CreatePackageBooking(ctx, e.packageInput(offer.ID(), 1))
			require.NoError(t, err)
		}
		assert.Equal(t, 5, e.store.Offer(offer.ID()).Slots().Current())
	})

	t.Run("非公開プランは予約不可", func(t *testing.T) {
		e := newEnv(t)
		offer := builder.NewOfferBuilder().With(func(o *builder.OfferBuilder) { o.Visible = false }).BuildDomain()
		e.store.PutOffer(offer)

		_, err := e.bookings.CreatePackageBooking(ctx, e.packageInput(offer.ID(), 1))
		assert.True(t, errs.Is(err, inventory.ErrOfferHidden))
	})
}

func TestCreateBooking_ReferenceCollision(t *testing.T) {
	ctx := context.Background()

	t.Run("衝突した参照番号は引き直す", func(t *testing.T) {
		e := newEnv(t)
		offer := builder.NewOfferBuilder().WithSlots(3, 0).BuildDomain()
		e.store.PutOffer(offer)
		codes := &scriptedCodes{refs: []string{"TRV-SAME0001", "TRV-SAME0001", "TRV-FRESH001"}}
		bookings := commands.NewBookingCommands(e.store, commands.NewAllocator(), e.notifier, e.clock, codes, config.NewTestConfig().Booking)

		first, err := bookings.CreatePackageBooking(ctx, e.packageInput(offer.ID(), 1))
		require.NoError(t, err)
		second, err := bookings.CreatePackageBooking(ctx, e.packageInput(offer.ID(), 1))
		require.NoError(t, err)

		assert.Equal(t, "TRV-SAME0001", first.Reference)
		assert.Equal(t, "TRV-FRESH001", second.Reference)
		assert.Equal(t, "TRV-FRESH001", e.store.Booking(second.BookingID).Reference())
		assert.Equal(t, 2, e.store.Offer(offer.ID()).Slots().Current())
	})

	t.Run("引き直しても衝突すれば内部エラーで何も残さない", func(t *testing.T) {
		e := newEnv(t)
		flight := builder.NewFlightBuilder().WithSeats(10, 10).BuildDomain()
		e.store.PutFlight(flight)
		codes := &scriptedCodes{refs: []string{"TRV-SAME0001", "TRV-SAME0001", "TRV-SAME0001", "TRV-SAME0001"}}
		bookings := commands.NewBookingCommands(e.store, commands.NewAllocator(), e.notifier, e.clock, codes, config.NewTestConfig().Booking)

		_, err := bookings.CreateFlightBooking(ctx, e.flightInput(flight.ID(), 2))
		require.NoError(t, err)
		_, err = bookings.CreateFlightBooking(ctx, e.flightInput(flight.ID(), 2))

		require.Error(t, err)
		assert.True(t, errs.Is(err, booking.ErrDuplicateReference))
		assert.Equal(t, "internal", errs.Code(err))
		assert.Len(t, e.store.Bookings(), 1)
		assert.Equal(t, 8, e.store.Flight(flight.ID()).Capacity().Available())
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("本人の取消で座席を戻す", func(t *testing.T) {
		e := newEnv(t)
		flight := builder.NewFlightBuilder().WithSeats(10, 10).BuildDomain()
		e.store.PutFlight(flight)
		in := e.flightInput(flight.ID(), 4)
		created, err := e.bookings.CreateFlightBooking(ctx, in)
		require.NoError(t, err)

		e.clock.Add(time.Hour)
		res, err := e.bookings.CancelBooking(ctx, created.BookingID, in.UserID, false)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusCancelled, res.Status)
		assert.Equal(t, 10, e.store.Flight(flight.ID()).Capacity().Available())
		assert.Equal(t, builder.BaseTime.Add(time.Hour), e.store.Flight(flight.ID()).UpdatedAt())

		stored := e.store.Booking(created.BookingID)
		assert.True(t, stored.Archive().IsArchived())
		assert.Equal(t, archive.ReasonCancelled, stored.Archive().Reason())
		assert.Equal(t, []booking.Event{booking.EventCreated, booking.EventCancelled}, e.notifier.events())
	})

	t.Run("パッケージ取消で枠を戻す", func(t *testing.T) {
		e := newEnv(t)
		offer := builder.NewOfferBuilder().WithSlots(2, 0).BuildDomain()
		e.store.PutOffer(offer)
		in := e.packageInput(offer.ID(), 2)
		created, err := e.bookings.CreatePackageBooking(ctx, in)
		require.NoError(t, err)

		assert.Equal(t, builder.BaseTime, e.store.Offer(offer.ID()).UpdatedAt())

		e.clock.Add(time.Hour)
		_, err = e.bookings.CancelBooking(ctx, created.BookingID, uuid.New(), true)
		require.NoError(t, err)

		assert.Equal(t, 0, e.store.Offer(offer.ID()).Slots().Current())
		assert.Equal(t, builder.BaseTime.Add(time.Hour), e.store.Offer(offer.ID()).UpdatedAt())
	})

	t.Run("他人は取消できない", func(t *testing.T) {
		e := newEnv(t)
		flight := builder.NewFlightBuilder().BuildDomain()
		e.store.PutFlight(flight)
		created, err := e.bookings.CreateFlightBooking(ctx, e.flightInput(flight.ID(), 1))
		require.NoError(t, err)

		_, err = e.bookings.CancelBooking(ctx, created.BookingID, uuid.New(), false)
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
		assert.Equal(t, booking.StatusPending, e.store.Booking(created.BookingID).Status())
	})

	t.Run("二重取消は座席を二重に戻さない", func(t *testing.T) {
		e := newEnv(t)
		flight := builder.NewFlightBuilder().WithSeats(10, 10).BuildDomain()
		e.store.PutFlight(flight)
		in := e.flightInput(flight.ID(), 2)
		created, err := e.bookings.CreateFlightBooking(ctx, in)
		require.NoError(t, err)
		_, err = e.bookings.CancelBooking(ctx, created.BookingID, in.UserID, false)
		require.NoError(t, err)

		_, err = e.bookings.CancelBooking(ctx, created.BookingID, in.UserID, false)
		assert.True(t, errs.Is(err, booking.ErrAlreadyCancelled))
		assert.Equal(t, 10, e.store.Flight(flight.ID()).Capacity().Available())
	})

	t.Run("保存失敗ならロールバック", func(t *testing.T) {
		e := newEnv(t)
		flight := builder.NewFlightBuilder().WithSeats(10, 10).BuildDomain()
		e.store.PutFlight(flight)
		in := e.flightInput(flight.ID(), 2)
		created, err := e.bookings.CreateFlightBooking(ctx, in)
		require.NoError(t, err)

		e.store.FailOn(func(op string, _ uuid.UUID) error {
			if op == "bookings.Save" {
				return assert.AnError
			}
			return nil
		})
		_, err = e.bookings.CancelBooking(ctx, created.BookingID, in.UserID, false)
		require.ErrorIs(t, err, assert.AnError)

		assert.Equal(t, 8, e.store.Flight(flight.ID()).Capacity().Available())
		assert.Equal(t, booking.StatusPending, e.store.Booking(created.BookingID).Status())
	})
}

func TestConfirmBooking(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	flight := builder.NewFlightBuilder().BuildDomain()
	e.store.PutFlight(flight)
	created, err := e.bookings.CreateFlightBooking(ctx, e.flightInput(flight.ID(), 1))
	require.NoError(t, err)

	t.Run("保留から確定", func(t *testing.T) {
		res, err := e.bookings.ConfirmBooking(ctx, created.BookingID)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusConfirmed, res.Status)
		stored := e.store.Booking(created.BookingID)
		require.NotNil(t, stored.ConfirmedAt())
		assert.Equal(t, builder.BaseTime, *stored.ConfirmedAt())
	})

	t.Run("確定済みは再確定不可", func(t *testing.T) {
		_, err := e.bookings.ConfirmBooking(ctx, created.BookingID)
		assert.True(t, errs.Is(err, booking.ErrNotPending))
		assert.Equal(t, "illegal_transition", errs.Code(err))
	})
}

func TestDeleteBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("容量を保持していれば戻してから削除", func(t *testing.T) {
		e := newEnv(t)
		flight := builder.NewFlightBuilder().WithSeats(10, 10).BuildDomain()
		e.store.PutFlight(flight)
		created, err := e.bookings.CreateFlightBooking(ctx, e.flightInput(flight.ID(), 3))
		require.NoError(t, err)

		require.NoError(t, e.bookings.DeleteBooking(ctx, created.BookingID))

		assert.Nil(t, e.store.Booking(created.BookingID))
		assert.Equal(t, 10, e.store.Flight(flight.ID()).Capacity().Available())
	})

	t.Run("取消済みは容量を戻さない", func(t *testing.T) {
		e := newEnv(t)
		flight := builder.NewFlightBuilder().WithSeats(10, 7).BuildDomain()
		e.store.PutFlight(flight)
		b := builder.NewBookingBuilder().ForFlight(flight.ID()).WithStatus(booking.StatusCancelled).BuildDomain()
		e.store.PutBooking(b)

		require.NoError(t, e.bookings.DeleteBooking(ctx, b.ID()))

		assert.Equal(t, 7, e.store.Flight(flight.ID()).Capacity().Available())
	})

	t.Run("存在しなければNotFound", func(t *testing.T) {
		e := newEnv(t)
		err := e.bookings.DeleteBooking(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestNotifierFailureDoesNotUndoTransition(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.notifier.err = assert.AnError
	flight := builder.NewFlightBuilder().BuildDomain()
	e.store.PutFlight(flight)

	res, err := e.bookings.CreateFlightBooking(ctx, e.flightInput(flight.ID(), 1))
	require.NoError(t, err)

	require.NotNil(t, e.store.Booking(res.BookingID))
	if diff := cmp.Diff([]booking.Event{booking.EventCreated}, e.notifier.events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}
