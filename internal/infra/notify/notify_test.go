//go:build unit

package notify_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra/notify"
	"travel-booking/internal/pkg/clock"
	"travel-booking/tests/common/builder"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	key  string
	msgs []amqp.Publishing
	err  error
}

func (p *capturePublisher) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	p.key = key
	p.msgs = append(p.msgs, msg)
	return p.err
}

func TestAMQPNotifier(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()

	t.Run("永続メッセージとして発行", func(t *testing.T) {
		pub := &capturePublisher{}
		n := notify.NewAMQPNotifier(pub, "booking.events", clock.NewMockClock(now))

		err := n.Notify(context.Background(), b.UserID(), b, booking.EventConfirmed)

		require.NoError(t, err)
		require.Len(t, pub.msgs, 1)
		assert.Equal(t, "booking.events", pub.key)
		msg := pub.msgs[0]
		assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
		assert.Equal(t, "application/json", msg.ContentType)
		assert.Equal(t, "booking.confirmed", msg.Type)

		var body notify.Message
		require.NoError(t, json.Unmarshal(msg.Body, &body))
		assert.Equal(t, b.ID(), body.BookingID)
		assert.Equal(t, "confirmed", body.Status)
		assert.Equal(t, now, body.OccurredAt)
	})

	t.Run("発行失敗はエラーを返す", func(t *testing.T) {
		pub := &capturePublisher{err: assert.AnError}
		n := notify.NewAMQPNotifier(pub, "q", clock.NewMockClock(now))

		err := n.Notify(context.Background(), b.UserID(), b, booking.EventCancelled)

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestLogNotifier(t *testing.T) {
	b := builder.NewBookingBuilder().BuildDomain()
	n := notify.NewLogNotifier(slog.New(slog.DiscardHandler), clock.NewRealClock())

	assert.NoError(t, n.Notify(context.Background(), b.UserID(), b, booking.EventCreated))
}
