package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher is the part of *amqp.Channel the notifier needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPNotifier publishes persistent JSON messages to a durable queue on the
// default exchange. An amqp channel is not safe for concurrent publishes,
// hence the mutex.
type AMQPNotifier struct {
	mu    sync.Mutex
	pub   Publisher
	queue string
	clock clock.Clock
}

func NewAMQPNotifier(pub Publisher, queue string, clk clock.Clock) *AMQPNotifier {
	return &AMQPNotifier{pub: pub, queue: queue, clock: clk}
}

func (n *AMQPNotifier) Notify(ctx context.Context, userID uuid.UUID, b *booking.Booking, event booking.Event) error {
	now := n.clock.Now()
	body, err := json.Marshal(NewMessage(userID, b, event, now))
	if err != nil {
		return errs.Wrap(err, "marshal notification")
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
		Type:         event.String(),
		MessageId:    b.ID().String() + ":" + event.String(),
		Body:         body,
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.pub.PublishWithContext(ctx, "", n.queue, false, false, pub); err != nil {
		return errs.Wrapf(err, "publish %s for booking %s", event, b.ID())
	}
	return nil
}

// Broker owns the AMQP connection and the channel the notifier publishes on.
type Broker struct {
	conn    *amqp.Connection
	Channel *amqp.Channel
}

func Dial(cfg config.BrokerConfig) (*Broker, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "dial broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open broker channel")
	}
	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "declare queue %s", cfg.Queue)
	}
	slog.Info("broker connected", "queue", cfg.Queue)
	return &Broker{conn: conn, Channel: ch}, nil
}

func (b *Broker) Close() error {
	if err := b.Channel.Close(); err != nil && !errs.Is(err, amqp.ErrClosed) {
		slog.Warn("failed to close broker channel", "error", err.Error())
	}
	return b.conn.Close()
}
