package notify

import (
	"context"
	"log/slog"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// LogNotifier writes events to the structured log. Used when no broker is configured.
type LogNotifier struct {
	logger *slog.Logger
	clock  clock.Clock
}

func NewLogNotifier(logger *slog.Logger, clk clock.Clock) *LogNotifier {
	return &LogNotifier{logger: logger, clock: clk}
}

func (n *LogNotifier) Notify(ctx context.Context, userID uuid.UUID, b *booking.Booking, event booking.Event) error {
	m := NewMessage(userID, b, event, n.clock.Now())
	n.logger.InfoContext(ctx, "booking notification",
		"event", m.Event,
		"booking_id", m.BookingID,
		"reference", m.Reference,
		"user_id", m.UserID,
		"status", m.Status)
	return nil
}
