package commands

//go:generate mockgen -destination=../../../tests/mock/commands/mock_commands.go -package=commandsmock travel-booking/internal/usecase/commands ArchiveCommands,AuthCommands,BookingCommands,InventoryCommands,SweepCommands

import (
	"context"
	"log/slog"

	"travel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Notifier delivers lifecycle events to the booking owner. Delivery is
// fire-and-forget: failures are logged and never undo the transition.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, b *booking.Booking, event booking.Event) error
}

// SweepLock elects a single sweeper across instances.
type SweepLock interface {
	TryLock(ctx context.Context) (unlock func(context.Context) error, acquired bool, err error)
}

type notification struct {
	booking *booking.Booking
	event   booking.Event
}

// dispatch runs after commit so subscribers never see rolled-back state.
func dispatch(ctx context.Context, n Notifier, pending []notification) {
	for _, p := range pending {
		if err := n.Notify(ctx, p.booking.UserID(), p.booking, p.event); err != nil {
			slog.WarnContext(ctx, "notification failed",
				"booking_id", p.booking.ID(),
				"event", p.event.String(),
				"error", err.Error())
		}
	}
}
