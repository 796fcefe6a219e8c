//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra/lock"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/commands"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/memstore"

	"github.com/google/uuid"
)

type sentEvent struct {
	UserID    uuid.UUID
	BookingID uuid.UUID
	Event     booking.Event
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentEvent
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, userID uuid.UUID, b *booking.Booking, event booking.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentEvent{UserID: userID, BookingID: b.ID(), Event: event})
	return n.err
}

func (n *recordingNotifier) events() []booking.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]booking.Event, len(n.sent))
	for i, s := range n.sent {
		out[i] = s.Event
	}
	return out
}

type fixedCodes struct{}

func (fixedCodes) Reference() string { return "TRV-" + uuid.NewString()[:8] }
func (fixedCodes) Ticket() string    { return "TKT-FIXED00001" }

// scriptedCodes hands out references in order, then falls back to fixedCodes.
type scriptedCodes struct {
	mu   sync.Mutex
	refs []string
}

func (c *scriptedCodes) Reference() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.refs) == 0 {
		return fixedCodes{}.Reference()
	}
	ref := c.refs[0]
	c.refs = c.refs[1:]
	return ref
}

func (c *scriptedCodes) Ticket() string { return fixedCodes{}.Ticket() }

type env struct {
	store    *memstore.Store
	clock    *clock.MockClock
	notifier *recordingNotifier
	lock     *lock.LocalLock
	bookings commands.BookingCommands
	sweep    commands.SweepCommands
	archive  commands.ArchiveCommands
	inv      commands.InventoryCommands
}

type envOption func(*config.Config)

func withAutoConfirm() envOption {
	return func(c *config.Config) { c.Booking.AutoConfirm = true }
}

func newEnv(t *testing.T, opts ...envOption) *env {
	t.Helper()
	cfg := config.NewTestConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &env{
		store:    memstore.New(),
		clock:    clock.NewMockClock(builder.BaseTime),
		notifier: &recordingNotifier{},
		lock:     lock.NewLocalLock(),
	}
	allocator := commands.NewAllocator()
	e.bookings = commands.NewBookingCommands(e.store, allocator, e.notifier, e.clock, fixedCodes{}, cfg.Booking)
	e.sweep = commands.NewSweepCommands(e.store, allocator, e.notifier, e.clock, e.lock, cfg.Sweep)
	e.archive = commands.NewArchiveCommands(e.store, e.clock, cfg.Sweep)
	e.inv = commands.NewInventoryCommands(e.store, e.clock)
	return e
}

func (e *env) flightInput(flightID uuid.UUID, quantity int, seats ...string) commands.FlightBookingInput {
	return commands.FlightBookingInput{
		UserID:      uuid.New(),
		FlightID:    flightID,
		Quantity:    quantity,
		Passengers:  builder.Passengers(quantity),
		SeatNumbers: seats,
	}
}

func (e *env) packageInput(offerID uuid.UUID, persons int) commands.PackageBookingInput {
	return commands.PackageBookingInput{
		UserID:     uuid.New(),
		OfferID:    offerID,
		Persons:    persons,
		Passengers: builder.Passengers(persons),
	}
}
