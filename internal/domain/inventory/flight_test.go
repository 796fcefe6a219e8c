//go:build unit

package inventory_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func flightParams() inventory.FlightParams {
	return inventory.FlightParams{
		FlightNumber:  "tb101",
		Origin:        "nrt",
		Destination:   "hnd",
		DepartureTime: now.Add(48 * time.Hour),
		ArrivalTime:   now.Add(50 * time.Hour),
		TotalSeats:    10,
		PriceCents:    12000,
	}
}

func flightWith(t *testing.T, mutate func(p *inventory.FlightParams), available int, status inventory.FlightStatus, updatedAt time.Time) *inventory.Flight {
	t.Helper()
	p := flightParams()
	if mutate != nil {
		mutate(&p)
	}
	f, err := inventory.ReconstructFlight(uuid.New(), p, available, status, archive.Active(), nil, nil, now.Add(-90*24*time.Hour), updatedAt)
	require.NoError(t, err)
	return f
}

func TestNewFlight(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *inventory.FlightParams)
		errIs  error
	}{
		{name: "基本成功ケース"},
		{name: "便名なしNG", mutate: func(p *inventory.FlightParams) { p.FlightNumber = " " }, errIs: inventory.ErrFlightNumberRequired},
		{name: "同一空港NG", mutate: func(p *inventory.FlightParams) { p.Destination = "NRT" }, errIs: inventory.ErrInvalidRoute},
		{name: "到着が出発より前NG", mutate: func(p *inventory.FlightParams) { p.ArrivalTime = p.DepartureTime }, errIs: inventory.ErrInvalidSchedule},
		{name: "座席0NG", mutate: func(p *inventory.FlightParams) { p.TotalSeats = 0 }, errIs: inventory.ErrInvalidCapacity},
		{name: "負の価格NG", mutate: func(p *inventory.FlightParams) { p.PriceCents = -1 }, errIs: inventory.ErrNegativePrice},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := flightParams()
			if c.mutate != nil {
				c.mutate(&p)
			}
			f, err := inventory.NewFlight(p, now)
			if c.errIs != nil {
				require.Nil(t, f)
				assert.True(t, errs.Is(err, c.errIs))
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "TB101", f.FlightNumber())
			assert.Equal(t, 10, f.Capacity().Available())
			assert.Equal(t, inventory.FlightScheduled, f.Status())
			assert.Equal(t, int64(36000), f.PriceFor(3))
		})
	}
}

func TestFlightCheckBookable(t *testing.T) {
	t.Run("出発済みNG", func(t *testing.T) {
		f := flightWith(t, func(p *inventory.FlightParams) {
			p.DepartureTime = now.Add(-time.Hour)
			p.ArrivalTime = now.Add(time.Hour)
		}, 10, inventory.FlightActive, now)
		assert.True(t, errs.Is(f.CheckBookable(now), inventory.ErrFlightDeparted))
	})

	t.Run("欠航NG", func(t *testing.T) {
		f := flightWith(t, nil, 10, inventory.FlightCancelled, now)
		assert.True(t, errs.Is(f.CheckBookable(now), errs.ErrInventoryUnavailable))
	})

	t.Run("アーカイブ済みNG", func(t *testing.T) {
		f := flightWith(t, nil, 10, inventory.FlightScheduled, now)
		require.NoError(t, f.ArchiveManually(now))
		assert.True(t, errs.Is(f.CheckBookable(now), inventory.ErrInventoryArchived))
	})

	t.Run("遅延中はOK", func(t *testing.T) {
		f := flightWith(t, nil, 10, inventory.FlightDelayed, now)
		assert.NoError(t, f.CheckBookable(now))
	})
}

func TestFlightSweep(t *testing.T) {
	policy := archive.DefaultPolicy()
	departed := func(p *inventory.FlightParams) {
		p.DepartureTime = now.Add(-2 * time.Hour)
		p.ArrivalTime = now.Add(-time.Hour)
	}

	t.Run("出発済みはcompletedでアーカイブし販売実績を記録", func(t *testing.T) {
		f := flightWith(t, departed, 4, inventory.FlightActive, now.Add(-time.Hour))

		out := f.Sweep(now, policy)

		assert.Equal(t, inventory.FlightSweep{StatusChanged: true, Archived: true, Reason: archive.ReasonCompleted}, out)
		assert.Equal(t, inventory.FlightCompleted, f.Status())
		assert.True(t, f.Archive().IsArchived())
		require.NotNil(t, f.BookedSeats())
		assert.Equal(t, 6, *f.BookedSeats())
		assert.Equal(t, int64(72000), *f.RevenueCents())
	})

	t.Run("出発済みの欠航便はcancelled", func(t *testing.T) {
		f := flightWith(t, departed, 10, inventory.FlightCancelled, now.Add(-time.Hour))

		out := f.Sweep(now, policy)

		assert.Equal(t, archive.ReasonCancelled, out.Reason)
		assert.False(t, out.StatusChanged)
		assert.Equal(t, inventory.FlightCancelled, f.Status())
		assert.Nil(t, f.BookedSeats())
	})

	t.Run("欠航から7日超はcancelled", func(t *testing.T) {
		f := flightWith(t, nil, 10, inventory.FlightCancelled, now.Add(-8*24*time.Hour))
		out := f.Sweep(now, policy)
		assert.True(t, out.Archived)
		assert.Equal(t, archive.ReasonCancelled, out.Reason)
	})

	t.Run("欠航から7日以内は対象外", func(t *testing.T) {
		f := flightWith(t, nil, 10, inventory.FlightCancelled, now.Add(-6*24*time.Hour))
		assert.Equal(t, inventory.FlightSweep{}, f.Sweep(now, policy))
		assert.False(t, f.Archive().IsArchived())
	})

	t.Run("未出発の通常便は対象外", func(t *testing.T) {
		f := flightWith(t, nil, 10, inventory.FlightScheduled, now)
		assert.Equal(t, inventory.FlightSweep{}, f.Sweep(now, policy))
	})

	t.Run("二度目のスイープは何も変えない", func(t *testing.T) {
		f := flightWith(t, departed, 4, inventory.FlightActive, now)
		f.Sweep(now, policy)
		assert.Equal(t, inventory.FlightSweep{}, f.Sweep(now.Add(time.Hour), policy))
	})

	t.Run("復元後の再スイープでも販売実績は上書きしない", func(t *testing.T) {
		f := flightWith(t, departed, 4, inventory.FlightActive, now)
		f.Sweep(now, policy)
		require.NoError(t, f.Restore(now))

		out := f.Sweep(now.Add(time.Hour), policy)
		assert.True(t, out.Archived)
		assert.False(t, out.StatusChanged)
		assert.Equal(t, 6, *f.BookedSeats())
	})
}

func TestFlightChangeStatus(t *testing.T) {
	f := flightWith(t, nil, 10, inventory.FlightScheduled, now)

	require.NoError(t, f.ChangeStatus(inventory.FlightDelayed, now))
	assert.Equal(t, inventory.FlightDelayed, f.Status())

	assert.True(t, errs.Is(f.ChangeStatus(inventory.FlightCompleted, now), errs.ErrIllegalTransition))

	require.NoError(t, f.ChangeStatus(inventory.FlightCancelled, now))
	assert.True(t, errs.Is(f.ChangeStatus(inventory.FlightActive, now), inventory.ErrFlightStatusFrozen))
}
