//go:build unit

package booking_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/domain/booking"
	"travel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

func TestSweepDecision(t *testing.T) {
	policy := archive.DefaultPolicy()
	departed := now.Add(-time.Hour)
	upcoming := now.Add(48 * time.Hour)

	cases := []struct {
		name      string
		booking   *builder.BookingBuilder
		departure *time.Time
		want      booking.SweepOutcome
	}{
		{
			name:      "出発済み便の確定予約はcompleted",
			booking:   builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed),
			departure: &departed,
			want:      booking.SweepOutcome{Action: booking.SweepArchive, Reason: archive.ReasonCompleted},
		},
		{
			name:      "出発済み便のキャンセル予約はcancelled",
			booking:   builder.NewBookingBuilder().WithStatus(booking.StatusCancelled),
			departure: &departed,
			want:      booking.SweepOutcome{Action: booking.SweepArchive, Reason: archive.ReasonCancelled},
		},
		{
			name:      "出発済み便の保留予約は期限切れ",
			booking:   builder.NewBookingBuilder(),
			departure: &departed,
			want:      booking.SweepOutcome{Action: booking.SweepExpire, Reason: archive.ReasonExpired},
		},
		{
			name:      "未出発便の新しい保留予約は対象外",
			booking:   builder.NewBookingBuilder(),
			departure: &upcoming,
		},
		{
			name:      "3日超の保留予約は期限切れ",
			booking:   builder.NewBookingBuilder().CreatedAgo(4 * day),
			departure: &upcoming,
			want:      booking.SweepOutcome{Action: booking.SweepExpire, Reason: archive.ReasonExpired},
		},
		{
			name:      "3日超でも確定済みなら対象外",
			booking:   builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).CreatedAgo(4 * day),
			departure: &upcoming,
		},
		{
			name:    "パッケージのキャンセル予約はcancelled",
			booking: builder.NewBookingBuilder().ForOffer(uuid.New()).WithStatus(booking.StatusCancelled),
			want:    booking.SweepOutcome{Action: booking.SweepArchive, Reason: archive.ReasonCancelled},
		},
		{
			name:    "90日超のパッケージ確定予約はcompleted",
			booking: builder.NewBookingBuilder().ForOffer(uuid.New()).WithStatus(booking.StatusConfirmed).CreatedAgo(91 * day),
			want:    booking.SweepOutcome{Action: booking.SweepArchive, Reason: archive.ReasonCompleted},
		},
		{
			name:    "90日以内のパッケージ確定予約は対象外",
			booking: builder.NewBookingBuilder().ForOffer(uuid.New()).WithStatus(booking.StatusConfirmed).CreatedAgo(89 * day),
		},
		{
			name:    "パッケージの古い保留予約は期限切れ",
			booking: builder.NewBookingBuilder().ForOffer(uuid.New()).CreatedAgo(5 * day),
			want:    booking.SweepOutcome{Action: booking.SweepExpire, Reason: archive.ReasonExpired},
		},
		{
			name:      "アーカイブ済みは対象外",
			booking:   builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).Archived(archive.ReasonManual),
			departure: &departed,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := c.booking.BuildDomain()
			got := b.SweepDecision(booking.SweepInput{Now: now, FlightDeparture: c.departure, Policy: policy})
			assert.Equal(t, c.want, got)
		})
	}
}

func TestSweepApplyIsIdempotent(t *testing.T) {
	policy := archive.DefaultPolicy()
	departed := now.Add(-time.Hour)
	b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()
	in := booking.SweepInput{Now: now, FlightDeparture: &departed, Policy: policy}

	out := b.SweepDecision(in)
	require.NoError(t, b.Apply(out, now))
	assert.True(t, b.Archive().IsArchived())
	assert.Equal(t, booking.StatusConfirmed, b.Status())

	assert.Equal(t, booking.SweepOutcome{}, b.SweepDecision(in))
	assert.NoError(t, b.Apply(booking.SweepOutcome{}, now))
}
