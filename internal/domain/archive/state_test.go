//go:build unit

package archive_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("アーカイブと復元", func(t *testing.T) {
		s, err := archive.Active().Archive(archive.ReasonManual, now)
		require.NoError(t, err)
		assert.True(t, s.IsArchived())
		assert.Equal(t, archive.ReasonManual, s.Reason())
		require.NotNil(t, s.At())
		assert.Equal(t, now, *s.At())

		restored, err := s.Restore()
		require.NoError(t, err)
		assert.False(t, restored.IsArchived())
		assert.Nil(t, restored.At())
		assert.Nil(t, restored.ReasonPtr())
	})

	t.Run("二重アーカイブはNG", func(t *testing.T) {
		s := archive.Archived(archive.ReasonCompleted, now)
		_, err := s.Archive(archive.ReasonExpired, now)
		assert.True(t, errs.Is(err, archive.ErrAlreadyArchived))
		assert.True(t, errs.Is(err, errs.ErrIllegalTransition))
	})

	t.Run("未アーカイブの復元はNG", func(t *testing.T) {
		_, err := archive.Active().Restore()
		assert.True(t, errs.Is(err, errs.ErrIllegalTransition))
	})

	t.Run("永続化値からの復元", func(t *testing.T) {
		reason := "expired"
		s, err := archive.Reconstruct(true, &reason, &now)
		require.NoError(t, err)
		assert.Equal(t, archive.ReasonExpired, s.Reason())

		_, err = archive.Reconstruct(true, nil, &now)
		assert.True(t, errs.Is(err, errs.ErrValidation))

		bad := "lost"
		_, err = archive.Reconstruct(true, &bad, &now)
		assert.True(t, errs.Is(err, archive.ErrInvalidReason))

		s, err = archive.Reconstruct(false, &reason, &now)
		require.NoError(t, err)
		assert.False(t, s.IsArchived())
	})

	t.Run("ArchivedBefore", func(t *testing.T) {
		s := archive.Archived(archive.ReasonManual, now)
		assert.True(t, s.ArchivedBefore(now.Add(time.Second)))
		assert.False(t, s.ArchivedBefore(now))
		assert.False(t, archive.Active().ArchivedBefore(now))
	})
}

func TestNewKind(t *testing.T) {
	for _, s := range []string{"flight", "package", "booking", "user"} {
		k, err := archive.NewKind(s)
		require.NoError(t, err)
		assert.Equal(t, s, k.String())
	}
	_, err := archive.NewKind("coupon")
	assert.True(t, errs.Is(err, errs.ErrValidation))
}
