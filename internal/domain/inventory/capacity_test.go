//go:build unit

package inventory_test

import (
	"math/rand/v2"
	"testing"

	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacity(t *testing.T) {
	t.Run("確保と解放", func(t *testing.T) {
		c, err := inventory.NewCapacity(2)
		require.NoError(t, err)

		c, err = c.Reserve(2)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Available())
		assert.Equal(t, 2, c.Booked())

		_, err = c.Reserve(1)
		assert.True(t, errs.Is(err, errs.ErrInsufficientCapacity))

		c = c.Release(2)
		assert.Equal(t, 2, c.Available())
	})

	t.Run("部分確保はしない", func(t *testing.T) {
		c, _ := inventory.NewCapacity(3)
		c, _ = c.Reserve(2)

		after, err := c.Reserve(2)
		require.Error(t, err)
		assert.Equal(t, 1, after.Available())
	})

	t.Run("二重解放はtotalで頭打ち", func(t *testing.T) {
		c, _ := inventory.NewCapacity(5)
		c, _ = c.Reserve(1)
		c = c.Release(1).Release(1)
		assert.Equal(t, 5, c.Available())
	})

	t.Run("入力検証", func(t *testing.T) {
		_, err := inventory.NewCapacity(0)
		assert.True(t, errs.Is(err, errs.ErrValidation))

		c, _ := inventory.NewCapacity(1)
		_, err = c.Reserve(0)
		assert.True(t, errs.Is(err, errs.ErrValidation))

		_, err = inventory.ReconstructCapacity(2, 3)
		assert.True(t, errs.Is(err, inventory.ErrCapacityRange))
		_, err = inventory.ReconstructCapacity(2, -1)
		assert.True(t, errs.Is(err, inventory.ErrCapacityRange))
	})

	t.Run("任意の操作列で0<=available<=totalを保つ", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(42, 7))
		for run := 0; run < 200; run++ {
			total := rng.IntN(20) + 1
			c, err := inventory.NewCapacity(total)
			require.NoError(t, err)
			for step := 0; step < 50; step++ {
				q := rng.IntN(6)
				if rng.IntN(2) == 0 {
					if next, rerr := c.Reserve(q); rerr == nil {
						c = next
					}
				} else {
					c = c.Release(q)
				}
				require.GreaterOrEqual(t, c.Available(), 0)
				require.LessOrEqual(t, c.Available(), c.Total())
			}
		}
	})
}

func TestSlotPool(t *testing.T) {
	t.Run("上限ありは満席で失敗し増えない", func(t *testing.T) {
		max := 5
		p, err := inventory.ReconstructSlotPool(&max, 5)
		require.NoError(t, err)

		after, err := p.Take()
		assert.True(t, errs.Is(err, inventory.ErrNoAvailableSlots))
		assert.True(t, errs.Is(err, errs.ErrInsufficientCapacity))
		assert.Equal(t, 5, after.Current())
	})

	t.Run("上限なしは常に確保できる", func(t *testing.T) {
		p, err := inventory.NewSlotPool(nil)
		require.NoError(t, err)
		for i := 0; i < 100; i++ {
			p, err = p.Take()
			require.NoError(t, err)
		}
		assert.True(t, p.IsUnlimited())
		assert.Equal(t, 100, p.Current())
	})

	t.Run("返却は0で止まる", func(t *testing.T) {
		p, _ := inventory.NewSlotPool(nil)
		assert.Equal(t, 0, p.Return().Current())
	})

	t.Run("不正な上限", func(t *testing.T) {
		zero := 0
		_, err := inventory.NewSlotPool(&zero)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
