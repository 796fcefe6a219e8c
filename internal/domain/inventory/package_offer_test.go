//go:build unit

package inventory_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offerParams() inventory.OfferParams {
	max := 5
	return inventory.OfferParams{
		Title:       "Okinawa 3 nights",
		Destination: "OKA",
		PriceCents:  50000,
		PricingUnit: inventory.PricePerPerson,
		ValidFrom:   now.Add(-24 * time.Hour),
		ValidTo:     now.Add(30 * 24 * time.Hour),
		Visible:     true,
		Bookable:    true,
		MaxBookings: &max,
	}
}

func TestPackageOffer(t *testing.T) {
	t.Run("料金計算", func(t *testing.T) {
		o, err := inventory.NewPackageOffer(offerParams(), now)
		require.NoError(t, err)
		assert.Equal(t, int64(150000), o.PriceFor(3))

		p := offerParams()
		p.PricingUnit = inventory.PriceFlat
		flat, err := inventory.NewPackageOffer(p, now)
		require.NoError(t, err)
		assert.Equal(t, int64(50000), flat.PriceFor(3))
	})

	t.Run("予約可否", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(p *inventory.OfferParams)
			at     time.Time
			errIs  error
			kind   error
		}{
			{name: "OK", at: now},
			{name: "非表示NG", mutate: func(p *inventory.OfferParams) { p.Visible = false }, at: now, errIs: inventory.ErrOfferHidden, kind: errs.ErrNotFound},
			{name: "予約不可NG", mutate: func(p *inventory.OfferParams) { p.Bookable = false }, at: now, errIs: inventory.ErrOfferNotBookable, kind: errs.ErrInventoryUnavailable},
			{name: "期間前NG", at: now.Add(-48 * time.Hour), errIs: inventory.ErrOfferOutOfWindow, kind: errs.ErrInventoryUnavailable},
			{name: "期間後NG", at: now.Add(31 * 24 * time.Hour), errIs: inventory.ErrOfferOutOfWindow, kind: errs.ErrInventoryUnavailable},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				p := offerParams()
				if c.mutate != nil {
					c.mutate(&p)
				}
				o, err := inventory.NewPackageOffer(p, now)
				require.NoError(t, err)
				err = o.CheckBookable(c.at)
				if c.errIs == nil {
					assert.NoError(t, err)
					return
				}
				assert.True(t, errs.Is(err, c.errIs))
				assert.True(t, errs.Is(err, c.kind))
			})
		}
	})

	t.Run("入力検証", func(t *testing.T) {
		p := offerParams()
		p.ValidTo = p.ValidFrom
		_, err := inventory.NewPackageOffer(p, now)
		assert.True(t, errs.Is(err, inventory.ErrInvalidValidity))

		p = offerParams()
		p.PricingUnit = "per_night"
		_, err = inventory.NewPackageOffer(p, now)
		assert.True(t, errs.Is(err, inventory.ErrInvalidPricingUnit))

		p = offerParams()
		p.Title = ""
		_, err = inventory.NewPackageOffer(p, now)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
