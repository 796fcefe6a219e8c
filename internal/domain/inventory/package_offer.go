package inventory

import (
	"strings"
	"time"

	"travel-booking/internal/domain/archive"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/ids"

	"github.com/google/uuid"
)

var (
	ErrOfferTitleRequired = errs.NewKind("offer title is required", errs.ErrValidation)
	ErrInvalidValidity    = errs.NewKind("valid_to must be after valid_from", errs.ErrValidation)
	ErrOfferHidden        = errs.NewKind("offer not found", errs.ErrNotFound)
	ErrOfferNotBookable   = errs.NewKind("offer is not bookable", errs.ErrInventoryUnavailable)
	ErrOfferOutOfWindow   = errs.NewKind("offer is outside its validity window", errs.ErrInventoryUnavailable)
)

type OfferParams struct {
	Title       string
	Destination string
	PriceCents  int64
	PricingUnit PricingUnit
	ValidFrom   time.Time
	ValidTo     time.Time
	Visible     bool
	Bookable    bool
	MaxBookings *int
}

type PackageOffer struct {
	id          uuid.UUID
	title       string
	destination string
	priceCents  int64
	pricingUnit PricingUnit
	validFrom   time.Time
	validTo     time.Time
	visible     bool
	bookable    bool
	slots       SlotPool
	archive     archive.State
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPackageOffer(p OfferParams, now time.Time) (*PackageOffer, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrOfferTitleRequired
	}
	if p.PriceCents < 0 {
		return nil, ErrNegativePrice
	}
	if _, err := NewPricingUnit(p.PricingUnit.String()); err != nil {
		return nil, err
	}
	if !p.ValidTo.After(p.ValidFrom) {
		return nil, ErrInvalidValidity
	}
	slots, err := NewSlotPool(p.MaxBookings)
	if err != nil {
		return nil, err
	}

	return &PackageOffer{
		id:          ids.New(),
		title:       title,
		destination: strings.TrimSpace(p.Destination),
		priceCents:  p.PriceCents,
		pricingUnit: p.PricingUnit,
		validFrom:   p.ValidFrom,
		validTo:     p.ValidTo,
		visible:     p.Visible,
		bookable:    p.Bookable,
		slots:       slots,
		archive:     archive.Active(),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPackageOffer(
	id uuid.UUID,
	p OfferParams,
	currentBookings int,
	archiveState archive.State,
	createdAt, updatedAt time.Time,
) (*PackageOffer, error) {
	slots, err := ReconstructSlotPool(p.MaxBookings, currentBookings)
	if err != nil {
		return nil, err
	}
	return &PackageOffer{
		id:          id,
		title:       p.Title,
		destination: p.Destination,
		priceCents:  p.PriceCents,
		pricingUnit: p.PricingUnit,
		validFrom:   p.ValidFrom,
		validTo:     p.ValidTo,
		visible:     p.Visible,
		bookable:    p.Bookable,
		slots:       slots,
		archive:     archiveState,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (o *PackageOffer) ID() uuid.UUID            { return o.id }
func (o *PackageOffer) Title() string            { return o.title }
func (o *PackageOffer) Destination() string      { return o.destination }
func (o *PackageOffer) PriceCents() int64        { return o.priceCents }
func (o *PackageOffer) PricingUnit() PricingUnit { return o.pricingUnit }
func (o *PackageOffer) ValidFrom() time.Time     { return o.validFrom }
func (o *PackageOffer) ValidTo() time.Time       { return o.validTo }
func (o *PackageOffer) IsVisible() bool          { return o.visible }
func (o *PackageOffer) IsBookable() bool         { return o.bookable }
func (o *PackageOffer) Slots() SlotPool          { return o.slots }
func (o *PackageOffer) Archive() archive.State   { return o.archive }
func (o *PackageOffer) CreatedAt() time.Time     { return o.createdAt }
func (o *PackageOffer) UpdatedAt() time.Time     { return o.updatedAt }

// CheckBookable covers the flags and the validity window. Slot
// availability is decided atomically by the allocator.
func (o *PackageOffer) CheckBookable(now time.Time) error {
	switch {
	case o.archive.IsArchived():
		return ErrInventoryArchived
	case !o.visible:
		return ErrOfferHidden
	case !o.bookable:
		return ErrOfferNotBookable
	case now.Before(o.validFrom) || now.After(o.validTo):
		return ErrOfferOutOfWindow
	}
	return nil
}

func (o *PackageOffer) PriceFor(persons int) int64 {
	if o.pricingUnit == PricePerPerson {
		return o.priceCents * int64(persons)
	}
	return o.priceCents
}

func (o *PackageOffer) ArchiveManually(now time.Time) error {
	next, err := o.archive.Archive(archive.ReasonManual, now)
	if err != nil {
		return err
	}
	o.archive = next
	o.updatedAt = now
	return nil
}

func (o *PackageOffer) Restore(now time.Time) error {
	next, err := o.archive.Restore()
	if err != nil {
		return err
	}
	o.archive = next
	o.updatedAt = now
	return nil
}
