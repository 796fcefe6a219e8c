//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for use-case tests.
// Write transactions run one at a time against a private copy of the data
// and are published only on commit, so a failing callback leaves no trace.
// Conditional debits behave like the SQL versions in internal/infra/repository.
package memstore

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// FailFunc lets a test inject an error for one repository operation.
// op is "<repo>.<method>", e.g. "bookings.Save".
type FailFunc func(op string, id uuid.UUID) error

type Store struct {
	mu      sync.Mutex
	data    *state
	failOn  FailFunc
	commits int
}

type state struct {
	flights  map[uuid.UUID]*inventory.Flight
	offers   map[uuid.UUID]*inventory.PackageOffer
	bookings map[uuid.UUID]*booking.Booking
	users    map[uuid.UUID]*user.User
}

func New() *Store {
	return &Store{data: &state{
		flights:  map[uuid.UUID]*inventory.Flight{},
		offers:   map[uuid.UUID]*inventory.PackageOffer{},
		bookings: map[uuid.UUID]*booking.Booking{},
		users:    map[uuid.UUID]*user.User{},
	}}
}

var _ shared.UnitOfWork = (*Store)(nil)

// FailOn installs fn; nil clears it.
func (s *Store) FailOn(fn FailFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOn = fn
}

// Commits counts successful write transactions.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.data.clone()
	if err := fn(ctx, &memTx{st: work, failOn: s.failOn}); err != nil {
		return err
	}
	s.data = work
	s.commits++
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	s.mu.Lock()
	snapshot := s.data.clone()
	s.mu.Unlock()
	return fn(ctx, &reads{st: snapshot})
}

// CommandReads reads committed data; each call sees the latest commit.
func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{s: s}
}

// Seed helpers write directly, bypassing transactions.

func (s *Store) PutFlight(f *inventory.Flight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.flights[f.ID()] = cloneFlight(f)
}

func (s *Store) PutOffer(o *inventory.PackageOffer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.offers[o.ID()] = cloneOffer(o)
}

func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.bookings[b.ID()] = cloneBooking(b)
}

func (s *Store) PutUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.users[u.ID()] = cloneUser(u)
}

func (s *Store) Flight(id uuid.UUID) *inventory.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.data.flights[id]; ok {
		return cloneFlight(f)
	}
	return nil
}

func (s *Store) Offer(id uuid.UUID) *inventory.PackageOffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.data.offers[id]; ok {
		return cloneOffer(o)
	}
	return nil
}

func (s *Store) Booking(id uuid.UUID) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.data.bookings[id]; ok {
		return cloneBooking(b)
	}
	return nil
}

func (s *Store) User(id uuid.UUID) *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.data.users[id]; ok {
		return cloneUser(u)
	}
	return nil
}

// Bookings returns every booking, oldest first.
func (s *Store) Bookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*booking.Booking, 0, len(s.data.bookings))
	for _, b := range s.data.bookings {
		out = append(out, cloneBooking(b))
	}
	sortBookings(out)
	return out
}

func (st *state) clone() *state {
	c := &state{
		flights:  make(map[uuid.UUID]*inventory.Flight, len(st.flights)),
		offers:   make(map[uuid.UUID]*inventory.PackageOffer, len(st.offers)),
		bookings: make(map[uuid.UUID]*booking.Booking, len(st.bookings)),
		users:    make(map[uuid.UUID]*user.User, len(st.users)),
	}
	for id, f := range st.flights {
		c.flights[id] = cloneFlight(f)
	}
	for id, o := range st.offers {
		c.offers[id] = cloneOffer(o)
	}
	for id, b := range st.bookings {
		c.bookings[id] = cloneBooking(b)
	}
	for id, u := range st.users {
		c.users[id] = cloneUser(u)
	}
	return c
}

// Entities only replace their pointer fields, so a shallow copy is enough.
func cloneFlight(f *inventory.Flight) *inventory.Flight {
	c := *f
	return &c
}

func cloneOffer(o *inventory.PackageOffer) *inventory.PackageOffer {
	c := *o
	return &c
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	c := *b
	return &c
}

func cloneUser(u *user.User) *user.User {
	c := *u
	return &c
}

func sortBookings(bs []*booking.Booking) {
	sort.Slice(bs, func(i, j int) bool {
		if bs[i].CreatedAt().Equal(bs[j].CreatedAt()) {
			return bs[i].ID().String() < bs[j].ID().String()
		}
		return bs[i].CreatedAt().Before(bs[j].CreatedAt())
	})
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

type memTx struct {
	st     *state
	failOn FailFunc
}

func (t *memTx) fail(op string, id uuid.UUID) error {
	if t.failOn == nil {
		return nil
	}
	return t.failOn(op, id)
}

func (t *memTx) Flights() shared.FlightRepository   { return &flightRepo{t} }
func (t *memTx) Offers() shared.OfferRepository     { return &offerRepo{t} }
func (t *memTx) Bookings() shared.BookingRepository { return &bookingRepo{t} }
func (t *memTx) Users() shared.UserRepository       { return &userRepo{t} }
func (t *memTx) Reads() shared.CommandReads         { return &reads{st: t.st} }

type flightRepo struct{ tx *memTx }

func (r *flightRepo) Create(_ context.Context, f *inventory.Flight) error {
	if err := r.tx.fail("flights.Create", f.ID()); err != nil {
		return err
	}
	r.tx.st.flights[f.ID()] = cloneFlight(f)
	return nil
}

func (r *flightRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*inventory.Flight, error) {
	f, ok := r.tx.st.flights[id]
	if !ok {
		return nil, notFound("flight")
	}
	return cloneFlight(f), nil
}

// Save keeps the stored available seat count.
func (r *flightRepo) Save(_ context.Context, f *inventory.Flight) error {
	if err := r.tx.fail("flights.Save", f.ID()); err != nil {
		return err
	}
	stored, ok := r.tx.st.flights[f.ID()]
	if !ok {
		return notFound("flight")
	}
	next, err := withAvailable(f, stored.Capacity(), f.UpdatedAt())
	if err != nil {
		return err
	}
	r.tx.st.flights[f.ID()] = next
	return nil
}

func (r *flightRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tx.st.flights[id]; !ok {
		return notFound("flight")
	}
	delete(r.tx.st.flights, id)
	for bid, b := range r.tx.st.bookings {
		if b.FlightID() != nil && *b.FlightID() == id {
			delete(r.tx.st.bookings, bid)
		}
	}
	return nil
}

func (r *flightRepo) ReserveSeats(_ context.Context, id uuid.UUID, quantity int, now time.Time) (int, error) {
	if err := r.tx.fail("flights.ReserveSeats", id); err != nil {
		return 0, err
	}
	f, ok := r.tx.st.flights[id]
	if !ok {
		return 0, notFound("flight")
	}
	capacity, err := f.Capacity().Reserve(quantity)
	if err != nil {
		return 0, errs.Wrapf(err, "flight %s has fewer than %d seats", id, quantity)
	}
	next, err := withAvailable(f, capacity, now)
	if err != nil {
		return 0, err
	}
	r.tx.st.flights[id] = next
	return capacity.Available(), nil
}

func (r *flightRepo) ReleaseSeats(_ context.Context, id uuid.UUID, quantity int, now time.Time) (int, error) {
	if err := r.tx.fail("flights.ReleaseSeats", id); err != nil {
		return 0, err
	}
	f, ok := r.tx.st.flights[id]
	if !ok {
		return 0, notFound("flight")
	}
	capacity := f.Capacity().Release(quantity)
	next, err := withAvailable(f, capacity, now)
	if err != nil {
		return 0, err
	}
	r.tx.st.flights[id] = next
	return capacity.Available(), nil
}

func withAvailable(f *inventory.Flight, capacity inventory.Capacity, updatedAt time.Time) (*inventory.Flight, error) {
	return inventory.ReconstructFlight(f.ID(), inventory.FlightParams{
		FlightNumber:  f.FlightNumber(),
		Origin:        f.Origin(),
		Destination:   f.Destination(),
		DepartureTime: f.DepartureTime(),
		ArrivalTime:   f.ArrivalTime(),
		TotalSeats:    f.Capacity().Total(),
		PriceCents:    f.PriceCents(),
	}, capacity.Available(), f.Status(), f.Archive(), f.BookedSeats(), f.RevenueCents(), f.CreatedAt(), updatedAt)
}

type offerRepo struct{ tx *memTx }

func (r *offerRepo) Create(_ context.Context, o *inventory.PackageOffer) error {
	if err := r.tx.fail("offers.Create", o.ID()); err != nil {
		return err
	}
	r.tx.st.offers[o.ID()] = cloneOffer(o)
	return nil
}

func (r *offerRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*inventory.PackageOffer, error) {
	o, ok := r.tx.st.offers[id]
	if !ok {
		return nil, notFound("package offer")
	}
	return cloneOffer(o), nil
}

// Save keeps the stored booking counter.
func (r *offerRepo) Save(_ context.Context, o *inventory.PackageOffer) error {
	if err := r.tx.fail("offers.Save", o.ID()); err != nil {
		return err
	}
	stored, ok := r.tx.st.offers[o.ID()]
	if !ok {
		return notFound("package offer")
	}
	next, err := withCurrent(o, stored.Slots(), o.UpdatedAt())
	if err != nil {
		return err
	}
	r.tx.st.offers[o.ID()] = next
	return nil
}

func (r *offerRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tx.st.offers[id]; !ok {
		return notFound("package offer")
	}
	delete(r.tx.st.offers, id)
	for bid, b := range r.tx.st.bookings {
		if b.OfferID() != nil && *b.OfferID() == id {
			delete(r.tx.st.bookings, bid)
		}
	}
	return nil
}

func (r *offerRepo) TakeSlot(_ context.Context, id uuid.UUID, now time.Time) (int, error) {
	if err := r.tx.fail("offers.TakeSlot", id); err != nil {
		return 0, err
	}
	o, ok := r.tx.st.offers[id]
	if !ok {
		return 0, notFound("package offer")
	}
	slots, err := o.Slots().Take()
	if err != nil {
		return 0, errs.Wrapf(err, "package offer %s", id)
	}
	next, err := withCurrent(o, slots, now)
	if err != nil {
		return 0, err
	}
	r.tx.st.offers[id] = next
	return slots.Current(), nil
}

func (r *offerRepo) ReturnSlot(_ context.Context, id uuid.UUID, now time.Time) (int, error) {
	if err := r.tx.fail("offers.ReturnSlot", id); err != nil {
		return 0, err
	}
	o, ok := r.tx.st.offers[id]
	if !ok {
		return 0, notFound("package offer")
	}
	slots := o.Slots().Return()
	next, err := withCurrent(o, slots, now)
	if err != nil {
		return 0, err
	}
	r.tx.st.offers[id] = next
	return slots.Current(), nil
}

func withCurrent(o *inventory.PackageOffer, slots inventory.SlotPool, updatedAt time.Time) (*inventory.PackageOffer, error) {
	return inventory.ReconstructPackageOffer(o.ID(), inventory.OfferParams{
		Title:       o.Title(),
		Destination: o.Destination(),
		PriceCents:  o.PriceCents(),
		PricingUnit: o.PricingUnit(),
		ValidFrom:   o.ValidFrom(),
		ValidTo:     o.ValidTo(),
		Visible:     o.IsVisible(),
		Bookable:    o.IsBookable(),
		MaxBookings: o.Slots().Max(),
	}, slots.Current(), o.Archive(), o.CreatedAt(), updatedAt)
}

type bookingRepo struct{ tx *memTx }

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if err := r.tx.fail("bookings.Create", b.ID()); err != nil {
		return err
	}
	for _, existing := range r.tx.st.bookings {
		if existing.Reference() == b.Reference() {
			return errs.Wrapf(booking.ErrDuplicateReference, "reference %s", b.Reference())
		}
	}
	r.tx.st.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r *bookingRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.tx.st.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return cloneBooking(b), nil
}

func (r *bookingRepo) Save(_ context.Context, b *booking.Booking) error {
	if err := r.tx.fail("bookings.Save", b.ID()); err != nil {
		return err
	}
	if _, ok := r.tx.st.bookings[b.ID()]; !ok {
		return notFound("booking")
	}
	r.tx.st.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r *bookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if err := r.tx.fail("bookings.Delete", id); err != nil {
		return err
	}
	if _, ok := r.tx.st.bookings[id]; !ok {
		return notFound("booking")
	}
	delete(r.tx.st.bookings, id)
	return nil
}

func (r *bookingRepo) TakenSeats(_ context.Context, flightID uuid.UUID, seats []string) ([]string, error) {
	var taken []string
	for _, b := range r.tx.st.bookings {
		if b.FlightID() == nil || *b.FlightID() != flightID || !b.HoldsCapacity() {
			continue
		}
		for _, seat := range b.Seats().Values() {
			if slices.Contains(seats, seat) && !slices.Contains(taken, seat) {
				taken = append(taken, seat)
			}
		}
	}
	sort.Strings(taken)
	return taken, nil
}

func (r *bookingRepo) CountActive(_ context.Context, ref shared.InventoryRef) (int, error) {
	n := 0
	for _, b := range r.tx.st.bookings {
		if !refersTo(b, ref) || b.Status() == booking.StatusCancelled || b.Archive().IsArchived() {
			continue
		}
		n++
	}
	return n, nil
}

func refersTo(b *booking.Booking, ref shared.InventoryRef) bool {
	switch ref.Kind {
	case booking.KindFlight:
		return b.FlightID() != nil && *b.FlightID() == ref.ID
	case booking.KindPackage:
		return b.OfferID() != nil && *b.OfferID() == ref.ID
	}
	return false
}

type userRepo struct{ tx *memTx }

func (r *userRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.tx.st.users {
		if existing.Email().Value() == u.Email().Value() {
			return errs.Mark(errs.Newf("email %s exists", u.Email().Value()), user.ErrEmailTaken)
		}
	}
	r.tx.st.users[u.ID()] = cloneUser(u)
	return nil
}

func (r *userRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.tx.st.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return cloneUser(u), nil
}

func (r *userRepo) Save(_ context.Context, u *user.User) error {
	if err := r.tx.fail("users.Save", u.ID()); err != nil {
		return err
	}
	if _, ok := r.tx.st.users[u.ID()]; !ok {
		return notFound("user")
	}
	r.tx.st.users[u.ID()] = cloneUser(u)
	return nil
}

// reads serves CommandReads over one state without locking.
type reads struct{ st *state }

func (r *reads) FlightByID(_ context.Context, id uuid.UUID) (*inventory.Flight, error) {
	f, ok := r.st.flights[id]
	if !ok {
		return nil, notFound("flight")
	}
	return cloneFlight(f), nil
}

func (r *reads) OfferByID(_ context.Context, id uuid.UUID) (*inventory.PackageOffer, error) {
	o, ok := r.st.offers[id]
	if !ok {
		return nil, notFound("package offer")
	}
	return cloneOffer(o), nil
}

func (r *reads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return cloneBooking(b), nil
}

func (r *reads) UserByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.st.users {
		if u.Email().Value() == email {
			return cloneUser(u), nil
		}
	}
	return nil, notFound("user")
}

func (r *reads) FlightSweepCandidates(_ context.Context, now time.Time) ([]uuid.UUID, error) {
	var out []*inventory.Flight
	for _, f := range r.st.flights {
		if f.Archive().IsArchived() {
			continue
		}
		if f.DepartureTime().Before(now) || f.Status() == inventory.FlightCancelled || f.Status() == inventory.FlightCompleted {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DepartureTime().Before(out[j].DepartureTime()) })
	ids := make([]uuid.UUID, len(out))
	for i, f := range out {
		ids[i] = f.ID()
	}
	return ids, nil
}

func (r *reads) BookingSweepCandidates(_ context.Context, f shared.BookingSweepFilter) ([]uuid.UUID, error) {
	packageCutoff := f.Now.Add(-f.Policy.PackageBookingAfter)
	pendingCutoff := f.Now.Add(-f.Policy.PendingExpiresAfter)

	var out []*booking.Booking
	for _, b := range r.st.bookings {
		if b.Archive().IsArchived() || (f.UserID != nil && b.UserID() != *f.UserID) {
			continue
		}
		departed := false
		if b.Kind() == booking.KindFlight {
			if fl, ok := r.st.flights[*b.FlightID()]; ok {
				departed = fl.DepartureTime().Before(f.Now)
			}
		}
		isPackage := b.Kind() == booking.KindPackage
		switch {
		case departed,
			isPackage && b.Status() == booking.StatusCancelled,
			isPackage && b.CreatedAt().Before(packageCutoff),
			b.Status() == booking.StatusPending && b.CreatedAt().Before(pendingCutoff):
			out = append(out, b)
		}
	}
	sortBookings(out)
	ids := make([]uuid.UUID, len(out))
	for i, b := range out {
		ids[i] = b.ID()
	}
	return ids, nil
}

func (r *reads) UserPurgeCandidates(_ context.Context, archivedBefore time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, u := range r.st.users {
		if u.IsPurged() || !u.Archive().IsArchived() || !u.Archive().ArchivedBefore(archivedBefore) {
			continue
		}
		ids = append(ids, u.ID())
	}
	return ids, nil
}

// lockedReads takes the store lock per call and reads committed data.
type lockedReads struct{ s *Store }

func (r *lockedReads) with(fn func(*reads)) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	fn(&reads{st: r.s.data})
}

func (r *lockedReads) FlightByID(ctx context.Context, id uuid.UUID) (f *inventory.Flight, err error) {
	r.with(func(rd *reads) { f, err = rd.FlightByID(ctx, id) })
	return
}

func (r *lockedReads) OfferByID(ctx context.Context, id uuid.UUID) (o *inventory.PackageOffer, err error) {
	r.with(func(rd *reads) { o, err = rd.OfferByID(ctx, id) })
	return
}

func (r *lockedReads) BookingByID(ctx context.Context, id uuid.UUID) (b *booking.Booking, err error) {
	r.with(func(rd *reads) { b, err = rd.BookingByID(ctx, id) })
	return
}

func (r *lockedReads) UserByEmail(ctx context.Context, email string) (u *user.User, err error) {
	r.with(func(rd *reads) { u, err = rd.UserByEmail(ctx, email) })
	return
}

func (r *lockedReads) FlightSweepCandidates(ctx context.Context, now time.Time) (ids []uuid.UUID, err error) {
	r.with(func(rd *reads) { ids, err = rd.FlightSweepCandidates(ctx, now) })
	return
}

func (r *lockedReads) BookingSweepCandidates(ctx context.Context, f shared.BookingSweepFilter) (ids []uuid.UUID, err error) {
	r.with(func(rd *reads) { ids, err = rd.BookingSweepCandidates(ctx, f) })
	return
}

func (r *lockedReads) UserPurgeCandidates(ctx context.Context, archivedBefore time.Time) (ids []uuid.UUID, err error) {
	r.with(func(rd *reads) { ids, err = rd.UserPurgeCandidates(ctx, archivedBefore) })
	return
}
