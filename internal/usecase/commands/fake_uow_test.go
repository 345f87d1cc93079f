//go:build unit

package commands_test

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"parking-app/internal/domain/lot"
	"parking-app/internal/domain/reservation"
	"parking-app/internal/domain/user"
	"parking-app/internal/infra"
	"parking-app/internal/infra/query"
	"parking-app/internal/usecase/shared"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the PostgreSQL unit of work.
// Transactions are serialized and rolled back by restoring a snapshot.
type memStore struct {
	mu           sync.Mutex
	users        map[uuid.UUID]*user.User
	lots         map[uuid.UUID]shared.LotSnapshot
	spots        map[uuid.UUID]memSpot
	reservations map[uuid.UUID]memReservation
	bookings     []uuid.UUID
	billings     []shared.BillingEntry
}

type memSpot struct {
	id       uuid.UUID
	lotID    uuid.UUID
	number   int
	occupied bool
}

type memReservation struct {
	id, spotID, lotID, userID uuid.UUID
	pricePerHourCents         int64
	start                     time.Time
	end                       *time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users:        map[uuid.UUID]*user.User{},
		lots:         map[uuid.UUID]shared.LotSnapshot{},
		spots:        map[uuid.UUID]memSpot{},
		reservations: map[uuid.UUID]memReservation{},
	}
}

type memSnapshot struct {
	users        map[uuid.UUID]*user.User
	lots         map[uuid.UUID]shared.LotSnapshot
	spots        map[uuid.UUID]memSpot
	reservations map[uuid.UUID]memReservation
	bookings     []uuid.UUID
	billings     []shared.BillingEntry
}

func (s *memStore) snapshot() memSnapshot {
	return memSnapshot{
		users:        maps.Clone(s.users),
		lots:         maps.Clone(s.lots),
		spots:        maps.Clone(s.spots),
		reservations: maps.Clone(s.reservations),
		bookings:     append([]uuid.UUID(nil), s.bookings...),
		billings:     append([]shared.BillingEntry(nil), s.billings...),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.users, s.lots, s.spots, s.reservations = snap.users, snap.lots, snap.spots, snap.reservations
	s.bookings, s.billings = snap.bookings, snap.billings
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(ctx, memTx{s}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *memStore) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, nil)
}

func (s *memStore) WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, nil)
}

func (s *memStore) spotsOf(lotID uuid.UUID) []memSpot {
	var out []memSpot
	for _, sp := range s.spots {
		if sp.lotID == lotID {
			out = append(out, sp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].number < out[j].number })
	return out
}

func (s *memStore) openReservations() []memReservation {
	var out []memReservation
	for _, r := range s.reservations {
		if r.end == nil {
			out = append(out, r)
		}
	}
	return out
}

type memTx struct{ s *memStore }

func (t memTx) Users() shared.UserRepository               { return memUsers{t.s} }
func (t memTx) Lots() shared.LotRepository                 { return memLots{t.s} }
func (t memTx) Spots() shared.SpotRepository               { return memSpots{t.s} }
func (t memTx) Reservations() shared.ReservationRepository { return memReservations{t.s} }
func (t memTx) Ledger() shared.LedgerRepository            { return memLedger{t.s} }
func (t memTx) DB() query.DBTX                             { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// users

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, _ query.DBTX, u *user.User) (uuid.UUID, error) {
	for _, existing := range r.s.users {
		if existing.Username() == u.Username() {
			return uuid.Nil, infra.WrapRepoErr("username taken", nil, infra.KindDuplicateKey)
		}
	}
	id := uuid.New()
	r.s.users[id] = user.ReconstructUser(id, u.Username(), u.PasswordHash(), u.Role(), u.Profile(), time.Now())
	return id, nil
}

func (r memUsers) CreateIfAbsent(ctx context.Context, db query.DBTX, u *user.User) (bool, error) {
	if _, err := r.FindByUsername(ctx, db, u.Username().Value()); err == nil {
		return false, nil
	}
	_, err := r.Create(ctx, db, u)
	return err == nil, err
}

func (r memUsers) FindByID(_ context.Context, _ query.DBTX, id uuid.UUID) (*user.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return user.ReconstructUser(u.ID(), u.Username(), u.PasswordHash(), u.Role(), u.Profile(), u.CreatedAt()), nil
}

func (r memUsers) FindByUsername(ctx context.Context, db query.DBTX, username string) (*user.User, error) {
	for _, u := range r.s.users {
		if u.Username().Value() == username {
			return r.FindByID(ctx, db, u.ID())
		}
	}
	return nil, notFound("user not found")
}

func (r memUsers) Update(_ context.Context, _ query.DBTX, u *user.User) error {
	if _, ok := r.s.users[u.ID()]; !ok {
		return notFound("user not found")
	}
	for id, other := range r.s.users {
		if id != u.ID() && other.Username() == u.Username() {
			return infra.WrapRepoErr("username taken", nil, infra.KindDuplicateKey)
		}
	}
	r.s.users[u.ID()] = u
	return nil
}

// lots

type memLots struct{ s *memStore }

func (r memLots) Create(_ context.Context, _ query.DBTX, l *lot.Lot) (uuid.UUID, error) {
	id := uuid.New()
	l.AssignID(id)
	r.s.lots[id] = shared.LotSnapshot{
		ID:                id,
		Name:              l.Name(),
		PricePerHourCents: l.PricePerHourCents(),
		TotalSpots:        l.TotalSpots(),
	}
	return id, nil
}

func (r memLots) FindForShare(_ context.Context, _ query.DBTX, id uuid.UUID) (*shared.LotSnapshot, error) {
	l, ok := r.s.lots[id]
	if !ok {
		return nil, notFound("lot not found")
	}
	return &l, nil
}

func (r memLots) LockForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (*shared.LotSnapshot, error) {
	return r.FindForShare(ctx, db, id)
}

func (r memLots) Delete(_ context.Context, _ query.DBTX, id uuid.UUID) error {
	if _, ok := r.s.lots[id]; !ok {
		return notFound("lot not found")
	}
	delete(r.s.lots, id)
	for resID, res := range r.s.reservations {
		if res.lotID == id {
			delete(r.s.reservations, resID)
		}
	}
	return nil
}

// spots

type memSpots struct{ s *memStore }

func (r memSpots) CreateForLot(_ context.Context, _ query.DBTX, lotID uuid.UUID, count int) (int64, error) {
	for i := 1; i <= count; i++ {
		id := uuid.New()
		r.s.spots[id] = memSpot{id: id, lotID: lotID, number: i}
	}
	return int64(count), nil
}

func (r memSpots) PickAvailable(_ context.Context, _ query.DBTX, lotID uuid.UUID) (*shared.SpotSnapshot, error) {
	for _, sp := range r.s.spotsOf(lotID) {
		if !sp.occupied {
			return &shared.SpotSnapshot{ID: sp.id, LotID: sp.lotID, SpotNumber: sp.number}, nil
		}
	}
	return nil, notFound("no available spot")
}

func (r memSpots) setOccupied(spotID uuid.UUID, occupied bool) error {
	sp, ok := r.s.spots[spotID]
	if !ok || sp.occupied == occupied {
		return infra.WrapRepoErr("spot status changed", nil, infra.KindConflict)
	}
	sp.occupied = occupied
	r.s.spots[spotID] = sp
	return nil
}

func (r memSpots) Occupy(_ context.Context, _ query.DBTX, spotID uuid.UUID) error {
	return r.setOccupied(spotID, true)
}

func (r memSpots) Free(_ context.Context, _ query.DBTX, spotID uuid.UUID) error {
	return r.setOccupied(spotID, false)
}

func (r memSpots) CountOccupied(_ context.Context, _ query.DBTX, lotID uuid.UUID) (int64, error) {
	var n int64
	for _, sp := range r.s.spotsOf(lotID) {
		if sp.occupied {
			n++
		}
	}
	return n, nil
}

func (r memSpots) DeleteByLot(_ context.Context, _ query.DBTX, lotID uuid.UUID) (int64, error) {
	var n int64
	for _, sp := range r.s.spotsOf(lotID) {
		delete(r.s.spots, sp.id)
		n++
	}
	return n, nil
}

// reservations

type memReservations struct{ s *memStore }

func (r memReservations) Create(_ context.Context, _ query.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	id := uuid.New()
	r.s.reservations[id] = memReservation{
		id:                id,
		spotID:            res.SpotID(),
		lotID:             res.LotID(),
		userID:            res.UserID(),
		pricePerHourCents: res.PricePerHour().Cents(),
		start:             res.StartTime(),
	}
	return id, nil
}

func (r memReservations) LockOpen(_ context.Context, _ query.DBTX, id, userID uuid.UUID) (*shared.OpenReservation, error) {
	row, ok := r.s.reservations[id]
	if !ok || row.userID != userID || row.end != nil {
		return nil, notFound("open reservation not found")
	}
	return &shared.OpenReservation{
		Reservation: reservation.ReconstructReservation(row.id, row.spotID, row.lotID, row.userID,
			reservation.NewMoney(row.pricePerHourCents), row.start, nil),
		LotName:    r.s.lots[row.lotID].Name,
		SpotNumber: r.s.spots[row.spotID].number,
	}, nil
}

func (r memReservations) Close(_ context.Context, _ query.DBTX, res *reservation.Reservation) error {
	row, ok := r.s.reservations[res.ID()]
	if !ok || row.end != nil || res.EndTime() == nil {
		return infra.WrapRepoErr("reservation not open", nil, infra.KindConflict)
	}
	end := *res.EndTime()
	row.end = &end
	r.s.reservations[row.id] = row
	return nil
}

// ledger

type memLedger struct{ s *memStore }

func (r memLedger) AppendBooking(_ context.Context, _ query.DBTX, res *reservation.Reservation) error {
	r.s.bookings = append(r.s.bookings, res.ID())
	return nil
}

func (r memLedger) AppendBilling(_ context.Context, _ query.DBTX, entry shared.BillingEntry) error {
	r.s.billings = append(r.s.billings, entry)
	return nil
}

// side effects

type recordingPublisher struct {
	mu     sync.Mutex
	events []reservation.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev reservation.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

type recordingInvalidator struct {
	mu    sync.Mutex
	calls []uuid.UUID
}

func (i *recordingInvalidator) InvalidateStats(_ context.Context, userID uuid.UUID) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.calls = append(i.calls, userID)
}
