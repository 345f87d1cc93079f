//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"parking-app/internal/domain/reservation"
	reqdto "parking-app/internal/handler/dto/request"
	"parking-app/internal/pkg/clock"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	store     *memStore
	clock     *clock.FixedClock
	publisher *recordingPublisher
	stats     *recordingInvalidator
	lots      commands.LotCommands
	sut       commands.ReservationCommands
	userID    uuid.UUID
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.store = newMemStore()
	s.clock = clock.NewFixedClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	s.publisher = &recordingPublisher{}
	s.stats = &recordingInvalidator{}
	s.userID = uuid.New()

	factory := reservation.NewFactory(&reservation.Services{
		Clock:   s.clock,
		Billing: reservation.NewHourlyCeilingCalculator(),
	})
	s.lots = commands.NewLotCommands(s.store, s.stats)
	s.sut = commands.NewReservationCommands(s.store, factory, s.publisher, s.stats)
}

func (s *ReservationCommandsTestSuite) createLot(spots int, priceCents int64) uuid.UUID {
	id, err := s.lots.CreateLot(context.Background(), reqdto.CreateLotRequest{
		Name:              "Central",
		PricePerHourCents: priceCents,
		TotalSpots:        spots,
	})
	s.Require().NoError(err)
	return id
}

func (s *ReservationCommandsTestSuite) TestReserveSpot_PicksLowestAvailableNumber() {
	ctx := context.Background()
	lotID := s.createLot(3, 1000)

	first, err := s.sut.ReserveSpot(ctx, lotID, s.userID)
	s.Require().NoError(err)
	second, err := s.sut.ReserveSpot(ctx, lotID, uuid.New())
	s.Require().NoError(err)

	s.Equal(1, first.SpotNumber)
	s.Equal(2, second.SpotNumber)
	s.Equal(int64(1000), first.PricePerHourCents)
	s.Equal(s.clock.Now(), first.StartTime)
	s.Len(s.store.bookings, 2)
	s.Contains(s.store.bookings, first.ReservationID)

	s.Require().Len(s.publisher.events, 2)
	s.Equal(reservation.EventOpened, s.publisher.events[0].Type)
	s.Equal(first.ReservationID, s.publisher.events[0].ReservationID)
	s.Contains(s.stats.calls, s.userID)
}

func (s *ReservationCommandsTestSuite) TestReserveSpot_FullLot() {
	ctx := context.Background()
	lotID := s.createLot(1, 500)

	_, err := s.sut.ReserveSpot(ctx, lotID, s.userID)
	s.Require().NoError(err)

	_, err = s.sut.ReserveSpot(ctx, lotID, uuid.New())
	s.True(errs.Is(err, commands.ErrNoAvailableSpot))
	s.Len(s.store.reservations, 1)
	s.Len(s.store.bookings, 1)
}

func (s *ReservationCommandsTestSuite) TestReserveSpot_UnknownLot() {
	_, err := s.sut.ReserveSpot(context.Background(), uuid.New(), s.userID)
	s.True(errs.Is(err, commands.ErrLotNotFound))
	s.Empty(s.publisher.events)
}

func (s *ReservationCommandsTestSuite) TestReserveSpot_PublishFailureDoesNotFailBooking() {
	s.publisher.err = errs.New("broker down")
	lotID := s.createLot(1, 500)

	res, err := s.sut.ReserveSpot(context.Background(), lotID, s.userID)
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, res.ReservationID)
}

func (s *ReservationCommandsTestSuite) TestReserveSpot_ConcurrentRequestsNeverOverbook() {
	ctx := context.Background()
	lotID := s.createLot(3, 1000)

	const attempts = 10
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		booked   = map[uuid.UUID]bool{}
		rejected int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := s.sut.ReserveSpot(ctx, lotID, uuid.New())
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				assert.True(s.T(), errs.Is(err, commands.ErrNoAvailableSpot))
				rejected++
				return
			}
			assert.False(s.T(), booked[res.SpotID], "spot booked twice")
			booked[res.SpotID] = true
		}()
	}
	wg.Wait()

	s.Len(booked, 3)
	s.Equal(attempts-3, rejected)
}

func (s *ReservationCommandsTestSuite) TestReleaseReservation_Billing() {
	cases := []struct {
		name      string
		held      time.Duration
		wantHours float64
		wantCents int64
	}{
		{name: "half hour bills one hour", held: 30 * time.Minute, wantHours: 0.5, wantCents: 1000},
		{name: "exactly one hour", held: time.Hour, wantHours: 1, wantCents: 1000},
		{name: "just over one hour bills two", held: time.Hour + 36*time.Second, wantHours: 1.01, wantCents: 2000},
		{name: "released immediately", held: 0, wantHours: 0, wantCents: 0},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			ctx := context.Background()
			lotID := s.createLot(1, 1000)

			opened, err := s.sut.ReserveSpot(ctx, lotID, s.userID)
			s.Require().NoError(err)

			s.clock.Advance(tc.held)
			released, err := s.sut.ReleaseReservation(ctx, opened.ReservationID, s.userID)
			s.Require().NoError(err)

			s.InDelta(tc.wantHours, released.DurationHours, 0.0001)
			s.Equal(tc.wantCents, released.AmountCents)
			s.Equal(opened.StartTime.Add(tc.held), released.EndTime)
			s.Equal("Central", released.LotName)
		})
	}
}

func (s *ReservationCommandsTestSuite) TestReleaseReservation_FreesSpotAndBillsOnce() {
	ctx := context.Background()
	lotID := s.createLot(1, 1000)

	opened, err := s.sut.ReserveSpot(ctx, lotID, s.userID)
	s.Require().NoError(err)
	s.clock.Advance(2 * time.Hour)

	_, err = s.sut.ReleaseReservation(ctx, opened.ReservationID, s.userID)
	s.Require().NoError(err)

	s.Require().Len(s.store.billings, 1)
	s.Equal(int64(2000), s.store.billings[0].Bill.Amount.Cents())
	s.Equal("Central", s.store.billings[0].LotName)
	s.False(s.store.spots[opened.SpotID].occupied)

	_, err = s.sut.ReleaseReservation(ctx, opened.ReservationID, s.userID)
	s.True(errs.Is(err, commands.ErrReservationNotFound))
	s.Len(s.store.billings, 1)

	// the freed spot can be booked again
	again, err := s.sut.ReserveSpot(ctx, lotID, uuid.New())
	s.Require().NoError(err)
	s.Equal(opened.SpotID, again.SpotID)

	s.Require().Len(s.publisher.events, 3)
	s.Equal(reservation.EventClosed, s.publisher.events[1].Type)
	s.Equal(int64(2000), s.publisher.events[1].AmountCents)
}

func (s *ReservationCommandsTestSuite) TestReleaseReservation_OtherUsersReservation() {
	ctx := context.Background()
	lotID := s.createLot(1, 1000)

	opened, err := s.sut.ReserveSpot(ctx, lotID, s.userID)
	s.Require().NoError(err)

	_, err = s.sut.ReleaseReservation(ctx, opened.ReservationID, uuid.New())
	s.True(errs.Is(err, commands.ErrReservationNotFound))
	s.True(s.store.spots[opened.SpotID].occupied)
	s.Empty(s.store.billings)
}

func TestReservationCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func TestReleaseReservation_UnknownID(t *testing.T) {
	store := newMemStore()
	factory := reservation.NewFactory(&reservation.Services{
		Clock:   clock.NewFixedClock(time.Now()),
		Billing: reservation.NewHourlyCeilingCalculator(),
	})
	sut := commands.NewReservationCommands(store, factory, &recordingPublisher{}, &recordingInvalidator{})

	_, err := sut.ReleaseReservation(context.Background(), uuid.New(), uuid.New())
	require.True(t, errs.Is(err, commands.ErrReservationNotFound))
}
