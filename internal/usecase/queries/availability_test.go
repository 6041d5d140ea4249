//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"schnittwerk-api/internal/domain/booking"
	"schnittwerk-api/internal/pkg/clock"
	"schnittwerk-api/internal/pkg/config"
	"schnittwerk-api/internal/usecase/queries"
	queriesmock "schnittwerk-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockAvailabilityReadStore
	clock     *clock.MockClock
	queries   queries.AvailabilityQueries
	serviceID uuid.UUID
	salonID   uuid.UUID
}

func (s *AvailabilityTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockAvailabilityReadStore(s.mockCtrl)
	// Monday 2024-03-04, 08:00 UTC
	s.clock = clock.NewMockClock(time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC))
	s.queries = queries.NewAvailabilityQueries(s.mockStore, s.clock, config.NewTestConfig())
	s.serviceID = uuid.New()
	s.salonID = uuid.New()
}

func (s *AvailabilityTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilitySuite(t *testing.T) {
	suite.Run(t, new(AvailabilityTestSuite))
}

func (s *AvailabilityTestSuite) timing() *queries.ServiceTimingView {
	return &queries.ServiceTimingView{
		SalonID:         s.salonID,
		DurationMinutes: 30,
		BufferMinutes:   15,
		Active:          true,
		Timezone:        "UTC",
	}
}

func (s *AvailabilityTestSuite) weekdayHours() booking.WeeklyHours {
	monday, err := booking.OpenDay(booking.Monday, "09:00", "18:00")
	require.NoError(s.T(), err)
	hours, err := booking.NewWeeklyHours(monday)
	require.NoError(s.T(), err)
	return hours
}

func (s *AvailabilityTestSuite) TestListSlots() {
	s.Run("generates slots across the open window", func() {
		s.mockStore.EXPECT().ServiceTiming(gomock.Any(), s.serviceID).Return(s.timing(), nil)
		s.mockStore.EXPECT().WeeklyHours(gomock.Any(), s.salonID).Return(s.weekdayHours(), nil)
		s.mockStore.EXPECT().BusyIntervals(gomock.Any(), s.salonID, gomock.Any(), gomock.Any()).
			Return([]queries.SlotView{}, nil)

		slots, err := s.queries.ListSlots(context.Background(), s.serviceID, "2024-03-04")
		require.NoError(s.T(), err)
		require.NotEmpty(s.T(), slots)

		first := slots[0]
		last := slots[len(slots)-1]
		assert.Equal(s.T(), time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), first.StartsAt)
		assert.Equal(s.T(), time.Date(2024, 3, 4, 17, 15, 0, 0, time.UTC), last.StartsAt)
		closes := time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)
		for _, slot := range slots {
			assert.False(s.T(), slot.EndsAt.After(closes))
			assert.Equal(s.T(), 45*time.Minute, slot.EndsAt.Sub(slot.StartsAt))
		}
	})

	s.Run("drops slots colliding with existing appointments", func() {
		busy := []queries.SlotView{{
			StartsAt: time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2024, 3, 4, 11, 0, 0, 0, time.UTC),
		}}
		s.mockStore.EXPECT().ServiceTiming(gomock.Any(), s.serviceID).Return(s.timing(), nil)
		s.mockStore.EXPECT().WeeklyHours(gomock.Any(), s.salonID).Return(s.weekdayHours(), nil)
		s.mockStore.EXPECT().BusyIntervals(gomock.Any(), s.salonID, gomock.Any(), gomock.Any()).
			Return(busy, nil)

		slots, err := s.queries.ListSlots(context.Background(), s.serviceID, "2024-03-04")
		require.NoError(s.T(), err)

		starts := make(map[time.Time]bool, len(slots))
		for _, slot := range slots {
			starts[slot.StartsAt] = true
		}
		// A slot ending exactly when the busy interval starts still fits.
		assert.True(s.T(), starts[time.Date(2024, 3, 4, 9, 15, 0, 0, time.UTC)])
		assert.False(s.T(), starts[time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)])
		assert.False(s.T(), starts[time.Date(2024, 3, 4, 10, 45, 0, 0, time.UTC)])
		assert.True(s.T(), starts[time.Date(2024, 3, 4, 11, 0, 0, 0, time.UTC)])
	})

	s.Run("returns empty list for a closed day", func() {
		// 2024-03-10 is a Sunday with no opening entry
		s.mockStore.EXPECT().ServiceTiming(gomock.Any(), s.serviceID).Return(s.timing(), nil)
		s.mockStore.EXPECT().WeeklyHours(gomock.Any(), s.salonID).Return(s.weekdayHours(), nil)

		slots, err := s.queries.ListSlots(context.Background(), s.serviceID, "2024-03-10")
		require.NoError(s.T(), err)
		assert.Empty(s.T(), slots)
	})

	s.Run("rejects an inactive service", func() {
		timing := s.timing()
		timing.Active = false
		s.mockStore.EXPECT().ServiceTiming(gomock.Any(), s.serviceID).Return(timing, nil)

		_, err := s.queries.ListSlots(context.Background(), s.serviceID, "2024-03-04")
		assert.ErrorIs(s.T(), err, queries.ErrServiceNotBookable)
	})

	s.Run("rejects a malformed date", func() {
		s.mockStore.EXPECT().ServiceTiming(gomock.Any(), s.serviceID).Return(s.timing(), nil)

		_, err := s.queries.ListSlots(context.Background(), s.serviceID, "04.03.2024")
		assert.ErrorIs(s.T(), err, queries.ErrInvalidDate)
	})
}
