//go:build e2e

package repository

import (
	"context"
	"testing"
	"time"

	"schnittwerk-api/internal/domain/appointment"
	"schnittwerk-api/internal/domain/booking"
	"schnittwerk-api/internal/domain/user"
	"schnittwerk-api/internal/infra"
	"schnittwerk-api/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingRepositoryTestSuite struct {
	suite.Suite
	pool         *pgxpool.Pool
	users        *UserRepository
	hours        *OpeningHoursRepository
	services     *ServiceRepository
	appointments *AppointmentRepository
	reads        *AppointmentReadStore
	availability *AvailabilityReadStore
	salonID      uuid.UUID
	ctx          context.Context
}

func TestBookingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BookingRepositoryTestSuite))
}

func (s *BookingRepositoryTestSuite) SetupSuite() {
	pool, _ := dbtest.Setup(s.T())
	s.pool = pool
	s.users = NewUserRepository(pool)
	s.hours = NewOpeningHoursRepository(pool)
	s.services = NewServiceRepository(pool)
	s.appointments = NewAppointmentRepository(pool)
	s.reads = NewAppointmentReadStore(pool)
	s.availability = NewAvailabilityReadStore(pool)
	s.ctx = context.Background()
}

func (s *BookingRepositoryTestSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.pool))
	s.salonID = dbtest.SalonID(s.T(), s.pool)
}

func (s *BookingRepositoryTestSuite) newUser(emailAddr string) *user.User {
	email, err := user.NewEmail(emailAddr)
	s.Require().NoError(err)
	name, err := user.NewDisplayName("Anna Muster")
	s.Require().NoError(err)
	return user.NewUser(email, "hashed-password", user.RoleCustomer, name, nil, true)
}

func (s *BookingRepositoryTestSuite) TestCreateAndFindUser() {
	created := s.newUser("anna@example.com")
	s.Require().NoError(s.users.Create(s.ctx, created))

	s.Run("FindByEmail restores the snapshot", func() {
		snap, err := s.users.FindByEmail(s.ctx, "anna@example.com")

		s.Require().NoError(err)
		s.Equal(created.ID(), snap.ID)
		s.Equal("anna@example.com", snap.Email)
		s.Equal("customer", snap.Role)
		s.True(snap.MarketingConsent)
		s.True(snap.IsActive)
	})

	s.Run("FindByID", func() {
		snap, err := s.users.FindByID(s.ctx, created.ID())

		s.Require().NoError(err)
		s.Equal("anna@example.com", snap.Email)
	})

	s.Run("duplicate email is rejected", func() {
		err := s.users.Create(s.ctx, s.newUser("anna@example.com"))

		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindDuplicateKey))
	})

	s.Run("unknown user", func() {
		_, err := s.users.FindByEmail(s.ctx, "nobody@example.com")

		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindNotFound))
	})

	s.Run("UpdateLastLogin", func() {
		s.Require().NoError(s.users.UpdateLastLogin(s.ctx, created.ID()))
	})
}

func (s *BookingRepositoryTestSuite) TestWeeklyHours() {
	hours, err := s.hours.WeeklyHours(s.ctx, s.salonID)

	s.Require().NoError(err)

	monday, ok := hours.Day(booking.Monday)
	s.Require().True(ok)
	s.True(monday.IsClosed())

	friday, ok := hours.Day(booking.Friday)
	s.Require().True(ok)
	s.False(friday.IsClosed())
	s.Equal("09:00", friday.Opens().String())
	s.Equal("20:00", friday.Closes().String())
}

func (s *BookingRepositoryTestSuite) TestServiceTiming() {
	category := dbtest.CreateTestCategory(s.T(), s.pool, s.salonID, "Haarschnitte", 1)
	serviceID := dbtest.CreateTestService(s.T(), s.pool, s.salonID, category, "Herrenschnitt", 30, 15, 4500, true)

	timing, err := s.services.ServiceTiming(s.ctx, serviceID)

	s.Require().NoError(err)
	s.Equal(s.salonID, timing.SalonID)
	s.Equal(30, timing.DurationMinutes)
	s.Equal(15, timing.BufferMinutes)
	s.True(timing.Active)
	s.Equal("Europe/Zurich", timing.Timezone)
}

func (s *BookingRepositoryTestSuite) TestAppointmentLifecycle() {
	customerID := dbtest.CreateTestUser(s.T(), s.pool, "anna@example.com", "customer")
	category := dbtest.CreateTestCategory(s.T(), s.pool, s.salonID, "Haarschnitte", 1)
	serviceID := dbtest.CreateTestService(s.T(), s.pool, s.salonID, category, "Herrenschnitt", 30, 15, 4500, true)

	startsAt := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	slot, err := appointment.NewSlot(startsAt, startsAt.Add(45*time.Minute))
	s.Require().NoError(err)
	price, err := appointment.NewMoney(4500)
	s.Require().NoError(err)
	appt := appointment.NewAppointment(s.salonID, serviceID, customerID, nil, slot, price, appointment.NewNote("Bitte kurz"))

	s.Require().NoError(s.appointments.Create(s.ctx, s.pool, appt))

	s.Run("FindByID restores the aggregate", func() {
		found, err := s.appointments.FindByID(s.ctx, appt.ID())

		s.Require().NoError(err)
		s.Equal(appt.ID(), found.ID())
		s.Equal(customerID, found.CustomerID())
		s.Equal(appointment.StatusConfirmed, found.Status())
		s.True(found.Slot().Start().Equal(startsAt))
		s.Equal("Bitte kurz", found.Note().String())
	})

	s.Run("read store joins the service name", func() {
		views, err := s.reads.ListForCustomer(s.ctx, customerID)

		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.Equal("Herrenschnitt", views[0].ServiceName)
		s.Nil(views[0].StaffName)
	})

	s.Run("UpdateStatus", func() {
		err := s.appointments.UpdateStatus(s.ctx, s.pool, appt.ID(), appointment.StatusCanceled)

		s.Require().NoError(err)
		found, err := s.appointments.FindByID(s.ctx, appt.ID())
		s.Require().NoError(err)
		s.Equal(appointment.StatusCanceled, found.Status())
	})

	s.Run("UpdateStatus on a missing appointment", func() {
		err := s.appointments.UpdateStatus(s.ctx, s.pool, uuid.New(), appointment.StatusCanceled)

		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindNotFound))
	})
}

func (s *BookingRepositoryTestSuite) TestBusyIntervals() {
	customerID := dbtest.CreateTestUser(s.T(), s.pool, "anna@example.com", "customer")
	category := dbtest.CreateTestCategory(s.T(), s.pool, s.salonID, "Haarschnitte", 1)
	serviceID := dbtest.CreateTestService(s.T(), s.pool, s.salonID, category, "Herrenschnitt", 30, 15, 4500, true)

	book := func(startsAt time.Time, status appointment.Status) {
		slot, err := appointment.NewSlot(startsAt, startsAt.Add(45*time.Minute))
		s.Require().NoError(err)
		price, err := appointment.NewMoney(4500)
		s.Require().NoError(err)
		appt := appointment.NewAppointment(s.salonID, serviceID, customerID, nil, slot, price, appointment.NewNote(""))
		s.Require().NoError(s.appointments.Create(s.ctx, s.pool, appt))
		if status != appointment.StatusConfirmed {
			s.Require().NoError(s.appointments.UpdateStatus(s.ctx, s.pool, appt.ID(), status))
		}
	}

	dayStart := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	book(dayStart.Add(9*time.Hour), appointment.StatusConfirmed)
	book(dayStart.Add(11*time.Hour), appointment.StatusCanceled)
	book(dayStart.Add(48*time.Hour), appointment.StatusConfirmed) // outside the window

	intervals, err := s.availability.BusyIntervals(s.ctx, s.salonID, dayStart, dayStart.Add(24*time.Hour))

	s.Require().NoError(err)
	s.Require().Len(intervals, 1)
	s.True(intervals[0].StartsAt.Equal(dayStart.Add(9 * time.Hour)))
}
