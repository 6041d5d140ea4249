package queries

import (
	"context"
	"time"

	"schnittwerk-api/internal/domain/booking"
	"schnittwerk-api/internal/pkg/clock"
	"schnittwerk-api/internal/pkg/config"
	"schnittwerk-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrServiceNotBookable = errs.New("service not bookable")
	ErrInvalidDate        = errs.New("date must be YYYY-MM-DD")
)

const slotStepMinutes = 15

// ServiceTimingView is the slice of a service the slot generator needs.
type ServiceTimingView struct {
	SalonID         uuid.UUID
	DurationMinutes int
	BufferMinutes   int
	Active          bool
	Timezone        string
}

type AvailabilityReadStore interface {
	ServiceTiming(ctx context.Context, serviceID uuid.UUID) (*ServiceTimingView, error)
	WeeklyHours(ctx context.Context, salonID uuid.UUID) (booking.WeeklyHours, error)
	BusyIntervals(ctx context.Context, salonID uuid.UUID, from, to time.Time) ([]SlotView, error)
}

type AvailabilityQueries interface {
	ListSlots(ctx context.Context, serviceID uuid.UUID, date string) ([]SlotView, error)
}

type availabilityQueriesImpl struct {
	store  AvailabilityReadStore
	clock  clock.Clock
	policy config.BookingConfig
}

func NewAvailabilityQueries(store AvailabilityReadStore, clock clock.Clock, cfg config.Config) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, clock: clock, policy: cfg.Booking}
}

// ListSlots walks the day's opening window in fixed steps and keeps every
// start the booking rules accept that does not collide with an existing
// appointment. A closed day yields an empty list, not an error.
func (q *availabilityQueriesImpl) ListSlots(ctx context.Context, serviceID uuid.UUID, date string) ([]SlotView, error) {
	timing, err := q.store.ServiceTiming(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if !timing.Active {
		return nil, ErrServiceNotBookable
	}

	loc, err := time.LoadLocation(timing.Timezone)
	if err != nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, ErrInvalidDate
	}

	hours, err := q.store.WeeklyHours(ctx, timing.SalonID)
	if err != nil {
		return nil, err
	}
	dayHours, found := hours.Day(booking.WeekdayOf(day))
	if !found || dayHours.IsClosed() {
		return []SlotView{}, nil
	}

	dayStart := day
	dayEnd := day.AddDate(0, 0, 1)
	busy, err := q.store.BusyIntervals(ctx, timing.SalonID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	opens := dayHours.Opens().On(day)
	closes := dayHours.Closes().On(day)

	slots := []SlotView{}
	for start := opens; !start.After(closes); start = start.Add(slotStepMinutes * time.Minute) {
		req := booking.NewRuleRequest(start, timing.DurationMinutes, hours)
		req.BufferMinutes = timing.BufferMinutes
		req.HorizonDays = q.policy.HorizonDays
		req.MinLeadMinutes = q.policy.MinLeadMinutes
		req.Now = now

		result := booking.Validate(req)
		if !result.OK {
			continue
		}
		if overlapsAny(start, *result.ProjectedEnd, busy) {
			continue
		}
		slots = append(slots, SlotView{StartsAt: start, EndsAt: *result.ProjectedEnd})
	}
	return slots, nil
}

func overlapsAny(start, end time.Time, busy []SlotView) bool {
	for _, b := range busy {
		if start.Before(b.EndsAt) && end.After(b.StartsAt) {
			return true
		}
	}
	return false
}
