package repository

import (
	"context"
	"time"

	"schnittwerk-api/internal/domain/booking"
	"schnittwerk-api/internal/infra/db"
	"schnittwerk-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// AvailabilityReadStore bundles the reads the slot generator needs: the
// service timing, the weekly schedule and the already-taken intervals.
type AvailabilityReadStore struct {
	db       db.Querier
	services *ServiceRepository
	hours    *OpeningHoursRepository
}

func NewAvailabilityReadStore(q db.Querier) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		db:       q,
		services: NewServiceRepository(q),
		hours:    NewOpeningHoursRepository(q),
	}
}

func (s *AvailabilityReadStore) ServiceTiming(ctx context.Context, serviceID uuid.UUID) (*queries.ServiceTimingView, error) {
	return s.services.ServiceTiming(ctx, serviceID)
}

func (s *AvailabilityReadStore) WeeklyHours(ctx context.Context, salonID uuid.UUID) (booking.WeeklyHours, error) {
	return s.hours.WeeklyHours(ctx, salonID)
}

func (s *AvailabilityReadStore) BusyIntervals(ctx context.Context, salonID uuid.UUID, from, to time.Time) ([]queries.SlotView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT starts_at, ends_at
		FROM appointments
		WHERE salon_id = $1 AND status = 'confirmed' AND starts_at < $3 AND ends_at > $2
		ORDER BY starts_at`, salonID, from, to)
	if err != nil {
		return nil, wrapQueryErr("failed to load busy intervals", err)
	}
	defer rows.Close()

	intervals := []queries.SlotView{}
	for rows.Next() {
		var slot queries.SlotView
		if err := rows.Scan(&slot.StartsAt, &slot.EndsAt); err != nil {
			return nil, wrapQueryErr("failed to scan busy interval", err)
		}
		intervals = append(intervals, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read busy intervals", err)
	}
	return intervals, nil
}
