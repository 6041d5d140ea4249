package repository

import (
	"context"

	"schnittwerk-api/internal/domain/booking"
	"schnittwerk-api/internal/infra"
	"schnittwerk-api/internal/infra/db"

	"github.com/google/uuid"
)

type OpeningHoursRepository struct {
	db db.Querier
}

func NewOpeningHoursRepository(q db.Querier) *OpeningHoursRepository {
	return &OpeningHoursRepository{db: q}
}

// WeeklyHours loads the salon's schedule into the domain type the booking
// validator consumes. Days without a row stay absent, which the validator
// treats as closed.
func (r *OpeningHoursRepository) WeeklyHours(ctx context.Context, salonID uuid.UUID) (booking.WeeklyHours, error) {
	rows, err := r.db.Query(ctx, `
		SELECT day_of_week, opens_at, closes_at, closed
		FROM opening_hours
		WHERE salon_id = $1
		ORDER BY day_of_week`, salonID)
	if err != nil {
		return booking.WeeklyHours{}, wrapQueryErr("failed to load opening hours", err)
	}
	defer rows.Close()

	var entries []booking.DayHours
	for rows.Next() {
		var (
			dayOfWeek         int
			opensAt, closesAt *string
			closed            bool
		)
		if err := rows.Scan(&dayOfWeek, &opensAt, &closesAt, &closed); err != nil {
			return booking.WeeklyHours{}, wrapQueryErr("failed to scan opening hours row", err)
		}

		day := booking.Weekday(dayOfWeek)
		var entry booking.DayHours
		if closed || opensAt == nil || closesAt == nil {
			entry, err = booking.ClosedDay(day)
		} else {
			entry, err = booking.OpenDay(day, *opensAt, *closesAt)
		}
		if err != nil {
			return booking.WeeklyHours{}, infra.WrapRepoErr("invalid opening hours row", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return booking.WeeklyHours{}, wrapQueryErr("failed to read opening hours", err)
	}

	hours, err := booking.NewWeeklyHours(entries...)
	if err != nil {
		return booking.WeeklyHours{}, infra.WrapRepoErr("inconsistent opening hours", err)
	}
	return hours, nil
}
