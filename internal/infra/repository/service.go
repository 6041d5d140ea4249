package repository

import (
	"context"

	"schnittwerk-api/internal/infra/db"
	"schnittwerk-api/internal/usecase/commands"
	"schnittwerk-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceRepository struct {
	db db.Querier
}

func NewServiceRepository(q db.Querier) *ServiceRepository {
	return &ServiceRepository{db: q}
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ServiceSnapshot, error) {
	var snap commands.ServiceSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, salon_id, name, duration_minutes, buffer_minutes, price_cents, currency, active
		FROM services WHERE id = $1`, id,
	).Scan(
		&snap.ID, &snap.SalonID, &snap.Name, &snap.DurationMinutes,
		&snap.BufferMinutes, &snap.PriceCents, &snap.Currency, &snap.Active,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to find service", err)
	}
	return &snap, nil
}

func (r *ServiceRepository) ServiceTiming(ctx context.Context, serviceID uuid.UUID) (*queries.ServiceTimingView, error) {
	var view queries.ServiceTimingView
	err := r.db.QueryRow(ctx, `
		SELECT s.salon_id, s.duration_minutes, s.buffer_minutes, s.active, sa.timezone
		FROM services s
		JOIN salons sa ON sa.id = s.salon_id
		WHERE s.id = $1`, serviceID,
	).Scan(&view.SalonID, &view.DurationMinutes, &view.BufferMinutes, &view.Active, &view.Timezone)
	if err != nil {
		return nil, wrapQueryErr("failed to load service timing", err)
	}
	return &view, nil
}
