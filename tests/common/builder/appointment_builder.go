//go:build unit || e2e

package builder

import (
	"time"

	"schnittwerk-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentViewBuilder struct {
	ServiceName string
	CustomerID  uuid.UUID
	StartsAt    time.Time
	EndsAt      time.Time
	Status      string
	PriceCents  int64
}

func NewAppointmentViewBuilder() *AppointmentViewBuilder {
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	return &AppointmentViewBuilder{
		ServiceName: "Haircut",
		CustomerID:  uuid.New(),
		StartsAt:    start,
		EndsAt:      start.Add(45 * time.Minute),
		Status:      "confirmed",
		PriceCents:  8500,
	}
}

func (b *AppointmentViewBuilder) Build() *queries.AppointmentView {
	now := time.Now()
	return &queries.AppointmentView{
		ID:          uuid.New(),
		ServiceID:   uuid.New(),
		ServiceName: b.ServiceName,
		CustomerID:  b.CustomerID,
		StartsAt:    b.StartsAt,
		EndsAt:      b.EndsAt,
		Status:      b.Status,
		PriceCents:  b.PriceCents,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *AppointmentViewBuilder) WithCustomerID(id uuid.UUID) *AppointmentViewBuilder {
	b.CustomerID = id
	return b
}

func (b *AppointmentViewBuilder) WithStatus(status string) *AppointmentViewBuilder {
	b.Status = status
	return b
}

func (b *AppointmentViewBuilder) WithSlot(startsAt, endsAt time.Time) *AppointmentViewBuilder {
	b.StartsAt = startsAt
	b.EndsAt = endsAt
	return b
}
