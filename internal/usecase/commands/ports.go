package commands

import (
	"context"
	"time"

	"schnittwerk-api/internal/domain/appointment"
	"schnittwerk-api/internal/domain/booking"
	"schnittwerk-api/internal/domain/user"
	"schnittwerk-api/internal/domain/voucher"
	"schnittwerk-api/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types.

type ServiceSnapshot struct {
	ID              uuid.UUID
	SalonID         uuid.UUID
	Name            string
	DurationMinutes int
	BufferMinutes   int
	PriceCents      int64
	Currency        string
	Active          bool
}

type ProductSnapshot struct {
	ID         uuid.UUID
	Name       string
	Slug       string
	PriceCents int64
	Currency   string
	Stock      int
	Active     bool
}

type VoucherSnapshot struct {
	ID      uuid.UUID
	Voucher voucher.Voucher
}

type UserSnapshot struct {
	ID               uuid.UUID
	Email            string
	PasswordHash     string
	Role             string
	Name             string
	MarketingConsent bool
	IsActive         bool
}

type OrderLine struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int
	UnitCents int64
}

type OrderRecord struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	Status        string
	SubtotalCents int64
	DiscountCents int64
	TotalCents    int64
	Currency      string
	VoucherID     *uuid.UUID
	Lines         []OrderLine
	CreatedAt     time.Time
}

type ServiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
}

type OpeningHoursRepository interface {
	WeeklyHours(ctx context.Context, salonID uuid.UUID) (booking.WeeklyHours, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, q db.Querier, appt *appointment.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, q db.Querier, id uuid.UUID, status appointment.Status) error
}

type ProductRepository interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]ProductSnapshot, error)
	DecrementStock(ctx context.Context, q db.Querier, id uuid.UUID, quantity int) error
}

type VoucherRepository interface {
	FindByCode(ctx context.Context, code string) (*VoucherSnapshot, error)
	DecrementUses(ctx context.Context, q db.Querier, id uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, q db.Querier, order *OrderRecord) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}
