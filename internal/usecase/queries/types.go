package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SalonView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Tagline       string    `json:"tagline"`
	Description   string    `json:"description"`
	StreetAddress string    `json:"street_address"`
	PostalCode    string    `json:"postal_code"`
	City          string    `json:"city"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Timezone      string    `json:"timezone"`
}

type OpeningHourView struct {
	DayOfWeek int     `json:"day_of_week"`
	OpensAt   *string `json:"opens_at,omitempty"`
	ClosesAt  *string `json:"closes_at,omitempty"`
	Closed    bool    `json:"closed"`
}

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	BufferMinutes   int       `json:"buffer_minutes"`
	PriceCents      int64     `json:"price_cents"`
	Currency        string    `json:"currency"`
}

type ServiceCategoryView struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	Position    int           `json:"position"`
	Services    []ServiceView `json:"services"`
}

type ProductView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	Stock       int       `json:"stock"`
	SKU         *string   `json:"sku,omitempty"`
	Featured    bool      `json:"featured"`
	ImageURL    *string   `json:"image_url,omitempty"`
}

type AppointmentView struct {
	ID          uuid.UUID `json:"id"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	CustomerID  uuid.UUID `json:"customer_id"`
	StaffName   *string   `json:"staff_name,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"price_cents"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SlotView struct {
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

type OrderItemView struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitCents   int64     `json:"unit_cents"`
}

type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	Status        string          `json:"status"`
	SubtotalCents int64           `json:"subtotal_cents"`
	DiscountCents int64           `json:"discount_cents"`
	TotalCents    int64           `json:"total_cents"`
	Currency      string          `json:"currency"`
	VoucherCode   *string         `json:"voucher_code,omitempty"`
	Items         []OrderItemView `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
}

type LoyaltyView struct {
	Tier               string  `json:"tier"`
	NextThresholdCents *int64  `json:"next_threshold_cents,omitempty"`
	BonusMultiplier    float64 `json:"bonus_multiplier"`
	LifetimeSpendCents int64   `json:"lifetime_spend_cents"`
	Visits             int     `json:"visits"`
}

type AuthorizedUserView struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Name             string    `json:"name"`
	MarketingConsent bool      `json:"marketing_consent"`
	IsActive         bool      `json:"is_active"`
}
