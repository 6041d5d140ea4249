package queries

import (
	"context"
	"time"

	"schnittwerk-api/internal/pkg/clock"
	"schnittwerk-api/internal/pkg/config"
	"schnittwerk-api/internal/pkg/reqcache"

	"github.com/google/uuid"
)

// Per-record stats for the analytics rollup. They are deliberately flat so
// ComputeAnalytics stays a pure function over slices.

type OrderStat struct {
	CustomerID uuid.UUID
	TotalCents int64
	CreatedAt  time.Time
}

type AppointmentStat struct {
	CustomerID uuid.UUID
	StartsAt   time.Time
	Status     string
}

type CustomerStat struct {
	ID               uuid.UUID
	MarketingConsent bool
}

type ProductStat struct {
	Name   string
	Stock  int
	Active bool
}

// UserSummaryView is the back-office roster entry for customers and staff.
type UserSummaryView struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	MarketingConsent bool      `json:"marketing_consent"`
	IsActive         bool      `json:"is_active"`
}

// OrderSummaryView lists orders without their line items; the per-order view
// carries those.
type OrderSummaryView struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	Currency   string    `json:"currency"`
	ItemCount  int       `json:"item_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type AdminReadStore interface {
	OrderStats(ctx context.Context) ([]OrderStat, error)
	AppointmentStats(ctx context.Context) ([]AppointmentStat, error)
	CustomerStats(ctx context.Context) ([]CustomerStat, error)
	ProductStats(ctx context.Context) ([]ProductStat, error)
	ListUsers(ctx context.Context) ([]UserSummaryView, error)
	ListAllAppointments(ctx context.Context) ([]AppointmentView, error)
	ListAllOrders(ctx context.Context) ([]OrderSummaryView, error)
}

type BookingSettingsView struct {
	HorizonDays       int `json:"horizon_days"`
	MinLeadMinutes    int `json:"min_lead_minutes"`
	CancellationHours int `json:"cancellation_hours"`
}

type AdminSnapshotView struct {
	Salon        SalonView             `json:"salon"`
	OpeningHours []OpeningHourView     `json:"opening_hours"`
	Categories   []ServiceCategoryView `json:"categories"`
	Products     []ProductView         `json:"products"`
	Customers    []UserSummaryView     `json:"customers"`
	Staff        []UserSummaryView     `json:"staff"`
	Appointments []AppointmentView     `json:"appointments"`
	Orders       []OrderSummaryView    `json:"orders"`
	Settings     BookingSettingsView   `json:"settings"`
}

type AnalyticsView struct {
	Revenue30dCents        int64    `json:"revenue_30d_cents"`
	AverageOrderValueCents int64    `json:"average_order_value_cents"`
	RepeatCustomerRate     float64  `json:"repeat_customer_rate"`
	MarketingConsentRate   float64  `json:"marketing_consent_rate"`
	UpcomingAppointments   int      `json:"upcoming_appointments"`
	LowStockItems          []string `json:"low_stock_items"`
	RebookingCustomers     int      `json:"rebooking_customers"`
}

const lowStockThreshold = 3

type AdminQueries interface {
	GetSnapshot(ctx context.Context, cache *reqcache.Cache) (*AdminSnapshotView, error)
	GetAnalytics(ctx context.Context) (*AnalyticsView, error)
}

type adminQueriesImpl struct {
	catalog CatalogReadStore
	stats   AdminReadStore
	clock   clock.Clock
	policy  config.BookingConfig
}

func NewAdminQueries(catalog CatalogReadStore, stats AdminReadStore, clock clock.Clock, cfg config.Config) AdminQueries {
	return &adminQueriesImpl{catalog: catalog, stats: stats, clock: clock, policy: cfg.Booking}
}

// GetSnapshot assembles the whole back-office dataset in one response. The
// request cache keeps the salon row from being fetched once per section when
// the snapshot shares a request with other catalog reads.
func (q *adminQueriesImpl) GetSnapshot(ctx context.Context, cache *reqcache.Cache) (*AdminSnapshotView, error) {
	salon, err := reqcache.GetOrLoad(cache, "salon", func() (*SalonView, error) {
		return q.catalog.GetSalon(ctx)
	})
	if err != nil {
		return nil, err
	}

	hours, err := reqcache.GetOrLoad(cache, "opening_hours", func() ([]OpeningHourView, error) {
		return q.catalog.ListOpeningHours(ctx, salon.ID)
	})
	if err != nil {
		return nil, err
	}

	categories, err := reqcache.GetOrLoad(cache, "service_categories", func() ([]ServiceCategoryView, error) {
		return q.catalog.ListServiceCategories(ctx, salon.ID)
	})
	if err != nil {
		return nil, err
	}

	products, err := q.catalog.ListProducts(ctx, false)
	if err != nil {
		return nil, err
	}

	users, err := q.stats.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	customers := []UserSummaryView{}
	staff := []UserSummaryView{}
	for _, u := range users {
		switch u.Role {
		case "customer":
			customers = append(customers, u)
		case "staff", "admin":
			staff = append(staff, u)
		}
	}

	appointments, err := q.stats.ListAllAppointments(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := q.stats.ListAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminSnapshotView{
		Salon:        *salon,
		OpeningHours: hours,
		Categories:   categories,
		Products:     products,
		Customers:    customers,
		Staff:        staff,
		Appointments: appointments,
		Orders:       orders,
		Settings: BookingSettingsView{
			HorizonDays:       q.policy.HorizonDays,
			MinLeadMinutes:    q.policy.MinLeadMinutes,
			CancellationHours: q.policy.CancellationHours,
		},
	}, nil
}

func (q *adminQueriesImpl) GetAnalytics(ctx context.Context) (*AnalyticsView, error) {
	orders, err := q.stats.OrderStats(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := q.stats.AppointmentStats(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := q.stats.CustomerStats(ctx)
	if err != nil {
		return nil, err
	}
	products, err := q.stats.ProductStats(ctx)
	if err != nil {
		return nil, err
	}

	view := ComputeAnalytics(q.clock.Now(), orders, appointments, customers, products)
	return &view, nil
}

// ComputeAnalytics rolls raw records up into the dashboard figures. Rates are
// fractions in [0, 1]; money stays in cents with floor division.
func ComputeAnalytics(
	now time.Time,
	orders []OrderStat,
	appointments []AppointmentStat,
	customers []CustomerStat,
	products []ProductStat,
) AnalyticsView {
	since := now.AddDate(0, 0, -30)

	var revenue30d, revenueTotal int64
	for _, o := range orders {
		revenueTotal += o.TotalCents
		if !o.CreatedAt.Before(since) {
			revenue30d += o.TotalCents
		}
	}

	var averageOrderValue int64
	if len(orders) > 0 {
		averageOrderValue = revenueTotal / int64(len(orders))
	}

	upcoming := 0
	visitsByCustomer := make(map[uuid.UUID]int)
	for _, a := range appointments {
		if a.Status == "confirmed" && a.StartsAt.After(now) {
			upcoming++
		}
		if a.Status == "completed" {
			visitsByCustomer[a.CustomerID]++
		}
	}

	rebooking := 0
	for _, visits := range visitsByCustomer {
		if visits > 1 {
			rebooking++
		}
	}

	ordersByCustomer := make(map[uuid.UUID]int)
	for _, o := range orders {
		ordersByCustomer[o.CustomerID]++
	}
	buyers, repeatBuyers := 0, 0
	for _, n := range ordersByCustomer {
		buyers++
		if n > 1 {
			repeatBuyers++
		}
	}
	var repeatRate float64
	if buyers > 0 {
		repeatRate = float64(repeatBuyers) / float64(buyers)
	}

	consenting := 0
	for _, c := range customers {
		if c.MarketingConsent {
			consenting++
		}
	}
	var consentRate float64
	if len(customers) > 0 {
		consentRate = float64(consenting) / float64(len(customers))
	}

	lowStock := []string{}
	for _, p := range products {
		if p.Active && p.Stock <= lowStockThreshold {
			lowStock = append(lowStock, p.Name)
		}
	}

	return AnalyticsView{
		Revenue30dCents:        revenue30d,
		AverageOrderValueCents: averageOrderValue,
		RepeatCustomerRate:     repeatRate,
		MarketingConsentRate:   consentRate,
		UpcomingAppointments:   upcoming,
		LowStockItems:          lowStock,
		RebookingCustomers:     rebooking,
	}
}
