package repository

import (
	"context"

	"schnittwerk-api/internal/infra/db"
	"schnittwerk-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// CatalogReadStore serves the public storefront reads: the salon row, its
// opening hours, the service catalog grouped by category and the shop
// products.
type CatalogReadStore struct {
	db db.Querier
}

func NewCatalogReadStore(q db.Querier) *CatalogReadStore {
	return &CatalogReadStore{db: q}
}

func (s *CatalogReadStore) GetSalon(ctx context.Context) (*queries.SalonView, error) {
	var view queries.SalonView
	err := s.db.QueryRow(ctx, `
		SELECT id, name, tagline, description, street_address, postal_code, city, phone, email, timezone
		FROM salons
		ORDER BY created_at
		LIMIT 1`,
	).Scan(
		&view.ID, &view.Name, &view.Tagline, &view.Description, &view.StreetAddress,
		&view.PostalCode, &view.City, &view.Phone, &view.Email, &view.Timezone,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to load salon", err)
	}
	return &view, nil
}

func (s *CatalogReadStore) ListOpeningHours(ctx context.Context, salonID uuid.UUID) ([]queries.OpeningHourView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT day_of_week, opens_at, closes_at, closed
		FROM opening_hours
		WHERE salon_id = $1
		ORDER BY day_of_week`, salonID)
	if err != nil {
		return nil, wrapQueryErr("failed to list opening hours", err)
	}
	defer rows.Close()

	views := []queries.OpeningHourView{}
	for rows.Next() {
		var view queries.OpeningHourView
		if err := rows.Scan(&view.DayOfWeek, &view.OpensAt, &view.ClosesAt, &view.Closed); err != nil {
			return nil, wrapQueryErr("failed to scan opening hour", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read opening hours", err)
	}
	return views, nil
}

func (s *CatalogReadStore) ListServiceCategories(ctx context.Context, salonID uuid.UUID) ([]queries.ServiceCategoryView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT c.id, c.name, c.description, c.position,
		       sv.id, sv.name, sv.description, sv.duration_minutes, sv.buffer_minutes, sv.price_cents, sv.currency
		FROM service_categories c
		LEFT JOIN services sv ON sv.category_id = c.id AND sv.active = true
		WHERE c.salon_id = $1
		ORDER BY c.position, sv.name`, salonID)
	if err != nil {
		return nil, wrapQueryErr("failed to list service categories", err)
	}
	defer rows.Close()

	categories := []queries.ServiceCategoryView{}
	index := map[uuid.UUID]int{}
	for rows.Next() {
		// Every sv.* column is NULL on the join row of a category without
		// active services, so all of them scan through pointers.
		var (
			cat      queries.ServiceCategoryView
			svcID    *uuid.UUID
			svcName  *string
			svcDesc  *string
			duration *int
			buffer   *int
			price    *int64
			currency *string
		)
		err := rows.Scan(
			&cat.ID, &cat.Name, &cat.Description, &cat.Position,
			&svcID, &svcName, &svcDesc, &duration,
			&buffer, &price, &currency,
		)
		if err != nil {
			return nil, wrapQueryErr("failed to scan service category", err)
		}

		pos, seen := index[cat.ID]
		if !seen {
			cat.Services = []queries.ServiceView{}
			categories = append(categories, cat)
			pos = len(categories) - 1
			index[cat.ID] = pos
		}
		if svcID != nil {
			categories[pos].Services = append(categories[pos].Services, queries.ServiceView{
				ID:              *svcID,
				Name:            *svcName,
				Description:     svcDesc,
				DurationMinutes: *duration,
				BufferMinutes:   *buffer,
				PriceCents:      *price,
				Currency:        *currency,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read service categories", err)
	}
	return categories, nil
}

func (s *CatalogReadStore) ListProducts(ctx context.Context, activeOnly bool) ([]queries.ProductView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, slug, description, price_cents, currency, stock, sku, featured, image_url
		FROM products
		WHERE active = true OR $1 = false
		ORDER BY featured DESC, name`, activeOnly)
	if err != nil {
		return nil, wrapQueryErr("failed to list products", err)
	}
	defer rows.Close()

	views := []queries.ProductView{}
	for rows.Next() {
		var view queries.ProductView
		err := rows.Scan(
			&view.ID, &view.Name, &view.Slug, &view.Description, &view.PriceCents,
			&view.Currency, &view.Stock, &view.SKU, &view.Featured, &view.ImageURL,
		)
		if err != nil {
			return nil, wrapQueryErr("failed to scan product", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read products", err)
	}
	return views, nil
}

func (s *CatalogReadStore) FindProductBySlug(ctx context.Context, slug string) (*queries.ProductView, error) {
	var view queries.ProductView
	err := s.db.QueryRow(ctx, `
		SELECT id, name, slug, description, price_cents, currency, stock, sku, featured, image_url
		FROM products
		WHERE slug = $1 AND active = true`, slug,
	).Scan(
		&view.ID, &view.Name, &view.Slug, &view.Description, &view.PriceCents,
		&view.Currency, &view.Stock, &view.SKU, &view.Featured, &view.ImageURL,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to find product", err)
	}
	return &view, nil
}
