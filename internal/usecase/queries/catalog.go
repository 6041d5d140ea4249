package queries

import (
	"context"

	"schnittwerk-api/internal/pkg/reqcache"

	"github.com/google/uuid"
)

type CatalogReadStore interface {
	GetSalon(ctx context.Context) (*SalonView, error)
	ListOpeningHours(ctx context.Context, salonID uuid.UUID) ([]OpeningHourView, error)
	ListServiceCategories(ctx context.Context, salonID uuid.UUID) ([]ServiceCategoryView, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]ProductView, error)
	FindProductBySlug(ctx context.Context, slug string) (*ProductView, error)
}

type SalonInfo struct {
	Salon        SalonView         `json:"salon"`
	OpeningHours []OpeningHourView `json:"opening_hours"`
}

type CatalogQueries interface {
	GetSalonInfo(ctx context.Context, cache *reqcache.Cache) (*SalonInfo, error)
	ListServices(ctx context.Context, cache *reqcache.Cache) ([]ServiceCategoryView, error)
	ListProducts(ctx context.Context) ([]ProductView, error)
	GetProduct(ctx context.Context, slug string) (*ProductView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) GetSalonInfo(ctx context.Context, cache *reqcache.Cache) (*SalonInfo, error) {
	salon, err := reqcache.GetOrLoad(cache, "salon", func() (*SalonView, error) {
		return q.store.GetSalon(ctx)
	})
	if err != nil {
		return nil, err
	}

	hours, err := reqcache.GetOrLoad(cache, "opening_hours", func() ([]OpeningHourView, error) {
		return q.store.ListOpeningHours(ctx, salon.ID)
	})
	if err != nil {
		return nil, err
	}

	return &SalonInfo{Salon: *salon, OpeningHours: hours}, nil
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context, cache *reqcache.Cache) ([]ServiceCategoryView, error) {
	salon, err := reqcache.GetOrLoad(cache, "salon", func() (*SalonView, error) {
		return q.store.GetSalon(ctx)
	})
	if err != nil {
		return nil, err
	}

	return reqcache.GetOrLoad(cache, "service_categories", func() ([]ServiceCategoryView, error) {
		return q.store.ListServiceCategories(ctx, salon.ID)
	})
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context) ([]ProductView, error) {
	return q.store.ListProducts(ctx, true)
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, slug string) (*ProductView, error) {
	return q.store.FindProductBySlug(ctx, slug)
}
