package queries

import (
	"context"

	"schnittwerk-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotVisible = errs.New("appointment not visible")
	ErrOrderNotVisible       = errs.New("order not visible")
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]OrderView, error)
	CustomerIDOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

type OrderQueries interface {
	GetOrder(ctx context.Context, customerID, id uuid.UUID) (*OrderView, error)
	ListMyOrders(ctx context.Context, customerID uuid.UUID) ([]OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetOrder(ctx context.Context, customerID, id uuid.UUID) (*OrderView, error) {
	owner, err := q.store.CustomerIDOf(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner != customerID {
		return nil, ErrOrderNotVisible
	}
	return q.store.FindByID(ctx, id)
}

func (q *orderQueriesImpl) ListMyOrders(ctx context.Context, customerID uuid.UUID) ([]OrderView, error) {
	return q.store.ListForCustomer(ctx, customerID)
}
