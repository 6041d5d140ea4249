package queries

import (
	"context"

	"github.com/google/uuid"
)

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]AppointmentView, error)
}

type AppointmentQueries interface {
	GetAppointment(ctx context.Context, customerID, id uuid.UUID) (*AppointmentView, error)
	ListMyAppointments(ctx context.Context, customerID uuid.UUID) ([]AppointmentView, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) GetAppointment(ctx context.Context, customerID, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.CustomerID != customerID {
		return nil, ErrAppointmentNotVisible
	}
	return view, nil
}

func (q *appointmentQueriesImpl) ListMyAppointments(ctx context.Context, customerID uuid.UUID) ([]AppointmentView, error) {
	return q.store.ListForCustomer(ctx, customerID)
}
