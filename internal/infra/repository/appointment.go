package repository

import (
	"context"
	"time"

	"schnittwerk-api/internal/domain/appointment"
	"schnittwerk-api/internal/infra/db"
	"schnittwerk-api/internal/pkg/pgconv"
	"schnittwerk-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentRepository struct {
	db db.Querier
}

func NewAppointmentRepository(q db.Querier) *AppointmentRepository {
	return &AppointmentRepository{db: q}
}

func (r *AppointmentRepository) Create(ctx context.Context, q db.Querier, appt *appointment.Appointment) error {
	var note *string
	if !appt.Note().IsEmpty() {
		s := appt.Note().String()
		note = &s
	}

	_, err := q.Exec(ctx, `
		INSERT INTO appointments (id, salon_id, service_id, customer_id, staff_id, starts_at, ends_at, status, price_cents, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		appt.ID(), appt.SalonID(), appt.ServiceID(), appt.CustomerID(), pgconv.UUIDPtrToPgtype(appt.StaffID()),
		appt.Slot().Start(), appt.Slot().End(), appt.Status().String(), appt.Price().Cents(), pgconv.StringPtrToPgtype(note),
	)
	if err != nil {
		return wrapQueryErr("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	var (
		apptID, salonID, serviceID, customerID uuid.UUID
		staffID                                *uuid.UUID
		startsAt, endsAt                       time.Time
		status                                 string
		priceCents                             int64
		note                                   *string
		createdAt, updatedAt                   time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, salon_id, service_id, customer_id, staff_id, starts_at, ends_at, status, price_cents, note, created_at, updated_at
		FROM appointments WHERE id = $1`, id,
	).Scan(
		&apptID, &salonID, &serviceID, &customerID, &staffID,
		&startsAt, &endsAt, &status, &priceCents, &note, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to find appointment", err)
	}

	slot, err := appointment.NewSlot(startsAt, endsAt)
	if err != nil {
		return nil, wrapQueryErr("invalid appointment slot in storage", err)
	}
	price, err := appointment.NewMoney(priceCents)
	if err != nil {
		return nil, wrapQueryErr("invalid appointment price in storage", err)
	}
	noteValue := ""
	if note != nil {
		noteValue = *note
	}

	return appointment.ReconstructAppointment(
		apptID, salonID, serviceID, customerID, staffID,
		slot, appointment.Status(status), price, appointment.NewNote(noteValue),
		createdAt, updatedAt,
	), nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, q db.Querier, id uuid.UUID, status appointment.Status) error {
	tag, err := q.Exec(ctx, `
		UPDATE appointments SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return wrapQueryErr("failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapQueryErr("appointment not found", errNoRowsUpdated)
	}
	return nil
}

// AppointmentReadStore serves the customer-facing appointment views with the
// service name joined in.
type AppointmentReadStore struct {
	db db.Querier
}

func NewAppointmentReadStore(q db.Querier) *AppointmentReadStore {
	return &AppointmentReadStore{db: q}
}

const appointmentViewSelect = `
	SELECT a.id, a.service_id, s.name, a.customer_id, st.name,
	       a.starts_at, a.ends_at, a.status, a.price_cents, a.note, a.created_at, a.updated_at
	FROM appointments a
	JOIN services s ON s.id = a.service_id
	LEFT JOIN users st ON st.id = a.staff_id`

func (s *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row := s.db.QueryRow(ctx, appointmentViewSelect+` WHERE a.id = $1`, id)
	view, err := scanAppointmentView(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find appointment view", err)
	}
	return view, nil
}

func (s *AppointmentReadStore) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]queries.AppointmentView, error) {
	rows, err := s.db.Query(ctx, appointmentViewSelect+`
		WHERE a.customer_id = $1
		ORDER BY a.starts_at DESC`, customerID)
	if err != nil {
		return nil, wrapQueryErr("failed to list appointments", err)
	}
	defer rows.Close()

	views := []queries.AppointmentView{}
	for rows.Next() {
		view, err := scanAppointmentView(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan appointment view", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read appointments", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointmentView(row rowScanner) (*queries.AppointmentView, error) {
	var view queries.AppointmentView
	err := row.Scan(
		&view.ID, &view.ServiceID, &view.ServiceName, &view.CustomerID, &view.StaffName,
		&view.StartsAt, &view.EndsAt, &view.Status, &view.PriceCents, &view.Note,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
