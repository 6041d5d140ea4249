package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"schnittwerk-api/internal/domain/appointment"
	"schnittwerk-api/internal/domain/booking"
	"schnittwerk-api/internal/infra"
	"schnittwerk-api/internal/pkg/clock"
	"schnittwerk-api/internal/pkg/config"
	"schnittwerk-api/internal/pkg/errs"
	"schnittwerk-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrServiceNotFound      = errs.New("service not found")
	ErrServiceInactive      = errs.New("service inactive")
	ErrAppointmentNotFound  = errs.New("appointment not found")
	ErrNotAppointmentOwner  = errs.New("appointment belongs to another customer")
	ErrCancellationTooLate  = errs.New("cancellation notice period has passed")
	ErrAppointmentFinalized = errs.New("appointment is already canceled or completed")
)

// SlotRejectedError carries every booking rule the requested slot violated so
// the handler can surface all of them at once.
type SlotRejectedError struct {
	Reasons []booking.Reason
}

func (e *SlotRejectedError) Error() string {
	msgs := make([]string, len(e.Reasons))
	for i, r := range e.Reasons {
		msgs[i] = string(r)
	}
	return fmt.Sprintf("slot rejected: %s", strings.Join(msgs, "; "))
}

type BookAppointmentParams struct {
	ServiceID uuid.UUID
	StaffID   *uuid.UUID
	StartsAt  time.Time
	Note      string
}

type AppointmentCommands interface {
	Book(ctx context.Context, customerID uuid.UUID, params BookAppointmentParams) (*queries.AppointmentView, error)
	Cancel(ctx context.Context, customerID, appointmentID uuid.UUID) error
}

type appointmentCommandsImpl struct {
	services     ServiceRepository
	openingHours OpeningHoursRepository
	appointments AppointmentRepository
	views        queries.AppointmentReadStore
	db           *pgxpool.Pool
	clock        clock.Clock
	policy       config.BookingConfig
}

func NewAppointmentCommands(
	services ServiceRepository,
	openingHours OpeningHoursRepository,
	appointments AppointmentRepository,
	views queries.AppointmentReadStore,
	db *pgxpool.Pool,
	clock clock.Clock,
	cfg config.Config,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		services:     services,
		openingHours: openingHours,
		appointments: appointments,
		views:        views,
		db:           db,
		clock:        clock,
		policy:       cfg.Booking,
	}
}

func (c *appointmentCommandsImpl) Book(ctx context.Context, customerID uuid.UUID, params BookAppointmentParams) (*queries.AppointmentView, error) {
	svc, err := c.services.FindByID(ctx, params.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if !svc.Active {
		return nil, ErrServiceInactive
	}

	hours, err := c.openingHours.WeeklyHours(ctx, svc.SalonID)
	if err != nil {
		return nil, err
	}

	req := booking.NewRuleRequest(params.StartsAt, svc.DurationMinutes, hours)
	req.BufferMinutes = svc.BufferMinutes
	req.HorizonDays = c.policy.HorizonDays
	req.MinLeadMinutes = c.policy.MinLeadMinutes
	req.Now = c.clock.Now()

	result := booking.Validate(req)
	if !result.OK {
		return nil, &SlotRejectedError{Reasons: result.Reasons}
	}

	slot, err := appointment.NewSlot(params.StartsAt, *result.ProjectedEnd)
	if err != nil {
		return nil, errs.Wrap(err, "building appointment slot")
	}
	price, err := appointment.NewMoney(svc.PriceCents)
	if err != nil {
		return nil, errs.Wrap(err, "building appointment price")
	}

	appt := appointment.NewAppointment(
		svc.SalonID,
		svc.ID,
		customerID,
		params.StaffID,
		slot,
		price,
		appointment.NewNote(params.Note),
	)

	if err := c.appointments.Create(ctx, c.db, appt); err != nil {
		return nil, err
	}

	return c.views.FindByID(ctx, appt.ID())
}

func (c *appointmentCommandsImpl) Cancel(ctx context.Context, customerID, appointmentID uuid.UUID) error {
	appt, err := c.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}
	if appt.CustomerID() != customerID {
		return ErrNotAppointmentOwner
	}

	if err := appt.Cancel(c.clock.Now(), c.policy.CancellationHours); err != nil {
		switch err {
		case appointment.ErrCancellationNotice:
			return ErrCancellationTooLate
		case appointment.ErrAlreadyCanceled, appointment.ErrAlreadyCompleted:
			return ErrAppointmentFinalized
		}
		return err
	}

	return c.appointments.UpdateStatus(ctx, c.db, appt.ID(), appt.Status())
}
