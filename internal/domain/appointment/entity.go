package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCanceled    = errors.New("appointment is already canceled")
	ErrAlreadyCompleted   = errors.New("appointment is already completed")
	ErrCancellationNotice = errors.New("cancellation notice period has passed")
)

type Appointment struct {
	id         uuid.UUID
	salonID    uuid.UUID
	serviceID  uuid.UUID
	customerID uuid.UUID
	staffID    *uuid.UUID
	slot       Slot
	status     Status
	price      Money
	note       Note
	createdAt  time.Time
	updatedAt  time.Time
}

// NewAppointment assumes the slot already passed the booking rule validation;
// composition happens in the usecase layer, which owns loading opening hours.
func NewAppointment(salonID, serviceID, customerID uuid.UUID, staffID *uuid.UUID, slot Slot, price Money, note Note) *Appointment {
	return &Appointment{
		id:         uuid.New(),
		salonID:    salonID,
		serviceID:  serviceID,
		customerID: customerID,
		staffID:    staffID,
		slot:       slot,
		status:     StatusConfirmed,
		price:      price,
		note:       note,
	}
}

func ReconstructAppointment(
	id, salonID, serviceID, customerID uuid.UUID,
	staffID *uuid.UUID,
	slot Slot,
	status Status,
	price Money,
	note Note,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:         id,
		salonID:    salonID,
		serviceID:  serviceID,
		customerID: customerID,
		staffID:    staffID,
		slot:       slot,
		status:     status,
		price:      price,
		note:       note,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Cancel enforces the salon's cancellation notice: an appointment can only be
// canceled up to noticeHours before its start.
func (a *Appointment) Cancel(now time.Time, noticeHours int) error {
	switch a.status {
	case StatusCanceled:
		return ErrAlreadyCanceled
	case StatusCompleted:
		return ErrAlreadyCompleted
	}
	deadline := a.slot.Start().Add(-time.Duration(noticeHours) * time.Hour)
	if now.After(deadline) {
		return ErrCancellationNotice
	}
	a.status = StatusCanceled
	return nil
}

func (a *Appointment) IsActive() bool {
	return a.status == StatusConfirmed
}

func (a *Appointment) HasPassed(now time.Time) bool {
	return now.After(a.slot.End())
}

func (a *Appointment) ID() uuid.UUID         { return a.id }
func (a *Appointment) SalonID() uuid.UUID    { return a.salonID }
func (a *Appointment) ServiceID() uuid.UUID  { return a.serviceID }
func (a *Appointment) CustomerID() uuid.UUID { return a.customerID }
func (a *Appointment) StaffID() *uuid.UUID   { return a.staffID }
func (a *Appointment) Slot() Slot            { return a.slot }
func (a *Appointment) Status() Status        { return a.status }
func (a *Appointment) Price() Money          { return a.price }
func (a *Appointment) Note() Note            { return a.note }
func (a *Appointment) CreatedAt() time.Time  { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time  { return a.updatedAt }
