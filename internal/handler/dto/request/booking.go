package request

import (
	"strings"
	"time"

	"schnittwerk-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	ServiceID uuid.UUID  `json:"service_id" binding:"required"`
	StaffID   *uuid.UUID `json:"staff_id,omitempty"`
	StartsAt  time.Time  `json:"starts_at" binding:"required"`
	Note      *string    `json:"note,omitempty"`
}

func (r BookAppointmentRequest) ToParams() commands.BookAppointmentParams {
	note := ""
	if r.Note != nil {
		note = strings.TrimSpace(*r.Note)
	}
	return commands.BookAppointmentParams{
		ServiceID: r.ServiceID,
		StaffID:   r.StaffID,
		StartsAt:  r.StartsAt,
		Note:      note,
	}
}
