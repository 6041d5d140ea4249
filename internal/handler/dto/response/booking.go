package response

import (
	"time"

	"schnittwerk-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	StaffName   *string   `json:"staff_name,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"price_cents"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type SlotResponse struct {
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

type SlotRejectionResponse struct {
	Reasons []string `json:"reasons"`
}

func FromAppointmentView(view *queries.AppointmentView) *AppointmentResponse {
	var resp AppointmentResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromAppointmentViews(views []queries.AppointmentView) []AppointmentResponse {
	resps := make([]AppointmentResponse, len(views))
	for i := range views {
		resps[i] = *FromAppointmentView(&views[i])
	}
	return resps
}

func FromSlotViews(views []queries.SlotView) []SlotResponse {
	resps := make([]SlotResponse, len(views))
	for i, v := range views {
		resps[i] = SlotResponse{StartsAt: v.StartsAt, EndsAt: v.EndsAt}
	}
	return resps
}
