package api

import (
	"errors"
	"net/http"

	reqdto "schnittwerk-api/internal/handler/dto/request"
	resdto "schnittwerk-api/internal/handler/dto/response"
	"schnittwerk-api/internal/handler/httperr"
	"schnittwerk-api/internal/handler/middleware"
	"schnittwerk-api/internal/infra"
	"schnittwerk-api/internal/usecase/commands"
	"schnittwerk-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands     commands.AppointmentCommands
	queries      queries.AppointmentQueries
	availability queries.AvailabilityQueries
}

func NewBookingHandler(
	appointmentCommands commands.AppointmentCommands,
	appointmentQueries queries.AppointmentQueries,
	availability queries.AvailabilityQueries,
) *BookingHandler {
	return &BookingHandler{
		commands:     appointmentCommands,
		queries:      appointmentQueries,
		availability: availability,
	}
}

// @Summary List available slots
// @Description List bookable slots for a service on a given day
// @Tags booking
// @Produce json
// @Param service_id query string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability [get]
func (h *BookingHandler) ListAvailability(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID", nil)
		return
	}

	slots, err := h.availability.ListSlots(c.Request.Context(), serviceID, c.Query("date"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Date must be in YYYY-MM-DD format", nil)
		case errors.Is(err, queries.ErrServiceNotBookable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Service is not bookable", nil)
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(slots))
}

// @Summary Book an appointment
// @Description Book a service slot for the authenticated customer
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} resdto.SlotRejectionResponse
// @Router /appointments [post]
func (h *BookingHandler) Book(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "User not authenticated", nil)
		return
	}

	var req reqdto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Book(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		var rejected *commands.SlotRejectedError
		switch {
		case errors.As(err, &rejected):
			reasons := make([]string, len(rejected.Reasons))
			for i, r := range rejected.Reasons {
				reasons[i] = string(r)
			}
			c.JSON(http.StatusUnprocessableEntity, resdto.SlotRejectionResponse{Reasons: reasons})
		case errors.Is(err, commands.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, commands.ErrServiceInactive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Service is not bookable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary List my appointments
// @Description List the authenticated customer's appointments
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentResponse
// @Router /appointments [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "User not authenticated", nil)
		return
	}

	views, err := h.queries.ListMyAppointments(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

// @Summary Get an appointment
// @Description Get one of the authenticated customer's appointments
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "User not authenticated", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment ID", nil)
		return
	}

	view, err := h.queries.GetAppointment(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, queries.ErrAppointmentNotVisible) || infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Cancel an appointment
// @Description Cancel one of the authenticated customer's appointments
// @Tags booking
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "User not authenticated", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment ID", nil)
		return
	}

	if err := h.commands.Cancel(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrAppointmentNotFound), errors.Is(err, commands.ErrNotAppointmentOwner):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		case errors.Is(err, commands.ErrCancellationTooLate):
			httperr.AbortWithError(c, http.StatusConflict, err, "Cancellation notice period has passed", nil)
		case errors.Is(err, commands.ErrAppointmentFinalized):
			httperr.AbortWithError(c, http.StatusConflict, err, "Appointment is already canceled or completed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
