//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"schnittwerk-api/internal/domain/booking"
	"schnittwerk-api/internal/handler/api"
	resdto "schnittwerk-api/internal/handler/dto/response"
	"schnittwerk-api/internal/usecase/commands"
	"schnittwerk-api/internal/usecase/queries"
	"schnittwerk-api/tests/common/builder"
	"schnittwerk-api/tests/common/httptest"
	commandsmock "schnittwerk-api/tests/mock/commands"
	queriesmock "schnittwerk-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockAppointmentCommands
	mockQueries      *queriesmock.MockAppointmentQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.BookingHandler
	userID           uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, s.mockAvailability)

	// Stands in for RequireAuth
	authed := func(c *gin.Context) {
		c.Set("user_id", s.userID)
	}

	s.router.GET("/availability", s.handler.ListAvailability)
	s.router.POST("/appointments", authed, s.handler.Book)
	s.router.GET("/appointments", authed, s.handler.ListMine)
	s.router.GET("/appointments/:id", authed, s.handler.Get)
	s.router.POST("/appointments/:id/cancel", authed, s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestBook() {
	view := builder.NewAppointmentViewBuilder().WithCustomerID(s.userID).Build()
	body := map[string]any{
		"service_id": view.ServiceID.String(),
		"starts_at":  view.StartsAt.Format(time.RFC3339),
	}

	s.Run("success: returns 201 Created with the appointment", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), s.userID, gomock.Any()).
			Return(view, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments", body, "")

		var resp resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(view.ServiceName, resp.ServiceName)
	})

	s.Run("failure: returns 422 with every violated rule", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, &commands.SlotRejectedError{
				Reasons: []booking.Reason{booking.ReasonLeadTime, booking.ReasonPastClosing},
			}).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments", body, "")

		var resp resdto.SlotRejectionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusUnprocessableEntity, nil)
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), w.Body, &resp))
		s.Equal([]string{"slot too close to now", "service exceeds closing time"}, resp.Reasons)
	})

	s.Run("failure: returns 404 for an unknown service", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrServiceNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments", body, "")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("failure: returns 400 for a malformed body", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments", map[string]any{"service_id": 42}, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, id).Return(nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+id.String()+"/cancel", nil, "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("failure: returns 409 when the notice period has passed", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, id).
			Return(commands.ErrCancellationTooLate).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+id.String()+"/cancel", nil, "")

		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("failure: returns 404 for another customer's appointment", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, id).
			Return(commands.ErrNotAppointmentOwner).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+id.String()+"/cancel", nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewAppointmentViewBuilder().WithCustomerID(s.userID).Build()

	s.Run("success: returns 200 OK with the appointment", func() {
		s.mockQueries.EXPECT().GetAppointment(gomock.Any(), s.userID, view.ID).
			Return(view, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+view.ID.String(), nil, "")

		var resp resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
	})

	s.Run("failure: returns 404 when not visible", func() {
		s.mockQueries.EXPECT().GetAppointment(gomock.Any(), s.userID, view.ID).
			Return(nil, queries.ErrAppointmentNotVisible).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+view.ID.String(), nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestListAvailability() {
	serviceID := uuid.New()
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	s.Run("success: returns the generated slots", func() {
		s.mockAvailability.EXPECT().ListSlots(gomock.Any(), serviceID, "2024-03-04").
			Return([]queries.SlotView{{StartsAt: start, EndsAt: start.Add(45 * time.Minute)}}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router,
			http.MethodGet, "/availability?service_id="+serviceID.String()+"&date=2024-03-04", nil, "")

		var resp []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("failure: returns 400 for a bad date", func() {
		s.mockAvailability.EXPECT().ListSlots(gomock.Any(), serviceID, "04.03.2024").
			Return(nil, queries.ErrInvalidDate).Times(1)

		w := httptest.PerformRequest(s.T(), s.router,
			http.MethodGet, "/availability?service_id="+serviceID.String()+"&date=04.03.2024", nil, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("failure: returns 400 for a malformed service id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?service_id=nope&date=2024-03-04", nil, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}
