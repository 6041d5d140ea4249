//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"schnittwerk-api/internal/handler/api"
	resdto "schnittwerk-api/internal/handler/dto/response"
	"schnittwerk-api/internal/pkg/config"
	"schnittwerk-api/internal/pkg/cookie"
	"schnittwerk-api/internal/pkg/jwt"
	"schnittwerk-api/internal/usecase/commands"
	"schnittwerk-api/tests/common/builder"
	"schnittwerk-api/tests/common/httptest"
	commandsmock "schnittwerk-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
	userID       uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, jwtService, config.NewTestConfig())

	// Stands in for RequireAuth
	authed := func(c *gin.Context) {
		c.Set("user_id", s.userID)
	}

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", authed, s.handler.Logout)
	s.router.GET("/auth/me", authed, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) tokens() *commands.TokenPair {
	return &commands.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	body := map[string]any{
		"email":             "anna@example.com",
		"password":          "Str0ng-Passw0rd",
		"name":              "Anna Keller",
		"marketing_consent": true,
	}

	s.Run("success: returns 201 Created with tokens and user", func() {
		view := builder.NewUserBuilder().
			WithEmail("anna@example.com").
			WithName("Anna Keller").
			WithMarketingConsent().
			BuildReadModel()
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(s.tokens(), view, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", body, "")

		var res resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal("access-token", res.AccessToken)
		s.Equal("anna@example.com", res.User.Email)
		s.NotNil(httptest.ExtractCookie(w, cookie.AccessTokenCookieName))
		s.NotNil(httptest.ExtractCookie(w, cookie.RefreshTokenCookieName))
	})

	s.Run("duplicate email: returns 409 Conflict", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, nil, commands.ErrEmailTaken).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Email is already registered")
	})

	s.Run("missing fields: returns 400 Bad Request", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register",
			map[string]any{"email": "anna@example.com"}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	body := map[string]any{
		"email":    "anna@example.com",
		"password": "Str0ng-Passw0rd",
	}

	s.Run("success: returns 200 OK and sets token cookies", func() {
		view := builder.NewUserBuilder().WithEmail("anna@example.com").BuildReadModel()
		s.mockCommands.EXPECT().Login(gomock.Any(), "anna@example.com", "Str0ng-Passw0rd").
			Return(s.tokens(), view, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")

		var res resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("access-token", res.AccessToken)
		s.Equal("anna@example.com", res.User.Email)

		refresh := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
		s.Require().NotNil(refresh)
		s.Equal("refresh-token", refresh.Value)
	})

	s.Run("wrong credentials: returns 401 Unauthorized", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "anna@example.com", "Str0ng-Passw0rd").
			Return(nil, nil, commands.ErrInvalidCredentials).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("deactivated account: returns 403 Forbidden", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "anna@example.com", "Str0ng-Passw0rd").
			Return(nil, nil, commands.ErrUserInactive).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Account is inactive")
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	s.Run("success: rotates the token pair", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), "old-refresh-token").
			Return(s.tokens(), nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "old-refresh-token"}}
		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, cookies, "")

		var res map[string]string
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("access-token", res["access_token"])
	})

	s.Run("missing cookie: returns 401 Unauthorized", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("rejected token: returns 401 Unauthorized", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), "stale-token").
			Return(nil, commands.ErrTokenValidation).Times(1)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "stale-token"}}
		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, cookies, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired refresh token")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and expires both cookies", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

		s.Equal(http.StatusNoContent, w.Code)
		for _, name := range []string{cookie.AccessTokenCookieName, cookie.RefreshTokenCookieName} {
			cleared := httptest.ExtractCookie(w, name)
			s.Require().NotNil(cleared)
			s.Empty(cleared.Value)
		}
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the authenticated user", func() {
		view := builder.NewUserBuilder().WithEmail("anna@example.com").BuildReadModel()
		view.ID = s.userID
		s.mockCommands.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(view, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		var res resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(s.userID, res.ID)
		s.Equal("anna@example.com", res.Email)
	})

	s.Run("deleted account: returns 404 Not Found", func() {
		s.mockCommands.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(nil, commands.ErrUserNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
	})
}
