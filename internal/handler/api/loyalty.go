package api

import (
	"net/http"

	"schnittwerk-api/internal/handler/httperr"
	"schnittwerk-api/internal/handler/middleware"
	"schnittwerk-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LoyaltyHandler struct {
	loyalty queries.LoyaltyQueries
}

func NewLoyaltyHandler(loyalty queries.LoyaltyQueries) *LoyaltyHandler {
	return &LoyaltyHandler{loyalty: loyalty}
}

// @Summary My loyalty status
// @Description Get the authenticated customer's loyalty tier and progress
// @Tags loyalty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.LoyaltyView
// @Failure 401 {object} httperr.Response
// @Router /me/loyalty [get]
func (h *LoyaltyHandler) GetMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "User not authenticated", nil)
		return
	}

	view, err := h.loyalty.GetMyLoyalty(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}
