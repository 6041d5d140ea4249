package api

import (
	"net/http"

	"schnittwerk-api/internal/handler/httperr"
	"schnittwerk-api/internal/pkg/reqcache"
	"schnittwerk-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin queries.AdminQueries
}

func NewAdminHandler(admin queries.AdminQueries) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// @Summary Back-office snapshot
// @Description Get the full back-office dataset in one response
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.AdminSnapshotView
// @Failure 403 {object} httperr.Response
// @Router /admin/snapshot [get]
func (h *AdminHandler) GetSnapshot(c *gin.Context) {
	snapshot, err := h.admin.GetSnapshot(c.Request.Context(), reqcache.New())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// @Summary Business analytics
// @Description Get revenue, retention and stock figures for the dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.AnalyticsView
// @Failure 403 {object} httperr.Response
// @Router /admin/analytics [get]
func (h *AdminHandler) GetAnalytics(c *gin.Context) {
	analytics, err := h.admin.GetAnalytics(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, analytics)
}
