package api

import (
	"net/http"

	"schnittwerk-api/internal/handler/httperr"
	"schnittwerk-api/internal/infra"
	"schnittwerk-api/internal/pkg/reqcache"
	"schnittwerk-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog queries.CatalogQueries
}

func NewCatalogHandler(catalog queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// @Summary Salon info
// @Description Get the salon profile and its opening hours
// @Tags catalog
// @Produce json
// @Success 200 {object} queries.SalonInfo
// @Failure 404 {object} httperr.Response
// @Router /salon [get]
func (h *CatalogHandler) GetSalon(c *gin.Context) {
	info, err := h.catalog.GetSalonInfo(c.Request.Context(), reqcache.New())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Salon not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, info)
}

// @Summary List services
// @Description List bookable services grouped by category
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.ServiceCategoryView
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	categories, err := h.catalog.ListServices(c.Request.Context(), reqcache.New())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// @Summary List products
// @Description List products available in the shop
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.ProductView
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, products)
}

// @Summary Get product
// @Description Get one product by its slug
// @Tags catalog
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} queries.ProductView
// @Failure 404 {object} httperr.Response
// @Router /products/{slug} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, product)
}
