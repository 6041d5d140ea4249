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

type ShopHandler struct {
	checkout commands.CheckoutCommands
	orders   queries.OrderQueries
}

func NewShopHandler(checkout commands.CheckoutCommands, orders queries.OrderQueries) *ShopHandler {
	return &ShopHandler{checkout: checkout, orders: orders}
}

// @Summary Place an order
// @Description Price the cart server-side, apply an optional voucher and create the order
// @Tags shop
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlaceOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /orders [post]
func (h *ShopHandler) PlaceOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "User not authenticated", nil)
		return
	}

	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.checkout.PlaceOrder(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		var rejected *commands.VoucherRejectedError
		switch {
		case errors.As(err, &rejected):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Voucher cannot be applied",
				gin.H{"reason": string(rejected.Reason)})
		case errors.Is(err, commands.ErrEmptyCart), errors.Is(err, commands.ErrInvalidQuantity):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		case errors.Is(err, commands.ErrProductNotFound), errors.Is(err, commands.ErrVoucherNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product or voucher not found", nil)
		case errors.Is(err, commands.ErrProductInactive), errors.Is(err, commands.ErrInsufficientStock):
			httperr.AbortWithError(c, http.StatusConflict, err, "Product is unavailable in the requested quantity", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

// @Summary List my orders
// @Description List the authenticated customer's orders
// @Tags shop
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Router /orders [get]
func (h *ShopHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "User not authenticated", nil)
		return
	}

	views, err := h.orders.ListMyOrders(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Get an order
// @Description Get one of the authenticated customer's orders
// @Tags shop
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *ShopHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "User not authenticated", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID", nil)
		return
	}

	view, err := h.orders.GetOrder(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, queries.ErrOrderNotVisible) || infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}
