package request

import (
	"strings"

	"schnittwerk-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

type PlaceOrderRequest struct {
	Items       []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	VoucherCode *string            `json:"voucher_code,omitempty"`
}

func (r PlaceOrderRequest) ToParams() commands.PlaceOrderParams {
	items := make([]commands.CartItemParams, len(r.Items))
	for i, item := range r.Items {
		items[i] = commands.CartItemParams{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	var code *string
	if r.VoucherCode != nil {
		trimmed := strings.TrimSpace(*r.VoucherCode)
		if trimmed != "" {
			code = &trimmed
		}
	}

	return commands.PlaceOrderParams{Items: items, VoucherCode: code}
}
