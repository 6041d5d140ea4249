package commands

import (
	"context"
	"fmt"

	"schnittwerk-api/internal/domain/voucher"
	"schnittwerk-api/internal/infra"
	"schnittwerk-api/internal/pkg/clock"
	"schnittwerk-api/internal/pkg/errs"
	"schnittwerk-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTransactionBegin  = errs.New("failed to begin transaction")
	ErrTransactionCommit = errs.New("failed to commit transaction")

	ErrEmptyCart         = errs.New("cart is empty")
	ErrProductNotFound   = errs.New("product not found")
	ErrProductInactive   = errs.New("product inactive")
	ErrInsufficientStock = errs.New("insufficient stock")
	ErrInvalidQuantity   = errs.New("quantity must be positive")
	ErrVoucherNotFound   = errs.New("voucher not found")
)

// VoucherRejectedError reports why a voucher did not apply; the redemption
// calculator stops at the first failing check, so there is exactly one reason.
type VoucherRejectedError struct {
	Reason voucher.Reason
}

func (e *VoucherRejectedError) Error() string {
	return fmt.Sprintf("voucher rejected: %s", e.Reason)
}

type CartItemParams struct {
	ProductID uuid.UUID
	Quantity  int
}

type PlaceOrderParams struct {
	Items       []CartItemParams
	VoucherCode *string
}

type CheckoutCommands interface {
	PlaceOrder(ctx context.Context, customerID uuid.UUID, params PlaceOrderParams) (*queries.OrderView, error)
}

type checkoutCommandsImpl struct {
	products ProductRepository
	vouchers VoucherRepository
	orders   OrderRepository
	views    queries.OrderReadStore
	db       *pgxpool.Pool
	clock    clock.Clock
}

func NewCheckoutCommands(
	products ProductRepository,
	vouchers VoucherRepository,
	orders OrderRepository,
	views queries.OrderReadStore,
	db *pgxpool.Pool,
	clock clock.Clock,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		products: products,
		vouchers: vouchers,
		orders:   orders,
		views:    views,
		db:       db,
		clock:    clock,
	}
}

// PlaceOrder prices the cart server-side, applies an optional voucher and
// records the order pending payment; capturing the payment itself belongs to
// the external provider.
func (c *checkoutCommandsImpl) PlaceOrder(ctx context.Context, customerID uuid.UUID, params PlaceOrderParams) (*queries.OrderView, error) {
	if len(params.Items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, item := range params.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}
	items := mergeCartItems(params.Items)

	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.ProductID
	}

	products, err := c.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]ProductSnapshot, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var subtotal int64
	currency := "CHF"
	lines := make([]OrderLine, 0, len(items))
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}
		if !p.Active {
			return nil, ErrProductInactive
		}
		if p.Stock < item.Quantity {
			return nil, ErrInsufficientStock
		}
		currency = p.Currency
		subtotal += p.PriceCents * int64(item.Quantity)
		lines = append(lines, OrderLine{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  item.Quantity,
			UnitCents: p.PriceCents,
		})
	}

	var discount int64
	var voucherID *uuid.UUID
	if params.VoucherCode != nil {
		snap, err := c.vouchers.FindByCode(ctx, *params.VoucherCode)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrVoucherNotFound
			}
			return nil, err
		}

		redemption := voucher.Redeem(subtotal, snap.Voucher, c.clock.Now())
		if !redemption.Applied {
			return nil, &VoucherRejectedError{Reason: redemption.Reason}
		}
		discount = redemption.DiscountCents
		id := snap.ID
		voucherID = &id
	}

	order := &OrderRecord{
		ID:            uuid.New(),
		CustomerID:    customerID,
		Status:        "pending",
		SubtotalCents: subtotal,
		DiscountCents: discount,
		TotalCents:    subtotal - discount,
		Currency:      currency,
		VoucherID:     voucherID,
		Lines:         lines,
		CreatedAt:     c.clock.Now(),
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrTransactionBegin)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := c.orders.Create(ctx, tx, order); err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := c.products.DecrementStock(ctx, tx, line.ProductID, line.Quantity); err != nil {
			return nil, err
		}
	}
	if voucherID != nil {
		if err := c.vouchers.DecrementUses(ctx, tx, *voucherID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrTransactionCommit)
	}

	return c.views.FindByID(ctx, order.ID)
}

// mergeCartItems folds duplicate product lines into one entry so the stock
// check sees the combined quantity, not each line against the full stock.
func mergeCartItems(items []CartItemParams) []CartItemParams {
	merged := make([]CartItemParams, 0, len(items))
	index := map[uuid.UUID]int{}
	for _, item := range items {
		if pos, seen := index[item.ProductID]; seen {
			merged[pos].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}
