package repository

import (
	"context"

	"schnittwerk-api/internal/infra/db"
	"schnittwerk-api/internal/pkg/pgconv"
	"schnittwerk-api/internal/usecase/commands"
	"schnittwerk-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.Querier
}

func NewOrderRepository(q db.Querier) *OrderRepository {
	return &OrderRepository{db: q}
}

func (r *OrderRepository) Create(ctx context.Context, q db.Querier, order *commands.OrderRecord) error {
	_, err := q.Exec(ctx, `
		INSERT INTO orders (id, customer_id, status, subtotal_cents, discount_cents, total_cents, currency, voucher_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		order.ID, order.CustomerID, order.Status, order.SubtotalCents,
		order.DiscountCents, order.TotalCents, order.Currency, pgconv.UUIDPtrToPgtype(order.VoucherID), order.CreatedAt,
	)
	if err != nil {
		return wrapQueryErr("failed to create order", err)
	}

	for _, line := range order.Lines {
		_, err := q.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_cents)
			VALUES ($1, $2, $3, $4, $5)`,
			order.ID, line.ProductID, line.Name, line.Quantity, line.UnitCents,
		)
		if err != nil {
			return wrapQueryErr("failed to create order item", err)
		}
	}
	return nil
}

type OrderReadStore struct {
	db db.Querier
}

func NewOrderReadStore(q db.Querier) *OrderReadStore {
	return &OrderReadStore{db: q}
}

func (s *OrderReadStore) CustomerIDOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var customerID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT customer_id FROM orders WHERE id = $1`, id).Scan(&customerID)
	if err != nil {
		return uuid.Nil, wrapQueryErr("failed to find order owner", err)
	}
	return customerID, nil
}

func (s *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var view queries.OrderView
	err := s.db.QueryRow(ctx, `
		SELECT o.id, o.status, o.subtotal_cents, o.discount_cents, o.total_cents, o.currency, v.code, o.created_at
		FROM orders o
		LEFT JOIN vouchers v ON v.id = o.voucher_id
		WHERE o.id = $1`, id,
	).Scan(
		&view.ID, &view.Status, &view.SubtotalCents, &view.DiscountCents,
		&view.TotalCents, &view.Currency, &view.VoucherCode, &view.CreatedAt,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to find order", err)
	}

	items, err := s.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Items = items
	return &view, nil
}

func (s *OrderReadStore) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]queries.OrderView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT o.id, o.status, o.subtotal_cents, o.discount_cents, o.total_cents, o.currency, v.code, o.created_at
		FROM orders o
		LEFT JOIN vouchers v ON v.id = o.voucher_id
		WHERE o.customer_id = $1
		ORDER BY o.created_at DESC`, customerID)
	if err != nil {
		return nil, wrapQueryErr("failed to list orders", err)
	}
	defer rows.Close()

	views := []queries.OrderView{}
	for rows.Next() {
		var view queries.OrderView
		err := rows.Scan(
			&view.ID, &view.Status, &view.SubtotalCents, &view.DiscountCents,
			&view.TotalCents, &view.Currency, &view.VoucherCode, &view.CreatedAt,
		)
		if err != nil {
			return nil, wrapQueryErr("failed to scan order", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read orders", err)
	}

	for i := range views {
		items, err := s.listItems(ctx, views[i].ID)
		if err != nil {
			return nil, err
		}
		views[i].Items = items
	}
	return views, nil
}

func (s *OrderReadStore) listItems(ctx context.Context, orderID uuid.UUID) ([]queries.OrderItemView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT product_id, product_name, quantity, unit_cents
		FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, wrapQueryErr("failed to list order items", err)
	}
	defer rows.Close()

	items := []queries.OrderItemView{}
	for rows.Next() {
		var item queries.OrderItemView
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.UnitCents); err != nil {
			return nil, wrapQueryErr("failed to scan order item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read order items", err)
	}
	return items, nil
}
