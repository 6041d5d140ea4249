package repository

import (
	"context"

	"schnittwerk-api/internal/infra"
	"schnittwerk-api/internal/infra/db"
	"schnittwerk-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	db db.Querier
}

func NewProductRepository(q db.Querier) *ProductRepository {
	return &ProductRepository{db: q}
}

func (r *ProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]commands.ProductSnapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, slug, price_cents, currency, stock, active
		FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, wrapQueryErr("failed to load products", err)
	}
	defer rows.Close()

	snaps := []commands.ProductSnapshot{}
	for rows.Next() {
		var snap commands.ProductSnapshot
		err := rows.Scan(&snap.ID, &snap.Name, &snap.Slug, &snap.PriceCents, &snap.Currency, &snap.Stock, &snap.Active)
		if err != nil {
			return nil, wrapQueryErr("failed to scan product", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read products", err)
	}
	return snaps, nil
}

// DecrementStock guards against overselling at the database level: the WHERE
// clause refuses to take the stock below zero even under concurrent checkouts.
func (r *ProductRepository) DecrementStock(ctx context.Context, q db.Querier, id uuid.UUID, quantity int) error {
	tag, err := q.Exec(ctx, `
		UPDATE products SET stock = stock - $2 WHERE id = $1 AND stock >= $2`,
		id, quantity,
	)
	if err != nil {
		return wrapQueryErr("failed to decrement stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("insufficient stock", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
