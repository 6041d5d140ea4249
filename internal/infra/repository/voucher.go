package repository

import (
	"context"

	"schnittwerk-api/internal/infra/db"
	"schnittwerk-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type VoucherRepository struct {
	db db.Querier
}

func NewVoucherRepository(q db.Querier) *VoucherRepository {
	return &VoucherRepository{db: q}
}

func (r *VoucherRepository) FindByCode(ctx context.Context, code string) (*commands.VoucherSnapshot, error) {
	var snap commands.VoucherSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, code, kind, value, min_spend_cents, expires_at, remaining_uses, active
		FROM vouchers WHERE code = $1`, code,
	).Scan(
		&snap.ID, &snap.Voucher.Code, &snap.Voucher.Kind, &snap.Voucher.Value,
		&snap.Voucher.MinSpendCents, &snap.Voucher.ExpiresAt, &snap.Voucher.RemainingUses,
		&snap.Voucher.Active,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to find voucher", err)
	}
	return &snap, nil
}

// DecrementUses only touches vouchers with a use limit; codes with a NULL
// remaining_uses are unlimited and match no row, which is not an error.
func (r *VoucherRepository) DecrementUses(ctx context.Context, q db.Querier, id uuid.UUID) error {
	_, err := q.Exec(ctx, `
		UPDATE vouchers
		SET remaining_uses = remaining_uses - 1
		WHERE id = $1 AND remaining_uses IS NOT NULL AND remaining_uses > 0`, id)
	if err != nil {
		return wrapQueryErr("failed to decrement voucher uses", err)
	}
	return nil
}
