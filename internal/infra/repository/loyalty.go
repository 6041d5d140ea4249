package repository

import (
	"context"

	"schnittwerk-api/internal/infra/db"
	"schnittwerk-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoyaltyReadStore struct {
	db db.Querier
}

func NewLoyaltyReadStore(q db.Querier) *LoyaltyReadStore {
	return &LoyaltyReadStore{db: q}
}

// CustomerActivity sums paid orders and completed appointments into the
// lifetime figures the tier calculator consumes. Canceled appointments and
// unpaid orders do not count.
func (s *LoyaltyReadStore) CustomerActivity(ctx context.Context, customerID uuid.UUID) (*queries.CustomerActivity, error) {
	var activity queries.CustomerActivity
	err := s.db.QueryRow(ctx, `
		SELECT
			COALESCE((SELECT SUM(total_cents) FROM orders WHERE customer_id = $1 AND status IN ('paid', 'fulfilled')), 0)
			+ COALESCE((SELECT SUM(price_cents) FROM appointments WHERE customer_id = $1 AND status = 'completed'), 0),
			COALESCE((SELECT COUNT(*) FROM appointments WHERE customer_id = $1 AND status = 'completed'), 0)`,
		customerID,
	).Scan(&activity.LifetimeSpendCents, &activity.Visits)
	if err != nil {
		return nil, wrapQueryErr("failed to load customer activity", err)
	}
	return &activity, nil
}
