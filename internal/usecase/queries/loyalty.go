package queries

import (
	"context"

	"schnittwerk-api/internal/domain/loyalty"

	"github.com/google/uuid"
)

// CustomerActivity aggregates a customer's paid history across orders and
// completed appointments.
type CustomerActivity struct {
	LifetimeSpendCents int64
	Visits             int
}

type LoyaltyReadStore interface {
	CustomerActivity(ctx context.Context, customerID uuid.UUID) (*CustomerActivity, error)
}

type LoyaltyQueries interface {
	GetMyLoyalty(ctx context.Context, customerID uuid.UUID) (*LoyaltyView, error)
}

type loyaltyQueriesImpl struct {
	store LoyaltyReadStore
	calc  loyalty.Calculator
}

func NewLoyaltyQueries(store LoyaltyReadStore) LoyaltyQueries {
	return &loyaltyQueriesImpl{store: store, calc: loyalty.NewCalculator()}
}

func (q *loyaltyQueriesImpl) GetMyLoyalty(ctx context.Context, customerID uuid.UUID) (*LoyaltyView, error) {
	activity, err := q.store.CustomerActivity(ctx, customerID)
	if err != nil {
		return nil, err
	}

	result := q.calc.Calculate(loyalty.Input{
		LifetimeSpendCents: activity.LifetimeSpendCents,
		Visits:             activity.Visits,
	})

	return &LoyaltyView{
		Tier:               string(result.Tier),
		NextThresholdCents: result.NextThresholdCents,
		BonusMultiplier:    result.BonusMultiplier,
		LifetimeSpendCents: activity.LifetimeSpendCents,
		Visits:             activity.Visits,
	}, nil
}
