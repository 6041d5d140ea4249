package loyalty

// Tier is a named rewards level granting a bonus multiplier on future earning.
type Tier string

const (
	TierClassic Tier = "classic"
	TierSilver  Tier = "silver"
	TierGold    Tier = "gold"
)

func (t Tier) String() string {
	return string(t)
}

// Ordinal orders tiers: classic < silver < gold.
func (t Tier) Ordinal() int {
	switch t {
	case TierSilver:
		return 1
	case TierGold:
		return 2
	default:
		return 0
	}
}

// Input aggregates a customer's lifetime history; callers collect it from
// order and appointment records.
type Input struct {
	LifetimeSpendCents int64
	Visits             int
}

// Result is the computed tier. NextThresholdCents is nil at the top tier.
type Result struct {
	Tier               Tier
	NextThresholdCents *int64
	BonusMultiplier    float64
}

// Calculator evaluates the tier step function. Thresholds are fixed per
// instance; callers needing different thresholds construct their own.
type Calculator struct {
	goldSpendCents         int64
	goldRepeatSpendCents   int64
	silverSpendCents       int64
	silverRepeatSpendCents int64
	repeatVisits           int
}

func NewCalculator() Calculator {
	return Calculator{
		goldSpendCents:         50000,
		goldRepeatSpendCents:   30000,
		silverSpendCents:       20000,
		silverRepeatSpendCents: 15000,
		repeatVisits:           3,
	}
}

// Calculate is total over all inputs: negative spend is clamped to zero.
// The result is monotonic in both spend and visits.
func (c Calculator) Calculate(in Input) Result {
	spend := in.LifetimeSpendCents
	if spend < 0 {
		spend = 0
	}
	repeated := in.Visits > c.repeatVisits

	if spend >= c.goldSpendCents || (spend >= c.goldRepeatSpendCents && repeated) {
		return Result{Tier: TierGold, BonusMultiplier: 1.5}
	}
	if spend >= c.silverSpendCents || (spend >= c.silverRepeatSpendCents && repeated) {
		next := c.goldSpendCents
		return Result{Tier: TierSilver, NextThresholdCents: &next, BonusMultiplier: 1.2}
	}
	next := c.silverSpendCents
	return Result{Tier: TierClassic, NextThresholdCents: &next, BonusMultiplier: 1}
}
