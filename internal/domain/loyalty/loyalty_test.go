//go:build unit

package loyalty_test

import (
	"testing"

	"schnittwerk-api/internal/domain/loyalty"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	calc := loyalty.NewCalculator()

	t.Run("tier table", func(t *testing.T) {
		cases := []struct {
			name          string
			spendCents    int64
			visits        int
			tier          loyalty.Tier
			nextThreshold *int64
			multiplier    float64
		}{
			{
				name:          "low spend defaults to classic",
				spendCents:    5000,
				visits:        1,
				tier:          loyalty.TierClassic,
				nextThreshold: ptr(int64(20000)),
				multiplier:    1,
			},
			{
				name:          "mid spend with repeated visits upgrades to silver",
				spendCents:    16000,
				visits:        5,
				tier:          loyalty.TierSilver,
				nextThreshold: ptr(int64(50000)),
				multiplier:    1.2,
			},
			{
				name:          "mid spend without repeated visits stays classic",
				spendCents:    16000,
				visits:        3,
				tier:          loyalty.TierClassic,
				nextThreshold: ptr(int64(20000)),
				multiplier:    1,
			},
			{
				name:          "silver spend threshold alone is enough",
				spendCents:    20000,
				visits:        0,
				tier:          loyalty.TierSilver,
				nextThreshold: ptr(int64(50000)),
				multiplier:    1.2,
			},
			{
				name:       "high spend awards gold regardless of visits",
				spendCents: 52000,
				visits:     2,
				tier:       loyalty.TierGold,
				multiplier: 1.5,
			},
			{
				name:       "repeat customers reach gold earlier",
				spendCents: 30000,
				visits:     4,
				tier:       loyalty.TierGold,
				multiplier: 1.5,
			},
			{
				name:          "thirty thousand without repeat visits is silver",
				spendCents:    30000,
				visits:        3,
				tier:          loyalty.TierSilver,
				nextThreshold: ptr(int64(50000)),
				multiplier:    1.2,
			},
			{
				name:          "negative spend is clamped to zero",
				spendCents:    -100,
				visits:        10,
				tier:          loyalty.TierClassic,
				nextThreshold: ptr(int64(20000)),
				multiplier:    1,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				result := calc.Calculate(loyalty.Input{LifetimeSpendCents: tc.spendCents, Visits: tc.visits})

				assert.Equal(t, tc.tier, result.Tier)
				assert.Equal(t, tc.multiplier, result.BonusMultiplier)
				if tc.nextThreshold == nil {
					assert.Nil(t, result.NextThresholdCents)
				} else {
					require.NotNil(t, result.NextThresholdCents)
					assert.Equal(t, *tc.nextThreshold, *result.NextThresholdCents)
				}
			})
		}
	})

	t.Run("gold has no next threshold", func(t *testing.T) {
		result := calc.Calculate(loyalty.Input{LifetimeSpendCents: 50000, Visits: 0})
		assert.Equal(t, loyalty.TierGold, result.Tier)
		assert.Nil(t, result.NextThresholdCents)
	})

	t.Run("tier is monotonic in spend and visits", func(t *testing.T) {
		spends := []int64{0, 14999, 15000, 19999, 20000, 29999, 30000, 49999, 50000, 80000}
		visits := []int{0, 1, 3, 4, 10}

		for _, v := range visits {
			prev := -1
			for _, s := range spends {
				got := calc.Calculate(loyalty.Input{LifetimeSpendCents: s, Visits: v}).Tier.Ordinal()
				assert.GreaterOrEqual(t, got, prev, "spend %d visits %d", s, v)
				prev = got
			}
		}
		for _, s := range spends {
			prev := -1
			for _, v := range visits {
				got := calc.Calculate(loyalty.Input{LifetimeSpendCents: s, Visits: v}).Tier.Ordinal()
				assert.GreaterOrEqual(t, got, prev, "spend %d visits %d", s, v)
				prev = got
			}
		}
	})
}

func ptr[T any](v T) *T {
	return &v
}
