//go:build unit

package voucher_test

import (
	"testing"
	"time"

	"schnittwerk-api/internal/domain/voucher"
	"schnittwerk-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestRedeem(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("applies a percentage voucher", func(t *testing.T) {
		v := builder.NewVoucherBuilder().Percent(20).Active(true).Build()

		result := voucher.Redeem(20000, v, now)

		assert.True(t, result.Applied)
		assert.Equal(t, int64(4000), result.DiscountCents)
		assert.Equal(t, int64(16000), result.TotalAfterDiscount)
		assert.Empty(t, result.Reason)
	})

	t.Run("percentage discount rounds down", func(t *testing.T) {
		v := builder.NewVoucherBuilder().Percent(15).Build()

		result := voucher.Redeem(999, v, now)

		assert.True(t, result.Applied)
		assert.Equal(t, int64(149), result.DiscountCents) // floor(999*15/100)
		assert.Equal(t, int64(850), result.TotalAfterDiscount)
	})

	t.Run("percent values above 100 behave like 100", func(t *testing.T) {
		capped := voucher.Redeem(12345, builder.NewVoucherBuilder().Percent(250).Build(), now)
		full := voucher.Redeem(12345, builder.NewVoucherBuilder().Percent(100).Build(), now)

		assert.Equal(t, full, capped)
		assert.Equal(t, int64(12345), capped.DiscountCents)
		assert.Equal(t, int64(0), capped.TotalAfterDiscount)
	})

	t.Run("applies a flat amount voucher", func(t *testing.T) {
		v := builder.NewVoucherBuilder().Amount(3000).Build()

		result := voucher.Redeem(15000, v, now)

		assert.True(t, result.Applied)
		assert.Equal(t, int64(3000), result.DiscountCents)
		assert.Equal(t, int64(12000), result.TotalAfterDiscount)
	})

	t.Run("amount discount is capped at the total", func(t *testing.T) {
		v := builder.NewVoucherBuilder().Amount(5000).Build()

		result := voucher.Redeem(2000, v, now)

		assert.True(t, result.Applied)
		assert.Equal(t, int64(2000), result.DiscountCents)
		assert.Equal(t, int64(0), result.TotalAfterDiscount)
	})

	t.Run("rejects an explicitly inactive voucher", func(t *testing.T) {
		v := builder.NewVoucherBuilder().Percent(20).Active(false).Build()

		result := voucher.Redeem(20000, v, now)

		assert.False(t, result.Applied)
		assert.Equal(t, voucher.ReasonInactive, result.Reason)
		assert.Equal(t, int64(0), result.DiscountCents)
		assert.Equal(t, int64(20000), result.TotalAfterDiscount)
	})

	t.Run("absent active flag means active", func(t *testing.T) {
		v := builder.NewVoucherBuilder().Percent(10).Build()
		assert.Nil(t, v.Active)

		result := voucher.Redeem(10000, v, now)

		assert.True(t, result.Applied)
	})

	t.Run("rejects an expired voucher", func(t *testing.T) {
		expiry := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		v := builder.NewVoucherBuilder().Amount(3000).Active(true).ExpiresAt(expiry).Build()

		result := voucher.Redeem(15000, v, time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC))

		assert.False(t, result.Applied)
		assert.Equal(t, voucher.ReasonExpired, result.Reason)
	})

	t.Run("expiry instant itself is still valid", func(t *testing.T) {
		expiry := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		v := builder.NewVoucherBuilder().Amount(3000).ExpiresAt(expiry).Build()

		result := voucher.Redeem(15000, v, expiry)

		assert.True(t, result.Applied)
	})

	t.Run("rejects an exhausted voucher", func(t *testing.T) {
		v := builder.NewVoucherBuilder().Amount(1000).RemainingUses(0).Build()

		result := voucher.Redeem(8000, v, now)

		assert.False(t, result.Applied)
		assert.Equal(t, voucher.ReasonExhausted, result.Reason)
	})

	t.Run("enforces minimum spend", func(t *testing.T) {
		v := builder.NewVoucherBuilder().Amount(2000).MinSpend(10000).Build()

		result := voucher.Redeem(5000, v, now)

		assert.False(t, result.Applied)
		assert.Equal(t, voucher.ReasonBelowMinimum, result.Reason)
	})

	t.Run("minimum spend boundary is inclusive", func(t *testing.T) {
		v := builder.NewVoucherBuilder().Amount(2000).MinSpend(10000).Build()

		result := voucher.Redeem(10000, v, now)

		assert.True(t, result.Applied)
	})

	t.Run("first failing check wins", func(t *testing.T) {
		expiry := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		v := builder.NewVoucherBuilder().
			Amount(2000).
			Active(false).
			ExpiresAt(expiry).
			RemainingUses(0).
			MinSpend(99999).
			Build()

		result := voucher.Redeem(5000, v, now)

		assert.Equal(t, voucher.ReasonInactive, result.Reason)
	})

	t.Run("discount stays within bounds", func(t *testing.T) {
		totals := []int64{0, 1, 99, 100, 9999, 100000}
		vouchers := []voucher.Voucher{
			builder.NewVoucherBuilder().Percent(0).Build(),
			builder.NewVoucherBuilder().Percent(33).Build(),
			builder.NewVoucherBuilder().Percent(100).Build(),
			builder.NewVoucherBuilder().Amount(0).Build(),
			builder.NewVoucherBuilder().Amount(500).Build(),
			builder.NewVoucherBuilder().Amount(1000000).Build(),
		}

		for _, total := range totals {
			for _, v := range vouchers {
				result := voucher.Redeem(total, v, now)

				assert.True(t, result.Applied)
				assert.GreaterOrEqual(t, result.DiscountCents, int64(0))
				assert.LessOrEqual(t, result.DiscountCents, total)
				assert.Equal(t, total-result.DiscountCents, result.TotalAfterDiscount)
				assert.GreaterOrEqual(t, result.TotalAfterDiscount, int64(0))
			}
		}
	})
}
