//go:build unit

package builder

import (
	"time"

	"schnittwerk-api/internal/domain/voucher"
)

type VoucherBuilder struct {
	code     string
	kind     voucher.Kind
	value    int64
	minSpend *int64
	expires  *time.Time
	uses     *int32
	active   *bool
}

func NewVoucherBuilder() *VoucherBuilder {
	return &VoucherBuilder{
		code:  "WELCOME10",
		kind:  voucher.KindPercent,
		value: 10,
	}
}

func (b *VoucherBuilder) Code(code string) *VoucherBuilder {
	b.code = code
	return b
}

func (b *VoucherBuilder) Percent(value int64) *VoucherBuilder {
	b.kind = voucher.KindPercent
	b.value = value
	return b
}

func (b *VoucherBuilder) Amount(cents int64) *VoucherBuilder {
	b.kind = voucher.KindAmount
	b.value = cents
	return b
}

func (b *VoucherBuilder) MinSpend(cents int64) *VoucherBuilder {
	b.minSpend = &cents
	return b
}

func (b *VoucherBuilder) ExpiresAt(t time.Time) *VoucherBuilder {
	b.expires = &t
	return b
}

func (b *VoucherBuilder) RemainingUses(uses int32) *VoucherBuilder {
	b.uses = &uses
	return b
}

func (b *VoucherBuilder) Active(active bool) *VoucherBuilder {
	b.active = &active
	return b
}

func (b *VoucherBuilder) Build() voucher.Voucher {
	return voucher.Voucher{
		Code:          b.code,
		Kind:          b.kind,
		Value:         b.value,
		MinSpendCents: b.minSpend,
		ExpiresAt:     b.expires,
		RemainingUses: b.uses,
		Active:        b.active,
	}
}
