package voucher

import "time"

// Kind discriminates flat-amount vouchers from percentage vouchers.
type Kind string

const (
	KindAmount  Kind = "amount"
	KindPercent Kind = "percent"
)

func (k Kind) IsValid() bool {
	return k == KindAmount || k == KindPercent
}

// Voucher is reference data describing a discount code. Optional constraints
// are pointers: a nil field means the constraint does not apply. Active keeps
// the store's tri-state semantics: only an explicit false disables the code.
type Voucher struct {
	Code          string
	Kind          Kind
	Value         int64
	MinSpendCents *int64
	ExpiresAt     *time.Time
	RemainingUses *int32
	Active        *bool
}

func (v Voucher) IsDisabled() bool {
	return v.Active != nil && !*v.Active
}

// Reason is the single rejection cause of a redemption attempt. Unlike the
// booking validator, redemption stops at the first failing check: a voucher is
// an eligibility gate, not something the customer can fix piecemeal.
type Reason string

const (
	ReasonInactive     Reason = "voucher inactive"
	ReasonExpired      Reason = "voucher expired"
	ReasonExhausted    Reason = "no redemptions left"
	ReasonBelowMinimum Reason = "minimum order value not reached"
)

// Redemption is the outcome of applying a voucher against an order total.
// DiscountCents is zero and Reason is set when not applied.
type Redemption struct {
	Applied            bool
	DiscountCents      int64
	TotalAfterDiscount int64
	Reason             Reason
}

// Redeem decides whether the voucher applies to totalCents and computes the
// discounted total. Integer-cents arithmetic throughout; percentage discounts
// round down so the discount is never overstated, and the discount is capped
// at the total so it can never go negative. A zero now defaults to the
// current instant; tests must pass it explicitly.
func Redeem(totalCents int64, v Voucher, now time.Time) Redemption {
	if now.IsZero() {
		now = time.Now()
	}

	rejected := func(reason Reason) Redemption {
		return Redemption{DiscountCents: 0, TotalAfterDiscount: totalCents, Reason: reason}
	}

	if v.IsDisabled() {
		return rejected(ReasonInactive)
	}
	if v.ExpiresAt != nil && now.After(*v.ExpiresAt) {
		return rejected(ReasonExpired)
	}
	if v.RemainingUses != nil && *v.RemainingUses <= 0 {
		return rejected(ReasonExhausted)
	}
	if v.MinSpendCents != nil && totalCents < *v.MinSpendCents {
		return rejected(ReasonBelowMinimum)
	}

	var rawDiscount int64
	if v.Kind == KindPercent {
		percent := v.Value
		if percent > 100 {
			percent = 100
		}
		rawDiscount = totalCents * percent / 100
	} else {
		rawDiscount = v.Value
	}

	discount := rawDiscount
	if discount > totalCents {
		discount = totalCents
	}

	return Redemption{
		Applied:            true,
		DiscountCents:      discount,
		TotalAfterDiscount: totalCents - discount,
	}
}
