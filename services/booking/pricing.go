package booking

import (
	"math"

	"aspcare/models"
)

// WaterDiscount is taken off the rate when the customer provides water.
const WaterDiscount = 100.0

// SignupBonusAmount is granted on a phone's first booking.
const SignupBonusAmount = 20.0

// FinalPrice calculates the price shown for a rate and water option.
func FinalPrice(rate float64, waterOption string) float64 {
	if NormalizeWaterOption(waterOption) == WaterProvided {
		return math.Max(0, rate-WaterDiscount)
	}
	return rate
}

// MembershipDiscountAmount calculates the membership discount on a subtotal.
func MembershipDiscountAmount(subTotal, percent float64) float64 {
	if percent <= 0 {
		return 0
	}
	return math.Max(0, subTotal*percent/100)
}

// CheckoutInputs are the independent amounts the review screen stacks.
type CheckoutInputs struct {
	SubTotal                  float64
	MembershipDiscountPercent float64
	SignupBonus               float64
	PromoDiscount             float64
}

// ComputeBreakdown stacks the discounts additively against the subtotal.
// Each discount is computed on the subtotal, never on an already-reduced amount.
func ComputeBreakdown(in CheckoutInputs) models.Breakdown {
	percent := math.Max(0, in.MembershipDiscountPercent)
	membership := MembershipDiscountAmount(in.SubTotal, percent)
	signup := math.Max(0, in.SignupBonus)
	promo := math.Max(0, in.PromoDiscount)

	raw := in.SubTotal - membership - signup - promo
	grand := math.Max(0, raw)

	return models.Breakdown{
		SubTotal:                  in.SubTotal,
		MembershipDiscountPercent: percent,
		MembershipDiscount:        membership,
		SignupBonus:               signup,
		PromoDiscount:             promo,
		RawGrandTotal:             raw,
		GrandTotal:                grand,
		Savings:                   in.SubTotal - grand,
	}
}

// HistoryCheck is the outcome of looking up a phone's booking history.
type HistoryCheck int

const (
	// HistoryUnknown means the lookup failed or no phone was available.
	HistoryUnknown HistoryCheck = iota
	HistoryEmpty
	HistoryExists
)

// SignupBonusFor grants the bonus unless the history positively shows earlier bookings.
// An unknown history fails open.
func SignupBonusFor(h HistoryCheck) float64 {
	if h == HistoryExists {
		return 0
	}
	return SignupBonusAmount
}
