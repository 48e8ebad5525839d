package booking

import (
	"context"
	"math"
	"strings"

	"aspcare/models"
)

const (
	promoAppliedMessage = "Coupon applied successfully!"
	promoInvalidMessage = "Invalid promo code"
	promoFailedMessage  = "Failed to validate promo code"
)

// PromoValidator asks the coupon service whether a code applies to an order.
type PromoValidator interface {
	ValidateCoupon(ctx context.Context, token string, req models.CouponValidateRequest) (*models.CouponValidation, error)
}

// BreakdownOf computes the stacked breakdown for a checkout state.
func BreakdownOf(st *models.CheckoutState) models.Breakdown {
	promo := 0.0
	if st.PromoApplied {
		promo = st.PromoDiscount
	}
	return ComputeBreakdown(CheckoutInputs{
		SubTotal:                  st.SubTotal,
		MembershipDiscountPercent: st.MembershipDiscountPercent,
		SignupBonus:               st.SignupBonus,
		PromoDiscount:             promo,
	})
}

// ApplyPromo validates code remotely and, when valid, records and locks the discount.
// An invalid code leaves the state unlocked with the server's message.
func ApplyPromo(ctx context.Context, v PromoValidator, token string, st *models.CheckoutState, code string) error {
	if st.PromoApplied {
		return NewValidationError("promoCode", "Remove the applied promo code before entering another")
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return NewValidationError("promoCode", "Please enter a promo code")
	}

	res, err := v.ValidateCoupon(ctx, token, models.CouponValidateRequest{
		CouponCode:  code,
		UserPhone:   st.Phone,
		OrderAmount: st.SubTotal,
	})
	if err != nil {
		st.PromoCode = code
		st.PromoApplied = false
		st.PromoDiscount = 0
		st.PromoMessage = promoFailedMessage
		return err
	}

	st.PromoCode = code
	if !res.Valid {
		st.PromoApplied = false
		st.PromoDiscount = 0
		st.PromoMessage = res.Message
		if st.PromoMessage == "" {
			st.PromoMessage = promoInvalidMessage
		}
		return nil
	}

	st.PromoApplied = true
	st.PromoDiscount = math.Max(0, res.DiscountAmount)
	st.PromoMessage = promoAppliedMessage
	return nil
}

// RemovePromo clears the promo discount and unlocks the input.
func RemovePromo(st *models.CheckoutState) {
	st.PromoCode = ""
	st.PromoDiscount = 0
	st.PromoApplied = false
	st.PromoMessage = ""
}
