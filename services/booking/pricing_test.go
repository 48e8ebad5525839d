package booking

import (
	"testing"

	"aspcare/models"

	"github.com/stretchr/testify/assert"
)

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		water string
		want  float64
	}{
		{"customer gives water", 500, "give-water", 400},
		{"legacy water spelling", 500, "water", 400},
		{"no thanks", 500, "no-thanks", 500},
		{"self drive", 500, "self-drive", 500},
		{"never below zero", 60, "give-water", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FinalPrice(tt.rate, tt.water))
		})
	}
}

func TestComputeBreakdown_StacksOnSubtotal(t *testing.T) {
	b := ComputeBreakdown(CheckoutInputs{
		SubTotal:                  500,
		MembershipDiscountPercent: 10,
		SignupBonus:               20,
		PromoDiscount:             30,
	})

	assert.Equal(t, 50.0, b.MembershipDiscount)
	assert.Equal(t, 400.0, b.RawGrandTotal)
	assert.Equal(t, 400.0, b.GrandTotal)
	assert.Equal(t, 100.0, b.Savings)
}

func TestComputeBreakdown_ClampsGrandTotal(t *testing.T) {
	b := ComputeBreakdown(CheckoutInputs{
		SubTotal:                  50,
		MembershipDiscountPercent: 10,
		SignupBonus:               20,
		PromoDiscount:             100,
	})

	assert.Equal(t, -75.0, b.RawGrandTotal)
	assert.Equal(t, 0.0, b.GrandTotal)
	assert.Equal(t, 50.0, b.Savings)
}

func TestComputeBreakdown_IgnoresNegativeDiscounts(t *testing.T) {
	b := ComputeBreakdown(CheckoutInputs{
		SubTotal:                  300,
		MembershipDiscountPercent: -5,
		SignupBonus:               -20,
		PromoDiscount:             -10,
	})

	assert.Equal(t, models.Breakdown{
		SubTotal:      300,
		RawGrandTotal: 300,
		GrandTotal:    300,
	}, b)
}

func TestSignupBonusFor(t *testing.T) {
	assert.Equal(t, SignupBonusAmount, SignupBonusFor(HistoryEmpty))
	assert.Equal(t, SignupBonusAmount, SignupBonusFor(HistoryUnknown))
	assert.Zero(t, SignupBonusFor(HistoryExists))
}
