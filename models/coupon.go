package models

// CouponGenerateRequest is the body of POST /coupons/generate.
type CouponGenerateRequest struct {
	CreatedByPhone string  `json:"createdByPhone"`
	DiscountType   string  `json:"discountType"` // FLAT or PERCENT
	DiscountValue  float64 `json:"discountValue"`
	MaxUses        int     `json:"maxUses"`
	ValidDays      int     `json:"validDays"`
	MinOrderAmount float64 `json:"minOrderAmount"`
}

// Coupon is a generated coupon.
type Coupon struct {
	CouponCode string `json:"couponCode"`
	ShareText  string `json:"shareText,omitempty"`
}

// CouponValidateRequest is the body of POST /coupons/validate.
type CouponValidateRequest struct {
	CouponCode  string  `json:"couponCode"`
	UserPhone   string  `json:"userPhone"`
	OrderAmount float64 `json:"orderAmount"`
}

// CouponValidation is the server's verdict on a coupon.
type CouponValidation struct {
	Valid          bool    `json:"valid"`
	DiscountAmount float64 `json:"discountAmount"`
	Message        string  `json:"message,omitempty"`
}

// Referral is one person who used the session's referral code.
type Referral struct {
	ID            int64   `json:"id,omitempty"`
	ReferredName  string  `json:"referredName,omitempty"`
	ReferredPhone string  `json:"referredPhone,omitempty"`
	Status        string  `json:"status,omitempty"`
	BenefitAmount float64 `json:"benefitAmount"`
	ReferralDate  string  `json:"referralDate,omitempty"`
}

// ReferralDetails is the body of GET /coupons/referral-details.
type ReferralDetails struct {
	CouponCode   string     `json:"couponCode,omitempty"`
	Referrals    []Referral `json:"referrals"`
	TotalBenefit float64    `json:"totalBenefit"`
}
