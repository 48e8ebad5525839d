package models

import "time"

// CheckoutRequest is what the booking form submits to start a checkout.
type CheckoutRequest struct {
	VehicleType   string `json:"vehicleType"`
	VehicleNumber string `json:"vehicleNumber"`
	WashType      string `json:"washType"`
	ServiceType   string `json:"serviceType"`
	WaterOption   string `json:"waterOption"`
	BookingDate   string `json:"bookingDate"`
	TimeSlot      string `json:"timeSlot"`
	CentreID      int64  `json:"centreId,omitempty"`
	Address       string `json:"address,omitempty"`
}

// CheckoutState is the server-held review-screen state for one session.
type CheckoutState struct {
	SessionID string          `json:"sessionId"`
	Phone     string          `json:"phone"`
	Request   CheckoutRequest `json:"request"`

	SubTotal                  float64 `json:"subTotal"`
	Currency                  string  `json:"currency"`
	MembershipDiscountPercent float64 `json:"membershipDiscountPercent"`
	SignupBonus               float64 `json:"signupBonus"`

	PromoCode     string  `json:"promoCode,omitempty"`
	PromoDiscount float64 `json:"promoDiscount"`
	PromoApplied  bool    `json:"promoApplied"` // locks the promo input until removed
	PromoMessage  string  `json:"promoMessage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Breakdown is the stacked price shown on the review screen.
type Breakdown struct {
	SubTotal                  float64 `json:"subTotal"`
	MembershipDiscountPercent float64 `json:"membershipDiscountPercent"`
	MembershipDiscount        float64 `json:"membershipDiscount"`
	SignupBonus               float64 `json:"signupBonus"`
	PromoDiscount             float64 `json:"promoDiscount"`
	RawGrandTotal             float64 `json:"rawGrandTotal"` // may be negative
	GrandTotal                float64 `json:"grandTotal"`    // clamped at zero
	Savings                   float64 `json:"savings"`
}

// BreakdownDisplay holds the formatted strings for a Breakdown.
type BreakdownDisplay struct {
	SubTotal           string `json:"subTotal"`
	MembershipDiscount string `json:"membershipDiscount"`
	SignupBonus        string `json:"signupBonus"`
	PromoDiscount      string `json:"promoDiscount"`
	GrandTotal         string `json:"grandTotal"`
	Savings            string `json:"savings"`
}

// PromoView is the promo-code section of the review screen.
type PromoView struct {
	Code    string `json:"code,omitempty"`
	Applied bool   `json:"applied"`
	Message string `json:"message,omitempty"`
}

// CheckoutView is returned after every checkout step.
type CheckoutView struct {
	Request   CheckoutRequest  `json:"request"`
	Currency  string           `json:"currency"`
	Breakdown Breakdown        `json:"breakdown"`
	Display   BreakdownDisplay `json:"display"`
	Promo     PromoView        `json:"promo"`
}
