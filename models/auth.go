package models

import "time"

// Session is the per-login state the gateway keeps for a browser.
type Session struct {
	ID                     string    `json:"id"`
	Phone                  string    `json:"phone"`
	FirstName              string    `json:"firstName,omitempty"`
	UpstreamToken          string    `json:"-"` // bearer token for the booking API, sealed at rest
	TokenHash              string    `json:"-"` // hash of the session JWT bound to this session
	OffersBannerDismissed  bool      `json:"offersBannerDismissed"`
	UpgradeBannerDismissed bool      `json:"upgradeBannerDismissed"`
	CreatedAt              time.Time `json:"createdAt"`
	LastSeenAt             time.Time `json:"lastSeenAt"`
}

// SendOTPRequest is the body of POST /api/auth/otp/send.
type SendOTPRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required"`
}

// VerifyOTPRequest is the body of POST /api/auth/otp/verify.
type VerifyOTPRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required"`
	OTP          string `json:"otp" binding:"required"`
}

// GoogleLoginRequest is the body of POST /api/auth/google.
type GoogleLoginRequest struct {
	GoogleToken string `json:"googleToken" binding:"required"`
}

// UpstreamLogin is what the booking API returns for a successful login.
type UpstreamLogin struct {
	Token     string
	Phone     string
	FirstName string
	Message   string
}

// LoginResult is returned to the browser after a successful login.
type LoginResult struct {
	Token     string  `json:"token"`
	ExpiresAt int64   `json:"expiresAt"`
	Session   Session `json:"session"`
}
