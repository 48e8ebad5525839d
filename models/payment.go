package models

// PaymentRequest describes an amount to collect through the payment provider.
type PaymentRequest struct {
	Amount      float64           // major units, e.g. rupees
	Currency    string            // ISO code
	Description string
	Idempotency string
	Metadata    map[string]string
}

// PaymentIntent is the client-facing part of a created payment intent.
type PaymentIntent struct {
	Required     bool    `json:"required"`
	IntentID     string  `json:"intentId,omitempty"`
	ClientSecret string  `json:"clientSecret,omitempty"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Display      string  `json:"display"`
}
