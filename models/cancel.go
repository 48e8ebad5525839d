package models

// CancelQuote is the server-computed refund offer for a booking.
type CancelQuote struct {
	Eligible       bool    `json:"eligible"`
	BookingAmount  float64 `json:"bookingAmount"`
	HoursRemaining float64 `json:"hoursRemaining"`
	RefundPercent  float64 `json:"refundPercent"`
	RefundAmount   float64 `json:"refundAmount"`
	Message        string  `json:"message,omitempty"`
}

// CancelConfirmation is the body of POST /bookings/{id}/cancel-confirm.
type CancelConfirmation struct {
	Message string `json:"message"`
}
