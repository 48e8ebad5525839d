// File: utils/constants.go
package utils

// SessionPrefix is the prefix used for Redis session keys.
const SessionPrefix = "session:"

// CheckoutPrefix is the prefix used for Redis checkout-state keys.
const CheckoutPrefix = "checkout:"

// DefaultCurrency is used when the booking API omits a currency code.
const DefaultCurrency = "INR"
