package booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"aspcare/models"
)

const (
	MinVehicleNumberLength = 7
	MaxRescheduleReasonLen = 500
	mobileNumberLength     = 10
	otpLength              = 6
)

// ValidateVehicleNumber checks the registration plate before a checkout is started.
func ValidateVehicleNumber(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return NewValidationError("vehicleNumber", "Vehicle number is required")
	}
	if utf8.RuneCountInString(v) < MinVehicleNumberLength {
		return NewValidationError("vehicleNumber", "Vehicle number must be at least 7 characters")
	}
	return nil
}

// ValidateBookingDate requires a YYYY-MM-DD date that is not before today.
func ValidateBookingDate(date string, now time.Time) error {
	if strings.TrimSpace(date) == "" {
		return NewValidationError("bookingDate", "Please select a date")
	}
	d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(date), now.Location())
	if err != nil {
		return NewValidationError("bookingDate", "Date must be in YYYY-MM-DD format")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return NewValidationError("bookingDate", "Date cannot be in the past")
	}
	return nil
}

// ValidateTimeSlot requires one of the canonical slots.
func ValidateTimeSlot(slot string) error {
	if strings.TrimSpace(slot) == "" {
		return NewValidationError("timeSlot", "Please select a time slot")
	}
	if !IsCanonicalSlot(slot) {
		return NewValidationError("timeSlot", "Please select a valid time slot")
	}
	return nil
}

// ValidateReschedule checks a reschedule request: date, canonical slot and reason length.
func ValidateReschedule(req models.RescheduleRequest, now time.Time) error {
	if err := ValidateBookingDate(req.BookingDate, now); err != nil {
		return err
	}
	if err := ValidateTimeSlot(req.TimeSlot); err != nil {
		return err
	}
	if utf8.RuneCountInString(req.RescheduledReason) > MaxRescheduleReasonLen {
		return NewValidationError("rescheduledReason", "Reason must be 500 characters or fewer")
	}
	return nil
}

// ValidateMobileNumber requires exactly ten digits.
func ValidateMobileNumber(v string) error {
	if !allDigits(v, mobileNumberLength) {
		return NewValidationError("mobileNumber", "Please enter a valid 10-digit mobile number")
	}
	return nil
}

// ValidateOTP requires exactly six digits.
func ValidateOTP(v string) error {
	if !allDigits(v, otpLength) {
		return NewValidationError("otp", "Please enter a valid 6-digit OTP")
	}
	return nil
}

func allDigits(v string, n int) bool {
	if len(v) != n {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
