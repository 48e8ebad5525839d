package models

import "strings"

// Booking mirrors a booking record returned by the booking API.
type Booking struct {
	ID            int64  `json:"id"`
	Phone         string `json:"phone,omitempty"`
	CustomerName  string `json:"customerName,omitempty"`
	VehicleType   string `json:"vehicleType,omitempty"`   // HATCHBACK, SEDAN, SUV, ...
	VehicleNumber string `json:"vehicleNumber,omitempty"` // registration plate
	WashType      string `json:"washType,omitempty"`
	CarWashType   string `json:"carWashType,omitempty"` // legacy alias of washType
	PackageType   string `json:"packageType,omitempty"` // legacy alias of washType
	ServiceType   string `json:"serviceType,omitempty"` // HOME, SELFDRIVE, ASP_CARE, TEFLON
	WaterOption   string `json:"waterOption,omitempty"` // give-water, no-thanks, self-drive
	Water         string `json:"water,omitempty"`       // legacy alias of waterOption
	BookingDate   string `json:"bookingDate,omitempty"` // YYYY-MM-DD
	TimeSlot      string `json:"timeSlot,omitempty"`    // HH:MM-HH:MM
	Address       string `json:"address,omitempty"`
	CentreName    string `json:"centreName,omitempty"`
	Status        string `json:"status,omitempty"`
	UpgradeStatus string `json:"upgradeStatus,omitempty"`
	IsUpgraded    bool   `json:"isUpgraded,omitempty"`

	OriginalAmount         float64 `json:"originalAmount"`
	WaterDiscountApplied   float64 `json:"waterDiscountApplied"`
	DiscountPercentApplied float64 `json:"discountPercentApplied"`
	PayableAmount          float64 `json:"payableAmount"`
	Currency               string  `json:"currency,omitempty"`

	RescheduledReason string `json:"rescheduledReason,omitempty"`
	CreatedAt         string `json:"createdAt,omitempty"`
}

// WashLabel returns the first non-empty wash type field.
func (b Booking) WashLabel() string {
	for _, v := range []string{b.WashType, b.CarWashType, b.PackageType} {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// WaterLabel returns the water option, defaulting to "no-thanks".
func (b Booking) WaterLabel() string {
	for _, v := range []string{b.WaterOption, b.Water} {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return "no-thanks"
}

// Upgraded reports whether the server already recorded an upgrade.
func (b Booking) Upgraded() bool {
	return b.IsUpgraded || strings.EqualFold(strings.TrimSpace(b.UpgradeStatus), "upgraded")
}

// RescheduleRequest is the body of PUT /bookings/{id}.
type RescheduleRequest struct {
	BookingDate       string `json:"bookingDate"`
	TimeSlot          string `json:"timeSlot"`
	RescheduledReason string `json:"rescheduledReason,omitempty"`
}

// UpgradeRequest is the body of PUT /bookings/{id}/upgrade.
type UpgradeRequest struct {
	WashType string `json:"washType"`
}

// OrderView is a booking annotated for display.
type OrderView struct {
	Booking         Booking  `json:"booking"`
	DisplayStatus   string   `json:"displayStatus"` // Scheduled, Completed, Cancelled, Not scheduled
	StatusLabel     string   `json:"statusLabel"`   // e.g. "Scheduled: 07:00-08:00"
	Schedule        string   `json:"schedule"`      // e.g. "18-JAN-2026, 07:00-08:00"
	UpgradeTargets  []string `json:"upgradeTargets"`
	Drops           int      `json:"drops"`
	PayableDisplay  string   `json:"payableDisplay"`
	OriginalDisplay string   `json:"originalDisplay"`
}
