package booking

import (
	"time"

	"aspcare/models"
)

// UpgradeOptions lists the wash types a wash can be upgraded to.
func UpgradeOptions(current WashType) []WashType {
	switch current {
	case WashBasic:
		return []WashType{WashFoam, WashPremium}
	case WashFoam:
		return []WashType{WashPremium}
	}
	return nil
}

// UpgradeTargets returns the wash types a booking may be upgraded to right now.
// Only scheduled, not yet upgraded Basic or Foam washes qualify.
func UpgradeTargets(b models.Booking, now time.Time) []WashType {
	upgradeStatus := b.UpgradeStatus
	if b.Upgraded() {
		upgradeStatus = "upgraded"
	}
	info := DeriveDisplayStatus(b.BookingDate, b.TimeSlot, b.Status, upgradeStatus, now)
	if info.Status != StatusScheduled || info.Upgraded {
		return nil
	}
	current, ok := ParseWashType(b.WashLabel())
	if !ok {
		return nil
	}
	return UpgradeOptions(current)
}

// IsUpgradeEligible reports whether UpgradeTargets is non-empty.
func IsUpgradeEligible(b models.Booking, now time.Time) bool {
	return len(UpgradeTargets(b, now)) > 0
}

// FirstUpgradeable returns the first eligible booking in list order, if any.
func FirstUpgradeable(bookings []models.Booking, now time.Time) (models.Booking, bool) {
	for _, b := range bookings {
		if IsUpgradeEligible(b, now) {
			return b, true
		}
	}
	return models.Booking{}, false
}

func washTypeNames(ws []WashType) []string {
	names := make([]string, 0, len(ws))
	for _, w := range ws {
		names = append(names, string(w))
	}
	return names
}
