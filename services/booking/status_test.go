package booking

import (
	"testing"
	"time"

	"aspcare/models"

	"github.com/stretchr/testify/assert"
)

var ist = time.FixedZone("IST", 5*3600+1800)

// 18 Jan 2026, 08:30 IST.
var testNow = time.Date(2026, 1, 18, 8, 30, 0, 0, ist)

func TestDeriveDisplayStatus(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		slot   string
		status string
		want   DisplayStatus
	}{
		{"future slot", "2026-01-18", "09:00-10:00", "CONFIRMED", StatusScheduled},
		{"slot already started", "2026-01-18", "08:00-09:00", "CONFIRMED", StatusCompleted},
		{"past day", "2026-01-17", "18:00-19:00", "", StatusCompleted},
		{"date with time part", "2026-01-19T00:00:00", "07:00-08:00", "", StatusScheduled},
		{"cancelled wins over future", "2026-02-01", "09:00-10:00", "Cancelled", StatusCancelled},
		{"cancelled upper case", "2026-01-01", "09:00-10:00", "CANCELLED", StatusCancelled},
		{"missing slot", "2026-01-18", "", "", StatusUnscheduled},
		{"garbage date", "someday", "09:00-10:00", "", StatusUnscheduled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := DeriveDisplayStatus(tt.date, tt.slot, tt.status, "", testNow)
			assert.Equal(t, tt.want, info.Status)
		})
	}
}

func TestDeriveDisplayStatus_StartEqualToNowIsCompleted(t *testing.T) {
	now := time.Date(2026, 1, 18, 9, 0, 0, 0, ist)
	info := DeriveDisplayStatus("2026-01-18", "09:00-10:00", "", "", now)
	assert.Equal(t, StatusCompleted, info.Status)
}

func TestUpgradeTargets(t *testing.T) {
	future := models.Booking{BookingDate: "2026-01-20", TimeSlot: "10:00-11:00"}

	basic := future
	basic.WashType = "basic"
	assert.Equal(t, []WashType{WashFoam, WashPremium}, UpgradeTargets(basic, testNow))

	foam := future
	foam.CarWashType = "Foam"
	assert.Equal(t, []WashType{WashPremium}, UpgradeTargets(foam, testNow))

	premium := future
	premium.WashType = "Premium"
	assert.Empty(t, UpgradeTargets(premium, testNow))

	upgraded := basic
	upgraded.UpgradeStatus = "UPGRADED"
	assert.Empty(t, UpgradeTargets(upgraded, testNow))

	past := basic
	past.BookingDate = "2026-01-10"
	assert.Empty(t, UpgradeTargets(past, testNow))

	cancelled := basic
	cancelled.Status = "cancelled"
	assert.False(t, IsUpgradeEligible(cancelled, testNow))
}

func TestFirstUpgradeable(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, WashType: "Premium", BookingDate: "2026-01-20", TimeSlot: "10:00-11:00"},
		{ID: 2, WashType: "Foam", BookingDate: "2026-01-10", TimeSlot: "10:00-11:00"},
		{ID: 3, WashType: "Foam", BookingDate: "2026-01-21", TimeSlot: "10:00-11:00"},
		{ID: 4, WashType: "Basic", BookingDate: "2026-01-22", TimeSlot: "10:00-11:00"},
	}
	b, ok := FirstUpgradeable(bookings, testNow)
	assert.True(t, ok)
	assert.Equal(t, int64(3), b.ID)

	_, ok = FirstUpgradeable(bookings[:2], testNow)
	assert.False(t, ok)
}
