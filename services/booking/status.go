package booking

import (
	"strings"
	"time"
)

// Clock supplies the current time in the business time zone.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in Location (UTC when nil).
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}

// DisplayStatus is the status shown for an order.
type DisplayStatus string

const (
	StatusScheduled   DisplayStatus = "Scheduled"
	StatusCompleted   DisplayStatus = "Completed"
	StatusCancelled   DisplayStatus = "Cancelled"
	StatusUnscheduled DisplayStatus = "Not scheduled"
)

// StatusInfo is the derived status of a booking.
type StatusInfo struct {
	Status   DisplayStatus
	Upgraded bool
	Start    time.Time // zero when the date or slot could not be parsed
}

// SlotStart parses a booking date (YYYY-MM-DD, optionally followed by a time part)
// and the start of a "HH:MM-HH:MM" slot in loc.
func SlotStart(bookingDate, timeSlot string, loc *time.Location) (time.Time, bool) {
	date := strings.TrimSpace(bookingDate)
	if len(date) > 10 {
		date = date[:10]
	}
	start, _, _ := strings.Cut(strings.TrimSpace(timeSlot), "-")
	start = strings.TrimSpace(start)
	if date == "" || start == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+start, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DeriveDisplayStatus computes the order status from the server status and the slot start.
// A cancelled server status always wins; otherwise a start strictly after now is Scheduled.
func DeriveDisplayStatus(bookingDate, timeSlot, serverStatus, upgradeStatus string, now time.Time) StatusInfo {
	info := StatusInfo{
		Upgraded: strings.EqualFold(strings.TrimSpace(upgradeStatus), "upgraded"),
	}
	if strings.EqualFold(strings.TrimSpace(serverStatus), "cancelled") {
		info.Status = StatusCancelled
		return info
	}

	start, ok := SlotStart(bookingDate, timeSlot, now.Location())
	if !ok {
		info.Status = StatusUnscheduled
		return info
	}
	info.Start = start
	if start.After(now) {
		info.Status = StatusScheduled
	} else {
		info.Status = StatusCompleted
	}
	return info
}
