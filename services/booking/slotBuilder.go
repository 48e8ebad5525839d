package booking

import (
	"aspcare/models"
)

// CanonicalSlots are the twelve one-hour windows between 07:00 and 19:00.
var CanonicalSlots = []string{
	"07:00-08:00",
	"08:00-09:00",
	"09:00-10:00",
	"10:00-11:00",
	"11:00-12:00",
	"12:00-13:00",
	"13:00-14:00",
	"14:00-15:00",
	"15:00-16:00",
	"16:00-17:00",
	"17:00-18:00",
	"18:00-19:00",
}

var canonicalSlotSet = func() map[string]bool {
	set := make(map[string]bool, len(CanonicalSlots))
	for _, s := range CanonicalSlots {
		set[s] = true
	}
	return set
}()

// IsCanonicalSlot reports whether slot is one of CanonicalSlots.
func IsCanonicalSlot(slot string) bool {
	return canonicalSlotSet[slot]
}

// ResolveSlots builds the selectable slot list from an availability mapping.
// No usable data means every slot is open; otherwise slots keep canonical order
// and unknown keys are dropped. The second result reports whether the fallback was used.
func ResolveSlots(availability map[string]bool) ([]models.Slot, bool) {
	slots := make([]models.Slot, 0, len(CanonicalSlots))
	for _, s := range CanonicalSlots {
		if open, ok := availability[s]; ok {
			slots = append(slots, models.Slot{Slot: s, Available: open})
		}
	}
	if len(slots) > 0 {
		return slots, false
	}

	for _, s := range CanonicalSlots {
		slots = append(slots, models.Slot{Slot: s, Available: true})
	}
	return slots, true
}

// UnknownSlotKeys lists availability keys that are not canonical slots.
func UnknownSlotKeys(availability map[string]bool) []string {
	var unknown []string
	for k := range availability {
		if !canonicalSlotSet[k] {
			unknown = append(unknown, k)
		}
	}
	return unknown
}

// SlotSelection tracks the chosen date and slot against the board for that date.
type SlotSelection struct {
	Date  string
	Slot  string
	Board []models.Slot
}

// ChangeDate switches to a new date and clears the chosen slot.
func (s *SlotSelection) ChangeDate(date string, board []models.Slot) {
	s.Date = date
	s.Slot = ""
	s.Board = board
}

// Select chooses a slot; slots that are unavailable or absent from the board are refused.
func (s *SlotSelection) Select(slot string) error {
	for _, b := range s.Board {
		if b.Slot != slot {
			continue
		}
		if !b.Available {
			return NewValidationError("timeSlot", "This time slot is already booked")
		}
		s.Slot = slot
		return nil
	}
	return NewValidationError("timeSlot", "Please select a valid time slot")
}
