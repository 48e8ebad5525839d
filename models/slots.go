package models

// Slot is one canonical one-hour window and whether it can be chosen.
type Slot struct {
	Slot      string `json:"slot"` // e.g. "07:00-08:00"
	Available bool   `json:"available"`
}

// SlotBoard is the resolved availability for one date and service type.
type SlotBoard struct {
	Date        string `json:"date"`
	ServiceType string `json:"serviceType"`
	Slots       []Slot `json:"slots"`
	Fallback    bool   `json:"fallback"` // true when no availability data was returned
}
