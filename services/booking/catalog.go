package booking

import "strings"

// WashType is the normalized wash category.
type WashType string

const (
	WashBasic   WashType = "Basic"
	WashFoam    WashType = "Foam"
	WashPremium WashType = "Premium"
)

// Level is the upper-case form the booking API expects (washLevel).
func (w WashType) Level() string {
	return strings.ToUpper(string(w))
}

// WaterKey is the normalized water option.
type WaterKey string

const (
	WaterProvided  WaterKey = "water"
	WaterDeclined  WaterKey = "no-thanks"
	WaterSelfDrive WaterKey = "self-drive"
	WaterUnknown   WaterKey = ""
)

// ServiceTypes offered by the booking API.
const (
	ServiceHome      = "HOME"
	ServiceSelfDrive = "SELFDRIVE"
	ServiceASPCare   = "ASP_CARE"
	ServiceTeflon    = "TEFLON"
)

var vehicleTypes = map[string]bool{
	"HATCHBACK": true,
	"SEDAN":     true,
	"SUV":       true,
	"MPV":       true,
	"PICKUP":    true,
	"BIKE":      true,
}

var serviceTypes = map[string]bool{
	ServiceHome:      true,
	ServiceSelfDrive: true,
	ServiceASPCare:   true,
	ServiceTeflon:    true,
}

// ParseWashType accepts Basic, Foam or Premium in any letter case.
func ParseWashType(v string) (WashType, bool) {
	s := strings.TrimSpace(v)
	for _, w := range []WashType{WashBasic, WashFoam, WashPremium} {
		if strings.EqualFold(s, string(w)) {
			return w, true
		}
	}
	return "", false
}

// NormalizeWashType matches FOAM, BASIC and PREMIUM anywhere in v, in that order,
// and defaults to Foam. Booking records spell wash types loosely.
func NormalizeWashType(v string) WashType {
	s := strings.ToUpper(strings.TrimSpace(v))
	switch {
	case strings.Contains(s, "FOAM"):
		return WashFoam
	case strings.Contains(s, "BASIC"):
		return WashBasic
	case strings.Contains(s, "PREMIUM"):
		return WashPremium
	}
	return WashFoam
}

// NormalizeWaterOption maps the water spellings used across booking records onto a WaterKey.
func NormalizeWaterOption(v string) WaterKey {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "give-water", "with-water", "water", "yes", "true":
		return WaterProvided
	case "", "no-thanks", "no", "false":
		return WaterDeclined
	case "self-drive", "selfdrive":
		return WaterSelfDrive
	}
	return WaterUnknown
}

// NormalizeVehicleType upper-cases and validates a vehicle type.
func NormalizeVehicleType(v string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(v))
	return s, vehicleTypes[s]
}

// NormalizeServiceType defaults an empty service type to HOME.
func NormalizeServiceType(v string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(v))
	if s == "" {
		return ServiceHome, true
	}
	return s, serviceTypes[s]
}
