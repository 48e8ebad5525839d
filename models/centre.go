package models

import "encoding/json"

// Centre is a service centre returned by /centres/search.
type Centre struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address,omitempty"`
	Area        string   `json:"area,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	OpenTime    string   `json:"openTime,omitempty"`
	CloseTime   string   `json:"closeTime,omitempty"`
	ServiceType string   `json:"serviceType,omitempty"`
}

// Deal is a record of /api/deal-prices. Prices arrive as numbers or numeric strings.
type Deal struct {
	ID                 int64       `json:"id"`
	DealWashType       string      `json:"dealWashType"`
	DealActualPrice    json.Number `json:"dealActualPrice"`
	DealFinalPrice     json.Number `json:"dealFinalPrice"`
	DealServiceType    string      `json:"dealServiceType"`
	DealWaterProviding string      `json:"dealWaterProviding"` // "Y" or "N"
}

// DealView is a deal with its derived discount.
type DealView struct {
	ID                int64   `json:"id"`
	WashType          string  `json:"washType"`
	ServiceType       string  `json:"serviceType"`
	OriginalPrice     float64 `json:"originalPrice"`
	DiscountedPrice   float64 `json:"discountedPrice"`
	DiscountPercent   int     `json:"discountPercent"`
	WaterRequired     bool    `json:"waterRequired"`
	OriginalDisplay   string  `json:"originalDisplay"`
	DiscountedDisplay string  `json:"discountedDisplay"`
}

// Greeting is the body of GET /users/greeting.
type Greeting struct {
	Greeting  string `json:"greeting,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	Name      string `json:"name,omitempty"`
}

// Profile is the account screen summary.
type Profile struct {
	Phone      string      `json:"phone"`
	FirstName  string      `json:"firstName"`
	Greeting   string      `json:"greeting"`
	TotalDrops int         `json:"totalDrops"`
	Membership *Membership `json:"membership,omitempty"`
}
