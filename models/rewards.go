package models

// RewardTier is a product redeemable within a drops range.
type RewardTier struct {
	Min     int    `json:"min"`
	Max     int    `json:"max"`
	Product string `json:"product"`
}

// OrderDrops is the drops contribution of a single booking.
type OrderDrops struct {
	BookingID int64  `json:"bookingId"`
	WashType  string `json:"washType"`
	Drops     int    `json:"drops"`
}

// RewardsSummary is the rewards screen.
type RewardsSummary struct {
	TotalDrops int          `json:"totalDrops"`
	Orders     []OrderDrops `json:"orders"`
	Tier       *RewardTier  `json:"tier,omitempty"`
	NextTier   *RewardTier  `json:"nextTier,omitempty"`
	Tiers      []RewardTier `json:"tiers"`
}
