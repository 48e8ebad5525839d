package booking

import (
	"time"

	"aspcare/models"
)

var dropsTable = map[WashType]map[WaterKey]int{
	WashFoam: {
		WaterProvided:  50,
		WaterDeclined:  40,
		WaterSelfDrive: 70,
	},
	WashBasic: {
		WaterProvided:  30,
		WaterDeclined:  20,
		WaterSelfDrive: 40,
	},
	WashPremium: {
		WaterProvided:  300,
		WaterDeclined:  200,
		WaterSelfDrive: 350,
	},
}

// BaseDrops looks up the drops for a wash and water option. Unknown water options earn nothing.
func BaseDrops(washType, waterOption string) int {
	return dropsTable[NormalizeWashType(washType)][NormalizeWaterOption(waterOption)]
}

// BookingDrops is the signed drops contribution of one booking; cancelled bookings claw back.
func BookingDrops(b models.Booking, now time.Time) int {
	base := BaseDrops(b.WashLabel(), b.WaterLabel())
	if DeriveDisplayStatus(b.BookingDate, b.TimeSlot, b.Status, b.UpgradeStatus, now).Status == StatusCancelled {
		return -base
	}
	return base
}

// TotalDrops sums BookingDrops over the full history.
func TotalDrops(bookings []models.Booking, now time.Time) int {
	total := 0
	for _, b := range bookings {
		total += BookingDrops(b, now)
	}
	return total
}

var rewardTiers = []models.RewardTier{
	{Min: 200, Max: 300, Product: "Car Scent"},
	{Min: 300, Max: 500, Product: "Car Keychain"},
	{Min: 500, Max: 1000, Product: "Car Seat Cover"},
	{Min: 1000, Max: 2000, Product: "Steering Cover"},
}

// RewardTiers returns a copy of the redemption tiers.
func RewardTiers() []models.RewardTier {
	return append([]models.RewardTier(nil), rewardTiers...)
}

// RewardTierFor returns the highest tier reached by total, or nil below the first tier.
func RewardTierFor(total int) *models.RewardTier {
	var reached *models.RewardTier
	for i := range rewardTiers {
		if total >= rewardTiers[i].Min {
			t := rewardTiers[i]
			reached = &t
		}
	}
	return reached
}

// NextRewardTier returns the first tier above total, or nil once the top tier is reached.
func NextRewardTier(total int) *models.RewardTier {
	for i := range rewardTiers {
		if total < rewardTiers[i].Min {
			t := rewardTiers[i]
			return &t
		}
	}
	return nil
}
