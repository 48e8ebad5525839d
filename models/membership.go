package models

// Membership mirrors a membership record from the booking API.
type Membership struct {
	ID                   int64   `json:"id"`
	Phone                string  `json:"phone,omitempty"`
	PlanCode             string  `json:"planCode"`
	PlanName             string  `json:"planName,omitempty"`
	DiscountPercent      float64 `json:"discountPercent"`
	Price                float64 `json:"price,omitempty"`
	Status               string  `json:"status,omitempty"` // ACTIVE, HOLD, EXPIRED, ...
	FreeFoamRemaining    int     `json:"freeFoamRemaining,omitempty"`
	FreePremiumRemaining int     `json:"freePremiumRemaining,omitempty"`
	OriginalPlanPrice    float64 `json:"originalPlanPrice,omitempty"`
	PaidAmount           float64 `json:"paidAmount,omitempty"`
	PurchaseMode         string  `json:"purchaseMode,omitempty"`
	StartDate            string  `json:"startDate,omitempty"`
	EndDate              string  `json:"endDate,omitempty"`
	CreatedAt            string  `json:"createdAt,omitempty"`
}

// MembershipRequest is the body of POST /memberships.
type MembershipRequest struct {
	Phone                   string   `json:"phone"`
	PlanCode                string   `json:"planCode"`
	PlanName                string   `json:"planName"`
	OriginalPlanPrice       float64  `json:"originalPlanPrice"`
	PaidAmount              float64  `json:"paidAmount"`
	PurchaseMode            string   `json:"purchaseMode"` // NEW or UPGRADE
	SourceMembershipDbID    *int64   `json:"sourceMembershipDbId,omitempty"`
	PreviousPlanCode        string   `json:"previousPlanCode,omitempty"`
	UpgradeDifferenceAmount *float64 `json:"upgradeDifferenceAmount,omitempty"`
}

// MembershipPlan is one entry of the plan catalogue.
type MembershipPlan struct {
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	Subtitle        string   `json:"subtitle"`
	Price           float64  `json:"price"`
	DiscountPercent float64  `json:"discountPercent"`
	MostPopular     bool     `json:"mostPopular,omitempty"`
	Features        []string `json:"features"`
}

// PlanView is a catalogue plan annotated for the current session.
type PlanView struct {
	MembershipPlan
	PriceDisplay string  `json:"priceDisplay"`
	Current      bool    `json:"current"`
	Upgradeable  bool    `json:"upgradeable"`
	PayNow       float64 `json:"payNow"`
}

// MembershipPurchase is the outcome of buying or upgrading a plan.
type MembershipPurchase struct {
	Membership Membership     `json:"membership"`
	Mode       string         `json:"mode"`
	PaidAmount float64        `json:"paidAmount"`
	Activated  bool           `json:"activated"`
	Payment    *PaymentIntent `json:"payment,omitempty"`
}
