package booking

import (
	"context"

	"aspcare/models"
	"aspcare/services/payment"

	"go.uber.org/zap"
)

// AvailabilityFetcher returns the slot availability mapping for a date.
type AvailabilityFetcher interface {
	GetAvailability(ctx context.Context, token, date, serviceType string) (map[string]bool, error)
}

// BookingAPI is the booking-record part of the remote API.
type BookingAPI interface {
	ListBookingsByPhone(ctx context.Context, token, phone string) ([]models.Booking, error)
	HasBookings(ctx context.Context, token, phone string) (bool, error)
	RescheduleBooking(ctx context.Context, token string, id int64, req models.RescheduleRequest) (*models.Booking, error)
	UpgradeBooking(ctx context.Context, token string, id int64, washType string) (*models.Booking, error)
	GetCancelQuote(ctx context.Context, token string, id int64) (*models.CancelQuote, error)
	ConfirmCancel(ctx context.Context, token string, id int64) (*models.CancelConfirmation, error)
}

// MembershipAPI is the membership part of the remote API.
type MembershipAPI interface {
	GetActiveMembership(ctx context.Context, token, phone string) (*models.Membership, error)
	ListMemberships(ctx context.Context, token, phone string) ([]models.Membership, error)
	CreateMembership(ctx context.Context, token string, req models.MembershipRequest) (*models.Membership, error)
	ActivateMembership(ctx context.Context, token string, id int64) (*models.Membership, error)
}

// CouponAPI is the coupon and referral part of the remote API.
type CouponAPI interface {
	PromoValidator
	GenerateCoupon(ctx context.Context, token string, req models.CouponGenerateRequest) (*models.Coupon, error)
	GetReferralDetails(ctx context.Context, token, phone string) (*models.ReferralDetails, error)
}

// DirectoryAPI covers centres, deals and the greeting.
type DirectoryAPI interface {
	ListAreas(ctx context.Context, token string) ([]string, error)
	SearchCentres(ctx context.Context, token, area string) ([]models.Centre, error)
	ListDeals(ctx context.Context, token string) ([]models.Deal, error)
	GetGreeting(ctx context.Context, token, phone string) (*models.Greeting, error)
}

// UpstreamAPI is everything the services need from the remote booking API.
type UpstreamAPI interface {
	RateFetcher
	AvailabilityFetcher
	BookingAPI
	MembershipAPI
	CouponAPI
	DirectoryAPI
}

// CheckoutStore persists review-screen state per session. Get returns nil, nil when absent.
type CheckoutStore interface {
	Save(ctx context.Context, st *models.CheckoutState) error
	Get(ctx context.Context, sessionID string) (*models.CheckoutState, error)
	Delete(ctx context.Context, sessionID string) error
}

// BookingService is the booking flow: quoting, slots, checkout and order management.
type BookingService interface {
	QuoteRate(ctx context.Context, sess *models.Session, sel models.RateSelection) (*models.RateQuote, error)
	ResolveSlots(ctx context.Context, sess *models.Session, date, serviceType string) (*models.SlotBoard, error)

	StartCheckout(ctx context.Context, sess *models.Session, req models.CheckoutRequest) (*models.CheckoutView, error)
	GetCheckout(ctx context.Context, sess *models.Session) (*models.CheckoutView, error)
	ApplyPromo(ctx context.Context, sess *models.Session, code string) (*models.CheckoutView, error)
	RemovePromo(ctx context.Context, sess *models.Session) (*models.CheckoutView, error)
	CreatePaymentIntent(ctx context.Context, sess *models.Session) (*models.PaymentIntent, error)

	ListOrders(ctx context.Context, sess *models.Session) ([]models.OrderView, error)
	GetOrder(ctx context.Context, sess *models.Session, id int64) (*models.OrderView, error)
	FindUpgradeable(ctx context.Context, sess *models.Session) (*models.OrderView, error)
	Reschedule(ctx context.Context, sess *models.Session, id int64, req models.RescheduleRequest) (*models.OrderView, error)
	Upgrade(ctx context.Context, sess *models.Session, id int64, washType string) (*models.OrderView, error)
	CancelQuote(ctx context.Context, sess *models.Session, id int64) (*models.CancelQuote, error)
	ConfirmCancel(ctx context.Context, sess *models.Session, id int64) (*models.CancelConfirmation, error)

	Rewards(ctx context.Context, sess *models.Session) (*models.RewardsSummary, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Upstream  UpstreamAPI
	Rates     *RateResolver
	Checkouts CheckoutStore
	Payments  payment.IntentCreator
	Clock     Clock
	Logger    *zap.Logger
	Currency  string
}

// MembershipService manages membership plans.
type MembershipService interface {
	ActiveMembership(ctx context.Context, sess *models.Session) (*models.Membership, error)
	MembershipHistory(ctx context.Context, sess *models.Session) ([]models.Membership, error)
	Plans(ctx context.Context, sess *models.Session) ([]models.PlanView, error)
	PurchaseMembership(ctx context.Context, sess *models.Session, planCode string) (*models.MembershipPurchase, error)
}

// DefaultMembershipService implements MembershipService.
type DefaultMembershipService struct {
	Upstream UpstreamAPI
	Payments payment.IntentCreator
	Logger   *zap.Logger
	Currency string
}

// DirectoryService serves referrals, centres, deals and the profile screen.
type DirectoryService interface {
	GenerateReferral(ctx context.Context, sess *models.Session) (*models.Coupon, error)
	ReferralDetails(ctx context.Context, sess *models.Session) (*models.ReferralDetails, error)
	Areas(ctx context.Context, sess *models.Session) ([]string, error)
	SearchCentres(ctx context.Context, sess *models.Session, area string) ([]models.Centre, error)
	Deals(ctx context.Context, sess *models.Session, query string) ([]models.DealView, error)
	Profile(ctx context.Context, sess *models.Session) (*models.Profile, error)
}

// DefaultDirectoryService implements DirectoryService.
type DefaultDirectoryService struct {
	Upstream UpstreamAPI
	Clock    Clock
	Logger   *zap.Logger
	Currency string
}
