// File: handlers/bundle.go
package handlers

import (
	"aspcare/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Sessions middleware.SessionLoader

	// Auth and session endpoints
	SendOTPHandler       gin.HandlerFunc
	VerifyOTPHandler     gin.HandlerFunc
	GoogleLoginHandler   gin.HandlerFunc
	LogoutHandler        gin.HandlerFunc
	GetSessionHandler    gin.HandlerFunc
	DismissBannerHandler gin.HandlerFunc

	// Booking endpoints
	GetRateHandler  gin.HandlerFunc
	GetSlotsHandler gin.HandlerFunc

	// Checkout endpoints
	StartCheckoutHandler       gin.HandlerFunc
	GetCheckoutHandler         gin.HandlerFunc
	ApplyPromoHandler          gin.HandlerFunc
	RemovePromoHandler         gin.HandlerFunc
	CreatePaymentIntentHandler gin.HandlerFunc

	// Order endpoints
	ListOrdersHandler     gin.HandlerFunc
	GetUpgradeableHandler gin.HandlerFunc
	GetOrderHandler       gin.HandlerFunc
	RescheduleHandler     gin.HandlerFunc
	UpgradeHandler        gin.HandlerFunc
	CancelQuoteHandler    gin.HandlerFunc
	ConfirmCancelHandler  gin.HandlerFunc
	GetRewardsHandler     gin.HandlerFunc
	GetProfileHandler     gin.HandlerFunc

	// Membership endpoints
	GetActiveMembershipHandler gin.HandlerFunc
	GetMembershipsHandler      gin.HandlerFunc
	GetMembershipPlansHandler  gin.HandlerFunc
	PurchaseMembershipHandler  gin.HandlerFunc

	// Referral, centre and deal endpoints
	GenerateReferralHandler gin.HandlerFunc
	GetReferralsHandler     gin.HandlerFunc
	GetAreasHandler         gin.HandlerFunc
	SearchCentresHandler    gin.HandlerFunc
	GetDealsHandler         gin.HandlerFunc
}

// NewHandlerBundle wires the handler structs into a bundle.
func NewHandlerBundle(sessions middleware.SessionLoader, authH *AuthHandler, bookingH *BookingHandler, membershipH *MembershipHandler, directoryH *DirectoryHandler) *HandlerBundle {
	return &HandlerBundle{
		Sessions: sessions,

		SendOTPHandler:       authH.SendOTPHandler,
		VerifyOTPHandler:     authH.VerifyOTPHandler,
		GoogleLoginHandler:   authH.GoogleLoginHandler,
		LogoutHandler:        authH.LogoutHandler,
		GetSessionHandler:    authH.GetSessionHandler,
		DismissBannerHandler: authH.DismissBannerHandler,

		GetRateHandler:  bookingH.GetRate,
		GetSlotsHandler: bookingH.GetSlots,

		StartCheckoutHandler:       bookingH.StartCheckout,
		GetCheckoutHandler:         bookingH.GetCheckout,
		ApplyPromoHandler:          bookingH.ApplyPromo,
		RemovePromoHandler:         bookingH.RemovePromo,
		CreatePaymentIntentHandler: bookingH.CreatePaymentIntent,

		ListOrdersHandler:     bookingH.ListOrders,
		GetUpgradeableHandler: bookingH.GetUpgradeable,
		GetOrderHandler:       bookingH.GetOrder,
		RescheduleHandler:     bookingH.Reschedule,
		UpgradeHandler:        bookingH.Upgrade,
		CancelQuoteHandler:    bookingH.CancelQuote,
		ConfirmCancelHandler:  bookingH.ConfirmCancel,
		GetRewardsHandler:     bookingH.GetRewards,
		GetProfileHandler:     directoryH.GetProfile,

		GetActiveMembershipHandler: membershipH.GetActive,
		GetMembershipsHandler:      membershipH.GetHistory,
		GetMembershipPlansHandler:  membershipH.GetPlans,
		PurchaseMembershipHandler:  membershipH.Purchase,

		GenerateReferralHandler: directoryH.GenerateReferral,
		GetReferralsHandler:     directoryH.GetReferrals,
		GetAreasHandler:         directoryH.GetAreas,
		SearchCentresHandler:    directoryH.SearchCentres,
		GetDealsHandler:         directoryH.GetDeals,
	}
}
